// Package layout computes the chart's lane-packed item placement: domain
// inference, the time-to-pixel scale, first-fit row packing, and geometry
// projection.
package layout

import (
	"time"
)

// Projection converts between time and horizontal pixel positions. TimeScale
// is the base implementation; the chart widget composes it with the view's
// zoom and pan to get the on-screen projection used during packing.
type Projection interface {
	X(t time.Time) float64
	TimeAt(x float64) time.Time
}

// TimeScale is a continuous, invertible, monotonic mapping from the time
// domain [DomainStart, DomainEnd] to the pixel range [0, Width]. It is
// rebuilt on load; zoom and pan never mutate the domain edges.
type TimeScale struct {
	DomainStart time.Time
	DomainEnd   time.Time
	Width       float64
}

// NewTimeScale creates a scale over the given domain and pixel width.
func NewTimeScale(start, end time.Time, width float64) TimeScale {
	return TimeScale{DomainStart: start, DomainEnd: end, Width: width}
}

// X returns the pixel position of t.
func (s TimeScale) X(t time.Time) float64 {
	span := epochSeconds(s.DomainEnd) - epochSeconds(s.DomainStart)
	if span == 0 {
		return 0
	}
	return (epochSeconds(t) - epochSeconds(s.DomainStart)) / span * s.Width
}

// TimeAt inverts X, returning the time at a pixel position.
func (s TimeScale) TimeAt(x float64) time.Time {
	if s.Width == 0 {
		return s.DomainStart
	}
	span := epochSeconds(s.DomainEnd) - epochSeconds(s.DomainStart)
	sec := epochSeconds(s.DomainStart) + x/s.Width*span
	return timeFromEpochSeconds(sec)
}

// epochSeconds converts to float64 seconds since the Unix epoch. Durations
// between far-apart historical dates overflow time.Duration, so the scale
// does its arithmetic in seconds.
func epochSeconds(t time.Time) float64 {
	return float64(t.Unix()) + float64(t.Nanosecond())/1e9
}

func timeFromEpochSeconds(sec float64) time.Time {
	whole := int64(sec)
	frac := sec - float64(whole)
	return time.Unix(whole, int64(frac*1e9)).UTC()
}

// secondsPerYear is the mean Gregorian year, used wherever configuration
// expresses durations in (possibly fractional) years.
const secondsPerYear = 365.2425 * 86400

// shiftYears returns t moved by the given number of years, which may be
// negative or fractional.
func shiftYears(t time.Time, years float64) time.Time {
	return timeFromEpochSeconds(epochSeconds(t) + years*secondsPerYear)
}
