package layout

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestTimeScaleEndpoints(t *testing.T) {
	s := NewTimeScale(date(2000, 1, 1), date(2020, 1, 1), 1000)

	assert.InDelta(t, 0, s.X(date(2000, 1, 1)), 1e-9)
	assert.InDelta(t, 1000, s.X(date(2020, 1, 1)), 1e-9)
	// Midpoint of the domain lands mid-range.
	assert.InDelta(t, 500, s.X(date(2010, 1, 1)), 1.0)
}

func TestTimeScaleRoundTrip(t *testing.T) {
	s := NewTimeScale(date(1900, 1, 1), date(2030, 1, 1), 1440)

	for _, tm := range []time.Time{
		date(1900, 1, 1),
		date(1969, 7, 20),
		date(2000, 2, 29),
		date(2029, 12, 31),
	} {
		back := s.TimeAt(s.X(tm))
		assert.WithinDuration(t, tm, back, time.Second, "round trip through %v", tm)
	}
}

func TestTimeScaleMonotonic(t *testing.T) {
	s := NewTimeScale(date(1500, 1, 1), date(2030, 1, 1), 800)

	// Spans this wide overflow time.Duration; the scale must still order
	// correctly.
	prev := s.X(date(1500, 1, 1))
	for y := 1510; y <= 2030; y += 10 {
		x := s.X(date(y, 1, 1))
		assert.Greater(t, x, prev, "scale must be monotonic at year %d", y)
		prev = x
	}
}

func TestShiftYears(t *testing.T) {
	got := shiftYears(date(2000, 1, 1), 10)
	assert.WithinDuration(t, date(2010, 1, 1), got, 72*time.Hour)

	back := shiftYears(got, -10)
	assert.WithinDuration(t, date(2000, 1, 1), back, time.Second)
}
