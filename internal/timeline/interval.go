package timeline

import (
	"fmt"
	"time"
)

// Interval is the occupied horizontal extent of one placed item, used only
// for overlap testing during packing. Its End is the worst-case end, which
// accounts for label overrun and so can lie well past the item's own end.
type Interval struct {
	Start time.Time
	End   time.Time
}

// NewInterval creates an Interval.
func NewInterval(start, end time.Time) Interval {
	return Interval{Start: start, End: end}
}

// Overlaps reports whether two intervals collide. Two intervals are clear of
// each other only when one ends strictly before the other begins, tested
// with Before/After on the time points rather than raw timestamp compares.
func (iv Interval) Overlaps(other Interval) bool {
	if iv.End.Before(other.Start) || iv.Start.After(other.End) {
		return false
	}
	return true
}

func (iv Interval) String() string {
	return fmt.Sprintf("%s .. %s", iv.Start.Format("2006-01-02"), iv.End.Format("2006-01-02"))
}
