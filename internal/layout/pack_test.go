package layout

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timelane/internal/timeline"
)

// testScale covers 2000..2030 at 30 px/year, so label widths convert to
// years without awkward constants.
func testScale() TimeScale {
	return NewTimeScale(date(2000, 1, 1), date(2030, 1, 1), 900)
}

func testPacker(measure func(string) float64) Packer {
	s := testScale()
	if measure == nil {
		measure = func(string) float64 { return 1 }
	}
	return Packer{
		Measure:   measure,
		Proj:      s,
		DomainEnd: s.DomainEnd,
	}
}

func item(id, series string, kind timeline.Kind, begin time.Time, end *time.Time, title string) timeline.TimeItem {
	return timeline.TimeItem{ID: id, Series: series, Kind: kind, Title: title, Begin: begin, End: end}
}

func endPtr(t time.Time) *time.Time { return &t }

func TestPackDisjointShareRow(t *testing.T) {
	// Scenario: two well-separated items with short titles pack into row 0.
	items := []timeline.TimeItem{
		item("a", "X", timeline.KindInterval, date(2000, 1, 1), endPtr(date(2010, 1, 1)), "a"),
		item("b", "X", timeline.KindInterval, date(2020, 1, 1), endPtr(date(2030, 1, 1)), "b"),
	}

	p := testPacker(nil)
	ps := NewPackingState()
	rows := p.PlaceAll(ps, items)

	assert.Equal(t, 0, rows["a"])
	assert.Equal(t, 0, rows["b"])
	assert.Equal(t, 1, ps.RowCount("X"))
}

func TestPackOverlappingSplitRows(t *testing.T) {
	items := []timeline.TimeItem{
		item("a", "X", timeline.KindInterval, date(2000, 1, 1), endPtr(date(2020, 1, 1)), "a"),
		item("b", "X", timeline.KindInterval, date(2010, 1, 1), endPtr(date(2030, 1, 1)), "b"),
	}

	p := testPacker(nil)
	ps := NewPackingState()
	rows := p.PlaceAll(ps, items)

	assert.Equal(t, 0, rows["a"])
	assert.Equal(t, 1, rows["b"])
	assert.Equal(t, 2, ps.RowCount("X"))
}

func TestPackLabelOverrunCollides(t *testing.T) {
	// An instant whose label runs out past a later item's begin must push
	// that item to a new row even though the raw dates never touch.
	wide := 48.0 // 1.6 years at 30 px/year: carries 2015-06 past 2016-01
	measure := func(text string) float64 {
		if text == "a very long instant label" {
			return wide
		}
		return 1
	}
	items := []timeline.TimeItem{
		item("pin", "X", timeline.KindInstant, date(2015, 6, 1), nil, "a very long instant label"),
		item("bar", "X", timeline.KindInterval, date(2016, 1, 1), endPtr(date(2018, 1, 1)), "b"),
	}

	p := testPacker(measure)
	ps := NewPackingState()
	rows := p.PlaceAll(ps, items)

	assert.Equal(t, 0, rows["pin"])
	assert.Equal(t, 1, rows["bar"])
}

func TestPackOpenEndedOccupiesToDomainEdge(t *testing.T) {
	open := item("open", "X", timeline.KindInterval, date(2005, 1, 1), nil, "o")
	late := item("late", "X", timeline.KindInterval, date(2025, 1, 1), endPtr(date(2026, 1, 1)), "l")

	p := testPacker(nil)
	assert.True(t, p.WorstCaseEnd(open).Equal(p.DomainEnd))

	ps := NewPackingState()
	rows := p.PlaceAll(ps, []timeline.TimeItem{open, late})
	assert.Equal(t, 0, rows["open"])
	assert.Equal(t, 1, rows["late"], "anything after an open item needs a new row")
}

func TestPackWorstCaseEndPrefersLaterOfEndAndText(t *testing.T) {
	p := testPacker(func(string) float64 { return 300 }) // 10 years of label

	short := item("s", "X", timeline.KindInterval, date(2000, 1, 1), endPtr(date(2002, 1, 1)), "s")
	long := item("l", "X", timeline.KindInterval, date(2000, 1, 1), endPtr(date(2025, 1, 1)), "l")

	// Label overruns the short item's end; the real end wins for the long one.
	assert.True(t, p.WorstCaseEnd(short).After(date(2009, 1, 1)))
	assert.True(t, p.WorstCaseEnd(long).Equal(date(2025, 1, 1)))
}

func severalItems() []timeline.TimeItem {
	items := make([]timeline.TimeItem, 0, 12)
	for i := 0; i < 12; i++ {
		begin := date(2000+i, 1, 1)
		end := date(2000+i+4, 1, 1) // each spans 4 years; heavy overlap
		items = append(items, item(fmt.Sprintf("it%d", i), "X", timeline.KindInterval, begin, endPtr(end), "x"))
	}
	return items
}

func TestPackNoOverlapInvariant(t *testing.T) {
	items := severalItems()
	p := testPacker(nil)
	ps := NewPackingState()
	rows := p.PlaceAll(ps, items)

	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			if rows[items[i].ID] != rows[items[j].ID] {
				continue
			}
			a := timeline.NewInterval(items[i].Begin, p.WorstCaseEnd(items[i]))
			b := timeline.NewInterval(items[j].Begin, p.WorstCaseEnd(items[j]))
			assert.False(t, a.Overlaps(b),
				"items %s and %s share row %d but overlap", items[i].ID, items[j].ID, rows[items[i].ID])
		}
	}
}

func TestPackDeterminism(t *testing.T) {
	items := severalItems()
	p := testPacker(nil)

	first := p.PlaceAll(NewPackingState(), items)
	second := p.PlaceAll(NewPackingState(), items)
	assert.Equal(t, first, second)
}

func TestPackFirstFitMinimality(t *testing.T) {
	items := severalItems()
	p := testPacker(nil)
	ps := NewPackingState()
	rows := p.PlaceAll(ps, items)

	// An item in row k must have conflicted, at placement time, with some
	// earlier item in every row below k.
	for i, it := range items {
		k := rows[it.ID]
		iv := timeline.NewInterval(it.Begin, p.WorstCaseEnd(it))
		for r := 0; r < k; r++ {
			blocked := false
			for j := 0; j < i; j++ {
				if rows[items[j].ID] != r {
					continue
				}
				other := timeline.NewInterval(items[j].Begin, p.WorstCaseEnd(items[j]))
				if iv.Overlaps(other) {
					blocked = true
					break
				}
			}
			assert.True(t, blocked, "item %s sits in row %d but row %d was free", it.ID, k, r)
		}
	}
}

func TestPackRowGrowthBounded(t *testing.T) {
	items := severalItems()
	p := testPacker(nil)
	ps := NewPackingState()
	p.PlaceAll(ps, items)

	assert.LessOrEqual(t, ps.RowCount("X"), len(items))
	assert.Greater(t, ps.RowCount("X"), 0)
}

func TestPackSeriesAreIndependent(t *testing.T) {
	// Identical date ranges in different series never see each other.
	items := []timeline.TimeItem{
		item("a", "one", timeline.KindInterval, date(2000, 1, 1), endPtr(date(2020, 1, 1)), "a"),
		item("b", "two", timeline.KindInterval, date(2000, 1, 1), endPtr(date(2020, 1, 1)), "b"),
	}

	p := testPacker(nil)
	ps := NewPackingState()
	rows := p.PlaceAll(ps, items)

	assert.Equal(t, 0, rows["a"])
	assert.Equal(t, 0, rows["b"])
	assert.Equal(t, 1, ps.RowCount("one"))
	assert.Equal(t, 1, ps.RowCount("two"))
}

func TestPackingStateReset(t *testing.T) {
	p := testPacker(nil)
	ps := NewPackingState()
	p.PlaceAll(ps, severalItems())
	require.Greater(t, ps.RowCount("X"), 1)

	ps.Reset()
	assert.Equal(t, 0, ps.RowCount("X"))
}
