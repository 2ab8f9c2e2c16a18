package layout

import (
	"time"

	"timelane/internal/textmetric"
	"timelane/internal/timeline"
)

// PackingState maps each series key to its ordered list of rows, each row an
// ordered list of occupied intervals. It is reset wholesale at the start of
// every layout pass and never persisted between passes, so a pass's result
// is a function of input order alone.
type PackingState struct {
	rows map[string][][]timeline.Interval
}

// NewPackingState creates an empty packing state.
func NewPackingState() *PackingState {
	return &PackingState{rows: make(map[string][][]timeline.Interval)}
}

// Reset discards all occupied rows.
func (ps *PackingState) Reset() {
	ps.rows = make(map[string][][]timeline.Interval)
}

// RowCount returns the number of rows allocated for a series so far.
func (ps *PackingState) RowCount(series string) int {
	return len(ps.rows[series])
}

// place assigns iv the first row in the series where it collides with no
// occupied interval, appending a new row when none admits it. First-fit, not
// best-fit: greedy online interval coloring, deterministic in input order.
func (ps *PackingState) place(series string, iv timeline.Interval) int {
	for i, row := range ps.rows[series] {
		if rowAdmits(row, iv) {
			ps.rows[series][i] = append(row, iv)
			return i
		}
	}
	ps.rows[series] = append(ps.rows[series], []timeline.Interval{iv})
	return len(ps.rows[series]) - 1
}

func rowAdmits(row []timeline.Interval, iv timeline.Interval) bool {
	for _, occupied := range row {
		if iv.Overlaps(occupied) {
			return false
		}
	}
	return true
}

// Packer assigns non-overlapping rows to items within each series. The
// occupied extent of an item accounts for how far its rendered label
// overruns the item's own dates, so labels never collide either.
type Packer struct {
	Measure       textmetric.Measure
	Proj          Projection
	DomainEnd     time.Time
	LabelPadYears float64
}

// WorstCaseEnd computes the right edge of the item's occupied extent:
// where its label would finish (plus padding), the domain edge for an open
// interval, or its real end, whichever is later.
func (p Packer) WorstCaseEnd(it timeline.TimeItem) time.Time {
	textEnd := shiftYears(
		p.Proj.TimeAt(p.Proj.X(it.Begin)+p.Measure(it.Title)),
		p.LabelPadYears,
	)

	switch {
	case it.Kind == timeline.KindInstant:
		return textEnd
	case it.HasNoEnd():
		// Open intervals conservatively occupy the chart out to the
		// visible domain's right edge.
		return p.DomainEnd
	case it.End.After(textEnd):
		return *it.End
	default:
		return textEnd
	}
}

// Place packs one item into its series and returns the assigned row.
func (p Packer) Place(ps *PackingState, it timeline.TimeItem) int {
	iv := timeline.NewInterval(it.Begin, p.WorstCaseEnd(it))
	return ps.place(it.Series, iv)
}

// PlaceAll packs every item in input order and returns item ID to row.
func (p Packer) PlaceAll(ps *PackingState, items []timeline.TimeItem) map[string]int {
	rows := make(map[string]int, len(items))
	for _, it := range items {
		rows[it.ID] = p.Place(ps, it)
	}
	return rows
}
