package layout

import (
	"time"

	"timelane/internal/timeline"
)

// Metrics holds the vertical sizing used when projecting rows to pixels.
type Metrics struct {
	ItemHeight float64
	RowMargin  float64
}

// ItemGeometry is the pixel placement of one packed item. Instants carry a
// zero Width and render as a fixed-size glyph anchored at X.
type ItemGeometry struct {
	X     float64
	Y     float64
	Width float64
	Row   int
}

// RowY returns the vertical offset of a row inside its lane.
func (m Metrics) RowY(row int) float64 {
	return m.RowMargin + float64(row)*(m.ItemHeight+m.RowMargin)
}

// LaneHeight returns the vertical extent of a lane holding the given number
// of rows.
func (m Metrics) LaneHeight(rows int) float64 {
	if rows < 1 {
		rows = 1
	}
	return m.RowY(rows-1) + m.ItemHeight + m.RowMargin
}

// ProjectItem maps a packed item to pixel coordinates. Open-ended intervals
// draw out to now, which advances between redraws, so the projection is
// recomputed on every pass.
func ProjectItem(it timeline.TimeItem, row int, laneTop float64, now time.Time, proj Projection, m Metrics) ItemGeometry {
	x := proj.X(it.Begin)
	g := ItemGeometry{
		X:   x,
		Y:   laneTop + m.RowY(row),
		Row: row,
	}
	if it.Kind == timeline.KindInterval {
		end := now
		if !it.HasNoEnd() {
			end = *it.End
		}
		g.Width = proj.X(end) - x
	}
	return g
}
