// Package shape builds drawable outlines for timeline items: capsules for
// intervals and pin glyphs for instants. Outlines are closed point paths in
// item-local coordinates, consumed by the chart's scanline filler.
package shape

import (
	"fmt"
	"math"

	"timelane/internal/timeline"
	"timelane/pkg/geometry"
)

// Outline is a closed path of points. The last point connects back to the
// first implicitly.
type Outline []geometry.Point2D

const (
	// arcSteps is the number of segments used to sample a quarter arc.
	arcSteps = 8

	// PinWidth and PinHeight fix the size of the instant glyph.
	PinWidth  = 14.0
	PinHeight = 22.0
)

// ForItem builds the outline for an item of the given kind and size. An
// unknown kind is a data-validation bug upstream, reported as an error
// rather than drawn as nothing.
func ForItem(kind timeline.Kind, w, h float64, open bool) (Outline, error) {
	switch kind {
	case timeline.KindInterval:
		return Capsule(w, h, open), nil
	case timeline.KindInstant:
		return Pin(PinWidth, PinHeight), nil
	default:
		return nil, fmt.Errorf("shape: cannot build outline for unknown item kind %d", int(kind))
	}
}

// Capsule returns the outline of an interval bar: flat top and bottom edges
// between rounded ends, corner radius h/2. When open is true the right end
// is flat instead of rounded, signaling that the span continues beyond the
// chart.
func Capsule(w, h float64, open bool) Outline {
	r := h / 2
	if w < h {
		// Degenerate short bar: shrink the radius so the ends still meet.
		r = w / 2
	}

	o := make(Outline, 0, 4*arcSteps+6)

	// Left end: from (0, r) up around to (r, 0).
	o = append(o, arc(r, r, r, math.Pi, 1.5*math.Pi)...)
	o = append(o, geometry.NewPoint2D(w-r, 0))
	if open {
		o = append(o,
			geometry.NewPoint2D(w, 0),
			geometry.NewPoint2D(w, h),
		)
	} else {
		// Right end: down around (w-r, r) through (w, r) to (w-r, h).
		o = append(o, arc(w-r, r, r, 1.5*math.Pi, 2.5*math.Pi)...)
	}
	o = append(o, geometry.NewPoint2D(r, h))
	// Close the left end back toward (0, r).
	o = append(o, arc(r, r, r, 0.5*math.Pi, math.Pi)...)
	return o
}

// Pin returns a downward-pointing teardrop for instant items: a round head
// tapering to a tip at (0, h). The tip anchors at the item's x position.
func Pin(w, h float64) Outline {
	r := w / 2
	// taperAngle is the half-width of the wedge left open at the bottom of
	// the head for the taper to the tip.
	const taperAngle = math.Pi / 5

	o := make(Outline, 0, 4*arcSteps+2)
	start := 0.5*math.Pi + taperAngle
	end := 2.5*math.Pi - taperAngle
	o = append(o, arc(0, r, r, start, end)...)
	o = append(o, geometry.NewPoint2D(0, h))
	return o
}

// Bounds returns the axis-aligned bounding box of the outline.
func (o Outline) Bounds() geometry.Rect {
	return geometry.BoundingBox(o)
}

// Translate returns the outline shifted by (dx, dy).
func (o Outline) Translate(dx, dy float64) Outline {
	out := make(Outline, len(o))
	for i, p := range o {
		out[i] = geometry.NewPoint2D(p.X+dx, p.Y+dy)
	}
	return out
}

// arc samples points on a circle from angle a0 to a1 (radians, y-down).
func arc(cx, cy, r, a0, a1 float64) []geometry.Point2D {
	steps := int(math.Ceil(math.Abs(a1-a0) / (0.5 * math.Pi) * arcSteps))
	if steps < 1 {
		steps = 1
	}
	pts := make([]geometry.Point2D, 0, steps+1)
	for i := 0; i <= steps; i++ {
		a := a0 + (a1-a0)*float64(i)/float64(steps)
		pts = append(pts, geometry.NewPoint2D(cx+r*math.Cos(a), cy+r*math.Sin(a)))
	}
	return pts
}
