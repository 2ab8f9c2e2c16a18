package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timelane/internal/timeline"
)

func TestCapsuleBounds(t *testing.T) {
	o := Capsule(100, 20, false)
	b := o.Bounds()

	assert.InDelta(t, 0, b.X, 1e-9)
	assert.InDelta(t, 0, b.Y, 1e-9)
	assert.InDelta(t, 100, b.Width, 1e-9)
	assert.InDelta(t, 20, b.Height, 1e-9)
}

func TestCapsuleOpenHasSquareRightEnd(t *testing.T) {
	o := Capsule(100, 20, true)

	// The flat right edge keeps both of its corner points.
	hasTop, hasBottom := false, false
	for _, p := range o {
		if p.X == 100 && p.Y == 0 {
			hasTop = true
		}
		if p.X == 100 && p.Y == 20 {
			hasBottom = true
		}
	}
	assert.True(t, hasTop)
	assert.True(t, hasBottom)
}

func TestCapsuleClosedRightEndIsRounded(t *testing.T) {
	o := Capsule(100, 20, false)

	// A rounded end touches x=w only at mid-height.
	for _, p := range o {
		if p.X > 100-1e-9 {
			assert.InDelta(t, 10, p.Y, 1e-9)
		}
	}
}

func TestCapsuleDegenerateWidth(t *testing.T) {
	// Narrower than tall: the radius shrinks so the path stays inside the box.
	o := Capsule(10, 20, false)
	b := o.Bounds()

	assert.GreaterOrEqual(t, b.X, -1e-9)
	assert.LessOrEqual(t, b.X+b.Width, 10+1e-9)
}

func TestPinTipAndBounds(t *testing.T) {
	o := Pin(PinWidth, PinHeight)
	require.NotEmpty(t, o)

	// The tip is the last point; it anchors the pin at the item's time.
	tip := o[len(o)-1]
	assert.InDelta(t, 0, tip.X, 1e-9)
	assert.InDelta(t, PinHeight, tip.Y, 1e-9)

	b := o.Bounds()
	assert.InDelta(t, PinHeight, b.Y+b.Height, 1e-9)
	assert.LessOrEqual(t, b.Width, PinWidth+1e-9)
}

func TestForItem(t *testing.T) {
	capsule, err := ForItem(timeline.KindInterval, 80, 20, false)
	require.NoError(t, err)
	assert.NotEmpty(t, capsule)

	pin, err := ForItem(timeline.KindInstant, 0, 0, false)
	require.NoError(t, err)
	assert.NotEmpty(t, pin)

	_, err = ForItem(timeline.Kind(9), 80, 20, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown item kind 9")
}

func TestOutlineTranslate(t *testing.T) {
	o := Pin(PinWidth, PinHeight)
	moved := o.Translate(50, 30)

	require.Len(t, moved, len(o))
	for i := range o {
		assert.InDelta(t, o[i].X+50, moved[i].X, 1e-9)
		assert.InDelta(t, o[i].Y+30, moved[i].Y, 1e-9)
	}
}
