package chart

import (
	"image"
	"image/color"
	"math"
	"strconv"
	"time"

	"gonum.org/v1/gonum/floats"

	"timelane/internal/config"
	"timelane/internal/layout"
)

// tickSteps are the candidate tick spacings in years, smallest first.
var tickSteps = []float64{1, 2, 5, 10, 20, 25, 50, 100, 200, 250, 500, 1000}

// minTickSpacing is the smallest pixel gap between adjacent year ticks.
const minTickSpacing = 80.0

// yearTicks returns the tick years for the currently visible window,
// choosing the smallest step that keeps ticks at least minTickSpacing apart.
func yearTicks(proj layout.Projection, width float64) []float64 {
	if width <= 0 {
		return nil
	}
	y0 := float64(proj.TimeAt(0).Year())
	y1 := float64(proj.TimeAt(width).Year())
	if y1 <= y0 {
		return nil
	}

	pxPerYear := width / (y1 - y0)
	step := tickSteps[len(tickSteps)-1]
	for _, s := range tickSteps {
		if s*pxPerYear >= minTickSpacing {
			step = s
			break
		}
	}

	first := math.Ceil(y0/step) * step
	n := int(math.Floor((y1-first)/step)) + 1
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{first}
	}
	ticks := make([]float64, n)
	floats.Span(ticks, first, first+step*float64(n-1))
	return ticks
}

// drawAxis paints the year scale along the bottom edge.
func (c *Chart) drawAxis(img *image.RGBA, w, h int) {
	axisCol := config.HexColor(c.cfg.Colors.Axis, color.RGBA{R: 92, G: 99, B: 112, A: 255})
	textCol := config.HexColor(c.cfg.Colors.Text, color.RGBA{R: 230, G: 230, B: 230, A: 255})
	proj := c.view()

	axisY := h - int(axisHeight)
	bounds := img.Bounds()
	for x := 0; x < w; x++ {
		if x >= bounds.Min.X && x < bounds.Max.X && axisY >= bounds.Min.Y && axisY < bounds.Max.Y {
			img.Set(x, axisY, axisCol)
		}
	}

	for _, year := range yearTicks(proj, float64(w)) {
		t := time.Date(int(year), time.January, 1, 0, 0, 0, 0, time.UTC)
		x := int(proj.X(t))
		if x < 0 || x >= w {
			continue
		}
		for y := axisY; y < axisY+6 && y < h; y++ {
			img.Set(x, y, axisCol)
		}
		c.drawText(img, strconv.Itoa(int(year)), x+3, axisY+int(c.cfg.Font.Size)+4, textCol)
	}
}
