package chart

import (
	"image"
	"image/color"
	"sort"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"timelane/internal/config"
	"timelane/internal/shape"
	"timelane/internal/timeline"
)

// draw is the raster drawing function. Every invocation is one complete
// redraw pass: layout first, then paint. It holds the chart mutex for the
// whole pass so a concurrent rebind never mutates state mid-draw.
func (c *Chart) draw(w, h int) image.Image {
	c.mu.Lock()
	defer c.mu.Unlock()

	img := image.NewRGBA(image.Rect(0, 0, w, h))

	bg := config.HexColor(c.cfg.Colors.Background, color.RGBA{R: 28, G: 31, B: 38, A: 255})
	fillBackground(img, bg)

	if c.state == stateUninitialized || len(c.items) == 0 {
		return img
	}
	c.relayout(float64(w))

	textCol := config.HexColor(c.cfg.Colors.Text, color.RGBA{R: 230, G: 230, B: 230, A: 255})

	// Lane headers behind the items.
	for _, s := range c.series {
		c.drawText(img, s, 6, int(c.laneTops[s]+laneHeaderHeight-5), textCol)
	}

	for _, id := range c.order {
		el := c.elements[id]
		c.drawElement(img, el, textCol)
	}

	c.drawAxis(img, w, h)
	c.drawNowLine(img, h)

	return img
}

// Snapshot renders the chart into an image without a display, for headless
// export and tests.
func (c *Chart) Snapshot(w, h int) *image.RGBA {
	return c.draw(w, h).(*image.RGBA)
}

// drawElement paints one item's shape and label.
func (c *Chart) drawElement(img *image.RGBA, el *element, textCol color.RGBA) {
	outline := el.outline.Translate(el.geom.X, el.geom.Y)
	fillOutline(img, outline, el.fill)

	baseline := int(el.geom.Y + c.cfg.Chart.ItemHeight/2 + c.cfg.Font.Size/3)
	labelX := int(el.geom.X + c.cfg.Chart.ItemHeight/2)
	if el.item.Kind == timeline.KindInstant {
		// The pin tip anchors at the item's x; label sits right of the head.
		labelX = int(el.geom.X + shape.PinWidth/2 + 3)
		baseline = int(el.geom.Y + c.cfg.Font.Size)
	}
	c.drawText(img, el.item.Title, labelX, baseline, textCol)
}

// drawNowLine marks the current time with a vertical line.
func (c *Chart) drawNowLine(img *image.RGBA, h int) {
	col := config.HexColor(c.cfg.Colors.NowLine, color.RGBA{R: 224, G: 82, B: 82, A: 255})
	x := int(c.view().X(c.now()))
	bounds := img.Bounds()
	if x < bounds.Min.X || x >= bounds.Max.X {
		return
	}
	for y := 0; y < h-int(axisHeight); y++ {
		img.Set(x, y, col)
	}
}

// drawText draws a string with the chart's fixed face, baseline at (x, y).
func (c *Chart) drawText(img *image.RGBA, s string, x, y int, col color.RGBA) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: c.face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// fillBackground floods the image with a single color.
func fillBackground(img *image.RGBA, col color.RGBA) {
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			img.Set(x, y, col)
		}
	}
}

// fillOutline fills a closed outline using a scanline algorithm.
func fillOutline(img *image.RGBA, outline shape.Outline, col color.RGBA) {
	if len(outline) < 3 {
		return
	}
	bounds := img.Bounds()
	box := outline.Bounds()

	minY := int(box.Y)
	maxY := int(box.Y + box.Height)
	n := len(outline)

	for y := minY; y <= maxY; y++ {
		if y < bounds.Min.Y || y >= bounds.Max.Y {
			continue
		}

		// Find all x intersections with outline edges at this y.
		var xIntersections []float64
		for i := 0; i < n; i++ {
			p1 := outline[i]
			p2 := outline[(i+1)%n]
			if (p1.Y <= float64(y) && p2.Y > float64(y)) ||
				(p2.Y <= float64(y) && p1.Y > float64(y)) {
				t := (float64(y) - p1.Y) / (p2.Y - p1.Y)
				xIntersections = append(xIntersections, p1.X+t*(p2.X-p1.X))
			}
		}
		sort.Float64s(xIntersections)

		// Fill between pairs of intersections.
		for i := 0; i+1 < len(xIntersections); i += 2 {
			x1 := int(xIntersections[i])
			x2 := int(xIntersections[i+1])
			for x := x1; x <= x2; x++ {
				if x >= bounds.Min.X && x < bounds.Max.X {
					img.Set(x, y, col)
				}
			}
		}
	}
}
