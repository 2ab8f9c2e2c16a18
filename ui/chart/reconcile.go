package chart

import (
	"image/color"

	"timelane/internal/config"
	"timelane/internal/timeline"
)

// reconcile updates the retained element map against a new keyed item list:
// matching IDs are updated in place, new IDs get fresh elements, vanished
// IDs are dropped. It also rebuilds the draw order and the first-seen lane
// order for series.
func (c *Chart) reconcile(items []timeline.TimeItem) {
	seen := make(map[string]bool, len(items))
	seriesIndex := make(map[string]int)
	c.order = c.order[:0]
	c.series = c.series[:0]

	for _, it := range items {
		seen[it.ID] = true
		c.order = append(c.order, it.ID)
		if _, ok := seriesIndex[it.Series]; !ok {
			seriesIndex[it.Series] = len(c.series)
			c.series = append(c.series, it.Series)
		}

		el, ok := c.elements[it.ID]
		if !ok {
			el = &element{}
			c.elements[it.ID] = el
		}
		el.item = it
		el.fill = c.seriesColor(seriesIndex[it.Series])
	}

	for id := range c.elements {
		if !seen[id] {
			delete(c.elements, id)
		}
	}
}

// seriesColor assigns palette colors to lanes in first-seen order, wrapping
// when there are more series than palette entries.
func (c *Chart) seriesColor(laneIndex int) color.RGBA {
	fallback := color.RGBA{R: 66, G: 133, B: 244, A: 255}
	palette := c.cfg.Colors.Palette
	if len(palette) == 0 {
		return fallback
	}
	return config.HexColor(palette[laneIndex%len(palette)], fallback)
}
