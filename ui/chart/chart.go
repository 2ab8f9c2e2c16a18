// Package chart provides the interactive timeline chart widget with pan,
// zoom, and lane-packed item layout.
package chart

import (
	"image/color"
	"log"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"golang.org/x/image/font"

	"timelane/internal/config"
	"timelane/internal/layout"
	"timelane/internal/shape"
	"timelane/internal/textmetric"
	"timelane/internal/timeline"
)

const (
	zoomStep = 1.25

	// laneHeaderHeight is the band above each lane holding the series name.
	laneHeaderHeight = 18.0
	// axisHeight is the band at the bottom holding year ticks.
	axisHeight = 26.0
)

// chartState tracks the redraw orchestrator's lifecycle. There is no
// terminal state; the chart lives as long as its host window.
type chartState int

const (
	stateUninitialized chartState = iota
	stateLoaded
	stateIdle
	stateRedrawing
)

// element is one retained rendered item, keyed by its stable item ID.
// Redraw passes mutate geometry in place; elements are only created and
// dropped by reconciliation, so identity survives zoom and pan.
type element struct {
	item    timeline.TimeItem
	geom    layout.ItemGeometry
	outline shape.Outline
	fill    color.RGBA
}

// Chart is a zoomable, pannable timeline chart. Wheel zooms about the
// cursor, drag pans horizontally. Rebinds can arrive from a watcher
// goroutine while the paint path is reading chart state, so every mutation
// and every draw holds mu.
type Chart struct {
	widget.BaseWidget

	mu sync.Mutex

	cfg     config.Config
	face    font.Face
	measure textmetric.Measure
	metrics layout.Metrics
	now     func() time.Time

	// Bound data and retained elements.
	items    []timeline.TimeItem
	order    []string // draw order: item IDs in input order
	series   []string // lane order: series keys in first-seen order
	elements map[string]*element

	// Per-pass layout state, reset wholesale on every redraw.
	packing  *layout.PackingState
	laneTops map[string]float64

	scale layout.TimeScale
	state chartState
	zoom  float64
	panX  float64
	width float64 // drawing surface width in pixels

	raster *fynecanvas.Raster
}

// New creates a chart configured but not yet bound to data.
func New(cfg config.Config) (*Chart, error) {
	face, err := textmetric.NewFace(cfg.Font.Size)
	if err != nil {
		return nil, err
	}

	c := &Chart{
		cfg:     cfg,
		face:    face,
		measure: textmetric.NewMeasure(face),
		metrics: layout.Metrics{
			ItemHeight: cfg.Chart.ItemHeight,
			RowMargin:  cfg.Chart.RowMargin,
		},
		now:      time.Now,
		elements: make(map[string]*element),
		packing:  layout.NewPackingState(),
		zoom:     1.0,
		width:    float64(cfg.Chart.Width),
	}

	c.raster = fynecanvas.NewRaster(c.draw)
	c.raster.ScaleMode = fynecanvas.ImageScalePixels
	c.raster.SetMinSize(fyne.NewSize(400, 300))

	c.ExtendBaseWidget(c)
	return c, nil
}

// SetNow overrides the clock, for headless rendering and tests.
func (c *Chart) SetNow(now func() time.Time) {
	c.mu.Lock()
	c.now = now
	c.mu.Unlock()
}

// Bind performs the initial data bind, or rebinds a new item list while
// preserving element identity by item ID. The scale's domain edges are
// fixed here; zoom and pan later move only the visible window.
func (c *Chart) Bind(items []timeline.TimeItem) error {
	c.mu.Lock()
	start, end, err := layout.InferDomain(items, c.now(), layout.DomainOptions{
		Strategy:    c.cfg.Domain.Strategy,
		WindowYears: c.cfg.Domain.WindowYears,
		PadYears:    c.cfg.Domain.PadYears,
	})
	if err != nil {
		c.mu.Unlock()
		return err
	}
	c.scale = layout.NewTimeScale(start, end, c.width)
	c.items = items
	c.reconcile(items)
	c.state = stateLoaded
	c.mu.Unlock()

	c.Redraw()
	return nil
}

// Redraw schedules a full layout-and-paint pass. Safe to call from timers
// and gesture handlers alike; the pass itself runs in the raster draw.
func (c *Chart) Redraw() {
	c.raster.Refresh()
}

// StartClock begins periodic redraws so the now line and open-ended items
// keep advancing between gestures. The returned function stops the clock.
func (c *Chart) StartClock(every time.Duration) func() {
	ticker := time.NewTicker(every)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-ticker.C:
				c.Redraw()
			case <-done:
				ticker.Stop()
				return
			}
		}
	}()
	return func() { close(done) }
}

// view composes the load-time scale with the current zoom transform.
type view struct {
	scale layout.TimeScale
	zoom  float64
	panX  float64
}

func (v view) X(t time.Time) float64 {
	return v.scale.X(t)*v.zoom - v.panX
}

func (v view) TimeAt(x float64) time.Time {
	return v.scale.TimeAt((x + v.panX) / v.zoom)
}

func (c *Chart) view() view {
	return view{scale: c.scale, zoom: c.zoom, panX: c.panX}
}

// Scrolled implements fyne.Scrollable: the wheel zooms about the cursor.
func (c *Chart) Scrolled(ev *fyne.ScrollEvent) {
	factor := zoomStep
	if ev.Scrolled.DY < 0 {
		factor = 1 / zoomStep
	}
	c.zoomAt(factor, float64(ev.Position.X))
}

// zoomAt scales the view, keeping the time under the cursor fixed.
func (c *Chart) zoomAt(factor, cursorX float64) {
	c.mu.Lock()
	z := c.zoom * factor
	if z < c.cfg.Chart.MinZoom {
		z = c.cfg.Chart.MinZoom
	}
	if z > c.cfg.Chart.MaxZoom {
		z = c.cfg.Chart.MaxZoom
	}
	if z == c.zoom {
		c.mu.Unlock()
		return
	}
	anchor := c.view().TimeAt(cursorX)
	c.zoom = z
	c.panX = c.scale.X(anchor)*c.zoom - cursorX
	c.mu.Unlock()

	c.Redraw()
}

// Dragged implements fyne.Draggable: dragging pans the visible window.
func (c *Chart) Dragged(ev *fyne.DragEvent) {
	c.mu.Lock()
	c.panX -= float64(ev.Dragged.DX)
	c.mu.Unlock()
	c.Redraw()
}

// DragEnd implements fyne.Draggable.
func (c *Chart) DragEnd() {}

// relayout runs one layout pass at the given surface width: reset packing
// state, recompute now, re-pack every bound item, re-project geometry onto
// the existing elements.
func (c *Chart) relayout(width float64) {
	c.state = stateRedrawing
	c.width = width
	c.scale.Width = width
	now := c.now()
	proj := c.view()

	c.packing.Reset()
	packer := layout.Packer{
		Measure:       c.measure,
		Proj:          proj,
		DomainEnd:     c.scale.DomainEnd,
		LabelPadYears: c.cfg.Domain.LabelPadYears,
	}
	rows := packer.PlaceAll(c.packing, c.items)

	// Stack lanes in first-seen series order.
	c.laneTops = make(map[string]float64, len(c.series))
	top := 0.0
	for _, s := range c.series {
		c.laneTops[s] = top
		top += laneHeaderHeight + c.metrics.LaneHeight(c.packing.RowCount(s)) + c.cfg.Chart.LaneGap
	}

	for _, id := range c.order {
		el := c.elements[id]
		itemTop := c.laneTops[el.item.Series] + laneHeaderHeight
		el.geom = layout.ProjectItem(el.item, rows[id], itemTop, now, proj, c.metrics)

		outline, err := shape.ForItem(el.item.Kind, el.geom.Width, c.cfg.Chart.ItemHeight, el.item.HasNoEnd())
		if err != nil {
			// Unknown kinds mean invalid data slipped past the loader.
			log.Fatalf("chart: %v (item %s)", err, id)
		}
		el.outline = outline
	}

	c.state = stateIdle
}

// CreateRenderer implements fyne.Widget.
func (c *Chart) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(c.raster)
}
