// Package config provides YAML-based chart configuration.
package config

import (
	"fmt"
	"image/color"
	"os"

	"gopkg.in/yaml.v3"
)

// DomainStrategy selects how the visible time domain is inferred from the
// item set. Both behaviors exist as valid product configurations.
type DomainStrategy string

const (
	// StrategyTrailingWindow anchors a fixed-width look-back window to the
	// padded latest bound; the window slides with "now" and does not auto-fit
	// the earliest item.
	StrategyTrailingWindow DomainStrategy = "trailing-window"
	// StrategyFit fits the domain tightly around the earliest and latest
	// items, padded on both sides.
	StrategyFit DomainStrategy = "fit"
)

// Config controls chart appearance and layout behavior. It maps directly to
// the YAML configuration file.
type Config struct {
	Chart  ChartConfig  `yaml:"chart"`
	Domain DomainConfig `yaml:"domain"`
	Font   FontConfig   `yaml:"font"`
	Colors ColorsConfig `yaml:"colors"`
}

// ChartConfig holds pixel dimensions and lane metrics.
type ChartConfig struct {
	Width      int     `yaml:"width"`       // initial window width in pixels
	Height     int     `yaml:"height"`      // initial window height in pixels
	ItemHeight float64 `yaml:"item_height"` // capsule height in pixels
	RowMargin  float64 `yaml:"row_margin"`  // vertical gap between rows in a lane
	LaneGap    float64 `yaml:"lane_gap"`    // vertical gap between lanes
	MinZoom    float64 `yaml:"min_zoom"`
	MaxZoom    float64 `yaml:"max_zoom"`
}

// DomainConfig holds time-domain inference parameters. All durations are in
// years; fractional values are allowed.
type DomainConfig struct {
	Strategy      DomainStrategy `yaml:"strategy"`
	WindowYears   float64        `yaml:"window_years"`    // look-back width for trailing-window
	PadYears      float64        `yaml:"pad_years"`       // padding beyond the latest bound
	LabelPadYears float64        `yaml:"label_pad_years"` // right margin added after a rendered label
}

// FontConfig holds label font settings for the fixed chart font.
type FontConfig struct {
	Size float64 `yaml:"size"` // label font size in pixels
}

// ColorsConfig holds hex color codes for the chart surfaces. Palette colors
// are assigned to series in first-seen order, wrapping around.
type ColorsConfig struct {
	Background string   `yaml:"background"`
	Axis       string   `yaml:"axis"`
	Text       string   `yaml:"text"`
	NowLine    string   `yaml:"now_line"`
	Palette    []string `yaml:"palette"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Chart: ChartConfig{
			Width:      1200,
			Height:     700,
			ItemHeight: 20,
			RowMargin:  6,
			LaneGap:    18,
			MinZoom:    0.1,
			MaxZoom:    50.0,
		},
		Domain: DomainConfig{
			Strategy:      StrategyTrailingWindow,
			WindowYears:   120,
			PadYears:      1.5,
			LabelPadYears: 0.5,
		},
		Font: FontConfig{
			Size: 13,
		},
		Colors: ColorsConfig{
			Background: "#1c1f26",
			Axis:       "#5c6370",
			Text:       "#e6e6e6",
			NowLine:    "#e05252",
			Palette: []string{
				"#4285f4", "#34a853", "#fbbc05", "#a142f4",
				"#f45b69", "#1ca8a0", "#c8753f",
			},
		},
	}
}

// Load reads configuration from a YAML file, or returns the defaults if no
// path is given. Fields missing from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("error reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("error parsing config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks option combinations that cannot be expressed by types.
func (c Config) Validate() error {
	switch c.Domain.Strategy {
	case StrategyTrailingWindow, StrategyFit:
	default:
		return fmt.Errorf("unknown domain strategy %q", c.Domain.Strategy)
	}
	if c.Domain.Strategy == StrategyTrailingWindow && c.Domain.WindowYears <= 0 {
		return fmt.Errorf("trailing-window strategy needs window_years > 0, got %g", c.Domain.WindowYears)
	}
	if c.Chart.ItemHeight <= 0 {
		return fmt.Errorf("item_height must be positive, got %g", c.Chart.ItemHeight)
	}
	if c.Chart.MinZoom <= 0 || c.Chart.MaxZoom < c.Chart.MinZoom {
		return fmt.Errorf("invalid zoom range [%g, %g]", c.Chart.MinZoom, c.Chart.MaxZoom)
	}
	return nil
}

// HexColor parses a #rrggbb color code, falling back when the code is
// malformed or empty.
func HexColor(s string, fallback color.RGBA) color.RGBA {
	if len(s) != 7 || s[0] != '#' {
		return fallback
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return fallback
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
