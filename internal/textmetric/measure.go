// Package textmetric provides pixel-width measurement for item labels.
//
// Layout treats measurement as an injected pure function so the packing
// engine stays independent of any particular font stack. NewFace/NewMeasure
// build the production measurer from the embedded Go regular TrueType;
// Estimate is a dependency-free approximation used where no face is wanted.
package textmetric

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Measure returns the rendered pixel width of text in the chart's fixed font.
type Measure func(text string) float64

// NewFace builds a font face from the embedded Go regular TrueType at the
// given pixel size. The same face is shared by measurement and drawing so
// the two can never disagree.
func NewFace(size float64) (font.Face, error) {
	ft, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parsing embedded font: %w", err)
	}
	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("building font face: %w", err)
	}
	return face, nil
}

// NewMeasure wraps a font face as a Measure function.
func NewMeasure(face font.Face) Measure {
	return func(text string) float64 {
		// MeasureString returns 26.6 fixed-point pixels.
		return float64(font.MeasureString(face, text)) / 64.0
	}
}

// Estimate returns a rough character-count measurer for the given font size.
// Average glyph width runs at about 0.6 of the em size.
func Estimate(size float64) Measure {
	return func(text string) float64 {
		return float64(len(text)) * size * 0.6
	}
}
