// Package app provides application-level glue: the Fyne theme and the data
// file watcher.
package app

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Theme darkens the surrounding chrome so it does not fight the chart
// surface, which paints its own dark background.
type Theme struct{}

var _ fyne.Theme = (*Theme)(nil)

func (t *Theme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return color.NRGBA{R: 0x1C, G: 0x1F, B: 0x26, A: 0xFF}
	case theme.ColorNamePrimary:
		return color.NRGBA{R: 0x42, G: 0x85, B: 0xF4, A: 0xFF}
	case theme.ColorNameForeground:
		return color.NRGBA{R: 0xE6, G: 0xE6, B: 0xE6, A: 0xFF}
	default:
		return theme.DefaultTheme().Color(name, theme.VariantDark)
	}
}

func (t *Theme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (t *Theme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (t *Theme) Size(name fyne.ThemeSizeName) float32 {
	return theme.DefaultTheme().Size(name)
}
