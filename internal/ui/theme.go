package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// DockTheme defines a dark, tight theme for the dock surfaces with reduced
// padding so buttons sit close to the panel edge
type DockTheme struct{}

// NewDockTheme creates a new dock theme
func NewDockTheme() fyne.Theme {
	return &DockTheme{}
}

// Color returns theme colors
func (t *DockTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return color.NRGBA{R: 18, G: 18, B: 18, A: 255}
	case theme.ColorNameForeground:
		return color.NRGBA{R: 235, G: 235, B: 235, A: 255}
	case theme.ColorNameError:
		return color.NRGBA{R: 183, G: 28, B: 28, A: 255}
	case theme.ColorNamePrimary:
		return color.NRGBA{R: 25, G: 118, B: 210, A: 255}
	}

	// Use default dark colors for everything else
	return theme.DefaultTheme().Color(name, theme.VariantDark)
}

// Font returns theme fonts
func (t *DockTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *DockTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with tight adjustments
func (t *DockTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 2 // Reduced from default 4
	case theme.SizeNameInnerPadding:
		return 4 // Reduced from default 8
	case theme.SizeNameInputRadius:
		return 3 // Reduced from default 5
	}

	// Use default theme for everything else
	return theme.DefaultTheme().Size(name)
}
