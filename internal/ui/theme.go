package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// LampiTheme is a compact theme with the lamp's warm accent colours
type LampiTheme struct{}

// NewLampiTheme creates a new Lampi theme
func NewLampiTheme() fyne.Theme {
	return &LampiTheme{}
}

// Color returns theme colors
func (t *LampiTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return color.NRGBA{R: 255, G: 149, B: 0, A: 255} // Amber for play and primary actions
	case theme.ColorNameError:
		return color.NRGBA{R: 255, G: 59, B: 48, A: 255} // Red for delete
	case theme.ColorNameSuccess:
		return color.NRGBA{R: 52, G: 199, B: 89, A: 255}
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.NRGBA{R: 18, G: 18, B: 18, A: 255}
		}
		return color.NRGBA{R: 255, G: 255, B: 255, A: 255} // The lamp screen is white
	case theme.ColorNameForeground:
		if variant == theme.VariantDark {
			return color.NRGBA{R: 255, G: 255, B: 255, A: 255}
		}
		return color.NRGBA{R: 0, G: 0, B: 0, A: 255}
	}

	// Use default colors for everything else
	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *LampiTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *LampiTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *LampiTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameScrollBar:
		return 12
	case theme.SizeNameHeadingText:
		return 22 // Large navigation title
	case theme.SizeNameInputRadius:
		return 8
	}

	return theme.DefaultTheme().Size(name)
}
