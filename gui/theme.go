package gui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Palette of the classic Source engine menus.
var (
	colorBackground       = &color.NRGBA{R: 57, G: 53, B: 50, A: 0xff}
	colorText             = &color.NRGBA{R: 199, G: 188, B: 162, A: 0xff}
	colorButton           = &color.NRGBA{R: 163, G: 152, B: 132, A: 0xff}
	colorButtonActive     = &color.NRGBA{R: 189, G: 183, B: 164, A: 0xff}
	colorWidgetBackground = &color.NRGBA{R: 39, G: 36, B: 34, A: 0xff}
	colorFaint            = &color.NRGBA{R: 70, G: 65, B: 61, A: 0xff}
	colorStroke           = &color.NRGBA{R: 74, G: 69, B: 61, A: 0xff}
)

// TF2Theme paints the dark variant with the game's palette and forces a
// variant when one is chosen.
type TF2Theme struct {
	fyne.Theme
	variant *fyne.ThemeVariant // nil follows the system
}

// Color overrides the dark variant; everything else comes from the default theme.
func (t *TF2Theme) Color(name fyne.ThemeColorName, v fyne.ThemeVariant) color.Color {
	finalVariant := v
	if t.variant != nil {
		finalVariant = *t.variant
	}
	if finalVariant != theme.VariantDark {
		return t.Theme.Color(name, finalVariant)
	}

	switch name {
	case theme.ColorNameBackground, theme.ColorNameOverlayBackground, theme.ColorNameMenuBackground:
		return colorBackground
	case theme.ColorNameForeground:
		return colorText
	case theme.ColorNameButton, theme.ColorNamePrimary, theme.ColorNameInputBorder:
		return colorButton
	case theme.ColorNameForegroundOnPrimary:
		return colorBackground
	case theme.ColorNameHover, theme.ColorNameFocus:
		return colorButtonActive
	case theme.ColorNameInputBackground:
		return colorWidgetBackground
	case theme.ColorNameHeaderBackground:
		return colorFaint
	case theme.ColorNameSeparator:
		return colorStroke
	}
	return t.Theme.Color(name, finalVariant)
}

// NewTheme returns the theme for a ui.theme setting: "dark", "light" or "system".
func NewTheme(name string) fyne.Theme {
	t := &TF2Theme{Theme: theme.DefaultTheme()}
	switch name {
	case "light":
		light := theme.VariantLight
		t.variant = &light
	case "system":
	default:
		dark := theme.VariantDark
		t.variant = &dark
	}
	return t
}
