package internal

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Theme defines the visual appearance of the app.
type Theme struct {
	AccentColor      sdl.Color // Active page indicator and next button
	IndicatorColor   sdl.Color // Inactive page indicators
	ButtonIconColor  sdl.Color // Arrow on the next button
	TextColor        sdl.Color // Slide titles and headings
	DescriptionColor sdl.Color // Slide descriptions and hints
	BackgroundColor  sdl.Color // Screen background
	FontPath         string    // Path to the primary UI font
}

var currentTheme Theme

// SetTheme sets the active theme.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the active theme.
func GetTheme() Theme {
	return currentTheme
}

// HexToColor converts 0xRRGGBB to an opaque sdl.Color.
func HexToColor(hex uint32) sdl.Color {
	return sdl.Color{
		R: uint8(hex >> 16 & 0xFF),
		G: uint8(hex >> 8 & 0xFF),
		B: uint8(hex & 0xFF),
		A: 255,
	}
}
