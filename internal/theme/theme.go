package theme

import (
	"image/color"
)

// Theme defines the colours of the drawing pad.
type Theme struct {
	Name string

	// Surface
	Paper color.RGBA // Surface background, restored on every clear
	Ink   color.RGBA // Brush colour

	// Window chrome
	Background color.RGBA // Area around the surface
	StatusBar  color.RGBA
	StatusText color.RGBA
	Accent     color.RGBA // Highlights the submit hint once a stroke exists
}

// Default returns the hardcoded default theme (fallback).
func Default() *Theme {
	return &Theme{
		Name:       "Default",
		Paper:      color.RGBA{255, 255, 255, 255},
		Ink:        color.RGBA{17, 17, 17, 255},
		Background: color.RGBA{220, 220, 220, 255},
		StatusBar:  color.RGBA{200, 200, 200, 255},
		StatusText: color.RGBA{0, 0, 0, 255},
		Accent:     color.RGBA{0, 120, 60, 255},
	}
}
