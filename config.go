package guigrid

import (
	"image/color"

	"gioui.org/font/gofont"
	"gioui.org/unit"
	"gioui.org/widget/material"
)

// Default window size, in dp.
const (
	DefaultWidth  = 480
	DefaultHeight = 320
)

// Config holds the window and appearance settings of a Gui.
type Config struct {
	Title string
	// Width and Height are the initial window size, in dp.
	Width, Height float32

	// Spacing is the gap between grid tracks.
	Spacing unit.Dp
	// Inset is the margin around the grid.
	Inset    unit.Dp
	TextSize unit.Sp

	// Background fills the area behind the grid. A transparent color leaves it untouched.
	Background color.NRGBA
}

// DefaultConfig returns the settings used by New.
func DefaultConfig() Config {
	return Config{
		Title:      "guigrid",
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		Spacing:    unit.Dp(6),
		Inset:      unit.Dp(8),
		TextSize:   unit.Sp(16),
		Background: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	}
}

// theme returns a material theme using the Go fonts and the configured text size.
func (c Config) theme() *material.Theme {
	th := material.NewTheme(gofont.Collection())
	if c.TextSize > 0 {
		th.TextSize = c.TextSize
	}
	return th
}
