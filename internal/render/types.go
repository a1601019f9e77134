// Package render hosts a screen in an ebiten window.
//
// EbitenHost adapts the window to the host contract, EbitenSurface and
// EbitenBackend provide the offscreen drawing surface, Camera supplies the
// world transform and Game ties them to a screen.Screen and draws the
// surface letterboxed into the window.
package render

import (
	"fmt"
	"image/color"
)

// Config holds window settings for the demo game.
type Config struct {
	// Width and Height are the initial window size.
	Width, Height int
	// Title is the window title.
	Title string
	// Background fills the window outside the surface.
	Background color.RGBA
	// Clear fills the surface before each frame.
	Clear color.RGBA
	// Overlay shows the debug overlay.
	Overlay bool
	// MaxSurfaceSize bounds the physical surface edge.
	MaxSurfaceSize int
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return Config{
		Width:          800,
		Height:         600,
		Title:          "go-screen",
		Background:     color.RGBA{R: 12, G: 12, B: 16, A: 255},
		Clear:          color.RGBA{R: 32, G: 36, B: 48, A: 255},
		Overlay:        true,
		MaxSurfaceSize: DefaultMaxSurfaceSize,
	}
}

// Validate checks if the Config has valid values.
func (c Config) Validate() error {
	if c.Width <= 0 {
		return fmt.Errorf("width must be positive, got %d", c.Width)
	}
	if c.Height <= 0 {
		return fmt.Errorf("height must be positive, got %d", c.Height)
	}
	return nil
}
