// Package config loads screen settings from Lua configuration files.
//
// A configuration file assigns a table to screen.config:
//
//	screen.config = {
//	    display_mode = 'FitScreen',
//	    viewport = { width = 800, height = 600 },
//	    resolution = 'SNES',
//	    antialiasing = false,
//	}
//
// Files are evaluated by a sandboxed golua runtime with CPU and memory
// limits, so configurations may compute values with ordinary Lua.
package config

import (
	"fmt"

	"github.com/opd-ai/go-screen/internal/display"
	"github.com/opd-ai/go-screen/pkg/screen"
)

// Config holds the settings of one screen and the demo that hosts it.
type Config struct {
	// DisplayMode is the resize policy.
	DisplayMode display.DisplayMode
	// Viewport is the displayed size in page units.
	Viewport display.Dimension
	// Resolution is the logical drawing size. Zero means same as Viewport.
	Resolution display.Dimension
	// ResolutionPreset records the preset name Resolution came from, if any.
	ResolutionPreset string
	// Antialiasing smooths the surface when scaled.
	Antialiasing bool
	// PixelRatio pins the device pixel ratio. Zero follows the host.
	PixelRatio float64

	// Title is the window title, after environment expansion.
	Title string
	// Overlay shows the debug overlay in the demo.
	Overlay bool
	// MaxSurfaceSize is the largest physical surface edge the renderer
	// accepts before warning.
	MaxSurfaceSize int

	// LogLevel and LogFormat select the slog handler.
	LogLevel  string
	LogFormat string
}

// EffectiveResolution returns Resolution, or Viewport when it is unset.
func (c *Config) EffectiveResolution() display.Dimension {
	if c.Resolution.IsZero() {
		return c.Viewport
	}
	return c.Resolution
}

// ScreenOptions converts the configuration to screen.Options. logger and
// metrics are passed through unchanged and may be nil.
func (c *Config) ScreenOptions(logger screen.Logger, metrics *screen.Metrics) screen.Options {
	return screen.Options{
		Antialiasing:       c.Antialiasing,
		PixelRatioOverride: c.PixelRatio,
		Resolution:         c.Resolution,
		Viewport:           c.Viewport,
		DisplayMode:        c.DisplayMode,
		Logger:             logger,
		Metrics:            metrics,
	}
}

// String returns a one-line summary.
func (c *Config) String() string {
	res := c.EffectiveResolution().String()
	if c.ResolutionPreset != "" {
		res = fmt.Sprintf("%s (%s)", res, c.ResolutionPreset)
	}
	return fmt.Sprintf("mode=%s viewport=%s resolution=%s antialiasing=%v pixel_ratio=%g",
		c.DisplayMode, c.Viewport, res, c.Antialiasing, c.PixelRatio)
}
