package screen

import (
	"errors"
	"fmt"
	"math"

	"github.com/opd-ai/go-screen/internal/display"
)

// Options configures a Screen at construction.
//
// Start from DefaultOptions rather than a literal: the zero value of
// Antialiasing is false, while a Screen is meant to antialias unless told
// otherwise. A literal Options{Viewport: ...} turns antialiasing off.
type Options struct {
	// Antialiasing smooths the surface when it is scaled. It defaults to true
	// in DefaultOptions; a zero Options leaves it off.
	Antialiasing bool

	// PixelRatioOverride pins the pixel ratio. Zero means follow the host.
	PixelRatioOverride float64

	// Resolution is the logical drawing size. Zero means same as Viewport.
	// FillScreen and FillContainer replace it on every resize.
	Resolution Dimension

	// Viewport is the displayed size in page units. Required.
	Viewport Dimension

	// DisplayMode is fixed for the lifetime of the Screen.
	DisplayMode DisplayMode

	// Logger receives debug and warning messages. If nil, nothing is logged.
	Logger Logger

	// Metrics collects counters. If nil, a private collector is used.
	Metrics *Metrics
}

// DefaultOptions returns Options with an 800x600 viewport, Fixed mode and
// antialiasing on.
func DefaultOptions() Options {
	return Options{
		Antialiasing: true,
		Viewport:     Dim(800, 600),
		DisplayMode:  Fixed,
	}
}

// ErrInvalidOptions is wrapped by every Options validation failure.
var ErrInvalidOptions = errors.New("invalid screen options")

// Validate checks the options for values a Screen cannot work with.
func (o Options) Validate() error {
	if !positive(o.Viewport.Width) || !positive(o.Viewport.Height) {
		return fmt.Errorf("%w: viewport must be positive, got %v", ErrInvalidOptions, o.Viewport)
	}
	if !o.Resolution.IsZero() && (!positive(o.Resolution.Width) || !positive(o.Resolution.Height)) {
		return fmt.Errorf("%w: resolution must be positive, got %v", ErrInvalidOptions, o.Resolution)
	}
	if o.PixelRatioOverride < 0 || math.IsNaN(o.PixelRatioOverride) {
		return fmt.Errorf("%w: pixel ratio override must not be negative, got %v", ErrInvalidOptions, o.PixelRatioOverride)
	}
	if _, err := display.ParseDisplayMode(o.DisplayMode.String()); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidOptions, err)
	}
	return nil
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

// Logger interface for custom logging.
// It follows the slog-style signature for compatibility with Go's structured logging.
type Logger = display.Logger
