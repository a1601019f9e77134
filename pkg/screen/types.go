package screen

import "github.com/opd-ai/go-screen/internal/display"

// Value types shared with the display core.
type (
	Dimension   = display.Dimension
	Vector      = display.Vector
	BoundingBox = display.BoundingBox
	DisplayMode = display.DisplayMode
	// DisplayMetrics is a snapshot of the values derived sizes come from.
	DisplayMetrics = display.Metrics
)

// Collaborator contracts. See the display package for their documentation.
type (
	Host               = display.Host
	Subscription       = display.Subscription
	Camera             = display.Camera
	Surface            = display.Surface
	Backend            = display.Backend
	Scaler             = display.Scaler
	ResolutionChecker  = display.ResolutionChecker
	PixelRatioListener = display.PixelRatioListener
	ImageRendering     = display.ImageRendering
)

// Display modes.
const (
	Fixed               = display.Fixed
	FitContainer        = display.FitContainer
	FitContainerAndFill = display.FitContainerAndFill
	FitScreen           = display.FitScreen
	FitScreenAndFill    = display.FitScreenAndFill
	FillScreen          = display.FillScreen
	FillContainer       = display.FillContainer
)

// Image rendering modes applied to the surface.
const (
	RenderingAuto       = display.RenderingAuto
	RenderingPixelated  = display.RenderingPixelated
	RenderingCrispEdges = display.RenderingCrispEdges
)

// Dim is shorthand for Dimension{Width: w, Height: h}.
func Dim(w, h float64) Dimension { return display.Dim(w, h) }

// Vec is shorthand for Vector{X: x, Y: y}.
func Vec(x, y float64) Vector { return display.Vec(x, y) }

// ParseDisplayMode parses a display mode name.
func ParseDisplayMode(s string) (DisplayMode, error) { return display.ParseDisplayMode(s) }

// Preset returns one of the named resolutions (SVGA, Standard, Atari2600,
// GameBoy, GameBoyAdvance, NintendoDS, NES, SNES).
func Preset(name string) (Dimension, bool) { return display.Preset(name) }
