package display

import "math"

// ImageRendering selects how the host scales the surface onto the page.
type ImageRendering int

const (
	// RenderingAuto lets the host smooth the surface.
	RenderingAuto ImageRendering = iota
	// RenderingPixelated scales with nearest-neighbour sampling.
	RenderingPixelated
	// RenderingCrispEdges is the older name some hosts use for pixelated.
	RenderingCrispEdges
)

// String returns the CSS-style name of the mode.
func (r ImageRendering) String() string {
	switch r {
	case RenderingPixelated:
		return "pixelated"
	case RenderingCrispEdges:
		return "crisp-edges"
	default:
		return "auto"
	}
}

// Surface is the physical drawing surface.
type Surface interface {
	// SetPhysicalSize sets the backing store size in device pixels.
	SetPhysicalSize(width, height int)
	// PhysicalSize returns the backing store size in device pixels.
	PhysicalSize() (width, height int)
	// SetDisplaySize sets the size the surface is shown at on the page.
	SetDisplaySize(viewport Dimension)
	// SetImageRendering returns false when the mode is not supported.
	SetImageRendering(mode ImageRendering) bool
}

// Backend is the rendering backend drawing into the surface. Resizing the
// surface invalidates backend state, so all three are called after every
// apply.
type Backend interface {
	UpdateViewport(resolution Dimension)
	ResetTransform()
	SetSmoothing(smooth bool)
}

// Scaler is implemented by backends that draw in device pixels and must be
// scaled by the pixel ratio after every reset.
type Scaler interface {
	Scale(sx, sy float64)
}

// ResolutionChecker is implemented by backends with a maximum surface size.
type ResolutionChecker interface {
	CheckIfResolutionSupported(physical Dimension) bool
}

// SurfaceSync applies a resolved layout to the surface and backend.
type SurfaceSync struct {
	surface Surface
	backend Backend
	logger  Logger

	// warned is set the first time an unsupported physical resolution is
	// logged and never reset; rebuild the SurfaceSync to warn again.
	warned bool
}

// NewSurfaceSync returns a SurfaceSync for surface and backend. Either may
// be nil in which case the corresponding step is skipped.
func NewSurfaceSync(surface Surface, backend Backend, logger Logger) *SurfaceSync {
	return &SurfaceSync{surface: surface, backend: backend, logger: orNop(logger)}
}

// Warned reports whether the unsupported-resolution warning has been logged.
func (s *SurfaceSync) Warned() bool {
	return s.warned
}

// Apply resizes the surface for m and resets the backend. It returns true if
// this call logged the unsupported-resolution warning.
func (s *SurfaceSync) Apply(m Metrics, antialiasing bool) bool {
	warnedNow := false
	scaled := m.Scaled()

	if s.surface != nil {
		s.surface.SetPhysicalSize(physical(scaled.Width), physical(scaled.Height))
	}

	if checker, ok := s.backend.(ResolutionChecker); ok {
		if !checker.CheckIfResolutionSupported(scaled) && !s.warned {
			s.warned = true
			warnedNow = true
			s.logger.Warn("configured resolution and pixel ratio are too large for the rendering backend; "+
				"rendering may behave oddly, reduce the resolution or disable hi-dpi scaling",
				"resolution", m.Resolution.String(),
				"pixel_ratio", m.PixelRatio)
		}
	}

	if s.surface != nil {
		s.applyRendering(antialiasing)
		s.surface.SetDisplaySize(m.Viewport)
	}

	if s.backend != nil {
		s.backend.UpdateViewport(m.Resolution)
		s.backend.ResetTransform()
		s.backend.SetSmoothing(antialiasing)
		if scaler, ok := s.backend.(Scaler); ok {
			scaler.Scale(m.PixelRatio, m.PixelRatio)
		}
	}
	return warnedNow
}

// SetSmoothing updates only the smoothing mode.
func (s *SurfaceSync) SetSmoothing(antialiasing bool) {
	if s.backend != nil {
		s.backend.SetSmoothing(antialiasing)
	}
}

func (s *SurfaceSync) applyRendering(antialiasing bool) {
	if antialiasing {
		s.surface.SetImageRendering(RenderingAuto)
		return
	}
	if !s.surface.SetImageRendering(RenderingPixelated) {
		s.surface.SetImageRendering(RenderingCrispEdges)
	}
}

// physical rounds a scaled length to whole device pixels, flooring like an
// integer canvas size assignment.
func physical(v float64) int {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return int(math.Floor(v))
}
