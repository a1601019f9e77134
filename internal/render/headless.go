package render

import (
	"github.com/opd-ai/go-screen/internal/display"
)

// HeadlessSurface records what a screen applies without allocating images.
// The probe command uses it to report layouts on machines without a GPU.
type HeadlessSurface struct {
	Width, Height int
	Display       display.Dimension
	Rendering     display.ImageRendering
}

// SetPhysicalSize implements display.Surface.
func (s *HeadlessSurface) SetPhysicalSize(w, h int) { s.Width, s.Height = w, h }

// PhysicalSize implements display.Surface.
func (s *HeadlessSurface) PhysicalSize() (int, int) { return s.Width, s.Height }

// SetDisplaySize implements display.Surface.
func (s *HeadlessSurface) SetDisplaySize(d display.Dimension) { s.Display = d }

// SetImageRendering implements display.Surface.
func (s *HeadlessSurface) SetImageRendering(mode display.ImageRendering) bool {
	s.Rendering = mode
	return true
}

// HeadlessBackend records backend calls and enforces a surface size limit.
type HeadlessBackend struct {
	MaxSize    int
	Resolution display.Dimension
	Smoothing  bool
	ScaleX     float64
	ScaleY     float64
}

// UpdateViewport implements display.Backend.
func (b *HeadlessBackend) UpdateViewport(d display.Dimension) { b.Resolution = d }

// ResetTransform implements display.Backend.
func (b *HeadlessBackend) ResetTransform() { b.ScaleX, b.ScaleY = 1, 1 }

// SetSmoothing implements display.Backend.
func (b *HeadlessBackend) SetSmoothing(smooth bool) { b.Smoothing = smooth }

// Scale implements display.Scaler.
func (b *HeadlessBackend) Scale(sx, sy float64) { b.ScaleX, b.ScaleY = b.ScaleX*sx, b.ScaleY*sy }

// CheckIfResolutionSupported implements display.ResolutionChecker.
func (b *HeadlessBackend) CheckIfResolutionSupported(d display.Dimension) bool {
	limit := float64(b.MaxSize)
	if limit <= 0 {
		limit = DefaultMaxSurfaceSize
	}
	return d.Width <= limit && d.Height <= limit
}
