package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/opd-ai/go-screen/internal/display"
)

// DefaultMaxSurfaceSize is the largest surface edge accepted when no limit
// is configured.
const DefaultMaxSurfaceSize = 8192

// EbitenSurface is an offscreen ebiten image standing in for the drawing
// surface. The image is (re)allocated lazily on first use after a size
// change, so it is safe to configure before the game loop starts.
type EbitenSurface struct {
	width, height int
	display       display.Dimension
	filter        ebiten.Filter
	image         *ebiten.Image
}

// NewEbitenSurface returns an empty surface with linear filtering.
func NewEbitenSurface() *EbitenSurface {
	return &EbitenSurface{filter: ebiten.FilterLinear}
}

// SetPhysicalSize sets the image size in device pixels.
func (s *EbitenSurface) SetPhysicalSize(w, h int) {
	if w == s.width && h == s.height {
		return
	}
	s.width, s.height = w, h
	if s.image != nil {
		s.image.Deallocate()
		s.image = nil
	}
}

// PhysicalSize returns the image size in device pixels.
func (s *EbitenSurface) PhysicalSize() (int, int) {
	return s.width, s.height
}

// SetDisplaySize sets the size the image is drawn at, in window pixels.
func (s *EbitenSurface) SetDisplaySize(d display.Dimension) {
	s.display = d
}

// DisplaySize returns the size the image is drawn at.
func (s *EbitenSurface) DisplaySize() display.Dimension {
	return s.display
}

// SetImageRendering selects the filter used when the image is drawn to the
// window. ebiten always has nearest-neighbour filtering, so every mode is
// supported.
func (s *EbitenSurface) SetImageRendering(mode display.ImageRendering) bool {
	switch mode {
	case display.RenderingPixelated, display.RenderingCrispEdges:
		s.filter = ebiten.FilterNearest
	default:
		s.filter = ebiten.FilterLinear
	}
	return true
}

// Filter returns the filter chosen by SetImageRendering.
func (s *EbitenSurface) Filter() ebiten.Filter {
	return s.filter
}

// Image returns the offscreen image, allocating it if needed. Sizes below
// one pixel are rounded up since ebiten cannot allocate empty images.
func (s *EbitenSurface) Image() *ebiten.Image {
	if s.image == nil {
		s.image = ebiten.NewImage(max(s.width, 1), max(s.height, 1))
	}
	return s.image
}

// EbitenBackend draws onto an EbitenSurface with a base transform that maps
// screen coordinates to device pixels.
type EbitenBackend struct {
	surface    *EbitenSurface
	maxSize    float64
	resolution display.Dimension
	geom       ebiten.GeoM
	smoothing  bool
}

// NewEbitenBackend returns a backend drawing onto surface. maxSize bounds the
// physical surface edge; zero selects DefaultMaxSurfaceSize.
func NewEbitenBackend(surface *EbitenSurface, maxSize int) *EbitenBackend {
	if maxSize <= 0 {
		maxSize = DefaultMaxSurfaceSize
	}
	return &EbitenBackend{surface: surface, maxSize: float64(maxSize), smoothing: true}
}

// UpdateViewport records the resolution being drawn.
func (b *EbitenBackend) UpdateViewport(d display.Dimension) {
	b.resolution = d
}

// Resolution returns the resolution last passed to UpdateViewport.
func (b *EbitenBackend) Resolution() display.Dimension {
	return b.resolution
}

// ResetTransform clears the base transform.
func (b *EbitenBackend) ResetTransform() {
	b.geom.Reset()
}

// Scale appends a scale to the base transform.
func (b *EbitenBackend) Scale(sx, sy float64) {
	b.geom.Scale(sx, sy)
}

// SetSmoothing selects linear or nearest filtering for images drawn through
// the backend.
func (b *EbitenBackend) SetSmoothing(smooth bool) {
	b.smoothing = smooth
}

// Smoothing reports the current smoothing mode.
func (b *EbitenBackend) Smoothing() bool {
	return b.smoothing
}

// CheckIfResolutionSupported reports whether ebiten can allocate a surface of
// the given physical size.
func (b *EbitenBackend) CheckIfResolutionSupported(d display.Dimension) bool {
	return d.Width <= b.maxSize && d.Height <= b.maxSize
}

// Transform returns the base transform.
func (b *EbitenBackend) Transform() ebiten.GeoM {
	return b.geom
}

// Apply maps a screen point to device pixels on the surface.
func (b *EbitenBackend) Apply(p display.Vector) display.Vector {
	x, y := b.geom.Apply(p.X, p.Y)
	return display.Vec(x, y)
}

// Clear fills the surface.
func (b *EbitenBackend) Clear(c color.Color) {
	b.surface.Image().Fill(c)
}

// DrawImage draws img in screen coordinates: op.GeoM is followed by the base
// transform and the filter follows the smoothing mode.
func (b *EbitenBackend) DrawImage(img *ebiten.Image, op *ebiten.DrawImageOptions) {
	if op == nil {
		op = &ebiten.DrawImageOptions{}
	}
	op.GeoM.Concat(b.geom)
	if b.smoothing {
		op.Filter = ebiten.FilterLinear
	} else {
		op.Filter = ebiten.FilterNearest
	}
	b.surface.Image().DrawImage(img, op)
}
