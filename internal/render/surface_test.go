//go:build !noebiten

package render

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/opd-ai/go-screen/internal/display"
)

func TestEbitenSurfaceLazyImage(t *testing.T) {
	s := NewEbitenSurface()
	s.SetPhysicalSize(0, 0)
	if b := s.Image().Bounds(); b.Dx() != 1 || b.Dy() != 1 {
		t.Errorf("empty surface image = %v, want 1x1", b)
	}

	s.SetPhysicalSize(64, 32)
	img := s.Image()
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 32 {
		t.Errorf("image bounds = %v, want 64x32", b)
	}
	if s.Image() != img {
		t.Error("image reallocated without a size change")
	}
	s.SetPhysicalSize(64, 32)
	if s.Image() != img {
		t.Error("image reallocated for the same size")
	}
}

func TestEbitenSurfaceRendering(t *testing.T) {
	s := NewEbitenSurface()
	if s.Filter() != ebiten.FilterLinear {
		t.Errorf("default filter = %v", s.Filter())
	}
	for mode, want := range map[display.ImageRendering]ebiten.Filter{
		display.RenderingPixelated:  ebiten.FilterNearest,
		display.RenderingCrispEdges: ebiten.FilterNearest,
		display.RenderingAuto:       ebiten.FilterLinear,
	} {
		if !s.SetImageRendering(mode) {
			t.Errorf("SetImageRendering(%v) unsupported", mode)
		}
		if s.Filter() != want {
			t.Errorf("filter for %v = %v, want %v", mode, s.Filter(), want)
		}
	}
}

func TestEbitenBackendTransform(t *testing.T) {
	b := NewEbitenBackend(NewEbitenSurface(), 0)
	b.ResetTransform()
	b.Scale(2, 2)
	if got := b.Apply(display.Vec(10, 5)); got != display.Vec(20, 10) {
		t.Errorf("Apply = %v, want (20, 10)", got)
	}
	b.ResetTransform()
	if got := b.Apply(display.Vec(10, 5)); got != display.Vec(10, 5) {
		t.Errorf("Apply after reset = %v", got)
	}
}

func TestEbitenBackendResolutionLimit(t *testing.T) {
	b := NewEbitenBackend(NewEbitenSurface(), 1024)
	if !b.CheckIfResolutionSupported(display.Dim(1024, 768)) {
		t.Error("1024x768 rejected")
	}
	if b.CheckIfResolutionSupported(display.Dim(2048, 768)) {
		t.Error("2048x768 accepted")
	}
	if NewEbitenBackend(nil, 0).maxSize != DefaultMaxSurfaceSize {
		t.Error("zero limit did not select the default")
	}
}

func TestEbitenBackendDrawImage(t *testing.T) {
	surface := NewEbitenSurface()
	surface.SetPhysicalSize(8, 8)
	b := NewEbitenBackend(surface, 0)
	b.Scale(2, 2)
	b.SetSmoothing(false)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(1, 1)
	b.DrawImage(ebiten.NewImage(2, 2), op)
	if op.Filter != ebiten.FilterNearest {
		t.Errorf("filter = %v, want nearest", op.Filter)
	}
	if x, y := op.GeoM.Apply(0, 0); x != 2 || y != 2 {
		t.Errorf("combined transform maps origin to %v,%v, want 2,2", x, y)
	}
}

func TestHeadlessCollaborators(t *testing.T) {
	s := &HeadlessSurface{}
	b := &HeadlessBackend{MaxSize: 100}
	sync := display.NewSurfaceSync(s, b, nil)
	sync.Apply(display.Metrics{Resolution: display.Dim(80, 60), Viewport: display.Dim(160, 120), PixelRatio: 2}, false)

	if s.Width != 160 || s.Height != 120 || s.Display != display.Dim(160, 120) {
		t.Errorf("surface = %+v", s)
	}
	if s.Rendering != display.RenderingPixelated {
		t.Errorf("rendering = %v", s.Rendering)
	}
	if b.Resolution != display.Dim(80, 60) || b.ScaleX != 2 || b.Smoothing {
		t.Errorf("backend = %+v", b)
	}
	if !sync.Warned() {
		t.Error("160x120 physical surface over the 100 limit did not warn")
	}
}
