//go:build !noebiten

package render

import (
	"math"
	"testing"

	"github.com/opd-ai/go-screen/internal/display"
)

func near(a, b display.Vector) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

func TestCameraDefaultCentersOrigin(t *testing.T) {
	c := NewCamera(display.Dim(800, 600))
	if got := c.Transform(display.Vec(0, 0)); !near(got, display.Vec(400, 300)) {
		t.Errorf("Transform(origin) = %v, want screen center", got)
	}
	if c.Zoom() != 1 {
		t.Errorf("Zoom() = %v", c.Zoom())
	}
}

func TestCameraZoomAndMove(t *testing.T) {
	c := NewCamera(display.Dim(800, 600))
	c.Move(display.Vec(100, 50))
	c.SetZoom(2)
	c.SetZoom(-1)

	if got := c.Transform(display.Vec(100, 50)); !near(got, display.Vec(400, 300)) {
		t.Errorf("camera position maps to %v, want center", got)
	}
	if got := c.Transform(display.Vec(110, 50)); !near(got, display.Vec(420, 300)) {
		t.Errorf("Transform = %v, want zoomed offset", got)
	}
	if c.Zoom() != 2 {
		t.Errorf("negative zoom accepted: %v", c.Zoom())
	}
}

func TestCameraInverseRoundTrip(t *testing.T) {
	c := NewCamera(display.Dim(320, 240))
	c.Position = display.Vec(-12, 40)
	c.Rotation = math.Pi / 6
	c.SetZoom(1.5)

	for _, p := range []display.Vector{{}, {X: 10, Y: -3}, {X: 319, Y: 239}} {
		if got := c.Transform(c.Inverse(p)); !near(got, p) {
			t.Errorf("Transform(Inverse(%v)) = %v", p, got)
		}
	}
}

func TestCameraSetResolution(t *testing.T) {
	c := NewCamera(display.Dim(100, 100))
	c.SetResolution(display.Dim(200, 50))
	if got := c.Transform(display.Vec(0, 0)); !near(got, display.Vec(100, 25)) {
		t.Errorf("Transform(origin) = %v", got)
	}
}
