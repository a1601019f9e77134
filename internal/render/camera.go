package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/opd-ai/go-screen/internal/display"
)

// Camera maps world space to screen space with an affine transform: the
// position is moved to the origin, the world is rotated and zoomed, then the
// origin is moved to the center of the resolution.
type Camera struct {
	Position display.Vector
	Rotation float64

	zoom   float64
	screen display.Dimension
}

// NewCamera returns a camera at the world origin with zoom 1, for a screen of
// the given resolution.
func NewCamera(resolution display.Dimension) *Camera {
	return &Camera{zoom: 1, screen: resolution}
}

// SetResolution updates the screen size the camera centers on.
func (c *Camera) SetResolution(d display.Dimension) {
	c.screen = d
}

// SetZoom sets the zoom factor. Values that are not positive are ignored.
func (c *Camera) SetZoom(z float64) {
	if z > 0 {
		c.zoom = z
	}
}

// Zoom returns the zoom factor.
func (c *Camera) Zoom() float64 {
	return c.zoom
}

// Move shifts the camera by d world units.
func (c *Camera) Move(d display.Vector) {
	c.Position = c.Position.Add(d)
}

// GeoM returns the world-to-screen matrix.
func (c *Camera) GeoM() ebiten.GeoM {
	var g ebiten.GeoM
	g.Translate(-c.Position.X, -c.Position.Y)
	g.Rotate(c.Rotation)
	g.Scale(c.zoom, c.zoom)
	g.Translate(c.screen.Width/2, c.screen.Height/2)
	return g
}

// Transform maps a world point to screen space.
func (c *Camera) Transform(p display.Vector) display.Vector {
	g := c.GeoM()
	x, y := g.Apply(p.X, p.Y)
	return display.Vec(x, y)
}

// Inverse maps a screen point to world space.
func (c *Camera) Inverse(p display.Vector) display.Vector {
	g := c.GeoM()
	g.Invert()
	x, y := g.Apply(p.X, p.Y)
	return display.Vec(x, y)
}
