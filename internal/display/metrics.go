// Package display implements the resolution, viewport and coordinate-space
// bookkeeping behind a game screen.
//
// It reconciles three independently varying inputs (the size of the window or
// container holding the drawing surface, the device pixel ratio, and a
// DisplayMode policy) into a single resolution and viewport pair, and converts
// points between page, screen and world space. Everything host-specific is
// reached through small collaborator interfaces declared in host.go so the
// package stays free of any windowing toolkit.
package display

import (
	"fmt"
	"sort"
	"strings"
)

// Dimension is a width/height pair in logical (CSS-pixel equivalent) units.
// It is a value type: replace it wholesale, never share it by pointer.
type Dimension struct {
	Width  float64
	Height float64
}

// Dim is shorthand for Dimension{Width: w, Height: h}.
func Dim(w, h float64) Dimension {
	return Dimension{Width: w, Height: h}
}

// AspectRatio returns Width / Height.
func (d Dimension) AspectRatio() float64 {
	return d.Width / d.Height
}

// Scale returns the dimension multiplied by f on both axes.
func (d Dimension) Scale(f float64) Dimension {
	return Dimension{Width: d.Width * f, Height: d.Height * f}
}

// Half returns half of the dimension on both axes.
func (d Dimension) Half() Dimension {
	return d.Scale(0.5)
}

// IsZero reports whether both axes are zero.
func (d Dimension) IsZero() bool {
	return d.Width == 0 && d.Height == 0
}

// IsDegenerate reports whether either axis is zero, i.e. the area is zero.
func (d Dimension) IsDegenerate() bool {
	return d.Width == 0 || d.Height == 0
}

// String returns the dimension formatted as "WxH".
func (d Dimension) String() string {
	return fmt.Sprintf("%gx%g", d.Width, d.Height)
}

// Vector is a point or offset in one of the coordinate spaces.
type Vector struct {
	X float64
	Y float64
}

// Vec is shorthand for Vector{X: x, Y: y}.
func Vec(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// Add returns v + o.
func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vector) Sub(o Vector) Vector {
	return Vector{X: v.X - o.X, Y: v.Y - o.Y}
}

// String returns the vector formatted as "(x, y)".
func (v Vector) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}

// BoundingBox is an axis-aligned rectangle given by its edges.
type BoundingBox struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// Width returns Right - Left.
func (b BoundingBox) Width() float64 {
	return b.Right - b.Left
}

// Height returns Bottom - Top.
func (b BoundingBox) Height() float64 {
	return b.Bottom - b.Top
}

// Contains reports whether p lies inside the box, edges included.
func (b BoundingBox) Contains(p Vector) bool {
	return p.X >= b.Left && p.X <= b.Right && p.Y >= b.Top && p.Y <= b.Bottom
}

// Metrics is a snapshot of the values every derived screen quantity is
// computed from. All methods are pure.
type Metrics struct {
	Resolution Dimension
	Viewport   Dimension
	PixelRatio float64
	// Zoom is the attached camera's zoom. Zero means no camera is attached
	// and draw dimensions fall back to the raw resolution.
	Zoom float64
}

// AspectRatio returns the aspect ratio of the resolution.
func (m Metrics) AspectRatio() float64 {
	return m.Resolution.AspectRatio()
}

// ScaledWidth is the physical surface width: resolution width times pixel ratio.
func (m Metrics) ScaledWidth() float64 {
	return m.Resolution.Width * m.PixelRatio
}

// ScaledHeight is the physical surface height: resolution height times pixel ratio.
func (m Metrics) ScaledHeight() float64 {
	return m.Resolution.Height * m.PixelRatio
}

// Scaled returns ScaledWidth and ScaledHeight as a Dimension.
func (m Metrics) Scaled() Dimension {
	return Dimension{Width: m.ScaledWidth(), Height: m.ScaledHeight()}
}

// DrawWidth is the visible width in world units once zoom is applied.
func (m Metrics) DrawWidth() float64 {
	if m.Zoom > 0 {
		return m.Resolution.Width / m.Zoom
	}
	return m.Resolution.Width
}

// DrawHeight is the visible height in world units once zoom is applied.
func (m Metrics) DrawHeight() float64 {
	if m.Zoom > 0 {
		return m.Resolution.Height / m.Zoom
	}
	return m.Resolution.Height
}

// HalfDrawWidth returns DrawWidth / 2.
func (m Metrics) HalfDrawWidth() float64 {
	return m.DrawWidth() / 2
}

// HalfDrawHeight returns DrawHeight / 2.
func (m Metrics) HalfDrawHeight() float64 {
	return m.DrawHeight() / 2
}

// HalfScaledWidth returns ScaledWidth / 2.
func (m Metrics) HalfScaledWidth() float64 {
	return m.ScaledWidth() / 2
}

// HalfScaledHeight returns ScaledHeight / 2.
func (m Metrics) HalfScaledHeight() float64 {
	return m.ScaledHeight() / 2
}

// Center returns the center of the drawing surface including zoom.
func (m Metrics) Center() Vector {
	return Vector{X: m.HalfDrawWidth(), Y: m.HalfDrawHeight()}
}

// IsHiDPI reports whether the pixel ratio differs from 1.
func (m Metrics) IsHiDPI() bool {
	return m.PixelRatio != 1
}

// Common resolutions, mostly sourced from
// https://emulation.gametechwiki.com/index.php/Resolution
var presets = map[string]Dimension{
	"SVGA":           {Width: 800, Height: 600},
	"Standard":       {Width: 1920, Height: 1080},
	"Atari2600":      {Width: 160, Height: 192},
	"GameBoy":        {Width: 160, Height: 144},
	"GameBoyAdvance": {Width: 240, Height: 160},
	"NintendoDS":     {Width: 256, Height: 192},
	"NES":            {Width: 256, Height: 224},
	"SNES":           {Width: 256, Height: 244},
}

// Preset returns a named resolution. Lookup is case-insensitive.
func Preset(name string) (Dimension, bool) {
	for k, d := range presets {
		if strings.EqualFold(k, name) {
			return d, true
		}
	}
	return Dimension{}, false
}

// PresetNames returns the names accepted by Preset, sorted.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for k := range presets {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
