package display

// Letterbox describes where a fullscreen surface lands inside the host
// window when the aspect ratios differ: centered, scaled to touch one pair of
// edges, with bars on the other axis.
type Letterbox struct {
	Window Dimension
	Aspect float64
}

// HeightConstrained reports whether the bars are above and below the surface.
func (lb Letterbox) HeightConstrained() bool {
	return lb.Window.Width/lb.Aspect < lb.Window.Height
}

// Rect returns the on-page rectangle the surface occupies.
func (lb Letterbox) Rect() BoundingBox {
	if lb.HeightConstrained() {
		h := lb.Window.Width / lb.Aspect
		margin := (lb.Window.Height - h) / 2
		return BoundingBox{Left: 0, Top: margin, Right: lb.Window.Width, Bottom: margin + h}
	}
	w := lb.Window.Height * lb.Aspect
	margin := (lb.Window.Width - w) / 2
	return BoundingBox{Left: margin, Top: 0, Right: margin + w, Bottom: lb.Window.Height}
}

// Transformer converts points between page, screen and world space for one
// snapshot of screen state.
//
// Page space is what input devices report. Screen space runs from (0, 0) at
// the top left of the surface to the resolution at the bottom right. World
// space is where entities live; it differs from screen space by the camera
// transform, or by a half-resolution offset when no camera is attached.
type Transformer struct {
	Resolution Dimension
	Viewport   Dimension
	// Origin is the surface's position on the page. Ignored in fullscreen.
	Origin Vector
	// Fullscreen enables letterbox correction against Window.
	Fullscreen bool
	Window     Dimension
	// Camera may be nil.
	Camera Camera
}

func (t Transformer) letterbox() Letterbox {
	return Letterbox{Window: t.Window, Aspect: t.Resolution.AspectRatio()}
}

// PageToScreen converts a page point to screen space.
func (t Transformer) PageToScreen(p Vector) Vector {
	x, y := p.X, p.Y

	if t.Fullscreen {
		r := t.letterbox().Rect()
		x = (x - r.Left) / r.Width() * t.Viewport.Width
		y = (y - r.Top) / r.Height() * t.Viewport.Height
	} else {
		x -= t.Origin.X
		y -= t.Origin.Y
	}

	x = x / t.Viewport.Width * t.Resolution.Width
	y = y / t.Viewport.Height * t.Resolution.Height
	return Vector{X: x, Y: y}
}

// ScreenToPage converts a screen point to page space. It applies the steps
// of PageToScreen in reverse order.
func (t Transformer) ScreenToPage(p Vector) Vector {
	x := p.X / t.Resolution.Width * t.Viewport.Width
	y := p.Y / t.Resolution.Height * t.Viewport.Height

	if t.Fullscreen {
		r := t.letterbox().Rect()
		x = x/t.Viewport.Width*r.Width() + r.Left
		y = y/t.Viewport.Height*r.Height() + r.Top
	} else {
		x += t.Origin.X
		y += t.Origin.Y
	}
	return Vector{X: x, Y: y}
}

// ScreenToWorld converts a screen point to world space.
func (t Transformer) ScreenToWorld(p Vector) Vector {
	if t.Camera != nil {
		return t.Camera.Inverse(p)
	}
	return p.Sub(Vector{X: t.Resolution.Width / 2, Y: t.Resolution.Height / 2})
}

// WorldToScreen converts a world point to screen space.
func (t Transformer) WorldToScreen(p Vector) Vector {
	if t.Camera != nil {
		return t.Camera.Transform(p)
	}
	return p.Add(Vector{X: t.Resolution.Width / 2, Y: t.Resolution.Height / 2})
}

// PageToWorld converts a page point to world space by way of screen space.
func (t Transformer) PageToWorld(p Vector) Vector {
	return t.ScreenToWorld(t.PageToScreen(p))
}

// WorldToPage converts a world point to page space by way of screen space.
func (t Transformer) WorldToPage(p Vector) Vector {
	return t.ScreenToPage(t.WorldToScreen(p))
}
