package display

// Layout is a resolution and viewport pair. A zero Viewport means "same as
// the resolution".
type Layout struct {
	Resolution Dimension
	Viewport   Dimension
}

// EffectiveViewport returns the viewport, or the resolution when the viewport
// is unset.
func (l Layout) EffectiveViewport() Dimension {
	if l.Viewport.IsZero() {
		return l.Resolution
	}
	return l.Viewport
}

// Resolver computes the layout a DisplayMode calls for given the current size
// of the window or container.
type Resolver struct {
	mode     DisplayMode
	content  Dimension
	preparer FullBleedPreparer
}

// NewResolver returns a resolver for mode. content is the resolution captured
// at configuration time and anchors the aspect ratio of the AndFill modes.
// preparer may be nil.
func NewResolver(mode DisplayMode, content Dimension, preparer FullBleedPreparer) *Resolver {
	return &Resolver{mode: mode, content: content, preparer: preparer}
}

// Mode returns the resolver's policy.
func (r *Resolver) Mode() DisplayMode {
	return r.mode
}

// ContentResolution returns the aspect-ratio anchor of the AndFill modes.
func (r *Resolver) ContentResolution() Dimension {
	return r.content
}

// Resolve returns the layout for the given container size. current is the
// live layout; Fixed returns it unchanged and the Fit modes keep its
// resolution. Zero container dimensions pass through as zero.
func (r *Resolver) Resolve(container Dimension, current Layout) Layout {
	if r.mode.FullBleed() && r.preparer != nil {
		r.preparer.PrepareFullBleed()
	}

	switch r.mode {
	case FillScreen, FillContainer:
		return Layout{Resolution: container, Viewport: container}
	case FitScreen, FitContainer:
		return Layout{
			Resolution: current.Resolution,
			Viewport:   FitAspect(container, current.Resolution.AspectRatio()),
		}
	case FitScreenAndFill, FitContainerAndFill:
		return Layout{
			Resolution: FillResolution(container, r.content),
			Viewport:   container,
		}
	default:
		return current
	}
}

// FitAspect returns the largest rectangle with the given aspect ratio that
// fits inside container.
func FitAspect(container Dimension, aspect float64) Dimension {
	if container.Width/aspect < container.Height {
		return Dimension{Width: container.Width, Height: container.Width / aspect}
	}
	return Dimension{Width: container.Height * aspect, Height: container.Height}
}

// FillResolution returns the resolution an AndFill mode uses for a viewport
// that exactly fills container. The content resolution is kept on the axis
// where the container is relatively narrower and the other axis grows to the
// container's aspect ratio, so content is never letterboxed or stretched.
// A container with a zero axis yields a zero resolution on that axis.
func FillResolution(container, content Dimension) Dimension {
	if container.IsDegenerate() {
		return Dimension{
			Width:  zeroOr(container.Width, content.Width),
			Height: zeroOr(container.Height, content.Height),
		}
	}
	ratio := container.Width / container.Height
	if ratio <= content.AspectRatio() {
		return Dimension{Width: content.Width, Height: content.Width / ratio}
	}
	return Dimension{Width: content.Height * ratio, Height: content.Height}
}

func zeroOr(axis, fallback float64) float64 {
	if axis == 0 {
		return 0
	}
	return fallback
}

// ContentArea returns the rectangle of content, centered within resolution,
// in screen coordinates.
func ContentArea(resolution, content Dimension) BoundingBox {
	left := (resolution.Width - content.Width) / 2
	top := (resolution.Height - content.Height) / 2
	return BoundingBox{
		Left:   left,
		Top:    top,
		Right:  left + content.Width,
		Bottom: top + content.Height,
	}
}
