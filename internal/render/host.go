package render

import (
	"context"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/opd-ai/go-screen/internal/display"
)

// Probe reads and changes window state. DefaultProbe talks to ebiten; tests
// substitute their own functions.
type Probe struct {
	DeviceScaleFactor func() float64
	IsFullscreen      func() bool
	SetFullscreen     func(bool)
}

// DefaultProbe returns a Probe backed by the running ebiten game.
func DefaultProbe() Probe {
	return Probe{
		DeviceScaleFactor: func() float64 {
			if m := ebiten.Monitor(); m != nil {
				return m.DeviceScaleFactor()
			}
			return 1
		},
		IsFullscreen:  ebiten.IsFullscreen,
		SetFullscreen: ebiten.SetFullscreen,
	}
}

// handlers is a set of callbacks with cancellable registrations. mu guards
// fns and is held by the caller of add, take and snapshot.
type handlers struct {
	fns  map[int]func()
	next int
}

func (h *handlers) add(mu sync.Locker, fn func()) display.Subscription {
	if h.fns == nil {
		h.fns = make(map[int]func())
	}
	id := h.next
	h.next++
	h.fns[id] = fn
	return display.OnceSubscription(func() {
		mu.Lock()
		defer mu.Unlock()
		delete(h.fns, id)
	})
}

// take removes and returns every callback.
func (h *handlers) take() []func() {
	fns := h.snapshot()
	h.fns = nil
	return fns
}

func (h *handlers) snapshot() []func() {
	fns := make([]func(), 0, len(h.fns))
	for _, fn := range h.fns {
		fns = append(fns, fn)
	}
	return fns
}

func (h *handlers) len() int { return len(h.fns) }

// EbitenHost adapts an ebiten window to display.Host.
//
// ebiten reports the window size through Layout and exposes the scale factor
// and fullscreen state only by polling, so the host records what it is told
// and Poll delivers notifications. Call Poll from Update so handlers run on
// the game goroutine.
type EbitenHost struct {
	probe Probe

	mu            sync.Mutex
	window        display.Dimension
	pendingWindow display.Dimension
	origin        display.Vector
	scale         float64
	fullscreen    bool

	resize           handlers
	fullscreenChange handlers
	ratio            handlers
}

// NewEbitenHost returns a host for a window of the given initial size.
func NewEbitenHost(window display.Dimension, probe Probe) *EbitenHost {
	h := &EbitenHost{
		probe:         probe,
		window:        window,
		pendingWindow: window,
	}
	h.scale = h.readScale()
	h.fullscreen = h.readFullscreen()
	return h
}

func (h *EbitenHost) readScale() float64 {
	if h.probe.DeviceScaleFactor == nil {
		return 1
	}
	return h.probe.DeviceScaleFactor()
}

func (h *EbitenHost) readFullscreen() bool {
	return h.probe.IsFullscreen != nil && h.probe.IsFullscreen()
}

// PrepareFullBleed is a no-op: an ebiten window has no page margin.
func (h *EbitenHost) PrepareFullBleed() {}

// DevicePixelRatio returns the last polled device scale factor.
func (h *EbitenHost) DevicePixelRatio() float64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.scale
}

// OnPixelRatioChange registers fn for the next scale factor change.
func (h *EbitenHost) OnPixelRatioChange(fn func()) (display.Subscription, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.ratio.add(&h.mu, fn), nil
}

// WindowSize returns the window size in device-independent pixels.
func (h *EbitenHost) WindowSize() display.Dimension {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.window
}

// ContainerSize returns the window size; the window is the container.
func (h *EbitenHost) ContainerSize() display.Dimension {
	return h.WindowSize()
}

// SurfaceOrigin returns where the game draws the surface in the window.
func (h *EbitenHost) SurfaceOrigin() display.Vector {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.origin
}

// SetSurfaceOrigin records where the surface is drawn.
func (h *EbitenHost) SetSurfaceOrigin(v display.Vector) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.origin = v
}

// RequestFullscreen switches the window to fullscreen. The change is
// announced by the next Poll that observes it.
func (h *EbitenHost) RequestFullscreen(ctx context.Context) error {
	return h.setFullscreen(ctx, true)
}

// ExitFullscreen returns the window to windowed mode.
func (h *EbitenHost) ExitFullscreen(ctx context.Context) error {
	return h.setFullscreen(ctx, false)
}

func (h *EbitenHost) setFullscreen(ctx context.Context, on bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if h.probe.SetFullscreen == nil {
		return display.ErrFullscreenUnsupported
	}
	h.probe.SetFullscreen(on)
	return nil
}

// OnWindowResize registers fn for every window resize.
func (h *EbitenHost) OnWindowResize(fn func()) display.Subscription {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.resize.add(&h.mu, fn)
}

// OnContainerResize is unsupported; callers fall back to OnWindowResize.
func (h *EbitenHost) OnContainerResize(func()) (display.Subscription, error) {
	return nil, display.ErrUnsupported
}

// OnFullscreenChange registers fn for every fullscreen transition.
func (h *EbitenHost) OnFullscreenChange(fn func()) display.Subscription {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.fullscreenChange.add(&h.mu, fn)
}

// SetWindowSize records the size ebiten passed to Layout. Handlers run on
// the next Poll.
func (h *EbitenHost) SetWindowSize(d display.Dimension) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.pendingWindow = d
}

// Scale returns the last polled device scale factor.
func (h *EbitenHost) Scale() float64 {
	return h.DevicePixelRatio()
}

// Poll compares the window against the last observed state and runs the
// handlers of whatever changed: fullscreen first, then pixel ratio, then
// resize.
func (h *EbitenHost) Poll() {
	h.mu.Lock()
	var run []func()

	if fs := h.readFullscreen(); fs != h.fullscreen {
		h.fullscreen = fs
		run = append(run, h.fullscreenChange.snapshot()...)
	}
	if s := h.readScale(); s != h.scale {
		h.scale = s
		run = append(run, h.ratio.take()...)
	}
	if h.pendingWindow != h.window {
		h.window = h.pendingWindow
		run = append(run, h.resize.snapshot()...)
	}
	h.mu.Unlock()

	for _, fn := range run {
		fn()
	}
}
