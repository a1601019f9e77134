package screen

import (
	"context"
	"math"
	"testing"

	"github.com/opd-ai/go-screen/internal/display"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) <= 1e-6*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

func assertVec(t *testing.T, name string, got, want Vector) {
	t.Helper()
	if !approx(got.X, want.X) || !approx(got.Y, want.Y) {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertDim(t *testing.T, name string, got, want Dimension) {
	t.Helper()
	if !approx(got.Width, want.Width) || !approx(got.Height, want.Height) {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

// handlerSet is a list of callbacks that can be individually cancelled.
type handlerSet struct {
	fns map[int]func()
	seq int
}

func (h *handlerSet) add(fn func()) Subscription {
	if h.fns == nil {
		h.fns = make(map[int]func())
	}
	id := h.seq
	h.seq++
	h.fns[id] = fn
	return display.OnceSubscription(func() { delete(h.fns, id) })
}

func (h *handlerSet) fire() {
	fns := make([]func(), 0, len(h.fns))
	for _, fn := range h.fns {
		fns = append(fns, fn)
	}
	for _, fn := range fns {
		fn()
	}
}

func (h *handlerSet) len() int { return len(h.fns) }

// fakeHost is an in-memory Host driven by the test.
type fakeHost struct {
	window    Dimension
	container Dimension
	origin    Vector
	ratio     float64

	noContainerResize bool
	fullscreenErr     error

	fullBleed      int
	fullscreenReqs int
	exitReqs       int

	windowResize    handlerSet
	containerResize handlerSet
	fullscreen      handlerSet
	ratioOnce       handlerSet
}

func newFakeHost(w, h float64) *fakeHost {
	return &fakeHost{window: Dim(w, h), container: Dim(w, h), ratio: 1}
}

func (f *fakeHost) PrepareFullBleed()         { f.fullBleed++ }
func (f *fakeHost) DevicePixelRatio() float64 { return f.ratio }
func (f *fakeHost) WindowSize() Dimension     { return f.window }
func (f *fakeHost) ContainerSize() Dimension  { return f.container }
func (f *fakeHost) SurfaceOrigin() Vector     { return f.origin }

func (f *fakeHost) OnPixelRatioChange(fn func()) (Subscription, error) {
	return f.ratioOnce.add(fn), nil
}

func (f *fakeHost) RequestFullscreen(context.Context) error {
	f.fullscreenReqs++
	return f.fullscreenErr
}

func (f *fakeHost) ExitFullscreen(context.Context) error {
	f.exitReqs++
	return f.fullscreenErr
}

func (f *fakeHost) OnWindowResize(fn func()) Subscription { return f.windowResize.add(fn) }

func (f *fakeHost) OnContainerResize(fn func()) (Subscription, error) {
	if f.noContainerResize {
		return nil, ErrUnsupported
	}
	return f.containerResize.add(fn), nil
}

func (f *fakeHost) OnFullscreenChange(fn func()) Subscription { return f.fullscreen.add(fn) }

func (f *fakeHost) resizeWindow(w, h float64) {
	f.window = Dim(w, h)
	f.windowResize.fire()
}

func (f *fakeHost) resizeContainer(w, h float64) {
	f.container = Dim(w, h)
	f.containerResize.fire()
}

// changeRatio fires the single-shot handlers, which must re-arm themselves.
func (f *fakeHost) changeRatio(r float64) {
	f.ratio = r
	handlers := f.ratioOnce
	f.ratioOnce = handlerSet{seq: handlers.seq}
	handlers.fire()
}

func (f *fakeHost) subscriptions() int {
	return f.windowResize.len() + f.containerResize.len() + f.fullscreen.len() + f.ratioOnce.len()
}

type fakeSurface struct {
	width, height int
	display       Dimension
	rendering     ImageRendering
}

func (f *fakeSurface) SetPhysicalSize(w, h int)   { f.width, f.height = w, h }
func (f *fakeSurface) PhysicalSize() (int, int)   { return f.width, f.height }
func (f *fakeSurface) SetDisplaySize(d Dimension) { f.display = d }
func (f *fakeSurface) SetImageRendering(m ImageRendering) bool {
	f.rendering = m
	return true
}

type fakeBackend struct {
	viewport  Dimension
	smoothing bool
	resets    int
	max       float64
}

func (f *fakeBackend) UpdateViewport(d Dimension) { f.viewport = d }
func (f *fakeBackend) ResetTransform()            { f.resets++ }
func (f *fakeBackend) SetSmoothing(s bool)        { f.smoothing = s }

func (f *fakeBackend) CheckIfResolutionSupported(d Dimension) bool {
	return f.max == 0 || (d.Width <= f.max && d.Height <= f.max)
}

type zoomCamera struct {
	pos  Vector
	zoom float64
	half Vector
}

func (c zoomCamera) Transform(p Vector) Vector {
	return Vec((p.X-c.pos.X)*c.zoom+c.half.X, (p.Y-c.pos.Y)*c.zoom+c.half.Y)
}

func (c zoomCamera) Inverse(p Vector) Vector {
	return Vec((p.X-c.half.X)/c.zoom+c.pos.X, (p.Y-c.half.Y)/c.zoom+c.pos.Y)
}

func (c zoomCamera) Zoom() float64 { return c.zoom }

type countingLogger struct {
	debugs, warns int
}

func (c *countingLogger) Debug(string, ...any) { c.debugs++ }
func (c *countingLogger) Info(string, ...any)  {}
func (c *countingLogger) Warn(string, ...any)  { c.warns++ }
func (c *countingLogger) Error(string, ...any) {}
