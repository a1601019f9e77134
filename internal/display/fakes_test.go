package display

import (
	"fmt"
	"math"
	"testing"
)

const tolerance = 1e-6

func approx(a, b float64) bool {
	diff := math.Abs(a - b)
	scale := math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
	return diff <= tolerance*scale
}

func assertVec(t *testing.T, name string, got, want Vector) {
	t.Helper()
	if !approx(got.X, want.X) || !approx(got.Y, want.Y) {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

// fakeRatioSource is a PixelRatioSource whose notifications are fired by the test.
type fakeRatioSource struct {
	ratio       float64
	unsupported bool
	pending     []*pendingHandler
	armed       int
	cancelled   int
}

type pendingHandler struct {
	fn     func()
	active bool
}

func (f *fakeRatioSource) DevicePixelRatio() float64 { return f.ratio }

func (f *fakeRatioSource) OnPixelRatioChange(fn func()) (Subscription, error) {
	if f.unsupported {
		return nil, ErrUnsupported
	}
	f.armed++
	h := &pendingHandler{fn: fn, active: true}
	f.pending = append(f.pending, h)
	return OnceSubscription(func() {
		f.cancelled++
		h.active = false
	}), nil
}

// change sets a new ratio and fires every armed single-shot handler.
func (f *fakeRatioSource) change(ratio float64) {
	f.ratio = ratio
	handlers := f.pending
	f.pending = nil
	for _, h := range handlers {
		if h.active {
			h.active = false
			h.fn()
		}
	}
}

// legacyRatioSource only offers the persistent listener variant.
type legacyRatioSource struct {
	fakeRatioSource
	listeners map[int]func()
	next      int
}

func newLegacyRatioSource(ratio float64) *legacyRatioSource {
	return &legacyRatioSource{
		fakeRatioSource: fakeRatioSource{ratio: ratio, unsupported: true},
		listeners:       make(map[int]func()),
	}
}

func (l *legacyRatioSource) AddPixelRatioListener(fn func()) Subscription {
	id := l.next
	l.next++
	l.listeners[id] = fn
	return OnceSubscription(func() { delete(l.listeners, id) })
}

func (l *legacyRatioSource) change(ratio float64) {
	l.ratio = ratio
	fns := make([]func(), 0, len(l.listeners))
	for _, fn := range l.listeners {
		fns = append(fns, fn)
	}
	for _, fn := range fns {
		fn()
	}
}

type fakePreparer struct{ calls int }

func (f *fakePreparer) PrepareFullBleed() { f.calls++ }

type fakeSurface struct {
	width, height int
	display       Dimension
	rendering     ImageRendering
	noPixelated   bool
	calls         []string
}

func (f *fakeSurface) SetPhysicalSize(w, h int) {
	f.width, f.height = w, h
	f.calls = append(f.calls, fmt.Sprintf("physical %dx%d", w, h))
}

func (f *fakeSurface) PhysicalSize() (int, int) { return f.width, f.height }

func (f *fakeSurface) SetDisplaySize(d Dimension) {
	f.display = d
	f.calls = append(f.calls, "display "+d.String())
}

func (f *fakeSurface) SetImageRendering(mode ImageRendering) bool {
	if mode == RenderingPixelated && f.noPixelated {
		return false
	}
	f.rendering = mode
	return true
}

type fakeBackend struct {
	viewport  Dimension
	smoothing bool
	calls     []string
}

func (f *fakeBackend) UpdateViewport(d Dimension) {
	f.viewport = d
	f.calls = append(f.calls, "viewport "+d.String())
}

func (f *fakeBackend) ResetTransform() { f.calls = append(f.calls, "reset") }

func (f *fakeBackend) SetSmoothing(s bool) {
	f.smoothing = s
	f.calls = append(f.calls, fmt.Sprintf("smoothing %v", s))
}

type scalingBackend struct {
	fakeBackend
	sx, sy float64
}

func (s *scalingBackend) Scale(sx, sy float64) {
	s.sx, s.sy = sx, sy
	s.calls = append(s.calls, fmt.Sprintf("scale %g", sx))
}

type limitedBackend struct {
	fakeBackend
	max    float64
	checks int
}

func (l *limitedBackend) CheckIfResolutionSupported(d Dimension) bool {
	l.checks++
	return d.Width <= l.max && d.Height <= l.max
}

type recordingLogger struct {
	warns  []string
	debugs []string
}

func (r *recordingLogger) Debug(msg string, _ ...any) { r.debugs = append(r.debugs, msg) }
func (r *recordingLogger) Info(string, ...any)        {}
func (r *recordingLogger) Warn(msg string, _ ...any)  { r.warns = append(r.warns, msg) }
func (r *recordingLogger) Error(string, ...any)       {}

// offsetCamera translates by -pos and scales by zoom around the resolution
// center, the same affine form a real camera uses.
type offsetCamera struct {
	pos  Vector
	zoom float64
	half Vector
}

func (c offsetCamera) Transform(p Vector) Vector {
	return Vector{
		X: (p.X-c.pos.X)*c.zoom + c.half.X,
		Y: (p.Y-c.pos.Y)*c.zoom + c.half.Y,
	}
}

func (c offsetCamera) Inverse(p Vector) Vector {
	return Vector{
		X: (p.X-c.half.X)/c.zoom + c.pos.X,
		Y: (p.Y-c.half.Y)/c.zoom + c.pos.Y,
	}
}

func (c offsetCamera) Zoom() float64 { return c.zoom }
