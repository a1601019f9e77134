package platform

import (
	"context"
	"errors"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/opd-ai/go-screen/internal/display"
)

// ErrNoDisplay is returned when no X server can be reached.
var ErrNoDisplay = errors.New("no X11 display available")

// baseDPI is the resolution at which the pixel ratio is 1.
const baseDPI = 96.0

// mmPerInch converts the physical size the server reports.
const mmPerInch = 25.4

// handler is one registered callback.
type handler struct {
	id int
	fn func()
}

// handlerSet holds callbacks in registration order. The owning rootWindow's
// mutex guards it.
type handlerSet struct {
	entries []handler
}

func (s *handlerSet) add(id int, fn func()) {
	s.entries = append(s.entries, handler{id: id, fn: fn})
}

func (s *handlerSet) remove(id int) {
	for i, h := range s.entries {
		if h.id == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return
		}
	}
}

func (s *handlerSet) snapshot() []func() {
	fns := make([]func(), 0, len(s.entries))
	for _, h := range s.entries {
		fns = append(fns, h.fn)
	}
	return fns
}

// rootWindow holds the observable state of a desktop root window and the
// handlers interested in it. It implements display.Host; the platform
// specific host feeds it with setSize and setRatio.
type rootWindow struct {
	logger display.Logger

	mu     sync.Mutex
	size   display.Dimension
	ratio  float64
	resize handlerSet
	ratios handlerSet
	next   int
}

func newRootWindow(size display.Dimension, ratio float64, logger display.Logger) *rootWindow {
	if logger == nil {
		logger = nopLogger{}
	}
	return &rootWindow{logger: logger, size: size, ratio: ratio}
}

// add registers fn in set. Handlers run in registration order.
func (w *rootWindow) add(set *handlerSet, fn func()) display.Subscription {
	w.mu.Lock()
	defer w.mu.Unlock()
	id := w.next
	w.next++
	set.add(id, fn)
	return display.OnceSubscription(func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		set.remove(id)
	})
}

// PrepareFullBleed is a no-op: the root window has no margins.
func (w *rootWindow) PrepareFullBleed() {}

// DevicePixelRatio returns the ratio derived from the display DPI.
func (w *rootWindow) DevicePixelRatio() float64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.ratio
}

// OnPixelRatioChange is unsupported; use AddPixelRatioListener.
func (w *rootWindow) OnPixelRatioChange(func()) (display.Subscription, error) {
	return nil, display.ErrUnsupported
}

// AddPixelRatioListener registers fn for every pixel ratio change.
func (w *rootWindow) AddPixelRatioListener(fn func()) display.Subscription {
	return w.add(&w.ratios, fn)
}

// WindowSize returns the root window size.
func (w *rootWindow) WindowSize() display.Dimension {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.size
}

// ContainerSize returns the root window size.
func (w *rootWindow) ContainerSize() display.Dimension {
	return w.WindowSize()
}

// SurfaceOrigin is the top left corner of the root window.
func (w *rootWindow) SurfaceOrigin() display.Vector {
	return display.Vector{}
}

// RequestFullscreen fails: the root window cannot change fullscreen state.
func (w *rootWindow) RequestFullscreen(context.Context) error {
	return display.ErrFullscreenUnsupported
}

// ExitFullscreen fails: the root window cannot change fullscreen state.
func (w *rootWindow) ExitFullscreen(context.Context) error {
	return display.ErrFullscreenUnsupported
}

// OnWindowResize registers fn for every root window resize.
func (w *rootWindow) OnWindowResize(fn func()) display.Subscription {
	return w.add(&w.resize, fn)
}

// OnContainerResize is unsupported; callers fall back to OnWindowResize.
func (w *rootWindow) OnContainerResize(func()) (display.Subscription, error) {
	return nil, display.ErrUnsupported
}

// OnFullscreenChange returns a subscription that never fires.
func (w *rootWindow) OnFullscreenChange(func()) display.Subscription {
	return display.OnceSubscription(nil)
}

// setSize records a new root window size and runs the resize handlers if it
// changed.
func (w *rootWindow) setSize(d display.Dimension) {
	w.mu.Lock()
	if d == w.size {
		w.mu.Unlock()
		return
	}
	w.size = d
	fns := w.resize.snapshot()
	w.mu.Unlock()

	w.logger.Debug("root window resized", "size", d.String())
	for _, fn := range fns {
		fn()
	}
}

// setRatio records a new pixel ratio and runs the listeners if it changed.
func (w *rootWindow) setRatio(r float64) {
	w.mu.Lock()
	if r == w.ratio {
		w.mu.Unlock()
		return
	}
	w.ratio = r
	fns := w.ratios.snapshot()
	w.mu.Unlock()

	w.logger.Debug("display pixel ratio changed", "ratio", r)
	for _, fn := range fns {
		fn()
	}
}

// parseXftDPI finds the Xft.dpi entry in an X resource database string.
func parseXftDPI(resources string) (float64, bool) {
	for _, line := range strings.Split(resources, "\n") {
		name, value, ok := strings.Cut(line, ":")
		if !ok || strings.TrimSpace(name) != "Xft.dpi" {
			continue
		}
		dpi, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil || dpi <= 0 || math.IsInf(dpi, 0) {
			return 0, false
		}
		return dpi, true
	}
	return 0, false
}

// dpiFromMillimeters computes the horizontal DPI of a screen from its size
// in pixels and millimeters. It returns baseDPI when the physical size is
// unknown.
func dpiFromMillimeters(pixels, millimeters uint16) float64 {
	if pixels == 0 || millimeters == 0 {
		return baseDPI
	}
	return float64(pixels) * mmPerInch / float64(millimeters)
}

// ratioFromDPI converts a DPI to a pixel ratio rounded to quarter steps.
func ratioFromDPI(dpi float64) float64 {
	return math.Round(dpi/baseDPI*4) / 4
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}
