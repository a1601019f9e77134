//go:build linux

package platform

import (
	"errors"
	"testing"

	"github.com/jezek/xgb/xproto"

	"github.com/opd-ai/go-screen/internal/display"
)

func newTestX11Host(dpi *float64) *X11Host {
	h := &X11Host{
		root: 42,
		done: make(chan struct{}),
		dpi:  func() float64 { return *dpi },
	}
	h.rootWindow = newRootWindow(display.Dim(1920, 1080), ratioFromDPI(*dpi), nil)
	return h
}

func TestX11HostConfigureNotify(t *testing.T) {
	dpi := 96.0
	h := newTestX11Host(&dpi)
	calls := 0
	h.OnWindowResize(func() { calls++ })

	h.handleEvent(xproto.ConfigureNotifyEvent{Window: 7, Width: 10, Height: 10})
	if calls != 0 {
		t.Error("child window configure treated as root resize")
	}
	h.handleEvent(xproto.ConfigureNotifyEvent{Window: 42, Width: 2560, Height: 1440})
	if calls != 1 || h.WindowSize() != display.Dim(2560, 1440) {
		t.Errorf("calls = %d, size = %v", calls, h.WindowSize())
	}
}

func TestX11HostResourceChange(t *testing.T) {
	dpi := 96.0
	h := newTestX11Host(&dpi)
	calls := 0
	h.AddPixelRatioListener(func() { calls++ })

	dpi = 192
	h.handleEvent(xproto.PropertyNotifyEvent{Window: 42, Atom: xproto.Atom(999)})
	if calls != 0 {
		t.Error("unrelated property change re-read the DPI")
	}
	h.handleEvent(xproto.PropertyNotifyEvent{Window: 42, Atom: xproto.AtomResourceManager})
	if calls != 1 || h.DevicePixelRatio() != 2 {
		t.Errorf("calls = %d, ratio = %v", calls, h.DevicePixelRatio())
	}
}

func TestX11HostCloseIdempotent(t *testing.T) {
	dpi := 96.0
	h := newTestX11Host(&dpi)
	if err := h.Close(); err != nil {
		t.Fatal(err)
	}
	if err := h.Close(); err != nil {
		t.Errorf("second Close() = %v", err)
	}
}

func TestNewX11HostWithoutDisplay(t *testing.T) {
	t.Setenv("DISPLAY", "")
	_, err := NewX11Host(nil)
	if !errors.Is(err, ErrNoDisplay) {
		t.Errorf("NewX11Host() error = %v, want ErrNoDisplay", err)
	}
}
