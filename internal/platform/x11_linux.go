//go:build linux

package platform

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"

	"github.com/opd-ai/go-screen/internal/display"
)

// maxResourceBytes bounds the RESOURCE_MANAGER read, in 32-bit units.
const maxResourceBytes = 1 << 16

// X11Host is a display.Host for the root window of the default X11 screen.
type X11Host struct {
	*rootWindow

	conn   *xgb.Conn
	root   xproto.Window
	screen xproto.ScreenInfo
	dpi    func() float64

	closeOnce sync.Once
	done      chan struct{}
}

// NewX11Host connects to the X server named by $DISPLAY and subscribes to
// root window geometry and property changes.
func NewX11Host(logger display.Logger) (*X11Host, error) {
	conn, err := xgb.NewConn()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoDisplay, err)
	}

	setup := xproto.Setup(conn)
	if len(setup.Roots) == 0 {
		conn.Close()
		return nil, fmt.Errorf("%w: server reports no screens", ErrNoDisplay)
	}
	screen := setup.Roots[conn.DefaultScreen]

	mask := []uint32{xproto.EventMaskStructureNotify | xproto.EventMaskPropertyChange}
	if err := xproto.ChangeWindowAttributesChecked(conn, screen.Root, xproto.CwEventMask, mask).Check(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("select root window events: %w", err)
	}

	h := &X11Host{
		conn:   conn,
		root:   screen.Root,
		screen: screen,
		done:   make(chan struct{}),
	}
	h.dpi = h.queryDPI
	size := display.Dim(float64(screen.WidthInPixels), float64(screen.HeightInPixels))
	h.rootWindow = newRootWindow(size, ratioFromDPI(h.dpi()), logger)
	h.logger.Info("connected to X server",
		"size", size.String(), "ratio", h.DevicePixelRatio())
	return h, nil
}

// queryDPI reads Xft.dpi from the RESOURCE_MANAGER property of the root
// window, falling back to the physical size of the screen.
func (h *X11Host) queryDPI() float64 {
	reply, err := xproto.GetProperty(h.conn, false, h.root,
		xproto.AtomResourceManager, xproto.AtomString, 0, maxResourceBytes).Reply()
	if err == nil && reply != nil {
		if dpi, ok := parseXftDPI(string(reply.Value)); ok {
			return dpi
		}
	}
	return dpiFromMillimeters(h.screen.WidthInPixels, h.screen.WidthInMillimeters)
}

// Run delivers root window notifications on the calling goroutine until ctx
// is done or the connection closes.
func (h *X11Host) Run(ctx context.Context) error {
	events := make(chan xgb.Event)
	xerrs := make(chan error, 1)

	go func() {
		defer close(events)
		for {
			ev, xerr := h.conn.WaitForEvent()
			if ev == nil && xerr == nil {
				return
			}
			if xerr != nil {
				select {
				case xerrs <- xerr:
				default:
				}
				continue
			}
			select {
			case events <- ev:
			case <-h.done:
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return errors.New("X server connection closed")
			}
			h.handleEvent(ev)
		case err := <-xerrs:
			h.logger.Warn("X11 error", "error", err)
		}
	}
}

func (h *X11Host) handleEvent(ev xgb.Event) {
	switch e := ev.(type) {
	case xproto.ConfigureNotifyEvent:
		if e.Window == h.root {
			h.setSize(display.Dim(float64(e.Width), float64(e.Height)))
		}
	case xproto.PropertyNotifyEvent:
		if e.Window == h.root && e.Atom == xproto.AtomResourceManager {
			h.setRatio(ratioFromDPI(h.dpi()))
		}
	}
}

// Close disconnects from the X server. It is safe to call more than once.
func (h *X11Host) Close() error {
	h.closeOnce.Do(func() {
		close(h.done)
		if h.conn != nil {
			h.conn.Close()
		}
	})
	return nil
}
