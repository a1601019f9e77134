//go:build !linux

package platform

import (
	"context"
	"fmt"
	"runtime"

	"github.com/opd-ai/go-screen/internal/display"
)

// X11Host is only available on Linux.
type X11Host struct {
	*rootWindow
}

// NewX11Host always fails on this platform.
func NewX11Host(display.Logger) (*X11Host, error) {
	return nil, fmt.Errorf("%w: X11 is not supported on %s", ErrNoDisplay, runtime.GOOS)
}

// Run returns ErrNoDisplay.
func (h *X11Host) Run(context.Context) error {
	return ErrNoDisplay
}

// Close does nothing.
func (h *X11Host) Close() error {
	return nil
}
