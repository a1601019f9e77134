package display

import (
	"context"
	"errors"
)

var (
	// ErrStackEmpty is returned when popping or peeking an empty save stack.
	ErrStackEmpty = errors.New("resolution/viewport stack is empty")
	// ErrUnsupported is returned by a host that lacks a notification variant.
	// Callers fall back to an alternate mechanism when they see it.
	ErrUnsupported = errors.New("not supported by host")
	// ErrFullscreenUnsupported is returned by hosts that cannot go fullscreen.
	ErrFullscreenUnsupported = errors.New("fullscreen not supported by host")
)

// Subscription is a handle on a host notification. Cancel is idempotent.
type Subscription interface {
	Cancel()
}

// SubscriptionFunc adapts a function to Subscription. Use OnceSubscription
// when the function must not run twice.
type SubscriptionFunc func()

// Cancel implements Subscription.
func (f SubscriptionFunc) Cancel() {
	if f != nil {
		f()
	}
}

// OnceSubscription wraps cancel so repeated calls only run it once.
func OnceSubscription(cancel func()) Subscription {
	done := false
	return SubscriptionFunc(func() {
		if done || cancel == nil {
			return
		}
		done = true
		cancel()
	})
}

// FullBleedPreparer puts the host page into full-bleed layout: zero margin on
// the root element and hidden overflow. It must be idempotent.
type FullBleedPreparer interface {
	PrepareFullBleed()
}

// PixelRatioSource reports the device pixel ratio and announces changes.
//
// OnPixelRatioChange is single-shot: fn runs for the next change only and the
// subscription must be re-armed after it fires. A host without this variant
// returns ErrUnsupported.
type PixelRatioSource interface {
	DevicePixelRatio() float64
	OnPixelRatioChange(fn func()) (Subscription, error)
}

// PixelRatioListener is the persistent notification variant older hosts offer
// in place of the single-shot one.
type PixelRatioListener interface {
	AddPixelRatioListener(fn func()) Subscription
}

// Host is everything the screen needs from its windowing environment.
type Host interface {
	FullBleedPreparer
	PixelRatioSource

	// WindowSize is the inner size of the host window.
	WindowSize() Dimension
	// ContainerSize is the content box of the element holding the surface.
	ContainerSize() Dimension
	// SurfaceOrigin is the position of the surface on the page.
	SurfaceOrigin() Vector

	// RequestFullscreen and ExitFullscreen ask the host to change native
	// fullscreen state. Success only means the request was accepted; the
	// state change itself arrives through OnFullscreenChange.
	RequestFullscreen(ctx context.Context) error
	ExitFullscreen(ctx context.Context) error

	OnWindowResize(fn func()) Subscription
	// OnContainerResize returns ErrUnsupported when the host cannot observe
	// the container; callers then fall back to OnWindowResize.
	OnContainerResize(fn func()) (Subscription, error)
	OnFullscreenChange(fn func()) Subscription
}

// Camera maps between world and screen space.
type Camera interface {
	// Transform maps a world point to screen space.
	Transform(p Vector) Vector
	// Inverse maps a screen point to world space.
	Inverse(p Vector) Vector
	// Zoom is a positive scale factor.
	Zoom() float64
}

// Logger is the slog-style logging interface used throughout the module.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

func orNop(l Logger) Logger {
	if l == nil {
		return nopLogger{}
	}
	return l
}
