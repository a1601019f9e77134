// Package platform provides display hosts backed by the desktop itself
// rather than an application window.
//
// X11Host treats the X11 root window as the page a screen is laid out in. It
// reports the root window size and derives the pixel ratio from the Xft.dpi
// resource, falling back to the physical size the server reports:
//
//	host, err := platform.NewX11Host(logger)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer host.Close()
//
//	s, err := screen.New(host, surface, backend, &opts)
//	...
//	err = host.Run(ctx) // delivers notifications until ctx is done
//
// Notifications run on the goroutine that calls Run, so a screen bound to an
// X11Host is only touched from that goroutine once Run starts.
//
// The root window has no fullscreen state and no container distinct from
// itself. Fullscreen requests fail with display.ErrFullscreenUnsupported and
// container observation reports display.ErrUnsupported so screens fall back
// to window resize notifications. Pixel ratio changes are announced through
// the persistent listener variant.
//
// On platforms other than Linux NewX11Host always returns ErrNoDisplay.
package platform
