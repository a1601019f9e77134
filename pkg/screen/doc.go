// Package screen provides the public API for the resolution, viewport and
// coordinate-space manager behind a game's drawing surface.
//
// # Basic Usage
//
// A Screen is built on a host (window size, pixel ratio, fullscreen and the
// notifications for each), a surface and a rendering backend:
//
//	opts := screen.DefaultOptions()
//	opts.Viewport = screen.Dim(800, 600)
//	opts.DisplayMode = screen.FitScreen
//
//	s, err := screen.New(host, surface, backend, &opts)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer s.Dispose()
//
// # Coordinate Spaces
//
// Page space is what pointer events report. Screen space runs from the top
// left of the surface to its resolution. World space differs from screen
// space by the camera transform:
//
//	world := s.PageToWorldCoordinates(screen.Vec(x, y))
//
// Page to world always goes through screen space, also in native fullscreen
// where the surface is letterboxed inside the host window.
//
// # Display Modes
//
// [Fixed] never changes the layout. The Fit modes keep the resolution and fit
// the viewport to the window or container. The Fill modes use the window or
// container size for both. The AndFill modes fill the container with the
// viewport and extend the resolution so that [Screen.ContentArea] stays on
// screen.
//
// # Threading
//
// A Screen is single-threaded. Host notifications must be delivered on the
// goroutine that owns the Screen, and every handler resolves and applies the
// new layout before returning.
package screen
