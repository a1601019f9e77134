package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/opd-ai/go-screen/internal/config"
	"github.com/opd-ai/go-screen/internal/platform"
	"github.com/opd-ai/go-screen/internal/render"
	"github.com/opd-ai/go-screen/pkg/screen"
)

// runProbe lays a screen out on the X11 root window, prints the result and
// prints it again whenever the root window or the display DPI changes, until
// ctx is done.
func runProbe(ctx context.Context, w io.Writer, cfg *config.Config, logger screen.Logger, metrics *screen.Metrics) error {
	host, err := platform.NewX11Host(logger)
	if err != nil {
		return err
	}
	defer host.Close()

	surface := &render.HeadlessSurface{}
	backend := &render.HeadlessBackend{MaxSize: cfg.MaxSurfaceSize}
	opts := cfg.ScreenOptions(logger, metrics)
	s, err := screen.New(host, surface, backend, &opts)
	if err != nil {
		return err
	}
	defer func() {
		if err := s.Dispose(); err != nil {
			logger.Warn("disposed screen", "error", err)
		}
	}()

	report := func() {
		if err := writeReport(w, host, s, surface); err != nil {
			logger.Error("write report", "error", err)
		}
	}
	report()

	// The screen subscribed first, so it has already resolved when these run.
	resizeSub := host.OnWindowResize(report)
	defer resizeSub.Cancel()
	ratioSub := host.AddPixelRatioListener(report)
	defer ratioSub.Cancel()

	return host.Run(ctx)
}

// writeReport prints the state of s laid out in host.
func writeReport(w io.Writer, host screen.Host, s *screen.Screen, surface *render.HeadlessSurface) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	hidpi := ""
	if s.IsHiDPI() {
		hidpi = " (hidpi)"
	}
	area := s.ContentArea()
	world := s.WorldBounds()

	fmt.Fprintf(tw, "mode\t%s\n", s.DisplayMode())
	fmt.Fprintf(tw, "window\t%s\n", host.WindowSize())
	fmt.Fprintf(tw, "resolution\t%s\n", s.Resolution())
	fmt.Fprintf(tw, "viewport\t%s\n", s.Viewport())
	fmt.Fprintf(tw, "content area\t%g,%g %gx%g\n", area.Left, area.Top, area.Width(), area.Height())
	fmt.Fprintf(tw, "pixel ratio\t%g%s\n", s.PixelRatio(), hidpi)
	fmt.Fprintf(tw, "canvas\t%dx%d\n", s.CanvasWidth(), s.CanvasHeight())
	fmt.Fprintf(tw, "rendering\t%s\n", surface.Rendering)
	fmt.Fprintf(tw, "world\t%g,%g to %g,%g\n", world.Left, world.Top, world.Right, world.Bottom)
	fmt.Fprintln(tw)
	return tw.Flush()
}
