package main

import (
	"context"
	"math"

	"github.com/opd-ai/go-screen/internal/config"
	"github.com/opd-ai/go-screen/internal/render"
	"github.com/opd-ai/go-screen/pkg/screen"
)

// renderConfig sizes the demo window to the configured viewport.
func renderConfig(cfg *config.Config) render.Config {
	rc := render.DefaultConfig()
	rc.Width = int(math.Ceil(cfg.Viewport.Width))
	rc.Height = int(math.Ceil(cfg.Viewport.Height))
	rc.Title = cfg.Title
	rc.Overlay = cfg.Overlay
	rc.MaxSurfaceSize = cfg.MaxSurfaceSize
	return rc
}

// runWindow opens the demo window and blocks until it is closed or ctx is
// done.
func runWindow(ctx context.Context, cfg *config.Config, f flags, logger screen.Logger, metrics *screen.Metrics) error {
	game, err := render.NewGame(renderConfig(cfg), cfg.ScreenOptions(logger, metrics))
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	game.SetContext(ctx)

	switch {
	case f.watch && f.configPath != "":
		w, err := screen.NewWatcher(f.configPath, screen.DefaultWatchDebounce, logger)
		if err != nil {
			return err
		}
		if err := w.Start(); err != nil {
			return err
		}
		defer w.Stop()
		go reloadLoop(ctx, w, game, logger, metrics)
		logger.Info("watching configuration", "path", w.Path())
	case f.watch:
		logger.Warn("-watch needs a configuration file (-c); not watching")
	}

	return game.Run()
}

// reloader accepts new screen options.
type reloader interface {
	Reload(opts screen.Options)
}

// reloadLoop loads the configuration each time the watcher reports a change
// and hands the result to r. Invalid configurations are logged and skipped.
func reloadLoop(ctx context.Context, w *screen.Watcher, r reloader, logger screen.Logger, metrics *screen.Metrics) {
	for {
		select {
		case <-ctx.Done():
			return
		case path := <-w.Changes():
			opts, err := reloadOptions(path, logger, metrics)
			if err != nil {
				logger.Error("configuration reload failed", "path", path, "error", err)
				continue
			}
			r.Reload(opts)
		case err := <-w.Errors():
			logger.Warn("configuration watch error", "error", err)
		}
	}
}

func reloadOptions(path string, logger screen.Logger, metrics *screen.Metrics) (screen.Options, error) {
	cfg, warnings, err := config.Load(path)
	if err != nil {
		return screen.Options{}, err
	}
	for _, w := range warnings {
		logger.Warn("configuration warning", "field", w.Field, "message", w.Message)
	}
	logger.Info("configuration reloaded", "config", cfg.String())
	return cfg.ScreenOptions(logger, metrics), nil
}
