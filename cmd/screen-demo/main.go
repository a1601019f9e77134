// Package main provides screen-demo, an interactive window for exploring
// display modes, pixel ratios and coordinate conversion, and a headless
// probe that reports the layout a configuration produces on the current X11
// display.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/opd-ai/go-screen/internal/config"
	"github.com/opd-ai/go-screen/internal/profiling"
	"github.com/opd-ai/go-screen/pkg/screen"
)

// Version is the current version of screen-demo.
// This default value can be overridden at build time using:
//
//	go build -ldflags "-X main.Version=x.y.z"
var Version = "0.1.0-dev"

// flags holds the parsed command line.
type flags struct {
	configPath  string
	version     bool
	check       bool
	probe       bool
	watch       bool
	logLevel    string
	logFormat   string
	metricsAddr string
	cpuProfile  string
	memProfile  string
}

func parseFlags(fs *flag.FlagSet, args []string) (flags, error) {
	var f flags
	fs.StringVar(&f.configPath, "c", "", "Path to Lua configuration file (defaults apply if empty)")
	fs.BoolVar(&f.version, "v", false, "Print version and exit")
	fs.BoolVar(&f.check, "check", false, "Validate the configuration, print warnings and exit")
	fs.BoolVar(&f.probe, "probe", false, "Report the layout on the X11 root window instead of opening a window")
	fs.BoolVar(&f.watch, "watch", false, "Rebuild the screen when the configuration file changes")
	fs.StringVar(&f.logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	fs.StringVar(&f.logFormat, "log-format", "", "Log format: text or json (overrides config)")
	fs.StringVar(&f.metricsAddr, "metrics-addr", "", "Serve expvar metrics on this address, e.g. localhost:6060")
	fs.StringVar(&f.cpuProfile, "cpuprofile", "", "Write CPU profile to file")
	fs.StringVar(&f.memProfile, "memprofile", "", "Write memory profile to file")
	err := fs.Parse(args)
	return f, err
}

func main() {
	os.Exit(run())
}

func run() int {
	f, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		return 2
	}

	if f.version {
		fmt.Printf("screen-demo version %s\n", Version)
		return 0
	}

	cfg, warnings, err := loadConfig(f.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return 1
	}
	applyLogOverrides(cfg, f)

	if f.check {
		return runCheck(os.Stdout, cfg, warnings)
	}

	logger, err := newLogger(os.Stderr, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error configuring logging: %v\n", err)
		return 1
	}
	for _, w := range warnings {
		logger.Warn("configuration warning", "field", w.Field, "message", w.Message)
	}

	profiler := profiling.New(profiling.Config{
		CPUProfilePath: f.cpuProfile,
		MemProfilePath: f.memProfile,
	})
	if err := profiler.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start profiling: %v\n", err)
		return 1
	}
	defer func() {
		if err := profiler.Stop(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to stop profiling: %v\n", err)
		}
	}()

	metrics := screen.NewMetrics()
	metrics.RegisterExpvar("screen")
	if f.metricsAddr != "" {
		stop, err := serveMetrics(f.metricsAddr, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to serve metrics: %v\n", err)
			return 1
		}
		defer stop()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if f.probe {
		err = runProbe(ctx, os.Stdout, cfg, logger, metrics)
	} else {
		err = runWindow(ctx, cfg, f, logger, metrics)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("screen-demo failed", "error", err)
		return 1
	}
	return 0
}

// loadConfig reads the configuration at path, or returns the defaults when
// path is empty.
func loadConfig(path string) (*config.Config, []config.ValidationError, error) {
	if path == "" {
		cfg := config.DefaultConfig()
		return &cfg, nil, nil
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, nil, fmt.Errorf("configuration file not found: %s", path)
		}
		return nil, nil, fmt.Errorf("accessing configuration file %s: %w", path, err)
	}
	return config.Load(path)
}

func applyLogOverrides(cfg *config.Config, f flags) {
	if f.logLevel != "" {
		cfg.LogLevel = f.logLevel
	}
	if f.logFormat != "" {
		cfg.LogFormat = f.logFormat
	}
}

func newLogger(w io.Writer, cfg *config.Config) (screen.Logger, error) {
	level, err := screen.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	return screen.NewLogger(w, level, cfg.LogFormat)
}

// runCheck prints the effective configuration and its warnings.
func runCheck(w io.Writer, cfg *config.Config, warnings []config.ValidationError) int {
	fmt.Fprintln(w, cfg.String())
	for _, warn := range warnings {
		fmt.Fprintf(w, "warning: %s\n", warn.Error())
	}
	if _, err := screen.ParseLevel(cfg.LogLevel); err != nil {
		fmt.Fprintf(w, "error: %v\n", err)
		return 1
	}
	return 0
}
