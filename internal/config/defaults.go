package config

import "github.com/opd-ai/go-screen/internal/display"

// Default values for configuration options.
const (
	// DefaultWidth is the default viewport width.
	DefaultWidth = 800
	// DefaultHeight is the default viewport height.
	DefaultHeight = 600
	// DefaultTitle is the window title when none is configured.
	DefaultTitle = "go-screen"
	// DefaultMaxSurfaceSize matches the texture limit of most GPUs.
	DefaultMaxSurfaceSize = 8192
	// DefaultLogLevel is the default slog level name.
	DefaultLogLevel = "info"
	// DefaultLogFormat is the default slog handler.
	DefaultLogFormat = "text"
)

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return Config{
		DisplayMode:    display.Fixed,
		Viewport:       display.Dim(DefaultWidth, DefaultHeight),
		Antialiasing:   true,
		Title:          DefaultTitle,
		Overlay:        true,
		MaxSurfaceSize: DefaultMaxSurfaceSize,
		LogLevel:       DefaultLogLevel,
		LogFormat:      DefaultLogFormat,
	}
}
