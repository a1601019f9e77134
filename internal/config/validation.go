package config

import (
	"fmt"
	"math"
	"strings"

	"github.com/opd-ai/go-screen/internal/display"
	"github.com/opd-ai/go-screen/pkg/screen"
)

// ValidationError represents a configuration validation error.
// It contains the field name and a description of the issue.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (ve ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ve.Field, ve.Message)
}

// ValidationResult holds the results of a configuration validation.
type ValidationResult struct {
	// Errors make the configuration unusable.
	Errors []ValidationError
	// Warnings are settings that work but probably do not do what was meant.
	Warnings []ValidationError
}

// IsValid returns true if there are no validation errors.
func (vr *ValidationResult) IsValid() bool {
	return len(vr.Errors) == 0
}

// Error returns a combined error, or nil if there are no errors.
func (vr *ValidationResult) Error() error {
	if len(vr.Errors) == 0 {
		return nil
	}
	messages := make([]string, 0, len(vr.Errors))
	for _, e := range vr.Errors {
		messages = append(messages, e.Error())
	}
	return fmt.Errorf("validation failed: %s", strings.Join(messages, "; "))
}

// AddError adds a validation error.
func (vr *ValidationResult) AddError(field, message string) {
	vr.Errors = append(vr.Errors, ValidationError{Field: field, Message: message})
}

// AddWarning adds a validation warning.
func (vr *ValidationResult) AddWarning(field, message string) {
	vr.Warnings = append(vr.Warnings, ValidationError{Field: field, Message: message})
}

// Validator checks a Config. In strict mode warnings are reported as errors.
type Validator struct {
	strict bool
}

// NewValidator creates a non-strict Validator.
func NewValidator() *Validator {
	return &Validator{}
}

// WithStrictMode enables or disables strict mode.
func (v *Validator) WithStrictMode(strict bool) *Validator {
	v.strict = strict
	return v
}

// Validate checks cfg.
func (v *Validator) Validate(cfg *Config) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		result.AddError("config", "is nil")
		return result
	}

	validateLayout(cfg, result)
	validatePixelRatio(cfg, result)
	validateLogging(cfg, result)

	if cfg.Title == "" {
		result.AddWarning("title", "is empty")
	}

	if v.strict {
		result.Errors = append(result.Errors, result.Warnings...)
		result.Warnings = nil
	}
	return result
}

// Validate checks cfg with a non-strict Validator.
func Validate(cfg *Config) *ValidationResult {
	return NewValidator().Validate(cfg)
}

func validateLayout(cfg *Config, result *ValidationResult) {
	if !positiveDim(cfg.Viewport) {
		result.AddError("viewport", fmt.Sprintf("width and height must be positive, got %v", cfg.Viewport))
	}
	if !cfg.Resolution.IsZero() && !positiveDim(cfg.Resolution) {
		result.AddError("resolution", fmt.Sprintf("width and height must be positive, got %v", cfg.Resolution))
	}
	if _, err := display.ParseDisplayMode(cfg.DisplayMode.String()); err != nil {
		result.AddError("display_mode", err.Error())
	}

	if !cfg.Resolution.IsZero() && (cfg.DisplayMode == display.FillScreen || cfg.DisplayMode == display.FillContainer) {
		result.AddWarning("resolution", fmt.Sprintf("ignored by %s, which tracks the window size", cfg.DisplayMode))
	}

	if cfg.MaxSurfaceSize <= 0 {
		result.AddError("max_surface_size", fmt.Sprintf("must be positive, got %d", cfg.MaxSurfaceSize))
		return
	}
	ratio := math.Max(cfg.PixelRatio, 1)
	scaled := cfg.EffectiveResolution().Scale(ratio)
	limit := float64(cfg.MaxSurfaceSize)
	if scaled.Width > limit || scaled.Height > limit {
		result.AddWarning("resolution", fmt.Sprintf("%v at pixel ratio %g exceeds max_surface_size %d",
			cfg.EffectiveResolution(), ratio, cfg.MaxSurfaceSize))
	}
}

func validatePixelRatio(cfg *Config, result *ValidationResult) {
	switch r := cfg.PixelRatio; {
	case math.IsNaN(r) || math.IsInf(r, 0) || r < 0:
		result.AddError("pixel_ratio", fmt.Sprintf("must be zero or positive, got %g", r))
	case r > 0 && r < 1:
		result.AddWarning("pixel_ratio", fmt.Sprintf("%g under-samples the surface", r))
	}
}

func validateLogging(cfg *Config, result *ValidationResult) {
	if _, err := screen.ParseLevel(cfg.LogLevel); err != nil {
		result.AddError("log_level", err.Error())
	}
	switch strings.ToLower(cfg.LogFormat) {
	case "", "text", "json":
	default:
		result.AddError("log_format", fmt.Sprintf("unknown format %q (expected 'text' or 'json')", cfg.LogFormat))
	}
}

func positiveDim(d display.Dimension) bool {
	return d.Width > 0 && d.Height > 0 && !math.IsInf(d.Width, 0) && !math.IsInf(d.Height, 0)
}

// ValidateConfig returns an error if cfg has validation errors.
func ValidateConfig(cfg *Config) error {
	return Validate(cfg).Error()
}

// ValidateConfigStrict returns an error if cfg has validation errors or
// warnings.
func ValidateConfigStrict(cfg *Config) error {
	return NewValidator().WithStrictMode(true).Validate(cfg).Error()
}
