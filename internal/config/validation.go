// Package config provides configuration parsing and validation for go-horseshoe.
// This file implements validation of configuration values.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/opd-ai/go-horseshoe/internal/slider"
)

// ValidationError is one problem found in a Config, keyed by the dotted
// field name (slider.max, window.width).
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (ve ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ve.Field, ve.Message)
}

// ValidationResult collects errors, which reject a Config, and warnings,
// which do not.
type ValidationResult struct {
	Errors []ValidationError
	// Warnings contains non-fatal issues (e.g., an invisible color).
	Warnings []ValidationError
}

// IsValid returns true if there are no validation errors.
func (vr *ValidationResult) IsValid() bool {
	return len(vr.Errors) == 0
}

// Error returns a combined error if there are errors, nil otherwise. The
// error wraps slider.ErrInvalidConfig.
func (vr *ValidationResult) Error() error {
	if len(vr.Errors) == 0 {
		return nil
	}

	messages := make([]string, 0, len(vr.Errors))
	for _, e := range vr.Errors {
		messages = append(messages, e.Error())
	}
	return fmt.Errorf("%w: %s", slider.ErrInvalidConfig, strings.Join(messages, "; "))
}

// AddError records an error for field.
func (vr *ValidationResult) AddError(field, message string) {
	vr.Errors = append(vr.Errors, ValidationError{Field: field, Message: message})
}

// AddWarning records a warning for field.
func (vr *ValidationResult) AddWarning(field, message string) {
	vr.Warnings = append(vr.Warnings, ValidationError{Field: field, Message: message})
}

// Merge appends the findings of other.
func (vr *ValidationResult) Merge(other *ValidationResult) {
	if other == nil {
		return
	}
	vr.Errors = append(vr.Errors, other.Errors...)
	vr.Warnings = append(vr.Warnings, other.Warnings...)
}

// Validator checks a Config against the slider core rules and the window
// geometry.
type Validator struct {
	// checkFiles stats referenced files such as the thumb image.
	checkFiles bool
	// strictMode turns warnings into errors.
	strictMode bool
}

// NewValidator returns a lenient Validator that does not touch the disk.
func NewValidator() *Validator {
	return &Validator{checkFiles: true}
}

// WithStrictMode enables strict validation where warnings are errors.
func (v *Validator) WithStrictMode(strict bool) *Validator {
	v.strictMode = strict
	return v
}

// WithFileChecks controls whether referenced files must exist.
func (v *Validator) WithFileChecks(check bool) *Validator {
	v.checkFiles = check
	return v
}

// Validate checks cfg. A nil Config is an error.
func (v *Validator) Validate(cfg *Config) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		result.AddError("config", "is nil")
		return result
	}

	v.validateSlider(&cfg.Slider, result)
	v.validateStyle(&cfg.Style, result)
	v.validateWindow(&cfg.Window, &cfg.Slider, result)

	if v.strictMode {
		result.Errors = append(result.Errors, result.Warnings...)
		result.Warnings = nil
	}
	return result
}

// validateSlider runs the core checks and adds geometry warnings.
func (v *Validator) validateSlider(sc *SliderConfig, result *ValidationResult) {
	core := (&Config{Slider: *sc}).SliderOptions()
	if err := core.Validate(); err != nil {
		var ce *slider.ConfigError
		if errors.As(err, &ce) {
			result.AddError("slider."+ce.Field, ce.Message)
		} else {
			result.AddError("slider", err.Error())
		}
	}

	if sc.HitTolerance > 0 && sc.ThumbRadius > 0 && sc.HitTolerance < sc.ThumbRadius/2 {
		result.AddWarning("slider.hit_tolerance",
			fmt.Sprintf("%d is smaller than the visible thumb (radius %d)", sc.HitTolerance, sc.ThumbRadius))
	}

	if sc.ThumbImage != "" && v.checkFiles {
		if _, err := os.Stat(sc.ThumbImage); err != nil {
			result.AddWarning("slider.thumb_image",
				fmt.Sprintf("cannot read %s, the teardrop thumb is drawn instead", sc.ThumbImage))
		}
	}
}

// validateStyle checks colors and text settings.
func (v *Validator) validateStyle(st *StyleConfig, result *ValidationResult) {
	if st.ThumbTextSize <= 0 {
		result.AddError("style.thumb_text_size", fmt.Sprintf("must be positive, got %v", st.ThumbTextSize))
	}
	if st.ArcColor.A == 0 {
		result.AddWarning("style.arc_color", "is fully transparent, the track is invisible")
	}
	if st.ThumbColor.A == 0 {
		result.AddWarning("style.thumb_color", "is fully transparent, the thumb is invisible")
	}
	if st.ThumbTextColor == st.ThumbColor {
		result.AddWarning("style.thumb_text_color", "matches thumb_color, the reading is unreadable")
	}
}

// validateWindow checks the window size against the slider geometry.
func (v *Validator) validateWindow(wc *WindowConfig, sc *SliderConfig, result *ValidationResult) {
	if wc.Width < 0 {
		result.AddError("window.width", fmt.Sprintf("must be non-negative, got %d", wc.Width))
	}
	if wc.Height < 0 {
		result.AddError("window.height", fmt.Sprintf("must be non-negative, got %d", wc.Height))
	}
	if wc.Width > 0 && wc.Width < slider.MinSize {
		result.AddWarning("window.width", fmt.Sprintf("%d is below the minimum of %d", wc.Width, slider.MinSize))
	}
	if wc.Height > 0 && wc.Height < slider.MinSize {
		result.AddWarning("window.height", fmt.Sprintf("%d is below the minimum of %d", wc.Height, slider.MinSize))
	}

	// The thumb sits outside the track; make sure some of the track is left.
	inset := sc.StrokeWidth + 2*sc.Padding
	if side := min(wc.Width, wc.Height); side > 0 && side <= inset {
		result.AddError("window", fmt.Sprintf("smaller side %d leaves no room for the track (needs more than %d)", side, inset))
	}

	const maxDimension = 10000
	if wc.Width > maxDimension {
		result.AddWarning("window.width", fmt.Sprintf("unusually large value %d", wc.Width))
	}
	if wc.Height > maxDimension {
		result.AddWarning("window.height", fmt.Sprintf("unusually large value %d", wc.Height))
	}
}

// ValidateConfig validates a Config and returns an error if invalid.
// This is a convenience function that uses default validation settings.
func ValidateConfig(cfg *Config) error {
	return NewValidator().Validate(cfg).Error()
}
