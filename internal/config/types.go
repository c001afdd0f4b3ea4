// Package config provides configuration data structures for go-horseshoe.
// A configuration can be written as a Lua table, a YAML document or a list of
// legacy "key value" lines; all three produce the same Config.
package config

import (
	"fmt"
	"image/color"
	"log/slog"
	"math"
	"strings"

	"github.com/opd-ai/go-horseshoe/internal/slider"
)

// Config represents the complete go-horseshoe configuration.
type Config struct {
	// Slider contains the range and geometry of the control.
	Slider SliderConfig
	// Style contains colors and text settings.
	Style StyleConfig
	// Window contains the host window settings.
	Window WindowConfig
	// Logging contains log output settings.
	Logging LoggingConfig
}

// SliderConfig holds the range and geometry of the slider.
type SliderConfig struct {
	// Min and Max bound the reading.
	Min float64
	Max float64
	// ArcStart and ArcSweep place the track, in clockwise degrees from
	// 3 o'clock.
	ArcStart float64
	ArcSweep float64
	// StrokeWidth is the width of the track arc in pixels.
	StrokeWidth int
	// ThumbRadius is the radius of the thumb head in pixels.
	ThumbRadius int
	// Padding insets the track from the window edge.
	Padding int
	// HitTolerance is the half-width of the square that grabs the thumb.
	HitTolerance int
	// TransitionStrokeWidth is the width of the arc drawn behind a moving
	// thumb.
	TransitionStrokeWidth int
	// Reading is the initial reading. NaN means Min.
	Reading float64
	// ThumbImage is an optional image drawn in place of the teardrop.
	ThumbImage string
	// Enabled allows the thumb to be grabbed.
	Enabled bool
	// ThumbVisible shows the thumb.
	ThumbVisible bool
}

// StyleConfig holds colors and text settings.
type StyleConfig struct {
	ArcColor        color.RGBA
	ThumbColor      color.RGBA
	ThumbTextColor  color.RGBA
	BackgroundColor color.RGBA
	// ThumbTextSize is the reading label size in pixels.
	ThumbTextSize float64
}

// WindowConfig holds the host window settings.
type WindowConfig struct {
	Width     int
	Height    int
	Title     string
	Resizable bool
}

// LoggingConfig holds log output settings.
type LoggingConfig struct {
	Level LogLevel
}

// LogLevel is the minimum level of log output.
type LogLevel int

const (
	// LogLevelInfo logs lifecycle events.
	LogLevelInfo LogLevel = iota
	// LogLevelDebug also logs every angle computation.
	LogLevelDebug
	// LogLevelWarn logs recoverable problems only.
	LogLevelWarn
	// LogLevelError logs failures only.
	LogLevelError
)

// String returns the string representation of a LogLevel.
func (l LogLevel) String() string {
	switch l {
	case LogLevelInfo:
		return "info"
	case LogLevelDebug:
		return "debug"
	case LogLevelWarn:
		return "warn"
	case LogLevelError:
		return "error"
	default:
		return "unknown"
	}
}

// SlogLevel converts the level for use with log/slog.
func (l LogLevel) SlogLevel() slog.Level {
	switch l {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelWarn:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ParseLogLevel parses a string into a LogLevel.
func ParseLogLevel(s string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "info", "":
		return LogLevelInfo, nil
	case "debug", "verbose":
		return LogLevelDebug, nil
	case "warn", "warning":
		return LogLevelWarn, nil
	case "error":
		return LogLevelError, nil
	default:
		return LogLevelInfo, fmt.Errorf("unknown log level: %s", s)
	}
}

// Format identifies a configuration syntax.
type Format int

const (
	// FormatLegacy is one "key value" directive per line.
	FormatLegacy Format = iota
	// FormatLua is a Lua chunk assigning the slider.config table.
	FormatLua
	// FormatYAML is a YAML document with slider, style and window sections.
	FormatYAML
)

// String returns the string representation of a Format.
func (f Format) String() string {
	switch f {
	case FormatLegacy:
		return "legacy"
	case FormatLua:
		return "lua"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// ParseFormat parses a string into a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "legacy", "conf", "rc":
		return FormatLegacy, nil
	case "lua":
		return FormatLua, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return FormatLegacy, fmt.Errorf("unknown format: %s (expected 'lua', 'yaml' or 'legacy')", s)
	}
}

// SliderOptions converts the configuration into the options of the slider
// core.
func (c *Config) SliderOptions() slider.Config {
	s := c.Slider
	return slider.Config{
		Min:                   s.Min,
		Max:                   s.Max,
		Arc:                   slider.Arc{Start: s.ArcStart, Sweep: s.ArcSweep},
		StrokeWidth:           s.StrokeWidth,
		ThumbRadius:           s.ThumbRadius,
		Padding:               s.Padding,
		HitTolerance:          s.HitTolerance,
		TransitionStrokeWidth: s.TransitionStrokeWidth,
		InitialReading:        s.Reading,
		ThumbImage:            s.ThumbImage != "",
	}
}

// HasReading reports whether an initial reading was configured.
func (s SliderConfig) HasReading() bool {
	return !math.IsNaN(s.Reading)
}

// Validate checks if the Config has valid values using the comprehensive validator.
// It returns the first validation error found, or nil if the config is valid.
// For detailed validation results including warnings, use NewValidator().Validate().
func (c *Config) Validate() error {
	return NewValidator().Validate(c).Error()
}
