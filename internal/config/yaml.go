// Package config provides configuration parsing for go-horseshoe.
// This file implements the YAML configuration format.

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"

	"gopkg.in/yaml.v3"
)

// yamlDocument mirrors Config with YAML-friendly field types. Absent fields
// keep the values the document was seeded with.
type yamlDocument struct {
	Slider  yamlSlider  `yaml:"slider"`
	Style   yamlStyle   `yaml:"style"`
	Window  yamlWindow  `yaml:"window"`
	Logging yamlLogging `yaml:"logging"`
}

type yamlSlider struct {
	Min                   float64  `yaml:"min"`
	Max                   float64  `yaml:"max"`
	Reading               *float64 `yaml:"reading,omitempty"`
	ArcStart              float64  `yaml:"arc_start"`
	ArcSweep              float64  `yaml:"arc_sweep"`
	StrokeWidth           int      `yaml:"stroke_width"`
	ThumbRadius           int      `yaml:"thumb_radius"`
	Padding               int      `yaml:"padding"`
	HitTolerance          int      `yaml:"hit_tolerance"`
	TransitionStrokeWidth int      `yaml:"transition_stroke_width"`
	ThumbImage            string   `yaml:"thumb_image,omitempty"`
	Enabled               bool     `yaml:"enabled"`
	ThumbVisible          bool     `yaml:"thumb_visible"`
}

type yamlStyle struct {
	ArcColor        string  `yaml:"arc_color"`
	ThumbColor      string  `yaml:"thumb_color"`
	ThumbTextColor  string  `yaml:"thumb_text_color"`
	BackgroundColor string  `yaml:"background_color"`
	ThumbTextSize   float64 `yaml:"thumb_text_size"`
}

type yamlWindow struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	Resizable bool   `yaml:"resizable"`
}

type yamlLogging struct {
	Level string `yaml:"level"`
}

func newYAMLDocument(cfg *Config) yamlDocument {
	doc := yamlDocument{
		Slider: yamlSlider{
			Min:                   cfg.Slider.Min,
			Max:                   cfg.Slider.Max,
			ArcStart:              cfg.Slider.ArcStart,
			ArcSweep:              cfg.Slider.ArcSweep,
			StrokeWidth:           cfg.Slider.StrokeWidth,
			ThumbRadius:           cfg.Slider.ThumbRadius,
			Padding:               cfg.Slider.Padding,
			HitTolerance:          cfg.Slider.HitTolerance,
			TransitionStrokeWidth: cfg.Slider.TransitionStrokeWidth,
			ThumbImage:            cfg.Slider.ThumbImage,
			Enabled:               cfg.Slider.Enabled,
			ThumbVisible:          cfg.Slider.ThumbVisible,
		},
		Style: yamlStyle{
			ArcColor:        FormatColor(cfg.Style.ArcColor),
			ThumbColor:      FormatColor(cfg.Style.ThumbColor),
			ThumbTextColor:  FormatColor(cfg.Style.ThumbTextColor),
			BackgroundColor: FormatColor(cfg.Style.BackgroundColor),
			ThumbTextSize:   cfg.Style.ThumbTextSize,
		},
		Window: yamlWindow{
			Width:     cfg.Window.Width,
			Height:    cfg.Window.Height,
			Title:     cfg.Window.Title,
			Resizable: cfg.Window.Resizable,
		},
		Logging: yamlLogging{Level: cfg.Logging.Level.String()},
	}
	if cfg.Slider.HasReading() {
		r := cfg.Slider.Reading
		doc.Slider.Reading = &r
	}
	return doc
}

func (d *yamlDocument) config() (*Config, error) {
	cfg := Config{
		Slider: SliderConfig{
			Min:                   d.Slider.Min,
			Max:                   d.Slider.Max,
			ArcStart:              d.Slider.ArcStart,
			ArcSweep:              d.Slider.ArcSweep,
			StrokeWidth:           d.Slider.StrokeWidth,
			ThumbRadius:           d.Slider.ThumbRadius,
			Padding:               d.Slider.Padding,
			HitTolerance:          d.Slider.HitTolerance,
			TransitionStrokeWidth: d.Slider.TransitionStrokeWidth,
			Reading:               math.NaN(),
			ThumbImage:            d.Slider.ThumbImage,
			Enabled:               d.Slider.Enabled,
			ThumbVisible:          d.Slider.ThumbVisible,
		},
		Style: StyleConfig{ThumbTextSize: d.Style.ThumbTextSize},
		Window: WindowConfig{
			Width:     d.Window.Width,
			Height:    d.Window.Height,
			Title:     d.Window.Title,
			Resizable: d.Window.Resizable,
		},
	}
	if d.Slider.Reading != nil {
		cfg.Slider.Reading = *d.Slider.Reading
	}

	var err error
	if cfg.Style.ArcColor, err = ParseColor(d.Style.ArcColor); err != nil {
		return nil, fmt.Errorf("invalid style.arc_color: %w", err)
	}
	if cfg.Style.ThumbColor, err = ParseColor(d.Style.ThumbColor); err != nil {
		return nil, fmt.Errorf("invalid style.thumb_color: %w", err)
	}
	if cfg.Style.ThumbTextColor, err = ParseColor(d.Style.ThumbTextColor); err != nil {
		return nil, fmt.Errorf("invalid style.thumb_text_color: %w", err)
	}
	if cfg.Style.BackgroundColor, err = ParseColor(d.Style.BackgroundColor); err != nil {
		return nil, fmt.Errorf("invalid style.background_color: %w", err)
	}
	if cfg.Logging.Level, err = ParseLogLevel(d.Logging.Level); err != nil {
		return nil, fmt.Errorf("invalid logging.level: %w", err)
	}
	return &cfg, nil
}

// YAMLParser parses YAML configuration documents:
//
//	slider:
//	  min: 0
//	  max: 100
//	style:
//	  arc_color: "#d0d0d0"
//	window:
//	  width: 480
type YAMLParser struct{}

// NewYAMLParser creates a new YAMLParser instance.
func NewYAMLParser() *YAMLParser {
	return &YAMLParser{}
}

// Parse decodes a YAML document on top of the defaults.
func (p *YAMLParser) Parse(content []byte) (*Config, error) {
	defaults := DefaultConfig()
	doc := newYAMLDocument(&defaults)

	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse YAML configuration: %w", err)
	}
	return doc.config()
}

// EncodeYAML renders cfg as a YAML document.
func EncodeYAML(cfg *Config) ([]byte, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}
	doc := newYAMLDocument(cfg)
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return nil, fmt.Errorf("failed to encode YAML configuration: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode YAML configuration: %w", err)
	}
	return buf.Bytes(), nil
}
