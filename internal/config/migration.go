// Package config provides configuration parsing and migration for go-horseshoe.
// This file implements conversion between the configuration formats.
package config

import (
	"bytes"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"
)

// Migrator converts a Config into Lua, YAML or legacy text.
type Migrator struct {
	// includeComments adds explanatory comments to the output.
	includeComments bool
	// preserveDefaults includes settings even when they match defaults.
	preserveDefaults bool
}

// MigratorOption is a functional option for configuring a Migrator.
type MigratorOption func(*Migrator)

// WithComments enables adding explanatory comments to the output.
func WithComments(include bool) MigratorOption {
	return func(m *Migrator) {
		m.includeComments = include
	}
}

// WithDefaults includes settings that match default values in the output.
func WithDefaults(preserve bool) MigratorOption {
	return func(m *Migrator) {
		m.preserveDefaults = preserve
	}
}

// NewMigrator creates a new Migrator with the given options.
func NewMigrator(opts ...MigratorOption) *Migrator {
	m := &Migrator{
		includeComments:  true,
		preserveDefaults: false,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// setting is one key of a Config in both literal syntaxes.
type setting struct {
	group  string
	key    string
	lua    string
	legacy string
}

// settings lists the values of cfg in Keys order, skipping those equal to
// the defaults unless preserveDefaults is set.
func (m *Migrator) settings(cfg *Config) []setting {
	d := DefaultConfig()
	var out []setting

	num := func(group, key string, v, def float64) {
		if m.preserveDefaults || v != def {
			s := strconv.FormatFloat(v, 'g', -1, 64)
			out = append(out, setting{group, key, s, s})
		}
	}
	integer := func(group, key string, v, def int) {
		num(group, key, float64(v), float64(def))
	}
	str := func(group, key, v, def string) {
		if v != "" && (m.preserveDefaults || v != def) {
			out = append(out, setting{group, key, luaString(v), v})
		}
	}
	boolean := func(group, key string, v, def bool) {
		if m.preserveDefaults || v != def {
			s := strconv.FormatBool(v)
			out = append(out, setting{group, key, s, s})
		}
	}
	col := func(group, key string, v, def color.RGBA) {
		if m.preserveDefaults || v != def {
			s := FormatColor(v)
			out = append(out, setting{group, key, luaString(s), s})
		}
	}

	s, ds := cfg.Slider, d.Slider
	num("Range", "min", s.Min, ds.Min)
	num("Range", "max", s.Max, ds.Max)
	if s.HasReading() {
		r := strconv.FormatFloat(s.Reading, 'g', -1, 64)
		out = append(out, setting{"Range", "reading", r, r})
	}
	num("Geometry", "arc_start", s.ArcStart, ds.ArcStart)
	num("Geometry", "arc_sweep", s.ArcSweep, ds.ArcSweep)
	integer("Geometry", "stroke_width", s.StrokeWidth, ds.StrokeWidth)
	integer("Geometry", "thumb_radius", s.ThumbRadius, ds.ThumbRadius)
	integer("Geometry", "padding", s.Padding, ds.Padding)
	integer("Geometry", "hit_tolerance", s.HitTolerance, ds.HitTolerance)
	integer("Geometry", "transition_stroke_width", s.TransitionStrokeWidth, ds.TransitionStrokeWidth)
	str("Thumb", "thumb_image", s.ThumbImage, ds.ThumbImage)
	boolean("Thumb", "enabled", s.Enabled, ds.Enabled)
	boolean("Thumb", "thumb_visible", s.ThumbVisible, ds.ThumbVisible)

	st, dst := cfg.Style, d.Style
	col("Colors", "arc_color", st.ArcColor, dst.ArcColor)
	col("Colors", "thumb_color", st.ThumbColor, dst.ThumbColor)
	col("Colors", "thumb_text_color", st.ThumbTextColor, dst.ThumbTextColor)
	col("Colors", "background_color", st.BackgroundColor, dst.BackgroundColor)
	num("Colors", "thumb_text_size", st.ThumbTextSize, dst.ThumbTextSize)

	w, dw := cfg.Window, d.Window
	integer("Window", "width", w.Width, dw.Width)
	integer("Window", "height", w.Height, dw.Height)
	str("Window", "title", w.Title, dw.Title)
	boolean("Window", "resizable", w.Resizable, dw.Resizable)

	if m.preserveDefaults || cfg.Logging.Level != d.Logging.Level {
		lvl := cfg.Logging.Level.String()
		out = append(out, setting{"Logging", "log_level", luaString(lvl), lvl})
	}
	return out
}

// MigrateToLua converts a Config to the Lua configuration format.
func (m *Migrator) MigrateToLua(cfg *Config) ([]byte, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}

	var buf bytes.Buffer
	if m.includeComments {
		buf.WriteString("-- go-horseshoe Lua configuration\n\n")
	}
	buf.WriteString("slider.config = {\n")
	group := ""
	for _, s := range m.settings(cfg) {
		if m.includeComments && s.group != group {
			if group != "" {
				buf.WriteString("\n")
			}
			fmt.Fprintf(&buf, "    -- %s\n", s.group)
			group = s.group
		}
		fmt.Fprintf(&buf, "    %s = %s,\n", s.key, s.lua)
	}
	buf.WriteString("}\n")
	return buf.Bytes(), nil
}

// MigrateToLegacy converts a Config to "key value" lines.
func (m *Migrator) MigrateToLegacy(cfg *Config) ([]byte, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}

	var buf bytes.Buffer
	if m.includeComments {
		buf.WriteString("# go-horseshoe configuration\n")
	}
	group := ""
	for _, s := range m.settings(cfg) {
		if m.includeComments && s.group != group {
			fmt.Fprintf(&buf, "\n# %s\n", s.group)
			group = s.group
		}
		fmt.Fprintf(&buf, "%s %s\n", s.key, s.legacy)
	}
	return buf.Bytes(), nil
}

// Migrate converts a Config to the requested format.
func (m *Migrator) Migrate(cfg *Config, to Format) ([]byte, error) {
	switch to {
	case FormatLua:
		return m.MigrateToLua(cfg)
	case FormatYAML:
		return EncodeYAML(cfg)
	case FormatLegacy:
		return m.MigrateToLegacy(cfg)
	default:
		return nil, fmt.Errorf("unknown format: %v", to)
	}
}

// luaString quotes a value as a Lua string literal.
func luaString(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`, "\n", `\n`)
	return "'" + r.Replace(s) + "'"
}

// MigrateFile reads a configuration file in any format and converts it.
func MigrateFile(path string, to Format, opts ...MigratorOption) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return migrate(content, DetectFormat(path, content), to, opts...)
}

// MigrateLegacyContent converts legacy content to the Lua format.
func MigrateLegacyContent(content []byte, opts ...MigratorOption) ([]byte, error) {
	return migrate(content, FormatLegacy, FormatLua, opts...)
}

func migrate(content []byte, from, to Format, opts ...MigratorOption) ([]byte, error) {
	parser, err := NewParser()
	if err != nil {
		return nil, err
	}
	defer parser.Close()

	cfg, err := parser.decode(content, from)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s config: %w", from, err)
	}
	return NewMigrator(opts...).Migrate(cfg, to)
}
