package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Keys lists the flat configuration keys shared by the Lua and legacy
// formats, in the order the migrator writes them.
var Keys = []string{
	"min",
	"max",
	"reading",
	"arc_start",
	"arc_sweep",
	"stroke_width",
	"thumb_radius",
	"padding",
	"hit_tolerance",
	"transition_stroke_width",
	"thumb_image",
	"enabled",
	"thumb_visible",
	"arc_color",
	"thumb_color",
	"thumb_text_color",
	"background_color",
	"thumb_text_size",
	"width",
	"height",
	"title",
	"resizable",
	"log_level",
}

// keyAliases maps older attribute spellings onto Keys.
var keyAliases = map[string]string{
	"curr_thumb_reading":      "reading",
	"background_padding":      "padding",
	"thumb_reading_text_size": "thumb_text_size",
	"minimum_width":           "width",
	"minimum_height":          "height",
}

// canonicalKey lower-cases a key and resolves aliases.
func canonicalKey(key string) string {
	key = strings.ToLower(strings.TrimSpace(key))
	if k, ok := keyAliases[key]; ok {
		return k
	}
	return key
}

// applyKey sets one configuration value from its textual form. Unknown keys
// report false and leave cfg untouched.
func applyKey(cfg *Config, key, value string) (bool, error) {
	value = strings.TrimSpace(value)
	var err error
	switch canonicalKey(key) {
	case "min":
		cfg.Slider.Min, err = parseFloat(value)
	case "max":
		cfg.Slider.Max, err = parseFloat(value)
	case "reading":
		cfg.Slider.Reading, err = parseFloat(value)
	case "arc_start":
		cfg.Slider.ArcStart, err = parseFloat(value)
	case "arc_sweep":
		cfg.Slider.ArcSweep, err = parseFloat(value)
	case "stroke_width":
		cfg.Slider.StrokeWidth, err = parseInt(value)
	case "thumb_radius":
		cfg.Slider.ThumbRadius, err = parseInt(value)
	case "padding":
		cfg.Slider.Padding, err = parseInt(value)
	case "hit_tolerance":
		cfg.Slider.HitTolerance, err = parseInt(value)
	case "transition_stroke_width":
		cfg.Slider.TransitionStrokeWidth, err = parseInt(value)
	case "thumb_image":
		cfg.Slider.ThumbImage = unquote(value)
	case "enabled":
		cfg.Slider.Enabled = parseBool(value)
	case "thumb_visible":
		cfg.Slider.ThumbVisible = parseBool(value)
	case "arc_color":
		cfg.Style.ArcColor, err = ParseColor(unquote(value))
	case "thumb_color":
		cfg.Style.ThumbColor, err = ParseColor(unquote(value))
	case "thumb_text_color":
		cfg.Style.ThumbTextColor, err = ParseColor(unquote(value))
	case "background_color":
		cfg.Style.BackgroundColor, err = ParseColor(unquote(value))
	case "thumb_text_size":
		cfg.Style.ThumbTextSize, err = parseFloat(value)
	case "width":
		cfg.Window.Width, err = parseInt(value)
	case "height":
		cfg.Window.Height, err = parseInt(value)
	case "title":
		cfg.Window.Title = unquote(value)
	case "resizable":
		cfg.Window.Resizable = parseBool(value)
	case "log_level":
		cfg.Logging.Level, err = ParseLogLevel(unquote(value))
	default:
		return false, nil
	}
	if err != nil {
		return true, fmt.Errorf("invalid %s: %w", canonicalKey(key), err)
	}
	return true, nil
}

// parseBool parses a boolean value from common string representations.
// Accepts: yes, no, true, false, 1, 0
func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "yes", "true", "1", "on":
		return true
	default:
		return false
	}
}

// parseFloat parses a float64 from a string.
func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

// parseInt parses an int from a string.
func parseInt(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}

// unquote strips one pair of matching double or single quotes.
func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}
