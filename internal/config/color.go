package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// namedColors maps color names to RGBA values.
var namedColors = map[string]color.RGBA{
	"black":       {R: 0, G: 0, B: 0, A: 255},
	"white":       {R: 255, G: 255, B: 255, A: 255},
	"red":         {R: 255, G: 0, B: 0, A: 255},
	"green":       {R: 0, G: 128, B: 0, A: 255},
	"blue":        {R: 0, G: 0, B: 255, A: 255},
	"yellow":      {R: 255, G: 255, B: 0, A: 255},
	"cyan":        {R: 0, G: 255, B: 255, A: 255},
	"magenta":     {R: 255, G: 0, B: 255, A: 255},
	"gray":        {R: 128, G: 128, B: 128, A: 255},
	"grey":        {R: 128, G: 128, B: 128, A: 255},
	"lightgray":   {R: 211, G: 211, B: 211, A: 255},
	"lightgrey":   {R: 211, G: 211, B: 211, A: 255},
	"darkgray":    {R: 169, G: 169, B: 169, A: 255},
	"darkgrey":    {R: 169, G: 169, B: 169, A: 255},
	"orange":      {R: 255, G: 165, B: 0, A: 255},
	"navy":        {R: 0, G: 0, B: 128, A: 255},
	"teal":        {R: 0, G: 128, B: 128, A: 255},
	"steelblue":   {R: 70, G: 130, B: 180, A: 255},
	"transparent": {R: 0, G: 0, B: 0, A: 0},
}

// ParseColor parses a color string.
// Supported formats:
//   - Named colors: "red", "steelblue", "transparent", ...
//   - Hex: "#RGB", "#RGBA", "#RRGGBB", "#RRGGBBAA" (the # is optional)
//   - "rgb(255, 0, 0)" and "rgba(255, 0, 0, 0.5)" or "rgba(255, 0, 0, 128)"
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return color.RGBA{}, fmt.Errorf("empty color string")
	}
	lower := strings.ToLower(s)
	if c, ok := namedColors[lower]; ok {
		return c, nil
	}
	switch {
	case strings.HasPrefix(lower, "rgba("):
		return parseColorFunc(s, "rgba(", 4)
	case strings.HasPrefix(lower, "rgb("):
		return parseColorFunc(s, "rgb(", 3)
	}
	return parseHexColor(s)
}

// parseHexColor parses the hex forms, expanding the one-digit shorthands.
func parseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 3 || len(hex) == 4 {
		var b strings.Builder
		for _, r := range hex {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		hex = b.String()
	}
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color format: %q", s)
	}
	var ch [4]uint8
	ch[3] = 255
	for i := 0; i < len(hex)/2; i++ {
		v, err := strconv.ParseUint(hex[2*i:2*i+2], 16, 8)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("invalid hex digits in color %q", s)
		}
		ch[i] = uint8(v)
	}
	return color.RGBA{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}, nil
}

// parseColorFunc parses "rgb(r, g, b)" and "rgba(r, g, b, a)".
func parseColorFunc(s, prefix string, n int) (color.RGBA, error) {
	if !strings.HasSuffix(s, ")") {
		return color.RGBA{}, fmt.Errorf("invalid %s) format: %q", prefix, s)
	}
	parts := strings.Split(s[len(prefix):len(s)-1], ",")
	if len(parts) != n {
		return color.RGBA{}, fmt.Errorf("%s) requires exactly %d values, got %d", prefix, n, len(parts))
	}
	ch := [4]uint8{3: 255}
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseUint(strings.TrimSpace(parts[i]), 10, 8)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("invalid component %d in %q: %w", i, s, err)
		}
		ch[i] = uint8(v)
	}
	if n == 4 {
		a, err := parseAlpha(strings.TrimSpace(parts[3]))
		if err != nil {
			return color.RGBA{}, fmt.Errorf("invalid alpha in %q: %w", s, err)
		}
		ch[3] = a
	}
	return color.RGBA{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}, nil
}

// parseAlpha accepts 0-255 integers and 0.0-1.0 fractions.
func parseAlpha(s string) (uint8, error) {
	if strings.Contains(s, ".") {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, err
		}
		f = max(0, min(1, f))
		return uint8(f*255 + 0.5), nil
	}
	v, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, err
	}
	return uint8(v), nil
}

// FormatColor renders a color as #RRGGBB, or #RRGGBBAA when it is not
// opaque.
func FormatColor(c color.RGBA) string {
	if c.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}
