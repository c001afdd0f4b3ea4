package config

import (
	"bytes"
	"strings"
	"testing"
)

func newTestLuaParser(t *testing.T) *LuaConfigParser {
	t.Helper()
	p, err := NewLuaConfigParser()
	if err != nil {
		t.Fatalf("NewLuaConfigParser failed: %v", err)
	}
	t.Cleanup(func() { p.Close() })
	return p
}

func TestLuaConfigParserParse(t *testing.T) {
	content := `
local low, high = 10, 30
slider.config = {
    min = low,
    max = high,
    reading = (low + high) / 2,
    arc_sweep = 240,
    thumb_radius = 40,
    thumb_image = "thumb.png",
    enabled = false,
    thumb_color = "rgb(72, 106, 176)",
    thumb_text_size = 20.5,
    title = "Thermostat",
    log_level = "warn",
}
`
	p := newTestLuaParser(t)
	cfg, err := p.Parse([]byte(content))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.Slider.Min != 10 || cfg.Slider.Max != 30 {
		t.Errorf("range = [%v, %v], want [10, 30]", cfg.Slider.Min, cfg.Slider.Max)
	}
	if cfg.Slider.Reading != 20 {
		t.Errorf("reading = %v, want 20", cfg.Slider.Reading)
	}
	if cfg.Slider.ArcSweep != 240 {
		t.Errorf("arc_sweep = %v, want 240", cfg.Slider.ArcSweep)
	}
	if cfg.Slider.ThumbRadius != 40 {
		t.Errorf("thumb_radius = %d, want 40", cfg.Slider.ThumbRadius)
	}
	if cfg.Slider.ThumbImage != "thumb.png" {
		t.Errorf("thumb_image = %q", cfg.Slider.ThumbImage)
	}
	if cfg.Slider.Enabled {
		t.Error("enabled = false was not applied")
	}
	if cfg.Style.ThumbColor != DefaultThumbColor {
		t.Errorf("thumb_color = %v", cfg.Style.ThumbColor)
	}
	if cfg.Style.ThumbTextSize != 20.5 {
		t.Errorf("thumb_text_size = %v", cfg.Style.ThumbTextSize)
	}
	if cfg.Window.Title != "Thermostat" {
		t.Errorf("title = %q", cfg.Window.Title)
	}
	if cfg.Logging.Level != LogLevelWarn {
		t.Errorf("log_level = %v", cfg.Logging.Level)
	}
}

func TestLuaConfigParserAliases(t *testing.T) {
	p := newTestLuaParser(t)
	cfg, err := p.Parse([]byte(`slider.config = {
    curr_thumb_reading = 42,
    background_padding = 3,
    padding = 6,
}`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Slider.Reading != 42 {
		t.Errorf("reading = %v, want 42", cfg.Slider.Reading)
	}
	if cfg.Slider.Padding != 6 {
		t.Errorf("padding = %d, canonical key should win over its alias", cfg.Slider.Padding)
	}
}

func TestLuaConfigParserDefaults(t *testing.T) {
	p := newTestLuaParser(t)
	for _, content := range []string{"", "-- nothing here", "slider = nil", "slider.config = {}"} {
		cfg, err := p.Parse([]byte(content))
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", content, err)
		}
		if cfg.Slider.Max != DefaultConfig().Slider.Max {
			t.Errorf("Parse(%q) max = %v", content, cfg.Slider.Max)
		}
	}
}

func TestLuaConfigParserErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"syntax", "slider.config = {", "compile"},
		{"runtime", "error('boom')", "execute"},
		{"slider not table", "slider = 5", "slider is not a table"},
		{"config not table", "slider.config = 'x'", "slider.config is not a table"},
		{"bad value", "slider.config = { arc_color = 'nope' }", "invalid arc_color"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestLuaParser(t)
			_, err := p.Parse([]byte(tt.content))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestLuaConfigParserResetsBetweenParses(t *testing.T) {
	p := newTestLuaParser(t)
	if _, err := p.Parse([]byte("slider.config = { max = 50 }")); err != nil {
		t.Fatalf("first Parse failed: %v", err)
	}
	cfg, err := p.Parse([]byte("slider.config.min = 5"))
	if err != nil {
		t.Fatalf("second Parse failed: %v", err)
	}
	if cfg.Slider.Max != 100 {
		t.Errorf("max = %v, previous chunk leaked into this one", cfg.Slider.Max)
	}
	if cfg.Slider.Min != 5 {
		t.Errorf("min = %v, want 5", cfg.Slider.Min)
	}
}

func TestLuaConfigParserPrintOutput(t *testing.T) {
	var out bytes.Buffer
	p, err := NewLuaConfigParserWithOutput(&out)
	if err != nil {
		t.Fatalf("NewLuaConfigParserWithOutput failed: %v", err)
	}
	defer p.Close()

	if _, err := p.Parse([]byte(`print("loading")`)); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !strings.Contains(out.String(), "loading") {
		t.Errorf("print output = %q", out.String())
	}
}

func TestLuaConfigParserClosed(t *testing.T) {
	p, err := NewLuaConfigParser()
	if err != nil {
		t.Fatalf("NewLuaConfigParser failed: %v", err)
	}
	if err := p.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := p.Close(); err != nil {
		t.Errorf("second Close failed: %v", err)
	}
	if _, err := p.Parse([]byte("slider.config = {}")); err == nil {
		t.Error("Parse after Close should fail")
	}
}
