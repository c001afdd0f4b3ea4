package config

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
)

func newTestParser(t *testing.T) *Parser {
	t.Helper()
	p, err := NewParser()
	if err != nil {
		t.Fatalf("NewParser failed: %v", err)
	}
	t.Cleanup(func() { p.Close() })
	return p
}

// thermostat is the configuration every file under testdata describes.
func thermostat() Config {
	cfg := DefaultConfig()
	cfg.Slider.Min = 10
	cfg.Slider.Max = 30
	cfg.Slider.Reading = 20
	cfg.Slider.ThumbRadius = 40
	cfg.Style.ArcColor = namedColors["lightgray"]
	cfg.Style.ThumbColor = DefaultThumbColor
	cfg.Style.ThumbTextColor = namedColors["white"]
	cfg.Window.Width = 360
	cfg.Window.Height = 360
	cfg.Window.Title = "Thermostat"
	cfg.Logging.Level = LogLevelDebug
	return cfg
}

func TestParserParseFileFormats(t *testing.T) {
	want := thermostat()
	for _, name := range []string{"slider.lua", "slider.yaml", "slider.conf"} {
		t.Run(name, func(t *testing.T) {
			p := newTestParser(t)
			cfg, err := p.ParseFile(filepath.Join("testdata", name))
			if err != nil {
				t.Fatalf("ParseFile failed: %v", err)
			}
			if *cfg != want {
				t.Errorf("config mismatch:\n got %+v\nwant %+v", *cfg, want)
			}
		})
	}
}

func TestParserParseFileMissing(t *testing.T) {
	p := newTestParser(t)
	_, err := p.ParseFile(filepath.Join(t.TempDir(), "missing.lua"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected a not-exist error, got %v", err)
	}
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		content string
		want    Format
	}{
		{"lua extension", "dial.LUA", "min 1", FormatLua},
		{"yaml extension", "dial.yml", "min 1", FormatYAML},
		{"lua content", "", "-- c\n  slider.config = {}", FormatLua},
		{"yaml content", "", "# c\nslider:\n  min: 1\n", FormatYAML},
		{"yaml section with comment", "dial.conf", "window: # host\n  width: 300\n", FormatYAML},
		{"legacy content", "", "min 1\nmax 2\n", FormatLegacy},
		{"legacy key named like a section", "", "title slider: big\n", FormatLegacy},
		{"empty", "", "", FormatLegacy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectFormat(tt.path, []byte(tt.content)); got != tt.want {
				t.Errorf("DetectFormat(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestParserParse(t *testing.T) {
	p := newTestParser(t)

	cfg, err := p.Parse([]byte("slider.config = { max = 10 }"))
	if err != nil || cfg.Slider.Max != 10 {
		t.Errorf("lua: cfg=%+v err=%v", cfg, err)
	}
	cfg, err = p.Parse([]byte("slider:\n  max: 11\n"))
	if err != nil || cfg.Slider.Max != 11 {
		t.Errorf("yaml: cfg=%+v err=%v", cfg, err)
	}
	cfg, err = p.Parse([]byte("max 12\n"))
	if err != nil || cfg.Slider.Max != 12 {
		t.Errorf("legacy: cfg=%+v err=%v", cfg, err)
	}
}

func TestParserParseFromFS(t *testing.T) {
	fsys := fstest.MapFS{
		"configs/dial.lua":  {Data: []byte("slider.config = { min = 5 }")},
		"configs/dial.yaml": {Data: []byte("slider:\n  min: 6\n")},
	}
	p := newTestParser(t)

	cfg, err := p.ParseFromFS(fsys, "configs/dial.lua")
	if err != nil || cfg.Slider.Min != 5 {
		t.Errorf("lua: cfg=%+v err=%v", cfg, err)
	}
	cfg, err = p.ParseFromFS(fsys, "configs/dial.yaml")
	if err != nil || cfg.Slider.Min != 6 {
		t.Errorf("yaml: cfg=%+v err=%v", cfg, err)
	}
	if _, err := p.ParseFromFS(fsys, "configs/none.lua"); err == nil {
		t.Error("missing file should fail")
	}
}

func TestParserParseReader(t *testing.T) {
	p := newTestParser(t)

	cfg, err := p.ParseReader(strings.NewReader("padding 7"), "legacy")
	if err != nil || cfg.Slider.Padding != 7 {
		t.Errorf("legacy: cfg=%+v err=%v", cfg, err)
	}
	// The format argument wins over the content.
	if _, err := p.ParseReader(strings.NewReader("padding 7"), "lua"); err == nil {
		t.Error("legacy text parsed as Lua should fail")
	}
	if _, err := p.ParseReader(strings.NewReader(""), "ini"); err == nil {
		t.Error("unknown format should fail")
	}
}

func TestParserExpandsEnv(t *testing.T) {
	t.Setenv("HORSESHOE_ROOM", "Kitchen")
	p := newTestParser(t)

	cfg, err := p.Parse([]byte("title ${HORSESHOE_ROOM} dial\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Window.Title != "Kitchen dial" {
		t.Errorf("title = %q, want %q", cfg.Window.Title, "Kitchen dial")
	}
}
