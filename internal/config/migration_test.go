package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// customConfig differs from the defaults in every group.
func customConfig() Config {
	cfg := DefaultConfig()
	cfg.Slider.Min = -10
	cfg.Slider.Max = 42.5
	cfg.Slider.Reading = 0
	cfg.Slider.ArcSweep = 240
	cfg.Slider.ThumbRadius = 36
	cfg.Slider.ThumbImage = `C:\dials\it's.png`
	cfg.Slider.Enabled = false
	cfg.Style.ThumbColor = namedColors["steelblue"]
	cfg.Style.BackgroundColor.A = 0x40
	cfg.Style.ThumbTextSize = 21
	cfg.Window.Width = 320
	cfg.Window.Title = "Water heater"
	cfg.Window.Resizable = false
	cfg.Logging.Level = LogLevelWarn
	return cfg
}

func TestMigrateRoundTrip(t *testing.T) {
	want := customConfig()

	for _, format := range []Format{FormatLua, FormatYAML, FormatLegacy} {
		t.Run(format.String(), func(t *testing.T) {
			out, err := NewMigrator().Migrate(&want, format)
			if err != nil {
				t.Fatalf("Migrate failed: %v", err)
			}

			p := newTestParser(t)
			got, err := p.decode(out, format)
			if err != nil {
				t.Fatalf("parsing migrated output failed: %v\n%s", err, out)
			}
			if DetectFormat("", out) != format {
				t.Errorf("output is not detected as %v:\n%s", format, out)
			}
			if *got != want {
				t.Errorf("round trip mismatch:\n got %+v\nwant %+v\n%s", *got, want, out)
			}
		})
	}
}

func TestMigrateToLua(t *testing.T) {
	cfg := customConfig()
	out, err := NewMigrator().MigrateToLua(&cfg)
	if err != nil {
		t.Fatalf("MigrateToLua failed: %v", err)
	}
	text := string(out)

	for _, want := range []string{
		"slider.config = {\n",
		"    -- Range\n",
		"    min = -10,\n",
		"    reading = 0,\n",
		"    thumb_image = 'C:\\\\dials\\\\it\\'s.png',\n",
		"    thumb_color = '#4682b4',\n",
		"    log_level = 'warn',\n",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q:\n%s", want, text)
		}
	}
	// Unchanged values are left out.
	if strings.Contains(text, "stroke_width") {
		t.Errorf("default stroke_width was written:\n%s", text)
	}
}

func TestMigratorOptions(t *testing.T) {
	cfg := DefaultConfig()

	out, err := NewMigrator(WithComments(false)).MigrateToLegacy(&cfg)
	if err != nil {
		t.Fatalf("MigrateToLegacy failed: %v", err)
	}
	if len(out) != 0 {
		t.Errorf("defaults without comments should be empty, got:\n%s", out)
	}

	out, err = NewMigrator(WithDefaults(true), WithComments(false)).MigrateToLegacy(&cfg)
	if err != nil {
		t.Fatalf("MigrateToLegacy failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	// Every key but the unset reading and the empty thumb image.
	if len(lines) != len(Keys)-2 {
		t.Errorf("got %d lines, want %d:\n%s", len(lines), len(Keys)-2, out)
	}
	if strings.Contains(string(out), "#") {
		t.Errorf("comments were written:\n%s", out)
	}
}

func TestMigrateErrors(t *testing.T) {
	m := NewMigrator()
	if _, err := m.MigrateToLua(nil); err == nil {
		t.Error("MigrateToLua(nil) should fail")
	}
	if _, err := m.MigrateToLegacy(nil); err == nil {
		t.Error("MigrateToLegacy(nil) should fail")
	}
	cfg := DefaultConfig()
	if _, err := m.Migrate(&cfg, Format(9)); err == nil {
		t.Error("unknown format should fail")
	}
}

func TestMigrateFile(t *testing.T) {
	out, err := MigrateFile(filepath.Join("testdata", "slider.conf"), FormatYAML)
	if err != nil {
		t.Fatalf("MigrateFile failed: %v", err)
	}
	cfg, err := NewYAMLParser().Parse(out)
	if err != nil {
		t.Fatalf("parsing migrated YAML failed: %v", err)
	}
	if *cfg != thermostat() {
		t.Errorf("migrated config = %+v", *cfg)
	}

	if _, err := MigrateFile(filepath.Join(t.TempDir(), "none.conf"), FormatLua); err == nil {
		t.Error("missing file should fail")
	}
}

func TestMigrateKeepsEnvReferences(t *testing.T) {
	t.Setenv("HS_ROOM", "Attic")
	dir := t.TempDir()
	path := filepath.Join(dir, "dial.conf")
	if err := os.WriteFile(path, []byte("title ${HS_ROOM}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := MigrateFile(path, FormatLua)
	if err != nil {
		t.Fatalf("MigrateFile failed: %v", err)
	}
	if !strings.Contains(string(out), "title = '${HS_ROOM}'") {
		t.Errorf("environment reference was expanded:\n%s", out)
	}
}

func TestMigrateLegacyContent(t *testing.T) {
	out, err := MigrateLegacyContent([]byte("max 50\ncurr_thumb_reading 25\n"), WithComments(false))
	if err != nil {
		t.Fatalf("MigrateLegacyContent failed: %v", err)
	}
	want := "slider.config = {\n    max = 50,\n    reading = 25,\n}\n"
	if string(out) != want {
		t.Errorf("output = %q, want %q", out, want)
	}

	if _, err := MigrateLegacyContent([]byte("max fifty")); err == nil {
		t.Error("invalid legacy content should fail")
	}
}
