//go:build integration

// Package integration provides end-to-end integration tests for
// go-horseshoe. These tests verify that configuration, the slider facade
// and the headless hosts work together.
//
// Note: the window host is not exercised because ebiten requires a display
// environment that is not available in CI.
package integration

import (
	"bytes"
	"image/png"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/opd-ai/go-horseshoe/internal/config"
	"github.com/opd-ai/go-horseshoe/internal/slider"
	"github.com/opd-ai/go-horseshoe/internal/snapshot"
	"github.com/opd-ai/go-horseshoe/internal/tui"
	"github.com/opd-ai/go-horseshoe/pkg/horseshoe"
)

// getTestConfigsDir returns the path to the config package testdata.
// It calls t.Fatal if runtime.Caller fails.
func getTestConfigsDir(t *testing.T) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("runtime.Caller failed to get current file path")
	}
	return filepath.Join(filepath.Dir(file), "..", "..", "internal", "config", "testdata")
}

// TestFormatsAgree loads the same dial in every format and checks the
// sliders behave identically.
func TestFormatsAgree(t *testing.T) {
	files := []string{"slider.conf", "slider.lua", "slider.yaml"}

	var frames []slider.Frame
	for _, name := range files {
		t.Run(name, func(t *testing.T) {
			s, err := horseshoe.New(filepath.Join(getTestConfigsDir(t), name), &horseshoe.Options{
				Headless: true,
				Metrics:  horseshoe.NewMetrics(),
			})
			if err != nil {
				t.Fatalf("New failed: %v", err)
			}
			if got := s.Reading(); got != 20 {
				t.Errorf("Reading() = %v, want 20", got)
			}
			frames = append(frames, s.Frame())
		})
	}
	if len(frames) != len(files) {
		t.Fatal("not every format loaded")
	}
	for i := 1; i < len(frames); i++ {
		if frames[i].Thumb.Center != frames[0].Thumb.Center || frames[i].Width != frames[0].Width {
			t.Errorf("%s frame differs from %s: %+v vs %+v",
				files[i], files[0], frames[i].Thumb.Center, frames[0].Thumb.Center)
		}
	}
}

// TestDragToSnapshot drags the thumb through the facade and checks the
// committed frame renders differently.
func TestDragToSnapshot(t *testing.T) {
	path := filepath.Join(getTestConfigsDir(t), "slider.yaml")
	s, err := horseshoe.New(path, &horseshoe.Options{Headless: true, Metrics: horseshoe.NewMetrics()})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	var committed []float64
	s.SetListener(slider.ListenerFuncs{Commit: func(r float64) { committed = append(committed, r) }})

	cfg := s.Config()
	style := snapshot.Style{
		Background: cfg.Style.BackgroundColor,
		Track:      cfg.Style.ArcColor,
		Thumb:      cfg.Style.ThumbColor,
		Label:      cfg.Style.ThumbTextColor,
		TextSize:   cfg.Style.ThumbTextSize,
	}
	before, err := snapshot.Render(s.Frame(), style)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	// Drag to 3 o'clock: sweep 360, so 10 + round(240 * 20/300) = 26.
	f := s.Frame()
	c := f.Thumb.Center
	s.HandlePointer(slider.Down(c.X, c.Y))
	s.HandlePointer(slider.Move(f.Width-10, f.Height/2))
	s.HandlePointer(slider.Up(f.Width-10, f.Height/2))
	if len(committed) != 1 || committed[0] != 26 {
		t.Fatalf("commits = %v, want [26]", committed)
	}

	var buf bytes.Buffer
	if err := snapshot.Encode(&buf, s.Frame(), style); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	after, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if after.Bounds() != before.Bounds() {
		t.Fatalf("bounds changed: %v vs %v", after.Bounds(), before.Bounds())
	}
	changed := 0
	b := after.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		for x := b.Min.X; x < b.Max.X; x += 2 {
			r1, g1, b1, _ := before.At(x, y).RGBA()
			r2, g2, b2, _ := after.At(x, y).RGBA()
			if r1 != r2 || g1 != g2 || b1 != b2 {
				changed++
			}
		}
	}
	if changed == 0 {
		t.Error("snapshot did not change after the drag")
	}
}

// TestTerminalDrivesFacade runs the terminal model on a headless slider.
func TestTerminalDrivesFacade(t *testing.T) {
	cfg := config.DefaultConfig()
	s, err := horseshoe.NewFromConfig(&cfg, &horseshoe.Options{Headless: true, Metrics: horseshoe.NewMetrics()})
	if err != nil {
		t.Fatalf("NewFromConfig failed: %v", err)
	}

	var m tea.Model = tui.New(s, tui.Options{Title: "integration", Step: 5})
	m, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})

	if got := s.Reading(); got != 10 {
		t.Errorf("Reading() = %v, want 10", got)
	}
	if v := m.View(); !strings.Contains(v, "INTEGRATION") || !strings.Contains(v, "10") {
		t.Errorf("View() does not show the title and reading:\n%s", v)
	}
}

// TestMigrationRoundTrip converts the legacy dial to every format and loads
// the result back.
func TestMigrationRoundTrip(t *testing.T) {
	path := filepath.Join(getTestConfigsDir(t), "slider.conf")
	for _, format := range []config.Format{config.FormatLua, config.FormatYAML, config.FormatLegacy} {
		t.Run(format.String(), func(t *testing.T) {
			out, err := config.MigrateFile(path, format)
			if err != nil {
				t.Fatalf("MigrateFile failed: %v", err)
			}
			s, err := horseshoe.NewFromReader(bytes.NewReader(out), format.String(), &horseshoe.Options{
				Headless: true,
				Metrics:  horseshoe.NewMetrics(),
			})
			if err != nil {
				t.Fatalf("reload of %s output failed: %v\n%s", format, err, out)
			}
			cfg := s.Config()
			if cfg.Slider.Min != 10 || cfg.Slider.Max != 30 || s.Reading() != 20 {
				t.Errorf("round trip = min %v max %v reading %v", cfg.Slider.Min, cfg.Slider.Max, s.Reading())
			}
		})
	}
}
