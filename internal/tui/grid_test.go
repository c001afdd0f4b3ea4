package tui

import (
	"image"
	"math"
	"strings"
	"testing"

	"github.com/opd-ai/go-horseshoe/internal/slider"
)

func TestWithinSweep(t *testing.T) {
	tests := []struct {
		deg, start, sweep float64
		want              bool
	}{
		{270, 120, 300, true},
		{120, 120, 300, true},
		{60, 120, 300, true},
		{90, 120, 300, false},
		{-90, 120, 300, true},
		{100, 120, -40, true},
		{130, 120, -40, false},
	}
	for _, tt := range tests {
		if got := withinSweep(tt.deg, tt.start, tt.sweep); got != tt.want {
			t.Errorf("withinSweep(%v, %v, %v) = %v, want %v", tt.deg, tt.start, tt.sweep, got, tt.want)
		}
	}
}

func TestGridCellMapping(t *testing.T) {
	g := NewGridCanvas(20, 10, 6, 12)
	if w, h := g.PixelSize(); w != 120 || h != 120 {
		t.Errorf("PixelSize() = %dx%d, want 120x120", w, h)
	}
	if x, y := g.CellCenter(2, 3); x != 15 || y != 42 {
		t.Errorf("CellCenter(2, 3) = (%d, %d), want (15, 42)", x, y)
	}
	if c, r := g.CellAt(15, 42); c != 2 || r != 3 {
		t.Errorf("CellAt(15, 42) = (%d, %d), want (2, 3)", c, r)
	}
	if got := g.Glyph(-1, 0); got != glyphEmpty {
		t.Errorf("Glyph outside grid = %q", got)
	}
}

func TestGridStrokeArc(t *testing.T) {
	g := NewGridCanvas(20, 20, 10, 10)
	bounds := slider.Rect{Left: 0, Top: 0, Right: 200, Bottom: 200}
	g.StrokeArc(bounds, 120, 300, 10, slider.RoleTrack)

	if got := g.Glyph(10, 0); got != glyphTrack {
		t.Errorf("top cell = %q, want track", got)
	}
	if got := g.Glyph(10, 10); got != glyphEmpty {
		t.Errorf("centre cell = %q, want empty", got)
	}
	if got := g.Glyph(10, 19); got != glyphEmpty {
		t.Errorf("bottom cell = %q, want the horseshoe gap", got)
	}

	g.Clear()
	g.StrokeArc(bounds, 250, 40, 5, slider.RoleTransition)
	if got := g.Glyph(10, 0); got != glyphTransition {
		t.Errorf("transition cell = %q, want %q", got, glyphTransition)
	}
	if got := g.Glyph(0, 10); got != glyphEmpty {
		t.Errorf("cell outside the transition = %q", got)
	}
}

func TestGridFillPathAndText(t *testing.T) {
	g := NewGridCanvas(20, 20, 10, 10)
	outline := slider.Teardrop(image.Pt(100, 100), 40, math.Pi/2, slider.PointF{X: 100, Y: 200})
	g.FillPath(outline, 10, slider.RoleThumb)

	if got := g.Glyph(10, 10); got != glyphThumb {
		t.Errorf("thumb centre cell = %q, want %q", got, glyphThumb)
	}
	if got := g.Glyph(0, 0); got != glyphEmpty {
		t.Errorf("corner cell = %q, want empty", got)
	}

	g.DrawText("42", 12, 15, slider.RoleLabel)
	if g.Glyph(1, 1) != '4' || g.Glyph(2, 1) != '2' {
		t.Errorf("label cells = %q%q, want 42", g.Glyph(1, 1), g.Glyph(2, 1))
	}

	g.DrawImage(slider.Rect{Left: 20, Top: 20, Right: 39, Bottom: 39})
	for _, c := range [][2]int{{2, 2}, {3, 3}} {
		if got := g.Glyph(c[0], c[1]); got != glyphImage {
			t.Errorf("image cell %v = %q", c, got)
		}
	}
}

func TestGridRender(t *testing.T) {
	g := NewGridCanvas(3, 2, 10, 10)
	g.DrawText("ab", 0, 0, slider.RoleLabel)

	if got := g.String(); got != "ab \n   \n" {
		t.Errorf("String() = %q", got)
	}
	out := g.Render(DefaultStyles())
	if !strings.Contains(out, "a") || strings.Count(out, "\n") != 1 {
		t.Errorf("Render() = %q", out)
	}
}
