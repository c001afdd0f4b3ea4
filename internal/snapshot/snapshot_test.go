package snapshot

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/opd-ai/go-horseshoe/internal/slider"
)

func testStyle() Style {
	return Style{
		Track:    color.RGBA{R: 0xd3, G: 0xd3, B: 0xd3, A: 0xff},
		Thumb:    color.RGBA{R: 0x48, G: 0x6a, B: 0xb0, A: 0xff},
		Label:    color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		TextSize: 18,
	}
}

func newFrame(t *testing.T, cfg slider.Config, size int) (*slider.Controller, slider.Frame) {
	t.Helper()
	ctrl, err := slider.New(cfg)
	if err != nil {
		t.Fatalf("slider.New failed: %v", err)
	}
	ctrl.Resize(size, size)
	return ctrl, ctrl.Frame()
}

func alphaAt(img image.Image, x, y int) uint32 {
	_, _, _, a := img.At(x, y).RGBA()
	return a
}

func TestStyleColor(t *testing.T) {
	s := testStyle()
	tests := []struct {
		role slider.Role
		want color.NRGBA
	}{
		{slider.RoleTrack, color.NRGBA(s.Track)},
		{slider.RoleThumb, color.NRGBA(s.Thumb)},
		{slider.RoleTransition, color.NRGBA(s.Label)},
		{slider.RoleLabel, color.NRGBA(s.Label)},
	}
	for _, tt := range tests {
		if got := s.color(tt.role); got != tt.want {
			t.Errorf("color(%v) = %v, want %v", tt.role, got, tt.want)
		}
	}
}

func TestRenderEmptyFrame(t *testing.T) {
	if _, err := Render(slider.Frame{}, testStyle()); err == nil {
		t.Error("Render() with a zero-size frame should fail")
	}
	var buf bytes.Buffer
	if err := Encode(&buf, slider.Frame{}, testStyle()); err == nil {
		t.Error("Encode() with a zero-size frame should fail")
	}
}

func TestEncode(t *testing.T) {
	_, f := newFrame(t, slider.DefaultConfig(), 300)

	var buf bytes.Buffer
	if err := Encode(&buf, f, testStyle()); err != nil {
		t.Fatalf("Encode() failed: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() failed: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 300 || b.Dy() != 300 {
		t.Fatalf("bounds = %v, want 300x300", b)
	}

	top := f.Track.Bounds.PointAt(270)
	if a := alphaAt(img, int(top.X), int(top.Y)); a == 0 {
		t.Errorf("track pixel at %v is transparent", top)
	}
	if a := alphaAt(img, 0, 0); a != 0 {
		t.Errorf("corner pixel alpha = %d, want 0 with no background", a)
	}
	c := f.Thumb.Center
	if a := alphaAt(img, c.X, c.Y); a == 0 {
		t.Errorf("thumb pixel at %v is transparent", c)
	}
}

func TestRenderBackground(t *testing.T) {
	_, f := newFrame(t, slider.DefaultConfig(), 200)
	style := testStyle()
	style.Background = color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff}

	img, err := Render(f, style)
	if err != nil {
		t.Fatalf("Render() failed: %v", err)
	}
	if a := alphaAt(img, 1, 1); a != 0xffff {
		t.Errorf("corner alpha = %d, want opaque background", a)
	}
}

func TestRenderDragged(t *testing.T) {
	ctrl, _ := newFrame(t, slider.DefaultConfig(), 400)
	pos := ctrl.Thumb().Position
	ctrl.HandlePointer(slider.Down(pos.X, pos.Y))
	ctrl.HandlePointer(slider.Move(200, 20))
	f := ctrl.Frame()
	if f.Ghost == nil {
		t.Fatal("expected a ghost thumb after the drag")
	}

	img, err := Render(f, testStyle())
	if err != nil {
		t.Fatalf("Render() failed: %v", err)
	}
	g := f.Ghost.Center
	if a := alphaAt(img, g.X, g.Y); a == 0 {
		t.Errorf("ghost thumb pixel at %v is transparent", g)
	}
}

func TestRenderThumbImage(t *testing.T) {
	cfg := slider.DefaultConfig()
	cfg.ThumbImage = true
	_, f := newFrame(t, cfg, 300)

	thumb := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			thumb.Set(x, y, color.NRGBA{R: 0xff, A: 0xff})
		}
	}
	style := testStyle()
	style.ThumbImage = thumb

	img, err := Render(f, style)
	if err != nil {
		t.Fatalf("Render() failed: %v", err)
	}
	c := f.Thumb.Center
	r, g, _, a := img.At(c.X, c.Y).RGBA()
	if a == 0 || r <= g {
		t.Errorf("thumb image pixel = (%d, %d, a=%d), want red", r, g, a)
	}
}

func TestSave(t *testing.T) {
	_, f := newFrame(t, slider.DefaultConfig(), 160)
	path := filepath.Join(t.TempDir(), "slider.png")

	if err := Save(path, f, testStyle()); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("open snapshot: %v", err)
	}
	defer file.Close()
	cfg, err := png.DecodeConfig(file)
	if err != nil {
		t.Fatalf("png.DecodeConfig() failed: %v", err)
	}
	if cfg.Width != 160 || cfg.Height != 160 {
		t.Errorf("size = %dx%d, want 160x160", cfg.Width, cfg.Height)
	}
}

func TestNewCanvasNilContext(t *testing.T) {
	if _, err := NewCanvas(nil, testStyle()); err == nil {
		t.Error("NewCanvas(nil) should fail")
	}
}
