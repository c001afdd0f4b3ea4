//go:build !noebiten

package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// createTestPNG creates a PNG-encoded test image as bytes.
func createTestPNG(width, height int) []byte {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

func TestLoadThumbImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "thumb.png")
	if err := os.WriteFile(path, createTestPNG(16, 12), 0o644); err != nil {
		t.Fatal(err)
	}

	img, err := LoadThumbImage(path)
	if err != nil {
		t.Fatalf("LoadThumbImage failed: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 16 || b.Dy() != 12 {
		t.Errorf("bounds = %v, want 16x12", b)
	}
}

func TestLoadThumbImageErrors(t *testing.T) {
	if _, err := LoadThumbImage(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("missing file should fail")
	}
	if _, err := DecodeThumbImage(bytes.NewReader([]byte("not an image"))); err == nil {
		t.Error("garbage should fail to decode")
	}
}

func TestDrawImageInto(t *testing.T) {
	dst := ebiten.NewImage(100, 100)
	img := ebiten.NewImage(10, 10)

	drawImageInto(dst, img, 10, 10, 50, 50)
	drawImageInto(dst, nil, 10, 10, 50, 50)
	drawImageInto(dst, img, 10, 10, 0, 50)
}
