package render

import (
	"fmt"
	"image"
	// Register image decoders for common formats
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

// LoadThumbImage loads the image drawn in place of the teardrop.
// Supported formats: PNG, JPEG, GIF.
func LoadThumbImage(path string) (*ebiten.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	return DecodeThumbImage(file)
}

// DecodeThumbImage decodes a thumb image from r.
func DecodeThumbImage(r io.Reader) (*ebiten.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("image is empty")
	}
	return ebiten.NewImageFromImage(img), nil
}

// drawImageInto draws img scaled to fill the rectangle (x, y, w, h).
func drawImageInto(dst, img *ebiten.Image, x, y, w, h float64) {
	if img == nil || w <= 0 || h <= 0 {
		return
	}
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	op.GeoM.Translate(x, y)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(img, op)
}
