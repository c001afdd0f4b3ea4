//go:build !noebiten

package render

import (
	"image/color"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestNewBackgroundRenderer(t *testing.T) {
	solid := NewBackgroundRenderer(color.RGBA{R: 32, G: 32, B: 32, A: 255})
	if solid.Mode() != BackgroundModeSolid {
		t.Errorf("opaque color mode = %v, want solid", solid.Mode())
	}
	if sb, ok := solid.(*SolidBackground); !ok || sb.Color().R != 32 {
		t.Errorf("unexpected renderer %#v", solid)
	}

	half := NewBackgroundRenderer(color.RGBA{A: 128})
	if half.Mode() != BackgroundModeSolid {
		t.Errorf("translucent color mode = %v, want solid", half.Mode())
	}

	none := NewBackgroundRenderer(color.RGBA{})
	if none.Mode() != BackgroundModeNone {
		t.Errorf("transparent color mode = %v, want none", none.Mode())
	}

	screen := ebiten.NewImage(10, 10)
	solid.Draw(screen)
	none.Draw(screen)
}
