package render

import (
	"bytes"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// defaultFontSize is the default label size in pixels.
const defaultFontSize = 18.0

// TextRenderer draws the reading label with the embedded Go font.
type TextRenderer struct {
	fontSource *text.GoTextFaceSource
	fontSize   float64
	mu         sync.RWMutex
}

// NewTextRenderer creates a new TextRenderer with the Go regular font.
func NewTextRenderer() *TextRenderer {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic("failed to load embedded font: " + err.Error())
	}

	return &TextRenderer{
		fontSource: fontSource,
		fontSize:   defaultFontSize,
	}
}

// SetFontSize sets the font size for text rendering.
func (tr *TextRenderer) SetFontSize(size float64) {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	tr.fontSize = size
}

// FontSize returns the current font size.
func (tr *TextRenderer) FontSize() float64 {
	tr.mu.RLock()
	defer tr.mu.RUnlock()
	return tr.fontSize
}

func (tr *TextRenderer) face() *text.GoTextFace {
	return &text.GoTextFace{
		Source: tr.fontSource,
		Size:   tr.fontSize,
	}
}

// DrawText renders textStr with its baseline origin at (x, y).
func (tr *TextRenderer) DrawText(screen *ebiten.Image, textStr string, x, y float64, clr color.RGBA) {
	tr.mu.RLock()
	defer tr.mu.RUnlock()

	face := tr.face()
	op := &text.DrawOptions{}
	// text.Draw positions the top of the line box.
	op.GeoM.Translate(x, y-face.Metrics().HAscent)
	op.ColorScale.ScaleWithColor(color.NRGBA(clr))

	text.Draw(screen, textStr, face, op)
}

// MeasureText returns the width and height of the given text string.
func (tr *TextRenderer) MeasureText(textStr string) (width, height float64) {
	tr.mu.RLock()
	defer tr.mu.RUnlock()
	return text.Measure(textStr, tr.face(), tr.fontSize*1.2)
}
