package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// BackgroundMode tells whether the window is cleared to a colour or left
// transparent.
type BackgroundMode int

const (
	BackgroundModeSolid BackgroundMode = iota
	BackgroundModeNone
)

// BackgroundRenderer clears the screen before the slider is painted.
type BackgroundRenderer interface {
	Draw(screen *ebiten.Image)
	Mode() BackgroundMode
}

// SolidBackground fills the window with one colour.
type SolidBackground struct {
	color color.RGBA
}

// NewSolidBackground returns a fill with c.
func NewSolidBackground(c color.RGBA) *SolidBackground {
	return &SolidBackground{color: c}
}

// Draw fills the screen. Configured colours carry straight alpha.
func (sb *SolidBackground) Draw(screen *ebiten.Image) {
	screen.Fill(color.NRGBA(sb.color))
}

// Mode implements BackgroundRenderer.
func (sb *SolidBackground) Mode() BackgroundMode {
	return BackgroundModeSolid
}

// Color returns the fill colour.
func (sb *SolidBackground) Color() color.RGBA {
	return sb.color
}

// NoneBackground leaves the window transparent where the slider does not
// draw.
type NoneBackground struct{}

// Draw clears the screen.
func (nb NoneBackground) Draw(screen *ebiten.Image) {
	screen.Clear()
}

// Mode implements BackgroundRenderer.
func (nb NoneBackground) Mode() BackgroundMode {
	return BackgroundModeNone
}

// NewBackgroundRenderer picks a renderer for bg. A fully transparent color
// selects BackgroundModeNone.
func NewBackgroundRenderer(bg color.RGBA) BackgroundRenderer {
	if bg.A == 0 {
		return NoneBackground{}
	}
	return NewSolidBackground(bg)
}
