package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/opd-ai/go-horseshoe/internal/slider"
)

// InputState is the pointer as seen in one tick.
type InputState struct {
	Pressed bool
	X, Y    int
}

// InputSource samples the pointer once per tick.
type InputSource interface {
	Poll() InputState
}

// ebitenInput follows the left mouse button, or the first finger while one
// is down.
type ebitenInput struct {
	touchID  ebiten.TouchID
	touching bool
	ids      []ebiten.TouchID
}

// NewEbitenInput returns the InputSource backed by Ebiten's mouse and touch
// state. It must be polled from Game.Update.
func NewEbitenInput() InputSource {
	return &ebitenInput{}
}

func (in *ebitenInput) Poll() InputState {
	if !in.touching {
		in.ids = inpututil.AppendJustPressedTouchIDs(in.ids[:0])
		if len(in.ids) > 0 {
			in.touchID = in.ids[0]
			in.touching = true
		}
	}
	if in.touching {
		if inpututil.IsTouchJustReleased(in.touchID) {
			in.touching = false
			x, y := inpututil.TouchPositionInPreviousTick(in.touchID)
			return InputState{X: x, Y: y}
		}
		x, y := ebiten.TouchPosition(in.touchID)
		return InputState{Pressed: true, X: x, Y: y}
	}

	x, y := ebiten.CursorPosition()
	return InputState{Pressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft), X: x, Y: y}
}

// PointerTracker turns per-tick input samples into pointer events. A move is
// reported only when a pressed pointer changes position.
type PointerTracker struct {
	source  InputSource
	pressed bool
	x, y    int
}

// NewPointerTracker creates a tracker reading from source.
func NewPointerTracker(source InputSource) *PointerTracker {
	return &PointerTracker{source: source}
}

// Poll samples the source and appends the resulting event, if any, to dst.
func (pt *PointerTracker) Poll(dst []slider.PointerEvent) []slider.PointerEvent {
	s := pt.source.Poll()
	switch {
	case s.Pressed && !pt.pressed:
		dst = append(dst, slider.Down(s.X, s.Y))
	case s.Pressed && (s.X != pt.x || s.Y != pt.y):
		dst = append(dst, slider.Move(s.X, s.Y))
	case !s.Pressed && pt.pressed:
		dst = append(dst, slider.Up(s.X, s.Y))
	}
	pt.pressed = s.Pressed
	pt.x, pt.y = s.X, s.Y
	return dst
}

// Pressed reports whether the pointer was down at the last poll.
func (pt *PointerTracker) Pressed() bool {
	return pt.pressed
}
