package slider

import "fmt"

// Phase is the stage of a pointer gesture.
type Phase int

const (
	// PointerDown starts a gesture.
	PointerDown Phase = iota
	// PointerMove continues a gesture.
	PointerMove
	// PointerUp ends a gesture.
	PointerUp
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	default:
		return "unknown"
	}
}

// PointerEvent is a platform-neutral pointer sample in control coordinates.
type PointerEvent struct {
	Phase Phase
	X, Y  int
}

// String formats the event for logs.
func (e PointerEvent) String() string {
	return fmt.Sprintf("%s(%d,%d)", e.Phase, e.X, e.Y)
}

// Down builds a PointerDown event.
func Down(x, y int) PointerEvent { return PointerEvent{Phase: PointerDown, X: x, Y: y} }

// Move builds a PointerMove event.
func Move(x, y int) PointerEvent { return PointerEvent{Phase: PointerMove, X: x, Y: y} }

// Up builds a PointerUp event.
func Up(x, y int) PointerEvent { return PointerEvent{Phase: PointerUp, X: x, Y: y} }

// Listener receives slider notifications. All calls happen synchronously on
// the goroutine that fed the pointer event.
type Listener interface {
	// OnMove reports the live reading during a drag.
	OnMove(reading float64)
	// OnCommit reports the final reading when the pointer is released.
	OnCommit(reading float64)
	// OnSelectionChanged reports the thumb being grabbed or released.
	OnSelectionChanged(selected bool)
}

// ListenerFuncs adapts plain functions to Listener. Nil fields are skipped.
type ListenerFuncs struct {
	Move             func(reading float64)
	Commit           func(reading float64)
	SelectionChanged func(selected bool)
}

// OnMove implements Listener.
func (f ListenerFuncs) OnMove(reading float64) {
	if f.Move != nil {
		f.Move(reading)
	}
}

// OnCommit implements Listener.
func (f ListenerFuncs) OnCommit(reading float64) {
	if f.Commit != nil {
		f.Commit(reading)
	}
}

// OnSelectionChanged implements Listener.
func (f ListenerFuncs) OnSelectionChanged(selected bool) {
	if f.SelectionChanged != nil {
		f.SelectionChanged(selected)
	}
}
