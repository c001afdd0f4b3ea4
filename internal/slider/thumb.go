package slider

import "image"

// unset marks a screen coordinate that has not been computed yet.
const unset = -1

// Thumb tracks the live and the last recorded state of the draggable marker.
// The previous fields change only through Record or an external reading
// assignment, so a renderer can always draw the path from the recorded
// position to the live one.
type Thumb struct {
	// Position is the thumb centre computed on the last render.
	Position image.Point
	// PrevPosition is Position at the last Record.
	PrevPosition image.Point
	// Angle is the live quadrant angle in radians.
	Angle float64
	// PrevAngle is Angle at the last Record.
	PrevAngle float64
	// Reading is the live mapped value.
	Reading float64
	// PrevReading is Reading at the last Record.
	PrevReading float64
	// Selected is true while a drag gesture holds the thumb.
	Selected bool
	// Enabled gates selection on pointer down.
	Enabled bool
}

// NewThumb returns a thumb in its reset state.
func NewThumb() Thumb {
	var t Thumb
	t.Reset()
	return t
}

// Reset restores the sentinel state.
func (t *Thumb) Reset() {
	*t = Thumb{
		Position:     image.Pt(unset, unset),
		PrevPosition: image.Pt(unset, unset),
		Enabled:      true,
	}
}

// Record copies the live position, angle and reading into the previous
// fields.
func (t *Thumb) Record() {
	t.PrevAngle = t.Angle
	t.PrevPosition = t.Position
	t.PrevReading = t.Reading
}

// HasPosition reports whether the thumb has been rendered at least once.
func (t Thumb) HasPosition() bool {
	return t.Position.X != unset && t.Position.Y != unset
}

func (t Thumb) hasPrevPosition() bool {
	return t.PrevPosition.X != unset && t.PrevPosition.Y != unset
}

// Moved reports whether the live angle differs from the recorded one.
func (t Thumb) Moved() bool {
	return t.Angle != t.PrevAngle
}
