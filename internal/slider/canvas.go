package slider

import "image/color"

// Role tells a Canvas which paint to use for a primitive.
type Role int

const (
	// RoleTrack is the horseshoe arc.
	RoleTrack Role = iota
	// RoleThumb is the teardrop outline.
	RoleThumb
	// RoleTransition is the arc between the recorded and the live thumb.
	RoleTransition
	// RoleLabel is the reading text.
	RoleLabel
)

// String returns the role name.
func (r Role) String() string {
	switch r {
	case RoleTrack:
		return "track"
	case RoleThumb:
		return "thumb"
	case RoleTransition:
		return "transition"
	case RoleLabel:
		return "label"
	default:
		return "unknown"
	}
}

// ShadowColor is the colour of the thumb outline shadow.
var ShadowColor = color.NRGBA{R: 0x45, G: 0x45, B: 0x45, A: 0x80}

// Canvas is a drawing surface. Implementations own their paints and pick
// colours and stroke styles by Role.
type Canvas interface {
	// StrokeArc strokes the arc of the ellipse inscribed in bounds, from
	// startDeg clockwise through sweepDeg.
	StrokeArc(bounds Rect, startDeg, sweepDeg, width float64, role Role)
	// FillPath fills an outline. RoleThumb fills carry the thumb shadow.
	FillPath(p Path, shadowRadius float64, role Role)
	// DrawText draws s with its baseline origin at (x, y).
	DrawText(s string, x, y float64, role Role)
	// DrawImage draws the thumb image scaled into bounds.
	DrawImage(bounds Rect)
}

// Paint draws a frame in back to front order.
func Paint(c Canvas, f Frame) {
	c.StrokeArc(f.Track.Bounds, f.Track.Start, f.Track.Sweep, f.Track.StrokeWidth, RoleTrack)
	if !f.ThumbVisible {
		return
	}
	if f.UseImage {
		c.DrawImage(f.Thumb.ImageBounds)
		return
	}
	if f.Ghost != nil {
		paintThumb(c, *f.Ghost)
		if f.Transition != nil {
			t := f.Transition
			c.StrokeArc(t.Bounds, t.Start, t.Sweep, t.StrokeWidth, RoleTransition)
		}
	}
	paintThumb(c, f.Thumb)
}

func paintThumb(c Canvas, t ThumbShape) {
	c.FillPath(t.Outline, t.ShadowRadius, RoleThumb)
	c.DrawText(t.Label, t.LabelAt.X, t.LabelAt.Y, RoleLabel)
}
