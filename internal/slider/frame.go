package slider

import (
	"image"
	"math"
	"strconv"
)

// ArcShape is a stroked arc in sweep degrees.
type ArcShape struct {
	Bounds      Rect
	Start       float64
	Sweep       float64
	StrokeWidth float64
}

// ThumbShape is everything needed to draw one thumb.
type ThumbShape struct {
	Center  image.Point
	Angle   float64
	Reading float64
	// Outline is the teardrop path.
	Outline Path
	// Label is the reading rounded to an integer.
	Label   string
	LabelAt PointF
	// ImageBounds is the square the thumb image is drawn in.
	ImageBounds Rect
	// ShadowRadius is the blur radius of the outline shadow.
	ShadowRadius float64
}

// Frame is an immutable snapshot of one render of the control.
type Frame struct {
	Width, Height int
	Track         ArcShape
	ThumbVisible  bool
	UseImage      bool
	Selected      bool
	Thumb         ThumbShape
	// Ghost is the recorded thumb, present while a drag has moved the thumb.
	Ghost *ThumbShape
	// Transition connects Ghost to Thumb. It is nil when the angle change is
	// too small to draw.
	Transition *ArcShape
}

// FormatReading renders a reading the way the thumb label shows it.
func FormatReading(reading float64) string {
	return strconv.FormatInt(int64(math.Floor(reading+0.5)), 10)
}

func buildFrame(cfg Config, l Layout, t Thumb, visible bool) Frame {
	f := Frame{
		Width:  l.Width,
		Height: l.Height,
		Track: ArcShape{
			Bounds:      l.ArcRect,
			Start:       cfg.Arc.Start,
			Sweep:       cfg.Arc.Sweep,
			StrokeWidth: float64(cfg.StrokeWidth),
		},
		ThumbVisible: visible,
		UseImage:     cfg.ThumbImage,
		Selected:     t.Selected,
	}
	arcCenter := PointF{X: l.CenterX, Y: l.CenterY}
	f.Thumb = thumbShape(cfg, t.Position, t.Angle, t.Reading, arcCenter)

	if !t.Selected || !t.Moved() {
		return f
	}
	ghost := thumbShape(cfg, t.PrevPosition, t.PrevAngle, t.PrevReading, arcCenter)
	f.Ghost = &ghost
	if start, sweep, ok := ConnectingArc(t.PrevAngle, t.Angle); ok {
		f.Transition = &ArcShape{
			Bounds:      TransitionRect(l.ArcRect, cfg.StrokeWidth, cfg.ThumbRadius),
			Start:       start,
			Sweep:       sweep,
			StrokeWidth: float64(cfg.TransitionStrokeWidth),
		}
	}
	return f
}

func thumbShape(cfg Config, center image.Point, angle, reading float64, arcCenter PointF) ThumbShape {
	half := cfg.ThumbRadius / 2
	return ThumbShape{
		Center:       center,
		Angle:        angle,
		Reading:      reading,
		Outline:      Teardrop(center, cfg.ThumbRadius, angle, arcCenter),
		Label:        FormatReading(reading),
		LabelAt:      LabelOrigin(center, cfg.ThumbRadius),
		ImageBounds:  Rect{Left: float64(center.X - half), Top: float64(center.Y - half), Right: float64(center.X + half), Bottom: float64(center.Y + half)},
		ShadowRadius: float64(cfg.ThumbRadius) / 4,
	}
}
