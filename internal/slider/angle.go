// Package slider implements the horseshoe slider control: angle and reading
// conversion, the drag state machine and the shapes a renderer draws.
//
// Two angle conventions meet here. Quadrant angles are radians measured
// counterclockwise from the positive X axis with Y pointing up; they drive
// the trigonometry. Sweep angles are degrees measured clockwise from the
// 3 o'clock position on a Y-down canvas; they drive arc drawing.
package slider

import "math"

// Default arc geometry in sweep degrees.
const (
	DefaultArcStart = 120.0
	DefaultArcSweep = 300.0
)

// ToDegrees converts radians to degrees.
func ToDegrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// ToRadians converts degrees to radians.
func ToRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// NormalizeToSweepAngle maps a quadrant angle in radians to sweep degrees.
//
// The third quadrant maps onto itself ([90, 180]), the first two quadrants
// map to [180, 360] and the fourth quadrant maps above a full turn so that
// the permitted band forms the contiguous sweep range [Start, Start+Sweep].
func NormalizeToSweepAngle(rad float64) float64 {
	deg := ToDegrees(rad)
	switch {
	case deg < 0 && math.Abs(deg) > 90:
		return math.Abs(deg)
	case deg < 0:
		return 360 + math.Abs(deg)
	default:
		return 360 - deg
	}
}

// Arc describes the drawn part of the horseshoe in sweep degrees.
type Arc struct {
	Start float64
	Sweep float64
}

// DefaultArc returns the 120 degree start, 300 degree sweep arc.
func DefaultArc() Arc {
	return Arc{Start: DefaultArcStart, Sweep: DefaultArcSweep}
}

// LowerLimitDegrees is the quadrant angle of the arc start (-120 for the
// default arc).
func (a Arc) LowerLimitDegrees() float64 {
	return -a.Start
}

// UpperLimitDegrees is the quadrant angle of the arc end (-60 for the
// default arc). Ends before a full turn come out positive.
func (a Arc) UpperLimitDegrees() float64 {
	return -(a.End() - 360)
}

// End is the sweep angle where the arc stops.
func (a Arc) End() float64 {
	return a.Start + a.Sweep
}

// Fits reports whether both arc ends lie where Contains and
// NormalizeToSweepAngle expect them: the start in the third quadrant and the
// end no earlier than 9 o'clock and no later than 6 o'clock.
func (a Arc) Fits() bool {
	return a.Start > 90 && a.Start <= 180 && a.End() >= 180 && a.End() <= 450
}

// LowerLimit returns LowerLimitDegrees in radians.
func (a Arc) LowerLimit() float64 {
	return ToRadians(a.LowerLimitDegrees())
}

// UpperLimit returns UpperLimitDegrees in radians.
func (a Arc) UpperLimit() float64 {
	return ToRadians(a.UpperLimitDegrees())
}

// Contains reports whether a quadrant angle lies on the permitted band,
// i.e. outside the excluded wedge between the two limits. NaN is never
// contained.
func (a Arc) Contains(rad float64) bool {
	if rad <= a.LowerLimit() && rad >= -math.Pi {
		return true
	}
	return rad < math.Pi && rad >= a.UpperLimit()
}

// DragAngle converts a pointer offset from the arc centre into a quadrant
// angle. dy must already be flipped to point up. The exact centre has no
// direction and yields NaN.
func DragAngle(dx, dy float64) float64 {
	r := math.Hypot(dx, dy)
	if r == 0 {
		return math.NaN()
	}
	angle := math.Acos(dx / r)
	if dy < 0 {
		angle = -angle
	}
	return angle
}
