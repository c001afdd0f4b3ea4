package slider

import "math"

// Mapper converts between thumb angles and readings for a reading range
// laid out along an Arc.
type Mapper struct {
	Min float64
	Max float64
	Arc Arc
}

// StepsPerDegree is the reading delta covered by one sweep degree.
func (m Mapper) StepsPerDegree() float64 {
	return (m.Max - m.Min) / m.Arc.Sweep
}

// AngleToReading returns the reading shown for a quadrant angle. The offset
// from the range minimum is rounded half up to a whole step and the result
// never leaves [Min, Max].
func (m Mapper) AngleToReading(rad float64) float64 {
	offset := (NormalizeToSweepAngle(rad) - m.Arc.Start) * m.StepsPerDegree()
	return m.Clamp(m.Min + math.Floor(offset+0.5))
}

// ReadingToAngle returns the quadrant angle for a reading. The range ends
// map exactly onto the arc limits.
//
// Interior readings come back as 360 minus the sweep angle, which for the
// first fifth of the default range is above pi. Such an angle still places
// the thumb correctly and maps back to the same reading, but it is not
// accepted by Arc.Contains.
func (m Mapper) ReadingToAngle(reading float64) float64 {
	switch reading {
	case m.Min:
		return ToRadians(m.Arc.LowerLimitDegrees())
	case m.Max:
		return ToRadians(m.Arc.UpperLimitDegrees())
	}
	offset := (reading - m.Min) / m.StepsPerDegree()
	return ToRadians(360 - (m.Arc.Start + offset))
}

// Clamp limits a reading to [Min, Max].
func (m Mapper) Clamp(reading float64) float64 {
	return math.Max(m.Min, math.Min(m.Max, reading))
}
