package slider

import (
	"image"
	"math"
)

// Teardrop proportions.
const (
	teardropOpening = 60.0
	teardropSweep   = 270.0
	// minArcDelta is the smallest connecting arc sweep worth drawing.
	minArcDelta = 0.1
)

// PointF is a screen point with fractional coordinates.
type PointF struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle in screen coordinates (Y down).
type Rect struct {
	Left, Top, Right, Bottom float64
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns the vertical extent.
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// CenterX returns the horizontal midpoint.
func (r Rect) CenterX() float64 { return (r.Left + r.Right) / 2 }

// CenterY returns the vertical midpoint.
func (r Rect) CenterY() float64 { return (r.Top + r.Bottom) / 2 }

// Inset shrinks the rectangle by d on every side.
func (r Rect) Inset(d float64) Rect {
	return Rect{Left: r.Left + d, Top: r.Top + d, Right: r.Right - d, Bottom: r.Bottom - d}
}

// SquareAround returns the square of half-side h centred on (x, y).
func SquareAround(x, y, h float64) Rect {
	return Rect{Left: x - h, Top: y - h, Right: x + h, Bottom: y + h}
}

// PointAt returns the point at sweep angle deg on the ellipse inscribed in r.
func (r Rect) PointAt(deg float64) PointF {
	rad := ToRadians(deg)
	return PointF{
		X: r.CenterX() + r.Width()/2*math.Cos(rad),
		Y: r.CenterY() + r.Height()/2*math.Sin(rad),
	}
}

// ArcTrackRect insets the control bounds by padding. The track arc is drawn
// inside it.
func ArcTrackRect(bounds Rect, padding float64) Rect {
	return bounds.Inset(padding)
}

// TransitionRect is the rectangle of the arc connecting the recorded and the
// live thumb: the track rectangle pulled in to the thumb centre line.
func TransitionRect(arcRect Rect, strokeWidth, thumbRadius int) Rect {
	return arcRect.Inset(float64(strokeWidth + thumbRadius/2))
}

// ThumbCenter places the thumb just outside the track for a quadrant angle.
// Coordinates are truncated to whole pixels.
func ThumbCenter(angle, cx, cy float64, radius, strokeWidth, thumbRadius int) image.Point {
	dist := float64(radius + strokeWidth + thumbRadius/2)
	return image.Point{
		X: int(cx + dist*math.Cos(angle)),
		Y: int(cy - dist*math.Sin(angle)),
	}
}

// PointOnLine returns the point at distance d from p1 in the direction of p2.
// Coincident points return p1.
func PointOnLine(p1, p2 PointF, d float64) PointF {
	between := math.Hypot(p2.X-p1.X, p2.Y-p1.Y)
	if between == 0 {
		return p1
	}
	t := d / between
	return PointF{
		X: (1-t)*p1.X + t*p2.X,
		Y: (1-t)*p1.Y + t*p2.Y,
	}
}

// Teardrop builds the thumb outline: a 270 degree head turned away from the
// arc centre and tilted by half the opening angle, closed by a cone whose tip
// lies one and a half thumb radii toward the arc centre.
func Teardrop(center image.Point, thumbRadius int, angle float64, arcCenter PointF) Path {
	r := float64(thumbRadius)
	x, y := float64(center.X), float64(center.Y)

	start := (180 - ToDegrees(angle)) + teardropOpening/2
	tip := PointOnLine(PointF{X: x, Y: y}, arcCenter, float64(thumbRadius+thumbRadius/2))

	var p Path
	p.AddArc(SquareAround(x, y, r), start, teardropSweep)
	p.LineTo(tip.X, tip.Y)
	p.Close()
	return p
}

// ConnectingArc returns the sweep-space arc from the old to the new thumb
// angle. ok is false when the arc is too short to draw.
func ConnectingArc(oldAngle, newAngle float64) (start, sweep float64, ok bool) {
	start = NormalizeToSweepAngle(oldAngle)
	sweep = NormalizeToSweepAngle(newAngle) - start
	if math.Abs(sweep) <= minArcDelta {
		return start, sweep, false
	}
	return start, sweep, true
}

// LabelOrigin is the text baseline origin of the reading drawn inside the
// thumb head.
func LabelOrigin(center image.Point, thumbRadius int) PointF {
	return PointF{
		X: float64(center.X) - float64(thumbRadius)*0.75,
		Y: float64(center.Y + thumbRadius/3),
	}
}

// OpKind identifies a path operation.
type OpKind int

const (
	// OpArc appends an arc of the ellipse inscribed in Bounds.
	OpArc OpKind = iota
	// OpLineTo draws a straight segment to (X, Y).
	OpLineTo
	// OpClose joins the current point back to the first point.
	OpClose
)

// PathOp is one drawing operation of a Path.
type PathOp struct {
	Kind   OpKind
	Bounds Rect
	Start  float64
	Sweep  float64
	X, Y   float64
}

// Path is a renderer-neutral outline built from arcs and lines, with angles
// in sweep degrees.
type Path struct {
	Ops []PathOp
}

// AddArc appends an arc.
func (p *Path) AddArc(bounds Rect, start, sweep float64) {
	p.Ops = append(p.Ops, PathOp{Kind: OpArc, Bounds: bounds, Start: start, Sweep: sweep})
}

// LineTo appends a line segment.
func (p *Path) LineTo(x, y float64) {
	p.Ops = append(p.Ops, PathOp{Kind: OpLineTo, X: x, Y: y})
}

// Close closes the current figure.
func (p *Path) Close() {
	p.Ops = append(p.Ops, PathOp{Kind: OpClose})
}

// Flatten approximates the path with a polygon, sampling arcs every step
// degrees. Closing is implicit in the returned polygon.
func (p Path) Flatten(step float64) []PointF {
	if step <= 0 {
		step = 5
	}
	var pts []PointF
	for _, op := range p.Ops {
		switch op.Kind {
		case OpArc:
			n := int(math.Ceil(math.Abs(op.Sweep) / step))
			if n < 1 {
				n = 1
			}
			for i := 0; i <= n; i++ {
				pts = append(pts, op.Bounds.PointAt(op.Start+op.Sweep*float64(i)/float64(n)))
			}
		case OpLineTo:
			pts = append(pts, PointF{X: op.X, Y: op.Y})
		}
	}
	return pts
}

// Contains reports whether (x, y) is inside the flattened outline, using the
// even-odd rule.
func (p Path) Contains(x, y float64) bool {
	pts := p.Flatten(5)
	inside := false
	for i, j := 0, len(pts)-1; i < len(pts); j, i = i, i+1 {
		a, b := pts[i], pts[j]
		if (a.Y > y) != (b.Y > y) && x < (b.X-a.X)*(y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
	}
	return inside
}
