package slider

import "math"

// Default geometry values, in pixels.
const (
	DefaultStrokeWidth           = 22
	DefaultThumbRadius           = 50
	DefaultPadding               = 10
	DefaultHitTolerance          = 100
	DefaultTransitionStrokeWidth = 5
	DefaultMin                   = 0.0
	DefaultMax                   = 100.0
)

// Config holds the numeric options of one slider. It is fixed for the
// lifetime of a Controller.
type Config struct {
	Min float64
	Max float64
	Arc Arc

	// StrokeWidth is the width of the track arc.
	StrokeWidth int
	// ThumbRadius is the radius of the teardrop head, and the side of the
	// thumb image square.
	ThumbRadius int
	// Padding insets the track rectangle from the measured bounds.
	Padding int
	// HitTolerance is the half-width of the square around the thumb that
	// accepts a pointer down.
	HitTolerance int
	// TransitionStrokeWidth is the width of the arc drawn between the
	// recorded and the live thumb.
	TransitionStrokeWidth int

	// InitialReading is applied at construction and on Reset. NaN means Min.
	InitialReading float64

	// ThumbImage selects the image thumb instead of the teardrop outline.
	ThumbImage bool
}

// DefaultConfig returns the configuration of a 0..100 slider.
func DefaultConfig() Config {
	return Config{
		Min:                   DefaultMin,
		Max:                   DefaultMax,
		Arc:                   DefaultArc(),
		StrokeWidth:           DefaultStrokeWidth,
		ThumbRadius:           DefaultThumbRadius,
		Padding:               DefaultPadding,
		HitTolerance:          DefaultHitTolerance,
		TransitionStrokeWidth: DefaultTransitionStrokeWidth,
		InitialReading:        math.NaN(),
	}
}

// Mapper returns the angle/reading mapper for this configuration.
func (c Config) Mapper() Mapper {
	return Mapper{Min: c.Min, Max: c.Max, Arc: c.Arc}
}

// initialReading resolves the NaN default.
func (c Config) initialReading() float64 {
	if math.IsNaN(c.InitialReading) {
		return c.Min
	}
	return c.InitialReading
}

// Validate rejects configurations the angle math cannot work with.
func (c Config) Validate() error {
	if !isFinite(c.Min) {
		return configErrorf("min", "must be finite, got %v", c.Min)
	}
	if !isFinite(c.Max) {
		return configErrorf("max", "must be finite, got %v", c.Max)
	}
	if c.Max <= c.Min {
		return configErrorf("max", "must be greater than min (%v), got %v", c.Min, c.Max)
	}
	if !isFinite(c.Arc.Start) || c.Arc.Start <= 90 || c.Arc.Start > 180 {
		return configErrorf("arc.start", "must be in (90, 180], got %v", c.Arc.Start)
	}
	if !isFinite(c.Arc.Sweep) || c.Arc.Sweep <= 0 || c.Arc.Sweep >= 360 {
		return configErrorf("arc.sweep", "must be in (0, 360), got %v", c.Arc.Sweep)
	}
	if !c.Arc.Fits() {
		return configErrorf("arc.sweep", "must end between 180 and 450 degrees, got start %v + sweep %v", c.Arc.Start, c.Arc.Sweep)
	}
	if c.ThumbRadius <= 0 {
		return configErrorf("thumb_radius", "must be positive, got %d", c.ThumbRadius)
	}
	if c.StrokeWidth < 0 {
		return configErrorf("stroke_width", "must be non-negative, got %d", c.StrokeWidth)
	}
	if c.Padding < 0 {
		return configErrorf("padding", "must be non-negative, got %d", c.Padding)
	}
	if c.HitTolerance <= 0 {
		return configErrorf("hit_tolerance", "must be positive, got %d", c.HitTolerance)
	}
	if c.TransitionStrokeWidth < 0 {
		return configErrorf("transition_stroke_width", "must be non-negative, got %d", c.TransitionStrokeWidth)
	}
	if r := c.initialReading(); !isFinite(r) || r < c.Min || r > c.Max {
		return configErrorf("reading", "must be within [%v, %v], got %v", c.Min, c.Max, r)
	}
	return nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
