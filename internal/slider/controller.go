package slider

import (
	"math"
)

// MinSize is the smallest side a control is laid out with.
const MinSize = 100

// State is the drag state of a Controller.
type State int

const (
	// Idle waits for a pointer down on the thumb.
	Idle State = iota
	// Dragging follows pointer moves until the pointer is released.
	Dragging
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	default:
		return "unknown"
	}
}

// Logger is the subset of a structured logger the controller writes to.
type Logger interface {
	Debug(msg string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}

// Option configures a Controller.
type Option func(*Controller)

// WithListener registers the notification listener.
func WithListener(l Listener) Option {
	return func(c *Controller) { c.listener = l }
}

// WithInvalidator registers the redraw request callback.
func WithInvalidator(fn func()) Option {
	return func(c *Controller) { c.invalidate = fn }
}

// WithLogger routes debug output to l.
func WithLogger(l Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// Layout is the geometry derived from the control size.
type Layout struct {
	Width, Height int
	// Bounds is the control box inset by half the track stroke so the
	// stroke stays inside the control.
	Bounds Rect
	// ArcRect is Bounds inset by the padding; the track is drawn in it.
	ArcRect Rect
	CenterX float64
	CenterY float64
	// Radius is half the smaller side of ArcRect, truncated.
	Radius int
}

// Measure computes the layout of a width x height control. Non-positive
// sizes fall back to MinSize.
func Measure(width, height int, cfg Config) Layout {
	if width <= 0 {
		width = MinSize
	}
	if height <= 0 {
		height = MinSize
	}
	half := float64(cfg.StrokeWidth) / 2
	bounds := Rect{Left: half, Top: half, Right: float64(width) - half, Bottom: float64(height) - half}
	arcRect := ArcTrackRect(bounds, float64(cfg.Padding))
	return Layout{
		Width:   width,
		Height:  height,
		Bounds:  bounds,
		ArcRect: arcRect,
		CenterX: arcRect.CenterX(),
		CenterY: arcRect.CenterY(),
		Radius:  int(math.Min(arcRect.Width(), arcRect.Height()) / 2),
	}
}

// Controller owns the thumb state of one slider and turns pointer events
// into state changes and notifications. It is not safe for concurrent use.
type Controller struct {
	cfg    Config
	mapper Mapper

	thumb        Thumb
	state        State
	thumbVisible bool

	layout    Layout
	hasLayout bool

	listener   Listener
	invalidate func()
	log        Logger
}

// New validates cfg and returns an idle controller showing the configured
// initial reading.
func New(cfg Config, opts ...Option) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := &Controller{
		cfg:          cfg,
		mapper:       cfg.Mapper(),
		thumb:        NewThumb(),
		thumbVisible: true,
		log:          nopLogger{},
	}
	for _, opt := range opts {
		opt(c)
	}
	c.assignReading(cfg.initialReading())
	return c, nil
}

// Config returns the controller configuration.
func (c *Controller) Config() Config { return c.cfg }

// State returns the drag state.
func (c *Controller) State() State { return c.state }

// Thumb returns a copy of the thumb state.
func (c *Controller) Thumb() Thumb { return c.thumb }

// Reading returns the live reading.
func (c *Controller) Reading() float64 { return c.thumb.Reading }

// ThumbVisible reports whether the thumb is drawn and accepts input.
func (c *Controller) ThumbVisible() bool { return c.thumbVisible }

// Layout returns the current layout; ok is false before the first Resize.
func (c *Controller) Layout() (l Layout, ok bool) { return c.layout, c.hasLayout }

// SetListener replaces the listener. Nil removes it.
func (c *Controller) SetListener(l Listener) { c.listener = l }

// SetInvalidator replaces the redraw request callback.
func (c *Controller) SetInvalidator(fn func()) { c.invalidate = fn }

// Resize lays the control out for a new size.
func (c *Controller) Resize(width, height int) {
	c.layout = Measure(width, height, c.cfg)
	c.hasLayout = true
	c.updatePosition()
	c.log.Debug("slider resized",
		"width", c.layout.Width, "height", c.layout.Height,
		"radius", c.layout.Radius, "center_x", c.layout.CenterX, "center_y", c.layout.CenterY)
	c.requestRedraw()
}

// HandlePointer feeds one pointer event to the state machine. It reports
// whether the event changed the slider.
func (c *Controller) HandlePointer(ev PointerEvent) bool {
	if !c.thumbVisible {
		return false
	}
	switch ev.Phase {
	case PointerDown:
		return c.pointerDown(ev.X, ev.Y)
	case PointerMove:
		return c.pointerMove(ev.X, ev.Y)
	case PointerUp:
		return c.pointerUp()
	}
	return false
}

func (c *Controller) pointerDown(x, y int) bool {
	if c.state != Idle || !c.hit(x, y) || !c.thumb.Enabled {
		return false
	}
	c.thumb.Record()
	c.thumb.Selected = true
	c.state = Dragging
	c.log.Debug("thumb selected", "x", x, "y", y, "reading", c.thumb.Reading)
	c.notifySelection(true)
	c.requestRedraw()
	return true
}

func (c *Controller) pointerMove(x, y int) bool {
	if c.state != Dragging || !c.hasLayout {
		return false
	}
	angle := DragAngle(float64(x)-c.layout.CenterX, c.layout.CenterY-float64(y))
	if !c.cfg.Arc.Contains(angle) {
		c.log.Debug("drag angle rejected", "degrees", ToDegrees(angle))
		return false
	}
	c.thumb.Angle = angle
	c.thumb.Reading = c.mapper.AngleToReading(angle)
	c.log.Debug("drag angle accepted",
		"degrees", ToDegrees(angle), "sweep", NormalizeToSweepAngle(angle), "reading", c.thumb.Reading)
	if c.listener != nil {
		c.listener.OnMove(c.thumb.Reading)
	}
	c.requestRedraw()
	return true
}

func (c *Controller) pointerUp() bool {
	if c.state != Dragging {
		return false
	}
	if c.thumb.Selected && c.cfg.Arc.Contains(c.thumb.Angle) && c.listener != nil {
		c.listener.OnCommit(c.thumb.Reading)
	}
	c.thumb.Selected = false
	c.state = Idle
	c.log.Debug("thumb released", "reading", c.thumb.Reading)
	c.notifySelection(false)
	c.requestRedraw()
	return true
}

// hit tests (x, y) against the square tolerance window around the last
// rendered thumb position. An unrendered thumb is never hit.
func (c *Controller) hit(x, y int) bool {
	if !c.thumb.HasPosition() {
		return false
	}
	tol := c.cfg.HitTolerance
	p := c.thumb.Position
	return x < p.X+tol && x > p.X-tol && y < p.Y+tol && y > p.Y-tol
}

// SetReading moves the thumb to a reading without notifying the listener.
// The reading is clamped to the configured range; NaN is ignored. Both the
// live and the recorded angle are set so no transition is drawn.
func (c *Controller) SetReading(reading float64) {
	if math.IsNaN(reading) {
		return
	}
	c.assignReading(c.mapper.Clamp(reading))
	c.requestRedraw()
}

func (c *Controller) assignReading(reading float64) {
	angle := c.mapper.ReadingToAngle(reading)
	c.thumb.Reading = reading
	c.thumb.PrevReading = reading
	c.thumb.Angle = angle
	c.thumb.PrevAngle = angle
	c.updatePosition()
}

// SetEnabled gates future selection. A drag in progress is not cancelled;
// it ends with the next pointer up.
func (c *Controller) SetEnabled(enabled bool) {
	c.thumb.Enabled = enabled
}

// Enabled reports whether the thumb can be selected.
func (c *Controller) Enabled() bool { return c.thumb.Enabled }

// SetThumbVisible shows or hides the thumb and its transition decoration.
// The track stays visible. A hidden thumb ignores pointer input.
func (c *Controller) SetThumbVisible(visible bool) {
	if c.thumbVisible == visible {
		return
	}
	c.thumbVisible = visible
	c.requestRedraw()
}

// Reset returns the thumb to its initial state and reading.
func (c *Controller) Reset() {
	c.thumb.Reset()
	c.state = Idle
	c.assignReading(c.cfg.initialReading())
	c.requestRedraw()
}

// Frame snapshots the state for drawing. It records the rendered thumb
// position used for hit testing and, on the first render, seeds the
// recorded state.
func (c *Controller) Frame() Frame {
	c.updatePosition()
	if c.hasLayout && !c.thumb.hasPrevPosition() {
		c.thumb.Record()
	}
	return buildFrame(c.cfg, c.layout, c.thumb, c.thumbVisible)
}

func (c *Controller) updatePosition() {
	if !c.hasLayout {
		return
	}
	l := c.layout
	c.thumb.Position = ThumbCenter(c.thumb.Angle, l.CenterX, l.CenterY, l.Radius, c.cfg.StrokeWidth, c.cfg.ThumbRadius)
}

func (c *Controller) notifySelection(selected bool) {
	if c.listener != nil {
		c.listener.OnSelectionChanged(selected)
	}
}

func (c *Controller) requestRedraw() {
	if c.invalidate != nil {
		c.invalidate()
	}
}
