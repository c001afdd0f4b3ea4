package horseshoe

import (
	"expvar"
	"sync/atomic"
)

// Metrics counts slider activity. Counters are atomic; a Metrics value may
// be shared by several sliders.
//
// RegisterExpvar publishes them under /debug/vars when the embedding program
// serves expvar.
type Metrics struct {
	starts        atomic.Int64
	stops         atomic.Int64
	configReloads atomic.Int64
	errorsTotal   atomic.Int64
	eventsEmitted atomic.Int64

	pointerEvents atomic.Int64
	rejectedMoves atomic.Int64
	moves         atomic.Int64
	commits       atomic.Int64
	selections    atomic.Int64
	redraws       atomic.Int64

	running    atomic.Int32
	registered atomic.Bool
}

// MetricsSnapshot is a point-in-time copy of Metrics.
type MetricsSnapshot struct {
	Starts        int64
	Stops         int64
	ConfigReloads int64
	ErrorsTotal   int64
	EventsEmitted int64

	// PointerEvents counts every event fed to HandlePointer.
	PointerEvents int64
	// RejectedMoves counts drag moves that fell outside the arc.
	RejectedMoves int64
	Moves         int64
	Commits       int64
	Selections    int64
	// Redraws counts redraw requests from the slider core.
	Redraws int64

	Running bool
}

// NewMetrics returns zeroed metrics.
func NewMetrics() *Metrics {
	return &Metrics{}
}

var defaultMetrics = NewMetrics()

// DefaultMetrics returns the process-wide collector.
func DefaultMetrics() *Metrics {
	return defaultMetrics
}

// RegisterExpvar publishes the counters with a horseshoe_ prefix. Later
// calls are no-ops.
func (m *Metrics) RegisterExpvar() {
	if m.registered.Swap(true) {
		return
	}
	publish := func(name string, v *atomic.Int64) {
		expvar.Publish("horseshoe_"+name, expvar.Func(func() any { return v.Load() }))
	}
	publish("starts_total", &m.starts)
	publish("stops_total", &m.stops)
	publish("config_reloads_total", &m.configReloads)
	publish("errors_total", &m.errorsTotal)
	publish("events_emitted_total", &m.eventsEmitted)
	publish("pointer_events_total", &m.pointerEvents)
	publish("rejected_moves_total", &m.rejectedMoves)
	publish("moves_total", &m.moves)
	publish("commits_total", &m.commits)
	publish("selections_total", &m.selections)
	publish("redraws_total", &m.redraws)
	expvar.Publish("horseshoe_running", expvar.Func(func() any { return m.running.Load() }))
}

// Snapshot copies the current values.
func (m *Metrics) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		Starts:        m.starts.Load(),
		Stops:         m.stops.Load(),
		ConfigReloads: m.configReloads.Load(),
		ErrorsTotal:   m.errorsTotal.Load(),
		EventsEmitted: m.eventsEmitted.Load(),
		PointerEvents: m.pointerEvents.Load(),
		RejectedMoves: m.rejectedMoves.Load(),
		Moves:         m.moves.Load(),
		Commits:       m.commits.Load(),
		Selections:    m.selections.Load(),
		Redraws:       m.redraws.Load(),
		Running:       m.running.Load() > 0,
	}
}

// Reset zeroes every counter. Expvar registration is kept.
func (m *Metrics) Reset() {
	for _, c := range []*atomic.Int64{
		&m.starts, &m.stops, &m.configReloads, &m.errorsTotal, &m.eventsEmitted,
		&m.pointerEvents, &m.rejectedMoves, &m.moves, &m.commits, &m.selections, &m.redraws,
	} {
		c.Store(0)
	}
	m.running.Store(0)
}

func (m *Metrics) setRunning(running bool) {
	if running {
		m.running.Store(1)
	} else {
		m.running.Store(0)
	}
}
