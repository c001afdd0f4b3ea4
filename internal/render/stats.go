package render

import (
	"sync/atomic"
	"time"
)

// RenderStats counts the work done by a canvas. All methods are safe for
// concurrent use.
type RenderStats struct {
	frames    atomic.Int64
	drawCalls atomic.Int64
	vertices  atomic.Int64
	textDraws atomic.Int64
	lastFrame atomic.Int64 // nanoseconds spent in the last Draw
}

// NewRenderStats creates zeroed stats.
func NewRenderStats() *RenderStats {
	return &RenderStats{}
}

// RecordDrawCall records a DrawTriangles call with the given vertex count.
func (rs *RenderStats) RecordDrawCall(vertices int) {
	rs.drawCalls.Add(1)
	rs.vertices.Add(int64(vertices))
}

// RecordTextDraw records a label draw.
func (rs *RenderStats) RecordTextDraw() {
	rs.textDraws.Add(1)
}

// RecordFrame records one painted frame and how long it took.
func (rs *RenderStats) RecordFrame(d time.Duration) {
	rs.frames.Add(1)
	rs.lastFrame.Store(d.Nanoseconds())
}

// Snapshot is a copy of the counters.
type Snapshot struct {
	Frames        int64
	DrawCalls     int64
	Vertices      int64
	TextDraws     int64
	LastFrameTime time.Duration
}

// Snapshot returns the current counters.
func (rs *RenderStats) Snapshot() Snapshot {
	return Snapshot{
		Frames:        rs.frames.Load(),
		DrawCalls:     rs.drawCalls.Load(),
		Vertices:      rs.vertices.Load(),
		TextDraws:     rs.textDraws.Load(),
		LastFrameTime: time.Duration(rs.lastFrame.Load()),
	}
}

// Reset clears all counters.
func (rs *RenderStats) Reset() {
	rs.frames.Store(0)
	rs.drawCalls.Store(0)
	rs.vertices.Store(0)
	rs.textDraws.Store(0)
	rs.lastFrame.Store(0)
}
