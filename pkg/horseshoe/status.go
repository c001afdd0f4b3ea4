package horseshoe

import (
	"time"

	"github.com/opd-ai/go-horseshoe/internal/slider"
)

// Status describes a Slider at one instant.
type Status struct {
	Running   bool
	StartTime time.Time
	// Reading is the live reading, including an uncommitted drag.
	Reading      float64
	State        slider.State
	Enabled      bool
	ThumbVisible bool
	// LastError is the most recent asynchronous error, or nil.
	LastError error
	// ConfigSource is the file path, "embedded:<path>", "reader" or
	// "memory".
	ConfigSource string
}

// ErrorHandler receives asynchronous errors such as failed hot reloads. It
// runs on its own goroutine; panics are recovered.
type ErrorHandler func(err error)

// EventHandler receives lifecycle events. It runs on its own goroutine;
// panics are recovered.
type EventHandler func(event Event)

// Event is a lifecycle notification.
type Event struct {
	Type      EventType
	Timestamp time.Time
	Message   string
}

// EventType enumerates lifecycle events.
type EventType int

const (
	// EventStarted follows a successful Start.
	EventStarted EventType = iota
	// EventStopped follows the end of the host loop.
	EventStopped
	// EventConfigReloaded follows a successful ReloadConfig.
	EventConfigReloaded
	// EventCommitted follows a completed drag gesture.
	EventCommitted
	// EventError accompanies every error passed to the ErrorHandler.
	EventError
)

// String returns the event name.
func (e EventType) String() string {
	switch e {
	case EventStarted:
		return "started"
	case EventStopped:
		return "stopped"
	case EventConfigReloaded:
		return "config_reloaded"
	case EventCommitted:
		return "committed"
	case EventError:
		return "error"
	default:
		return "unknown"
	}
}
