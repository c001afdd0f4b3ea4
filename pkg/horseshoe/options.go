package horseshoe

import "time"

// DefaultShutdownTimeout bounds how long Stop waits for the host loop.
const DefaultShutdownTimeout = 5 * time.Second

// Options configures a Slider instance.
type Options struct {
	// WindowTitle overrides the configured window title.
	WindowTitle string

	// Headless runs without a window. The slider is then driven through
	// HandlePointer and SetReading, and drawn with Frame.
	Headless bool

	// ShutdownTimeout sets the maximum time Stop waits for the host loop.
	// Zero means DefaultShutdownTimeout.
	ShutdownTimeout time.Duration

	// Logger receives lifecycle messages and, at debug level, every angle
	// computation. Nil disables logging.
	Logger Logger

	// Metrics collects operational counters. Nil means DefaultMetrics().
	Metrics *Metrics

	// WatchConfig reloads the configuration in place when its file changes
	// on disk. It has no effect on reader-based or in-memory configurations.
	WatchConfig bool

	// WatchDebounce collapses bursts of file events into one reload. Zero
	// means DefaultWatchDebounce.
	WatchDebounce time.Duration
}

// DefaultOptions returns windowed options with default timeouts.
func DefaultOptions() Options {
	return Options{}
}

func (o Options) shutdownTimeout() time.Duration {
	if o.ShutdownTimeout <= 0 {
		return DefaultShutdownTimeout
	}
	return o.ShutdownTimeout
}

// Logger is the structured logger used by a Slider. Its method set matches
// log/slog.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}
