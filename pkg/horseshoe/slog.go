package horseshoe

import (
	"io"
	"log/slog"
	"os"

	"github.com/opd-ai/go-horseshoe/internal/config"
)

// SlogAdapter implements Logger on top of a *slog.Logger.
//
//	opts := horseshoe.DefaultOptions()
//	opts.Logger = horseshoe.NewSlogAdapter(slog.Default())
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter wraps logger. Nil means slog.Default().
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogAdapter{logger: logger}
}

// Debug implements Logger.
func (s *SlogAdapter) Debug(msg string, args ...any) { s.logger.Debug(msg, args...) }

// Info implements Logger.
func (s *SlogAdapter) Info(msg string, args ...any) { s.logger.Info(msg, args...) }

// Warn implements Logger.
func (s *SlogAdapter) Warn(msg string, args ...any) { s.logger.Warn(msg, args...) }

// Error implements Logger.
func (s *SlogAdapter) Error(msg string, args ...any) { s.logger.Error(msg, args...) }

// Slog returns the wrapped logger.
func (s *SlogAdapter) Slog() *slog.Logger { return s.logger }

// With returns an adapter that adds args to every record.
func (s *SlogAdapter) With(args ...any) *SlogAdapter {
	return &SlogAdapter{logger: s.logger.With(args...)}
}

// DefaultLogger logs text at info level to stderr.
func DefaultLogger() Logger {
	return TextLogger(os.Stderr, slog.LevelInfo)
}

// DebugLogger logs text at debug level to stderr, with source locations.
// Every accepted and rejected drag angle is logged at this level.
func DebugLogger() Logger {
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug, AddSource: true})
	return &SlogAdapter{logger: slog.New(h)}
}

// TextLogger logs text records at or above level to w.
func TextLogger(w io.Writer, level slog.Level) Logger {
	if w == nil {
		w = os.Stderr
	}
	return &SlogAdapter{logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))}
}

// JSONLogger logs JSON records at or above level to w.
func JSONLogger(w io.Writer, level slog.Level) Logger {
	if w == nil {
		w = os.Stderr
	}
	return &SlogAdapter{logger: slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))}
}

// LoggerForLevel returns a stderr text logger for a configured level.
func LoggerForLevel(level config.LogLevel) Logger {
	if level == config.LogLevelDebug {
		return DebugLogger()
	}
	return TextLogger(os.Stderr, level.SlogLevel())
}

// NopLogger discards everything.
func NopLogger() Logger { return nopLogger{} }

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}
