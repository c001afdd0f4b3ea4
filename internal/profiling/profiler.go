// Package profiling writes pprof CPU and heap profiles for a horseshoe
// session. The command line enables it with --cpuprofile and --memprofile.
package profiling

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"runtime/pprof"
	"sync"
)

// Config names the profile outputs. An empty path disables that profile.
type Config struct {
	CPUProfilePath string
	MemProfilePath string
}

// Enabled reports whether any profile is configured.
func (c Config) Enabled() bool {
	return c.CPUProfilePath != "" || c.MemProfilePath != ""
}

// Profiler owns one profiling session. It is safe for concurrent use.
type Profiler struct {
	config  Config
	logger  *slog.Logger
	cpuFile *os.File
	running bool
	mu      sync.Mutex
}

// New creates a stopped profiler. A nil logger discards output.
func New(config Config, logger *slog.Logger) *Profiler {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Profiler{config: config, logger: logger}
}

// Start begins CPU profiling when a CPU path is configured.
func (p *Profiler) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.running {
		return errors.New("profiler is already running")
	}
	if p.config.CPUProfilePath != "" {
		f, err := os.Create(p.config.CPUProfilePath)
		if err != nil {
			return fmt.Errorf("create CPU profile: %w", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			f.Close()
			return fmt.Errorf("start CPU profile: %w", err)
		}
		p.cpuFile = f
		p.logger.Debug("cpu profiling started", "path", p.config.CPUProfilePath)
	}
	p.running = true
	return nil
}

// Stop ends CPU profiling and writes the heap profile. Both are attempted;
// their errors are joined.
func (p *Profiler) Stop() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.running {
		return errors.New("profiler is not running")
	}
	p.running = false

	var errs []error
	if p.cpuFile != nil {
		pprof.StopCPUProfile()
		if err := p.cpuFile.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close CPU profile: %w", err))
		} else {
			p.logger.Info("cpu profile written", "path", p.config.CPUProfilePath)
		}
		p.cpuFile = nil
	}
	if p.config.MemProfilePath != "" {
		if err := WriteHeapProfile(p.config.MemProfilePath); err != nil {
			errs = append(errs, err)
		} else {
			p.logger.Info("heap profile written", "path", p.config.MemProfilePath)
		}
	}
	return errors.Join(errs...)
}

// IsRunning reports whether Start has been called without a matching Stop.
func (p *Profiler) IsRunning() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.running
}

// WriteHeapProfile collects garbage and writes a heap profile to path.
func WriteHeapProfile(path string) error {
	runtime.GC()

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create heap profile: %w", err)
	}
	defer f.Close()

	if err := pprof.WriteHeapProfile(f); err != nil {
		return fmt.Errorf("write heap profile: %w", err)
	}
	return nil
}
