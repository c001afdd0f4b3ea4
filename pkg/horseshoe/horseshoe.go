package horseshoe

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/opd-ai/go-horseshoe/internal/config"
	"github.com/opd-ai/go-horseshoe/internal/slider"
)

// Configuration formats accepted by NewFromReader.
const (
	FormatLegacy = "legacy"
	FormatLua    = "lua"
	FormatYAML   = "yaml"
)

// ErrNotRunning is returned by operations that need a started instance.
var ErrNotRunning = errors.New("horseshoe: not running")

// ErrAlreadyRunning is returned by Start on a running instance.
var ErrAlreadyRunning = errors.New("horseshoe: already running")

// Slider is an embeddable horseshoe slider with lifecycle control. It is
// safe for concurrent use. Listener callbacks run after the internal lock is
// released, so they may call back into the Slider.
type Slider interface {
	// Start runs the host loop in the background: a window, or in headless
	// mode nothing but the config watcher.
	Start() error
	// Run is Start on the calling goroutine: it returns when ctx is done,
	// the window is closed or Stop is called. Use it for windows, which
	// some platforms only allow on the main goroutine.
	Run(ctx context.Context) error
	// Stop ends the host loop and waits up to the shutdown timeout. It is a
	// no-op on a stopped instance.
	Stop() error
	// IsRunning reports whether the host loop is active.
	IsRunning() bool

	// SetReading moves the thumb without notifying the listener.
	SetReading(reading float64)
	// Reading returns the live reading.
	Reading() float64
	// SetEnabled gates thumb selection.
	SetEnabled(enabled bool)
	// SetThumbVisible shows or hides the thumb. A hidden thumb ignores
	// pointer input.
	SetThumbVisible(visible bool)
	// SetListener replaces the listener. Nil removes it.
	SetListener(l slider.Listener)

	// HandlePointer feeds one pointer event and reports whether it changed
	// the slider.
	HandlePointer(ev slider.PointerEvent) bool
	// Frame snapshots the slider for drawing.
	Frame() slider.Frame
	// Resize lays the slider out for a new size.
	Resize(width, height int)

	// ReloadConfig re-reads the configuration source and applies it in
	// place. On failure the previous configuration stays active.
	ReloadConfig() error
	// Config returns a copy of the active configuration.
	Config() config.Config

	Status() Status
	Metrics() *Metrics
	SetErrorHandler(handler ErrorHandler)
	SetEventHandler(handler EventHandler)
}

type configLoader func() (*config.Config, error)

func parseWith(fn func(p *config.Parser) (*config.Config, error)) configLoader {
	return func() (*config.Config, error) {
		p, err := config.NewParser()
		if err != nil {
			return nil, fmt.Errorf("parser init: %w", err)
		}
		defer p.Close()
		return fn(p)
	}
}

// New creates a slider from a configuration file in Lua, YAML or legacy
// format. The instance is not started.
//
//	s, err := horseshoe.New("thermostat.lua", nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	s.SetListener(slider.ListenerFuncs{Commit: func(r float64) { fmt.Println(r) }})
//	if err := s.Start(); err != nil {
//		log.Fatal(err)
//	}
//	defer s.Stop()
func New(path string, opts *Options) (Slider, error) {
	load := parseWith(func(p *config.Parser) (*config.Config, error) { return p.ParseFile(path) })
	s, err := newSlider(load, path, opts)
	if err != nil {
		return nil, err
	}
	s.watchPath = path
	return s, nil
}

// NewFromFS creates a slider from a configuration file in fsys, such as an
// embed.FS.
func NewFromFS(fsys fs.FS, path string, opts *Options) (Slider, error) {
	load := parseWith(func(p *config.Parser) (*config.Config, error) { return p.ParseFromFS(fsys, path) })
	return newSlider(load, "embedded:"+path, opts)
}

// NewFromReader creates a slider from configuration content in the given
// format. The content is read once and kept for ReloadConfig.
func NewFromReader(r io.Reader, format string, opts *Options) (Slider, error) {
	if _, err := config.ParseFormat(format); err != nil {
		return nil, fmt.Errorf("invalid format %q: %w", format, err)
	}
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	load := parseWith(func(p *config.Parser) (*config.Config, error) {
		return p.ParseReader(bytes.NewReader(content), format)
	})
	return newSlider(load, "reader", opts)
}

// NewFromConfig creates a slider from an in-memory configuration. Nil means
// config.DefaultConfig(). ReloadConfig reapplies the same configuration.
func NewFromConfig(cfg *config.Config, opts *Options) (Slider, error) {
	if cfg == nil {
		d := config.DefaultConfig()
		cfg = &d
	}
	snapshot := *cfg
	load := func() (*config.Config, error) {
		c := snapshot
		return &c, nil
	}
	return newSlider(load, "memory", opts)
}
