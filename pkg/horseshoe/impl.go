package horseshoe

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/opd-ai/go-horseshoe/internal/config"
	"github.com/opd-ai/go-horseshoe/internal/slider"
)

// host is the running window, if any.
type host interface {
	// invalidate schedules a redraw. It is called with the slider lock held
	// and must not block or call back into the slider.
	invalidate()
	// apply pushes a reloaded configuration to the window.
	apply(cfg *config.Config, title string)
}

type notificationKind int

const (
	notifyMove notificationKind = iota
	notifyCommit
	notifySelection
)

type notification struct {
	kind     notificationKind
	reading  float64
	selected bool
}

// sliderImpl implements Slider. The controller is only touched with mu held;
// notifications it produces are queued and delivered after mu is released.
type sliderImpl struct {
	load      configLoader
	opts      Options
	source    string
	watchPath string
	log       Logger
	metrics   *Metrics

	mu        sync.Mutex
	cfg       *config.Config
	ctrl      *slider.Controller
	listener  slider.Listener
	pending   []notification
	width     int
	height    int
	host      host
	startTime time.Time
	cancel    context.CancelFunc
	done      chan struct{}

	errorHandler ErrorHandler
	eventHandler EventHandler

	running   atomic.Bool
	lastError atomic.Value
}

var _ Slider = (*sliderImpl)(nil)

func newSlider(load configLoader, source string, opts *Options) (*sliderImpl, error) {
	if opts == nil {
		d := DefaultOptions()
		opts = &d
	}
	s := &sliderImpl{
		load:    load,
		opts:    *opts,
		source:  source,
		log:     opts.Logger,
		metrics: opts.Metrics,
	}
	if s.log == nil {
		s.log = NopLogger()
	}
	if s.metrics == nil {
		s.metrics = DefaultMetrics()
	}

	cfg, err := s.loadConfig()
	if err != nil {
		return nil, err
	}
	ctrl, err := s.newController(cfg)
	if err != nil {
		return nil, err
	}
	s.cfg = cfg
	s.ctrl = ctrl
	s.width, s.height = cfg.Window.Width, cfg.Window.Height
	ctrl.Resize(s.width, s.height)
	s.pending = nil
	s.log.Debug("slider created", "source", source, "min", cfg.Slider.Min, "max", cfg.Slider.Max)
	return s, nil
}

func (s *sliderImpl) loadConfig() (*config.Config, error) {
	cfg, err := s.load()
	if err != nil {
		return nil, fmt.Errorf("load config from %s: %w", s.source, err)
	}
	if err := config.ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("config from %s: %w", s.source, err)
	}
	return cfg, nil
}

func (s *sliderImpl) newController(cfg *config.Config) (*slider.Controller, error) {
	ctrl, err := slider.New(cfg.SliderOptions(),
		slider.WithListener(coreListener{s}),
		slider.WithInvalidator(s.invalidate),
		slider.WithLogger(s.log),
	)
	if err != nil {
		return nil, err
	}
	ctrl.SetEnabled(cfg.Slider.Enabled)
	ctrl.SetThumbVisible(cfg.Slider.ThumbVisible)
	return ctrl, nil
}

// coreListener queues controller notifications. It runs with mu held.
type coreListener struct{ s *sliderImpl }

func (l coreListener) OnMove(reading float64) {
	l.s.metrics.moves.Add(1)
	l.s.pending = append(l.s.pending, notification{kind: notifyMove, reading: reading})
}

func (l coreListener) OnCommit(reading float64) {
	l.s.metrics.commits.Add(1)
	l.s.pending = append(l.s.pending, notification{kind: notifyCommit, reading: reading})
}

func (l coreListener) OnSelectionChanged(selected bool) {
	if selected {
		l.s.metrics.selections.Add(1)
	}
	l.s.pending = append(l.s.pending, notification{kind: notifySelection, selected: selected})
}

// invalidate runs with mu held.
func (s *sliderImpl) invalidate() {
	s.metrics.redraws.Add(1)
	if s.host != nil {
		s.host.invalidate()
	}
}

// unlockAndDispatch releases mu and delivers the queued notifications.
func (s *sliderImpl) unlockAndDispatch() {
	pending := s.pending
	s.pending = nil
	l := s.listener
	s.mu.Unlock()

	for _, n := range pending {
		switch n.kind {
		case notifyMove:
			if l != nil {
				l.OnMove(n.reading)
			}
		case notifyCommit:
			if l != nil {
				l.OnCommit(n.reading)
			}
			s.emitEvent(EventCommitted, slider.FormatReading(n.reading))
		case notifySelection:
			if l != nil {
				l.OnSelectionChanged(n.selected)
			}
		}
	}
}

// Start implements Slider.
func (s *sliderImpl) Start() error {
	ctx, err := s.begin(context.Background())
	if err != nil {
		return err
	}
	go s.loop(ctx)
	return nil
}

// Run starts the instance and runs the host loop on the calling goroutine
// until ctx is done, the window is closed or Stop is called. Windowed hosts
// need this on the main goroutine on some platforms.
func (s *sliderImpl) Run(ctx context.Context) error {
	loopCtx, err := s.begin(ctx)
	if err != nil {
		return err
	}
	return s.loop(loopCtx)
}

func (s *sliderImpl) begin(parent context.Context) (context.Context, error) {
	s.mu.Lock()
	if s.running.Load() {
		s.mu.Unlock()
		return nil, ErrAlreadyRunning
	}
	ctx, cancel := context.WithCancel(parent)
	s.cancel = cancel
	s.done = make(chan struct{})
	s.startTime = time.Now()
	s.running.Store(true)
	s.mu.Unlock()

	s.metrics.starts.Add(1)
	s.metrics.setRunning(true)
	s.log.Info("slider started", "source", s.source, "headless", s.opts.Headless)
	s.emitEvent(EventStarted, "slider started")
	return ctx, nil
}

func (s *sliderImpl) loop(ctx context.Context) error {
	s.mu.Lock()
	done, cancel := s.done, s.cancel
	s.mu.Unlock()
	defer close(done)
	defer cancel()

	var watcher *fileWatcher
	if s.opts.WatchConfig && s.watchPath != "" {
		w, err := newFileWatcher(s.watchPath, s.opts.WatchDebounce, s.reloadFromWatcher, s.notifyError)
		if err != nil {
			s.notifyError(err)
		} else {
			watcher = w
			s.log.Debug("watching config", "path", s.watchPath)
		}
	}

	var err error
	if s.opts.Headless {
		<-ctx.Done()
	} else {
		err = s.runWindow(ctx)
		if err != nil {
			s.notifyError(fmt.Errorf("render loop: %w", err))
		}
	}

	if watcher != nil {
		watcher.Close()
	}
	s.running.Store(false)
	s.metrics.setRunning(false)
	s.log.Info("slider stopped")
	s.emitEvent(EventStopped, "slider stopped")
	return err
}

func (s *sliderImpl) reloadFromWatcher() {
	if err := s.ReloadConfig(); err != nil {
		s.log.Warn("config reload failed", "error", err)
		return
	}
	s.log.Info("config reloaded", "path", s.watchPath)
}

// Stop implements Slider.
func (s *sliderImpl) Stop() error {
	s.mu.Lock()
	if !s.running.Load() {
		s.mu.Unlock()
		return nil
	}
	cancel, done := s.cancel, s.done
	s.mu.Unlock()

	cancel()
	timeout := s.opts.shutdownTimeout()
	select {
	case <-done:
		s.metrics.stops.Add(1)
		return nil
	case <-time.After(timeout):
		err := fmt.Errorf("shutdown timeout after %v", timeout)
		s.notifyError(err)
		return err
	}
}

// IsRunning implements Slider.
func (s *sliderImpl) IsRunning() bool {
	return s.running.Load()
}

// SetReading implements Slider.
func (s *sliderImpl) SetReading(reading float64) {
	s.mu.Lock()
	s.ctrl.SetReading(reading)
	s.unlockAndDispatch()
}

// Reading implements Slider.
func (s *sliderImpl) Reading() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ctrl.Reading()
}

// SetEnabled implements Slider.
func (s *sliderImpl) SetEnabled(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ctrl.SetEnabled(enabled)
	s.cfg.Slider.Enabled = enabled
}

// SetThumbVisible implements Slider.
func (s *sliderImpl) SetThumbVisible(visible bool) {
	s.mu.Lock()
	s.ctrl.SetThumbVisible(visible)
	s.cfg.Slider.ThumbVisible = visible
	s.unlockAndDispatch()
}

// SetListener implements Slider.
func (s *sliderImpl) SetListener(l slider.Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listener = l
}

// HandlePointer implements Slider.
func (s *sliderImpl) HandlePointer(ev slider.PointerEvent) bool {
	s.mu.Lock()
	s.metrics.pointerEvents.Add(1)
	dragging := s.ctrl.State() == slider.Dragging
	changed := s.ctrl.HandlePointer(ev)
	if ev.Phase == slider.PointerMove && dragging && !changed {
		s.metrics.rejectedMoves.Add(1)
	}
	s.unlockAndDispatch()
	return changed
}

// Frame implements Slider.
func (s *sliderImpl) Frame() slider.Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ctrl.Frame()
}

// Resize implements Slider.
func (s *sliderImpl) Resize(width, height int) {
	s.mu.Lock()
	s.width, s.height = width, height
	s.ctrl.Resize(width, height)
	s.unlockAndDispatch()
}

// ReloadConfig implements Slider. The reading is kept unless the new
// configuration sets one; a drag in progress is dropped.
func (s *sliderImpl) ReloadConfig() error {
	cfg, err := s.loadConfig()
	if err != nil {
		s.notifyError(err)
		return err
	}

	s.mu.Lock()
	ctrl, err := s.newController(cfg)
	if err != nil {
		s.mu.Unlock()
		err = fmt.Errorf("reload: %w", err)
		s.notifyError(err)
		return err
	}
	old := s.ctrl
	if !cfg.Slider.HasReading() {
		ctrl.SetReading(old.Reading())
	}
	ctrl.Resize(s.width, s.height)
	if old.State() == slider.Dragging {
		s.pending = append(s.pending, notification{kind: notifySelection, selected: false})
	}
	s.cfg = cfg
	s.ctrl = ctrl
	h := s.host
	s.invalidate()
	s.unlockAndDispatch()

	if h != nil {
		h.apply(cfg, s.opts.WindowTitle)
	}
	s.metrics.configReloads.Add(1)
	s.emitEvent(EventConfigReloaded, "configuration reloaded from "+s.source)
	return nil
}

// Config implements Slider.
func (s *sliderImpl) Config() config.Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.cfg
}

// Status implements Slider.
func (s *sliderImpl) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Status{
		Running:      s.running.Load(),
		StartTime:    s.startTime,
		Reading:      s.ctrl.Reading(),
		State:        s.ctrl.State(),
		Enabled:      s.ctrl.Enabled(),
		ThumbVisible: s.ctrl.ThumbVisible(),
		LastError:    s.getError(),
		ConfigSource: s.source,
	}
}

// Metrics implements Slider.
func (s *sliderImpl) Metrics() *Metrics {
	return s.metrics
}

// SetErrorHandler implements Slider.
func (s *sliderImpl) SetErrorHandler(handler ErrorHandler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errorHandler = handler
}

// SetEventHandler implements Slider.
func (s *sliderImpl) SetEventHandler(handler EventHandler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.eventHandler = handler
}

type errorBox struct{ err error }

func (s *sliderImpl) getError() error {
	if b, ok := s.lastError.Load().(errorBox); ok {
		return b.err
	}
	return nil
}

// notifyError records err and hands it to the error handler on its own
// goroutine.
func (s *sliderImpl) notifyError(err error) {
	s.lastError.Store(errorBox{err})
	s.metrics.errorsTotal.Add(1)
	s.log.Error("slider error", "error", err)

	s.mu.Lock()
	handler := s.errorHandler
	s.mu.Unlock()
	if handler != nil {
		go func() {
			defer func() {
				if r := recover(); r != nil {
					s.log.Error("error handler panicked", "panic", r, "original_error", err)
				}
			}()
			handler(err)
		}()
	}
	s.emitEvent(EventError, err.Error())
}

func (s *sliderImpl) emitEvent(t EventType, message string) {
	s.metrics.eventsEmitted.Add(1)

	s.mu.Lock()
	handler := s.eventHandler
	s.mu.Unlock()
	if handler == nil {
		return
	}
	ev := Event{Type: t, Timestamp: time.Now(), Message: message}
	go func() {
		defer func() {
			if r := recover(); r != nil {
				s.log.Error("event handler panicked", "panic", r, "event", t.String())
			}
		}()
		handler(ev)
	}()
}
