package render

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/opd-ai/go-horseshoe/internal/slider"
)

// ErrGameTerminated is returned when the game loop is terminated via context cancellation.
var ErrGameTerminated = errors.New("game terminated")

// Game implements ebiten.Game. It feeds pointer input to a Surface and
// paints its frames.
type Game struct {
	config     Config
	surface    Surface
	canvas     *EbitenCanvas
	text       *TextRenderer
	background BackgroundRenderer
	tracker    *PointerTracker
	stats      *RenderStats
	events     []slider.PointerEvent
	width      int
	height     int
	// dirty is set by Invalidate and cleared by Draw.
	dirty   atomic.Bool
	mu      sync.RWMutex
	running bool
	ctx     context.Context
}

// NewGame creates a Game drawing surface with the given configuration.
// thumbImage may be nil.
func NewGame(config Config, surface Surface, thumbImage *ebiten.Image) *Game {
	text := NewTextRenderer()
	text.SetFontSize(config.ThumbTextSize)
	g := &Game{
		config:     config,
		surface:    surface,
		text:       text,
		canvas:     NewEbitenCanvas(PaletteFromConfig(config), text, thumbImage),
		background: NewBackgroundRenderer(config.BackgroundColor),
		tracker:    NewPointerTracker(NewEbitenInput()),
		stats:      NewRenderStats(),
	}
	g.canvas.SetStats(g.stats)
	g.dirty.Store(true)
	return g
}

// SetInputSource replaces the pointer source. This is useful for testing.
func (g *Game) SetInputSource(src InputSource) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.tracker = NewPointerTracker(src)
}

// SetContext sets a context for the game loop. When the context is cancelled,
// the game loop will terminate gracefully.
func (g *Game) SetContext(ctx context.Context) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ctx = ctx
}

// Invalidate asks for the next Draw to repaint. It is safe to call from any
// goroutine.
func (g *Game) Invalidate() {
	g.dirty.Store(true)
}

// Update implements ebiten.Game.Update.
// It is called every tick (typically 60 times per second).
func (g *Game) Update() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.ctx != nil {
		select {
		case <-g.ctx.Done():
			return ErrGameTerminated
		default:
		}
	}

	g.events = g.tracker.Poll(g.events[:0])
	for _, ev := range g.events {
		g.surface.HandlePointer(ev)
	}
	return nil
}

// Draw implements ebiten.Game.Draw. The screen is kept between frames, so
// nothing is drawn until the surface asks for a redraw.
func (g *Game) Draw(screen *ebiten.Image) {
	if !g.dirty.Swap(false) {
		return
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	start := time.Now()
	g.background.Draw(screen)
	g.canvas.SetScreen(screen)
	slider.Paint(g.canvas, g.surface.Frame())
	g.canvas.SetScreen(nil)
	g.stats.RecordFrame(time.Since(start))
}

// Stats returns the drawing counters.
func (g *Game) Stats() *RenderStats {
	return g.stats
}

// Layout implements ebiten.Game.Layout. The control always fills the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	w, h := outsideWidth, outsideHeight
	if w <= 0 || h <= 0 {
		w, h = g.config.Width, g.config.Height
	}
	if w != g.width || h != g.height {
		g.width, g.height = w, h
		g.surface.Resize(w, h)
		g.dirty.Store(true)
	}
	return w, h
}

// Config returns the current configuration.
func (g *Game) Config() Config {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.config
}

// SetConfig updates colours and text size in place for hot reloads.
// thumbImage replaces the image thumb; nil keeps the teardrop.
func (g *Game) SetConfig(config Config, thumbImage *ebiten.Image) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.config = config
	g.text.SetFontSize(config.ThumbTextSize)
	g.canvas = NewEbitenCanvas(PaletteFromConfig(config), g.text, thumbImage)
	g.canvas.SetStats(g.stats)
	g.background = NewBackgroundRenderer(config.BackgroundColor)
	g.dirty.Store(true)
}

// Run starts the Ebiten game loop.
// This function blocks until the window is closed.
func (g *Game) Run() error {
	cfg := g.Config()
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetWindowSizeLimits(slider.MinSize, slider.MinSize, -1, -1)
	ebiten.SetScreenClearedEveryFrame(false)

	g.mu.Lock()
	g.running = true
	g.mu.Unlock()

	err := ebiten.RunGameWithOptions(g, &ebiten.RunGameOptions{
		ScreenTransparent: cfg.BackgroundColor.A < 255,
	})

	g.mu.Lock()
	g.running = false
	g.mu.Unlock()

	return err
}

// IsRunning returns whether the game loop is currently running.
func (g *Game) IsRunning() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.running
}
