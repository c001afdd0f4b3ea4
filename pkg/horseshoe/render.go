//go:build !noebiten

package horseshoe

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/opd-ai/go-horseshoe/internal/config"
	"github.com/opd-ai/go-horseshoe/internal/render"
)

// windowHost is the Ebiten window of a running slider.
type windowHost struct {
	game *render.Game
	log  Logger

	mu      sync.Mutex
	next    *config.Config
	title   string
	applier bool
}

func (w *windowHost) invalidate() {
	w.game.Invalidate()
}

// apply hands cfg to a background goroutine. A listener running inside the
// game's Update may trigger a reload, and Game.SetConfig would wait for that
// Update to return. Only the newest pending configuration is applied.
func (w *windowHost) apply(cfg *config.Config, title string) {
	w.mu.Lock()
	w.next, w.title = cfg, title
	if w.applier {
		w.mu.Unlock()
		return
	}
	w.applier = true
	w.mu.Unlock()
	go w.drain()
}

func (w *windowHost) drain() {
	for {
		w.mu.Lock()
		cfg, title := w.next, w.title
		w.next = nil
		if cfg == nil {
			w.applier = false
			w.mu.Unlock()
			return
		}
		w.mu.Unlock()

		img, err := loadThumbImage(cfg)
		if err != nil {
			w.log.Warn("thumb image not loaded", "path", cfg.Slider.ThumbImage, "error", err)
		}
		w.game.SetConfig(renderConfig(cfg, title), img)
	}
}

// renderConfig maps the file configuration onto the window configuration.
// A non-empty title overrides the configured one.
func renderConfig(cfg *config.Config, title string) render.Config {
	rc := render.DefaultConfig()
	if cfg.Window.Width > 0 {
		rc.Width = cfg.Window.Width
	}
	if cfg.Window.Height > 0 {
		rc.Height = cfg.Window.Height
	}
	rc.Title = cfg.Window.Title
	if title != "" {
		rc.Title = title
	}
	rc.Resizable = cfg.Window.Resizable
	rc.BackgroundColor = cfg.Style.BackgroundColor
	rc.ArcColor = cfg.Style.ArcColor
	rc.ThumbColor = cfg.Style.ThumbColor
	rc.ThumbTextColor = cfg.Style.ThumbTextColor
	if cfg.Style.ThumbTextSize > 0 {
		rc.ThumbTextSize = cfg.Style.ThumbTextSize
	}
	rc.ThumbImage = cfg.Slider.ThumbImage
	return rc
}

func loadThumbImage(cfg *config.Config) (*ebiten.Image, error) {
	if cfg.Slider.ThumbImage == "" {
		return nil, nil
	}
	return render.LoadThumbImage(cfg.Slider.ThumbImage)
}

// runWindow opens the window and blocks until it is closed or ctx is done.
func (s *sliderImpl) runWindow(ctx context.Context) error {
	cfg := s.Config()
	rc := renderConfig(&cfg, s.opts.WindowTitle)
	if err := rc.Validate(); err != nil {
		return fmt.Errorf("window config: %w", err)
	}
	img, err := loadThumbImage(&cfg)
	if err != nil {
		s.notifyError(fmt.Errorf("thumb image: %w", err))
	}

	game := render.NewGame(rc, s, img)
	game.SetContext(ctx)

	s.mu.Lock()
	s.host = &windowHost{game: game, log: s.log}
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.host = nil
		s.mu.Unlock()
	}()

	s.log.Debug("window opened", "width", rc.Width, "height", rc.Height, "title", rc.Title)
	if err := game.Run(); err != nil && !errors.Is(err, render.ErrGameTerminated) {
		return err
	}
	return nil
}
