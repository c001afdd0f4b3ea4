// Package render hosts the slider in an Ebiten window.
package render

import (
	"fmt"
	"image/color"

	"github.com/opd-ai/go-horseshoe/internal/slider"
)

// Config holds the rendering configuration options.
type Config struct {
	// Width is the initial window width in pixels.
	Width int
	// Height is the initial window height in pixels.
	Height int
	// Title is the window title.
	Title string
	// Resizable lets the user resize the window; the slider relayouts.
	Resizable bool
	// BackgroundColor is the window background color.
	BackgroundColor color.RGBA
	// ArcColor paints the track.
	ArcColor color.RGBA
	// ThumbColor fills the teardrop.
	ThumbColor color.RGBA
	// ThumbTextColor paints the reading label.
	ThumbTextColor color.RGBA
	// ThumbTextSize is the label size in pixels.
	ThumbTextSize float64
	// ThumbImage is an optional image file drawn instead of the teardrop.
	ThumbImage string
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return Config{
		Width:           480,
		Height:          480,
		Title:           "go-horseshoe",
		Resizable:       true,
		BackgroundColor: color.RGBA{R: 32, G: 32, B: 32, A: 255},
		ArcColor:        color.RGBA{R: 208, G: 208, B: 208, A: 255},
		ThumbColor:      color.RGBA{R: 72, G: 106, B: 176, A: 255},
		ThumbTextColor:  color.RGBA{R: 255, G: 255, B: 255, A: 255},
		ThumbTextSize:   18,
	}
}

// Validate checks if the Config has valid values.
func (c Config) Validate() error {
	if c.Width < slider.MinSize {
		return fmt.Errorf("width must be at least %d, got %d", slider.MinSize, c.Width)
	}
	if c.Height < slider.MinSize {
		return fmt.Errorf("height must be at least %d, got %d", slider.MinSize, c.Height)
	}
	if c.ThumbTextSize <= 0 {
		return fmt.Errorf("thumb text size must be positive, got %v", c.ThumbTextSize)
	}
	return nil
}

// Surface is the slider state a Game draws and feeds input to. Its methods
// may be called from the Ebiten goroutine and must be safe for that.
type Surface interface {
	// Resize lays the control out for a new window size.
	Resize(width, height int)
	// HandlePointer feeds one pointer sample and reports whether it was
	// consumed.
	HandlePointer(ev slider.PointerEvent) bool
	// Frame returns a snapshot of the control for drawing.
	Frame() slider.Frame
}
