package config

import (
	"image/color"
	"math"

	"github.com/opd-ai/go-horseshoe/internal/slider"
)

// Default values for configuration options.
const (
	// DefaultWidth is the default window width in pixels.
	DefaultWidth = 480
	// DefaultHeight is the default window height in pixels.
	DefaultHeight = 480
	// DefaultTitle is the default window title.
	DefaultTitle = "go-horseshoe"
	// DefaultThumbTextSize is the default reading label size.
	DefaultThumbTextSize = 18.0
)

// Default colors.
var (
	// DefaultArcColor is the track color.
	DefaultArcColor = color.RGBA{R: 208, G: 208, B: 208, A: 255}
	// DefaultThumbColor is the teardrop fill color.
	DefaultThumbColor = color.RGBA{R: 72, G: 106, B: 176, A: 255}
	// DefaultThumbTextColor is the reading label color.
	DefaultThumbTextColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	// DefaultBackgroundColor is the window background.
	DefaultBackgroundColor = color.RGBA{R: 32, G: 32, B: 32, A: 255}
)

// DefaultConfig returns a Config with sensible default values.
// The slider geometry mirrors slider.DefaultConfig.
func DefaultConfig() Config {
	return Config{
		Slider: SliderConfig{
			Min:                   slider.DefaultMin,
			Max:                   slider.DefaultMax,
			ArcStart:              slider.DefaultArcStart,
			ArcSweep:              slider.DefaultArcSweep,
			StrokeWidth:           slider.DefaultStrokeWidth,
			ThumbRadius:           slider.DefaultThumbRadius,
			Padding:               slider.DefaultPadding,
			HitTolerance:          slider.DefaultHitTolerance,
			TransitionStrokeWidth: slider.DefaultTransitionStrokeWidth,
			Reading:               math.NaN(),
			Enabled:               true,
			ThumbVisible:          true,
		},
		Style: StyleConfig{
			ArcColor:        DefaultArcColor,
			ThumbColor:      DefaultThumbColor,
			ThumbTextColor:  DefaultThumbTextColor,
			BackgroundColor: DefaultBackgroundColor,
			ThumbTextSize:   DefaultThumbTextSize,
		},
		Window: WindowConfig{
			Width:     DefaultWidth,
			Height:    DefaultHeight,
			Title:     DefaultTitle,
			Resizable: true,
		},
		Logging: LoggingConfig{
			Level: LogLevelInfo,
		},
	}
}
