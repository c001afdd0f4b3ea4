// Package snapshot renders slider frames to PNG without a window, using the
// gg software rasterizer.
package snapshot

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/opd-ai/go-horseshoe/internal/slider"
)

// shadowRings is the number of strokes approximating the thumb shadow blur.
const shadowRings = 4

// ellipseStep is the sampling step, in degrees, for non-circular arcs.
const ellipseStep = 5.0

// Style holds the paints of a snapshot.
type Style struct {
	Background color.RGBA
	Track      color.RGBA
	Thumb      color.RGBA
	Label      color.RGBA
	TextSize   float64
	// ThumbImage is drawn in place of the teardrop when the frame asks for
	// it. Nil skips the image.
	ThumbImage image.Image
}

func (s Style) color(role slider.Role) color.NRGBA {
	switch role {
	case slider.RoleTrack:
		return color.NRGBA(s.Track)
	case slider.RoleThumb:
		return color.NRGBA(s.Thumb)
	default:
		return color.NRGBA(s.Label)
	}
}

// Canvas implements slider.Canvas on a gg.Context. Drawing errors are kept
// and reported by Err.
type Canvas struct {
	dc    *gg.Context
	style Style
	thumb *gg.ImageBuf
	err   error
}

// NewCanvas wraps dc. The font face is built from the embedded Go font.
func NewCanvas(dc *gg.Context, style Style) (*Canvas, error) {
	if dc == nil {
		return nil, errors.New("snapshot: nil context")
	}
	size := style.TextSize
	if size <= 0 {
		size = 18
	}
	source, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("snapshot: load font: %w", err)
	}
	dc.SetFont(source.Face(size))
	dc.SetLineJoin(gg.LineJoinRound)

	c := &Canvas{dc: dc, style: style}
	if style.ThumbImage != nil {
		c.thumb = gg.ImageBufFromImage(style.ThumbImage)
	}
	return c, nil
}

// Err returns the first drawing error.
func (c *Canvas) Err() error {
	return c.err
}

func (c *Canvas) keep(err error) {
	if err != nil && c.err == nil {
		c.err = err
	}
}

// StrokeArc implements slider.Canvas.
func (c *Canvas) StrokeArc(bounds slider.Rect, startDeg, sweepDeg, width float64, role slider.Role) {
	if width <= 0 || sweepDeg == 0 {
		return
	}
	c.dc.ClearPath()
	c.appendArc(bounds, startDeg, sweepDeg, true)
	c.dc.SetColor(c.style.color(role))
	c.dc.SetLineWidth(width)
	c.dc.SetLineCap(gg.LineCapSquare)
	c.keep(c.dc.Stroke())
}

// FillPath implements slider.Canvas.
func (c *Canvas) FillPath(p slider.Path, shadowRadius float64, role slider.Role) {
	if len(p.Ops) == 0 {
		return
	}
	if role == slider.RoleThumb && shadowRadius > 0 {
		s := slider.ShadowColor
		c.dc.SetLineCap(gg.LineCapRound)
		for i := shadowRings; i > 0; i-- {
			c.dc.ClearPath()
			c.appendPath(p)
			c.dc.SetColor(color.NRGBA{R: s.R, G: s.G, B: s.B, A: uint8(int(s.A) * (shadowRings + 1 - i) / (2 * shadowRings))})
			c.dc.SetLineWidth(2 * shadowRadius * float64(i) / shadowRings)
			c.keep(c.dc.Stroke())
		}
	}
	c.dc.ClearPath()
	c.appendPath(p)
	c.dc.SetColor(c.style.color(role))
	c.keep(c.dc.Fill())
}

// DrawText implements slider.Canvas.
func (c *Canvas) DrawText(s string, x, y float64, role slider.Role) {
	c.dc.SetColor(c.style.color(role))
	c.dc.DrawString(s, x, y)
}

// DrawImage implements slider.Canvas.
func (c *Canvas) DrawImage(bounds slider.Rect) {
	if c.thumb == nil || bounds.Width() <= 0 || bounds.Height() <= 0 {
		return
	}
	c.dc.DrawImageEx(c.thumb, gg.DrawImageOptions{
		X:         bounds.Left,
		Y:         bounds.Top,
		DstWidth:  bounds.Width(),
		DstHeight: bounds.Height(),
	})
}

func (c *Canvas) appendPath(p slider.Path) {
	first := true
	for _, op := range p.Ops {
		switch op.Kind {
		case slider.OpArc:
			c.appendArc(op.Bounds, op.Start, op.Sweep, first)
		case slider.OpLineTo:
			if first {
				c.dc.MoveTo(op.X, op.Y)
			} else {
				c.dc.LineTo(op.X, op.Y)
			}
		case slider.OpClose:
			c.dc.ClosePath()
		}
		first = false
	}
}

// appendArc adds an arc in sweep degrees. Circles use gg's Bezier arcs, which
// only run from the lower to the higher angle; other ellipses are sampled.
func (c *Canvas) appendArc(bounds slider.Rect, startDeg, sweepDeg float64, moveTo bool) {
	rx, ry := bounds.Width()/2, bounds.Height()/2
	from := bounds.PointAt(startDeg)
	if moveTo {
		c.dc.MoveTo(from.X, from.Y)
	} else {
		c.dc.LineTo(from.X, from.Y)
	}
	if math.Abs(rx-ry) < 1e-9 && sweepDeg > 0 {
		c.dc.DrawArc(bounds.CenterX(), bounds.CenterY(), rx, slider.ToRadians(startDeg), slider.ToRadians(startDeg+sweepDeg))
		return
	}
	n := int(math.Ceil(math.Abs(sweepDeg) / ellipseStep))
	for i := 1; i <= n; i++ {
		pt := bounds.PointAt(startDeg + sweepDeg*float64(i)/float64(n))
		c.dc.LineTo(pt.X, pt.Y)
	}
}

// Render paints f into a new image of the frame's size.
func Render(f slider.Frame, style Style) (image.Image, error) {
	if f.Width <= 0 || f.Height <= 0 {
		return nil, fmt.Errorf("snapshot: frame has no size (%dx%d)", f.Width, f.Height)
	}
	dc := gg.NewContext(f.Width, f.Height)
	defer dc.Close()

	if err := draw(dc, f, style); err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

// Encode paints f and writes it to w as PNG.
func Encode(w io.Writer, f slider.Frame, style Style) error {
	if f.Width <= 0 || f.Height <= 0 {
		return fmt.Errorf("snapshot: frame has no size (%dx%d)", f.Width, f.Height)
	}
	dc := gg.NewContext(f.Width, f.Height)
	defer dc.Close()

	if err := draw(dc, f, style); err != nil {
		return err
	}
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("snapshot: encode: %w", err)
	}
	return nil
}

// Save paints f and writes it to the PNG file at path.
func Save(path string, f slider.Frame, style Style) error {
	if f.Width <= 0 || f.Height <= 0 {
		return fmt.Errorf("snapshot: frame has no size (%dx%d)", f.Width, f.Height)
	}
	dc := gg.NewContext(f.Width, f.Height)
	defer dc.Close()

	if err := draw(dc, f, style); err != nil {
		return err
	}
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("snapshot: save %s: %w", path, err)
	}
	return nil
}

func draw(dc *gg.Context, f slider.Frame, style Style) error {
	if style.Background.A > 0 {
		dc.SetColor(color.NRGBA(style.Background))
		dc.DrawRectangle(0, 0, float64(f.Width), float64(f.Height))
		if err := dc.Fill(); err != nil {
			return fmt.Errorf("snapshot: background: %w", err)
		}
	}
	c, err := NewCanvas(dc, style)
	if err != nil {
		return err
	}
	slider.Paint(c, f)
	if err := c.Err(); err != nil {
		return fmt.Errorf("snapshot: draw: %w", err)
	}
	return nil
}
