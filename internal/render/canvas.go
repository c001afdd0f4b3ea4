package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/opd-ai/go-horseshoe/internal/slider"
)

// emptySubImage is the white source texture for solid DrawTriangles fills.
var emptySubImage = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img.SubImage(img.Bounds().Inset(1)).(*ebiten.Image)
}()

// Palette holds the colours a canvas paints each role with.
type Palette struct {
	Track color.RGBA
	Thumb color.RGBA
	Label color.RGBA
}

// PaletteFromConfig extracts the palette of a render Config.
func PaletteFromConfig(c Config) Palette {
	return Palette{Track: c.ArcColor, Thumb: c.ThumbColor, Label: c.ThumbTextColor}
}

// color returns the paint for a role. The transition arc uses the label
// colour.
func (p Palette) color(role slider.Role) color.RGBA {
	switch role {
	case slider.RoleTrack:
		return p.Track
	case slider.RoleThumb:
		return p.Thumb
	default:
		return p.Label
	}
}

// EbitenCanvas draws slider frames onto an Ebiten image.
type EbitenCanvas struct {
	screen     *ebiten.Image
	palette    Palette
	text       *TextRenderer
	thumbImage *ebiten.Image
	antialias  bool
	stats      *RenderStats
}

// NewEbitenCanvas creates a canvas. text and thumbImage may be nil; labels
// and the image thumb are then skipped.
func NewEbitenCanvas(palette Palette, text *TextRenderer, thumbImage *ebiten.Image) *EbitenCanvas {
	return &EbitenCanvas{
		palette:    palette,
		text:       text,
		thumbImage: thumbImage,
		antialias:  true,
		stats:      NewRenderStats(),
	}
}

// SetStats shares a stats collector with the canvas.
func (ec *EbitenCanvas) SetStats(stats *RenderStats) {
	if stats != nil {
		ec.stats = stats
	}
}

// Stats returns the canvas counters.
func (ec *EbitenCanvas) Stats() *RenderStats {
	return ec.stats
}

// SetScreen sets the image subsequent calls draw on.
func (ec *EbitenCanvas) SetScreen(screen *ebiten.Image) {
	ec.screen = screen
}

// StrokeArc implements slider.Canvas.
func (ec *EbitenCanvas) StrokeArc(bounds slider.Rect, startDeg, sweepDeg, width float64, role slider.Role) {
	if ec.screen == nil || width <= 0 || sweepDeg == 0 {
		return
	}
	var path vector.Path
	appendArc(&path, bounds, startDeg, sweepDeg, true)
	ec.stroke(&path, width, vector.LineCapSquare, ec.palette.color(role))
}

// FillPath implements slider.Canvas. The shadow is a soft ring of
// decreasing alpha around the outline.
func (ec *EbitenCanvas) FillPath(p slider.Path, shadowRadius float64, role slider.Role) {
	if ec.screen == nil || len(p.Ops) == 0 {
		return
	}
	path := toVectorPath(p)
	if role == slider.RoleThumb && shadowRadius > 0 {
		const rings = 4
		shadow := slider.ShadowColor
		for i := rings; i > 0; i-- {
			c := color.RGBA{
				R: shadow.R,
				G: shadow.G,
				B: shadow.B,
				A: uint8(int(shadow.A) * (rings + 1 - i) / (2 * rings)),
			}
			ec.stroke(path, 2*shadowRadius*float64(i)/rings, vector.LineCapRound, c)
		}
	}

	vertices, indices := path.AppendVerticesAndIndicesForFilling(nil, nil)
	setVertexColors(vertices, ec.palette.color(role))
	ec.screen.DrawTriangles(vertices, indices, emptySubImage, &ebiten.DrawTrianglesOptions{
		AntiAlias: ec.antialias,
		FillRule:  ebiten.FillRuleNonZero,
	})
	ec.stats.RecordDrawCall(len(vertices))
}

// DrawText implements slider.Canvas.
func (ec *EbitenCanvas) DrawText(s string, x, y float64, role slider.Role) {
	if ec.screen == nil || ec.text == nil {
		return
	}
	ec.text.DrawText(ec.screen, s, x, y, ec.palette.color(role))
	ec.stats.RecordTextDraw()
}

// DrawImage implements slider.Canvas.
func (ec *EbitenCanvas) DrawImage(bounds slider.Rect) {
	if ec.screen == nil {
		return
	}
	drawImageInto(ec.screen, ec.thumbImage, bounds.Left, bounds.Top, bounds.Width(), bounds.Height())
}

func (ec *EbitenCanvas) stroke(path *vector.Path, width float64, lineCap vector.LineCap, c color.RGBA) {
	opts := &vector.StrokeOptions{
		Width:    float32(width),
		LineCap:  lineCap,
		LineJoin: vector.LineJoinRound,
	}
	vertices, indices := path.AppendVerticesAndIndicesForStroke(nil, nil, opts)
	setVertexColors(vertices, c)
	ec.screen.DrawTriangles(vertices, indices, emptySubImage, &ebiten.DrawTrianglesOptions{
		AntiAlias: ec.antialias,
	})
	ec.stats.RecordDrawCall(len(vertices))
}

func setVertexColors(vertices []ebiten.Vertex, c color.RGBA) {
	r := float32(c.R) / 255
	g := float32(c.G) / 255
	b := float32(c.B) / 255
	a := float32(c.A) / 255
	for i := range vertices {
		vertices[i].SrcX = 1
		vertices[i].SrcY = 1
		vertices[i].ColorR = r
		vertices[i].ColorG = g
		vertices[i].ColorB = b
		vertices[i].ColorA = a
	}
}

// toVectorPath converts a slider outline into an Ebiten path.
func toVectorPath(p slider.Path) *vector.Path {
	var path vector.Path
	started := false
	for _, op := range p.Ops {
		switch op.Kind {
		case slider.OpArc:
			appendArc(&path, op.Bounds, op.Start, op.Sweep, !started)
			started = true
		case slider.OpLineTo:
			if started {
				path.LineTo(float32(op.X), float32(op.Y))
			} else {
				path.MoveTo(float32(op.X), float32(op.Y))
				started = true
			}
		case slider.OpClose:
			path.Close()
		}
	}
	return &path
}

// appendArc adds the arc of the ellipse inscribed in bounds. Sweep degrees
// are clockwise on screen, which is Ebiten's Clockwise direction. Circles
// use Path.Arc; other ellipses are sampled.
func appendArc(path *vector.Path, bounds slider.Rect, startDeg, sweepDeg float64, move bool) {
	start := bounds.PointAt(startDeg)
	if move {
		path.MoveTo(float32(start.X), float32(start.Y))
	}

	if math.Abs(bounds.Width()-bounds.Height()) < 1e-6 {
		dir := vector.Clockwise
		if sweepDeg < 0 {
			dir = vector.CounterClockwise
		}
		a0 := slider.ToRadians(startDeg)
		a1 := slider.ToRadians(startDeg + sweepDeg)
		path.Arc(float32(bounds.CenterX()), float32(bounds.CenterY()), float32(bounds.Width()/2), float32(a0), float32(a1), dir)
		return
	}

	n := int(math.Ceil(math.Abs(sweepDeg) / 5))
	for i := 1; i <= n; i++ {
		pt := bounds.PointAt(startDeg + sweepDeg*float64(i)/float64(n))
		path.LineTo(float32(pt.X), float32(pt.Y))
	}
}
