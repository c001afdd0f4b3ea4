package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/opd-ai/go-horseshoe/internal/slider"
)

// Glyphs drawn for each role.
const (
	glyphTrack      = '░'
	glyphThumb      = '█'
	glyphTransition = '•'
	glyphImage      = '▒'
	glyphEmpty      = ' '
)

type cell struct {
	glyph rune
	role  slider.Role
	set   bool
}

// GridCanvas rasterizes slider frames into terminal cells. Each cell covers
// CellWidth x CellHeight slider pixels and is sampled at its centre.
type GridCanvas struct {
	Cols, Rows            int
	CellWidth, CellHeight int
	cells                 [][]cell
}

// NewGridCanvas creates a cols x rows grid.
func NewGridCanvas(cols, rows, cellWidth, cellHeight int) *GridCanvas {
	g := &GridCanvas{
		Cols:       cols,
		Rows:       rows,
		CellWidth:  cellWidth,
		CellHeight: cellHeight,
		cells:      make([][]cell, rows),
	}
	for i := range g.cells {
		g.cells[i] = make([]cell, cols)
	}
	return g
}

// PixelSize returns the slider size the grid covers.
func (g *GridCanvas) PixelSize() (w, h int) {
	return g.Cols * g.CellWidth, g.Rows * g.CellHeight
}

// CellCenter maps a cell to the slider pixel at its centre.
func (g *GridCanvas) CellCenter(col, row int) (x, y int) {
	return col*g.CellWidth + g.CellWidth/2, row*g.CellHeight + g.CellHeight/2
}

// CellAt maps a slider pixel to the cell containing it.
func (g *GridCanvas) CellAt(x, y float64) (col, row int) {
	return int(math.Floor(x / float64(g.CellWidth))), int(math.Floor(y / float64(g.CellHeight)))
}

// Clear empties every cell.
func (g *GridCanvas) Clear() {
	for i := range g.cells {
		for j := range g.cells[i] {
			g.cells[i][j] = cell{}
		}
	}
}

// Glyph returns the rune at a cell, or a space when it is empty or outside
// the grid.
func (g *GridCanvas) Glyph(col, row int) rune {
	if !g.inside(col, row) || !g.cells[row][col].set {
		return glyphEmpty
	}
	return g.cells[row][col].glyph
}

func (g *GridCanvas) inside(col, row int) bool {
	return col >= 0 && row >= 0 && col < g.Cols && row < g.Rows
}

func (g *GridCanvas) set(col, row int, r rune, role slider.Role) {
	if g.inside(col, row) {
		g.cells[row][col] = cell{glyph: r, role: role, set: true}
	}
}

// StrokeArc implements slider.Canvas. A cell is on the arc when its centre is
// within half the stroke width, or half a cell, of the ellipse.
func (g *GridCanvas) StrokeArc(bounds slider.Rect, startDeg, sweepDeg, width float64, role slider.Role) {
	if width <= 0 || sweepDeg == 0 {
		return
	}
	rx, ry := bounds.Width()/2, bounds.Height()/2
	if rx <= 0 || ry <= 0 {
		return
	}
	tol := math.Max(width/2, float64(max(g.CellWidth, g.CellHeight))/2)
	glyph := glyphTrack
	if role == slider.RoleTransition {
		glyph = glyphTransition
	}
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			x, y := g.CellCenter(col, row)
			dx, dy := float64(x)-bounds.CenterX(), float64(y)-bounds.CenterY()
			theta := math.Atan2(dy/ry, dx/rx)
			if !withinSweep(slider.ToDegrees(theta), startDeg, sweepDeg) {
				continue
			}
			onCurve := math.Hypot(rx*math.Cos(theta), ry*math.Sin(theta))
			if math.Abs(math.Hypot(dx, dy)-onCurve) <= tol {
				g.set(col, row, glyph, role)
			}
		}
	}
}

// withinSweep reports whether deg lies on the arc from start through sweep.
func withinSweep(deg, start, sweep float64) bool {
	if sweep < 0 {
		start += sweep
		sweep = -sweep
	}
	d := math.Mod(deg-start, 360)
	if d < 0 {
		d += 360
	}
	return d <= sweep
}

// FillPath implements slider.Canvas. Terminals have no shadow.
func (g *GridCanvas) FillPath(p slider.Path, _ float64, role slider.Role) {
	if len(p.Ops) == 0 {
		return
	}
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			x, y := g.CellCenter(col, row)
			if p.Contains(float64(x), float64(y)) {
				g.set(col, row, glyphThumb, role)
			}
		}
	}
}

// DrawText implements slider.Canvas. The text starts in the cell holding
// the baseline origin.
func (g *GridCanvas) DrawText(s string, x, y float64, role slider.Role) {
	col, row := g.CellAt(x, y)
	for _, r := range s {
		g.set(col, row, r, role)
		col++
	}
}

// DrawImage implements slider.Canvas with a shaded block.
func (g *GridCanvas) DrawImage(bounds slider.Rect) {
	c0, r0 := g.CellAt(bounds.Left, bounds.Top)
	c1, r1 := g.CellAt(bounds.Right, bounds.Bottom)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			g.set(col, row, glyphImage, slider.RoleThumb)
		}
	}
}

// Render joins the rows, colouring each cell with the style of its role.
func (g *GridCanvas) Render(styles Styles) string {
	var b strings.Builder
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			c := g.cells[row][col]
			if !c.set {
				b.WriteRune(glyphEmpty)
				continue
			}
			b.WriteString(styles.forRole(c.role).Render(string(c.glyph)))
		}
		if row < g.Rows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// String returns the grid without colour.
func (g *GridCanvas) String() string {
	var b strings.Builder
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			b.WriteRune(g.Glyph(col, row))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Styles colours the grid and the surrounding text.
type Styles struct {
	Track  lipgloss.Style
	Thumb  lipgloss.Style
	Label  lipgloss.Style
	Header lipgloss.Style
	Help   lipgloss.Style
	Graph  lipgloss.Style
}

func (s Styles) forRole(role slider.Role) lipgloss.Style {
	switch role {
	case slider.RoleTrack:
		return s.Track
	case slider.RoleThumb:
		return s.Thumb
	default:
		return s.Label
	}
}
