// Package tui drives the slider from a terminal with bubbletea. The control
// is rasterized into character cells and mouse input is scaled back to
// slider pixels.
package tui

import (
	"fmt"
	"image/color"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/opd-ai/go-horseshoe/internal/config"
	"github.com/opd-ai/go-horseshoe/internal/slider"
)

// Default cell size in slider pixels. Terminal cells are about twice as tall
// as they are wide.
const (
	DefaultCellWidth  = 6
	DefaultCellHeight = 12
)

// Rows around the grid, and the reading history kept for the graph.
const (
	headerRows  = 2
	helpRows    = 2
	graphHeight = 4
	maxHistory  = 60
)

// Surface is the slider the model drives.
type Surface interface {
	Resize(width, height int)
	HandlePointer(ev slider.PointerEvent) bool
	Frame() slider.Frame
	Reading() float64
	SetReading(reading float64)
}

// Options configure a Model.
type Options struct {
	Title string
	// Step is the reading change of one arrow key press.
	Step       float64
	CellWidth  int
	CellHeight int
	// Styles defaults to DefaultStyles when nil.
	Styles *Styles
}

// DefaultStyles returns the styles used when none are configured.
func DefaultStyles() Styles {
	return Styles{
		Track:  lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Thumb:  lipgloss.NewStyle().Foreground(lipgloss.Color("68")),
		Label:  lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		Header: lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true),
		Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
		Graph:  lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
	}
}

// StylesFromConfig colours the grid with the configured paints.
func StylesFromConfig(s config.StyleConfig) Styles {
	st := DefaultStyles()
	st.Track = lipgloss.NewStyle().Foreground(hexColor(s.ArcColor))
	st.Thumb = lipgloss.NewStyle().Foreground(hexColor(s.ThumbColor))
	st.Label = lipgloss.NewStyle().Foreground(hexColor(s.ThumbTextColor)).Background(hexColor(s.ThumbColor)).Bold(true)
	return st
}

func hexColor(c color.RGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}

// Model is the bubbletea model of the terminal slider.
type Model struct {
	surface Surface
	opts    Options
	grid    *GridCanvas

	width, height int
	history       []float64
	dragging      bool
	quitting      bool
}

// New creates a model for surface. Zero options fall back to defaults.
func New(surface Surface, opts Options) Model {
	if opts.CellWidth <= 0 {
		opts.CellWidth = DefaultCellWidth
	}
	if opts.CellHeight <= 0 {
		opts.CellHeight = DefaultCellHeight
	}
	if opts.Step <= 0 {
		opts.Step = 1
	}
	if opts.Styles == nil {
		st := DefaultStyles()
		opts.Styles = &st
	}
	m := Model{
		surface: surface,
		opts:    opts,
		history: []float64{surface.Reading()},
	}
	m.layout(80, 24)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// layout sizes the grid to the largest square slider the terminal fits.
func (m *Model) layout(width, height int) {
	m.width, m.height = width, height
	rows := height - headerRows - helpRows - graphHeight - 2
	side := min(width*m.opts.CellWidth, rows*m.opts.CellHeight)
	if side < slider.MinSize {
		side = slider.MinSize
	}
	cols := side / m.opts.CellWidth
	rows = side / m.opts.CellHeight
	m.grid = NewGridCanvas(cols, rows, m.opts.CellWidth, m.opts.CellHeight)
	m.surface.Resize(m.grid.PixelSize())
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout(msg.Width, msg.Height)
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit
	case "left", "h", "down", "j":
		m.step(-m.opts.Step)
	case "right", "l", "up", "k":
		m.step(m.opts.Step)
	case "pgdown":
		m.step(-10 * m.opts.Step)
	case "pgup":
		m.step(10 * m.opts.Step)
	}
	return m, nil
}

func (m *Model) step(delta float64) {
	m.surface.SetReading(m.surface.Reading() + delta)
	m.record()
}

// handleMouse turns left button input into pointer events at the centre of
// the cell under the cursor. Rows above the grid are the header.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	x, y := m.grid.CellCenter(msg.X, msg.Y-headerRows)
	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.dragging = m.surface.HandlePointer(slider.Down(x, y))
	case msg.Action == tea.MouseActionMotion && m.dragging:
		m.surface.HandlePointer(slider.Move(x, y))
	case msg.Action == tea.MouseActionRelease && m.dragging:
		m.surface.HandlePointer(slider.Up(x, y))
		m.dragging = false
		m.record()
	}
}

// record appends the reading to the history when it changed.
func (m *Model) record() {
	r := m.surface.Reading()
	if n := len(m.history); n > 0 && m.history[n-1] == r {
		return
	}
	m.history = append(m.history, r)
	if len(m.history) > maxHistory {
		m.history = m.history[len(m.history)-maxHistory:]
	}
}

// History returns the recorded readings, oldest first.
func (m Model) History() []float64 {
	return append([]float64(nil), m.history...)
}

// Grid returns the grid the last View drew into.
func (m Model) Grid() *GridCanvas { return m.grid }

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	st := *m.opts.Styles
	m.grid.Clear()
	slider.Paint(m.grid, m.surface.Frame())

	var s strings.Builder
	title := m.opts.Title
	if title == "" {
		title = "horseshoe"
	}
	s.WriteString(st.Header.Render(strings.ToUpper(title)))
	s.WriteString(fmt.Sprintf("  %s\n\n", slider.FormatReading(m.surface.Reading())))
	s.WriteString(m.grid.Render(st))
	s.WriteString("\n\n")
	if len(m.history) > 1 {
		chart := asciigraph.Plot(m.history,
			asciigraph.Height(graphHeight),
			asciigraph.Width(max(m.grid.Cols-10, 10)),
			asciigraph.Caption("readings"))
		s.WriteString(st.Graph.Render(chart))
		s.WriteString("\n")
	}
	s.WriteString(st.Help.Render("drag the thumb • ←/→ step • pgup/pgdn ×10 • q quit"))
	return s.String()
}

// Run starts a full screen program with mouse tracking and blocks until it
// exits.
func Run(surface Surface, opts Options) error {
	p := tea.NewProgram(New(surface, opts), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
