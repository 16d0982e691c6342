package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/gravtrail/internal/metrics"
	"github.com/san-kum/gravtrail/internal/physics"
	"github.com/san-kum/gravtrail/internal/sim"
	"github.com/san-kum/gravtrail/internal/trace"
)

const (
	width  = 80
	height = 24
)

type TickMsg time.Time

// Model is the Bubble Tea program driving a Simulator.
type Model struct {
	sim        *sim.Simulator
	energy     *metrics.Energy
	canvas     *Canvas
	interval   time.Duration
	running    bool
	showGhosts bool
	quitting   bool
	saveErr    error
}

// NewModel wraps s for terminal display at fps frames per second. energy
// may be nil, in which case the energy panel is omitted.
func NewModel(s *sim.Simulator, energy *metrics.Energy, fps int) Model {
	if fps <= 0 {
		fps = 60
	}
	return Model{
		sim:        s,
		energy:     energy,
		canvas:     NewCanvas(width, height),
		interval:   time.Second / time.Duration(fps),
		running:    true,
		showGhosts: true,
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles input and steps the simulation once per tick. Quitting
// persists traces before the program exits.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			m.saveErr = m.sim.Shutdown()
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "n":
			if !m.running {
				m.sim.Step()
			}
		case "g":
			m.showGhosts = !m.showGhosts
		}
	case TickMsg:
		if m.quitting {
			return m, nil
		}
		if m.running {
			m.sim.Step()
		}
		return m, m.tick()
	}
	return m, nil
}

// SaveErr returns the error from persisting traces on quit, if any.
func (m Model) SaveErr() error { return m.saveErr }

// project maps a screen-space point onto canvas dots.
func (m *Model) project(x, y float64) (int, int) {
	eng := m.sim.Engine()
	px := int(x / eng.Width * float64(m.canvas.DotsX()-1))
	py := int(y / eng.Height * float64(m.canvas.DotsY()-1))
	return px, py
}

// dotRadius scales a body radius from screen pixels to canvas dots.
func (m *Model) dotRadius(b *physics.Body) int {
	scale := float64(m.canvas.DotsX()) / m.sim.Engine().Width
	return int(math.Round(b.Radius() * scale))
}

func (m *Model) draw() {
	m.canvas.Clear()
	if m.showGhosts {
		for _, tr := range m.sim.Ghosts() {
			for _, p := range tr {
				x, y := m.project(p.X(), p.Y())
				m.canvas.Set(x, y, ghostInk)
			}
		}
	}
	for _, b := range m.sim.Bodies() {
		ink := Ink(b.Color)
		b.Trace.Each(func(_ int, p trace.Point) {
			x, y := m.project(p.X(), p.Y())
			m.canvas.Set(x, y, ink)
		})
	}
	for _, b := range m.sim.Bodies() {
		x, y := m.project(b.Pos.X, b.Pos.Y)
		m.canvas.FillCircle(x, y, m.dotRadius(b), Ink(b.Color))
	}
}

// View renders the canvas next to a stats panel.
func (m Model) View() string {
	if m.quitting {
		if m.saveErr != nil {
			return fmt.Sprintf("traces not saved: %v\n", m.saveErr)
		}
		return "traces saved\n"
	}

	m.draw()
	canvasView := canvasStyle.Render(m.canvas.Render())

	var s strings.Builder
	s.WriteString(headerStyle.Render("GRAVTRAIL") + "\n")
	if m.running {
		s.WriteString(runningStyle.Render("RUNNING") + "\n\n")
	} else {
		s.WriteString(pausedStyle.Render("PAUSED") + "\n\n")
	}

	s.WriteString(row("Frame", fmt.Sprintf("%d", m.sim.Frame())))
	s.WriteString(row("Bodies", fmt.Sprintf("%d", len(m.sim.Bodies()))))
	s.WriteString(row("Ghosts", fmt.Sprintf("%d (%d pts)", len(m.sim.Ghosts()), m.sim.Ghosts().Points())))
	for _, met := range m.sim.Metrics() {
		s.WriteString(row(met.Name(), fmt.Sprintf("%.3f", met.Value())))
	}

	if m.energy != nil {
		if hist := m.energy.History(); len(hist) > 1 {
			chart := asciigraph.Plot(hist, asciigraph.Height(5), asciigraph.Width(30), asciigraph.Caption("energy"))
			s.WriteString(graphStyle.Render(chart) + "\n")
		}
	}

	s.WriteString(helpStyle.Render("SP:Pause N:Step G:Ghosts Q:Save+Quit"))
	statsView := statsStyle.Render(s.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
}

func row(label, value string) string {
	return labelStyle.Render(label) + valueStyle.Render(value) + "\n"
}
