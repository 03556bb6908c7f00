package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/metaballs/internal/compute"
	"github.com/san-kum/metaballs/internal/control"
	"github.com/san-kum/metaballs/internal/sim"
)

const (
	defaultWidth    = 60
	defaultHeight   = 20
	statsWidth      = 48
	historyCapacity = 600
)

type TickMsg time.Time

// Model is the terminal preview: it ticks the engine at 60 Hz and draws the
// field with the CPU backend instead of the GPU.
type Model struct {
	engine      *sim.Engine
	control     *control.Controller
	canvas      *Canvas
	sampler     *Sampler
	title       string
	energy      []float64
	reflections []int
	reflected   int
}

// NewModel wires a preview around engine. Quit keys end the bubbletea
// program rather than the process.
func NewModel(engine *sim.Engine, title string) *Model {
	m := &Model{
		engine:      engine,
		control:     control.New(engine.Settings),
		canvas:      NewCanvas(defaultWidth, defaultHeight),
		sampler:     NewSampler(compute.GetBackend()),
		title:       title,
		energy:      make([]float64, 0, historyCapacity),
		reflections: make([]int, 0, historyCapacity),
	}
	engine.AddObserver(m)
	return m
}

// OnTick records per-tick reflections for the sparkline.
func (m *Model) OnTick(s sim.Sample) {
	m.reflected += s.Reflections
	m.reflections = appendCapped(m.reflections, s.Reflections)
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m *Model) Init() tea.Cmd {
	return tick()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		ev := control.FromKey(msg.String())
		if ev == control.Quit {
			return m, tea.Quit
		}
		m.control.Handle(ev)
	case tea.WindowSizeMsg:
		w := msg.Width - statsWidth - 4
		h := msg.Height - 2
		if w > 0 && h > 0 {
			m.canvas.Resize(w, h)
		}
	case TickMsg:
		if m.engine.Step() {
			m.energy = appendCapped(m.energy, m.engine.Store.KineticEnergy())
		}
		return m, tick()
	}
	return m, nil
}

func (m *Model) View() string {
	e := m.engine
	m.sampler.Draw(m.canvas, e.Settings, e.Store, e.Box, e.Orbit)
	canvasView := canvasStyle.Render(m.canvas.String())

	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(m.title)) + "\n")
	if e.Settings.Paused {
		s.WriteString(statusPaused.Render("PAUSED") + "\n\n")
	} else {
		s.WriteString(statusRunning.Render("RUNNING") + "\n\n")
	}

	row := func(label, value string) {
		s.WriteString(labelStyle.Render(label) + valueStyle.Render(value) + "\n")
	}
	row("Mode", e.Settings.Mode.String())
	row("Frame", fmt.Sprintf("%d", e.Settings.Frame))
	row("Entities", fmt.Sprintf("%d / %d", e.Store.Active(), e.Store.Capacity()))
	row("Threshold", fmt.Sprintf("%g", e.Settings.Threshold))
	row("Energy", fmt.Sprintf("%.2f", e.Store.KineticEnergy()))
	row("Reflected", fmt.Sprintf("%d", m.reflected))
	row("Backend", compute.GetBackend().Name())

	if len(m.energy) > 1 {
		chart := asciigraph.Plot(m.energy, asciigraph.Height(5), asciigraph.Width(statsWidth-12), asciigraph.Caption("Kinetic energy"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}
	s.WriteString(Sparkline(m.reflections, statsWidth-8) + "\n")

	s.WriteString(helpStyle.Render("space/p pause · m/tab 2D/3D · q/esc quit"))

	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsStyle.Render(s.String()))
}

func appendCapped[T any](s []T, v T) []T {
	if len(s) == historyCapacity {
		copy(s, s[1:])
		s = s[:len(s)-1]
	}
	return append(s, v)
}
