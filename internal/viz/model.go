package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/dsviz/internal/bst"
	"github.com/san-kum/dsviz/internal/input"
)

const (
	width           = 80
	height          = 24
	panelWidth      = 40
	historyCapacity = 120
	// maxStep bounds dt after a stalled tick so animations do not jump.
	maxStep = 0.1
)

type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Model is the terminal front end: a braille rendering of the tree next to
// a status panel with the input line.
type Model struct {
	tree      *bst.Tree
	canvas    *Canvas
	surface   *Surface
	line      *input.Line
	theme     Theme
	history   []float64
	lastTick  time.Time
	paused    bool
	showHelp  bool
	lastValue string
}

func NewModel(tree *bst.Tree, themeName string) Model {
	canvas := NewCanvas(width, height)
	p := tree.Params()
	return Model{
		tree:    tree,
		canvas:  canvas,
		surface: NewSurface(canvas, p.Width, p.Height),
		line:    &input.Line{},
		theme:   GetTheme(themeName),
		history: make([]float64, 0, historyCapacity),
	}
}

func (m Model) Init() tea.Cmd { return tick() }

// Update handles input events and advances the tree.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg), m.quitOn(msg)
	case tea.WindowSizeMsg:
		w, h := msg.Width-panelWidth-4, msg.Height-2
		if w > 10 && h > 5 {
			p := m.tree.Params()
			m.canvas = NewCanvas(w, h)
			m.surface = NewSurface(m.canvas, p.Width, p.Height)
		}
	case TickMsg:
		now := time.Time(msg)
		dt := 1.0 / 60
		if !m.lastTick.IsZero() {
			dt = now.Sub(m.lastTick).Seconds()
		}
		m.lastTick = now
		if dt > maxStep {
			dt = maxStep
		}
		if !m.paused {
			m.step(dt)
		}
		return m, tick()
	}
	return m, nil
}

func (m Model) quitOn(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "q", "ctrl+c":
		return tea.Quit
	}
	return nil
}

func (m Model) handleKey(msg tea.KeyMsg) Model {
	switch msg.Type {
	case tea.KeyEnter:
		if v, ok := m.line.Submit(m.tree); ok {
			m.lastValue = fmt.Sprintf("%s %d", m.line.Mode(), v)
		}
	case tea.KeyTab:
		m.line.Toggle()
	case tea.KeyBackspace:
		m.line.Backspace()
	case tea.KeyEsc:
		m.line.Clear()
	case tea.KeySpace:
		m.paused = !m.paused
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			if m.line.Type(r) {
				continue
			}
			switch r {
			case 'i':
				m.line.SetMode(input.ModeInsert)
			case 's':
				m.line.SetMode(input.ModeSearch)
			case 't':
				m.theme = NextTheme(m.theme.Name)
			case '?':
				m.showHelp = !m.showHelp
			}
		}
	}
	return m
}

func (m *Model) step(dt float64) {
	m.tree.Update(dt)
	if len(m.history) == historyCapacity {
		m.history = m.history[1:]
	}
	m.history = append(m.history, float64(m.tree.Animating()))
}

func (m Model) draw() {
	m.canvas.Clear()
	m.tree.Draw(m.surface)
}

// View renders the TUI interface.
func (m Model) View() string {
	m.draw()
	canvasView := canvasStyle.Render(m.canvas.Render(m.theme.Apply))

	header := headerStyle.Foreground(m.theme.Primary)
	label := labelStyle.Foreground(m.theme.Muted)
	value := valueStyle.Foreground(m.theme.Text)

	var s strings.Builder
	s.WriteString(header.Render("BINARY SEARCH TREE") + "\n")

	kind, phase := m.tree.Traversal()
	status := strings.ToUpper(kind.String())
	if kind != bst.TraversalIdle {
		status += " (" + phase.String() + ")"
	}
	if m.paused {
		status = "PAUSED"
	}
	s.WriteString(status + "\n\n")

	s.WriteString(label.Render("Nodes") + value.Render(fmt.Sprintf("%d", m.tree.Len())) + "\n")
	s.WriteString(label.Render("Moving") + value.Render(fmt.Sprintf("%d", m.tree.Animating())) + "\n")
	s.WriteString(label.Render("Time") + value.Render(fmt.Sprintf("%.1fs", m.tree.Clock())) + "\n")
	if m.lastValue != "" {
		s.WriteString(label.Render("Last") + value.Render(m.lastValue) + "\n")
	}
	if msg := m.tree.Notification(); msg != "" {
		s.WriteString("\n" + noticeStyle.Foreground(m.theme.Warning).Render(msg) + "\n")
	}

	if len(m.history) > 1 {
		chart := asciigraph.Plot(m.history, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("moving nodes"))
		s.WriteString(graphStyle.Foreground(m.theme.Accent).Render(chart) + "\n")
	}

	prompt := fmt.Sprintf("%-6s > %s_", m.line.Mode(), m.line.Text())
	s.WriteString("\n" + inputStyle.BorderForeground(m.theme.Primary).Render(prompt) + "\n")
	s.WriteString(helpStyle.Render("ENTER:Submit TAB/I/S:Mode ESC:Clear\nSP:Pause T:Theme ?:Help Q:Quit"))

	statsView := statsStyle.Render(s.String())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
	if m.showHelp {
		return helpOverlay + "\n\n" + mainView
	}
	return mainView
}
