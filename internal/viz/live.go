package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/faultslip/internal/friction"
)

const liveWindow = 300

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model plays back a precomputed run sample by sample.
type Model struct {
	series  *friction.Series
	dc      float64
	cursor  int
	running bool
}

func NewModel(series *friction.Series, dc float64) Model {
	return Model{series: series, dc: dc, cursor: 1, running: true}
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.cursor = 1
			m.running = true
		case "[":
			m.scrub(-10)
		case "]":
			m.scrub(10)
		}
	case TickMsg:
		if m.running && m.cursor < m.series.Len()-1 {
			m.cursor++
		}
		return m, tick()
	}
	return m, nil
}

func (m *Model) scrub(delta int) {
	m.running = false
	m.cursor += delta
	if m.cursor < 1 {
		m.cursor = 1
	}
	if m.cursor > m.series.Len()-1 {
		m.cursor = m.series.Len() - 1
	}
}

func (m Model) View() string {
	lo := 0
	if m.cursor > liveWindow {
		lo = m.cursor - liveWindow
	}
	window := m.series.Acc[lo : m.cursor+1]

	var graph string
	if len(window) > 1 {
		graph = asciigraph.Plot(window,
			asciigraph.Height(plotHeight),
			asciigraph.Width(plotWidth),
			asciigraph.Caption(fmt.Sprintf("%s vs %s", YLabel, XLabel)),
		)
	}

	status := "PLAYING"
	if !m.running {
		status = "PAUSED"
	}
	if m.cursor == m.series.Len()-1 {
		status = "DONE"
	}

	var s strings.Builder
	s.WriteString(headerStyle.Render(fmt.Sprintf("FAULTSLIP dc=%g um", m.dc)) + "\n")
	s.WriteString(status + "\n\n")
	s.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.2f s", m.series.Time[m.cursor])) + "\n")
	s.WriteString(labelStyle.Render("Mu") + valueStyle.Render(fmt.Sprintf("%.6f", m.series.Mu[m.cursor])) + "\n")
	s.WriteString(labelStyle.Render("Theta") + valueStyle.Render(fmt.Sprintf("%.6f", m.series.Theta[m.cursor])) + "\n")
	s.WriteString(labelStyle.Render("Acc") + valueStyle.Render(fmt.Sprintf("%.4f um/s^2", m.series.Acc[m.cursor])) + "\n")
	s.WriteString(labelStyle.Render("Sample") + valueStyle.Render(fmt.Sprintf("%d / %d", m.cursor, m.series.Len()-1)) + "\n")

	stats := statsStyle.Render(s.String())
	main := lipgloss.JoinHorizontal(lipgloss.Top, graphStyle.Render(graph), stats)
	return main + helpStyle.Render("\nSP:Pause R:Restart [ ]:Scrub Q:Quit")
}
