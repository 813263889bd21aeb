// Package ui renders elevation traces and transit times in the terminal.
package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-transit/internal/trace"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	summaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("60"))
)

// Model is the interactive elevation-trace view.
type Model struct {
	trace   *trace.Trace
	summary []string // pre-computed transit result lines
	width   int
	height  int
}

// New creates the trace view model.
func New(tr *trace.Trace, summary []string) Model {
	return Model{trace: tr, summary: summary}
}

// Init implements the Bubble Tea model interface.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	}
	return m, nil
}

// View renders the chart with the transit summary underneath.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder

	title := fmt.Sprintf("%s @ %s — elevation from %s UTC",
		m.trace.Source, m.trace.Site, m.trace.Start.UTC().Format("2006-01-02 15:04"))
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	chartH := m.height - len(m.summary) - 6
	if chartH < 8 {
		chartH = 8
	}
	b.WriteString(RenderChart(m.trace, m.width-2, chartH))
	b.WriteString("\n\n")

	for _, line := range m.summary {
		b.WriteString(summaryStyle.Render(line))
		b.WriteByte('\n')
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("q: quit"))

	return b.String()
}
