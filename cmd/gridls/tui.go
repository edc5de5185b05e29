package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var statusStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("240")).
	MarginTop(1)

// model re-fits the grid on every terminal resize. Fitting is cheap
// enough to run per resize event, which is the point of the demo.
type model struct {
	names []string
	width int
}

func runInteractive(names []string) error {
	p := tea.NewProgram(model{names: names}, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("interactive mode: %w", err)
	}
	return nil
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m model) View() string {
	if m.width == 0 {
		return "measuring terminal...\n"
	}

	grid := buildGrid(m.names)
	display, ok := grid.FitIntoWidth(m.width)
	if !ok {
		status := statusStyle.Render(fmt.Sprintf(
			"%d items do not fit in %d columns, one per line (q to quit)",
			len(m.names), m.width))
		return strings.Join(m.names, "\n") + "\n" + status
	}

	status := statusStyle.Render(fmt.Sprintf(
		"%d items, %d rows, %d of %d columns used (q to quit)",
		len(m.names), display.RowCount(), display.Width(), m.width))
	return display.String() + status
}
