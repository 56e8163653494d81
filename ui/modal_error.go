package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrorModal is a standalone program for errors that stop the chat from
// starting, e.g. an unreadable settings file or a bad server URL.
type ErrorModal struct {
	title   string
	message string
	width   int
	height  int
}

func NewErrorModal(title, message string) ErrorModal {
	return ErrorModal{
		title:   title,
		message: message,
	}
}

func (m ErrorModal) Init() tea.Cmd {
	return nil
}

func (m ErrorModal) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "enter", "esc", "ctrl+c", "q":
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m ErrorModal) View() string {
	// Too small for a box: one plain line the user can still read
	if m.width < 30 || m.height < 8 {
		return "wpchat cannot start. " + m.title + ": " +
			strings.ReplaceAll(m.message, "\n", " ") + " (Enter exits)"
	}

	boxWidth := min(m.width-6, 72)

	var sb strings.Builder
	sb.WriteString(ErrorStyle.Render("✗ " + m.title))
	sb.WriteString("\n\n")
	sb.WriteString(lipgloss.NewStyle().Width(boxWidth - 6).Render(m.message))
	sb.WriteString("\n\n")
	sb.WriteString(FormatFooter("Enter/Esc", "Exit wpchat"))

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(dangerColor).
		Padding(1, 2).
		Width(boxWidth)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, boxStyle.Render(sb.String()))
}
