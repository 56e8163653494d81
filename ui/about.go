package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"wpchat/config"
)

const Tagline = "Succinct Network Whitepaper Assistant"

var Features = []string{
	"Search the whitepaper, fetch sections and look up key concepts",
	"Plain-language questions are routed to the right whitepaper tool",
	"Quick actions for the most common questions",
	"Copy answers or the whole conversation to the clipboard",
}

func renderAboutModal(a AppView, width, height int) string {
	var sb strings.Builder

	titleStyle := lipgloss.NewStyle().
		Foreground(successColor).
		Bold(true)

	sb.WriteString(titleStyle.Render("wpchat"))
	sb.WriteString("\n")
	sb.WriteString(DimStyle.Render(Tagline))
	sb.WriteString("\n\n")

	for _, feature := range Features {
		sb.WriteString(DimStyle.Render("• " + feature))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")

	labelStyle := lipgloss.NewStyle().
		Foreground(accentColor).
		Bold(true)

	transport := config.TransportREST
	if a.dataModel.Config != nil && a.dataModel.Config.Transport != "" {
		transport = a.dataModel.Config.Transport
	}

	rows := [][2]string{
		{"Version", a.dataModel.Version},
		{"License", a.dataModel.License},
		{"Server", a.serverURL()},
		{"Transport", transport},
	}
	for _, row := range rows {
		sb.WriteString(labelStyle.Render(row[0] + ": "))
		sb.WriteString(DimStyle.Render(row[1]))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(DimStyle.Render(fmt.Sprintf("Press Esc or %s to close", a.kb.DisplayActionKey("about"))))

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(1, 2)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, boxStyle.Render(sb.String()))
}
