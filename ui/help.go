package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

func (a AppView) renderHelpModal(width, height int) string {
	kb := a.kb

	green := lipgloss.NewStyle().
		Bold(true).
		Foreground(successColor)

	title := green.Render("wpchat - Keyboard Shortcuts")

	blue := lipgloss.NewStyle().Foreground(accentColor)

	globalActions := lipgloss.JoinVertical(
		lipgloss.Left,
		blue.Render("## Global Actions"),
		fmt.Sprintf("• %-13s New chat", kb.DisplayActionKey("new_chat")),
		fmt.Sprintf("• %-13s Quick actions", kb.DisplayActionKey("quick_palette")),
		fmt.Sprintf("• %-13s About", kb.DisplayActionKey("about")),
		fmt.Sprintf("• %-13s Toggle this help", kb.DisplayActionKey("help")),
		fmt.Sprintf("• %-13s Quit", kb.DisplayActionKey("quit")),
	)

	quickActions := lipgloss.JoinVertical(
		lipgloss.Left,
		blue.Render("## Quick Actions"),
		fmt.Sprintf("• %-13s Overview (Abstract)", kb.DisplayActionKey("quick_action_1")),
		fmt.Sprintf("• %-13s Proof contests", kb.DisplayActionKey("quick_action_2")),
		fmt.Sprintf("• %-13s Search for SP1", kb.DisplayActionKey("quick_action_3")),
		fmt.Sprintf("• %-13s List all sections", kb.DisplayActionKey("quick_action_4")),
	)

	chatNavigation := lipgloss.JoinVertical(
		lipgloss.Left,
		blue.Render("## Chat Navigation"),
		fmt.Sprintf("• %-13s Scroll down 1 line", kb.DisplayActionKey("scroll_down")),
		fmt.Sprintf("• %-13s Scroll up 1 line", kb.DisplayActionKey("scroll_up")),
		fmt.Sprintf("• %-13s Half page down", kb.DisplayActionKey("half_page_down")),
		fmt.Sprintf("• %-13s Half page up", kb.DisplayActionKey("half_page_up")),
		fmt.Sprintf("• %-13s Full page down", kb.DisplayActionKey("page_down")),
		fmt.Sprintf("• %-13s Full page up", kb.DisplayActionKey("page_up")),
		fmt.Sprintf("• %-13s Jump to top", kb.DisplayActionKey("scroll_to_top")),
		fmt.Sprintf("• %-13s Jump to bottom", kb.DisplayActionKey("scroll_to_bottom")),
	)

	chatActions := lipgloss.JoinVertical(
		lipgloss.Left,
		blue.Render("## Chat Actions"),
		"• Enter         Send message",
		"• Alt+Enter     New line",
		fmt.Sprintf("• %-13s Clear input", kb.DisplayActionKey("clear_input")),
		fmt.Sprintf("• %-13s Copy last response", kb.DisplayActionKey("copy_last_response")),
		fmt.Sprintf("• %-13s Copy conversation", kb.DisplayActionKey("copy_conversation")),
	)

	column1 := lipgloss.JoinVertical(
		lipgloss.Left,
		globalActions,
		"",
		quickActions,
	)

	column2 := lipgloss.JoinVertical(
		lipgloss.Left,
		chatNavigation,
		"",
		chatActions,
	)

	columnStyle := lipgloss.NewStyle().Width(42).PaddingLeft(4)

	twoColumns := lipgloss.JoinHorizontal(
		lipgloss.Top,
		columnStyle.Render(column1),
		"  ",
		columnStyle.Render(column2),
	)

	footer := lipgloss.NewStyle().
		Foreground(dimColor).
		Render(fmt.Sprintf("Press %s or Esc to close this help", kb.DisplayActionKey("help")))

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		title,
		"",
		twoColumns,
		"",
		footer,
	)

	helpBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(1, 2).
		Width(96)

	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		helpBox.Render(content),
	)
}
