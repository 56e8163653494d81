package ui

import (
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// writeClipboard is replaced in tests
var writeClipboard = clipboard.WriteAll

func copyCmd(text, what string) tea.Cmd {
	return func() tea.Msg {
		return copyResultMsg{What: what, Err: writeClipboard(text)}
	}
}
