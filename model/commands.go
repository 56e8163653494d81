package model

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"wpchat/config"
)

// SubmitCmd begins a submission right away and returns the command that
// performs the tool call. It returns nil for blank text.
func (m *Model) SubmitCmd(text string) tea.Cmd {
	turn, ok := m.Begin(text)
	if !ok {
		return nil
	}

	return func() tea.Msg {
		start := time.Now()
		answer, err := m.call(context.Background(), turn)
		config.Log.Debug().
			Str("placeholder", turn.PlaceholderID).
			Dur("elapsed", time.Since(start)).
			Bool("failed", err != nil).
			Msg("submission finished")
		return ToolResultMsg{Turn: turn, Answer: answer, Err: err}
	}
}

// HandleToolResult applies a finished call to the conversation and returns
// the message it appended, if any.
func (m *Model) HandleToolResult(msg ToolResultMsg) (Message, bool) {
	var applied bool
	if msg.Err != nil {
		applied = m.Fail(msg.Turn, msg.Err)
	} else {
		applied = m.Resolve(msg.Turn, msg.Answer)
	}
	if !applied {
		config.Log.Debug().Str("placeholder", msg.Turn.PlaceholderID).Msg("dropping stale tool result")
		return Message{}, false
	}
	return m.Messages[len(m.Messages)-1], true
}
