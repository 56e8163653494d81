package model

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"wpchat/config"
	"wpchat/intent"
	"wpchat/mcp"
)

// NoAnswerText replaces a structurally empty answer
const NoAnswerText = "Sorry, I couldn't process that request."

// WelcomeID is the fixed ID of the greeting turn
const WelcomeID = "welcome-1"

// Turn is an outstanding submission: the classified intent and the
// placeholder that stands in for its answer.
type Turn struct {
	Text          string
	Intent        intent.Intent
	PlaceholderID string
}

func newMessageID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

// Reset drops the conversation and starts over with the welcome turn
func (m *Model) Reset() {
	m.Messages = []Message{{
		ID:        WelcomeID,
		Role:      RoleBot,
		Content:   WelcomeText,
		Timestamp: m.now(),
	}}
}

// InFlight reports whether a tool call is outstanding
func (m *Model) InFlight() bool {
	for _, msg := range m.Messages {
		if msg.Pending {
			return true
		}
	}
	return false
}

// Begin appends the user turn and a pending placeholder, then classifies the
// text. Blank text leaves the conversation untouched and returns false.
//
// Begin does not guard against a second submission while one is in flight;
// the caller disables input for that.
func (m *Model) Begin(text string) (Turn, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Turn{}, false
	}

	in := intent.Classify(text)

	now := m.now()
	m.Messages = append(m.Messages, Message{
		ID:        m.newID("user"),
		Role:      RoleUser,
		Content:   text,
		Timestamp: now,
	})

	placeholder := Message{
		ID:        m.newID("pending"),
		Role:      RoleBot,
		Content:   in.Tool.Label(),
		Timestamp: now,
		Pending:   true,
	}
	m.Messages = append(m.Messages, placeholder)

	config.Log.Debug().
		Str("text", text).
		Str("tool", in.Tool.String()).
		Interface("args", in.Args).
		Msg("submission classified")

	return Turn{Text: text, Intent: in, PlaceholderID: placeholder.ID}, true
}

// Resolve replaces the turn's placeholder with the answer. It returns false
// when the placeholder is gone, e.g. the conversation was reset meanwhile.
func (m *Model) Resolve(turn Turn, answer string) bool {
	if !m.removePlaceholder(turn.PlaceholderID) {
		return false
	}

	if strings.TrimSpace(answer) == "" {
		answer = NoAnswerText
	}

	m.Messages = append(m.Messages, Message{
		ID:        m.newID("bot"),
		Role:      RoleBot,
		Content:   answer,
		Timestamp: m.now(),
	})
	return true
}

// Fail replaces the turn's placeholder with an error turn whose text depends
// on the failure category.
func (m *Model) Fail(turn Turn, err error) bool {
	if !m.removePlaceholder(turn.PlaceholderID) {
		return false
	}

	category := mcp.Categorize(err)
	config.Log.Error().
		Err(err).
		Str("category", category.String()).
		Str("tool", turn.Intent.Tool.String()).
		Msg("tool call failed")

	m.Messages = append(m.Messages, Message{
		ID:        m.newID("error"),
		Role:      RoleBot,
		Content:   mcp.UserMessage(category, m.serverURL()),
		Timestamp: m.now(),
		Error:     true,
	})
	return true
}

// Submit runs a whole submission synchronously: one attempt, no retry.
// It returns false for blank text.
func (m *Model) Submit(ctx context.Context, text string) bool {
	turn, ok := m.Begin(text)
	if !ok {
		return false
	}

	answer, err := m.call(ctx, turn)
	if err != nil {
		m.Fail(turn, err)
		return true
	}
	m.Resolve(turn, answer)
	return true
}

func (m *Model) call(ctx context.Context, turn Turn) (string, error) {
	if m.Client == nil {
		return "", fmt.Errorf("no tool client configured")
	}
	return m.Client.CallTool(ctx, turn.Intent.Tool.String(), turn.Intent.Arguments())
}

func (m *Model) removePlaceholder(id string) bool {
	for i, msg := range m.Messages {
		if msg.ID == id && msg.Pending {
			m.Messages = append(m.Messages[:i], m.Messages[i+1:]...)
			return true
		}
	}
	return false
}

func (m *Model) serverURL() string {
	if m.Client != nil {
		return m.Client.BaseURL()
	}
	if m.Config != nil {
		return m.Config.BaseURL()
	}
	return config.DefaultServerURL
}

// SetRendered caches the rendered form of a message
func (m *Model) SetRendered(id, rendered string) {
	for i := range m.Messages {
		if m.Messages[i].ID == id {
			m.Messages[i].Rendered = rendered
			return
		}
	}
}

// LastBotMessage returns the newest settled bot turn, if any
func (m *Model) LastBotMessage() (Message, bool) {
	for i := len(m.Messages) - 1; i >= 0; i-- {
		msg := m.Messages[i]
		if msg.Role == RoleBot && !msg.Pending {
			return msg, true
		}
	}
	return Message{}, false
}

// Transcript renders the settled conversation as plain text
func (m *Model) Transcript() string {
	var b strings.Builder
	for _, msg := range m.Messages {
		if msg.Pending {
			continue
		}
		name := "Assistant"
		if msg.Role == RoleUser {
			name = "You"
		}
		fmt.Fprintf(&b, "[%s] %s:\n%s\n\n", msg.Timestamp.Format("15:04"), name, msg.Content)
	}
	return strings.TrimRight(b.String(), "\n") + "\n"
}
