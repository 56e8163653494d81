package model

import (
	"context"
	"time"

	"wpchat/config"
)

// ToolCaller performs one remote tool call and returns the answer text
type ToolCaller interface {
	CallTool(ctx context.Context, toolName string, args map[string]any) (string, error)
	BaseURL() string
}

// Model owns the conversation. Only its methods mutate Messages; the UI
// reads them to render.
type Model struct {
	Config   *config.Config
	Client   ToolCaller
	Messages []Message

	// Application metadata
	Version string
	License string

	now   func() time.Time
	newID func(prefix string) string
}

// NewModel creates a Model holding only the welcome turn
func NewModel(cfg *config.Config, client ToolCaller, version, license string) *Model {
	m := &Model{
		Config:  cfg,
		Client:  client,
		Version: version,
		License: license,
		now:     time.Now,
		newID:   newMessageID,
	}
	m.Reset()
	return m
}
