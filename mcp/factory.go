package mcp

import (
	"context"
	"fmt"

	"wpchat/config"
)

// ToolClient is implemented by both transports
type ToolClient interface {
	CallTool(ctx context.Context, toolName string, args map[string]any) (string, error)
	BaseURL() string
}

// NewFromConfig returns the transport selected in the configuration
func NewFromConfig(cfg *config.Config, version string) (ToolClient, error) {
	switch cfg.Transport {
	case config.TransportREST, "":
		return NewClient(cfg.BaseURL(), cfg.RequestTimeout)
	case config.TransportStreamable:
		return NewStreamableClient(cfg.BaseURL(), cfg.RequestTimeout, version)
	default:
		return nil, fmt.Errorf("unknown transport: %q", cfg.Transport)
	}
}
