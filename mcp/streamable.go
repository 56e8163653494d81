package mcp

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/client/transport"
	mcptypes "github.com/mark3labs/mcp-go/mcp"

	"wpchat/config"
)

// StreamablePath is the MCP endpoint used by the streamable transport
const StreamablePath = "/mcp"

// StreamableClient talks MCP over streamable HTTP. The session is opened on
// the first call and reused afterwards.
type StreamableClient struct {
	baseURL string
	timeout time.Duration
	version string

	mu     sync.Mutex
	client *client.Client
}

func NewStreamableClient(baseURL string, timeout time.Duration, version string) (*StreamableClient, error) {
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		return nil, fmt.Errorf("invalid server URL: %q", baseURL)
	}
	return &StreamableClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: timeout,
		version: version,
	}, nil
}

func (s *StreamableClient) BaseURL() string {
	return s.baseURL
}

func (s *StreamableClient) connect(ctx context.Context) (*client.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client != nil {
		return s.client, nil
	}

	var opts []transport.StreamableHTTPCOption
	if s.timeout > 0 {
		opts = append(opts, transport.WithHTTPTimeout(s.timeout))
	}

	mcpClient, err := client.NewStreamableHttpClient(s.baseURL+StreamablePath, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create MCP client: %w", err)
	}

	if err := mcpClient.Start(ctx); err != nil {
		_ = mcpClient.Close()
		return nil, fmt.Errorf("failed to start HTTP transport: %w", err)
	}

	initReq := mcptypes.InitializeRequest{
		Params: mcptypes.InitializeParams{
			ProtocolVersion: mcptypes.LATEST_PROTOCOL_VERSION,
			Capabilities:    mcptypes.ClientCapabilities{},
			ClientInfo: mcptypes.Implementation{
				Name:    "wpchat",
				Version: s.version,
			},
		},
	}

	if _, err := mcpClient.Initialize(ctx, initReq); err != nil {
		_ = mcpClient.Close()
		return nil, fmt.Errorf("failed to initialize MCP session: %w", err)
	}

	config.Log.Debug().Str("url", s.baseURL+StreamablePath).Msg("MCP session initialized")

	s.client = mcpClient
	return mcpClient, nil
}

// CallTool runs one tool call and returns the first text content
func (s *StreamableClient) CallTool(ctx context.Context, toolName string, args map[string]any) (string, error) {
	c, err := s.connect(ctx)
	if err != nil {
		return "", err
	}

	result, err := c.CallTool(ctx, mcptypes.CallToolRequest{
		Params: mcptypes.CallToolParams{
			Name:      toolName,
			Arguments: args,
		},
	})
	if err != nil {
		return "", fmt.Errorf("tool call %s failed: %w", toolName, err)
	}

	if result.IsError {
		return "", fmt.Errorf("tool %s reported an error: %s", toolName, firstText(result.Content))
	}

	return firstText(result.Content), nil
}

func (s *StreamableClient) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client == nil {
		return nil
	}
	err := s.client.Close()
	s.client = nil
	return err
}

func firstText(content []mcptypes.Content) string {
	if len(content) == 0 {
		return ""
	}
	switch tc := content[0].(type) {
	case mcptypes.TextContent:
		return tc.Text
	case *mcptypes.TextContent:
		return tc.Text
	}
	return ""
}
