package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	mcptypes "github.com/mark3labs/mcp-go/mcp"
	"github.com/tidwall/gjson"

	"wpchat/config"
)

// ToolCallPath is where the REST transport posts tool invocations
const ToolCallPath = "/tools/call"

// maxResponseBytes bounds how much of a response body is read
const maxResponseBytes = 8 << 20

// Client calls whitepaper tools over the plain REST endpoint:
// POST {baseURL}/tools/call with {"name": ..., "arguments": {...}}.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	if baseURL == "" {
		baseURL = config.DefaultServerURL
	}
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		return nil, fmt.Errorf("invalid server URL: %q", baseURL)
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// CallTool performs one tool call and returns the text of the first content
// item. A well-formed response without content yields "" and no error.
func (c *Client) CallTool(ctx context.Context, toolName string, args map[string]any) (string, error) {
	if args == nil {
		args = map[string]any{}
	}

	body, err := json.Marshal(mcptypes.CallToolParams{
		Name:      toolName,
		Arguments: args,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode tool call: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+ToolCallPath, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	config.Log.Debug().
		Str("tool", toolName).
		RawJSON("body", body).
		Str("url", req.URL.String()).
		Msg("calling tool")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("tool call %s failed: %w", toolName, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	config.Log.Debug().
		Str("tool", toolName).
		Int("status", resp.StatusCode).
		Int("bytes", len(data)).
		Dur("elapsed", time.Since(start)).
		Msg("tool call finished")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &StatusError{Code: resp.StatusCode, Body: truncate(string(data), 200)}
	}

	return ExtractText(data)
}

// ExtractText pulls content[0].text out of a tool call response
func ExtractText(data []byte) (string, error) {
	if !gjson.ValidBytes(data) {
		return "", fmt.Errorf("invalid JSON in tool response")
	}
	return gjson.GetBytes(data, "content.0.text").String(), nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
