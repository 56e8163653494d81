package mcp

import (
	"context"
	"net/http"
	"testing"
	"time"

	"wpchat/config"
	"wpchat/mcp/mcptest"
)

func TestClientCallTool(t *testing.T) {
	srv := mcptest.NewServer(t, func(call mcptest.Call) (int, string) {
		return http.StatusOK, mcptest.TextResponse("## Abstract\nThe Succinct Network...")
	})

	c, err := NewClient(srv.URL+"/", time.Second)
	if err != nil {
		t.Fatalf("NewClient() error: %v", err)
	}

	got, err := c.CallTool(context.Background(), "get_section", map[string]any{"section": "abstract"})
	if err != nil {
		t.Fatalf("CallTool() error: %v", err)
	}
	if got != "## Abstract\nThe Succinct Network..." {
		t.Errorf("CallTool() = %q", got)
	}

	calls := srv.Calls()
	if len(calls) != 1 {
		t.Fatalf("server saw %d calls, want 1", len(calls))
	}
	if calls[0].Name != "get_section" {
		t.Errorf("call name = %q, want get_section", calls[0].Name)
	}
	if calls[0].Args["section"] != "abstract" {
		t.Errorf("call args = %v", calls[0].Args)
	}
}

func TestClientSendsEmptyArgumentObject(t *testing.T) {
	srv := mcptest.NewServer(t, nil)

	c, err := NewClient(srv.URL, time.Second)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := c.CallTool(context.Background(), "list_sections", nil); err != nil {
		t.Fatalf("CallTool() error: %v", err)
	}

	calls := srv.Calls()
	if len(calls) != 1 {
		t.Fatalf("server saw %d calls, want 1", len(calls))
	}
	if calls[0].Args == nil || len(calls[0].Args) != 0 {
		t.Errorf("arguments = %v, want empty object", calls[0].Args)
	}
}

func TestClientResponses(t *testing.T) {
	tests := []struct {
		name         string
		status       int
		body         string
		want         string
		wantErr      bool
		wantCategory Category
	}{
		{
			name:   "first item only",
			status: http.StatusOK,
			body:   `{"content":[{"type":"text","text":"one"},{"type":"text","text":"two"}]}`,
			want:   "one",
		},
		{
			name:   "empty content",
			status: http.StatusOK,
			body:   `{"content":[]}`,
			want:   "",
		},
		{
			name:   "no content field",
			status: http.StatusOK,
			body:   `{"result":"ok"}`,
			want:   "",
		},
		{
			name:    "not json",
			status:  http.StatusOK,
			body:    `<html>oops</html>`,
			wantErr: true,
		},
		{
			name:         "server error",
			status:       http.StatusInternalServerError,
			body:         `{"error":"boom"}`,
			wantErr:      true,
			wantCategory: CategoryServer,
		},
		{
			name:         "bad gateway",
			status:       http.StatusBadGateway,
			body:         `bad gateway`,
			wantErr:      true,
			wantCategory: CategoryServer,
		},
		{
			name:         "not found",
			status:       http.StatusNotFound,
			body:         `{"error":"unknown tool"}`,
			wantErr:      true,
			wantCategory: CategoryGeneric,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := mcptest.NewServer(t, func(mcptest.Call) (int, string) {
				return tt.status, tt.body
			})

			c, err := NewClient(srv.URL, time.Second)
			if err != nil {
				t.Fatal(err)
			}

			got, err := c.CallTool(context.Background(), "search_whitepaper", map[string]any{"query": "SP1"})
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %q", got)
				}
				if tt.status != http.StatusOK && Categorize(err) != tt.wantCategory {
					t.Errorf("Categorize() = %s, want %s", Categorize(err), tt.wantCategory)
				}
				return
			}
			if err != nil {
				t.Fatalf("CallTool() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("CallTool() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClientTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := mcptest.NewServer(t, func(mcptest.Call) (int, string) {
		<-release
		return http.StatusOK, mcptest.TextResponse("late")
	})
	defer close(release)

	c, err := NewClient(srv.URL, 50*time.Millisecond)
	if err != nil {
		t.Fatal(err)
	}

	_, err = c.CallTool(context.Background(), "search_whitepaper", map[string]any{"query": "slow"})
	if err == nil {
		t.Fatal("expected timeout error")
	}
	if got := Categorize(err); got != CategoryTimeout {
		t.Errorf("Categorize(%v) = %s, want timeout", err, got)
	}
}

func TestClientConnectionRefused(t *testing.T) {
	srv := mcptest.NewServer(t, nil)
	url := srv.URL
	srv.Close()

	c, err := NewClient(url, time.Second)
	if err != nil {
		t.Fatal(err)
	}

	_, err = c.CallTool(context.Background(), "list_sections", nil)
	if err == nil {
		t.Fatal("expected connection error")
	}
	if got := Categorize(err); got != CategoryConnectivity {
		t.Errorf("Categorize(%v) = %s, want connectivity", err, got)
	}
}

func TestNewClientRejectsBadURL(t *testing.T) {
	if _, err := NewClient("localhost:3000", time.Second); err == nil {
		t.Error("expected error for URL without scheme")
	}

	c, err := NewClient("", time.Second)
	if err != nil {
		t.Fatalf("NewClient(\"\") error: %v", err)
	}
	if c.BaseURL() != config.DefaultServerURL {
		t.Errorf("BaseURL() = %q, want default", c.BaseURL())
	}
}

func TestNewFromConfig(t *testing.T) {
	cfg := config.Default()

	rest, err := NewFromConfig(cfg, "test")
	if err != nil {
		t.Fatalf("rest transport: %v", err)
	}
	if _, ok := rest.(*Client); !ok {
		t.Errorf("rest transport returned %T", rest)
	}

	cfg.Transport = config.TransportStreamable
	streamable, err := NewFromConfig(cfg, "test")
	if err != nil {
		t.Fatalf("streamable transport: %v", err)
	}
	if _, ok := streamable.(*StreamableClient); !ok {
		t.Errorf("streamable transport returned %T", streamable)
	}

	cfg.Transport = "smoke-signals"
	if _, err := NewFromConfig(cfg, "test"); err == nil {
		t.Error("expected error for unknown transport")
	}
}
