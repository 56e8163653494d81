package mcptest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gorilla/mux"
	mcptypes "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// MCPServer is a streamable-HTTP MCP server at /mcp exposing whitepaper tools:
//
//	search_whitepaper  answers "results for <query>"
//	list_sections      answers a fixed section list
//	get_section        always reports a tool error
type MCPServer struct {
	*httptest.Server

	mu       sync.Mutex
	sessions int
}

// SectionList is the list_sections answer
const SectionList = "Abstract\nIntroduction\nProof Contests"

func NewMCPServer(t testing.TB) *MCPServer {
	t.Helper()

	s := &MCPServer{}

	hooks := &server.Hooks{}
	hooks.AddAfterInitialize(func(context.Context, any, *mcptypes.InitializeRequest, *mcptypes.InitializeResult) {
		s.mu.Lock()
		s.sessions++
		s.mu.Unlock()
	})

	srv := server.NewMCPServer("whitepaper-test", "1.0.0",
		server.WithToolCapabilities(false),
		server.WithHooks(hooks),
	)

	srv.AddTool(
		mcptypes.NewTool("search_whitepaper", mcptypes.WithString("query", mcptypes.Required())),
		func(_ context.Context, req mcptypes.CallToolRequest) (*mcptypes.CallToolResult, error) {
			return mcptypes.NewToolResultText("results for " + req.GetString("query", "")), nil
		},
	)
	srv.AddTool(
		mcptypes.NewTool("list_sections"),
		func(context.Context, mcptypes.CallToolRequest) (*mcptypes.CallToolResult, error) {
			return mcptypes.NewToolResultText(SectionList), nil
		},
	)
	srv.AddTool(
		mcptypes.NewTool("get_section", mcptypes.WithString("section", mcptypes.Required())),
		func(_ context.Context, req mcptypes.CallToolRequest) (*mcptypes.CallToolResult, error) {
			return mcptypes.NewToolResultError("section not found: " + req.GetString("section", "")), nil
		},
	)

	r := mux.NewRouter()
	r.Handle("/mcp", server.NewStreamableHTTPServer(srv))

	s.Server = httptest.NewServer(r)
	t.Cleanup(s.Close)

	return s
}

// Sessions is the number of completed MCP initializations
func (s *MCPServer) Sessions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions
}

// NewStatusServer answers every request on /mcp with status
func NewStatusServer(t testing.TB, status int) *httptest.Server {
	t.Helper()

	r := mux.NewRouter()
	r.HandleFunc("/mcp", func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, http.StatusText(status), status)
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}
