// Package mcptest provides a fake whitepaper server and a fake tool caller
// for tests.
package mcptest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gorilla/mux"
	mcptypes "github.com/mark3labs/mcp-go/mcp"
)

// Call records one tool invocation
type Call struct {
	Name string
	Args map[string]any
}

// Responder produces the HTTP status and raw body for a tool call
type Responder func(call Call) (int, string)

// Server is an httptest server exposing POST /tools/call
type Server struct {
	*httptest.Server

	mu        sync.Mutex
	calls     []Call
	responder Responder
}

// NewServer starts a fake server. A nil responder answers every call with
// a single text item echoing the tool name.
func NewServer(t testing.TB, responder Responder) *Server {
	t.Helper()

	if responder == nil {
		responder = func(call Call) (int, string) {
			return http.StatusOK, TextResponse("result of " + call.Name)
		}
	}

	s := &Server{responder: responder}

	r := mux.NewRouter()
	r.HandleFunc("/tools/call", s.handleCall).
		Methods(http.MethodPost).
		Headers("Content-Type", "application/json")

	s.Server = httptest.NewServer(r)
	t.Cleanup(s.Close)

	return s
}

func (s *Server) handleCall(w http.ResponseWriter, r *http.Request) {
	var params mcptypes.CallToolParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		http.Error(w, "bad request body", http.StatusBadRequest)
		return
	}

	args, _ := params.Arguments.(map[string]any)
	call := Call{Name: params.Name, Args: args}

	s.mu.Lock()
	s.calls = append(s.calls, call)
	responder := s.responder
	s.mu.Unlock()

	status, body := responder(call)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

// Calls returns a copy of the recorded calls
func (s *Server) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Call, len(s.calls))
	copy(out, s.calls)
	return out
}

// TextResponse builds a {"content":[{"type":"text","text":...}]} body
func TextResponse(text string) string {
	data, _ := json.Marshal(map[string]any{
		"content": []map[string]string{{"type": "text", "text": text}},
	})
	return string(data)
}

// FakeCaller is an in-memory tool client
type FakeCaller struct {
	URL      string
	CallFunc func(ctx context.Context, toolName string, args map[string]any) (string, error)

	mu    sync.Mutex
	calls []Call
}

func NewFakeCaller(answer string, err error) *FakeCaller {
	return &FakeCaller{
		URL: "http://whitepaper.test",
		CallFunc: func(context.Context, string, map[string]any) (string, error) {
			return answer, err
		},
	}
}

func (f *FakeCaller) CallTool(ctx context.Context, toolName string, args map[string]any) (string, error) {
	f.mu.Lock()
	f.calls = append(f.calls, Call{Name: toolName, Args: args})
	f.mu.Unlock()

	return f.CallFunc(ctx, toolName, args)
}

func (f *FakeCaller) BaseURL() string {
	return f.URL
}

func (f *FakeCaller) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]Call, len(f.calls))
	copy(out, f.calls)
	return out
}
