package mcp

import (
	"context"
	"errors"
	"fmt"
	"net"
	"regexp"
	"strings"
)

// serverStatusRegex finds a 5xx status in transport errors that carry it only
// as text, e.g. mcp-go's "request failed with status 503: ..."
var serverStatusRegex = regexp.MustCompile(`\bstatus:?\s+5\d\d\b`)

// StatusError is returned when the server answers with a non-2xx status
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP error! status: %d", e.Code)
}

// Category groups failures by what the user can do about them
type Category int

const (
	CategoryGeneric Category = iota
	CategoryConnectivity
	CategoryServer
	CategoryTimeout
)

func (c Category) String() string {
	switch c {
	case CategoryConnectivity:
		return "connectivity"
	case CategoryServer:
		return "server"
	case CategoryTimeout:
		return "timeout"
	default:
		return "generic"
	}
}

// Categorize inspects a transport error. Typed errors are checked first;
// wrapped errors from other layers fall back to their message text.
func Categorize(err error) Category {
	if err == nil {
		return CategoryGeneric
	}

	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		if statusErr.Code >= 500 {
			return CategoryServer
		}
		return CategoryGeneric
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return CategoryTimeout
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return CategoryTimeout
	}

	var opErr *net.OpError
	var dnsErr *net.DNSError
	if errors.As(err, &opErr) || errors.As(err, &dnsErr) {
		return CategoryConnectivity
	}

	msg := strings.ToLower(err.Error())
	switch {
	case serverStatusRegex.MatchString(msg):
		return CategoryServer
	case strings.Contains(msg, "connection refused"),
		strings.Contains(msg, "no such host"),
		strings.Contains(msg, "connection reset"),
		strings.Contains(msg, "network"):
		return CategoryConnectivity
	case strings.Contains(msg, "500"):
		return CategoryServer
	case strings.Contains(msg, "timeout"), strings.Contains(msg, "timed out"):
		return CategoryTimeout
	}

	return CategoryGeneric
}

// UserMessage is the text shown in the conversation for a failed call
func UserMessage(c Category, serverURL string) string {
	switch c {
	case CategoryConnectivity:
		return fmt.Sprintf("❌ Cannot connect to MCP server at %s. Please check if the server is running and the URL is correct.", serverURL)
	case CategoryServer:
		return "⚠️ Server error: Internal server error"
	case CategoryTimeout:
		return "⏱️ Request timed out. The server might be overloaded. Please try again."
	default:
		return "Sorry, I encountered an error while processing your request."
	}
}
