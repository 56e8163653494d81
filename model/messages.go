package model

// ToolResultMsg carries the outcome of a submission's tool call
type ToolResultMsg struct {
	Turn   Turn
	Answer string
	Err    error
}

type MarkdownRenderedMsg struct {
	MessageID string
	Rendered  string
}

type CopyResultMsg struct {
	What string // "response" or "conversation"
	Err  error
}

// FlashTickMsg clears the status flash with the same sequence number
type FlashTickMsg struct {
	Seq int
}
