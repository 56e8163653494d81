package model

import "time"

type Role string

const (
	RoleUser Role = "user"
	RoleBot  Role = "bot"
)

// Message is one conversation turn
type Message struct {
	ID        string
	Role      Role
	Content   string
	Rendered  string // Cached terminal rendering, empty until rendered
	Timestamp time.Time
	Pending   bool // Placeholder shown while a tool call is outstanding
	Error     bool
}
