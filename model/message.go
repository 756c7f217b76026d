package model

import "time"

// Role values understood by the chat completions endpoint.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// Message represents a single chat message in the conversation.
// Messages are immutable once created; their order within a session is
// chronological and is preserved verbatim on the wire.
type Message struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"-"`
}
