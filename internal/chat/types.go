package chat

import "context"

// Role identifies the sender of a chat message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single message in a chat transcript. Transcripts live in
// memory only and are never persisted.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Engine answers a visitor's question. The last history entry is the
// question; earlier entries are prior conversation turns. The returned
// channel yields the answer as ordered text chunks and is closed when the
// answer is complete. Answer returns an error only for failures before any
// chunk can be produced (bad request, connection refused); mid-stream
// problems end the channel early instead.
type Engine interface {
	Answer(ctx context.Context, history []Message) (<-chan string, error)
	Name() string
}
