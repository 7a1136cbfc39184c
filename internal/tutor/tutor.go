package tutor

import "context"

// Message is one turn of a tutoring conversation.
type Message struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// Tutor answers a learner's message given the prior conversation.
// Implementations must always return usable text: remote failures become
// fallback responses, never errors surfaced to the conversation view.
type Tutor interface {
	Reply(ctx context.Context, userMessage string, history []Message) string
}
