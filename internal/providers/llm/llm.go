package llm

import "context"

// Role values for prompt turns.
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

type Message struct {
	Role    string
	Content string
}

// Provider is the completion API port. Complete returns the generated text
// for the given prompt turns, or an error classified into the app taxonomy
// (AUTH for rejected credentials, UPSTREAM for anything else).
type Provider interface {
	Complete(ctx context.Context, messages []Message) (string, error)
}
