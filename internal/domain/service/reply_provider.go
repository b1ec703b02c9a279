// Package service defines capability interfaces the domain depends on.
// Concrete implementations live under internal/infra.
package service

import "context"

// TurnRole identifies the author of a conversation turn sent to a
// generative provider.
type TurnRole string

const (
	TurnRoleUser      TurnRole = "user"
	TurnRoleAssistant TurnRole = "assistant"
)

// Turn is a single entry of the bounded conversation context.
type Turn struct {
	Role TurnRole
	Text string
}

// ReplyProvider is the chatbot's only wire-level external interface: it
// receives the ordered conversation turns and returns a single text
// completion. Any error means the caller falls back to the canned engine
// for that turn.
type ReplyProvider interface {
	Complete(ctx context.Context, system string, turns []Turn) (string, error)
}
