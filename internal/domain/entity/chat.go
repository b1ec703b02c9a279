// Package entity contains the core business objects of the project.
package entity

// ChatRole identifies the author of a chat message.
type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

// ChatMessage is a single utterance in a conversation. Content uses a
// minimal markup convention: text delimited by double asterisks renders
// emphasized.
type ChatMessage struct {
	ID      string   `json:"id"`
	Role    ChatRole `json:"role"`
	Content string   `json:"content"`
}

// Conversation is an append-only, session-scoped sequence of messages.
// The first message is always the assistant's fixed greeting; it is
// synthetic and excluded from the context sent to a generative provider.
type Conversation struct {
	ID       string        `json:"id"`
	Messages []ChatMessage `json:"messages"`
}
