package usecase

import (
	"context"

	"campus/internal/domain/entity"
)

// SendMessageInput carries one user turn to an existing conversation.
type SendMessageInput struct {
	ConversationID string `json:"conversationId" validate:"required"`
	Message        string `json:"message" validate:"required"`
}

// SendMessageOutput is the assistant reply produced for a turn.
type SendMessageOutput struct {
	ConversationID string             `json:"conversationId"`
	Reply          entity.ChatMessage `json:"reply"`
	// Fallback is true when a delegated provider failed and a canned
	// answer was substituted.
	Fallback bool `json:"fallback"`
}

// ChatUsecase defines the campus assistant conversation flow.
type ChatUsecase interface {
	// StartConversation creates a conversation seeded with the fixed
	// assistant greeting.
	StartConversation(ctx context.Context) (*entity.Conversation, error)

	// History returns the ordered transcript of a conversation.
	History(ctx context.Context, conversationID string) ([]entity.ChatMessage, error)

	// SendMessage appends the user turn, produces a reply, appends it and
	// returns it. A conversation handles one turn at a time.
	SendMessage(ctx context.Context, input SendMessageInput) (*SendMessageOutput, error)
}
