package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"campus/internal/domain/entity"
	domainerrors "campus/internal/domain/errors"
	"campus/internal/domain/service"
	"campus/internal/usecase"
	"campus/internal/util"

	"github.com/google/uuid"
)

// systemPrompt scopes the delegated provider to campus topics.
const systemPrompt = "You are Campus AI, the assistant of a campus companion app for VSSUT Burla " +
	"(Veer Surendra Sai University of Technology, Odisha). You help students with food vendors, " +
	"transport options, places to visit, student services and salons near the campus. " +
	"Keep answers short, friendly and formatted as bullet lists where it helps. " +
	"If a question is outside campus life, say so briefly and steer back to campus topics."

// providerUnavailableNote is appended to a canned answer when the delegated
// provider fails mid-conversation.
const providerUnavailableNote = "\n\n_(The live assistant is unavailable right now, so this is an offline answer.)_"

type conversationState struct {
	messages []entity.ChatMessage
	// busy marks an in-flight turn. A conversation accepts one turn at a
	// time; the next submission is rejected until the reply lands.
	busy bool
}

type chatService struct {
	provider        service.ReplyProvider
	thinkingDelay   time.Duration
	providerTimeout time.Duration
	logger          *slog.Logger

	mu            sync.Mutex
	conversations map[string]*conversationState
}

// NewChatUsecase creates a new chat usecase instance. A nil provider selects
// canned replies for the whole session; the choice never changes
// mid-conversation.
func NewChatUsecase(
	provider service.ReplyProvider,
	thinkingDelay time.Duration,
	providerTimeout time.Duration,
	logger *slog.Logger,
) usecase.ChatUsecase {
	return &chatService{
		provider:        provider,
		thinkingDelay:   thinkingDelay,
		providerTimeout: providerTimeout,
		logger:          logger,
		conversations:   make(map[string]*conversationState),
	}
}

// StartConversation creates a conversation seeded with the fixed greeting.
func (s *chatService) StartConversation(ctx context.Context) (*entity.Conversation, error) {
	conv := &entity.Conversation{
		ID: uuid.New().String(),
		Messages: []entity.ChatMessage{{
			ID:      uuid.New().String(),
			Role:    entity.ChatRoleAssistant,
			Content: greetingMessage,
		}},
	}

	s.mu.Lock()
	s.conversations[conv.ID] = &conversationState{
		messages: append([]entity.ChatMessage(nil), conv.Messages...),
	}
	s.mu.Unlock()

	return conv, nil
}

// History returns a copy of the conversation transcript.
func (s *chatService) History(ctx context.Context, conversationID string) ([]entity.ChatMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, ok := s.conversations[conversationID]
	if !ok {
		return nil, domainerrors.ErrConversationNotFound
	}
	return append([]entity.ChatMessage(nil), conv.messages...), nil
}

// SendMessage appends the user turn synchronously, then produces the reply.
// The user message is in the history before any reply work starts, so the
// transcript stays causally ordered whatever the reply latency is.
func (s *chatService) SendMessage(ctx context.Context, input usecase.SendMessageInput) (*usecase.SendMessageOutput, error) {
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return nil, domainerrors.ErrEmptyMessage
	}

	userMsg := entity.ChatMessage{
		ID:      uuid.New().String(),
		Role:    entity.ChatRoleUser,
		Content: message,
	}

	s.mu.Lock()
	conv, ok := s.conversations[input.ConversationID]
	if !ok {
		s.mu.Unlock()
		return nil, domainerrors.ErrConversationNotFound
	}
	if conv.busy {
		s.mu.Unlock()
		return nil, domainerrors.ErrConversationBusy
	}
	conv.busy = true
	conv.messages = append(conv.messages, userMsg)
	turns := s.providerTurns(conv.messages)
	s.mu.Unlock()

	reply, fallback := s.reply(ctx, message, turns)

	assistantMsg := entity.ChatMessage{
		ID:      uuid.New().String(),
		Role:    entity.ChatRoleAssistant,
		Content: reply,
	}

	s.mu.Lock()
	conv.messages = append(conv.messages, assistantMsg)
	conv.busy = false
	s.mu.Unlock()

	return &usecase.SendMessageOutput{
		ConversationID: input.ConversationID,
		Reply:          assistantMsg,
		Fallback:       fallback,
	}, nil
}

// reply produces the assistant answer for one turn. With a provider
// configured it delegates and falls back to the canned classifier on
// failure; without one it answers from the rule table after the short
// simulated thinking delay.
func (s *chatService) reply(ctx context.Context, message string, turns []service.Turn) (string, bool) {
	if s.provider == nil {
		if s.thinkingDelay > 0 {
			select {
			case <-time.After(s.thinkingDelay):
			case <-ctx.Done():
			}
		}
		return cannedReply(message), false
	}

	callCtx := ctx
	if s.providerTimeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, s.providerTimeout)
		defer cancel()
	}

	start := time.Now()
	text, err := s.provider.Complete(callCtx, systemPrompt, turns)
	if err != nil {
		s.logger.WarnContext(ctx, "reply provider failed, answering offline",
			slog.Any("error", err),
			slog.String("elapsed", util.FormatDuration(time.Since(start))))
		return cannedReply(message) + providerUnavailableNote, true
	}
	return text, false
}

// providerTurns builds the delegated context: the fixed greeting as the
// assistant's first turn, then the prior history minus the synthetic
// greeting, ending with the just-appended user message.
func (s *chatService) providerTurns(messages []entity.ChatMessage) []service.Turn {
	turns := make([]service.Turn, 0, len(messages))
	turns = append(turns, service.Turn{Role: service.TurnRoleAssistant, Text: greetingMessage})
	for i, msg := range messages {
		if i == 0 && msg.Role == entity.ChatRoleAssistant {
			continue // synthetic greeting, already the first turn
		}
		role := service.TurnRoleUser
		if msg.Role == entity.ChatRoleAssistant {
			role = service.TurnRoleAssistant
		}
		turns = append(turns, service.Turn{Role: role, Text: msg.Content})
	}
	return turns
}
