package impl

import (
	"context"
	"testing"
	"time"

	"campus/internal/domain/entity"
	domainerrors "campus/internal/domain/errors"
	"campus/internal/domain/service"
	"campus/internal/errors"
	"campus/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCannedChat(t *testing.T) usecase.ChatUsecase {
	t.Helper()
	// No provider and no thinking delay: pure canned engine.
	return NewChatUsecase(nil, 0, time.Second, testLogger())
}

func startConversation(t *testing.T, chat usecase.ChatUsecase) string {
	t.Helper()

	conv, err := chat.StartConversation(context.Background())
	require.NoError(t, err)
	return conv.ID
}

func TestChatService_StartConversation_SeedsGreeting(t *testing.T) {
	chat := newCannedChat(t)

	conv, err := chat.StartConversation(context.Background())

	require.NoError(t, err)
	require.Len(t, conv.Messages, 1)
	assert.Equal(t, entity.ChatRoleAssistant, conv.Messages[0].Role)
	assert.Equal(t, greetingMessage, conv.Messages[0].Content)
}

func TestChatService_SendMessage_CannedBranches(t *testing.T) {
	chat := newCannedChat(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		message string
		want    string
	}{
		{name: "greeting branch", message: "hello", want: intentRules[5].Reply},
		{name: "fallback branch", message: "xyzzy", want: fallbackReply},
		{name: "food beats greeting", message: "hello, any food?", want: intentRules[0].Reply},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			convID := startConversation(t, chat)

			out, err := chat.SendMessage(ctx, usecase.SendMessageInput{
				ConversationID: convID,
				Message:        tt.message,
			})

			require.NoError(t, err)
			assert.Equal(t, tt.want, out.Reply.Content)
			assert.False(t, out.Fallback)
		})
	}
}

func TestChatService_SendMessage_AppendsUserBeforeReply(t *testing.T) {
	chat := newCannedChat(t)
	ctx := context.Background()
	convID := startConversation(t, chat)

	_, err := chat.SendMessage(ctx, usecase.SendMessageInput{
		ConversationID: convID,
		Message:        "  hello  ",
	})
	require.NoError(t, err)

	history, err := chat.History(ctx, convID)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, entity.ChatRoleAssistant, history[0].Role)
	assert.Equal(t, entity.ChatRoleUser, history[1].Role)
	assert.Equal(t, "hello", history[1].Content, "message is trimmed before append")
	assert.Equal(t, entity.ChatRoleAssistant, history[2].Role)
}

func TestChatService_SendMessage_EmptyMessage(t *testing.T) {
	chat := newCannedChat(t)
	convID := startConversation(t, chat)

	_, err := chat.SendMessage(context.Background(), usecase.SendMessageInput{
		ConversationID: convID,
		Message:        "   ",
	})

	assert.ErrorIs(t, err, domainerrors.ErrEmptyMessage)

	history, histErr := chat.History(context.Background(), convID)
	require.NoError(t, histErr)
	assert.Len(t, history, 1, "rejected message must not touch history")
}

func TestChatService_SendMessage_UnknownConversation(t *testing.T) {
	chat := newCannedChat(t)

	_, err := chat.SendMessage(context.Background(), usecase.SendMessageInput{
		ConversationID: "nope",
		Message:        "hello",
	})

	assert.ErrorIs(t, err, domainerrors.ErrConversationNotFound)
}

func TestChatService_SendMessage_BusyConversation(t *testing.T) {
	svc := NewChatUsecase(nil, 0, time.Second, testLogger()).(*chatService)
	convID := startConversation(t, svc)

	svc.mu.Lock()
	svc.conversations[convID].busy = true
	svc.mu.Unlock()

	_, err := svc.SendMessage(context.Background(), usecase.SendMessageInput{
		ConversationID: convID,
		Message:        "hello",
	})

	assert.ErrorIs(t, err, domainerrors.ErrConversationBusy)
}

func TestChatService_SendMessage_DelegatesToProvider(t *testing.T) {
	provider := &stubProvider{reply: "Hirakud Dam is 15 km away."}
	chat := NewChatUsecase(provider, 0, time.Second, testLogger())
	ctx := context.Background()
	convID := startConversation(t, chat)

	out, err := chat.SendMessage(ctx, usecase.SendMessageInput{
		ConversationID: convID,
		Message:        "how far is hirakud dam?",
	})

	require.NoError(t, err)
	assert.Equal(t, "Hirakud Dam is 15 km away.", out.Reply.Content)
	assert.False(t, out.Fallback)
	assert.Contains(t, provider.gotSystem, "Campus AI")

	// Context layout: greeting as the assistant's first turn, no duplicate
	// of the synthetic greeting, user message last.
	require.Len(t, provider.gotTurns, 2)
	assert.Equal(t, service.TurnRoleAssistant, provider.gotTurns[0].Role)
	assert.Equal(t, greetingMessage, provider.gotTurns[0].Text)
	assert.Equal(t, service.TurnRoleUser, provider.gotTurns[1].Role)
	assert.Equal(t, "how far is hirakud dam?", provider.gotTurns[1].Text)
}

func TestChatService_SendMessage_ProviderCarriesHistory(t *testing.T) {
	provider := &stubProvider{reply: "ok"}
	chat := NewChatUsecase(provider, 0, time.Second, testLogger())
	ctx := context.Background()
	convID := startConversation(t, chat)

	for _, msg := range []string{"hello", "and transport?"} {
		_, err := chat.SendMessage(ctx, usecase.SendMessageInput{
			ConversationID: convID,
			Message:        msg,
		})
		require.NoError(t, err)
	}

	// greeting + first user + first reply + second user
	require.Len(t, provider.gotTurns, 4)
	assert.Equal(t, "hello", provider.gotTurns[1].Text)
	assert.Equal(t, "ok", provider.gotTurns[2].Text)
	assert.Equal(t, service.TurnRoleAssistant, provider.gotTurns[2].Role)
	assert.Equal(t, "and transport?", provider.gotTurns[3].Text)
}

func TestChatService_SendMessage_FallsBackOnProviderError(t *testing.T) {
	provider := &stubProvider{err: errors.New("upstream down")}
	chat := NewChatUsecase(provider, 0, time.Second, testLogger())
	ctx := context.Background()
	convID := startConversation(t, chat)

	out, err := chat.SendMessage(ctx, usecase.SendMessageInput{
		ConversationID: convID,
		Message:        "where can I eat?",
	})

	require.NoError(t, err)
	assert.True(t, out.Fallback)
	assert.Contains(t, out.Reply.Content, intentRules[0].Reply)
	assert.Contains(t, out.Reply.Content, "unavailable")

	// The next turn goes back to the provider; a failed turn neither
	// wedges the conversation nor demotes it to canned replies for good.
	provider.err = nil
	provider.reply = "back online"
	out, err = chat.SendMessage(ctx, usecase.SendMessageInput{
		ConversationID: convID,
		Message:        "hello again",
	})
	require.NoError(t, err)
	assert.False(t, out.Fallback)
	assert.Equal(t, "back online", out.Reply.Content)
}
