// Package llm implements the ReplyProvider capability over the Anthropic
// Messages API. The chatbot usecase treats any error from Complete as a
// signal to fall back to its canned classifier for that turn.
package llm

import (
	"context"
	"strings"

	"campus/internal/domain/service"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/pkg/errors"
)

const (
	defaultModel = "claude-haiku-4-5"

	// replyMaxTokens caps the assistant's reply length; campus answers are
	// short lists, not essays.
	replyMaxTokens = 1024
)

type anthropicProvider struct {
	client *anthropic.Client
	model  string
}

// NewAnthropicProvider creates a ReplyProvider backed by the Anthropic API.
func NewAnthropicProvider(apiKey, model string) service.ReplyProvider {
	if model == "" {
		model = defaultModel
	}

	c := anthropic.NewClient(option.WithAPIKey(apiKey))

	return &anthropicProvider{
		client: &c,
		model:  model,
	}
}

// Complete sends the ordered conversation turns and returns the single
// text completion.
func (p *anthropicProvider) Complete(ctx context.Context, system string, turns []service.Turn) (string, error) {
	messages := make([]anthropic.MessageParam, 0, len(turns))
	for _, turn := range turns {
		block := anthropic.NewTextBlock(turn.Text)
		if turn.Role == service.TurnRoleAssistant {
			messages = append(messages, anthropic.NewAssistantMessage(block))
		} else {
			messages = append(messages, anthropic.NewUserMessage(block))
		}
	}

	resp, err := p.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(p.model),
		MaxTokens: replyMaxTokens,
		System: []anthropic.TextBlockParam{
			{Text: system},
		},
		Messages: messages,
	})
	if err != nil {
		return "", errors.Wrap(err, "provider completion failed")
	}

	var reply string
	for i := range resp.Content {
		if resp.Content[i].Type == "text" {
			reply = strings.TrimSpace(resp.Content[i].Text)
			break
		}
	}
	if reply == "" {
		return "", errors.New("provider returned an empty completion")
	}

	return reply, nil
}
