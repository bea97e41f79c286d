package openai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"air-relatorios/internal/clients/httpx"
	"air-relatorios/internal/observability"

	"github.com/openai/openai-go"
	openaiOption "github.com/openai/openai-go/option"
)

// ChatClient answers single-turn chat completions.
type ChatClient struct {
	apiKey string
	model  string
	logger *observability.Logger
}

func NewChatClient(apiKey, model string, logger *observability.Logger) (*ChatClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}
	return &ChatClient{apiKey: apiKey, model: model, logger: logger}, nil
}

// Complete sends system and user as one conversation and returns the first
// choice's text.
func (c *ChatClient) Complete(ctx context.Context, system, user string) (string, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "model", Value: c.model})

	client := openai.NewClient(openaiOption.WithAPIKey(c.apiKey))
	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
		Model: openai.ChatModel(c.model),
	})
	if err != nil {
		c.logger.Error(ctx, "OpenAI chat completion failed", err)
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return "", &httpx.UpstreamError{Status: apiErr.StatusCode, Body: apiErr.Message}
		}
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: no choices returned")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
