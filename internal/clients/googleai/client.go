package googleai

import (
	"context"
	"fmt"
	"strings"

	"air-relatorios/internal/observability"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiClient answers single-turn prompts with a Gemini model.
type GeminiClient struct {
	apiKey string
	model  string
	logger *observability.Logger
}

func NewGeminiClient(apiKey, model string, logger *observability.Logger) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("Google AI API key is required")
	}
	return &GeminiClient{apiKey: apiKey, model: model, logger: logger}, nil
}

// Complete runs user under the system instruction and asks for a JSON answer.
func (g *GeminiClient) Complete(ctx context.Context, system, user string) (string, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "model", Value: g.model})

	c, err := genai.NewClient(ctx, option.WithAPIKey(g.apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create Gemini client: %w", err)
	}
	defer c.Close()

	model := c.GenerativeModel(g.model)
	model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(system)}}
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(user))
	if err != nil {
		g.logger.Error(ctx, "Gemini generation failed", err)
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini: no candidates returned")
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("gemini: unexpected response format")
	}
	return b.String(), nil
}
