package aiwebhook

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"air-relatorios/internal/clients/httpx"
)

// Prompts used when a chat model answers the webhook contract directly.
const (
	ClassifySystemPrompt = `Você classifica comentários de posts de influenciadores.
Recebe um JSON com "comments" e "categorias". Para cada comentário, avalie cada categoria na ordem dada.
Responda somente JSON no formato {"classificacoes":[{"comment_id":"<id>","categorias":{"<nome>":{"teste":true|false}}}]}.`

	InsightsSystemPrompt = `Você é analista de marketing de influência e escreve insights para uma página de relatório de campanha.
Recebe um JSON com "pagina" e "dados" (métricas agregadas e posts). Escreva de 2 a 4 insights objetivos em português,
destacando números com **negrito**. Tipos permitidos: sucesso, alerta, info, destaque, critico.
Responda somente JSON no formato {"insights":[{"tipo":"...","titulo":"...","texto":"..."}]}.`

	RegenerateSystemPrompt = `Você é analista de marketing de influência. Reescreva o insight em "insight_atual" usando os "dados"
da página indicada, mantendo o tema e melhorando clareza e precisão. Use **negrito** nos números.
Responda somente JSON no formato {"insights":[{"tipo":"...","titulo":"...","texto":"..."}]} com exatamente um insight.`
)

// Completer is a chat model that answers a system and a user message.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// ModelClient answers the webhook contract through a chat model instead of
// the HTTP webhook.
type ModelClient struct {
	model           Completer
	name            string
	timeout         time.Duration
	commentsTimeout time.Duration
}

func NewModelClient(name string, model Completer, timeout, commentsTimeout time.Duration) *ModelClient {
	return &ModelClient{model: model, name: name, timeout: timeout, commentsTimeout: commentsTimeout}
}

func (m *ModelClient) ask(ctx context.Context, timeout time.Duration, system string, payload any) ([]byte, error) {
	user, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	text, err := m.model.Complete(ctx, system, string(user))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) && !errors.Is(ctx.Err(), context.Canceled) {
			return nil, &httpx.TimeoutError{Op: m.name, Err: err}
		}
		return nil, err
	}
	return []byte(stripFences(text)), nil
}

func (m *ModelClient) ClassifyComments(ctx context.Context, req ClassifyRequest) ([]Classification, error) {
	req.Action = ActionClassifyComments
	body, err := m.ask(ctx, m.commentsTimeout, ClassifySystemPrompt, req)
	if err != nil {
		return nil, err
	}
	return ExtractClassifications(body)
}

func (m *ModelClient) GenerateInsights(ctx context.Context, req InsightRequest) ([]Insight, error) {
	system := InsightsSystemPrompt
	if req.Current != nil {
		system = RegenerateSystemPrompt
	}
	body, err := m.ask(ctx, m.timeout, system, req)
	if err != nil {
		return nil, err
	}
	return ExtractInsights(body)
}

func (m *ModelClient) RegenerateInsight(ctx context.Context, req InsightRequest, current Insight) (Insight, error) {
	req.Action = ActionRegenerateInsight
	req.Current = &current
	out, err := m.GenerateInsights(ctx, req)
	if err != nil {
		return Insight{}, err
	}
	if len(out) == 0 {
		return Insight{}, fmt.Errorf("no insight returned: %w", ErrMalformedResponse)
	}
	return out[0], nil
}
