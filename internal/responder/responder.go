package responder

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"mailroom.app/triage/common/llm"
	"mailroom.app/triage/internal/domain"
)

// Canonical fallback replies, one per category. These are the only strings
// ever returned when the generative service is unconfigured or fails.
const (
	templateProductive   = "Olá! Recebemos sua solicitação e nossa equipe irá analisar e retornar o mais breve possível. Obrigado."
	templateUnproductive = "Obrigado pela sua mensagem! No momento nenhuma ação é necessária. Abraços."
)

// Template returns the canonical fixed reply for a category.
func Template(category domain.Category) string {
	if category == domain.CategoryProductive {
		return templateProductive
	}
	return templateUnproductive
}

// Generator produces a suggested reply for a classified email. A nil llm
// client means the generative service is unconfigured; the generator then
// always answers with the fixed templates.
type Generator struct {
	llm llm.Client
}

func New(client llm.Client) *Generator {
	return &Generator{llm: client}
}

// Suggest asks the generative service for a short reply matching the category
// tone, with a single attempt. Any failure (or no client at all) degrades to
// the category template; partial or garbled external output is never
// surfaced.
func (g *Generator) Suggest(ctx context.Context, category domain.Category, rawText string) string {
	if g.llm == nil {
		return Template(category)
	}

	reply, err := g.llm.Generate(ctx, buildPrompt(category, rawText))
	if err != nil {
		slog.ErrorContext(ctx, "response generation failed, using template",
			"category", category, "error", err)
		return Template(category)
	}

	trimmed := strings.TrimSpace(reply)
	if trimmed == "" {
		slog.WarnContext(ctx, "generative service returned empty reply, using template",
			"category", category)
		return Template(category)
	}
	return trimmed
}

func buildPrompt(category domain.Category, rawText string) string {
	return fmt.Sprintf(`Classificação: %s
Email: %s

Com base na classificação e conteúdo do email acima, sugira uma resposta curta, educada e profissional em português.
A resposta deve ser direta e adequada ao contexto do email.

Se for um email produtivo (que requer ação), ofereça ajuda e indique que a equipe irá analisar.
Se for um email improdutivo (sem necessidade de ação), agradeça de forma cordial.`, category, rawText)
}
