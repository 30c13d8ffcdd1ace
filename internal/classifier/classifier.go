package classifier

import (
	"context"
	"log/slog"
	"strings"

	"mailroom.app/triage/internal/domain"
	"mailroom.app/triage/internal/ml"
	"mailroom.app/triage/internal/text"
)

// Fixed reply for empty or whitespace-only input; no model or responder is
// consulted for it.
const emptyInputResponse = "Texto vazio ou inválido."

// Responder produces the suggested reply for a classified email.
type Responder interface {
	Suggest(ctx context.Context, category domain.Category, rawText string) string
}

// strategy is one tier of the classification chain. A strategy either
// resolves a category or returns an error so the next tier gets a chance.
type strategy interface {
	Name() string
	Classify(ctx context.Context, normalized string) (domain.Category, error)
}

// Classifier resolves a category through an ordered strategy chain (trained
// model, then keyword heuristic) and delegates reply generation to the
// responder. The chain always terminates with a category; no internal failure
// ever reaches the caller.
type Classifier struct {
	strategies []strategy
	responder  Responder
}

// New builds the classifier with the default two-tier chain. modelPath is
// where the offline trainer persists its artifact; its absence is a normal
// condition handled by moving down the chain.
func New(modelPath string, responder Responder) *Classifier {
	return &Classifier{
		strategies: []strategy{
			&modelStrategy{path: modelPath},
			keywordStrategy{},
		},
		responder: responder,
	}
}

// Classify categorizes raw email text and attaches a suggested reply. Empty
// input short-circuits to Improdutivo with a fixed notice.
func (c *Classifier) Classify(ctx context.Context, rawText string) domain.ClassificationResult {
	if strings.TrimSpace(rawText) == "" {
		return domain.ClassificationResult{
			Category: domain.CategoryUnproductive,
			Response: emptyInputResponse,
		}
	}

	normalized := text.Normalize(rawText)

	category := domain.CategoryUnproductive
	for _, s := range c.strategies {
		resolved, err := s.Classify(ctx, normalized)
		if err != nil {
			slog.WarnContext(ctx, "classification strategy failed, trying next tier",
				"strategy", s.Name(), "error", err)
			continue
		}
		slog.InfoContext(ctx, "email classified",
			"strategy", s.Name(), "category", resolved)
		category = resolved
		break
	}

	return domain.ClassificationResult{
		Category: category,
		Response: c.responder.Suggest(ctx, category, rawText),
	}
}

// modelStrategy predicts with the persisted trained pipeline. The artifact is
// immutable once written, so reloading per call is safe under concurrency;
// load or predict failures push resolution down to the keyword tier.
type modelStrategy struct {
	path string
}

func (s *modelStrategy) Name() string { return "model" }

func (s *modelStrategy) Classify(_ context.Context, normalized string) (domain.Category, error) {
	pipeline, err := ml.LoadPipeline(s.path)
	if err != nil {
		return "", err
	}

	if pipeline.Predict(normalized) == 1 {
		return domain.CategoryProductive, nil
	}
	return domain.CategoryUnproductive, nil
}

// keywordStrategy is the deterministic last tier: a keyword hit means
// Produtivo, otherwise the default negative. It never fails.
type keywordStrategy struct{}

func (keywordStrategy) Name() string { return "keywords" }

func (keywordStrategy) Classify(_ context.Context, normalized string) (domain.Category, error) {
	if matchesProductiveKeyword(normalized) {
		return domain.CategoryProductive, nil
	}
	return domain.CategoryUnproductive, nil
}
