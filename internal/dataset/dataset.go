package dataset

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"mailroom.app/triage/internal/text"
)

// Labels are binary: 1 = Produtivo, 0 = Improdutivo. The positive class is
// pinned to 1 for compatibility with existing model artifacts.
const (
	LabelUnproductive = 0
	LabelProductive   = 1
)

// Example is one labeled training record. Lives only for the duration of a
// training run.
type Example struct {
	Text  string
	Label int
}

type rawRecord struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// ParseLabel maps a raw label string to a binary label. Any string with the
// case-insensitive prefix "prod" is Produtivo; everything else is
// Improdutivo. The second return reports whether the label looked like one of
// the two known spellings; callers should log unrecognized labels since they
// usually mean a data-quality problem rather than a real negative example.
func ParseLabel(raw string) (int, bool) {
	lower := strings.ToLower(strings.TrimSpace(raw))
	if strings.HasPrefix(lower, "prod") {
		return LabelProductive, true
	}
	return LabelUnproductive, strings.HasPrefix(lower, "improd")
}

// Load reads a raw dataset file (a JSON array of {text, label} records),
// skips records with empty text or label, and anonymizes every kept text
// before it enters the corpus.
func Load(path string) ([]Example, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}

	var records []rawRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse dataset: %w", err)
	}

	examples := make([]Example, 0, len(records))
	for _, rec := range records {
		trimmed := strings.TrimSpace(rec.Text)
		if trimmed == "" || strings.TrimSpace(rec.Label) == "" {
			continue
		}

		label, recognized := ParseLabel(rec.Label)
		if !recognized {
			slog.Warn("unrecognized dataset label, mapping to Improdutivo",
				"label", rec.Label)
		}

		examples = append(examples, Example{
			Text:  text.Anonymize(trimmed),
			Label: label,
		})
	}

	slog.Info("dataset loaded", "path", path, "examples", len(examples))
	return examples, nil
}
