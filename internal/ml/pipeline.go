package ml

import (
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"
)

// Pipeline is the persisted classification artifact: a fitted vectorizer and
// a fitted classifier serialized together as one opaque blob. Written once by
// the offline trainer and treated as read-only by every consumer.
type Pipeline struct {
	Vectorizer *Vectorizer
	Model      *LogisticRegression
}

// Predict classifies one normalized document: 1 = Produtivo, 0 = Improdutivo.
func (p *Pipeline) Predict(normalized string) int {
	return p.Model.Predict(p.Vectorizer.Transform(normalized))
}

// SavePipeline gob-encodes the artifact, creating parent directories as
// needed.
func SavePipeline(path string, p *Pipeline) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create model dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create model file: %w", err)
	}
	defer f.Close()

	if err := gob.NewEncoder(f).Encode(p); err != nil {
		return fmt.Errorf("encode model: %w", err)
	}
	return nil
}

// LoadPipeline reads a previously saved artifact. A missing file is a normal,
// handled condition for callers (it triggers the keyword fallback), so the
// raw error is returned for the caller to log and absorb.
func LoadPipeline(path string) (*Pipeline, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open model file: %w", err)
	}
	defer f.Close()

	var p Pipeline
	if err := gob.NewDecoder(f).Decode(&p); err != nil {
		return nil, fmt.Errorf("decode model: %w", err)
	}
	if p.Vectorizer == nil || p.Model == nil {
		return nil, fmt.Errorf("model artifact incomplete")
	}
	return &p, nil
}
