// Package llm wraps the external generative-language providers behind one
// Client interface. Callers hold a nil Client when no provider is configured
// and degrade to fixed template replies; nothing in this package retries.
package llm

import (
	"context"
	"errors"
	"fmt"
)

// Provider constants for client selection.
const (
	ProviderGemini    = "gemini"
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// Internal role vocabulary for conversation turns. Providers whose wire
// protocol uses different role names translate inside their own adapter.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ErrNotConfigured is returned by New when no API key is present.
var ErrNotConfigured = errors.New("llm: no API key configured")

// Message is one conversation turn in the internal role vocabulary.
type Message struct {
	Role    string
	Content string
}

// Client is a single-attempt generative-language client. Generate runs one
// prompt; Chat replays a turn history and submits a new message. Both block
// on network I/O bounded by the underlying SDK's timeout.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Chat(ctx context.Context, history []Message, message string) (string, error)
	Model() string
}

// Config holds provider selection and model-tuning parameters.
type Config struct {
	Provider    string // "gemini", "openai" or "anthropic"
	APIKey      string
	Model       string
	MaxTokens   int
	Temperature float64
	TopP        float64
	TopK        int
}

// New creates a Client for the configured provider, defaulting to Gemini
// when none is specified. An empty API key yields ErrNotConfigured so the
// caller can start in degraded mode instead of failing.
func New(ctx context.Context, cfg Config) (Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrNotConfigured
	}

	provider := cfg.Provider
	if provider == "" {
		provider = ProviderGemini
	}

	switch provider {
	case ProviderGemini:
		return newGeminiClient(ctx, cfg)
	case ProviderOpenAI:
		return newOpenAIClient(cfg)
	case ProviderAnthropic:
		return newAnthropicClient(cfg)
	default:
		return nil, fmt.Errorf("unsupported llm provider: %s", provider)
	}
}

func defaultMaxTokens(cfg Config) int {
	if cfg.MaxTokens > 0 {
		return cfg.MaxTokens
	}
	return 1024
}
