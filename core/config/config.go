package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Env   string
	Port  string
	OTel  OTelConfig
	LLM   LLMConfig
	Model ModelConfig
}

type OTelConfig struct {
	Endpoint       string
	Headers        string
	ServiceName    string
	ServiceVersion string
}

// LLMConfig selects and tunes the external generative-language service.
type LLMConfig struct {
	Provider    string // "gemini", "openai" or "anthropic"
	APIKey      string
	Model       string
	MaxTokens   int
	Temperature float64
	TopP        float64
	TopK        int
}

// ModelConfig locates the offline-trained artifacts. The model file may be
// absent at runtime; the classifier treats that as a normal condition.
type ModelConfig struct {
	Path        string
	MetricsPath string
	DatasetPath string
	Seed        int64
}

// Load reads configuration from environment variables. In development a .env
// file is loaded first if present.
func Load() Config {
	if getEnv("TRIAGE_ENV", "development") == "development" {
		_ = godotenv.Load(".env")
	}

	return Config{
		Env:  getEnv("TRIAGE_ENV", "development"),
		Port: getEnv("PORT", "8000"),
		OTel: OTelConfig{
			Endpoint:       getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
			Headers:        getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""),
			ServiceName:    getEnv("OTEL_SERVICE_NAME", "triage"),
			ServiceVersion: getEnv("OTEL_SERVICE_VERSION", "dev"),
		},
		LLM: LLMConfig{
			Provider:    getEnv("LLM_PROVIDER", "gemini"),
			APIKey:      getEnv("GOOGLE_API_KEY", getEnv("LLM_API_KEY", "")),
			Model:       getEnv("LLM_MODEL", "gemini-1.5-flash"),
			MaxTokens:   getEnvInt("LLM_MAX_TOKENS", 1024),
			Temperature: getEnvFloat("LLM_TEMPERATURE", 0.7),
			TopP:        getEnvFloat("LLM_TOP_P", 0.95),
			TopK:        getEnvInt("LLM_TOP_K", 40),
		},
		Model: ModelConfig{
			Path:        getEnv("MODEL_PATH", "models/model.gob"),
			MetricsPath: getEnv("METRICS_PATH", "metrics/test_metrics.json"),
			DatasetPath: getEnv("DATASET_PATH", "sample_emails/dataset.json"),
			Seed:        int64(getEnvInt("SPLIT_SEED", 42)),
		},
	}
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c OTelConfig) Enabled() bool {
	return c.Endpoint != ""
}

// Enabled reports whether the generative service is configured. When false,
// callers run with template replies and the chat endpoint answers with its
// unavailable notice.
func (c LLMConfig) Enabled() bool {
	return c.APIKey != ""
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return fallback
}
