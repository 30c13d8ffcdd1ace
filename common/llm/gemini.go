package llm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

type geminiClient struct {
	model     *genai.GenerativeModel
	modelName string
}

// geminiRole translates the internal role vocabulary into Gemini's; the wire
// protocol calls the assistant side "model". Kept as a table so a protocol
// change touches exactly one place.
var geminiRoles = map[string]string{
	RoleUser:      "user",
	RoleAssistant: "model",
}

func newGeminiClient(ctx context.Context, cfg Config) (Client, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}

	modelName := cfg.Model
	if modelName == "" {
		modelName = "gemini-1.5-flash"
	}

	model := client.GenerativeModel(modelName)
	model.SetMaxOutputTokens(int32(defaultMaxTokens(cfg)))
	if cfg.Temperature > 0 {
		model.SetTemperature(float32(cfg.Temperature))
	}
	if cfg.TopP > 0 {
		model.SetTopP(float32(cfg.TopP))
	}
	if cfg.TopK > 0 {
		model.SetTopK(int32(cfg.TopK))
	}
	model.SafetySettings = []*genai.SafetySetting{
		{Category: genai.HarmCategoryHarassment, Threshold: genai.HarmBlockMediumAndAbove},
		{Category: genai.HarmCategoryHateSpeech, Threshold: genai.HarmBlockMediumAndAbove},
		{Category: genai.HarmCategorySexuallyExplicit, Threshold: genai.HarmBlockMediumAndAbove},
		{Category: genai.HarmCategoryDangerousContent, Threshold: genai.HarmBlockMediumAndAbove},
	}

	return &geminiClient{model: model, modelName: modelName}, nil
}

func (c *geminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	start := time.Now()
	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}

	slog.DebugContext(ctx, "gemini generate completed",
		"model", c.modelName,
		"duration_ms", time.Since(start).Milliseconds())

	return firstCandidateText(resp)
}

func (c *geminiClient) Chat(ctx context.Context, history []Message, message string) (string, error) {
	session := c.model.StartChat()
	session.History = make([]*genai.Content, 0, len(history))
	for _, turn := range history {
		role, ok := geminiRoles[turn.Role]
		if !ok {
			return "", fmt.Errorf("gemini chat: unknown role %q", turn.Role)
		}
		session.History = append(session.History, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(turn.Content)},
		})
	}

	start := time.Now()
	resp, err := session.SendMessage(ctx, genai.Text(message))
	if err != nil {
		return "", fmt.Errorf("gemini chat: %w", err)
	}

	slog.DebugContext(ctx, "gemini chat completed",
		"model", c.modelName,
		"history_turns", len(history),
		"duration_ms", time.Since(start).Milliseconds())

	return firstCandidateText(resp)
}

func (c *geminiClient) Model() string {
	return c.modelName
}

func firstCandidateText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini: empty response")
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			b.WriteString(string(t))
		}
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("gemini: no text in response")
	}
	return b.String(), nil
}
