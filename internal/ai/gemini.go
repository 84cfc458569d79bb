package ai

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const DefaultGeminiModel = "gemini-pro"

// GeminiProvider implements Provider using Google's Gemini models.
// Gemini receives no system role: the system message is folded into the
// first user turn.
type GeminiProvider struct {
	client *genai.Client
	model  string
}

// NewGeminiProvider never fails: a missing key or a client construction
// error leaves the provider unconfigured.
func NewGeminiProvider(ctx context.Context, cfg ProviderConfig, extra ...option.ClientOption) *GeminiProvider {
	apiKey := firstNonEmpty(cfg.APIKey, os.Getenv("GEMINI_API_KEY"))
	p := &GeminiProvider{
		model: firstNonEmpty(cfg.Model, os.Getenv("GEMINI_MODEL"), DefaultGeminiModel),
	}
	if apiKey == "" {
		slog.Warn("gemini api key not configured")
		return p
	}

	opts := append([]option.ClientOption{option.WithAPIKey(apiKey)}, extra...)
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithEndpoint(cfg.BaseURL))
	}
	client, err := genai.NewClient(ctx, opts...)
	if err != nil {
		slog.Warn("gemini client init failed", "err", err)
		return p
	}
	p.client = client
	return p
}

func (p *GeminiProvider) Name() string { return "Gemini" }

func (p *GeminiProvider) IsConfigured() bool { return p.client != nil }

// Close cleans up the Gemini client resources.
func (p *GeminiProvider) Close() error {
	if p.client == nil {
		return nil
	}
	return p.client.Close()
}

func (p *GeminiProvider) Generate(ctx context.Context, opts GenerateOptions) (string, error) {
	if !p.IsConfigured() {
		return "", &ProviderError{Provider: p.Name(), Message: "provider not configured, set GEMINI_API_KEY"}
	}
	if err := ValidateMessages(opts.Messages); err != nil {
		return "", newProviderError(p.Name(), err)
	}

	history, last, err := toGeminiContents(opts.Messages)
	if err != nil {
		return "", newProviderError(p.Name(), err)
	}

	model := p.client.GenerativeModel(opts.model(p.model))
	model.SetTemperature(float32(opts.temperature()))
	model.SetMaxOutputTokens(int32(opts.maxTokens()))

	session := model.StartChat()
	session.History = history

	resp, err := session.SendMessage(ctx, last.Parts...)
	if err != nil {
		return "", newProviderError(p.Name(), err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", &ProviderError{Provider: p.Name(), Message: "empty candidates"}
	}

	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			text.WriteString(string(txt))
		}
	}
	if strings.TrimSpace(text.String()) == "" {
		return "", &ProviderError{Provider: p.Name(), Message: "empty response"}
	}
	return text.String(), nil
}

// toGeminiContents folds the system message and splits the conversation into
// prior history and the final user turn that is sent.
func toGeminiContents(msgs []Message) ([]*genai.Content, *genai.Content, error) {
	folded := FoldSystem(msgs)
	if folded[len(folded)-1].Role != RoleUser {
		return nil, nil, errors.New("last message must be a user turn")
	}

	contents := make([]*genai.Content, 0, len(folded))
	for _, m := range folded {
		role := "user"
		if m.Role == RoleAssistant {
			role = "model"
		}
		contents = append(contents, &genai.Content{Role: role, Parts: []genai.Part{genai.Text(m.Content)}})
	}
	return contents[:len(contents)-1], contents[len(contents)-1], nil
}
