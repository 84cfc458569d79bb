package ai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/openai/openai-go/v3"
	openaioption "github.com/openai/openai-go/v3/option"
)

const DefaultOpenAIModel = "gpt-4-turbo-preview"

// OpenAIProvider implements Provider with the official OpenAI SDK.
type OpenAIProvider struct {
	client *openai.Client
	model  string
}

// NewOpenAIProvider never fails: a missing key leaves the provider unconfigured.
func NewOpenAIProvider(cfg ProviderConfig, extra ...openaioption.RequestOption) *OpenAIProvider {
	apiKey := firstNonEmpty(cfg.APIKey, os.Getenv("OPENAI_API_KEY"))
	p := &OpenAIProvider{
		model: firstNonEmpty(cfg.Model, os.Getenv("OPENAI_MODEL"), DefaultOpenAIModel),
	}
	if apiKey == "" {
		slog.Warn("openai api key not configured")
		return p
	}

	opts := []openaioption.RequestOption{openaioption.WithAPIKey(apiKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, openaioption.WithBaseURL(cfg.BaseURL))
	}
	opts = append(opts, extra...)
	client := openai.NewClient(opts...)
	p.client = &client
	return p
}

func (p *OpenAIProvider) Name() string { return "OpenAI" }

func (p *OpenAIProvider) IsConfigured() bool { return p.client != nil }

func (p *OpenAIProvider) Generate(ctx context.Context, opts GenerateOptions) (string, error) {
	if !p.IsConfigured() {
		return "", &ProviderError{Provider: p.Name(), Message: "provider not configured, set OPENAI_API_KEY"}
	}
	if err := ValidateMessages(opts.Messages); err != nil {
		return "", newProviderError(p.Name(), err)
	}

	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(opts.Messages))
	for _, m := range opts.Messages {
		switch m.Role {
		case RoleSystem:
			messages = append(messages, openai.SystemMessage(m.Content))
		case RoleAssistant:
			messages = append(messages, openai.AssistantMessage(m.Content))
		default:
			messages = append(messages, openai.UserMessage(m.Content))
		}
	}

	completion, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(opts.model(p.model)),
		Messages:    messages,
		Temperature: openai.Float(opts.temperature()),
		MaxTokens:   openai.Int(int64(opts.maxTokens())),
	})
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return "", &ProviderError{Provider: p.Name(), Message: fmt.Sprintf("status %d: %s", apiErr.StatusCode, apiErr.Message)}
		}
		return "", newProviderError(p.Name(), err)
	}
	if len(completion.Choices) == 0 {
		return "", &ProviderError{Provider: p.Name(), Message: "empty choices"}
	}
	content := completion.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		return "", &ProviderError{Provider: p.Name(), Message: "empty response"}
	}
	return content, nil
}
