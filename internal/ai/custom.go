package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	DefaultCustomModel = "default-model"
	customGeneratePath = "/v1/generate"
)

// CustomProvider talks to a self-hosted JSON generation endpoint. The
// endpoint has no system role, so system content travels as a marked user turn.
type CustomProvider struct {
	apiKey  string
	baseURL string
	model   string
	http    *http.Client
}

type customRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
}

type customResponse struct {
	Output string `json:"output"`
	Error  *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func NewCustomProvider(cfg ProviderConfig) *CustomProvider {
	p := &CustomProvider{
		apiKey:  firstNonEmpty(cfg.APIKey, os.Getenv("CUSTOM_PROVIDER_API_KEY")),
		baseURL: strings.TrimRight(firstNonEmpty(cfg.BaseURL, os.Getenv("CUSTOM_PROVIDER_BASE_URL")), "/"),
		model:   firstNonEmpty(cfg.Model, os.Getenv("CUSTOM_PROVIDER_MODEL"), DefaultCustomModel),
		http:    &http.Client{Timeout: 60 * time.Second},
	}
	if p.apiKey == "" || p.baseURL == "" {
		slog.Warn("custom provider not configured", "has_key", p.apiKey != "", "has_base_url", p.baseURL != "")
	}
	return p
}

func (p *CustomProvider) Name() string { return "Custom" }

func (p *CustomProvider) IsConfigured() bool { return p.apiKey != "" && p.baseURL != "" }

func (p *CustomProvider) Generate(ctx context.Context, opts GenerateOptions) (string, error) {
	if !p.IsConfigured() {
		return "", &ProviderError{Provider: p.Name(), Message: "provider not configured, set CUSTOM_PROVIDER_API_KEY and CUSTOM_PROVIDER_BASE_URL"}
	}
	if err := ValidateMessages(opts.Messages); err != nil {
		return "", newProviderError(p.Name(), err)
	}

	body, err := json.Marshal(customRequest{
		Model:       opts.model(p.model),
		Messages:    FoldSystem(opts.Messages),
		Temperature: opts.temperature(),
		MaxTokens:   opts.maxTokens(),
	})
	if err != nil {
		return "", newProviderError(p.Name(), fmt.Errorf("marshal request: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+customGeneratePath, bytes.NewReader(body))
	if err != nil {
		return "", newProviderError(p.Name(), fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.http.Do(req)
	if err != nil {
		return "", newProviderError(p.Name(), fmt.Errorf("do request: %w", err))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", newProviderError(p.Name(), fmt.Errorf("read response: %w", err))
	}

	var cr customResponse
	if err := json.Unmarshal(raw, &cr); err != nil {
		return "", newProviderError(p.Name(), fmt.Errorf("status %d: unmarshal response: %w", resp.StatusCode, err))
	}
	if cr.Error != nil {
		return "", &ProviderError{Provider: p.Name(), Message: cr.Error.Message}
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return "", &ProviderError{Provider: p.Name(), Message: fmt.Sprintf("unexpected status %d", resp.StatusCode)}
	}
	if strings.TrimSpace(cr.Output) == "" {
		return "", &ProviderError{Provider: p.Name(), Message: "empty response"}
	}
	return cr.Output, nil
}
