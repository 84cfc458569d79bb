package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	openaioption "github.com/openai/openai-go/v3/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const completionBody = `{
  "id": "chatcmpl-1",
  "object": "chat.completion",
  "created": 1700000000,
  "model": "gpt-4-turbo-preview",
  "choices": [{"index": 0, "finish_reason": "stop", "message": {"role": "assistant", "content": "{\"title\":\"Paris\"}"}}]
}`

func TestOpenAIProviderSendsMessagesAndOptions(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(completionBody))
	}))
	defer srv.Close()

	p := NewOpenAIProvider(ProviderConfig{APIKey: "sk-test", BaseURL: srv.URL + "/"}, openaioption.WithMaxRetries(0))
	out, err := p.Generate(context.Background(), GenerateOptions{Messages: []Message{
		{Role: RoleSystem, Content: "sys"},
		{Role: RoleUser, Content: "user"},
	}})
	require.NoError(t, err)
	assert.Equal(t, `{"title":"Paris"}`, out)

	assert.Equal(t, DefaultOpenAIModel, body["model"])
	assert.Equal(t, DefaultTemperature, body["temperature"])
	assert.Equal(t, float64(DefaultMaxTokens), body["max_tokens"])
	msgs, ok := body["messages"].([]any)
	require.True(t, ok)
	require.Len(t, msgs, 2)
	assert.Equal(t, "system", msgs[0].(map[string]any)["role"])
}

func TestOpenAIProviderWrapsAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"message":"bad model","type":"invalid_request_error"}}`))
	}))
	defer srv.Close()

	p := NewOpenAIProvider(ProviderConfig{APIKey: "sk-test", BaseURL: srv.URL + "/"}, openaioption.WithMaxRetries(0))
	_, err := p.Generate(context.Background(), GenerateOptions{Messages: []Message{{Role: RoleUser, Content: "x"}}})

	var perr *ProviderError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "OpenAI", perr.Provider)
}

func TestOpenAIProviderUnconfigured(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	p := NewOpenAIProvider(ProviderConfig{})
	assert.False(t, p.IsConfigured())

	_, err := p.Generate(context.Background(), GenerateOptions{Messages: []Message{{Role: RoleUser, Content: "x"}}})
	var perr *ProviderError
	assert.ErrorAs(t, err, &perr)
}
