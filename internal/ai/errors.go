package ai

import "fmt"

// ProviderError reports a failed vendor call. Only the vendor's message is
// kept so SDK error types do not leak past this package.
type ProviderError struct {
	Provider string
	Message  string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s error: %s", e.Provider, e.Message)
}

func newProviderError(provider string, err error) *ProviderError {
	return &ProviderError{Provider: provider, Message: err.Error()}
}

// ConfigurationError means no usable provider of the requested type could be built.
type ConfigurationError struct {
	Provider ProviderType
	Reason   string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("AI provider %s is not configured: %s", e.Provider, e.Reason)
}
