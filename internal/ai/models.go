package ai

import (
	"errors"
	"fmt"
	"strings"
)

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

const (
	DefaultTemperature = 0.7
	DefaultMaxTokens   = 2000

	// SystemMarker prefixes system instructions folded into a user turn
	// for vendors without a system role.
	SystemMarker = "[System] "
)

type ProviderType string

const (
	ProviderOpenAI ProviderType = "openai"
	ProviderGemini ProviderType = "gemini"
	ProviderCustom ProviderType = "custom"
)

// ProviderConfig carries explicit provider settings. Empty fields fall back
// to the vendor's environment variables, then to built-in defaults.
type ProviderConfig struct {
	Type    ProviderType
	APIKey  string
	Model   string
	BaseURL string
}

type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// GenerateOptions is the vendor-neutral request. Nil Temperature and
// MaxTokens select DefaultTemperature and DefaultMaxTokens; an empty Model
// selects the provider's configured model.
type GenerateOptions struct {
	Messages    []Message
	Temperature *float64
	MaxTokens   *int
	Model       string
}

func (o GenerateOptions) temperature() float64 {
	if o.Temperature == nil {
		return DefaultTemperature
	}
	return *o.Temperature
}

func (o GenerateOptions) maxTokens() int {
	if o.MaxTokens == nil || *o.MaxTokens <= 0 {
		return DefaultMaxTokens
	}
	return *o.MaxTokens
}

func (o GenerateOptions) model(fallback string) string {
	if o.Model != "" {
		return o.Model
	}
	return fallback
}

var errNoMessages = errors.New("no messages")

// ValidateMessages checks that msgs is non-empty and that a system message,
// if any, appears once and first.
func ValidateMessages(msgs []Message) error {
	if len(msgs) == 0 {
		return errNoMessages
	}
	for i, m := range msgs {
		switch m.Role {
		case RoleSystem:
			if i != 0 {
				return fmt.Errorf("system message at position %d, must be first", i)
			}
		case RoleUser, RoleAssistant:
		default:
			return fmt.Errorf("unknown role %q at position %d", m.Role, i)
		}
	}
	return nil
}

// FoldSystem returns a copy of msgs where a leading system message is merged
// into the first user turn behind SystemMarker. When no user turn follows,
// the system message itself becomes a user turn.
func FoldSystem(msgs []Message) []Message {
	if len(msgs) == 0 || msgs[0].Role != RoleSystem {
		return append([]Message(nil), msgs...)
	}
	system := SystemMarker + msgs[0].Content
	rest := msgs[1:]

	out := make([]Message, 0, len(rest)+1)
	folded := false
	for _, m := range rest {
		if !folded && m.Role == RoleUser {
			m.Content = system + "\n\n" + m.Content
			folded = true
		}
		out = append(out, m)
	}
	if !folded {
		out = append([]Message{{Role: RoleUser, Content: system}}, out...)
	}
	return out
}

// Float and Int build the optional GenerateOptions fields.
func Float(v float64) *float64 { return &v }
func Int(v int) *int           { return &v }

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
