package llm

import (
	"context"
	"net/http"
	"strings"
	"time"

	"petdiary/internal/domain"
)

const (
	ProviderOpenAI = "openai"
	ProviderClaude = "claude"
	ProviderGemini = "gemini"
)

type Provider interface {
	Name() string
	Complete(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error)
	Ping(ctx context.Context) error
}

type Config struct {
	Provider         string
	APIKey           string
	Model            string
	OpenAIBaseURL    string
	AnthropicBaseURL string
	GeminiBaseURL    string
	Timeout          time.Duration
	MaxTokens        int
	Temperature      float64
}

// CanonicalProvider lower-cases the identifier and folds aliases.
func CanonicalProvider(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "anthropic" {
		return ProviderClaude
	}
	return name
}

// DefaultModel is the model used when no override is configured.
func DefaultModel(provider string) string {
	switch CanonicalProvider(provider) {
	case ProviderOpenAI:
		return "gpt-3.5-turbo"
	case ProviderClaude:
		return "claude-3-sonnet-20240229"
	case ProviderGemini:
		return "gemini-pro"
	default:
		return ""
	}
}

func NewProvider(cfg Config, client *http.Client) (Provider, error) {
	switch name := CanonicalProvider(cfg.Provider); name {
	case ProviderOpenAI:
		return NewOpenAIProvider(client, withDefault(cfg.OpenAIBaseURL, "https://api.openai.com/v1"), cfg.APIKey), nil
	case ProviderClaude:
		return NewClaudeProvider(client, withDefault(cfg.AnthropicBaseURL, "https://api.anthropic.com"), cfg.APIKey), nil
	case ProviderGemini:
		return NewGeminiProvider(client, withDefault(cfg.GeminiBaseURL, "https://generativelanguage.googleapis.com"), cfg.APIKey), nil
	default:
		return nil, &ConfigurationError{Provider: name, Err: ErrUnknownProvider}
	}
}

func withDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
