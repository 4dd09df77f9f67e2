package llm

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"petdiary/internal/domain"
)

const (
	defaultTimeout     = 30 * time.Second
	defaultMaxTokens   = 500
	defaultTemperature = 0.7
)

// Generation is a successful provider response.
type Generation struct {
	Text     string
	Provider string
	Model    string
	Latency  time.Duration
}

// Gateway sends prompts to the one backend selected at construction time.
// It is immutable after NewGateway and safe for concurrent use.
type Gateway struct {
	provider    Provider
	name        string
	model       string
	keySet      bool
	configErr   error
	timeout     time.Duration
	maxTokens   int
	temperature float64
}

// NewGateway resolves the provider variant once. Configuration problems are
// not returned here: they are kept and reported by every Generate call so
// the service can run in fallback-only mode.
func NewGateway(cfg Config, client *http.Client) *Gateway {
	g := &Gateway{
		name:        CanonicalProvider(cfg.Provider),
		model:       strings.TrimSpace(cfg.Model),
		keySet:      strings.TrimSpace(cfg.APIKey) != "",
		timeout:     cfg.Timeout,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
	}
	if g.timeout <= 0 {
		g.timeout = defaultTimeout
	}
	if g.maxTokens <= 0 {
		g.maxTokens = defaultMaxTokens
	}
	if g.temperature <= 0 {
		g.temperature = defaultTemperature
	}
	if g.model == "" {
		g.model = DefaultModel(g.name)
	}
	if client == nil {
		client = &http.Client{Timeout: g.timeout}
	}

	if !g.keySet {
		g.configErr = &ConfigurationError{Provider: g.name, Err: ErrMissingAPIKey}
		return g
	}
	provider, err := NewProvider(cfg, client)
	if err != nil {
		g.configErr = err
		return g
	}
	g.provider = provider
	return g
}

// Generate sends one prompt and returns the trimmed text. There are no
// retries: the first failure is returned.
func (g *Gateway) Generate(ctx context.Context, prompt string) (Generation, error) {
	if g.configErr != nil {
		return Generation{}, g.configErr
	}

	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	start := time.Now()
	resp, err := g.provider.Complete(callCtx, domain.LLMRequest{
		Model:       g.model,
		Messages:    []domain.Message{{Role: "user", Content: prompt}},
		MaxTokens:   g.maxTokens,
		Temperature: g.temperature,
	})
	latency := time.Since(start)
	if err != nil {
		return Generation{}, g.wrap(err)
	}

	text := strings.TrimSpace(resp.Content)
	if text == "" {
		return Generation{}, &ProviderError{Provider: g.name, Err: ErrEmptyResponse}
	}
	model := resp.Model
	if model == "" {
		model = g.model
	}
	return Generation{Text: text, Provider: g.name, Model: model, Latency: latency}, nil
}

// Ping runs the backend's cheapest authenticated request.
func (g *Gateway) Ping(ctx context.Context) error {
	if g.configErr != nil {
		return g.configErr
	}
	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()
	if err := g.provider.Ping(callCtx); err != nil {
		return g.wrap(err)
	}
	return nil
}

// Status reports configuration only; it never touches the network.
func (g *Gateway) Status() domain.ProviderStatus {
	return domain.ProviderStatus{
		Provider:         g.name,
		Model:            g.model,
		APIKeyConfigured: g.keySet,
	}
}

// Configured reports whether Generate can reach a backend at all.
func (g *Gateway) Configured() bool {
	return g.configErr == nil
}

func (g *Gateway) wrap(err error) error {
	var provErr *ProviderError
	if errors.As(err, &provErr) {
		return err
	}
	out := &ProviderError{Provider: g.name, Err: err}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		out.StatusCode = statusErr.StatusCode
	}
	return out
}
