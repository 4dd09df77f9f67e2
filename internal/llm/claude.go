package llm

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"petdiary/internal/domain"
)

const anthropicVersion = "2023-06-01"

type ClaudeProvider struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

func NewClaudeProvider(client *http.Client, baseURL, apiKey string) *ClaudeProvider {
	return &ClaudeProvider{client: client, baseURL: strings.TrimRight(baseURL, "/"), apiKey: apiKey}
}

type claudeRequest struct {
	Model       string          `json:"model"`
	System      string          `json:"system,omitempty"`
	MaxTokens   int             `json:"max_tokens"`
	Temperature float64         `json:"temperature"`
	Messages    []claudeMessage `json:"messages"`
}

type claudeMessage struct {
	Role    string        `json:"role"`
	Content []claudeBlock `json:"content"`
}

type claudeBlock struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

type claudeResponse struct {
	Model   string        `json:"model"`
	Content []claudeBlock `json:"content"`
	Error   *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (p *ClaudeProvider) Name() string { return ProviderClaude }

func (p *ClaudeProvider) Complete(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 1024
	}
	payload := claudeRequest{
		Model:       req.Model,
		System:      req.System,
		MaxTokens:   maxTokens,
		Temperature: req.Temperature,
		Messages:    make([]claudeMessage, 0, len(req.Messages)),
	}
	for _, m := range req.Messages {
		switch m.Role {
		case "user", "assistant":
			payload.Messages = append(payload.Messages, claudeMessage{
				Role:    m.Role,
				Content: []claudeBlock{{Type: "text", Text: m.Content}},
			})
		}
	}

	var parsed claudeResponse
	if err := doJSON(ctx, p.client, http.MethodPost, p.baseURL+"/v1/messages", p.headers(), payload, &parsed); err != nil {
		return domain.LLMResponse{}, err
	}
	if parsed.Error != nil {
		return domain.LLMResponse{}, fmt.Errorf("claude error: %s", parsed.Error.Message)
	}

	out := domain.LLMResponse{Model: parsed.Model}
	for _, block := range parsed.Content {
		if block.Type != "text" || block.Text == "" {
			continue
		}
		if out.Content == "" {
			out.Content = block.Text
		} else {
			out.Content += "\n" + block.Text
		}
	}
	if out.Content == "" {
		return domain.LLMResponse{}, fmt.Errorf("claude: %w", ErrEmptyResponse)
	}
	return out, nil
}

func (p *ClaudeProvider) Ping(ctx context.Context) error {
	return doJSON(ctx, p.client, http.MethodGet, p.baseURL+"/v1/models", p.headers(), nil, nil)
}

func (p *ClaudeProvider) headers() map[string]string {
	return map[string]string{
		"x-api-key":         p.apiKey,
		"anthropic-version": anthropicVersion,
	}
}
