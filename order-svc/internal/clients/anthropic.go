package clients

import (
	"context"
	"errors"
	"strings"

	"foodvoice/order-svc/internal/domain"
)

const (
	DefaultAnthropicBaseURL = "https://api.anthropic.com"
	DefaultAnthropicModel   = "claude-sonnet-4-5-20250929"
	anthropicVersion        = "2023-06-01"
	defaultMaxTokens        = 500
)

var ErrEmptyCompletion = errors.New("model returned no text")

type AnthropicConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// AnthropicClient calls the Messages API with a single user turn.
type AnthropicClient struct {
	config AnthropicConfig
	client HTTPClient
}

func NewAnthropicClient(config AnthropicConfig, client HTTPClient) *AnthropicClient {
	if config.Model == "" {
		config.Model = DefaultAnthropicModel
	}
	if config.BaseURL == "" {
		config.BaseURL = DefaultAnthropicBaseURL
	}
	config.BaseURL = strings.TrimRight(config.BaseURL, "/")
	return &AnthropicClient{config: config, client: client}
}

func (c *AnthropicClient) Available() bool {
	return c.config.APIKey != ""
}

type messagesRequest struct {
	Model       string    `json:"model"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature *float64  `json:"temperature,omitempty"`
	Messages    []message `json:"messages"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messagesResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	StopReason string `json:"stop_reason"`
}

// Complete returns the concatenated text blocks of the reply. A zero
// temperature leaves the API default in place.
func (c *AnthropicClient) Complete(ctx context.Context, req domain.CompletionRequest) (string, error) {
	if !c.Available() {
		return "", ErrNotConfigured
	}

	payload := messagesRequest{
		Model:     c.config.Model,
		MaxTokens: req.MaxTokens,
		Messages:  []message{{Role: "user", Content: req.Prompt}},
	}
	if payload.MaxTokens <= 0 {
		payload.MaxTokens = defaultMaxTokens
	}
	if req.Temperature > 0 {
		temperature := req.Temperature
		payload.Temperature = &temperature
	}

	var resp messagesResponse
	err := postJSON(ctx, c.client, c.config.BaseURL+"/v1/messages", map[string]string{
		"x-api-key":         c.config.APIKey,
		"anthropic-version": anthropicVersion,
	}, payload, &resp)
	if err != nil {
		return "", err
	}

	var text strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}
	if text.Len() == 0 {
		return "", ErrEmptyCompletion
	}
	return text.String(), nil
}
