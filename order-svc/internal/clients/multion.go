package clients

import (
	"context"
	"strings"

	"foodvoice/order-svc/internal/domain"
)

const DefaultMultiOnBaseURL = "https://api.multion.ai"

type MultiOnConfig struct {
	APIKey  string
	BaseURL string
}

// MultiOnClient drives a remote browser agent through the browse endpoint.
type MultiOnClient struct {
	config MultiOnConfig
	client HTTPClient
}

func NewMultiOnClient(config MultiOnConfig, client HTTPClient) *MultiOnClient {
	if config.BaseURL == "" {
		config.BaseURL = DefaultMultiOnBaseURL
	}
	config.BaseURL = strings.TrimRight(config.BaseURL, "/")
	return &MultiOnClient{config: config, client: client}
}

func (c *MultiOnClient) Available() bool {
	return c.config.APIKey != ""
}

func (c *MultiOnClient) Browse(ctx context.Context, req domain.BrowseRequest) (*domain.BrowseResponse, error) {
	if !c.Available() {
		return nil, ErrNotConfigured
	}

	var resp domain.BrowseResponse
	err := postJSON(ctx, c.client, c.config.BaseURL+"/v1/web/browse", map[string]string{
		"X_MULTION_API_KEY": c.config.APIKey,
	}, req, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}
