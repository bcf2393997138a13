package clients

import (
	"context"
	"strings"

	"foodvoice/order-svc/internal/domain"

	"github.com/rs/zerolog"
)

const (
	DefaultOmiBaseURL  = "https://api.omi.me"
	defaultNotifyTitle = "Food Order"
)

type OmiConfig struct {
	APIKey  string
	AppID   string
	BaseURL string
}

// OmiNotifier pushes messages to the wearable. Without credentials it runs
// in demo mode: the message is logged and reported as delivered.
type OmiNotifier struct {
	config OmiConfig
	client HTTPClient
	logger zerolog.Logger
}

func NewOmiNotifier(config OmiConfig, client HTTPClient, logger zerolog.Logger) *OmiNotifier {
	if config.BaseURL == "" {
		config.BaseURL = DefaultOmiBaseURL
	}
	config.BaseURL = strings.TrimRight(config.BaseURL, "/")
	return &OmiNotifier{
		config: config,
		client: client,
		logger: logger.With().Str("component", "omi_notifier").Logger(),
	}
}

func (n *OmiNotifier) DemoMode() bool {
	return n.config.APIKey == "" || n.config.AppID == ""
}

func (n *OmiNotifier) Send(ctx context.Context, notification domain.Notification) error {
	if notification.Title == "" {
		notification.Title = defaultNotifyTitle
	}

	if n.DemoMode() {
		n.logger.Info().
			Str("uid", notification.UID).
			Str("title", notification.Title).
			Str("message", notification.Message).
			Msg("demo mode, notification not sent")
		return nil
	}

	return postJSON(ctx, n.client, n.config.BaseURL+"/notifications", map[string]string{
		"Authorization": "Bearer " + n.config.APIKey,
		"X-App-ID":      n.config.AppID,
	}, notification, nil)
}
