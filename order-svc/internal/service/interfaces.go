package service

import (
	"context"
	"time"

	"foodvoice/order-svc/internal/domain"
)

type LanguageModel interface {
	Complete(ctx context.Context, req domain.CompletionRequest) (string, error)
}

type Browser interface {
	Browse(ctx context.Context, req domain.BrowseRequest) (*domain.BrowseResponse, error)
}

type Notifier interface {
	Send(ctx context.Context, notification domain.Notification) error
}

type OrderPublisher interface {
	PublishOrder(ctx context.Context, event domain.OrderEvent) error
}

// ProfileStore persists per-user state. GetProfile always returns a usable
// profile; a non-nil error means the read failed and the profile is fresh.
type ProfileStore interface {
	GetProfile(ctx context.Context, uid string) (*domain.UserProfile, error)
	SaveProfile(ctx context.Context, profile *domain.UserProfile) error
	SaveLastOrder(ctx context.Context, uid string, intent domain.OrderIntent) error
	UpdatePreferences(ctx context.Context, uid string, prefs domain.Preferences) error
	SetupProfile(ctx context.Context, uid string, update domain.ProfileUpdate) (*domain.UserProfile, error)
	GetSession(ctx context.Context, sessionID string) (domain.SessionContext, error)
	SaveSession(ctx context.Context, sessionID string, session domain.SessionContext, ttl time.Duration) error
}

type IntentGate interface {
	Matches(text string) bool
}

type IntentExtractor interface {
	Extract(ctx context.Context, text string) (*domain.OrderIntent, error)
	ExtractPreferences(ctx context.Context, conversation string) (domain.Preferences, error)
}

type RestaurantResolver interface {
	Resolve(ctx context.Context, foodItem, cuisine string, maxTier domain.PriceTier) (*domain.RestaurantCandidate, error)
	EstimatePrice(foodItem string, candidate *domain.RestaurantCandidate) string
}

type Placer interface {
	Place(ctx context.Context, intent domain.OrderIntent) domain.OrderResult
	DeepLink(intent domain.OrderIntent) string
}

type OrderPipelineInterface interface {
	ProcessTranscript(ctx context.Context, webhook domain.TranscriptWebhook, uid string) domain.Outcome
	ProcessMemory(ctx context.Context, webhook domain.MemoryWebhook) domain.PreferencesOutcome
	LastOrderDeepLink(ctx context.Context, uid string) (string, error)
}

var (
	_ IntentGate             = (*KeywordGate)(nil)
	_ IntentExtractor        = (*Extractor)(nil)
	_ RestaurantResolver     = (*Resolver)(nil)
	_ Placer                 = (*PlacementStrategy)(nil)
	_ OrderPipelineInterface = (*OrderPipeline)(nil)
)
