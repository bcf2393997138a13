package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"foodvoice/order-svc/internal/domain"
	"foodvoice/order-svc/internal/metrics"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var ErrNoLastOrder = errors.New("user has no previous order")

const (
	DefaultSessionTTL  = time.Hour
	DefaultFallbackUID = "test_user"

	quickOrderMarker = "Your usual order"
	anyRestaurant    = "a highly rated restaurant"
)

type PipelineConfig struct {
	SessionTTL  time.Duration
	FallbackUID string
	// MaxPriceTier caps restaurant resolution; TierUnknown means no cap.
	MaxPriceTier domain.PriceTier
}

type OrderPipeline struct {
	gate      IntentGate
	extractor IntentExtractor
	resolver  RestaurantResolver
	placer    Placer
	profiles  ProfileStore
	notifier  Notifier
	publisher OrderPublisher
	config    PipelineConfig
	logger    zerolog.Logger
}

// NewOrderPipeline wires the collaborators. publisher may be nil.
func NewOrderPipeline(
	gate IntentGate,
	extractor IntentExtractor,
	resolver RestaurantResolver,
	placer Placer,
	profiles ProfileStore,
	notifier Notifier,
	publisher OrderPublisher,
	config PipelineConfig,
	logger zerolog.Logger,
) *OrderPipeline {
	if config.SessionTTL <= 0 {
		config.SessionTTL = DefaultSessionTTL
	}
	if config.FallbackUID == "" {
		config.FallbackUID = DefaultFallbackUID
	}
	return &OrderPipeline{
		gate:      gate,
		extractor: extractor,
		resolver:  resolver,
		placer:    placer,
		profiles:  profiles,
		notifier:  notifier,
		publisher: publisher,
		config:    config,
		logger:    logger.With().Str("component", "pipeline").Logger(),
	}
}

// ProcessTranscript runs one utterance through the ordering cycle. uid may be
// empty, in which case it is recovered from the session.
func (p *OrderPipeline) ProcessTranscript(ctx context.Context, webhook domain.TranscriptWebhook, uid string) domain.Outcome {
	outcome := p.processTranscript(ctx, webhook, uid)
	metrics.PipelineOutcomes.WithLabelValues(string(outcome.Status)).Inc()
	p.logger.Info().Str("session_id", webhook.SessionID).Str("status", string(outcome.Status)).Msg("transcript processed")
	return outcome
}

func (p *OrderPipeline) processTranscript(ctx context.Context, webhook domain.TranscriptWebhook, uid string) domain.Outcome {
	text := webhook.UserText()
	if text == "" {
		return domain.Outcome{Status: domain.OutcomeNoSpeech, Message: "No user speech detected"}
	}

	if !p.gate.Matches(text) {
		p.logger.Debug().Str("text", text).Msg("no order trigger")
		return noIntent()
	}

	intent, err := p.extractor.Extract(ctx, text)
	if err != nil {
		p.logger.Warn().Err(err).Msg("intent extraction failed")
		return noIntent()
	}
	if intent == nil {
		return noIntent()
	}

	p.logger.Info().
		Str("food_item", intent.FoodItem).
		Str("restaurant", intent.Restaurant).
		Bool("quick_order", intent.QuickOrder).
		Float64("confidence", intent.Confidence).
		Msg("order intent detected")

	uid = p.identify(ctx, webhook.SessionID, uid)
	return p.fulfil(ctx, uid, *intent)
}

func noIntent() domain.Outcome {
	return domain.Outcome{Status: domain.OutcomeNoIntent, Message: "No food order detected"}
}

// identify stores an explicit uid against the session, or recovers one.
func (p *OrderPipeline) identify(ctx context.Context, sessionID, uid string) string {
	if uid != "" {
		if sessionID != "" {
			if err := p.profiles.SaveSession(ctx, sessionID, domain.SessionContext{"uid": uid}, p.config.SessionTTL); err != nil {
				p.logger.Warn().Err(err).Str("session_id", sessionID).Msg("failed to save session")
			}
		}
		return uid
	}

	if sessionID != "" {
		session, err := p.profiles.GetSession(ctx, sessionID)
		if err != nil {
			p.logger.Warn().Err(err).Str("session_id", sessionID).Msg("failed to load session")
		}
		if recovered := session.UID(); recovered != "" {
			return recovered
		}
	}
	return p.config.FallbackUID
}

func (p *OrderPipeline) fulfil(ctx context.Context, uid string, intent domain.OrderIntent) domain.Outcome {
	if intent.QuickOrder {
		last, err := p.lastOrder(ctx, uid)
		if err != nil {
			p.notify(ctx, domain.Notification{
				UID:     uid,
				Message: "I don't have a previous order saved yet. Please tell me what you'd like!",
			})
			return domain.Outcome{Status: domain.OutcomeNoPrevious, Message: "No previous order found"}
		}
		p.logger.Info().Str("uid", uid).Msg("quick order: reusing last order")
		intent = last
	}

	candidate, err := p.resolver.Resolve(ctx, intent.FoodItem, intent.Cuisine, p.config.MaxPriceTier)
	if err != nil {
		p.logger.Warn().Err(err).Str("food_item", intent.FoodItem).Msg("restaurant resolution failed")
		candidate = nil
	}
	if candidate != nil && intent.Restaurant == "" {
		intent.Restaurant = candidate.Name
		p.logger.Info().Str("restaurant", candidate.Name).Float64("rating", candidate.Rating).Msg("restaurant resolved")
	}

	price := p.resolver.EstimatePrice(intent.FoodItem, candidate)
	summary := Summary(intent)

	restaurantName := intent.Restaurant
	if restaurantName == "" {
		restaurantName = anyRestaurant
	}
	p.notify(ctx, domain.Notification{
		UID: uid,
		Message: fmt.Sprintf("I found %s from %s. The price is %s. Should I place the order? Say yes to confirm or no to cancel.",
			intent.FoodItem, restaurantName, price),
	})

	result := p.placer.Place(ctx, intent)

	if err := p.profiles.SaveLastOrder(ctx, uid, intent); err != nil {
		p.logger.Warn().Err(err).Str("uid", uid).Msg("failed to save last order")
	}

	p.publish(ctx, uid, intent, result)

	confirmation := "Order placed: " + summary
	if result.DeepLink != "" {
		confirmation += "\n\nTap to complete checkout: " + result.DeepLink
	}
	p.notify(ctx, domain.Notification{UID: uid, Title: "Order Confirmed", Message: confirmation})

	return domain.Outcome{
		Status:        domain.OutcomeSuccess,
		Message:       "Order placed: " + summary,
		Order:         &intent,
		Result:        &result,
		PriceEstimate: price,
		Summary:       summary,
	}
}

func (p *OrderPipeline) lastOrder(ctx context.Context, uid string) (domain.OrderIntent, error) {
	profile, err := p.profiles.GetProfile(ctx, uid)
	if err != nil {
		p.logger.Warn().Err(err).Str("uid", uid).Msg("failed to load profile")
	}
	if profile == nil || profile.LastOrder == nil {
		return domain.OrderIntent{}, ErrNoLastOrder
	}
	return profile.LastOrder.Clone(), nil
}

func (p *OrderPipeline) notify(ctx context.Context, notification domain.Notification) {
	if p.notifier == nil {
		return
	}
	start := time.Now()
	err := p.notifier.Send(ctx, notification)
	metrics.ObserveCall("notification", start, err)
	if err != nil {
		p.logger.Warn().Err(err).Str("uid", notification.UID).Msg("notification failed")
	}
}

func (p *OrderPipeline) publish(ctx context.Context, uid string, intent domain.OrderIntent, result domain.OrderResult) {
	if p.publisher == nil {
		return
	}
	event := domain.OrderEvent{
		ID:          uuid.NewString(),
		Type:        "order_placed",
		UID:         uid,
		Restaurant:  result.Restaurant,
		FoodItem:    intent.FoodItem,
		Status:      result.Status,
		DeepLink:    result.DeepLink,
		TrackingURL: result.TrackingURL,
		QuickOrder:  intent.QuickOrder,
		Timestamp:   time.Now().UTC(),
	}
	if intent.Restaurant != "" {
		event.Restaurant = intent.Restaurant
	}
	if err := p.publisher.PublishOrder(ctx, event); err != nil {
		p.logger.Warn().Err(err).Str("uid", uid).Msg("failed to publish order event")
	}
}

// ProcessMemory learns preferences from a finished conversation.
func (p *OrderPipeline) ProcessMemory(ctx context.Context, webhook domain.MemoryWebhook) domain.PreferencesOutcome {
	conversation := strings.TrimSpace(webhook.Memory.Transcript)
	if conversation == "" {
		return domain.PreferencesOutcome{Status: domain.OutcomeNoTranscript}
	}

	prefs, err := p.extractor.ExtractPreferences(ctx, conversation)
	if err != nil {
		p.logger.Warn().Err(err).Str("uid", webhook.UID).Msg("preference extraction failed")
	}

	if !prefs.IsEmpty() {
		if err := p.profiles.UpdatePreferences(ctx, webhook.UID, prefs); err != nil {
			p.logger.Warn().Err(err).Str("uid", webhook.UID).Msg("failed to update preferences")
		}
		if len(prefs.FavoriteRestaurants) > 0 {
			learned := prefs.FavoriteRestaurants
			if len(learned) > 3 {
				learned = learned[:3]
			}
			p.notify(ctx, domain.Notification{
				UID:     webhook.UID,
				Message: fmt.Sprintf("I learned you like: %s! I'll remember that for next time.", strings.Join(learned, ", ")),
			})
		}
	}

	return domain.PreferencesOutcome{Status: domain.OutcomeSuccess, Preferences: &prefs}
}

// LastOrderDeepLink rebuilds the manual-completion link for the last order.
func (p *OrderPipeline) LastOrderDeepLink(ctx context.Context, uid string) (string, error) {
	last, err := p.lastOrder(ctx, uid)
	if err != nil {
		return "", err
	}
	return p.placer.DeepLink(last), nil
}

// Summary renders an intent as one human-readable line.
func Summary(intent domain.OrderIntent) string {
	parts := make([]string, 0, 3)
	if intent.QuickOrder {
		parts = append(parts, quickOrderMarker)
	} else {
		parts = append(parts, intent.FoodItem)
	}

	if intent.Restaurant != "" {
		parts = append(parts, "from "+intent.Restaurant)
	} else if intent.Cuisine != "" {
		parts = append(parts, "("+intent.Cuisine+" cuisine)")
	}

	if len(intent.DietaryRestrictions) > 0 {
		parts = append(parts, "["+strings.Join(intent.DietaryRestrictions, ", ")+"]")
	}
	return strings.Join(parts, " ")
}
