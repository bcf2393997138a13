package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"foodvoice/order-svc/internal/domain"
	"foodvoice/order-svc/internal/metrics"

	"github.com/rs/zerolog"
)

var (
	ErrExtractionFailed = errors.New("intent extraction failed")
	ErrNoStructuredData = errors.New("no structured data in model output")
)

const (
	extractionMaxTokens   = 500
	extractionTemperature = 0.3
)

const intentPrompt = `Parse this voice command into a food order.

Voice command: %q

Reply with JSON only, using exactly these keys:
{"food_item": string or null, "restaurant": string or null, "cuisine": string or null,
 "dietary_restrictions": [string], "quick_order": bool, "delivery_instructions": string or null,
 "confidence": number between 0 and 1}

quick_order is true when the speaker asks for their usual, their regular order or the same as last time.`

const preferencesPrompt = `Read this conversation and list the speaker's food preferences.

Conversation:
%s

Reply with JSON only:
{"favorite_cuisines": [], "favorite_restaurants": [], "dietary_preferences": [], "favorite_dishes": []}`

type Extractor struct {
	model  LanguageModel
	logger zerolog.Logger
}

func NewExtractor(model LanguageModel, logger zerolog.Logger) *Extractor {
	return &Extractor{
		model:  model,
		logger: logger.With().Str("component", "extractor").Logger(),
	}
}

type extractedIntent struct {
	FoodItem             string   `json:"food_item"`
	Restaurant           string   `json:"restaurant"`
	Cuisine              string   `json:"cuisine"`
	DietaryRestrictions  []string `json:"dietary_restrictions"`
	QuickOrder           bool     `json:"quick_order"`
	DeliveryInstructions string   `json:"delivery_instructions"`
	Confidence           float64  `json:"confidence"`
}

// Extract returns the order described by text. Any error wraps
// ErrExtractionFailed and means no intent was detected.
func (e *Extractor) Extract(ctx context.Context, text string) (*domain.OrderIntent, error) {
	start := time.Now()
	raw, err := e.model.Complete(ctx, domain.CompletionRequest{
		Prompt:      fmt.Sprintf(intentPrompt, text),
		MaxTokens:   extractionMaxTokens,
		Temperature: extractionTemperature,
	})
	metrics.ObserveCall("intent_extraction", start, err)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExtractionFailed, err)
	}

	var parsed extractedIntent
	if err := decodeStructured(raw, &parsed); err != nil {
		e.logger.Debug().Str("raw", raw).Msg("undecodable extraction output")
		return nil, fmt.Errorf("%w: %w", ErrExtractionFailed, err)
	}

	return &domain.OrderIntent{
		FoodItem:             strings.TrimSpace(parsed.FoodItem),
		Restaurant:           strings.TrimSpace(parsed.Restaurant),
		Cuisine:              strings.TrimSpace(parsed.Cuisine),
		DietaryRestrictions:  nonNil(parsed.DietaryRestrictions),
		QuickOrder:           parsed.QuickOrder,
		DeliveryInstructions: strings.TrimSpace(parsed.DeliveryInstructions),
		Confidence:           clamp01(parsed.Confidence),
	}, nil
}

// ExtractPreferences always returns all four lists, empty on failure.
func (e *Extractor) ExtractPreferences(ctx context.Context, conversation string) (domain.Preferences, error) {
	start := time.Now()
	raw, err := e.model.Complete(ctx, domain.CompletionRequest{
		Prompt:      fmt.Sprintf(preferencesPrompt, conversation),
		MaxTokens:   extractionMaxTokens,
		Temperature: extractionTemperature,
	})
	metrics.ObserveCall("preference_extraction", start, err)
	if err != nil {
		return domain.EmptyPreferences(), fmt.Errorf("%w: %w", ErrExtractionFailed, err)
	}

	var parsed domain.Preferences
	if err := decodeStructured(raw, &parsed); err != nil {
		return domain.EmptyPreferences(), fmt.Errorf("%w: %w", ErrExtractionFailed, err)
	}

	return domain.Preferences{
		FavoriteCuisines:    nonNil(parsed.FavoriteCuisines),
		FavoriteRestaurants: nonNil(parsed.FavoriteRestaurants),
		DietaryPreferences:  nonNil(parsed.DietaryPreferences),
		FavoriteDishes:      nonNil(parsed.FavoriteDishes),
	}, nil
}

// StripToJSON cuts everything outside the outermost braces, which drops
// markdown fences and chatty preambles around the payload.
func StripToJSON(raw string) (string, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end < start {
		return "", ErrNoStructuredData
	}
	return raw[start : end+1], nil
}

func decodeStructured(raw string, target any) error {
	payload, err := StripToJSON(raw)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(payload), target); err != nil {
		return fmt.Errorf("decode model output: %w", err)
	}
	return nil
}

func nonNil(values []string) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		if value = strings.TrimSpace(value); value != "" {
			out = append(out, value)
		}
	}
	return out
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
