package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"foodvoice/order-svc/internal/domain"
	"foodvoice/order-svc/internal/metrics"

	"github.com/rs/zerolog"
)

var (
	ErrNoCandidate      = errors.New("no restaurant candidate")
	ErrSuggestionFailed = errors.New("restaurant suggestion failed")
)

const (
	CategoryGeneral = "general"

	suggestedRating    = 4.3
	defaultPriceRange  = "$15-$25"
	suggestionMaxToken = 100
)

type categoryRule struct {
	category string
	keywords []string
}

// Rules are checked in order; the first match wins.
var categoryRules = []categoryRule{
	{"pizza", []string{"pizza", "pepperoni", "margherita"}},
	{"burger", []string{"burger", "cheeseburger"}},
	{"chinese", []string{"chinese", "fried rice", "lo mein", "orange chicken"}},
	{"mexican", []string{"burrito", "taco", "quesadilla"}},
	{"sushi", []string{"sushi", "sashimi", "roll"}},
}

// DefaultCatalog lists candidates per category in preference order for ties.
func DefaultCatalog() map[string][]domain.RestaurantCandidate {
	return map[string][]domain.RestaurantCandidate{
		"pizza": {
			{Name: "Domino's Pizza", Rating: 4.2, Cuisine: "Pizza", PriceTier: domain.TierMedium},
			{Name: "Pizza Hut", Rating: 4.0, Cuisine: "Pizza", PriceTier: domain.TierMedium},
			{Name: "Little Caesars", Rating: 3.8, Cuisine: "Pizza", PriceTier: domain.TierLow},
		},
		"burger": {
			{Name: "Five Guys", Rating: 4.5, Cuisine: "Burgers", PriceTier: domain.TierMedium},
			{Name: "In-N-Out Burger", Rating: 4.7, Cuisine: "Burgers", PriceTier: domain.TierLow},
			{Name: "Shake Shack", Rating: 4.4, Cuisine: "Burgers", PriceTier: domain.TierMedium},
		},
		"chinese": {
			{Name: "Panda Express", Rating: 4.0, Cuisine: "Chinese", PriceTier: domain.TierLow},
			{Name: "P.F. Chang's", Rating: 4.3, Cuisine: "Chinese", PriceTier: domain.TierHigh},
		},
		"mexican": {
			{Name: "Chipotle", Rating: 4.2, Cuisine: "Mexican", PriceTier: domain.TierMedium},
			{Name: "Taco Bell", Rating: 3.9, Cuisine: "Mexican", PriceTier: domain.TierLow},
		},
		"sushi": {
			{Name: "Kura Sushi", Rating: 4.4, Cuisine: "Sushi", PriceTier: domain.TierMedium},
			{Name: "Sushi House", Rating: 4.2, Cuisine: "Sushi", PriceTier: domain.TierMedium},
		},
	}
}

type Resolver struct {
	catalog map[string][]domain.RestaurantCandidate
	model   LanguageModel
	logger  zerolog.Logger
}

// NewResolver builds a resolver over catalog. model may be nil, in which case
// uncatalogued food has no candidate.
func NewResolver(catalog map[string][]domain.RestaurantCandidate, model LanguageModel, logger zerolog.Logger) *Resolver {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	return &Resolver{
		catalog: catalog,
		model:   model,
		logger:  logger.With().Str("component", "restaurant_resolver").Logger(),
	}
}

func Categorize(foodItem string) string {
	lower := strings.ToLower(foodItem)
	for _, rule := range categoryRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lower, keyword) {
				return rule.category
			}
		}
	}
	return CategoryGeneral
}

// Resolve picks the best-rated catalog candidate priced at or below maxTier,
// falling back to a model suggestion. TierUnknown means no price ceiling.
func (r *Resolver) Resolve(ctx context.Context, foodItem, cuisine string, maxTier domain.PriceTier) (*domain.RestaurantCandidate, error) {
	if maxTier == domain.TierUnknown {
		maxTier = domain.TierHigh
	}

	category := Categorize(foodItem)
	if best, ok := bestCandidate(r.catalog[category], maxTier); ok {
		return &best, nil
	}

	r.logger.Debug().Str("food_item", foodItem).Str("category", category).Msg("no catalog match, asking for suggestion")
	return r.suggest(ctx, foodItem, cuisine)
}

// bestCandidate keeps the first of equally rated survivors.
func bestCandidate(candidates []domain.RestaurantCandidate, maxTier domain.PriceTier) (domain.RestaurantCandidate, bool) {
	var (
		best  domain.RestaurantCandidate
		found bool
	)
	for _, candidate := range candidates {
		if candidate.PriceTier > maxTier {
			continue
		}
		if !found || candidate.Rating > best.Rating {
			best = candidate
			found = true
		}
	}
	return best, found
}

func (r *Resolver) suggest(ctx context.Context, foodItem, cuisine string) (*domain.RestaurantCandidate, error) {
	if r.model == nil {
		return nil, ErrNoCandidate
	}

	prompt := "Name one highly rated chain restaurant that serves " + foodItem
	if cuisine != "" {
		prompt += " (" + cuisine + " cuisine)"
	}
	prompt += ". Reply with the restaurant name only."

	start := time.Now()
	raw, err := r.model.Complete(ctx, domain.CompletionRequest{
		Prompt:    prompt,
		MaxTokens: suggestionMaxToken,
	})
	metrics.ObserveCall("restaurant_suggestion", start, err)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSuggestionFailed, err)
	}

	name := strings.Trim(strings.TrimSpace(raw), `"'.`)
	if name == "" {
		return nil, ErrNoCandidate
	}
	if cuisine == "" {
		cuisine = "Various"
	}

	return &domain.RestaurantCandidate{
		Name:      name,
		Rating:    suggestedRating,
		Cuisine:   cuisine,
		PriceTier: domain.TierMedium,
	}, nil
}

// EstimatePrice is a tier-based approximation, not a quote.
func (r *Resolver) EstimatePrice(foodItem string, candidate *domain.RestaurantCandidate) string {
	if candidate == nil {
		return defaultPriceRange
	}
	switch candidate.PriceTier {
	case domain.TierLow:
		return "$8-$12"
	case domain.TierMedium:
		return "$12-$20"
	case domain.TierHigh:
		return "$20-$35"
	}
	return defaultPriceRange
}
