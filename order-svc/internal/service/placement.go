package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"foodvoice/order-svc/internal/domain"
	"foodvoice/order-svc/internal/metrics"

	"github.com/rs/zerolog"
)

var ErrAutomationIncomplete = errors.New("automation did not report completion")

const (
	DefaultOrderingBaseURL = "https://www.doordash.com"
	DefaultMaxSteps        = 10
)

type PlacementConfig struct {
	BaseURL  string
	MaxSteps int
}

// PlacementStrategy tries browser automation first and always ends with a
// result: a tracked order, or a deep link the user completes by hand.
type PlacementStrategy struct {
	browser Browser
	config  PlacementConfig
	logger  zerolog.Logger
}

// NewPlacementStrategy accepts a nil browser; automation is then skipped.
func NewPlacementStrategy(browser Browser, config PlacementConfig, logger zerolog.Logger) *PlacementStrategy {
	if config.BaseURL == "" {
		config.BaseURL = DefaultOrderingBaseURL
	}
	config.BaseURL = strings.TrimRight(config.BaseURL, "/")
	if config.MaxSteps <= 0 {
		config.MaxSteps = DefaultMaxSteps
	}
	return &PlacementStrategy{
		browser: browser,
		config:  config,
		logger:  logger.With().Str("component", "placement").Logger(),
	}
}

func (p *PlacementStrategy) Place(ctx context.Context, intent domain.OrderIntent) domain.OrderResult {
	if p.browser != nil {
		result, err := p.automate(ctx, intent)
		if err == nil {
			metrics.Placements.WithLabelValues(string(result.Status), "automation").Inc()
			return result
		}
		p.logger.Warn().Err(err).Str("food_item", intent.FoodItem).Msg("automation failed, falling back to deep link")
	}

	result := domain.OrderResult{
		Status:     domain.StatusPending,
		Restaurant: intent.Restaurant,
		Items:      []string{intent.FoodItem},
		DeepLink:   p.DeepLink(intent),
	}
	if result.Restaurant == "" {
		result.Restaurant = "Search: " + intent.FoodItem
	}
	metrics.Placements.WithLabelValues(string(result.Status), "deep_link").Inc()
	return result
}

func (p *PlacementStrategy) automate(ctx context.Context, intent domain.OrderIntent) (result domain.OrderResult, err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("automation panicked: %v", recovered)
		}
	}()

	start := time.Now()
	response, err := p.browser.Browse(ctx, domain.BrowseRequest{
		Command:  p.BrowseCommand(intent),
		URL:      p.config.BaseURL,
		MaxSteps: p.config.MaxSteps,
	})
	metrics.ObserveCall("browser_automation", start, err)
	if err != nil {
		return domain.OrderResult{}, err
	}
	if !response.Completed() {
		return domain.OrderResult{}, ErrAutomationIncomplete
	}

	restaurant := intent.Restaurant
	if restaurant == "" {
		restaurant = "Selected restaurant"
	}
	return domain.OrderResult{
		Status:      domain.StatusSuccess,
		Restaurant:  restaurant,
		Items:       []string{intent.FoodItem},
		TrackingURL: p.config.BaseURL + "/orders/",
	}, nil
}

// BrowseCommand renders the natural-language instruction for the automation.
func (p *PlacementStrategy) BrowseCommand(intent domain.OrderIntent) string {
	var command string
	if intent.Restaurant != "" {
		command = fmt.Sprintf("Go to %s, search for '%s', add '%s' to cart, and go to checkout",
			p.config.BaseURL, intent.Restaurant, intent.FoodItem)
	} else {
		command = fmt.Sprintf("Go to %s, search for '%s', pick the highest rated restaurant, add it to cart, and go to checkout",
			p.config.BaseURL, intent.FoodItem)
	}
	if len(intent.DietaryRestrictions) > 0 {
		command += fmt.Sprintf(" (filter for %s options)", strings.Join(intent.DietaryRestrictions, ", "))
	}
	return command
}

// DeepLink is deterministic in its input: a store page when the restaurant is
// known, a search page otherwise.
func (p *PlacementStrategy) DeepLink(intent domain.OrderIntent) string {
	if intent.Restaurant != "" {
		slug := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(intent.Restaurant)), " ", "-")
		link := p.config.BaseURL + "/store/" + slug + "/"
		if intent.FoodItem != "" {
			link += "?query=" + queryEscape(intent.FoodItem)
		}
		return link
	}

	link := p.config.BaseURL + "/search/?query=" + queryEscape(intent.FoodItem)
	if intent.Cuisine != "" {
		link += "&cuisine=" + queryEscape(intent.Cuisine)
	}
	return link
}

// queryEscape encodes spaces as %20 so links read the same in every client.
func queryEscape(value string) string {
	return strings.ReplaceAll(url.QueryEscape(value), "+", "%20")
}
