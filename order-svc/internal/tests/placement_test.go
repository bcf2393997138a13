package tests

import (
	"context"
	"errors"
	"testing"

	"foodvoice/order-svc/internal/domain"
	"foodvoice/order-svc/internal/mocks"
	"foodvoice/order-svc/internal/service"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestPlacementStrategy_DeepLink(t *testing.T) {
	placer := service.NewPlacementStrategy(nil, service.PlacementConfig{}, zerolog.Nop())

	tests := []struct {
		name   string
		intent domain.OrderIntent
		want   string
	}{
		{
			name:   "known restaurant",
			intent: domain.OrderIntent{FoodItem: "pepperoni pizza", Restaurant: "Pizza Hut"},
			want:   "https://www.doordash.com/store/pizza-hut/?query=pepperoni%20pizza",
		},
		{
			name:   "search with cuisine",
			intent: domain.OrderIntent{FoodItem: "pad thai", Cuisine: "Thai"},
			want:   "https://www.doordash.com/search/?query=pad%20thai&cuisine=Thai",
		},
		{
			name:   "reserved characters are escaped",
			intent: domain.OrderIntent{FoodItem: "mac & cheese"},
			want:   "https://www.doordash.com/search/?query=mac%20%26%20cheese",
		},
		{
			name:   "store without food",
			intent: domain.OrderIntent{Restaurant: "Five Guys"},
			want:   "https://www.doordash.com/store/five-guys/",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.want, placer.DeepLink(testCase.intent))
			assert.Equal(t, placer.DeepLink(testCase.intent), placer.DeepLink(testCase.intent))
		})
	}
}

func TestPlacementStrategy_CustomBaseURL(t *testing.T) {
	placer := service.NewPlacementStrategy(nil, service.PlacementConfig{BaseURL: "https://order.example.com/"}, zerolog.Nop())

	assert.Equal(t, "https://order.example.com/search/?query=ramen",
		placer.DeepLink(domain.OrderIntent{FoodItem: "ramen"}))
}

func TestPlacementStrategy_Place(t *testing.T) {
	intent := domain.OrderIntent{FoodItem: "burrito", Restaurant: "Chipotle", DietaryRestrictions: []string{"vegetarian"}}

	tests := []struct {
		name         string
		prepareMocks func(browser *mocks.Browser)
		wantStatus   domain.OrderStatus
		wantTracking string
	}{
		{
			name: "automation completes",
			prepareMocks: func(browser *mocks.Browser) {
				browser.On("Browse", mock.Anything, domain.BrowseRequest{
					Command:  "Go to https://www.doordash.com, search for 'Chipotle', add 'burrito' to cart, and go to checkout (filter for vegetarian options)",
					URL:      "https://www.doordash.com",
					MaxSteps: 10,
				}).Return(&domain.BrowseResponse{Status: "DONE"}, nil).Once()
			},
			wantStatus:   domain.StatusSuccess,
			wantTracking: "https://www.doordash.com/orders/",
		},
		{
			name: "automation errors",
			prepareMocks: func(browser *mocks.Browser) {
				browser.On("Browse", mock.Anything, mock.Anything).Return(nil, errors.New("captcha")).Once()
			},
			wantStatus: domain.StatusPending,
		},
		{
			name: "automation never finishes",
			prepareMocks: func(browser *mocks.Browser) {
				browser.On("Browse", mock.Anything, mock.Anything).Return(&domain.BrowseResponse{Status: "CONTINUE"}, nil).Once()
			},
			wantStatus: domain.StatusPending,
		},
		{
			name: "automation panics",
			prepareMocks: func(browser *mocks.Browser) {
				browser.On("Browse", mock.Anything, mock.Anything).
					Run(func(args mock.Arguments) { panic("driver crashed") }).
					Return(nil, nil).Once()
			},
			wantStatus: domain.StatusPending,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			browser := mocks.NewBrowser(t)
			testCase.prepareMocks(browser)
			placer := service.NewPlacementStrategy(browser, service.PlacementConfig{}, zerolog.Nop())

			result := placer.Place(context.Background(), intent)

			assert.Equal(t, testCase.wantStatus, result.Status)
			assert.Equal(t, "Chipotle", result.Restaurant)
			assert.Equal(t, []string{"burrito"}, result.Items)
			assert.Equal(t, testCase.wantTracking, result.TrackingURL)
			if result.Status == domain.StatusPending {
				assert.Equal(t, "https://www.doordash.com/store/chipotle/?query=burrito", result.DeepLink)
			}
		})
	}
}

func TestPlacementStrategy_PlaceWithoutAutomation(t *testing.T) {
	placer := service.NewPlacementStrategy(nil, service.PlacementConfig{}, zerolog.Nop())

	intents := []domain.OrderIntent{
		{FoodItem: "pad thai"},
		{FoodItem: "pepperoni pizza", Restaurant: "Pizza Hut"},
		{FoodItem: "tacos", Cuisine: "Mexican", DietaryRestrictions: []string{"gluten-free"}},
	}

	for _, intent := range intents {
		result := placer.Place(context.Background(), intent)
		assert.Equal(t, domain.StatusPending, result.Status)
		assert.NotEmpty(t, result.DeepLink)
		assert.NotEmpty(t, result.Restaurant)
	}

	result := placer.Place(context.Background(), domain.OrderIntent{FoodItem: "pad thai"})
	assert.Equal(t, "Search: pad thai", result.Restaurant)
}

func TestPlacementStrategy_BrowseCommandWithoutRestaurant(t *testing.T) {
	placer := service.NewPlacementStrategy(nil, service.PlacementConfig{}, zerolog.Nop())

	assert.Equal(t,
		"Go to https://www.doordash.com, search for 'ramen', pick the highest rated restaurant, add it to cart, and go to checkout",
		placer.BrowseCommand(domain.OrderIntent{FoodItem: "ramen"}))
}
