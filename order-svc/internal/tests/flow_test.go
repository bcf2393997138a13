package tests

import (
	"context"
	"testing"

	"foodvoice/order-svc/internal/clients"
	"foodvoice/order-svc/internal/domain"
	"foodvoice/order-svc/internal/mocks"
	"foodvoice/order-svc/internal/service"
	"foodvoice/order-svc/internal/storage"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// newFlowPipeline wires the real resolver, placement, profile store and a
// demo-mode notifier around a mocked extractor.
func newFlowPipeline(t *testing.T, extractor service.IntentExtractor) (*service.OrderPipeline, *storage.ProfileStore) {
	logger := zerolog.Nop()
	profiles := storage.NewProfileStore(storage.NewMemoryKV(), logger)
	pipeline := service.NewOrderPipeline(
		service.NewKeywordGate(),
		extractor,
		service.NewResolver(nil, nil, logger),
		service.NewPlacementStrategy(nil, service.PlacementConfig{}, logger),
		profiles,
		clients.NewOmiNotifier(clients.OmiConfig{}, mocks.NewHTTPClient(t), logger),
		nil,
		service.PipelineConfig{},
		logger,
	)
	return pipeline, profiles
}

func TestOrderFlow_RepeatOrdersBuildFavorites(t *testing.T) {
	extractor := mocks.NewIntentExtractor(t)
	extractor.On("Extract", mock.Anything, "I want pepperoni pizza from Pizza Hut").
		Return(pizzaHutIntent(), nil).Once()
	extractor.On("Extract", mock.Anything, "get me my usual").
		Return(&domain.OrderIntent{QuickOrder: true, DietaryRestrictions: []string{}}, nil)

	pipeline, profiles := newFlowPipeline(t, extractor)
	ctx := context.Background()

	outcome := pipeline.ProcessTranscript(ctx, userSays("s1", "I want pepperoni pizza from Pizza Hut"), "u1")
	require.Equal(t, domain.OutcomeSuccess, outcome.Status)
	assert.Equal(t, domain.StatusPending, outcome.Result.Status)
	assert.Equal(t, pizzaHutLink, outcome.Result.DeepLink)
	assert.Equal(t, "$12-$20", outcome.PriceEstimate)

	const repeats = 3
	for i := 0; i < repeats; i++ {
		outcome = pipeline.ProcessTranscript(ctx, userSays("s1", "get me my usual"), "")
		require.Equal(t, domain.OutcomeSuccess, outcome.Status)
		assert.Equal(t, "Pizza Hut", outcome.Order.Restaurant)
	}

	profile, err := profiles.GetProfile(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, profile.FavoriteOrders, 1)
	assert.Equal(t, repeats+1, profile.FavoriteOrders[0].OrderCount)

	link, err := pipeline.LastOrderDeepLink(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, pizzaHutLink, link)
}

func TestOrderFlow_QuickOrderForNewUser(t *testing.T) {
	extractor := mocks.NewIntentExtractor(t)
	extractor.On("Extract", mock.Anything, mock.Anything).
		Return(&domain.OrderIntent{QuickOrder: true, DietaryRestrictions: []string{}}, nil).Once()

	pipeline, profiles := newFlowPipeline(t, extractor)
	ctx := context.Background()

	outcome := pipeline.ProcessTranscript(ctx, userSays("s9", "order my usual"), "new-user")
	assert.Equal(t, domain.OutcomeNoPrevious, outcome.Status)

	profile, err := profiles.GetProfile(ctx, "new-user")
	require.NoError(t, err)
	assert.Nil(t, profile.LastOrder)
}
