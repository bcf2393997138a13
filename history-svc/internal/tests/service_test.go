package tests

import (
	"context"
	"errors"
	"testing"

	"foodvoice/history-svc/internal/domain"
	"foodvoice/history-svc/internal/mocks"
	"foodvoice/history-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestHistoryService_UserOrders(t *testing.T) {
	tests := []struct {
		name         string
		uid          string
		limit        int
		prepareMocks func(store *mocks.HistoryStore)
		wantLen      int
		wantErr      error
	}{
		{
			name:  "default limit",
			uid:   "u1",
			limit: 0,
			prepareMocks: func(store *mocks.HistoryStore) {
				store.On("ListUserOrders", mock.Anything, "u1", service.DefaultOrderLimit).
					Return([]domain.OrderRecord{{ID: "evt-1"}}, nil).Once()
			},
			wantLen: 1,
		},
		{
			name:  "limit capped",
			uid:   "u1",
			limit: 5000,
			prepareMocks: func(store *mocks.HistoryStore) {
				store.On("ListUserOrders", mock.Anything, "u1", service.MaxLimit).
					Return(nil, nil).Once()
			},
		},
		{
			name:         "missing uid",
			prepareMocks: func(store *mocks.HistoryStore) {},
			wantErr:      service.ErrMissingUID,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			store := mocks.NewHistoryStore(t)
			testCase.prepareMocks(store)

			orders, err := service.NewHistoryService(store).UserOrders(context.Background(), testCase.uid, testCase.limit)
			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, orders)
			assert.Len(t, orders, testCase.wantLen)
		})
	}
}

func TestHistoryService_UserOrdersStoreError(t *testing.T) {
	store := mocks.NewHistoryStore(t)
	dbErr := errors.New("db connection failed")
	store.On("ListUserOrders", mock.Anything, "u1", 3).Return(nil, dbErr).Once()

	_, err := service.NewHistoryService(store).UserOrders(context.Background(), "u1", 3)
	assert.ErrorIs(t, err, dbErr)
}

func TestHistoryService_PopularRestaurants(t *testing.T) {
	ranking := []domain.RestaurantPopularity{{Restaurant: "Pizza Hut", Orders: 4}}

	tests := []struct {
		name         string
		period       string
		limit        int
		prepareMocks func(store *mocks.HistoryStore)
		want         []domain.RestaurantPopularity
		wantErr      error
	}{
		{
			name:   "empty period means all time",
			period: "",
			prepareMocks: func(store *mocks.HistoryStore) {
				store.On("TopRestaurants", mock.Anything, domain.PeriodAll, service.DefaultPopularLimit).
					Return(ranking, nil).Once()
			},
			want: ranking,
		},
		{
			name:   "today",
			period: "today",
			limit:  3,
			prepareMocks: func(store *mocks.HistoryStore) {
				store.On("TopRestaurants", mock.Anything, domain.PeriodToday, 3).Return(nil, nil).Once()
			},
			want: []domain.RestaurantPopularity{},
		},
		{
			name:         "unknown period",
			period:       "weekly",
			prepareMocks: func(store *mocks.HistoryStore) {},
			wantErr:      service.ErrInvalidPeriod,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			store := mocks.NewHistoryStore(t)
			testCase.prepareMocks(store)

			got, err := service.NewHistoryService(store).PopularRestaurants(context.Background(), testCase.period, testCase.limit)
			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.want, got)
		})
	}
}
