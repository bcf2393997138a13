package tests

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	httpapi "foodvoice/history-svc/internal/api/http"
	"foodvoice/history-svc/internal/domain"
	"foodvoice/history-svc/internal/mocks"
	"foodvoice/history-svc/internal/service"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func serveHistory(t *testing.T, prepareMocks func(history *mocks.HistoryInterface), target string) *httptest.ResponseRecorder {
	history := mocks.NewHistoryInterface(t)
	prepareMocks(history)

	router := httpapi.NewRouter(httpapi.NewHandler(history, zerolog.Nop()))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", target, nil))
	return w
}

func TestUserOrdersHandler(t *testing.T) {
	tests := []struct {
		name         string
		target       string
		prepareMocks func(history *mocks.HistoryInterface)
		wantCode     int
		wantLen      int
	}{
		{
			name:   "orders newest first",
			target: "/api/users/u1/orders?limit=2",
			prepareMocks: func(history *mocks.HistoryInterface) {
				history.On("UserOrders", mock.Anything, "u1", 2).Return([]domain.OrderRecord{
					{ID: "evt-2", UID: "u1", Restaurant: "Chipotle"},
					{ID: "evt-1", UID: "u1", Restaurant: "Pizza Hut"},
				}, nil).Once()
			},
			wantCode: http.StatusOK,
			wantLen:  2,
		},
		{
			name:   "invalid limit falls back to default",
			target: "/api/users/u1/orders?limit=abc",
			prepareMocks: func(history *mocks.HistoryInterface) {
				history.On("UserOrders", mock.Anything, "u1", 0).Return([]domain.OrderRecord{}, nil).Once()
			},
			wantCode: http.StatusOK,
		},
		{
			name:   "store failure",
			target: "/api/users/u1/orders",
			prepareMocks: func(history *mocks.HistoryInterface) {
				history.On("UserOrders", mock.Anything, "u1", 0).Return(nil, errors.New("db down")).Once()
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			w := serveHistory(t, testCase.prepareMocks, testCase.target)

			assert.Equal(t, testCase.wantCode, w.Code)
			if testCase.wantCode == http.StatusOK {
				var orders []domain.OrderRecord
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
				assert.Len(t, orders, testCase.wantLen)
			}
		})
	}
}

func TestPopularRestaurantsHandler(t *testing.T) {
	tests := []struct {
		name         string
		target       string
		prepareMocks func(history *mocks.HistoryInterface)
		wantCode     int
		wantBody     string
	}{
		{
			name:   "ranking",
			target: "/api/restaurants/popular?period=today&limit=1",
			prepareMocks: func(history *mocks.HistoryInterface) {
				history.On("PopularRestaurants", mock.Anything, "today", 1).
					Return([]domain.RestaurantPopularity{{Restaurant: "Pizza Hut", Orders: 2}}, nil).Once()
			},
			wantCode: http.StatusOK,
			wantBody: `[{"restaurant":"Pizza Hut","orders":2}]`,
		},
		{
			name:   "bad period",
			target: "/api/restaurants/popular?period=weekly",
			prepareMocks: func(history *mocks.HistoryInterface) {
				history.On("PopularRestaurants", mock.Anything, "weekly", 0).Return(nil, service.ErrInvalidPeriod).Once()
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name:   "redis down answers empty",
			target: "/api/restaurants/popular",
			prepareMocks: func(history *mocks.HistoryInterface) {
				history.On("PopularRestaurants", mock.Anything, "", 0).Return(nil, errors.New("redis down")).Once()
			},
			wantCode: http.StatusOK,
			wantBody: `[]`,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			w := serveHistory(t, testCase.prepareMocks, testCase.target)

			assert.Equal(t, testCase.wantCode, w.Code)
			if testCase.wantBody != "" {
				assert.JSONEq(t, testCase.wantBody, w.Body.String())
			}
		})
	}
}

func TestHistoryHealthAndMetrics(t *testing.T) {
	w := serveHistory(t, func(history *mocks.HistoryInterface) {}, "/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"service":"history-svc"`)

	w = serveHistory(t, func(history *mocks.HistoryInterface) {}, "/metrics")
	assert.Equal(t, http.StatusOK, w.Code)
}
