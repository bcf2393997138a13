package service

import (
	"context"
	"time"

	"foodvoice/history-svc/internal/domain"
	"foodvoice/history-svc/internal/storage"

	"github.com/segmentio/kafka-go"
)

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

// StoreInterface is the write side used by the consumer. SaveOrder reports
// false when the event id was already recorded.
type StoreInterface interface {
	SaveOrder(ctx context.Context, event domain.OrderEvent) (bool, error)
	UpdatePopularity(ctx context.Context, restaurant string, at time.Time) error
}

type HistoryStore interface {
	ListUserOrders(ctx context.Context, uid string, limit int) ([]domain.OrderRecord, error)
	TopRestaurants(ctx context.Context, period domain.Period, limit int) ([]domain.RestaurantPopularity, error)
}

type ConsumerInterface interface {
	Start(ctx context.Context)
	ProcessOrder(ctx context.Context, event domain.OrderEvent)
}

type HistoryInterface interface {
	UserOrders(ctx context.Context, uid string, limit int) ([]domain.OrderRecord, error)
	PopularRestaurants(ctx context.Context, period string, limit int) ([]domain.RestaurantPopularity, error)
}

var (
	_ StoreInterface    = (*storage.Store)(nil)
	_ HistoryStore      = (*storage.Store)(nil)
	_ ConsumerInterface = (*Consumer)(nil)
	_ HistoryInterface  = (*HistoryService)(nil)
)
