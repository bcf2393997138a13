package service

import (
	"context"
	"errors"
	"fmt"

	"foodvoice/history-svc/internal/domain"
)

const (
	DefaultOrderLimit   = 20
	DefaultPopularLimit = 10
	MaxLimit            = 100
)

var (
	ErrMissingUID    = errors.New("uid is required")
	ErrInvalidPeriod = errors.New("period must be today or all")
)

type HistoryService struct {
	Store HistoryStore
}

func NewHistoryService(store HistoryStore) *HistoryService {
	return &HistoryService{Store: store}
}

func (s *HistoryService) UserOrders(ctx context.Context, uid string, limit int) ([]domain.OrderRecord, error) {
	if uid == "" {
		return nil, ErrMissingUID
	}
	orders, err := s.Store.ListUserOrders(ctx, uid, clampLimit(limit, DefaultOrderLimit))
	if err != nil {
		return nil, fmt.Errorf("list orders for %s: %w", uid, err)
	}
	if orders == nil {
		orders = []domain.OrderRecord{}
	}
	return orders, nil
}

// PopularRestaurants ranks restaurants by order count. An empty period means
// all time.
func (s *HistoryService) PopularRestaurants(ctx context.Context, period string, limit int) ([]domain.RestaurantPopularity, error) {
	p := domain.Period(period)
	switch p {
	case "":
		p = domain.PeriodAll
	case domain.PeriodToday, domain.PeriodAll:
	default:
		return nil, ErrInvalidPeriod
	}

	ranking, err := s.Store.TopRestaurants(ctx, p, clampLimit(limit, DefaultPopularLimit))
	if err != nil {
		return nil, fmt.Errorf("top restaurants (%s): %w", p, err)
	}
	if ranking == nil {
		ranking = []domain.RestaurantPopularity{}
	}
	return ranking, nil
}

func clampLimit(limit, defaultLimit int) int {
	if limit <= 0 {
		return defaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}
