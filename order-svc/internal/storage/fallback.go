package storage

import (
	"context"
	"errors"
	"time"

	"foodvoice/order-svc/internal/metrics"

	"github.com/rs/zerolog"
)

// FallbackKV serves from primary and drops to secondary whenever primary
// errors. Writes that land on secondary are best effort and never flow back.
type FallbackKV struct {
	primary   KeyValue
	secondary KeyValue
	logger    zerolog.Logger
}

func NewFallbackKV(primary, secondary KeyValue, logger zerolog.Logger) *FallbackKV {
	return &FallbackKV{
		primary:   primary,
		secondary: secondary,
		logger:    logger.With().Str("component", "fallback_kv").Logger(),
	}
}

func (s *FallbackKV) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.primary.Get(ctx, key)
	switch {
	case err == nil:
		return value, nil
	case errors.Is(err, ErrNotFound):
		// A write may have landed locally while primary was down.
		return s.secondary.Get(ctx, key)
	}

	s.logger.Warn().Err(err).Str("key", key).Msg("primary read failed, using in-process store")
	metrics.StoreFallbacks.Inc()
	return s.secondary.Get(ctx, key)
}

func (s *FallbackKV) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := s.primary.Set(ctx, key, value, ttl)
	if err == nil {
		return nil
	}

	s.logger.Warn().Err(err).Str("key", key).Msg("primary write failed, using in-process store")
	metrics.StoreFallbacks.Inc()
	return s.secondary.Set(ctx, key, value, ttl)
}

var _ KeyValue = (*FallbackKV)(nil)
