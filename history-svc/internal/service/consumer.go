package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"

	"foodvoice/history-svc/internal/domain"
	"foodvoice/history-svc/internal/metrics"

	"github.com/rs/zerolog"
)

type Consumer struct {
	Reader MessageReader
	Store  StoreInterface
	Logger zerolog.Logger
}

func NewConsumer(reader MessageReader, store StoreInterface, logger zerolog.Logger) *Consumer {
	return &Consumer{
		Reader: reader,
		Store:  store,
		Logger: logger.With().Str("component", "consumer").Logger(),
	}
}

// Start reads order events until ctx is cancelled or the reader is closed.
func (c *Consumer) Start(ctx context.Context) {
	c.Logger.Info().Msg("starting order history consumer")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, io.EOF) {
				c.Logger.Info().Msg("order history consumer stopped")
				return
			}
			c.Logger.Error().Err(err).Msg("error reading message")
			continue
		}

		var event domain.OrderEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			metrics.EventsProcessed.WithLabelValues("malformed").Inc()
			c.Logger.Warn().Err(err).Int64("offset", message.Offset).Msg("error unmarshaling message")
			continue
		}

		c.ProcessOrder(ctx, event)
	}
}

// ProcessOrder records one order_placed event. Redelivered events are stored
// once and counted towards popularity once.
func (c *Consumer) ProcessOrder(ctx context.Context, event domain.OrderEvent) {
	if event.Type != domain.EventOrderPlaced {
		metrics.EventsProcessed.WithLabelValues("ignored").Inc()
		return
	}
	logger := c.Logger.With().Str("event_id", event.ID).Str("uid", event.UID).Logger()

	inserted, err := c.Store.SaveOrder(ctx, event)
	if err != nil {
		metrics.EventsProcessed.WithLabelValues("error").Inc()
		logger.Error().Err(err).Msg("error saving order")
		return
	}
	if !inserted {
		metrics.EventsProcessed.WithLabelValues("duplicate").Inc()
		logger.Debug().Msg("order already recorded")
		return
	}

	if event.Restaurant != "" {
		if err := c.Store.UpdatePopularity(ctx, event.Restaurant, event.Timestamp); err != nil {
			metrics.EventsProcessed.WithLabelValues("error").Inc()
			logger.Error().Err(err).Msg("error updating popularity")
			return
		}
	}

	metrics.EventsProcessed.WithLabelValues("recorded").Inc()
	logger.Info().Str("restaurant", event.Restaurant).Str("food_item", event.FoodItem).Msg("order recorded")
}
