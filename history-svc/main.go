package main

import (
	"context"

	"foodvoice/config"
	httpapi "foodvoice/history-svc/internal/api/http"
	"foodvoice/history-svc/internal/service"
	"foodvoice/history-svc/internal/storage"
)

func main() {
	logger := config.NewLogger("history-svc")
	config.LoadEnv(logger)

	db := config.MustInitPostgres(logger)
	defer db.Close()

	rdb := config.MustInitRedis(logger)
	defer rdb.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := storage.NewStore(db, rdb)
	if err := store.EnsureSchema(ctx); err != nil {
		logger.Fatal().Err(err).Msg("failed to prepare schema")
	}

	reader := config.NewKafkaReader(
		config.GetEnv("KAFKA_BROKER", "localhost:9092"),
		config.GetEnv("ORDER_EVENTS_TOPIC", "orders"),
		config.GetEnv("CONSUMER_GROUP", "history-svc-consumer"),
	)
	consumer := service.NewConsumer(reader, store, logger)

	done := make(chan struct{})
	go func() {
		defer close(done)
		consumer.Start(ctx)
	}()

	handler := httpapi.NewHandler(service.NewHistoryService(store), logger)
	config.RunServer(logger, ":"+config.GetEnv("PORT", "8081"), httpapi.NewRouter(handler), func() {
		cancel()
		<-done
		if err := reader.Close(); err != nil {
			logger.Warn().Err(err).Msg("failed to close kafka reader")
		}
	})
}
