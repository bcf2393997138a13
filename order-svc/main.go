package main

import (
	"context"
	"net/http"
	"time"

	"foodvoice/config"
	httpapi "foodvoice/order-svc/internal/api/http"
	"foodvoice/order-svc/internal/clients"
	"foodvoice/order-svc/internal/domain"
	"foodvoice/order-svc/internal/service"
	"foodvoice/order-svc/internal/storage"

	"github.com/rs/zerolog"
)

func main() {
	logger := config.NewLogger("order-svc")
	config.LoadEnv(logger)

	httpClient := &http.Client{Timeout: config.GetDuration("HTTP_TIMEOUT", 30*time.Second)}
	components := map[string]string{}

	kv, closeStore := initStore(logger, components)
	defer closeStore()
	profiles := storage.NewProfileStore(kv, logger)

	model := clients.NewAnthropicClient(clients.AnthropicConfig{
		APIKey:  config.GetEnv("ANTHROPIC_API_KEY", ""),
		Model:   config.GetEnv("ANTHROPIC_MODEL", clients.DefaultAnthropicModel),
		BaseURL: config.GetEnv("ANTHROPIC_BASE_URL", clients.DefaultAnthropicBaseURL),
	}, httpClient)
	components["language_model"] = availability(model.Available())

	var suggester service.LanguageModel
	if model.Available() {
		suggester = model
	} else {
		logger.Warn().Msg("ANTHROPIC_API_KEY not set, intent extraction disabled")
	}

	var browser service.Browser
	multion := clients.NewMultiOnClient(clients.MultiOnConfig{
		APIKey:  config.GetEnv("MULTION_API_KEY", ""),
		BaseURL: config.GetEnv("MULTION_BASE_URL", clients.DefaultMultiOnBaseURL),
	}, httpClient)
	if multion.Available() {
		browser = multion
	}
	components["automation"] = availability(multion.Available())

	notifier := clients.NewOmiNotifier(clients.OmiConfig{
		APIKey:  config.GetEnv("OMI_API_KEY", ""),
		AppID:   config.GetEnv("OMI_APP_ID", ""),
		BaseURL: config.GetEnv("OMI_BASE_URL", clients.DefaultOmiBaseURL),
	}, httpClient, logger)
	components["notifications"] = "live"
	if notifier.DemoMode() {
		components["notifications"] = "demo"
	}

	var publisher service.OrderPublisher
	if broker := config.GetEnv("KAFKA_BROKER", ""); broker != "" {
		writer := config.NewKafkaWriter(broker, config.GetEnv("ORDER_EVENTS_TOPIC", "orders"))
		defer writer.Close()
		publisher = storage.NewKafkaPublisher(writer)
		components["events"] = "kafka"
	} else {
		components["events"] = "disabled"
	}

	maxTier := domain.TierUnknown
	if raw := config.GetEnv("MAX_PRICE_TIER", ""); raw != "" {
		parsed, err := domain.ParsePriceTier(raw)
		if err != nil {
			logger.Warn().Err(err).Msg("ignoring MAX_PRICE_TIER")
		}
		maxTier = parsed
	}

	placer := service.NewPlacementStrategy(browser, service.PlacementConfig{
		BaseURL:  config.GetEnv("ORDERING_BASE_URL", service.DefaultOrderingBaseURL),
		MaxSteps: config.GetInt("AUTOMATION_MAX_STEPS", service.DefaultMaxSteps),
	}, logger)

	pipeline := service.NewOrderPipeline(
		service.NewKeywordGate(),
		service.NewExtractor(model, logger),
		service.NewResolver(nil, suggester, logger),
		placer,
		profiles,
		notifier,
		publisher,
		service.PipelineConfig{
			SessionTTL:   config.GetDuration("SESSION_TTL", service.DefaultSessionTTL),
			FallbackUID:  config.GetEnv("FALLBACK_UID", service.DefaultFallbackUID),
			MaxPriceTier: maxTier,
		},
		logger,
	)

	handler := httpapi.NewHandler(pipeline, profiles, service.DeepLinkQR{Size: 256}, components, logger)
	router := httpapi.NewRouter(handler)

	config.RunServer(logger, ":"+config.GetEnv("PORT", "8080"), router)
}

// initStore prefers redis and degrades to the in-process store when redis
// is unreachable at startup or fails later on.
func initStore(logger zerolog.Logger, components map[string]string) (storage.KeyValue, func()) {
	memory := storage.NewMemoryKV()

	client, err := config.InitRedis(context.Background(), config.GetEnv("REDIS_URL", "redis://localhost:6379"))
	if err != nil {
		logger.Warn().Err(err).Msg("redis unavailable, using in-memory profile store")
		components["store"] = "memory"
		return memory, func() {}
	}

	components["store"] = "redis"
	return storage.NewFallbackKV(storage.NewRedisKV(client), memory, logger), func() {
		if err := client.Close(); err != nil {
			logger.Error().Err(err).Msg("failed to close redis client")
		}
	}
}

func availability(ok bool) string {
	if ok {
		return "configured"
	}
	return "not_configured"
}
