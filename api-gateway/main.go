package main

import (
	"net/http"
	"time"

	"foodvoice/api-gateway/internal/gateway"
	"foodvoice/config"

	"github.com/rs/cors"
)

func main() {
	logger := config.NewLogger("api-gateway")
	config.LoadEnv(logger)

	gw := gateway.NewGateway(gateway.Config{
		OrderSvcURL:   config.GetEnv("ORDER_SVC_URL", "http://localhost:8080"),
		HistorySvcURL: config.GetEnv("HISTORY_SVC_URL", "http://localhost:8081"),
	}, &http.Client{Timeout: config.GetDuration("HTTP_TIMEOUT", 60*time.Second)}, logger)

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})

	config.RunServer(logger, ":"+config.GetEnv("PORT", "8000"), c.Handler(gw.SetupRoutes()))
}
