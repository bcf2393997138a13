package gateway

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Config struct {
	OrderSvcURL   string
	HistorySvcURL string
}

type Gateway struct {
	config Config
	client HTTPClient
	logger zerolog.Logger
}

func NewGateway(config Config, client HTTPClient, logger zerolog.Logger) *Gateway {
	return &Gateway{
		config: config,
		client: client,
		logger: logger.With().Str("component", "gateway").Logger(),
	}
}

func (g *Gateway) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]string{
		"status":  "healthy",
		"service": "api-gateway",
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (g *Gateway) ProxyRequest(w http.ResponseWriter, r *http.Request, targetURL string) {
	g.logger.Debug().Str("method", r.Method).Str("path", r.URL.Path).Str("target", targetURL).Msg("proxy")

	url := targetURL + r.URL.Path
	if r.URL.RawQuery != "" {
		url += "?" + r.URL.RawQuery
	}

	req, err := http.NewRequestWithContext(r.Context(), r.Method, url, r.Body)
	if err != nil {
		g.logger.Error().Err(err).Msg("failed to create request")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	for k, v := range r.Header {
		req.Header[k] = v
	}

	resp, err := g.client.Do(req)
	if err != nil {
		g.logger.Error().Err(err).Str("target", targetURL).Msg("failed to proxy")
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	defer resp.Body.Close()

	for k, v := range resp.Header {
		w.Header()[k] = v
	}
	w.WriteHeader(resp.StatusCode)

	if _, err := io.Copy(w, resp.Body); err != nil {
		g.logger.Warn().Err(err).Msg("failed to copy response")
	}
}

// target picks the backend for path, or "" when no service owns it.
func (g *Gateway) target(path string) string {
	if path == "/" || strings.HasPrefix(path, "/webhook/") || strings.HasPrefix(path, "/profile/") {
		return g.config.OrderSvcURL
	}

	if strings.HasPrefix(path, "/api/users/") {
		parts := strings.Split(strings.TrimPrefix(path, "/api/users/"), "/")
		if len(parts) >= 2 && parts[0] != "" {
			switch {
			case parts[1] == "last-order" && len(parts) >= 3:
				return g.config.OrderSvcURL
			case parts[1] == "orders" && len(parts) == 2:
				return g.config.HistorySvcURL
			}
		}
		return ""
	}

	if path == "/api/restaurants/popular" {
		return g.config.HistorySvcURL
	}

	return ""
}

func (g *Gateway) RouteHandler(w http.ResponseWriter, r *http.Request) {
	target := g.target(r.URL.Path)
	if target == "" {
		g.logger.Debug().Str("path", r.URL.Path).Msg("unmatched route")
		if strings.HasPrefix(r.URL.Path, "/api/") {
			http.Error(w, "API route not found", http.StatusNotFound)
			return
		}
		http.NotFound(w, r)
		return
	}
	g.ProxyRequest(w, r, target)
}

func (g *Gateway) SetupRoutes() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/health", g.HealthCheck).Methods("GET")
	r.PathPrefix("/").HandlerFunc(g.RouteHandler)
	return r
}
