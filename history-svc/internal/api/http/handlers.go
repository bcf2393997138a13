package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"foodvoice/history-svc/internal/service"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

type Handler struct {
	History service.HistoryInterface
	Logger  zerolog.Logger
}

func NewHandler(history service.HistoryInterface, logger zerolog.Logger) *Handler {
	return &Handler{
		History: history,
		Logger:  logger.With().Str("component", "http").Logger(),
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.health).Methods("GET")
	r.HandleFunc("/api/users/{uid}/orders", h.getUserOrders).Methods("GET")
	r.HandleFunc("/api/restaurants/popular", h.getPopularRestaurants).Methods("GET")
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"service":   "history-svc",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *Handler) getUserOrders(w http.ResponseWriter, r *http.Request) {
	uid := mux.Vars(r)["uid"]
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	orders, err := h.History.UserOrders(r.Context(), uid, limit)
	if err != nil {
		if errors.Is(err, service.ErrMissingUID) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.Logger.Error().Err(err).Str("uid", uid).Msg("failed to list orders")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"status": "error", "message": "order history unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) getPopularRestaurants(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	limit, _ := strconv.Atoi(query.Get("limit"))

	ranking, err := h.History.PopularRestaurants(r.Context(), query.Get("period"), limit)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPeriod) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.Logger.Warn().Err(err).Msg("popularity unavailable")
		writeJSON(w, http.StatusOK, []interface{}{})
		return
	}
	writeJSON(w, http.StatusOK, ranking)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
