package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"foodvoice/order-svc/internal/domain"
	"foodvoice/order-svc/internal/service"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

const maxBodyBytes = 1 << 20

type Handler struct {
	Orders   service.OrderPipelineInterface
	Profiles service.ProfileStore
	QR       service.QRGenerator
	// Components is reported verbatim by /health, e.g. "store": "redis".
	Components map[string]string
	Logger     zerolog.Logger
}

func NewHandler(orders service.OrderPipelineInterface, profiles service.ProfileStore, qr service.QRGenerator, components map[string]string, logger zerolog.Logger) *Handler {
	return &Handler{
		Orders:     orders,
		Profiles:   profiles,
		QR:         qr,
		Components: components,
		Logger:     logger,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/", h.root).Methods("GET")
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/webhook/transcript", h.transcriptWebhook).Methods("POST")
	r.HandleFunc("/webhook/memory", h.memoryWebhook).Methods("POST")

	r.HandleFunc("/profile/{uid}", h.getProfile).Methods("GET")
	r.HandleFunc("/profile/{uid}/setup", h.setupProfile).Methods("POST")

	r.HandleFunc("/api/users/{uid}/last-order/qrcode", h.lastOrderQRCode).Methods("GET")
}

func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"service": "order-svc",
		"status":  "running",
		"endpoints": []string{
			"POST /webhook/transcript",
			"POST /webhook/memory",
			"GET /profile/{uid}",
			"POST /profile/{uid}/setup",
			"GET /api/users/{uid}/last-order/qrcode",
		},
	})
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":     "healthy",
		"service":    "order-svc",
		"components": h.Components,
		"timestamp":  time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) transcriptWebhook(w http.ResponseWriter, r *http.Request) {
	var webhook domain.TranscriptWebhook
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&webhook); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}

	outcome := h.processTranscript(r, webhook, r.URL.Query().Get("uid"))
	writeJSON(w, http.StatusOK, outcome)
}

// processTranscript turns a pipeline panic into an error outcome so the
// webhook caller always gets a structured reply.
func (h *Handler) processTranscript(r *http.Request, webhook domain.TranscriptWebhook, uid string) (outcome domain.Outcome) {
	defer func() {
		if rec := recover(); rec != nil {
			h.Logger.Error().Interface("panic", rec).Str("session_id", webhook.SessionID).Msg("transcript processing panicked")
			outcome = domain.Outcome{Status: domain.OutcomeError, Message: fmt.Sprint(rec)}
		}
	}()
	return h.Orders.ProcessTranscript(r.Context(), webhook, uid)
}

func (h *Handler) memoryWebhook(w http.ResponseWriter, r *http.Request) {
	var webhook domain.MemoryWebhook
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&webhook); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	if webhook.UID == "" {
		webhook.UID = r.URL.Query().Get("uid")
	}
	if webhook.UID == "" {
		http.Error(w, "uid is required", http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, h.Orders.ProcessMemory(r.Context(), webhook))
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	uid := mux.Vars(r)["uid"]
	profile, err := h.Profiles.GetProfile(r.Context(), uid)
	if err != nil {
		h.Logger.Warn().Err(err).Str("uid", uid).Msg("profile read degraded")
	}
	writeJSON(w, http.StatusOK, profile)
}

func (h *Handler) setupProfile(w http.ResponseWriter, r *http.Request) {
	uid := mux.Vars(r)["uid"]
	var update domain.ProfileUpdate
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&update); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}

	profile, err := h.Profiles.SetupProfile(r.Context(), uid, update)
	if err != nil {
		h.Logger.Error().Err(err).Str("uid", uid).Msg("profile setup failed")
		http.Error(w, "Failed to save profile", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"profile": profile,
	})
}

func (h *Handler) lastOrderQRCode(w http.ResponseWriter, r *http.Request) {
	uid := mux.Vars(r)["uid"]
	link, err := h.Orders.LastOrderDeepLink(r.Context(), uid)
	if errors.Is(err, service.ErrNoLastOrder) {
		http.Error(w, "No previous order", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	png, err := h.QR.Encode(link)
	if err != nil {
		h.Logger.Error().Err(err).Str("uid", uid).Msg("failed to generate QR code")
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("X-Deep-Link", link)
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
