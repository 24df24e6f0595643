package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

// StoragePinger reports database reachability. A nil pinger means the
// service runs on the in-memory store.
type StoragePinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler provides the root and health check endpoints.
type HealthHandler struct {
	storage StoragePinger
	log     *slog.Logger
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(storage StoragePinger, log *slog.Logger) *HealthHandler {
	return &HealthHandler{
		storage: storage,
		log:     log,
	}
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
	Storage   string    `json:"storage"`
}

// Root handles GET /
func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{
		"service": "RTU Canteen API",
		"status":  "ok",
	}, h.log)
}

// Health handles GET /health, reporting storage reachability alongside
// the service status.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	storage := "in-memory"
	if h.storage != nil {
		storage = "connected"
		if err := h.storage.Ping(r.Context()); err != nil {
			h.log.Warn("storage ping failed", "error", err)
			storage = "unreachable"
		}
	}

	WriteJSON(w, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Version:   "1.0.0",
		Storage:   storage,
	}, h.log)
}
