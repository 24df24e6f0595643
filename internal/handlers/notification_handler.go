package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/rtu-canteen/canteen-api/internal/service"
)

// NotificationHandler handles admin notification requests.
type NotificationHandler struct {
	service *service.NotificationService
	log     *slog.Logger
}

// NewNotificationHandler creates a new notification handler.
func NewNotificationHandler(service *service.NotificationService, log *slog.Logger) *NotificationHandler {
	return &NotificationHandler{
		service: service,
		log:     log,
	}
}

type sendSummaryRequest struct {
	To string `json:"to"`
}

// SendSummary handles POST /api/notifications/summary
// The body is optional; an empty or absent "to" falls back to the
// configured admin phone.
func (h *NotificationHandler) SendSummary(w http.ResponseWriter, r *http.Request) {
	var req sendSummaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		h.log.Error("failed to decode notification request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	result, err := h.service.SendSummary(r.Context(), req.To)
	if err != nil {
		if errors.Is(err, service.ErrNoRecipient) {
			WriteError(w, http.StatusBadRequest, "No recipient phone number configured", h.log)
			return
		}

		h.log.Error("failed to send summary", "error", err)
		// Transport failed after formatting; return the preview so the
		// caller can see what was attempted.
		if result != nil {
			WriteJSON(w, http.StatusBadGateway, result, h.log)
			return
		}
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, result, h.log)
	h.log.Info("summary notification handled", "sent", result.Sent)
}
