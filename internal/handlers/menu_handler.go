package handlers

import (
	"log/slog"
	"net/http"

	"github.com/rtu-canteen/canteen-api/internal/service"
)

// MenuHandler handles menu-related HTTP requests.
type MenuHandler struct {
	service *service.MenuService
	log     *slog.Logger
}

// NewMenuHandler creates a new menu handler.
func NewMenuHandler(service *service.MenuService, log *slog.Logger) *MenuHandler {
	return &MenuHandler{
		service: service,
		log:     log,
	}
}

// GetMenu handles GET /api/menu
func (h *MenuHandler) GetMenu(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.service.GetMenu(), h.log)
}
