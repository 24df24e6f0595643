package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/rtu-canteen/canteen-api/internal/models"
	"github.com/rtu-canteen/canteen-api/internal/pricing"
	"github.com/rtu-canteen/canteen-api/internal/service"
)

const recentOrdersLimit = 20

// OrderHandler handles order-related HTTP requests.
type OrderHandler struct {
	orderService *service.OrderService
	log          *slog.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(orderService *service.OrderService, log *slog.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		log:          log,
	}
}

// CreateOrderResponse is the outward shape of a successful placement.
type CreateOrderResponse struct {
	OrderID  string  `json:"order_id"`
	Subtotal float64 `json:"subtotal"`
	Discount float64 `json:"discount"`
	Total    float64 `json:"total"`
	Status   string  `json:"status"`
}

// CreateOrder handles POST /api/orders
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req service.CreateOrderRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error("failed to decode order request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	order, err := h.orderService.PlaceOrder(r.Context(), req)
	if err != nil {
		var unknownErr *pricing.UnknownMenuItemError

		switch {
		case errors.As(err, &unknownErr):
			h.log.Warn("order references unknown menu item", "item", unknownErr.Name)
			WriteError(w, http.StatusBadRequest, unknownErr.Error(), h.log)
		case errors.Is(err, pricing.ErrEmptyOrder):
			WriteError(w, http.StatusBadRequest, "Order must contain at least one item", h.log)
		case errors.Is(err, pricing.ErrInvalidItem):
			WriteError(w, http.StatusBadRequest, "Invalid item in order", h.log)
		case errors.Is(err, service.ErrMissingCustomerInfo):
			WriteError(w, http.StatusBadRequest, "Customer details are required", h.log)
		default:
			h.log.Error("failed to create order", "error", err)
			WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		}
		return
	}

	WriteJSON(w, http.StatusOK, CreateOrderResponse{
		OrderID:  order.ID,
		Subtotal: order.Subtotal,
		Discount: order.Discount,
		Total:    order.Total,
		Status:   order.Status,
	}, h.log)
	h.log.Info("order created",
		"order_id", order.ID,
		"items_count", len(order.Items),
		"total", order.Total,
	)
}

// ListOrders handles GET /api/orders
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderService.RecentOrders(r.Context(), recentOrdersLimit)
	if err != nil {
		h.log.Error("failed to list orders", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	if orders == nil {
		orders = []models.Order{}
	}
	WriteJSON(w, http.StatusOK, map[string][]models.Order{"orders": orders}, h.log)
}
