package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rtu-canteen/canteen-api/internal/models"
	"github.com/rtu-canteen/canteen-api/internal/pricing"
	"github.com/rtu-canteen/canteen-api/internal/repository"
)

var ErrMissingCustomerInfo = errors.New("customer name, hostel block, room number and phone are required")

// CreateOrderRequest represents an incoming order request.
type CreateOrderRequest struct {
	CustomerName string             `json:"customer_name"`
	HostelBlock  string             `json:"hostel_block"`
	RoomNumber   string             `json:"room_number"`
	Phone        string             `json:"phone"`
	Items        []models.OrderLine `json:"items"`
	Notes        string             `json:"notes,omitempty"`
}

// OrderService handles order business logic: validation, pricing and
// persistence.
type OrderService struct {
	menuItems []models.MenuItem
	repo      repository.OrderRepository
}

// NewOrderService creates a new order service pricing against the
// given menu.
func NewOrderService(menuItems []models.MenuItem, repo repository.OrderRepository) *OrderService {
	return &OrderService{
		menuItems: menuItems,
		repo:      repo,
	}
}

// PlaceOrder validates and prices the request, then persists the
// resulting order. Validation failures abort before anything is
// stored; there are no partial orders.
func (s *OrderService) PlaceOrder(ctx context.Context, req CreateOrderRequest) (*models.Order, error) {
	if req.CustomerName == "" || req.HostelBlock == "" || req.RoomNumber == "" || req.Phone == "" {
		return nil, ErrMissingCustomerInfo
	}

	result, err := pricing.Price(s.menuItems, req.Items)
	if err != nil {
		return nil, err
	}

	order := &models.Order{
		ID:           uuid.New().String(),
		CustomerName: req.CustomerName,
		HostelBlock:  req.HostelBlock,
		RoomNumber:   req.RoomNumber,
		Phone:        req.Phone,
		Items:        result.Items,
		Subtotal:     result.Subtotal,
		Discount:     result.Discount,
		Total:        result.Total,
		Notes:        req.Notes,
		Status:       models.StatusPlaced,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to persist order: %w", err)
	}

	return order, nil
}

// RecentOrders returns up to limit orders, most recent first.
func (s *OrderService) RecentOrders(ctx context.Context, limit int) ([]models.Order, error) {
	orders, err := s.repo.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}
