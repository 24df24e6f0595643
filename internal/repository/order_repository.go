package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/rtu-canteen/canteen-api/internal/models"
)

// ErrStorage marks persistence failures. Callers check with errors.Is
// and map it to a server-side fault.
var ErrStorage = errors.New("storage error")

// OrderRepository defines the interface for order persistence.
type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	ListRecent(ctx context.Context, limit int) ([]models.Order, error)
}

// InMemoryOrderRepository implements OrderRepository with in-memory
// storage. It is used when no database is configured, and in tests.
type InMemoryOrderRepository struct {
	mu     sync.RWMutex
	orders []models.Order
}

// NewInMemoryOrderRepository creates an empty in-memory repository.
func NewInMemoryOrderRepository() *InMemoryOrderRepository {
	return &InMemoryOrderRepository{}
}

// Create stores the order. Newest orders go first so ListRecent stays
// most-recent-first without sorting.
func (r *InMemoryOrderRepository) Create(ctx context.Context, order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.orders = append([]models.Order{*order}, r.orders...)
	return nil
}

// ListRecent returns up to limit orders, most recent first.
func (r *InMemoryOrderRepository) ListRecent(ctx context.Context, limit int) ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if limit <= 0 || limit > len(r.orders) {
		limit = len(r.orders)
	}

	out := make([]models.Order, limit)
	copy(out, r.orders[:limit])
	return out, nil
}

// Count returns the number of stored orders. Test helper.
func (r *InMemoryOrderRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.orders)
}
