package repository

import (
	"context"
	"testing"

	"github.com/rtu-canteen/canteen-api/internal/models"
)

func TestInMemoryOrderRepository_ListRecent(t *testing.T) {
	repo := NewInMemoryOrderRepository()
	ctx := context.Background()

	for _, id := range []string{"first", "second", "third"} {
		if err := repo.Create(ctx, &models.Order{ID: id}); err != nil {
			t.Fatalf("Create() unexpected error = %v", err)
		}
	}

	orders, err := repo.ListRecent(ctx, 2)
	if err != nil {
		t.Fatalf("ListRecent() unexpected error = %v", err)
	}

	if len(orders) != 2 {
		t.Fatalf("ListRecent() returned %d orders, want 2", len(orders))
	}
	if orders[0].ID != "third" || orders[1].ID != "second" {
		t.Errorf("ListRecent() order = [%s, %s], want most recent first [third, second]",
			orders[0].ID, orders[1].ID)
	}
}

func TestInMemoryOrderRepository_ListRecentEmpty(t *testing.T) {
	repo := NewInMemoryOrderRepository()

	orders, err := repo.ListRecent(context.Background(), 20)
	if err != nil {
		t.Fatalf("ListRecent() unexpected error = %v", err)
	}
	if len(orders) != 0 {
		t.Errorf("ListRecent() returned %d orders, want 0", len(orders))
	}
}
