package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rtu-canteen/canteen-api/internal/menu"
	"github.com/rtu-canteen/canteen-api/internal/service"
	"github.com/rtu-canteen/canteen-api/pkg/logger"
)

func TestMenuHandler_GetMenu(t *testing.T) {
	handler := NewMenuHandler(service.NewMenuService(menu.Items()), logger.New("error"))

	req := httptest.NewRequest(http.MethodGet, "/api/menu", nil)
	w := httptest.NewRecorder()

	handler.GetMenu(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var resp service.MenuResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(resp.Beverages) != 4 {
		t.Errorf("beverages count = %d, want 4", len(resp.Beverages))
	}
	if len(resp.FastFood) != 2 {
		t.Errorf("fast food count = %d, want 2", len(resp.FastFood))
	}
	if resp.Beverages[0].Name != "Tea" {
		t.Errorf("first beverage = %q, want %q", resp.Beverages[0].Name, "Tea")
	}
	if resp.DiscountThreshold != 299.0 {
		t.Errorf("discount threshold = %v, want 299.0", resp.DiscountThreshold)
	}
	if resp.DiscountRate != 0.20 {
		t.Errorf("discount rate = %v, want 0.20", resp.DiscountRate)
	}
	if resp.Note != "Get 20% off on orders above ₹299!" {
		t.Errorf("note = %q, want %q", resp.Note, "Get 20% off on orders above ₹299!")
	}
}
