package service

import (
	"github.com/rtu-canteen/canteen-api/internal/menu"
	"github.com/rtu-canteen/canteen-api/internal/models"
)

// MenuResponse is the outward shape of the menu listing, derived
// entirely from the static menu and the discount constants.
type MenuResponse struct {
	Beverages         []models.MenuItem `json:"beverages"`
	FastFood          []models.MenuItem `json:"fast_food"`
	DiscountThreshold float64           `json:"discount_threshold"`
	DiscountRate      float64           `json:"discount_rate"`
	Note              string            `json:"note"`
}

// MenuService serves the static menu.
type MenuService struct {
	items []models.MenuItem
}

// NewMenuService creates a menu service over the given menu.
func NewMenuService(items []models.MenuItem) *MenuService {
	return &MenuService{items: items}
}

// Items returns the full menu in declaration order.
func (s *MenuService) Items() []models.MenuItem {
	return s.items
}

// GetMenu returns the menu listing split by category, with the
// discount configuration and its human-readable note.
func (s *MenuService) GetMenu() MenuResponse {
	resp := MenuResponse{
		Beverages:         []models.MenuItem{},
		FastFood:          []models.MenuItem{},
		DiscountThreshold: menu.DiscountThreshold,
		DiscountRate:      menu.DiscountRate,
		Note:              menu.Note(),
	}

	for _, item := range s.items {
		switch item.Category {
		case models.CategoryBeverage:
			resp.Beverages = append(resp.Beverages, item)
		case models.CategoryFastFood:
			resp.FastFood = append(resp.FastFood, item)
		}
	}

	return resp
}
