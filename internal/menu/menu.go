package menu

import (
	"fmt"
	"strings"

	"github.com/rtu-canteen/canteen-api/internal/models"
)

// Discount configuration. A subtotal strictly above the threshold earns
// the discount; a subtotal exactly at the threshold does not.
const (
	DiscountThreshold = 299.0
	DiscountRate      = 0.20
)

// Items is the static canteen menu, the single source of truth for
// pricing. Loaded once at process start and never mutated, so it is
// safe for concurrent readers. Beverages first, then fast food, in
// display order.
func Items() []models.MenuItem {
	return []models.MenuItem{
		{Name: "Tea", Category: models.CategoryBeverage, Price: 10.0},
		{Name: "Coffee", Category: models.CategoryBeverage, Price: 10.0},
		{Name: "Cold Coffee", Category: models.CategoryBeverage, Price: 30.0},
		{Name: "Banana Shake", Category: models.CategoryBeverage, Price: 90.0, Size: "1 litre"},
		{Name: "Patties", Category: models.CategoryFastFood, Price: 20.0},
		{Name: "Cold Drink", Category: models.CategoryFastFood, Price: 100.0, Size: "2 litre"},
	}
}

// PriceLookup builds a case-insensitive name-to-price map from the
// given menu. Iteration follows declaration order, so a later entry
// with the same normalized name overwrites an earlier one.
func PriceLookup(items []models.MenuItem) map[string]float64 {
	lookup := make(map[string]float64, len(items))
	for _, item := range items {
		lookup[strings.ToLower(item.Name)] = item.Price
	}
	return lookup
}

// Note renders the human-readable discount note shown in the menu
// listing, e.g. "Get 20% off on orders above ₹299!".
func Note() string {
	return fmt.Sprintf("Get %d%% off on orders above ₹%d!", int(DiscountRate*100), int(DiscountThreshold))
}
