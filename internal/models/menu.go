package models

// Menu item categories
const (
	CategoryBeverage = "beverage"
	CategoryFastFood = "fast-food"
)

// MenuItem represents an item on the static canteen menu.
// The menu is the single source of truth for pricing.
type MenuItem struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Size     string  `json:"size,omitempty"`
}
