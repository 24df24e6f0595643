package pricing

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/rtu-canteen/canteen-api/internal/menu"
	"github.com/rtu-canteen/canteen-api/internal/models"
)

var (
	ErrEmptyOrder  = errors.New("order must contain at least one item")
	ErrInvalidItem = errors.New("invalid item in order")
)

// UnknownMenuItemError reports an order line referencing an item that
// is not on the trusted menu.
type UnknownMenuItemError struct {
	Name string
}

func (e *UnknownMenuItemError) Error() string {
	return fmt.Sprintf("unknown menu item: %s", e.Name)
}

// Result holds the validated items and totals computed for an order.
// Subtotal and Total are rounded to two decimals; Discount is either
// zero or the rounded threshold discount.
type Result struct {
	Items    []models.OrderItem
	Subtotal float64
	Discount float64
	Total    float64
}

// Price validates client order lines against the trusted menu and
// computes the order totals. Unit prices are always resolved from the
// menu; any price present in the input lines is discarded, so clients
// cannot set their own prices. The first invalid line aborts the whole
// order.
func Price(menuItems []models.MenuItem, lines []models.OrderLine) (*Result, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyOrder
	}

	lookup := menu.PriceLookup(menuItems)

	items := make([]models.OrderItem, 0, len(lines))
	subtotal := 0.0
	for _, line := range lines {
		name := strings.TrimSpace(line.Name)
		if name == "" || line.Quantity < 1 {
			return nil, ErrInvalidItem
		}

		unitPrice, ok := lookup[strings.ToLower(name)]
		if !ok {
			return nil, &UnknownMenuItemError{Name: name}
		}

		lineSubtotal := unitPrice * float64(line.Quantity)
		subtotal += lineSubtotal

		items = append(items, models.OrderItem{
			Name:      name,
			UnitPrice: unitPrice,
			Quantity:  line.Quantity,
			Subtotal:  lineSubtotal,
		})
	}

	discount := 0.0
	if subtotal > menu.DiscountThreshold {
		discount = round2(subtotal * menu.DiscountRate)
	}

	return &Result{
		Items:    items,
		Subtotal: round2(subtotal),
		Discount: discount,
		Total:    round2(subtotal - discount),
	}, nil
}

// round2 rounds to two decimal places, applied only to final values.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
