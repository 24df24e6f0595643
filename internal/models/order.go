package models

import "time"

// Order lifecycle statuses
const (
	StatusPlaced         = "placed"
	StatusPreparing      = "preparing"
	StatusOutForDelivery = "out-for-delivery"
	StatusDelivered      = "delivered"
	StatusCancelled      = "cancelled"
)

// OrderLine is a single client-submitted line in an order request.
// UnitPrice is accepted in the payload but never trusted: the pricing
// engine always resolves prices from the menu.
type OrderLine struct {
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price,omitempty"`
	Quantity  int     `json:"quantity"`
}

// OrderItem is a validated order line with the server-resolved price.
type OrderItem struct {
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
	Subtotal  float64 `json:"subtotal"`
}

// Order is a persisted canteen order. Financial fields are immutable
// once the order is created; only Status changes afterwards, and that
// is an administrative action outside this service.
type Order struct {
	ID           string      `json:"id"`
	CustomerName string      `json:"customer_name"`
	HostelBlock  string      `json:"hostel_block"`
	RoomNumber   string      `json:"room_number"`
	Phone        string      `json:"phone"`
	Items        []OrderItem `json:"items"`
	Subtotal     float64     `json:"subtotal"`
	Discount     float64     `json:"discount"`
	Total        float64     `json:"total"`
	Notes        string      `json:"notes,omitempty"`
	Status       string      `json:"status"`
	CreatedAt    time.Time   `json:"created_at"`
}
