package notification

import (
	"fmt"
	"math"
	"strings"

	"github.com/rtu-canteen/canteen-api/internal/models"
)

const (
	// DefaultMaxShown is how many orders get their own summary line.
	DefaultMaxShown = 10

	// MaxSMSLength is the hard character cap for a single SMS body.
	MaxSMSLength = 160

	maxItemsPerOrder = 3
	ellipsis         = "..."
	noOrdersMessage  = "No recent orders."
)

// FormatSummary renders a human-readable SMS summary of recent orders.
// Orders are rendered in the given order; callers pass already-sorted,
// most-recent-first data. At most maxShown orders get a line, each
// listing at most three items, but the trailing totals line counts
// every order passed in. The result never exceeds MaxSMSLength
// characters: longer texts are hard-truncated and end with "...".
func FormatSummary(orders []models.Order, maxShown int) string {
	if len(orders) == 0 {
		return noOrdersMessage
	}
	if maxShown <= 0 {
		maxShown = DefaultMaxShown
	}

	var b strings.Builder
	b.WriteString("Recent Orders:")

	shown := orders
	if len(shown) > maxShown {
		shown = shown[:maxShown]
	}
	for i, order := range shown {
		items := order.Items
		if len(items) > maxItemsPerOrder {
			items = items[:maxItemsPerOrder]
		}
		summaries := make([]string, 0, len(items))
		for _, item := range items {
			summaries = append(summaries, fmt.Sprintf("%s×%d", item.Name, item.Quantity))
		}

		fmt.Fprintf(&b, "\n%d. %s - ₹%d (%s)",
			i+1, order.CustomerName, roundInt(order.Total), strings.Join(summaries, ", "))
	}

	sum := 0.0
	for _, order := range orders {
		sum += order.Total
	}
	fmt.Fprintf(&b, "\nTotal Orders: %d | Sum: ₹%d", len(orders), roundInt(sum))

	return truncate(b.String(), MaxSMSLength)
}

// truncate enforces the SMS cap, counting characters rather than bytes
// since the currency sign is multibyte. Truncation is lossy and makes
// no attempt to respect line or word boundaries.
func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit-len(ellipsis)]) + ellipsis
}

func roundInt(v float64) int {
	return int(math.Round(v))
}
