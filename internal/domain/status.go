package domain

import "strings"

// Order statuses as persisted in the orders table.
const (
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusInTransit = "in_transit"
	StatusComplete  = "complete"
	StatusCancelled = "cancelled"
)

var orderStatuses = []string{
	StatusPending,
	StatusApproved,
	StatusInTransit,
	StatusComplete,
	StatusCancelled,
}

// OrderStatuses returns the fixed set of order statuses in report order.
func OrderStatuses() []string {
	out := make([]string, len(orderStatuses))
	copy(out, orderStatuses)

	return out
}

// IsOrderStatus reports whether label is a known order status (case-insensitive).
func IsOrderStatus(label string) bool {
	normalized := strings.ToLower(label)
	for _, s := range orderStatuses {
		if s == normalized {
			return true
		}
	}

	return false
}
