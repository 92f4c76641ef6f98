// internal/store/store.go
package store

import (
	"context"
	"time"

	"github.com/Alamatniige/izaj-desktop-application/internal/domain"
)

// RecordStore is the read-only fetch boundary the aggregation engine
// consumes. Implementations return typed records with numeric fields
// already coerced; they never write.
type RecordStore interface {
	// CountProfiles returns the exact number of profile rows.
	CountProfiles(ctx context.Context) (int, error)

	// CountProfilesSince returns the exact number of profiles created at
	// or after the given time.
	CountProfilesSince(ctx context.Context, since time.Time) (int, error)

	// ListOrders returns every order with status, amount and creation time.
	ListOrders(ctx context.Context) ([]domain.Order, error)

	// ListCompletedOrdersBetween returns completed orders created within
	// [from, to] inclusive.
	ListCompletedOrdersBetween(ctx context.Context, from, to time.Time) ([]domain.Order, error)

	// ListCompletedOrderIDs returns the IDs of all completed orders.
	ListCompletedOrderIDs(ctx context.Context) ([]string, error)

	// ListItemsByOrderIDs returns order items belonging to the given
	// orders, optionally restricted to a category. An empty ID set yields
	// no rows without touching the store.
	ListItemsByOrderIDs(ctx context.Context, orderIDs []string, category string) ([]domain.OrderItem, error)

	// ListRatings returns the review ratings for a product. Callers treat
	// a failure here as "no reviews"; the reviews table is optional.
	ListRatings(ctx context.Context, productID string) ([]float64, error)
}
