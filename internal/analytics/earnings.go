// internal/analytics/earnings.go
package analytics

import (
	"context"
	"fmt"
)

// MonthlyEarnings sums completed-order amounts per calendar month of
// the given year. The result always has twelve entries, index 0 being
// January, zero-filled for months without orders.
func (s *Service) MonthlyEarnings(ctx context.Context, year int) ([]float64, error) {
	if year <= 0 {
		year = s.now().Year()
	}

	from, to := yearRange(year)
	orders, err := s.store.ListCompletedOrdersBetween(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch completed orders: %w", err)
	}

	earnings := make([]float64, 12)
	for _, o := range orders {
		earnings[int(o.CreatedAt.Month())-1] += o.TotalAmount
	}

	return earnings, nil
}
