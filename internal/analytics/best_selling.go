// internal/analytics/best_selling.go
package analytics

import (
	"context"
	"fmt"
	"sort"

	"github.com/Alamatniige/izaj-desktop-application/internal/domain"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type productKey struct {
	id   string
	name string
}

type productAgg struct {
	key      productKey
	quantity float64
	revenue  float64
	rows     int
}

// BestSellingProducts ranks products from completed orders by total
// quantity sold. OrderCount counts line-item occurrences, not distinct
// orders. Review lookups run concurrently and degrade to zero stats on
// failure; the reviews table is optional.
func (s *Service) BestSellingProducts(ctx context.Context, limit int, category string) ([]domain.BestSellingProduct, error) {
	ids, err := s.store.ListCompletedOrderIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch completed order ids: %w", err)
	}
	if len(ids) == 0 {
		return []domain.BestSellingProduct{}, nil
	}

	items, err := s.store.ListItemsByOrderIDs(ctx, ids, category)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch order items: %w", err)
	}
	if len(items) == 0 {
		return []domain.BestSellingProduct{}, nil
	}

	ranked := rankProducts(items, limit)

	result := make([]domain.BestSellingProduct, len(ranked))
	g, gctx := errgroup.WithContext(ctx)
	for i, agg := range ranked {
		result[i] = domain.BestSellingProduct{
			ProductID:     agg.key.id,
			ProductName:   agg.key.name,
			TotalQuantity: int(agg.quantity),
			TotalRevenue:  agg.revenue,
			OrderCount:    agg.rows,
		}

		g.Go(func() error {
			ratings, err := s.store.ListRatings(gctx, agg.key.id)
			if err != nil {
				// Optional source: missing reviews never fail the report.
				log.Warn().Err(err).Str("product_id", agg.key.id).Msg("analytics: reviews not available")
				return nil
			}

			result[i].ReviewCount = len(ratings)
			if len(ratings) > 0 {
				var sum float64
				for _, r := range ratings {
					sum += r
				}
				result[i].AverageRating = round1(sum / float64(len(ratings)))
			}
			return nil
		})
	}
	_ = g.Wait() // goroutines only ever return nil

	return result, nil
}

// rankProducts groups line items by (product_id, product_name), reduces
// quantity, revenue and row count, and returns the top groups by
// quantity. Ties break on product_id ascending so rankings are
// deterministic.
func rankProducts(items []domain.OrderItem, limit int) []productAgg {
	groups := groupBy(items, func(it domain.OrderItem) productKey {
		return productKey{id: it.ProductID, name: it.ProductName}
	})

	aggs := make([]productAgg, 0, len(groups))
	for key, rows := range groups {
		agg := productAgg{key: key, rows: len(rows)}
		for _, it := range rows {
			agg.quantity += it.Quantity
			agg.revenue += it.Quantity * it.UnitPrice
		}
		aggs = append(aggs, agg)
	}

	sort.Slice(aggs, func(i, j int) bool {
		if aggs[i].quantity != aggs[j].quantity {
			return aggs[i].quantity > aggs[j].quantity
		}
		return aggs[i].key.id < aggs[j].key.id
	})

	if limit > 0 && len(aggs) > limit {
		aggs = aggs[:limit]
	}

	return aggs
}
