// internal/analytics/category_sales.go
package analytics

import (
	"context"
	"fmt"
	"sort"

	"github.com/Alamatniige/izaj-desktop-application/internal/domain"
)

type categoryAgg struct {
	category string
	quantity float64
	revenue  float64
	products map[string]struct{}
}

// CategorySales ranks synthetic categories from completed orders by
// total quantity sold. The category is the first whitespace-delimited
// token of the product name, "Uncategorized" when the name is empty.
func (s *Service) CategorySales(ctx context.Context, limit int) ([]domain.CategorySales, error) {
	ids, err := s.store.ListCompletedOrderIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch completed order ids: %w", err)
	}
	if len(ids) == 0 {
		return []domain.CategorySales{}, nil
	}

	items, err := s.store.ListItemsByOrderIDs(ctx, ids, "")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch order items: %w", err)
	}
	if len(items) == 0 {
		return []domain.CategorySales{}, nil
	}

	groups := groupBy(items, func(it domain.OrderItem) string {
		return domain.CategoryOf(it.ProductName)
	})

	aggs := make([]categoryAgg, 0, len(groups))
	for category, rows := range groups {
		agg := categoryAgg{category: category, products: make(map[string]struct{})}
		for _, it := range rows {
			agg.quantity += it.Quantity
			agg.revenue += it.Quantity * it.UnitPrice
			agg.products[it.ProductID] = struct{}{}
		}
		aggs = append(aggs, agg)
	}

	sort.Slice(aggs, func(i, j int) bool {
		if aggs[i].quantity != aggs[j].quantity {
			return aggs[i].quantity > aggs[j].quantity
		}
		return aggs[i].category < aggs[j].category
	})

	if limit > 0 && len(aggs) > limit {
		aggs = aggs[:limit]
	}

	result := make([]domain.CategorySales, len(aggs))
	for i, agg := range aggs {
		result[i] = domain.CategorySales{
			Category:      agg.category,
			TotalQuantity: int(agg.quantity),
			TotalRevenue:  agg.revenue,
			ProductCount:  len(agg.products),
		}
	}

	return result, nil
}
