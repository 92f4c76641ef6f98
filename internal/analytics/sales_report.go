// internal/analytics/sales_report.go
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/Alamatniige/izaj-desktop-application/internal/domain"
	"github.com/rs/zerolog/log"
)

// yearRange returns the inclusive [Jan 1 00:00:00, Dec 31 23:59:59]
// bounds for a report year.
func yearRange(year int) (time.Time, time.Time) {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(year, time.December, 31, 23, 59, 59, 0, time.UTC)

	return from, to
}

// SalesReport builds the yearly sales chart: twelve ordered monthly
// buckets with month-over-month growth, plus summary totals. A year of
// 0 or less means the current year.
func (s *Service) SalesReport(ctx context.Context, year int) (*domain.SalesReport, error) {
	if year <= 0 {
		year = s.now().Year()
	}

	from, to := yearRange(year)
	orders, err := s.store.ListCompletedOrdersBetween(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch completed orders: %w", err)
	}

	log.Debug().Int("year", year).Int("orders", len(orders)).Msg("analytics: building sales report")

	buckets := bucketOrdersByMonth(orders)

	monthly := make([]domain.SalesReportMonth, 0, 12)
	var (
		totalSales   float64
		totalOrders  int
		growthValues []float64
	)
	for m := time.January; m <= time.December; m++ {
		b := buckets[m]

		// Growth is relative to the previous calendar month within this
		// report; January and months following a non-positive month stay "0".
		growth := "0"
		if m > time.January {
			prev := buckets[m-1].Sales
			if prev > 0 {
				growth = fmt.Sprintf("%.1f", (b.Sales-prev)/prev*100)
			}
		}

		monthly = append(monthly, domain.SalesReportMonth{
			Month:  monthNames[m-1],
			Sales:  b.Sales,
			Orders: b.Orders,
			Growth: growth,
		})

		totalSales += b.Sales
		totalOrders += b.Orders
		if m > time.January && growth != "0" {
			growthValues = append(growthValues, domain.CoerceFloat(growth))
		}
	}

	averageGrowth := "0"
	if len(growthValues) > 0 {
		var sum float64
		for _, v := range growthValues {
			sum += v
		}
		averageGrowth = fmt.Sprintf("%.1f", sum/float64(len(growthValues)))
	}

	return &domain.SalesReport{
		Monthly: monthly,
		Summary: domain.SalesReportSummary{
			TotalSales:    fmt.Sprintf("%.2f", totalSales),
			TotalOrders:   totalOrders,
			AverageGrowth: averageGrowth,
		},
		Year: year,
	}, nil
}
