// internal/analytics/dashboard.go
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/Alamatniige/izaj-desktop-application/internal/domain"
	"github.com/rs/zerolog/log"
)

// Dashboard stat periods. Anything else falls back to the 30-day window.
const (
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodYear  = "year"
)

// periodCutoff computes the fixed-width window start: now minus
// 7/30/365 days. Windows are not calendar-aligned.
func periodCutoff(now time.Time, period string) time.Time {
	switch period {
	case PeriodWeek:
		return now.AddDate(0, 0, -7)
	case PeriodYear:
		return now.AddDate(0, 0, -365)
	default:
		return now.AddDate(0, 0, -30)
	}
}

// DashboardStats builds the overall dashboard summary: customer growth,
// order-status breakdown and earnings for the given period. Any fetch
// failure on profiles or orders fails the whole report.
func (s *Service) DashboardStats(ctx context.Context, period string) (*domain.DashboardStats, error) {
	now := s.now()
	cutoff := periodCutoff(now, period)

	log.Debug().Str("period", period).Time("cutoff", cutoff).Msg("analytics: building dashboard stats")

	totalCustomers, err := s.store.CountProfiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count customers: %w", err)
	}

	periodCustomers, err := s.store.CountProfilesSince(ctx, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to count period customers: %w", err)
	}

	orders, err := s.store.ListOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}

	byStatus := make(map[string]int)
	var totalEarnings, periodEarnings float64
	for _, o := range orders {
		byStatus[o.Status]++
		totalEarnings += o.TotalAmount
		if !o.CreatedAt.Before(cutoff) {
			periodEarnings += o.TotalAmount
		}
	}

	previousEarnings := totalEarnings - periodEarnings
	earningsGrowth := growthPct(periodEarnings, previousEarnings)

	var customerPct float64
	if totalCustomers > 0 {
		customerPct = round1(float64(periodCustomers) / float64(totalCustomers) * 100)
	}

	return &domain.DashboardStats{
		Customers: domain.CustomerStats{
			Total:      totalCustomers,
			Period:     periodCustomers,
			Percentage: customerPct,
		},
		Orders: domain.OrderStats{
			Pending:   byStatus[domain.StatusPending],
			Approved:  byStatus[domain.StatusApproved],
			InTransit: byStatus[domain.StatusInTransit],
			Complete:  byStatus[domain.StatusComplete],
			Cancelled: byStatus[domain.StatusCancelled],
			Total:     len(orders),
		},
		Earnings: domain.EarningsStats{
			Total:    fmt.Sprintf("%.2f", totalEarnings),
			Period:   fmt.Sprintf("%.2f", periodEarnings),
			Growth:   fmt.Sprintf("%.1f", earningsGrowth),
			Currency: s.currency,
		},
	}, nil
}
