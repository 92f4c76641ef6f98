// internal/analytics/aggregate.go
package analytics

import (
	"math"
	"time"

	"github.com/Alamatniige/izaj-desktop-application/internal/domain"
)

var monthNames = [...]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// groupBy partitions rows by the given key. Result order is
// unspecified; sorting and limiting are the caller's job.
func groupBy[T any, K comparable](rows []T, key func(T) K) map[K][]T {
	groups := make(map[K][]T)
	for _, row := range rows {
		k := key(row)
		groups[k] = append(groups[k], row)
	}

	return groups
}

type monthBucket struct {
	Sales  float64
	Orders int
}

// bucketOrdersByMonth reduces orders into per-calendar-month sales sums
// and row counts. Months without orders have no entry; callers
// zero-fill when shaping a full-year report.
func bucketOrdersByMonth(orders []domain.Order) map[time.Month]monthBucket {
	buckets := make(map[time.Month]monthBucket, 12)
	for _, o := range orders {
		b := buckets[o.CreatedAt.Month()]
		b.Sales += o.TotalAmount
		b.Orders++
		buckets[o.CreatedAt.Month()] = b
	}

	return buckets
}

// growthPct returns the percentage change from previous to current,
// defined as 0 whenever the baseline is not positive.
func growthPct(current, previous float64) float64 {
	if previous <= 0 {
		return 0
	}

	return (current - previous) / previous * 100
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
