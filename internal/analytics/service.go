// internal/analytics/service.go
package analytics

import (
	"time"

	"github.com/Alamatniige/izaj-desktop-application/internal/store"
)

const defaultCurrency = "PHP"

// Service is the aggregation engine. Every report call re-fetches from
// the record store and reduces in memory; the service holds no state
// between requests, so concurrent calls are fully independent.
type Service struct {
	store    store.RecordStore
	currency string
	now      func() time.Time
}

func NewService(st store.RecordStore, currency string) *Service {
	if currency == "" {
		currency = defaultCurrency
	}

	return &Service{
		store:    st,
		currency: currency,
		now:      time.Now,
	}
}
