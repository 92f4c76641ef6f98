package analytics

import (
	"context"
	"time"

	"github.com/Alamatniige/izaj-desktop-application/internal/domain"
)

// fakeStore is an in-memory RecordStore for engine tests. Error fields
// force the corresponding fetch to fail.
type fakeStore struct {
	profileCount   int
	recentProfiles int
	orders         []domain.Order
	items          []domain.OrderItem
	ratings        map[string][]float64

	ordersErr  error
	itemsErr   error
	ratingsErr error

	lastCategory string
}

func (f *fakeStore) CountProfiles(ctx context.Context) (int, error) {
	return f.profileCount, nil
}

func (f *fakeStore) CountProfilesSince(ctx context.Context, since time.Time) (int, error) {
	return f.recentProfiles, nil
}

func (f *fakeStore) ListOrders(ctx context.Context) ([]domain.Order, error) {
	if f.ordersErr != nil {
		return nil, f.ordersErr
	}
	return f.orders, nil
}

func (f *fakeStore) ListCompletedOrdersBetween(ctx context.Context, from, to time.Time) ([]domain.Order, error) {
	if f.ordersErr != nil {
		return nil, f.ordersErr
	}

	var out []domain.Order
	for _, o := range f.orders {
		if o.Status != domain.StatusComplete {
			continue
		}
		if o.CreatedAt.Before(from) || o.CreatedAt.After(to) {
			continue
		}
		out = append(out, o)
	}
	return out, nil
}

func (f *fakeStore) ListCompletedOrderIDs(ctx context.Context) ([]string, error) {
	if f.ordersErr != nil {
		return nil, f.ordersErr
	}

	var ids []string
	for _, o := range f.orders {
		if o.Status == domain.StatusComplete {
			ids = append(ids, o.ID)
		}
	}
	return ids, nil
}

func (f *fakeStore) ListItemsByOrderIDs(ctx context.Context, orderIDs []string, category string) ([]domain.OrderItem, error) {
	if f.itemsErr != nil {
		return nil, f.itemsErr
	}

	f.lastCategory = category

	inSet := make(map[string]struct{}, len(orderIDs))
	for _, id := range orderIDs {
		inSet[id] = struct{}{}
	}

	var out []domain.OrderItem
	for _, it := range f.items {
		if _, ok := inSet[it.OrderID]; !ok {
			continue
		}
		if category != "" && domain.CategoryOf(it.ProductName) != category {
			continue
		}
		out = append(out, it)
	}
	return out, nil
}

func (f *fakeStore) ListRatings(ctx context.Context, productID string) ([]float64, error) {
	if f.ratingsErr != nil {
		return nil, f.ratingsErr
	}
	return f.ratings[productID], nil
}

func newTestService(st *fakeStore, now time.Time) *Service {
	svc := NewService(st, "PHP")
	svc.now = func() time.Time { return now }
	return svc
}

func completedOrder(id string, amount float64, created time.Time) domain.Order {
	return domain.Order{ID: id, Status: domain.StatusComplete, TotalAmount: amount, CreatedAt: created}
}
