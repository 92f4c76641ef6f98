package analytics

import (
	"context"
	"errors"
	"testing"

	"github.com/Alamatniige/izaj-desktop-application/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bestSellingFixture() *fakeStore {
	return &fakeStore{
		orders: []domain.Order{
			completedOrder("o1", 0, testNow),
			completedOrder("o2", 0, testNow),
			{ID: "o3", Status: domain.StatusPending, CreatedAt: testNow},
		},
		items: []domain.OrderItem{
			{OrderID: "o1", ProductID: "p1", ProductName: "Chandelier Luxe", Quantity: 2, UnitPrice: 500},
			{OrderID: "o2", ProductID: "p1", ProductName: "Chandelier Luxe", Quantity: 3, UnitPrice: 500},
			{OrderID: "o1", ProductID: "p2", ProductName: "Lamp Desk", Quantity: 4, UnitPrice: 100},
			// Attached to a pending order, must be ignored.
			{OrderID: "o3", ProductID: "p3", ProductName: "Pendant Glow", Quantity: 50, UnitPrice: 10},
		},
		ratings: map[string][]float64{
			"p1": {5, 4, 4},
		},
	}
}

func TestBestSellingProductsRanking(t *testing.T) {
	svc := newTestService(bestSellingFixture(), testNow)

	products, err := svc.BestSellingProducts(context.Background(), 3, "")
	require.NoError(t, err)
	require.Len(t, products, 2)

	top := products[0]
	assert.Equal(t, "p1", top.ProductID)
	assert.Equal(t, "Chandelier Luxe", top.ProductName)
	assert.Equal(t, 5, top.TotalQuantity)
	assert.Equal(t, 2500.0, top.TotalRevenue)
	assert.Equal(t, 2, top.OrderCount) // line items, not distinct orders
	assert.Equal(t, 3, top.ReviewCount)
	assert.Equal(t, 4.3, top.AverageRating)

	second := products[1]
	assert.Equal(t, "p2", second.ProductID)
	assert.Equal(t, 4, second.TotalQuantity)
	assert.Equal(t, 0, second.ReviewCount)
	assert.Equal(t, 0.0, second.AverageRating)
}

func TestBestSellingProductsLimit(t *testing.T) {
	svc := newTestService(bestSellingFixture(), testNow)

	products, err := svc.BestSellingProducts(context.Background(), 1, "")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "p1", products[0].ProductID)
}

func TestBestSellingProductsLimitAbovePool(t *testing.T) {
	st := &fakeStore{
		orders: []domain.Order{completedOrder("o1", 0, testNow)},
		items: []domain.OrderItem{
			{OrderID: "o1", ProductID: "p1", ProductName: "Lamp Desk", Quantity: 1, UnitPrice: 100},
		},
	}
	svc := newTestService(st, testNow)

	products, err := svc.BestSellingProducts(context.Background(), 5, "")
	require.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestBestSellingProductsCategoryFilter(t *testing.T) {
	st := bestSellingFixture()
	svc := newTestService(st, testNow)

	products, err := svc.BestSellingProducts(context.Background(), 3, "Lamp")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "p2", products[0].ProductID)
	assert.Equal(t, "Lamp", st.lastCategory)
}

func TestBestSellingProductsTieBreak(t *testing.T) {
	st := &fakeStore{
		orders: []domain.Order{completedOrder("o1", 0, testNow)},
		items: []domain.OrderItem{
			{OrderID: "o1", ProductID: "p9", ProductName: "Lamp A", Quantity: 2, UnitPrice: 10},
			{OrderID: "o1", ProductID: "p1", ProductName: "Lamp B", Quantity: 2, UnitPrice: 10},
		},
	}
	svc := newTestService(st, testNow)

	for i := 0; i < 5; i++ {
		products, err := svc.BestSellingProducts(context.Background(), 2, "")
		require.NoError(t, err)
		require.Len(t, products, 2)
		assert.Equal(t, "p1", products[0].ProductID)
		assert.Equal(t, "p9", products[1].ProductID)
	}
}

func TestBestSellingProductsNoCompletedOrders(t *testing.T) {
	st := &fakeStore{
		orders: []domain.Order{{ID: "o1", Status: domain.StatusPending, CreatedAt: testNow}},
	}
	svc := newTestService(st, testNow)

	products, err := svc.BestSellingProducts(context.Background(), 3, "")
	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func TestBestSellingProductsDegradedReviews(t *testing.T) {
	st := bestSellingFixture()
	st.ratingsErr = errors.New("relation \"reviews\" does not exist")
	svc := newTestService(st, testNow)

	products, err := svc.BestSellingProducts(context.Background(), 3, "")
	require.NoError(t, err)
	require.Len(t, products, 2)

	for _, p := range products {
		assert.Equal(t, 0, p.ReviewCount)
		assert.Equal(t, 0.0, p.AverageRating)
	}
	// Ranking fields are untouched by the degraded review path.
	assert.Equal(t, 5, products[0].TotalQuantity)
}

func TestBestSellingProductsItemsFailure(t *testing.T) {
	st := bestSellingFixture()
	st.itemsErr = errors.New("connection reset")
	svc := newTestService(st, testNow)

	_, err := svc.BestSellingProducts(context.Background(), 3, "")
	assert.Error(t, err)
}
