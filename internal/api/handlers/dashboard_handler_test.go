package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Alamatniige/izaj-desktop-application/internal/analytics"
	"github.com/Alamatniige/izaj-desktop-application/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStore struct {
	orders []domain.Order
	items  []domain.OrderItem
}

func (s *stubStore) CountProfiles(ctx context.Context) (int, error)                   { return 8, nil }
func (s *stubStore) CountProfilesSince(ctx context.Context, _ time.Time) (int, error) { return 2, nil }
func (s *stubStore) ListOrders(ctx context.Context) ([]domain.Order, error)           { return s.orders, nil }

func (s *stubStore) ListCompletedOrdersBetween(ctx context.Context, from, to time.Time) ([]domain.Order, error) {
	var out []domain.Order
	for _, o := range s.orders {
		if o.Status == domain.StatusComplete && !o.CreatedAt.Before(from) && !o.CreatedAt.After(to) {
			out = append(out, o)
		}
	}
	return out, nil
}

func (s *stubStore) ListCompletedOrderIDs(ctx context.Context) ([]string, error) {
	var ids []string
	for _, o := range s.orders {
		if o.Status == domain.StatusComplete {
			ids = append(ids, o.ID)
		}
	}
	return ids, nil
}

func (s *stubStore) ListItemsByOrderIDs(ctx context.Context, orderIDs []string, category string) ([]domain.OrderItem, error) {
	return s.items, nil
}

func (s *stubStore) ListRatings(ctx context.Context, productID string) ([]float64, error) {
	return nil, nil
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	now := time.Now().UTC()
	st := &stubStore{
		orders: []domain.Order{
			{ID: "o1", Status: domain.StatusComplete, TotalAmount: 100, CreatedAt: now.AddDate(0, 0, -1)},
			{ID: "o2", Status: domain.StatusPending, TotalAmount: 50, CreatedAt: now.AddDate(0, 0, -2)},
		},
		items: []domain.OrderItem{
			{OrderID: "o1", ProductID: "p1", ProductName: "Lamp Desk", Quantity: 2, UnitPrice: 50},
		},
	}

	handler := NewDashboardHandler(analytics.NewService(st, "PHP"), nil)

	router := gin.New()
	group := router.Group("/api/dashboard")
	group.GET("/stats", handler.GetStats)
	group.GET("/sales-report", handler.GetSalesReport)
	group.GET("/best-selling", handler.GetBestSelling)
	group.GET("/monthly-earnings", handler.GetMonthlyEarnings)
	group.GET("/category-sales", handler.GetCategorySales)
	group.GET("/health", handler.Health)
	return router
}

func doRequest(t *testing.T, router *gin.Engine, path string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestGetStats(t *testing.T) {
	router := newTestRouter()

	rec, body := doRequest(t, router, "/api/dashboard/stats")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "month", body["period"])
	assert.NotEmpty(t, body["timestamp"])

	stats, ok := body["stats"].(map[string]interface{})
	require.True(t, ok)
	customers := stats["customers"].(map[string]interface{})
	assert.Equal(t, 8.0, customers["total"])

	earnings := stats["earnings"].(map[string]interface{})
	assert.Equal(t, "150.00", earnings["total"])
	assert.Equal(t, "PHP", earnings["currency"])
}

func TestGetStatsInvalidPeriod(t *testing.T) {
	router := newTestRouter()

	rec, body := doRequest(t, router, "/api/dashboard/stats?period=decade")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, body["error"], "period")
}

func TestGetStatsExplicitPeriod(t *testing.T) {
	router := newTestRouter()

	rec, body := doRequest(t, router, "/api/dashboard/stats?period=week")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "week", body["period"])
}

func TestGetSalesReport(t *testing.T) {
	router := newTestRouter()

	rec, body := doRequest(t, router, "/api/dashboard/sales-report?year=2025")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])

	report, ok := body["salesReport"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, 2025.0, report["year"])
	monthly := report["monthly"].([]interface{})
	assert.Len(t, monthly, 12)
}

func TestGetBestSelling(t *testing.T) {
	router := newTestRouter()

	rec, body := doRequest(t, router, "/api/dashboard/best-selling")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, 1.0, body["total"])

	products := body["bestSelling"].([]interface{})
	require.Len(t, products, 1)
	first := products[0].(map[string]interface{})
	assert.Equal(t, "p1", first["product_id"])
}

func TestGetMonthlyEarnings(t *testing.T) {
	router := newTestRouter()

	rec, body := doRequest(t, router, "/api/dashboard/monthly-earnings?year=2025")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, 2025.0, body["year"])

	earnings := body["monthlyEarnings"].([]interface{})
	assert.Len(t, earnings, 12)
}

func TestGetCategorySales(t *testing.T) {
	router := newTestRouter()

	rec, body := doRequest(t, router, "/api/dashboard/category-sales")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])

	categories := body["categorySales"].([]interface{})
	require.Len(t, categories, 1)
	first := categories[0].(map[string]interface{})
	assert.Equal(t, "Lamp", first["category"])
}

func TestHealth(t *testing.T) {
	router := newTestRouter()

	rec, body := doRequest(t, router, "/api/dashboard/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestParsePositiveIntWithDefault(t *testing.T) {
	assert.Equal(t, 3, parsePositiveIntWithDefault("", 3))
	assert.Equal(t, 3, parsePositiveIntWithDefault("abc", 3))
	assert.Equal(t, 3, parsePositiveIntWithDefault("-1", 3))
	assert.Equal(t, 3, parsePositiveIntWithDefault("0", 3))
	assert.Equal(t, 7, parsePositiveIntWithDefault(" 7 ", 3))
}
