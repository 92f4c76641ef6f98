// internal/api/handlers/dashboard_handler.go
package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Alamatniige/izaj-desktop-application/internal/analytics"
	"github.com/Alamatniige/izaj-desktop-application/internal/cache"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const defaultRankingLimit = 3

type DashboardHandler struct {
	service    *analytics.Service
	statsCache cache.DashboardStatsCache
}

func NewDashboardHandler(service *analytics.Service, statsCache cache.DashboardStatsCache) *DashboardHandler {
	if statsCache == nil {
		statsCache = cache.NewNoopDashboardCache()
	}

	return &DashboardHandler{service: service, statsCache: statsCache}
}

// GetStats returns the overall dashboard statistics for a period.
func (h *DashboardHandler) GetStats(c *gin.Context) {
	period := c.DefaultQuery("period", analytics.PeriodMonth)
	if period != analytics.PeriodWeek && period != analytics.PeriodMonth && period != analytics.PeriodYear {
		c.JSON(http.StatusBadRequest, gin.H{"error": "period must be 'week', 'month', or 'year'"})
		return
	}

	ctx := c.Request.Context()

	if stats, ok, err := h.statsCache.GetStats(ctx, period); err != nil {
		log.Warn().Err(err).Msg("dashboard stats cache read failed")
	} else if ok {
		c.JSON(http.StatusOK, gin.H{
			"success":   true,
			"stats":     stats,
			"period":    period,
			"timestamp": time.Now().Format(time.RFC3339),
		})
		return
	}

	stats, err := h.service.DashboardStats(ctx, period)
	if err != nil {
		log.Error().Err(err).Str("period", period).Msg("failed to build dashboard stats")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch dashboard statistics"})
		return
	}

	if err := h.statsCache.SetStats(ctx, period, stats); err != nil {
		log.Warn().Err(err).Msg("dashboard stats cache write failed")
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"stats":     stats,
		"period":    period,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// GetSalesReport returns the yearly sales chart data.
func (h *DashboardHandler) GetSalesReport(c *gin.Context) {
	year := parsePositiveIntWithDefault(c.Query("year"), time.Now().Year())

	report, err := h.service.SalesReport(c.Request.Context(), year)
	if err != nil {
		log.Error().Err(err).Int("year", year).Msg("failed to build sales report")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch sales report"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"salesReport": report,
	})
}

// GetBestSelling returns the top products ranked by quantity sold.
func (h *DashboardHandler) GetBestSelling(c *gin.Context) {
	limit := parsePositiveIntWithDefault(c.Query("limit"), defaultRankingLimit)
	category := strings.TrimSpace(c.Query("category"))

	products, err := h.service.BestSellingProducts(c.Request.Context(), limit, category)
	if err != nil {
		log.Error().Err(err).Int("limit", limit).Msg("failed to build best selling products")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch best selling products"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"bestSelling": products,
		"total":       len(products),
	})
}

// GetMonthlyEarnings returns the twelve monthly earnings totals for a year.
func (h *DashboardHandler) GetMonthlyEarnings(c *gin.Context) {
	year := parsePositiveIntWithDefault(c.Query("year"), time.Now().Year())

	earnings, err := h.service.MonthlyEarnings(c.Request.Context(), year)
	if err != nil {
		log.Error().Err(err).Int("year", year).Msg("failed to build monthly earnings")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch monthly earnings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"monthlyEarnings": earnings,
		"year":            year,
	})
}

// GetCategorySales returns sales grouped by derived product category.
func (h *DashboardHandler) GetCategorySales(c *gin.Context) {
	limit := parsePositiveIntWithDefault(c.Query("limit"), defaultRankingLimit)

	categories, err := h.service.CategorySales(c.Request.Context(), limit)
	if err != nil {
		log.Error().Err(err).Int("limit", limit).Msg("failed to build category sales")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch category sales"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"categorySales": categories,
	})
}

// Health reports service liveness.
func (h *DashboardHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Analytics service is running",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func parsePositiveIntWithDefault(value string, fallback int) int {
	if v, err := strconv.Atoi(strings.TrimSpace(value)); err == nil && v > 0 {
		return v
	}
	return fallback
}
