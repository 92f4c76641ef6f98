// internal/api/api.go
package api

import (
	"strings"
	"time"

	"github.com/Alamatniige/izaj-desktop-application/internal/api/handlers"
	"github.com/Alamatniige/izaj-desktop-application/internal/api/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(dashboard *handlers.DashboardHandler, allowedOrigins []string) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Logger(),
		middleware.Recovery(),
	)

	corsConfig := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(allowedOrigins) > 0 {
		normalizedOrigins, allowAll := normalizeAllowedOrigins(allowedOrigins)
		if allowAll {
			corsConfig.AllowOrigins = nil
			corsConfig.AllowOriginFunc = func(origin string) bool { return true }
		} else if len(normalizedOrigins) > 0 {
			corsConfig.AllowOrigins = normalizedOrigins
		}
	}
	router.Use(cors.New(corsConfig))

	router.GET("/health", dashboard.Health)

	dashboardGroup := router.Group("/api/dashboard")
	{
		dashboardGroup.GET("/stats", dashboard.GetStats)
		dashboardGroup.GET("/sales-report", dashboard.GetSalesReport)
		dashboardGroup.GET("/best-selling", dashboard.GetBestSelling)
		dashboardGroup.GET("/monthly-earnings", dashboard.GetMonthlyEarnings)
		dashboardGroup.GET("/category-sales", dashboard.GetCategorySales)
		dashboardGroup.GET("/health", dashboard.Health)
	}

	return router
}

func normalizeAllowedOrigins(origins []string) ([]string, bool) {
	var (
		parsed   []string
		allowAll bool
	)
	for _, origin := range origins {
		parts := strings.Split(origin, ",")
		for _, part := range parts {
			trimmed := strings.TrimSpace(part)
			if trimmed == "" {
				continue
			}
			if trimmed == "*" {
				allowAll = true
				continue
			}
			parsed = append(parsed, trimmed)
		}
	}
	return parsed, allowAll
}
