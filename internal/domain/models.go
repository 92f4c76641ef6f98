// internal/domain/models.go
package domain

import "time"

// Profile represents a customer profile row. Only the fields the
// reports consume are carried.
type Profile struct {
	ID        string    `json:"id" db:"id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Order represents an order row with its amount already coerced to a
// number at the fetch boundary.
type Order struct {
	ID          string    `json:"id" db:"id"`
	Status      string    `json:"status" db:"status"`
	TotalAmount float64   `json:"total_amount"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// OrderItem represents a single order line item. Quantity and unit
// price are coerced at the fetch boundary; revenue is derived in the
// aggregation engine as quantity * unit_price.
type OrderItem struct {
	OrderID     string  `json:"order_id" db:"order_id"`
	ProductID   string  `json:"product_id" db:"product_id"`
	ProductName string  `json:"product_name" db:"product_name"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

// Review represents a product review row.
type Review struct {
	ProductID string  `json:"product_id" db:"product_id"`
	Rating    float64 `json:"rating" db:"rating"`
}

// CustomerStats summarizes customer growth for the dashboard.
type CustomerStats struct {
	Total      int     `json:"total"`
	Period     int     `json:"period"`
	Percentage float64 `json:"percentage"`
}

// OrderStats breaks order counts down by status. The five buckets are
// fixed; absent statuses stay at zero and the counts always sum to Total.
type OrderStats struct {
	Pending   int `json:"pending"`
	Approved  int `json:"approved"`
	InTransit int `json:"in_transit"`
	Complete  int `json:"complete"`
	Cancelled int `json:"cancelled"`
	Total     int `json:"total"`
}

// EarningsStats carries formatted money strings, two decimals for
// amounts and one for growth.
type EarningsStats struct {
	Total    string `json:"total"`
	Period   string `json:"period"`
	Growth   string `json:"growth"`
	Currency string `json:"currency"`
}

// DashboardStats is the full dashboard payload.
type DashboardStats struct {
	Customers CustomerStats `json:"customers"`
	Orders    OrderStats    `json:"orders"`
	Earnings  EarningsStats `json:"earnings"`
}

// SalesReportMonth is one calendar-month bucket of the yearly report.
type SalesReportMonth struct {
	Month  string  `json:"month"`
	Sales  float64 `json:"sales"`
	Orders int     `json:"orders"`
	Growth string  `json:"growth"`
}

// SalesReportSummary totals the twelve monthly buckets.
type SalesReportSummary struct {
	TotalSales    string `json:"totalSales"`
	TotalOrders   int    `json:"totalOrders"`
	AverageGrowth string `json:"averageGrowth"`
}

// SalesReport always contains exactly twelve monthly entries, January
// through December, zero-filled for months without data.
type SalesReport struct {
	Monthly []SalesReportMonth `json:"monthly"`
	Summary SalesReportSummary `json:"summary"`
	Year    int                `json:"year"`
}

// BestSellingProduct is one row of the best-selling ranking.
type BestSellingProduct struct {
	ProductID     string  `json:"product_id"`
	ProductName   string  `json:"product_name"`
	TotalQuantity int     `json:"total_quantity"`
	TotalRevenue  float64 `json:"total_revenue"`
	OrderCount    int     `json:"order_count"`
	ReviewCount   int     `json:"review_count"`
	AverageRating float64 `json:"average_rating"`
}

// CategorySales is one row of the category ranking.
type CategorySales struct {
	Category      string  `json:"category"`
	TotalQuantity int     `json:"total_quantity"`
	TotalRevenue  float64 `json:"total_revenue"`
	ProductCount  int     `json:"product_count"`
}
