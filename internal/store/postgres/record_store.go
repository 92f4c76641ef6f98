package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Alamatniige/izaj-desktop-application/internal/domain"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// RecordStore fetches typed records from Postgres. Numeric columns are
// scanned loosely and coerced once here, so the aggregation engine only
// ever sees numbers.
type RecordStore struct {
	db *DB
}

func NewRecordStore(db *DB) *RecordStore {
	return &RecordStore{db: db}
}

type orderRow struct {
	ID          string         `db:"id"`
	Status      string         `db:"status"`
	TotalAmount sql.NullString `db:"total_amount"`
	CreatedAt   time.Time      `db:"created_at"`
}

type orderItemRow struct {
	OrderID     string         `db:"order_id"`
	ProductID   string         `db:"product_id"`
	ProductName sql.NullString `db:"product_name"`
	Quantity    sql.NullString `db:"quantity"`
	UnitPrice   sql.NullString `db:"unit_price"`
}

func (r *RecordStore) CountProfiles(ctx context.Context) (int, error) {
	return r.countProfiles(ctx, nil)
}

func (r *RecordStore) CountProfilesSince(ctx context.Context, since time.Time) (int, error) {
	return r.countProfiles(ctx, &fetchFilter{
		GTE: map[string]interface{}{"created_at": since},
	})
}

func (r *RecordStore) countProfiles(ctx context.Context, filter *fetchFilter) (int, error) {
	clause, args := buildFilterClause(filter, 1)
	query := "SELECT COUNT(*) FROM profiles" + clause

	var count int
	err := r.db.withSlot(ctx, func() error {
		return r.db.GetContext(ctx, &count, query, args...)
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count profiles: %w", err)
	}

	return count, nil
}

func (r *RecordStore) ListOrders(ctx context.Context) ([]domain.Order, error) {
	return r.listOrders(ctx, nil)
}

func (r *RecordStore) ListCompletedOrdersBetween(ctx context.Context, from, to time.Time) ([]domain.Order, error) {
	return r.listOrders(ctx, &fetchFilter{
		Equals: map[string]interface{}{"status": domain.StatusComplete},
		GTE:    map[string]interface{}{"created_at": from},
		LTE:    map[string]interface{}{"created_at": to},
	})
}

func (r *RecordStore) listOrders(ctx context.Context, filter *fetchFilter) ([]domain.Order, error) {
	clause, args := buildFilterClause(filter, 1)
	query := "SELECT id, status, total_amount::text AS total_amount, created_at FROM orders" + clause

	var rows []orderRow
	err := r.db.withSlot(ctx, func() error {
		return sqlx.SelectContext(ctx, r.db, &rows, query, args...)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}

	log.Debug().Int("rows", len(rows)).Msg("record store: orders fetched")

	orders := make([]domain.Order, len(rows))
	for i, row := range rows {
		orders[i] = domain.Order{
			ID:          row.ID,
			Status:      row.Status,
			TotalAmount: domain.CoerceFloat(row.TotalAmount.String),
			CreatedAt:   row.CreatedAt,
		}
	}

	return orders, nil
}

func (r *RecordStore) ListCompletedOrderIDs(ctx context.Context) ([]string, error) {
	clause, args := buildFilterClause(&fetchFilter{
		Equals: map[string]interface{}{"status": domain.StatusComplete},
	}, 1)
	query := "SELECT id FROM orders" + clause

	var ids []string
	err := r.db.withSlot(ctx, func() error {
		return sqlx.SelectContext(ctx, r.db, &ids, query, args...)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch completed order ids: %w", err)
	}

	return ids, nil
}

func (r *RecordStore) ListItemsByOrderIDs(ctx context.Context, orderIDs []string, category string) ([]domain.OrderItem, error) {
	if len(orderIDs) == 0 {
		return nil, nil
	}

	idValues := make([]interface{}, len(orderIDs))
	for i, id := range orderIDs {
		idValues[i] = id
	}

	clause, args := buildFilterClause(&fetchFilter{
		InSet: map[string][]interface{}{"order_id": idValues},
	}, 1)
	query := `SELECT order_id, product_id, product_name,
	        quantity::text AS quantity, unit_price::text AS unit_price
	    FROM order_items` + clause

	var rows []orderItemRow
	err := r.db.withSlot(ctx, func() error {
		return sqlx.SelectContext(ctx, r.db, &rows, query, args...)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch order items: %w", err)
	}

	log.Debug().Int("rows", len(rows)).Int("order_ids", len(orderIDs)).Msg("record store: order items fetched")

	// Categories are derived from product names, so the restriction is
	// applied here rather than in SQL.
	items := make([]domain.OrderItem, 0, len(rows))
	for _, row := range rows {
		if category != "" && domain.CategoryOf(row.ProductName.String) != category {
			continue
		}
		items = append(items, domain.OrderItem{
			OrderID:     row.OrderID,
			ProductID:   row.ProductID,
			ProductName: row.ProductName.String,
			Quantity:    domain.CoerceFloat(row.Quantity.String),
			UnitPrice:   domain.CoerceFloat(row.UnitPrice.String),
		})
	}

	return items, nil
}

func (r *RecordStore) ListRatings(ctx context.Context, productID string) ([]float64, error) {
	clause, args := buildFilterClause(&fetchFilter{
		Equals: map[string]interface{}{"product_id": productID},
	}, 1)
	query := "SELECT rating::text FROM reviews" + clause

	var raw []string
	err := r.db.withSlot(ctx, func() error {
		return sqlx.SelectContext(ctx, r.db, &raw, query, args...)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reviews: %w", err)
	}

	ratings := make([]float64, len(raw))
	for i, v := range raw {
		ratings[i] = domain.CoerceFloat(v)
	}

	return ratings, nil
}
