package retail

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/retail-tools/retail-atlas/pkg/models/store"
)

// Store is the read-only view of the transactional schema the analytics
// engine consumes. All writes belong to the CRUD layer.
type Store interface {
	// DailySales returns one row per calendar day with at least one sale
	// since the cutoff, ordered by date. productID narrows to one product.
	DailySales(ctx context.Context, since time.Time, productID *int) ([]store.DailySalesRow, error)

	// StockHistory returns a product's stock-level events since the cutoff,
	// ordered by recorded_at.
	StockHistory(ctx context.Context, productID int, since time.Time) ([]store.StockHistoryRow, error)

	// Product returns one catalog row, or (nil, nil) when the id is unknown.
	Product(ctx context.Context, id int) (*store.ProductRow, error)

	// Products lists the whole catalog, ordered by id.
	Products(ctx context.Context) ([]store.ProductRow, error)

	// SalesByCategory aggregates sales joined to product categories since the cutoff.
	SalesByCategory(ctx context.Context, since time.Time) ([]store.CategorySalesRow, error)

	// SalesByMonthAndDOW buckets sales by (calendar month, day of week 0=Sunday).
	SalesByMonthAndDOW(ctx context.Context, since time.Time) ([]store.MonthDowRow, error)

	// SalesStats summarizes a product's raw sale rows since the cutoff.
	SalesStats(ctx context.Context, productID int, since time.Time) (store.SalesStatsRow, error)
}

type sqlStore struct {
	db *sql.DB
}

// NewStore wraps an open database handle. The SQL is portable across
// Postgres and DuckDB ($N placeholders, EXTRACT with 0=Sunday dow).
func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &sqlStore{db: db}, nil
}

func (s *sqlStore) DailySales(ctx context.Context, since time.Time, productID *int) ([]store.DailySalesRow, error) {
	query := `
		SELECT CAST(sale_date AS DATE) AS day,
		       SUM(total_amount) AS revenue,
		       SUM(quantity) AS units,
		       COUNT(*) AS sale_count
		FROM sales
		WHERE sale_date >= $1`
	args := []interface{}{since}
	if productID != nil {
		query += " AND product_id = $2"
		args = append(args, *productID)
	}
	query += `
		GROUP BY 1
		ORDER BY 1`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query daily sales: %w", err)
	}
	defer rows.Close()

	result := make([]store.DailySalesRow, 0)
	for rows.Next() {
		var r store.DailySalesRow
		if err := rows.Scan(&r.Date, &r.Revenue, &r.UnitsSold, &r.SaleCount); err != nil {
			return nil, fmt.Errorf("scan daily sales row: %w", err)
		}
		result = append(result, r)
	}
	return result, rows.Err()
}

func (s *sqlStore) StockHistory(ctx context.Context, productID int, since time.Time) ([]store.StockHistoryRow, error) {
	query := `
		SELECT recorded_at, stock_level, action
		FROM stock_history
		WHERE product_id = $1 AND recorded_at >= $2
		ORDER BY recorded_at`

	rows, err := s.db.QueryContext(ctx, query, productID, since)
	if err != nil {
		return nil, fmt.Errorf("query stock history: %w", err)
	}
	defer rows.Close()

	result := make([]store.StockHistoryRow, 0)
	for rows.Next() {
		var r store.StockHistoryRow
		if err := rows.Scan(&r.RecordedAt, &r.StockLevel, &r.Action); err != nil {
			return nil, fmt.Errorf("scan stock history row: %w", err)
		}
		result = append(result, r)
	}
	return result, rows.Err()
}

func (s *sqlStore) Product(ctx context.Context, id int) (*store.ProductRow, error) {
	query := `
		SELECT id, name, category, price, stock, reorder_level
		FROM products
		WHERE id = $1`

	var r store.ProductRow
	err := s.db.QueryRowContext(ctx, query, id).
		Scan(&r.ID, &r.Name, &r.Category, &r.Price, &r.Stock, &r.ReorderLevel)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query product %d: %w", id, err)
	}
	return &r, nil
}

func (s *sqlStore) Products(ctx context.Context) ([]store.ProductRow, error) {
	query := `
		SELECT id, name, category, price, stock, reorder_level
		FROM products
		ORDER BY id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	result := make([]store.ProductRow, 0)
	for rows.Next() {
		var r store.ProductRow
		if err := rows.Scan(&r.ID, &r.Name, &r.Category, &r.Price, &r.Stock, &r.ReorderLevel); err != nil {
			return nil, fmt.Errorf("scan product row: %w", err)
		}
		result = append(result, r)
	}
	return result, rows.Err()
}

func (s *sqlStore) SalesByCategory(ctx context.Context, since time.Time) ([]store.CategorySalesRow, error) {
	query := `
		SELECT p.category,
		       COUNT(*) AS sale_count,
		       SUM(s.quantity) AS units,
		       SUM(s.total_amount) AS revenue,
		       AVG(p.price) AS avg_price
		FROM sales s
		JOIN products p ON p.id = s.product_id
		WHERE s.sale_date >= $1
		GROUP BY p.category`

	rows, err := s.db.QueryContext(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("query sales by category: %w", err)
	}
	defer rows.Close()

	result := make([]store.CategorySalesRow, 0)
	for rows.Next() {
		var r store.CategorySalesRow
		if err := rows.Scan(&r.Category, &r.SaleCount, &r.UnitsSold, &r.Revenue, &r.AvgPrice); err != nil {
			return nil, fmt.Errorf("scan category row: %w", err)
		}
		result = append(result, r)
	}
	return result, rows.Err()
}

func (s *sqlStore) SalesByMonthAndDOW(ctx context.Context, since time.Time) ([]store.MonthDowRow, error) {
	query := `
		SELECT CAST(EXTRACT(MONTH FROM sale_date) AS INTEGER) AS month,
		       CAST(EXTRACT(DOW FROM sale_date) AS INTEGER) AS day_of_week,
		       SUM(total_amount) AS revenue,
		       COUNT(*) AS sale_count
		FROM sales
		WHERE sale_date >= $1
		GROUP BY 1, 2`

	rows, err := s.db.QueryContext(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("query sales by month and dow: %w", err)
	}
	defer rows.Close()

	result := make([]store.MonthDowRow, 0)
	for rows.Next() {
		var r store.MonthDowRow
		if err := rows.Scan(&r.Month, &r.DayOfWeek, &r.Revenue, &r.SaleCount); err != nil {
			return nil, fmt.Errorf("scan month/dow row: %w", err)
		}
		result = append(result, r)
	}
	return result, rows.Err()
}

func (s *sqlStore) SalesStats(ctx context.Context, productID int, since time.Time) (store.SalesStatsRow, error) {
	query := `
		SELECT COUNT(*) AS sale_count,
		       COALESCE(SUM(quantity), 0) AS total_units,
		       COALESCE(SUM(total_amount), 0) AS revenue
		FROM sales
		WHERE product_id = $1 AND sale_date >= $2`

	var r store.SalesStatsRow
	err := s.db.QueryRowContext(ctx, query, productID, since).Scan(&r.SaleCount, &r.TotalUnits, &r.Revenue)
	if err != nil {
		return store.SalesStatsRow{}, fmt.Errorf("query sales stats: %w", err)
	}
	return r, nil
}
