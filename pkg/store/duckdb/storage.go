package duckdb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"

	"github.com/marcboeker/go-duckdb/v2"
)

const ProductsSchema = `
	CREATE TABLE IF NOT EXISTS products (
		id INTEGER PRIMARY KEY,
		name VARCHAR NOT NULL,
		category VARCHAR NOT NULL,
		price DECIMAL(12, 2) NOT NULL,
		stock INTEGER NOT NULL DEFAULT 0,
		reorder_level INTEGER NOT NULL DEFAULT 10
	);
`

const SalesSchema = `
	CREATE TABLE IF NOT EXISTS sales (
		id INTEGER PRIMARY KEY,
		product_id INTEGER NOT NULL,
		quantity INTEGER NOT NULL,
		total_amount DECIMAL(12, 2) NOT NULL,
		sale_date TIMESTAMP NOT NULL
	);
`

const StockHistorySchema = `
	CREATE TABLE IF NOT EXISTS stock_history (
		id INTEGER PRIMARY KEY,
		product_id INTEGER NOT NULL,
		stock_level INTEGER NOT NULL,
		action VARCHAR NOT NULL,
		recorded_at TIMESTAMP NOT NULL
	);
`

var bootQueries = []string{
	ProductsSchema,
	SalesSchema,
	StockHistorySchema,
}

type Settings struct {
	DbPath string
}

// NewDB opens (or creates) an embedded DuckDB file carrying the retail
// transactional schema. The analytics engine only reads from it; rows are
// loaded by whatever syncs the back office's transactional data.
func NewDB(settings Settings) (*sql.DB, error) {
	c, err := duckdb.NewConnector(fmt.Sprintf("%s?threads=4", settings.DbPath), func(exec driver.ExecerContext) error {
		for _, query := range bootQueries {
			_, err := exec.ExecContext(context.Background(), query, nil)
			if err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	db := sql.OpenDB(c)
	return db, nil
}
