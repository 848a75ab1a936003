package domain

import "github.com/shopspring/decimal"

// Product is the slice of the catalog the engine needs; the CRUD layer owns
// the full record.
type Product struct {
	ID           int
	Name         string
	Category     string
	Price        decimal.Decimal
	Stock        int
	ReorderLevel int
}
