package store

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailySalesRow is one day of aggregated sales as returned by the store.
type DailySalesRow struct {
	Date      time.Time
	Revenue   decimal.Decimal
	UnitsSold int64
	SaleCount int64
}

// StockHistoryRow is one stock-level event for a product.
type StockHistoryRow struct {
	RecordedAt time.Time
	StockLevel int
	Action     string
}

// ProductRow mirrors the columns of the products table the engine reads.
type ProductRow struct {
	ID           int
	Name         string
	Category     string
	Price        decimal.Decimal
	Stock        int
	ReorderLevel int
}

// CategorySalesRow aggregates sales per product category.
type CategorySalesRow struct {
	Category  string
	SaleCount int64
	UnitsSold int64
	Revenue   decimal.Decimal
	AvgPrice  float64
}

// MonthDowRow aggregates sales per (calendar month, day of week) bucket.
// DayOfWeek follows the store convention: 0=Sunday..6=Saturday.
type MonthDowRow struct {
	Month     int
	DayOfWeek int
	Revenue   decimal.Decimal
	SaleCount int64
}

// SalesStatsRow summarizes raw sales rows for a product over a window.
// Revenue is the sum of recorded sale amounts, not a price projection.
type SalesStatsRow struct {
	SaleCount  int64
	TotalUnits int64
	Revenue    decimal.Decimal
}
