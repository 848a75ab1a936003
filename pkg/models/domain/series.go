package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyPoint is one calendar day of aggregated sales. Days without sales are
// omitted from a series, never zero-filled.
type DailyPoint struct {
	Date      time.Time
	Revenue   decimal.Decimal
	UnitCount int
	SaleCount int
}

// DayIndex returns the integer day offset of p from the first point of the
// series, the independent variable for trend fitting.
func (p DailyPoint) DayIndex(first DailyPoint) int {
	return int(p.Date.Sub(first.Date).Hours() / 24)
}

type StockAction string

const (
	StockActionInitial    StockAction = "initial"
	StockActionSale       StockAction = "sale"
	StockActionRestock    StockAction = "restock"
	StockActionAdjustment StockAction = "adjustment"
)

// StockSample is one append-only stock-level observation for a product.
// Samples are ordered by RecordedAt; the first sample of a product carries
// the "initial" action.
type StockSample struct {
	RecordedAt time.Time
	Level      int
	Action     StockAction
}
