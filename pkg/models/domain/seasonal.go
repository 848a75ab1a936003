package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthBucket aggregates a calendar month (1..12) across the lookback window.
type MonthBucket struct {
	Month        time.Month
	Revenue      float64
	SaleCount    int
	AvgSaleValue float64
}

// DayBucket aggregates a day of week (0=Sunday..6=Saturday).
type DayBucket struct {
	DayOfWeek    time.Weekday
	Revenue      float64
	SaleCount    int
	AvgSaleValue float64
}

// SeasonalReport surfaces peak selling periods. Peak ties resolve to the
// lowest month/day index.
type SeasonalReport struct {
	MonthlyTrends []MonthBucket
	DailyTrends   []DayBucket
	PeakMonth     time.Month
	PeakDay       time.Weekday
}

// BestSellingPeriod renders the combined peak, e.g. "Saturdays in December".
func (r SeasonalReport) BestSellingPeriod() string {
	return r.PeakDay.String() + "s in " + r.PeakMonth.String()
}

// CategoryPerformance is one category's share of recent revenue.
type CategoryPerformance struct {
	Category     string
	SalesCount   int
	UnitsSold    int
	Revenue      decimal.Decimal
	AvgPrice     float64
	RevenueShare float64 // percent of total revenue across categories
	AvgSaleValue float64
}
