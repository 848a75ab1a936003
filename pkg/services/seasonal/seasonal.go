// Package seasonal aggregates sales into month and day-of-week buckets and
// ranks product categories by revenue share.
package seasonal

import (
	"math"
	"sort"
	"time"

	"github.com/retail-tools/retail-atlas/pkg/models/domain"
	"github.com/retail-tools/retail-atlas/pkg/models/store"
)

type Aggregator struct{}

func New() *Aggregator {
	return &Aggregator{}
}

// Trends rolls (month, day-of-week) sales rows into per-month and per-day
// buckets and picks the peak of each. Peak ties resolve to the lowest index
// so a quiet dataset still reports a stable answer.
func (a *Aggregator) Trends(rows []store.MonthDowRow) (*domain.SeasonalReport, error) {
	if len(rows) == 0 {
		return nil, &domain.InsufficientDataError{Subject: "sales", Required: 1, Got: 0}
	}

	monthRevenue := make(map[int]float64)
	monthCount := make(map[int]int)
	dayRevenue := make(map[int]float64)
	dayCount := make(map[int]int)

	for _, row := range rows {
		rev := row.Revenue.InexactFloat64()
		monthRevenue[row.Month] += rev
		monthCount[row.Month] += int(row.SaleCount)
		dayRevenue[row.DayOfWeek] += rev
		dayCount[row.DayOfWeek] += int(row.SaleCount)
	}

	report := &domain.SeasonalReport{}

	peakMonth, peakMonthRev := 0, math.Inf(-1)
	for m := 1; m <= 12; m++ {
		count, ok := monthCount[m]
		if !ok {
			continue
		}
		bucket := domain.MonthBucket{
			Month:     time.Month(m),
			Revenue:   round2(monthRevenue[m]),
			SaleCount: count,
		}
		if count > 0 {
			bucket.AvgSaleValue = round2(monthRevenue[m] / float64(count))
		}
		report.MonthlyTrends = append(report.MonthlyTrends, bucket)
		if monthRevenue[m] > peakMonthRev {
			peakMonth, peakMonthRev = m, monthRevenue[m]
		}
	}

	peakDay, peakDayRev := 0, math.Inf(-1)
	for d := 0; d <= 6; d++ {
		count, ok := dayCount[d]
		if !ok {
			continue
		}
		bucket := domain.DayBucket{
			DayOfWeek: time.Weekday(d),
			Revenue:   round2(dayRevenue[d]),
			SaleCount: count,
		}
		if count > 0 {
			bucket.AvgSaleValue = round2(dayRevenue[d] / float64(count))
		}
		report.DailyTrends = append(report.DailyTrends, bucket)
		if dayRevenue[d] > peakDayRev {
			peakDay, peakDayRev = d, dayRevenue[d]
		}
	}

	report.PeakMonth = time.Month(peakMonth)
	report.PeakDay = time.Weekday(peakDay)
	return report, nil
}

// Categories ranks category sales rows by revenue, descending, annotating
// each with its share of the total.
func (a *Aggregator) Categories(rows []store.CategorySalesRow) []domain.CategoryPerformance {
	total := 0.0
	for _, row := range rows {
		total += row.Revenue.InexactFloat64()
	}

	out := make([]domain.CategoryPerformance, 0, len(rows))
	for _, row := range rows {
		rev := row.Revenue.InexactFloat64()
		perf := domain.CategoryPerformance{
			Category:   row.Category,
			SalesCount: int(row.SaleCount),
			UnitsSold:  int(row.UnitsSold),
			Revenue:    row.Revenue,
			AvgPrice:   round2(row.AvgPrice),
		}
		if total > 0 {
			perf.RevenueShare = round2(rev / total * 100)
		}
		if row.SaleCount > 0 {
			perf.AvgSaleValue = round2(rev / float64(row.SaleCount))
		}
		out = append(out, perf)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Revenue.GreaterThan(out[j].Revenue)
	})
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
