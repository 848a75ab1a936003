package seasonal

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retail-tools/retail-atlas/pkg/models/domain"
	"github.com/retail-tools/retail-atlas/pkg/models/store"
)

func TestTrends_BucketsAndPeaks(t *testing.T) {
	a := New()

	rows := []store.MonthDowRow{
		{Month: 12, DayOfWeek: 6, Revenue: decimal.NewFromInt(900), SaleCount: 30},
		{Month: 12, DayOfWeek: 0, Revenue: decimal.NewFromInt(300), SaleCount: 10},
		{Month: 7, DayOfWeek: 6, Revenue: decimal.NewFromInt(400), SaleCount: 20},
		{Month: 7, DayOfWeek: 3, Revenue: decimal.NewFromInt(200), SaleCount: 10},
	}

	report, err := a.Trends(rows)
	require.NoError(t, err)

	assert.Equal(t, time.December, report.PeakMonth)
	assert.Equal(t, time.Saturday, report.PeakDay)
	assert.Equal(t, "Saturdays in December", report.BestSellingPeriod())

	// Months come back in calendar order regardless of input order.
	require.Len(t, report.MonthlyTrends, 2)
	assert.Equal(t, time.July, report.MonthlyTrends[0].Month)
	assert.Equal(t, 600.0, report.MonthlyTrends[0].Revenue)
	assert.Equal(t, 30, report.MonthlyTrends[0].SaleCount)
	assert.Equal(t, 20.0, report.MonthlyTrends[0].AvgSaleValue)
	assert.Equal(t, time.December, report.MonthlyTrends[1].Month)
	assert.Equal(t, 1200.0, report.MonthlyTrends[1].Revenue)

	require.Len(t, report.DailyTrends, 3)
	assert.Equal(t, time.Sunday, report.DailyTrends[0].DayOfWeek)
	assert.Equal(t, time.Wednesday, report.DailyTrends[1].DayOfWeek)
	assert.Equal(t, time.Saturday, report.DailyTrends[2].DayOfWeek)
	assert.Equal(t, 1300.0, report.DailyTrends[2].Revenue)
}

func TestTrends_PeakTieGoesToLowestIndex(t *testing.T) {
	a := New()

	rows := []store.MonthDowRow{
		{Month: 11, DayOfWeek: 5, Revenue: decimal.NewFromInt(500), SaleCount: 5},
		{Month: 3, DayOfWeek: 1, Revenue: decimal.NewFromInt(500), SaleCount: 5},
	}

	report, err := a.Trends(rows)
	require.NoError(t, err)
	assert.Equal(t, time.March, report.PeakMonth)
	assert.Equal(t, time.Monday, report.PeakDay)
}

func TestTrends_EmptyWindow(t *testing.T) {
	a := New()

	_, err := a.Trends(nil)
	var insufficient *domain.InsufficientDataError
	require.ErrorAs(t, err, &insufficient)
}

func TestCategories_ShareAndOrdering(t *testing.T) {
	a := New()

	rows := []store.CategorySalesRow{
		{Category: "Snacks", SaleCount: 40, UnitsSold: 90, Revenue: decimal.NewFromInt(250), AvgPrice: 2.7777},
		{Category: "Beverages", SaleCount: 25, UnitsSold: 60, Revenue: decimal.NewFromInt(750), AvgPrice: 12.5},
	}

	perfs := a.Categories(rows)
	require.Len(t, perfs, 2)

	assert.Equal(t, "Beverages", perfs[0].Category)
	assert.Equal(t, 75.0, perfs[0].RevenueShare)
	assert.Equal(t, 30.0, perfs[0].AvgSaleValue)
	assert.Equal(t, 12.5, perfs[0].AvgPrice)

	assert.Equal(t, "Snacks", perfs[1].Category)
	assert.Equal(t, 25.0, perfs[1].RevenueShare)
	assert.Equal(t, 2.78, perfs[1].AvgPrice)
}

func TestCategories_Empty(t *testing.T) {
	a := New()
	assert.Empty(t, a.Categories(nil))
}
