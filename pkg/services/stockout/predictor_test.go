package stockout

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retail-tools/retail-atlas/pkg/models/domain"
)

var testStart = time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

func clockAt(day int) func() time.Time {
	return func() time.Time { return testStart.AddDate(0, 0, day) }
}

func sample(day, level int, action domain.StockAction) domain.StockSample {
	return domain.StockSample{
		RecordedAt: testStart.AddDate(0, 0, day),
		Level:      level,
		Action:     action,
	}
}

func testProduct(stock, reorder int) domain.Product {
	return domain.Product{
		ID:           1,
		Name:         "Olive Oil 1L",
		Category:     "Pantry",
		Price:        decimal.NewFromFloat(12.99),
		Stock:        stock,
		ReorderLevel: reorder,
	}
}

func TestPredict_LinearDepletion(t *testing.T) {
	// 5 units/day: 100 at day 0, 75 at day 5, 50 at day 10. Zero at day 20.
	samples := []domain.StockSample{
		sample(0, 100, domain.StockActionInitial),
		sample(5, 75, domain.StockActionSale),
		sample(10, 50, domain.StockActionSale),
	}

	p := NewWithClock(clockAt(10))
	result, err := p.Predict(testProduct(50, 10), samples)
	require.NoError(t, err)

	require.NotNil(t, result.DaysRemaining)
	assert.InDelta(t, 10.0, *result.DaysRemaining, 0.11)
	require.NotNil(t, result.DepletionRate)
	assert.InDelta(t, 5.0, *result.DepletionRate, 1e-9)
	assert.Equal(t, domain.ConfidenceHigh, result.Confidence)
	assert.True(t, result.ReorderRecommended, "10 days remaining is inside the reorder horizon")
	require.NotNil(t, result.StockoutDate)
	assert.WithinDuration(t, testStart.AddDate(0, 0, 20), *result.StockoutDate, 3*time.Hour)
}

func TestPredict_StableStock(t *testing.T) {
	samples := []domain.StockSample{
		sample(0, 40, domain.StockActionInitial),
		sample(3, 40, domain.StockActionAdjustment),
		sample(6, 40, domain.StockActionAdjustment),
	}

	p := NewWithClock(clockAt(6))
	result, err := p.Predict(testProduct(40, 10), samples)
	require.NoError(t, err)

	assert.Nil(t, result.DaysRemaining)
	assert.Nil(t, result.StockoutDate)
	assert.Equal(t, domain.ConfidenceHigh, result.Confidence)
	assert.Equal(t, "Stock levels are stable or increasing", result.Message)
	assert.False(t, result.ReorderRecommended)
}

func TestPredict_RisingStock(t *testing.T) {
	samples := []domain.StockSample{
		sample(0, 10, domain.StockActionInitial),
		sample(2, 30, domain.StockActionRestock),
		sample(4, 55, domain.StockActionRestock),
	}

	p := NewWithClock(clockAt(4))
	result, err := p.Predict(testProduct(55, 10), samples)
	require.NoError(t, err)
	assert.Nil(t, result.DaysRemaining)
	assert.Equal(t, domain.ConfidenceHigh, result.Confidence)
}

func TestPredict_TooFewSamples(t *testing.T) {
	samples := []domain.StockSample{
		sample(0, 100, domain.StockActionInitial),
		sample(10, 50, domain.StockActionSale),
	}

	p := NewWithClock(clockAt(10))

	t.Run("stock above reorder level", func(t *testing.T) {
		result, err := p.Predict(testProduct(50, 10), samples)
		require.NoError(t, err)
		assert.Nil(t, result.DaysRemaining)
		assert.Equal(t, domain.ConfidenceLow, result.Confidence)
		assert.Equal(t, "Insufficient historical data for prediction", result.Message)
		assert.False(t, result.ReorderRecommended)
	})

	t.Run("stock at reorder level", func(t *testing.T) {
		result, err := p.Predict(testProduct(10, 10), samples)
		require.NoError(t, err)
		assert.True(t, result.ReorderRecommended)
	})
}

func TestPredict_PastStockoutClampsToZero(t *testing.T) {
	samples := []domain.StockSample{
		sample(0, 30, domain.StockActionInitial),
		sample(1, 20, domain.StockActionSale),
		sample(2, 10, domain.StockActionSale),
	}

	// The line crosses zero at day 3; "today" is day 5.
	p := NewWithClock(clockAt(5))
	result, err := p.Predict(testProduct(0, 10), samples)
	require.NoError(t, err)
	require.NotNil(t, result.DaysRemaining)
	assert.Equal(t, 0.0, *result.DaysRemaining)
	assert.True(t, result.ReorderRecommended)
}

func TestRank(t *testing.T) {
	days3 := 3.0
	days12 := 12.5
	predictions := []*domain.StockoutPrediction{
		{ProductID: 1, DaysRemaining: nil},
		{ProductID: 2, DaysRemaining: &days12},
		{ProductID: 3, DaysRemaining: &days3},
		{ProductID: 4, DaysRemaining: nil},
	}

	ranked := Rank(predictions)
	require.Len(t, ranked, 4)
	assert.Equal(t, 3, ranked[0].ProductID)
	assert.Equal(t, 2, ranked[1].ProductID)
	// Unknown stockouts sort last, keeping their relative order.
	assert.Equal(t, 1, ranked[2].ProductID)
	assert.Equal(t, 4, ranked[3].ProductID)
}
