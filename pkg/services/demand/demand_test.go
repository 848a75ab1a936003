package demand

import (
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retail-tools/retail-atlas/pkg/models/domain"
)

func quantitySeries(start time.Time, quantities []int) []domain.DailyPoint {
	points := make([]domain.DailyPoint, 0, len(quantities))
	for i, q := range quantities {
		points = append(points, domain.DailyPoint{
			Date:      start.AddDate(0, 0, i),
			Revenue:   decimal.NewFromInt(int64(q * 10)),
			UnitCount: q,
			SaleCount: 1,
		})
	}
	return points
}

func TestForecast_RecommendedStockCarriesBuffer(t *testing.T) {
	start := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	points := quantitySeries(start, []int{4, 6, 5, 9, 12, 14, 3, 5, 6, 8, 11, 13, 15, 4})

	f := New(DefaultConfig())
	result, err := f.Forecast(42, points, 30)
	require.NoError(t, err)

	assert.Equal(t, 42, result.ProductID)
	assert.Equal(t, 30, result.HorizonDays)
	require.Len(t, result.Points, 30)

	expected := int(math.Ceil(1.2 * float64(result.TotalPredictedDemand)))
	assert.Equal(t, expected, result.RecommendedStockLevel)
	assert.GreaterOrEqual(t, result.RecommendedStockLevel, 0)
}

func TestForecast_PredictionsBoundedByObservations(t *testing.T) {
	start := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	points := quantitySeries(start, []int{2, 3, 4, 8, 10, 9, 2, 3, 5, 7, 11, 8, 3, 2})

	f := New(DefaultConfig())
	result, err := f.Forecast(1, points, 14)
	require.NoError(t, err)

	// Bagged trees average observed targets, so no prediction can leave the
	// observed range.
	for _, p := range result.Points {
		assert.GreaterOrEqual(t, p.Quantity, 0)
		assert.LessOrEqual(t, p.Quantity, 11)
	}
}

func TestForecast_Deterministic(t *testing.T) {
	start := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	points := quantitySeries(start, []int{5, 7, 2, 9, 4, 12, 6, 8, 3, 10})

	f := New(DefaultConfig())
	first, err := f.Forecast(7, points, 30)
	require.NoError(t, err)
	second, err := f.Forecast(7, points, 30)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestForecast_MinimumBoundary(t *testing.T) {
	start := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	f := New(DefaultConfig())

	t.Run("six points fails", func(t *testing.T) {
		_, err := f.Forecast(1, quantitySeries(start, []int{1, 2, 3, 4, 5, 6}), 7)
		var insufficient *domain.InsufficientDataError
		require.ErrorAs(t, err, &insufficient)
		assert.Equal(t, 6, insufficient.Got)
	})

	t.Run("seven points succeeds", func(t *testing.T) {
		result, err := f.Forecast(1, quantitySeries(start, []int{1, 2, 3, 4, 5, 6, 7}), 7)
		require.NoError(t, err)
		require.Len(t, result.Points, 7)
	})
}

func TestForecast_ConstantDemand(t *testing.T) {
	start := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	points := quantitySeries(start, []int{5, 5, 5, 5, 5, 5, 5, 5, 5, 5})

	f := New(DefaultConfig())
	result, err := f.Forecast(1, points, 10)
	require.NoError(t, err)

	for _, p := range result.Points {
		assert.Equal(t, 5, p.Quantity)
	}
	assert.Equal(t, 50, result.TotalPredictedDemand)
	assert.Equal(t, 60, result.RecommendedStockLevel)
}

func TestBuildTree_SplitsOnStrongFeature(t *testing.T) {
	// Demand is 2 on weekdays (dow<5), 10 on weekends.
	features := [][]float64{
		{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 6}, {6, 0}, {7, 1}, {8, 2}, {9, 3},
	}
	targets := []float64{2, 2, 2, 2, 10, 10, 2, 2, 2, 2}

	tree := buildTree(features, targets, 0, 6, 1)
	assert.InDelta(t, 10, tree.predict([]float64{10, 5}), 1e-9)
	assert.InDelta(t, 2, tree.predict([]float64{10, 2}), 1e-9)
}
