package anomaly

import (
	"math/rand"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retail-tools/retail-atlas/pkg/models/domain"
)

func salesWindow(start time.Time, revenues []float64, counts []int) []domain.DailyPoint {
	points := make([]domain.DailyPoint, 0, len(revenues))
	for i, r := range revenues {
		points = append(points, domain.DailyPoint{
			Date:      start.AddDate(0, 0, i),
			Revenue:   decimal.NewFromFloat(r),
			SaleCount: counts[i],
		})
	}
	return points
}

func TestDetect_SpikeDayIsFlaggedHigh(t *testing.T) {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	// Seven ordinary days plus one at 10x revenue.
	revenues := []float64{100, 100, 100, 100, 100, 100, 100, 1000}
	counts := []int{5, 5, 5, 5, 5, 5, 5, 40}

	d := New(DefaultConfig())
	anomalies, err := d.Detect(salesWindow(start, revenues, counts))
	require.NoError(t, err)
	require.Len(t, anomalies, 1)

	spike := anomalies[0]
	assert.Equal(t, start.AddDate(0, 0, 7), spike.Date)
	assert.Equal(t, 1000.0, spike.Revenue)
	assert.Equal(t, domain.AnomalyHigh, spike.Direction)
	assert.Equal(t, domain.SeverityHigh, spike.Severity)
	assert.Greater(t, spike.DeviationPct, 50.0)
}

func TestDetect_DipDayIsFlaggedLow(t *testing.T) {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	revenues := []float64{500, 510, 495, 505, 500, 498, 502, 5}
	counts := []int{20, 21, 19, 20, 20, 20, 20, 1}

	d := New(DefaultConfig())
	anomalies, err := d.Detect(salesWindow(start, revenues, counts))
	require.NoError(t, err)
	require.Len(t, anomalies, 1)
	assert.Equal(t, domain.AnomalyLow, anomalies[0].Direction)
	assert.Equal(t, domain.SeverityHigh, anomalies[0].Severity)
}

func TestDetect_MinimumBoundary(t *testing.T) {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	d := New(DefaultConfig())

	t.Run("six points fails", func(t *testing.T) {
		revenues := []float64{1, 2, 3, 4, 5, 6}
		counts := []int{1, 1, 1, 1, 1, 1}
		_, err := d.Detect(salesWindow(start, revenues, counts))
		var insufficient *domain.InsufficientDataError
		require.ErrorAs(t, err, &insufficient)
	})

	t.Run("seven points succeeds", func(t *testing.T) {
		revenues := []float64{1, 2, 3, 4, 5, 6, 7}
		counts := []int{1, 1, 1, 1, 1, 1, 1}
		anomalies, err := d.Detect(salesWindow(start, revenues, counts))
		require.NoError(t, err)
		// Contamination 0.1 over 7 points flags exactly one day.
		assert.Len(t, anomalies, 1)
	})
}

func TestDetect_Deterministic(t *testing.T) {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	revenues := []float64{120, 90, 300, 110, 95, 105, 100, 115, 98, 101, 99, 102}
	counts := []int{4, 3, 12, 4, 3, 4, 4, 4, 3, 4, 3, 4}

	d := New(DefaultConfig())
	first, err := d.Detect(salesWindow(start, revenues, counts))
	require.NoError(t, err)
	second, err := d.Detect(salesWindow(start, revenues, counts))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestDetect_OutputSortedByDate(t *testing.T) {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	revenues := make([]float64, 30)
	counts := make([]int, 30)
	for i := range revenues {
		revenues[i] = 200
		counts[i] = 8
	}
	// Two spikes out of 30 days; contamination 0.1 flags three days total.
	revenues[25] = 2000
	counts[25] = 60
	revenues[4] = 1800
	counts[4] = 55

	d := New(DefaultConfig())
	anomalies, err := d.Detect(salesWindow(start, revenues, counts))
	require.NoError(t, err)
	require.Len(t, anomalies, 3)
	for i := 1; i < len(anomalies); i++ {
		assert.True(t, anomalies[i-1].Date.Before(anomalies[i].Date))
	}
}

func TestIsolationForest_OutlierScoresHighest(t *testing.T) {
	data := [][]float64{
		{10, 1}, {11, 1}, {9, 1}, {10, 2}, {12, 1}, {11, 2}, {10, 1}, {120, 30},
	}
	rng := rand.New(rand.NewSource(1))
	forest := fitIsolationForest(data, 100, 256, rng)

	outlier := forest.score(data[7])
	for i := 0; i < 7; i++ {
		assert.Greater(t, outlier, forest.score(data[i]))
	}
}
