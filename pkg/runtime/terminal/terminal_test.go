package terminal

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retail-tools/retail-atlas/pkg/models/domain"
)

// stubEngine serves one canned anomaly; the other operations are unused here.
type stubEngine struct{}

func (stubEngine) RevenueForecast(context.Context, int) (*domain.RevenueForecast, error) {
	return nil, nil
}
func (stubEngine) SeasonalTrends(context.Context) (*domain.SeasonalReport, error) { return nil, nil }
func (stubEngine) CategoryPerformance(context.Context) ([]domain.CategoryPerformance, error) {
	return nil, nil
}
func (stubEngine) ProfitMargin(context.Context, int, decimal.Decimal) (*domain.ProfitMargin, error) {
	return nil, nil
}
func (stubEngine) DemandForecast(context.Context, int, int) (*domain.DemandForecast, error) {
	return nil, nil
}
func (stubEngine) PriceOptimization(context.Context, int) (*domain.PriceSuggestion, error) {
	return nil, nil
}
func (stubEngine) StockoutPrediction(context.Context, int) (*domain.StockoutPrediction, error) {
	return nil, nil
}
func (stubEngine) AllStockoutPredictions(context.Context) ([]*domain.StockoutPrediction, error) {
	return nil, nil
}

func (stubEngine) Anomalies(context.Context) ([]domain.Anomaly, error) {
	return []domain.Anomaly{{
		Date:         time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC),
		Revenue:      980.50,
		DeviationPct: 62.0,
		Direction:    "spike",
		Severity:     "high",
	}}, nil
}

func runCLI(t *testing.T, args ...string) string {
	t.Helper()

	var buf bytes.Buffer
	cli := NewCLI(Options{Engine: stubEngine{}, Output: &buf})
	cli.rootCmd.SetArgs(args)

	require.NoError(t, cli.Execute())
	return buf.String()
}

func TestCLI_PlainFlag(t *testing.T) {
	t.Run("default renders bordered tables", func(t *testing.T) {
		out := runCLI(t, "anomalies")
		assert.Contains(t, out, "Sales Anomalies")
		assert.Contains(t, out, "+--")
		assert.Contains(t, out, "| 2025-05-20")
	})

	t.Run("plain flag drops the borders", func(t *testing.T) {
		out := runCLI(t, "anomalies", "--plain")
		assert.Contains(t, out, "Sales Anomalies")
		assert.Contains(t, out, "- 2025-05-20: 980.50 revenue")
		assert.NotContains(t, out, "+--")
	})
}
