// Package stockout estimates when products run out of stock by fitting a
// linear depletion trend over recent stock-level events.
package stockout

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/retail-tools/retail-atlas/pkg/models/domain"
	"github.com/retail-tools/retail-atlas/pkg/services/forecast"
)

const (
	// MinSamples is the smallest history a depletion line can be fitted on.
	MinSamples = 3

	// ReorderHorizonDays flags products predicted to run dry within two weeks.
	ReorderHorizonDays = 14
)

type Predictor struct {
	now func() time.Time
}

func New() *Predictor {
	return &Predictor{now: time.Now}
}

func NewWithClock(now func() time.Time) *Predictor {
	return &Predictor{now: now}
}

// Predict fits stock level against days-since-first-sample and solves the
// line for zero. Too little history is not an error: the caller still gets a
// low-confidence result with the stock-vs-reorder-level comparison applied.
func (p *Predictor) Predict(product domain.Product, samples []domain.StockSample) (*domain.StockoutPrediction, error) {
	result := &domain.StockoutPrediction{
		ProductID:    product.ID,
		ProductName:  product.Name,
		CurrentStock: product.Stock,
	}

	if len(samples) < MinSamples {
		result.Confidence = domain.ConfidenceLow
		result.ReorderRecommended = product.Stock <= product.ReorderLevel
		result.Message = "Insufficient historical data for prediction"
		return result, nil
	}

	first := samples[0].RecordedAt
	xs := make([]float64, len(samples))
	ys := make([]float64, len(samples))
	for i, s := range samples {
		xs[i] = float64(daysBetween(first, s.RecordedAt))
		ys[i] = float64(s.Level)
	}

	intercept, slope, r2, err := forecast.FitLine(xs, ys)
	if err != nil {
		return nil, fmt.Errorf("fit stock trend for product %d: %w", product.ID, err)
	}

	if slope >= 0 {
		result.Confidence = domain.ConfidenceHigh
		result.ReorderRecommended = product.Stock <= product.ReorderLevel
		result.Message = "Stock levels are stable or increasing"
		return result, nil
	}

	// y = slope*x + intercept crosses zero at x = -intercept/slope.
	stockoutDay := -intercept / slope
	currentDay := float64(daysBetween(first, p.now()))
	remaining := stockoutDay - currentDay
	if remaining < 0 {
		remaining = 0
	}
	remaining = round1(remaining)

	stockoutDate := p.now().Add(time.Duration(remaining * 24 * float64(time.Hour)))
	depletion := round2(-slope)

	result.DaysRemaining = &remaining
	result.StockoutDate = &stockoutDate
	result.Confidence = domain.ConfidenceFromR2(r2)
	result.DepletionRate = &depletion
	result.ReorderRecommended = remaining < ReorderHorizonDays || product.Stock <= product.ReorderLevel
	return result, nil
}

// Rank orders predictions by urgency: soonest stockout first, unknown last.
// The sort is stable so equally urgent products keep their input order.
func Rank(predictions []*domain.StockoutPrediction) []*domain.StockoutPrediction {
	ranked := make([]*domain.StockoutPrediction, len(predictions))
	copy(ranked, predictions)
	sort.SliceStable(ranked, func(i, j int) bool {
		return daysOrInf(ranked[i]) < daysOrInf(ranked[j])
	})
	return ranked
}

func daysOrInf(p *domain.StockoutPrediction) float64 {
	if p.DaysRemaining == nil {
		return math.Inf(1)
	}
	return *p.DaysRemaining
}

// daysBetween truncates to whole days, matching the integer day indexing
// used across the engine.
func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
