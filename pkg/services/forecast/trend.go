// Package forecast fits a linear revenue trend over daily sales and
// extrapolates it forward.
package forecast

import (
	"fmt"
	"time"

	"github.com/sajari/regression"

	"github.com/retail-tools/retail-atlas/pkg/models/domain"
)

// MinPoints is the smallest daily series a trend can be fitted on.
const MinPoints = 7

type Forecaster struct {
	now func() time.Time
}

func New() *Forecaster {
	return &Forecaster{now: time.Now}
}

// NewWithClock pins the forecaster's notion of "today"; used by the engine
// and by tests.
func NewWithClock(now func() time.Time) *Forecaster {
	return &Forecaster{now: now}
}

// Forecast extrapolates revenue horizon days past the end of the series.
// The model is fitted fresh on every call; nothing is shared between requests.
func (f *Forecaster) Forecast(points []domain.DailyPoint, horizon int) (*domain.RevenueForecast, error) {
	if len(points) < MinPoints {
		return nil, &domain.InsufficientDataError{
			Subject:  "days of sales data",
			Required: MinPoints,
			Got:      len(points),
		}
	}

	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i] = float64(p.DayIndex(points[0]))
		ys[i] = p.Revenue.InexactFloat64()
	}

	intercept, slope, r2, err := FitLine(xs, ys)
	if err != nil {
		return nil, fmt.Errorf("fit revenue trend: %w", err)
	}

	now := f.now()
	lastIndex := xs[len(xs)-1]
	result := &domain.RevenueForecast{
		HorizonDays: horizon,
		Points:      make([]domain.ForecastPoint, 0, horizon),
		FitQuality:  r2,
		Confidence:  domain.ConfidenceFromR2(r2),
	}

	total := 0.0
	for i := 1; i <= horizon; i++ {
		value := intercept + slope*(lastIndex+float64(i))
		total += value
		result.Points = append(result.Points, domain.ForecastPoint{
			DayOffset: i,
			Date:      now.AddDate(0, 0, i),
			Value:     value,
		})
	}
	result.PredictedRevenue = total

	// Ties label as decreasing: a flat line is not growth.
	result.Trend = domain.TrendDecreasing
	if result.Points[horizon-1].Value > result.Points[0].Value {
		result.Trend = domain.TrendIncreasing
	}

	return result, nil
}

// FitLine runs ordinary least squares of y on x and reports
// (intercept, slope, R²). A constant series is a perfect fit by definition:
// slope 0, R² = 1.
func FitLine(xs, ys []float64) (intercept, slope, r2 float64, err error) {
	if constant(ys) {
		return ys[0], 0, 1, nil
	}

	var r regression.Regression
	r.SetObserved("revenue")
	r.SetVar(0, "day_index")
	for i := range xs {
		r.Train(regression.DataPoint(ys[i], []float64{xs[i]}))
	}
	if err := r.Run(); err != nil {
		return 0, 0, 0, err
	}

	return r.Coeff(0), r.Coeff(1), r.R2, nil
}

func constant(ys []float64) bool {
	for _, y := range ys[1:] {
		if y != ys[0] {
			return false
		}
	}
	return true
}
