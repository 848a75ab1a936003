package domain

import "time"

// Confidence is the coarse reliability tier derived from regression fit quality.
type Confidence string

const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

// ConfidenceFromR2 maps a coefficient of determination to a tier.
func ConfidenceFromR2(r2 float64) Confidence {
	switch {
	case r2 > 0.7:
		return ConfidenceHigh
	case r2 > 0.4:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

type Trend string

const (
	TrendIncreasing Trend = "increasing"
	TrendDecreasing Trend = "decreasing"
)

// ForecastPoint is a single extrapolated day. DayOffset runs 1..horizon.
type ForecastPoint struct {
	DayOffset int
	Date      time.Time
	Value     float64
}

// RevenueForecast is the output of the trend forecaster.
type RevenueForecast struct {
	HorizonDays      int
	Points           []ForecastPoint
	PredictedRevenue float64 // sum over Points
	Confidence       Confidence
	FitQuality       float64 // R² over the training window
	Trend            Trend
}

// DemandPoint is a single predicted demand day, clamped to whole non-negative units.
type DemandPoint struct {
	DayOffset int
	Date      time.Time
	Quantity  int
}

// DemandForecast is the output of the ensemble demand forecaster.
type DemandForecast struct {
	ProductID             int
	HorizonDays           int
	Points                []DemandPoint
	TotalPredictedDemand  int
	RecommendedStockLevel int // ceil(1.2 * total)
}
