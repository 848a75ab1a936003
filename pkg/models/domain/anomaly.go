package domain

import "time"

type AnomalyDirection string

const (
	AnomalyHigh AnomalyDirection = "unusually_high"
	AnomalyLow  AnomalyDirection = "unusually_low"
)

type AnomalySeverity string

const (
	SeverityMedium AnomalySeverity = "medium"
	SeverityHigh   AnomalySeverity = "high"
)

// Anomaly is a daily sales observation flagged by the isolation forest.
type Anomaly struct {
	Date         time.Time
	Revenue      float64
	SaleCount    int
	DeviationPct float64 // vs. window mean revenue, percent
	Direction    AnomalyDirection
	Severity     AnomalySeverity
}
