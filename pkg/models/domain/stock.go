package domain

import "time"

// StockoutPrediction describes when a product is expected to run dry.
// DaysRemaining and StockoutDate are nil when no stockout is predicted
// (stable or rising stock, or too little history).
type StockoutPrediction struct {
	ProductID          int
	ProductName        string
	CurrentStock       int
	DaysRemaining      *float64
	StockoutDate       *time.Time
	ReorderRecommended bool
	Confidence         Confidence
	DepletionRate      *float64 // units per day, negative slope inverted
	Message            string
}
