package domain

import "github.com/shopspring/decimal"

// ProfitMargin reports per-unit and 30-day profitability for a product.
type ProfitMargin struct {
	ProductID       int
	ProductName     string
	CostPrice       decimal.Decimal
	SellingPrice    decimal.Decimal
	ProfitPerUnit   decimal.Decimal
	MarginPct       float64
	MarkupPct       float64
	UnitsSold30Days int
	Revenue30Days   decimal.Decimal
	TotalProfit30   decimal.Decimal
	Recommendation  string
}

// PriceSuggestion reports the velocity-based price adjustment for a product.
type PriceSuggestion struct {
	ProductID          int
	ProductName        string
	CurrentPrice       decimal.Decimal
	SuggestedPrice     decimal.Decimal
	PriceChangePct     float64
	Reason             string
	SalesVelocity      float64 // sales per day over the window
	AvgQuantityPerSale float64
}
