// Package pricing computes profit margins and velocity-based price
// suggestions for individual products.
package pricing

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/retail-tools/retail-atlas/pkg/models/domain"
)

// MinSales is the fewest sales a product needs in the lookback window
// before a price suggestion is made.
const MinSales = 5

const (
	highDemandVelocity = 2.0 // sales per day
	steadyVelocity     = 1.0
)

var (
	raisePct = decimal.NewFromFloat(1.10)
	dropPct  = decimal.NewFromFloat(0.90)
)

type Analyzer struct{}

func New() *Analyzer {
	return &Analyzer{}
}

// Margin computes per-unit and windowed profitability for a product at the
// given cost price. The cost must be positive; selling below cost yields a
// negative margin rather than an error.
func (a *Analyzer) Margin(product *domain.Product, costPrice decimal.Decimal, unitsSold int, revenue decimal.Decimal) (*domain.ProfitMargin, error) {
	if !costPrice.IsPositive() {
		return nil, &domain.InvalidInputError{Field: "cost_price", Reason: "must be greater than zero"}
	}

	profit := product.Price.Sub(costPrice)

	var marginPct, markupPct float64
	if product.Price.IsPositive() {
		marginPct = round2(profit.Div(product.Price).InexactFloat64() * 100)
	}
	markupPct = round2(profit.Div(costPrice).InexactFloat64() * 100)

	return &domain.ProfitMargin{
		ProductID:       product.ID,
		ProductName:     product.Name,
		CostPrice:       costPrice,
		SellingPrice:    product.Price,
		ProfitPerUnit:   profit,
		MarginPct:       marginPct,
		MarkupPct:       markupPct,
		UnitsSold30Days: unitsSold,
		Revenue30Days:   revenue,
		TotalProfit30:   profit.Mul(decimal.NewFromInt(int64(unitsSold))),
		Recommendation:  marginRecommendation(marginPct),
	}, nil
}

func marginRecommendation(marginPct float64) string {
	switch {
	case marginPct >= 50:
		return "Excellent margin - maintain pricing"
	case marginPct >= 30:
		return "Good margin - healthy profit"
	case marginPct >= 20:
		return "Average margin - consider optimization"
	case marginPct >= 10:
		return "Low margin - review pricing strategy"
	default:
		return "Critical - margin too low, increase price or reduce costs"
	}
}

// SuggestPrice adjusts a product's price based on its sales velocity over
// the lookback window: fast movers absorb a 10% increase, slow movers get
// a 10% cut, and anything in between keeps its current price.
func (a *Analyzer) SuggestPrice(product *domain.Product, saleCount, totalUnits, windowDays int) (*domain.PriceSuggestion, error) {
	if saleCount < MinSales {
		return nil, &domain.InsufficientDataError{Subject: "sales", Required: MinSales, Got: saleCount}
	}

	velocity := float64(saleCount) / float64(windowDays)

	suggested := product.Price
	var reason string
	switch {
	case velocity > highDemandVelocity:
		suggested = product.Price.Mul(raisePct).Round(2)
		reason = "High demand - price increase recommended"
	case velocity > steadyVelocity:
		reason = "Optimal pricing - maintain current price"
	default:
		suggested = product.Price.Mul(dropPct).Round(2)
		reason = "Low demand - price reduction may boost sales"
	}

	changePct := 0.0
	if product.Price.IsPositive() {
		changePct = round2(suggested.Sub(product.Price).Div(product.Price).InexactFloat64() * 100)
	}

	return &domain.PriceSuggestion{
		ProductID:          product.ID,
		ProductName:        product.Name,
		CurrentPrice:       product.Price,
		SuggestedPrice:     suggested,
		PriceChangePct:     changePct,
		Reason:             reason,
		SalesVelocity:      round2(velocity),
		AvgQuantityPerSale: round2(float64(totalUnits) / float64(saleCount)),
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
