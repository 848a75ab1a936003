package adapters

import (
	"github.com/retail-tools/retail-atlas/pkg/models/api"
	"github.com/retail-tools/retail-atlas/pkg/models/domain"
)

const dateLayout = "2006-01-02"

func MapRevenueForecastDomainToApi(f *domain.RevenueForecast) api.RevenueForecast {
	out := api.RevenueForecast{
		ForecastDays:     f.HorizonDays,
		PredictedRevenue: f.PredictedRevenue,
		DailyPredictions: []api.DailyRevenuePrediction{},
		Confidence:       string(f.Confidence),
		AccuracyScore:    f.FitQuality,
		Trend:            string(f.Trend),
	}
	for _, p := range f.Points {
		out.DailyPredictions = append(out.DailyPredictions, api.DailyRevenuePrediction{
			Day:              p.DayOffset,
			Date:             p.Date.Format(dateLayout),
			PredictedRevenue: p.Value,
		})
	}
	return out
}

func MapSeasonalReportDomainToApi(r *domain.SeasonalReport) api.SeasonalTrends {
	out := api.SeasonalTrends{
		MonthlyTrends: []api.MonthlyTrend{},
		DailyTrends:   []api.DailyTrend{},
		Insights: api.SeasonalInsights{
			PeakMonth:         r.PeakMonth.String(),
			PeakDay:           r.PeakDay.String(),
			BestSellingPeriod: r.BestSellingPeriod(),
		},
	}
	for _, m := range r.MonthlyTrends {
		out.MonthlyTrends = append(out.MonthlyTrends, api.MonthlyTrend{
			Month:        int(m.Month),
			MonthName:    m.Month.String(),
			TotalRevenue: m.Revenue,
			TotalSales:   m.SaleCount,
			AvgSaleValue: m.AvgSaleValue,
		})
	}
	for _, d := range r.DailyTrends {
		out.DailyTrends = append(out.DailyTrends, api.DailyTrend{
			DayOfWeek:    int(d.DayOfWeek),
			DayName:      d.DayOfWeek.String(),
			TotalRevenue: d.Revenue,
			TotalSales:   d.SaleCount,
			AvgSaleValue: d.AvgSaleValue,
		})
	}
	return out
}

func MapCategoryPerformanceDomainToApi(perfs []domain.CategoryPerformance) []api.CategoryPerformance {
	out := make([]api.CategoryPerformance, 0, len(perfs))
	for _, p := range perfs {
		out = append(out, api.CategoryPerformance{
			Category:     p.Category,
			SalesCount:   p.SalesCount,
			UnitsSold:    p.UnitsSold,
			Revenue:      p.Revenue.InexactFloat64(),
			AvgPrice:     p.AvgPrice,
			RevenueShare: p.RevenueShare,
			AvgSaleValue: p.AvgSaleValue,
		})
	}
	return out
}

func MapProfitMarginDomainToApi(m *domain.ProfitMargin) api.ProfitMargin {
	return api.ProfitMargin{
		ProductID:        m.ProductID,
		ProductName:      m.ProductName,
		CostPrice:        m.CostPrice.InexactFloat64(),
		SellingPrice:     m.SellingPrice.InexactFloat64(),
		ProfitPerUnit:    m.ProfitPerUnit.InexactFloat64(),
		MarginPercentage: m.MarginPct,
		MarkupPercentage: m.MarkupPct,
		UnitsSold30Days:  m.UnitsSold30Days,
		Revenue30Days:    m.Revenue30Days.InexactFloat64(),
		TotalProfit30:    m.TotalProfit30.InexactFloat64(),
		Recommendation:   m.Recommendation,
	}
}

func MapDemandForecastDomainToApi(f *domain.DemandForecast) api.DemandForecast {
	out := api.DemandForecast{
		ProductID:             f.ProductID,
		ForecastDays:          f.HorizonDays,
		TotalPredictedDemand:  f.TotalPredictedDemand,
		DailyPredictions:      []api.DailyDemandPrediction{},
		RecommendedStockLevel: f.RecommendedStockLevel,
	}
	for _, p := range f.Points {
		out.DailyPredictions = append(out.DailyPredictions, api.DailyDemandPrediction{
			Day:               p.DayOffset,
			Date:              p.Date.Format(dateLayout),
			PredictedQuantity: p.Quantity,
		})
	}
	return out
}

func MapPriceSuggestionDomainToApi(s *domain.PriceSuggestion) api.PriceOptimization {
	return api.PriceOptimization{
		ProductID:             s.ProductID,
		ProductName:           s.ProductName,
		CurrentPrice:          s.CurrentPrice.InexactFloat64(),
		SuggestedPrice:        s.SuggestedPrice.InexactFloat64(),
		PriceChangePercentage: s.PriceChangePct,
		Reason:                s.Reason,
		SalesVelocity:         s.SalesVelocity,
		AvgQuantityPerSale:    s.AvgQuantityPerSale,
	}
}

func MapAnomaliesDomainToApi(anomalies []domain.Anomaly) []api.Anomaly {
	out := make([]api.Anomaly, 0, len(anomalies))
	for _, a := range anomalies {
		out = append(out, api.Anomaly{
			Date:         a.Date.Format(dateLayout),
			Revenue:      a.Revenue,
			SalesCount:   a.SaleCount,
			DeviationPct: a.DeviationPct,
			Type:         string(a.Direction),
			Severity:     string(a.Severity),
		})
	}
	return out
}

func MapStockoutPredictionDomainToApi(p *domain.StockoutPrediction) api.StockoutPrediction {
	out := api.StockoutPrediction{
		ProductID:               p.ProductID,
		ProductName:             p.ProductName,
		CurrentStock:            p.CurrentStock,
		PredictedDaysToStockout: p.DaysRemaining,
		ReorderRecommended:      p.ReorderRecommended,
		Confidence:              string(p.Confidence),
		DailyDepletionRate:      p.DepletionRate,
		Message:                 p.Message,
	}
	if p.StockoutDate != nil {
		date := p.StockoutDate.Format(dateLayout)
		out.PredictedStockoutDate = &date
	}
	return out
}

func MapStockoutPredictionsDomainToApi(preds []*domain.StockoutPrediction) []api.StockoutPrediction {
	out := make([]api.StockoutPrediction, 0, len(preds))
	for _, p := range preds {
		out = append(out, MapStockoutPredictionDomainToApi(p))
	}
	return out
}
