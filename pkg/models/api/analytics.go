package api

// DailyRevenuePrediction is one day of the revenue forecast.
type DailyRevenuePrediction struct {
	Day              int     `json:"day"`
	Date             string  `json:"date"`
	PredictedRevenue float64 `json:"predicted_revenue"`
}

type RevenueForecast struct {
	ForecastDays     int                      `json:"forecast_days"`
	PredictedRevenue float64                  `json:"predicted_revenue"`
	DailyPredictions []DailyRevenuePrediction `json:"daily_predictions"`
	Confidence       string                   `json:"confidence"`
	AccuracyScore    float64                  `json:"accuracy_score"`
	Trend            string                   `json:"trend"`
}

type MonthlyTrend struct {
	Month        int     `json:"month"`
	MonthName    string  `json:"month_name"`
	TotalRevenue float64 `json:"total_revenue"`
	TotalSales   int     `json:"total_sales"`
	AvgSaleValue float64 `json:"avg_sale_value"`
}

type DailyTrend struct {
	DayOfWeek    int     `json:"day_of_week"`
	DayName      string  `json:"day_name"`
	TotalRevenue float64 `json:"total_revenue"`
	TotalSales   int     `json:"total_sales"`
	AvgSaleValue float64 `json:"avg_sale_value"`
}

type SeasonalInsights struct {
	PeakMonth         string `json:"peak_month"`
	PeakDay           string `json:"peak_day"`
	BestSellingPeriod string `json:"best_selling_period"`
}

type SeasonalTrends struct {
	MonthlyTrends []MonthlyTrend   `json:"monthly_trends"`
	DailyTrends   []DailyTrend     `json:"daily_trends"`
	Insights      SeasonalInsights `json:"insights"`
}

type CategoryPerformance struct {
	Category     string  `json:"category"`
	SalesCount   int     `json:"sales_count"`
	UnitsSold    int     `json:"units_sold"`
	Revenue      float64 `json:"revenue"`
	AvgPrice     float64 `json:"avg_price"`
	RevenueShare float64 `json:"revenue_share"`
	AvgSaleValue float64 `json:"avg_sale_value"`
}

type ProfitMargin struct {
	ProductID        int     `json:"product_id"`
	ProductName      string  `json:"product_name"`
	CostPrice        float64 `json:"cost_price"`
	SellingPrice     float64 `json:"selling_price"`
	ProfitPerUnit    float64 `json:"profit_per_unit"`
	MarginPercentage float64 `json:"margin_percentage"`
	MarkupPercentage float64 `json:"markup_percentage"`
	UnitsSold30Days  int     `json:"units_sold_30days"`
	Revenue30Days    float64 `json:"revenue_30days"`
	TotalProfit30    float64 `json:"total_profit_30days"`
	Recommendation   string  `json:"recommendation"`
}

type DailyDemandPrediction struct {
	Day               int    `json:"day"`
	Date              string `json:"date"`
	PredictedQuantity int    `json:"predicted_quantity"`
}

type DemandForecast struct {
	ProductID             int                     `json:"product_id"`
	ForecastDays          int                     `json:"forecast_days"`
	TotalPredictedDemand  int                     `json:"total_predicted_demand"`
	DailyPredictions      []DailyDemandPrediction `json:"daily_predictions"`
	RecommendedStockLevel int                     `json:"recommended_stock_level"`
}

type PriceOptimization struct {
	ProductID             int     `json:"product_id"`
	ProductName           string  `json:"product_name"`
	CurrentPrice          float64 `json:"current_price"`
	SuggestedPrice        float64 `json:"suggested_price"`
	PriceChangePercentage float64 `json:"price_change_percentage"`
	Reason                string  `json:"reason"`
	SalesVelocity         float64 `json:"sales_velocity"`
	AvgQuantityPerSale    float64 `json:"avg_quantity_per_sale"`
}

type Anomaly struct {
	Date         string  `json:"date"`
	Revenue      float64 `json:"revenue"`
	SalesCount   int     `json:"sales_count"`
	DeviationPct float64 `json:"deviation_percentage"`
	Type         string  `json:"type"`
	Severity     string  `json:"severity"`
}

type StockoutPrediction struct {
	ProductID               int      `json:"product_id"`
	ProductName             string   `json:"product_name"`
	CurrentStock            int      `json:"current_stock"`
	PredictedDaysToStockout *float64 `json:"predicted_days_until_stockout"`
	ReorderRecommended      bool     `json:"reorder_recommended"`
	PredictedStockoutDate   *string  `json:"predicted_stockout_date"`
	Confidence              string   `json:"confidence"`
	DailyDepletionRate      *float64 `json:"daily_depletion_rate,omitempty"`
	Message                 string   `json:"message,omitempty"`
}
