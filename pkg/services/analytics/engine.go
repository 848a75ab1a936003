// Package analytics wires the retail store to the forecasting, anomaly,
// pricing and seasonal services behind a single engine facade.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/retail-tools/retail-atlas/pkg/adapters"
	"github.com/retail-tools/retail-atlas/pkg/models/domain"
	"github.com/retail-tools/retail-atlas/pkg/services/anomaly"
	"github.com/retail-tools/retail-atlas/pkg/services/demand"
	"github.com/retail-tools/retail-atlas/pkg/services/forecast"
	"github.com/retail-tools/retail-atlas/pkg/services/pricing"
	"github.com/retail-tools/retail-atlas/pkg/services/seasonal"
	"github.com/retail-tools/retail-atlas/pkg/services/stockout"
	"github.com/retail-tools/retail-atlas/pkg/store/retail"
)

// Engine exposes every analytics operation over a single retail store.
// Models are trained per call on a seeded source, so identical data gives
// identical answers.
type Engine interface {
	RevenueForecast(ctx context.Context, days int) (*domain.RevenueForecast, error)
	SeasonalTrends(ctx context.Context) (*domain.SeasonalReport, error)
	CategoryPerformance(ctx context.Context) ([]domain.CategoryPerformance, error)
	ProfitMargin(ctx context.Context, productID int, costPrice decimal.Decimal) (*domain.ProfitMargin, error)
	DemandForecast(ctx context.Context, productID, days int) (*domain.DemandForecast, error)
	PriceOptimization(ctx context.Context, productID int) (*domain.PriceSuggestion, error)
	Anomalies(ctx context.Context) ([]domain.Anomaly, error)
	StockoutPrediction(ctx context.Context, productID int) (*domain.StockoutPrediction, error)
	AllStockoutPredictions(ctx context.Context) ([]*domain.StockoutPrediction, error)
}

type engine struct {
	store retail.Store
	cfg   Config
	now   func() time.Time

	trend     *forecast.Forecaster
	demand    *demand.Forecaster
	anomalies *anomaly.Detector
	pricing   *pricing.Analyzer
	seasonal  *seasonal.Aggregator
	stockout  *stockout.Predictor
}

func NewEngine(store retail.Store, cfg Config) Engine {
	return newEngine(store, cfg, time.Now)
}

// NewEngineWithClock pins the engine's notion of "today". Forecast horizons
// and lookback windows are all anchored on it.
func NewEngineWithClock(store retail.Store, cfg Config, now func() time.Time) Engine {
	return newEngine(store, cfg, now)
}

func newEngine(store retail.Store, cfg Config, now func() time.Time) *engine {
	if cfg.RevenueLookbackDays == 0 {
		cfg = DefaultConfig()
	}
	return &engine{
		store: store,
		cfg:   cfg,
		now:   now,
		trend: forecast.NewWithClock(now),
		demand: demand.New(demand.Config{
			Trees:    cfg.Trees,
			MaxDepth: 6,
			MinLeaf:  2,
			Seed:     cfg.Seed,
		}),
		anomalies: anomaly.New(anomaly.Config{
			Trees:         cfg.Trees,
			SampleSize:    256,
			Contamination: cfg.Contamination,
			Seed:          cfg.Seed,
		}),
		pricing:  pricing.New(),
		seasonal: seasonal.New(),
		stockout: stockout.NewWithClock(now),
	}
}

func (e *engine) RevenueForecast(ctx context.Context, days int) (*domain.RevenueForecast, error) {
	rows, err := e.store.DailySales(ctx, e.since(e.cfg.RevenueLookbackDays), nil)
	if err != nil {
		return nil, fmt.Errorf("load daily sales: %w", err)
	}
	return e.trend.Forecast(adapters.MapDailySalesRowsToDomainPoints(rows), days)
}

func (e *engine) SeasonalTrends(ctx context.Context) (*domain.SeasonalReport, error) {
	rows, err := e.store.SalesByMonthAndDOW(ctx, e.since(e.cfg.RevenueLookbackDays))
	if err != nil {
		return nil, fmt.Errorf("load seasonal sales: %w", err)
	}
	return e.seasonal.Trends(rows)
}

func (e *engine) CategoryPerformance(ctx context.Context) ([]domain.CategoryPerformance, error) {
	rows, err := e.store.SalesByCategory(ctx, e.since(e.cfg.CategoryLookbackDays))
	if err != nil {
		return nil, fmt.Errorf("load category sales: %w", err)
	}
	return e.seasonal.Categories(rows), nil
}

func (e *engine) ProfitMargin(ctx context.Context, productID int, costPrice decimal.Decimal) (*domain.ProfitMargin, error) {
	product, err := e.product(ctx, productID)
	if err != nil {
		return nil, err
	}

	stats, err := e.store.SalesStats(ctx, productID, e.since(e.cfg.MarginLookbackDays))
	if err != nil {
		return nil, fmt.Errorf("load sales stats for product %d: %w", productID, err)
	}

	return e.pricing.Margin(product, costPrice, int(stats.TotalUnits), stats.Revenue)
}

func (e *engine) DemandForecast(ctx context.Context, productID, days int) (*domain.DemandForecast, error) {
	if _, err := e.product(ctx, productID); err != nil {
		return nil, err
	}

	rows, err := e.store.DailySales(ctx, e.since(e.cfg.DemandLookbackDays), &productID)
	if err != nil {
		return nil, fmt.Errorf("load daily sales for product %d: %w", productID, err)
	}
	return e.demand.Forecast(productID, adapters.MapDailySalesRowsToDomainPoints(rows), days)
}

func (e *engine) PriceOptimization(ctx context.Context, productID int) (*domain.PriceSuggestion, error) {
	product, err := e.product(ctx, productID)
	if err != nil {
		return nil, err
	}

	stats, err := e.store.SalesStats(ctx, productID, e.since(e.cfg.PricingLookbackDays))
	if err != nil {
		return nil, fmt.Errorf("load sales stats for product %d: %w", productID, err)
	}
	return e.pricing.SuggestPrice(product, int(stats.SaleCount), int(stats.TotalUnits), e.cfg.PricingLookbackDays)
}

func (e *engine) Anomalies(ctx context.Context) ([]domain.Anomaly, error) {
	rows, err := e.store.DailySales(ctx, e.since(e.cfg.AnomalyLookbackDays), nil)
	if err != nil {
		return nil, fmt.Errorf("load daily sales: %w", err)
	}
	return e.anomalies.Detect(adapters.MapDailySalesRowsToDomainPoints(rows))
}

func (e *engine) StockoutPrediction(ctx context.Context, productID int) (*domain.StockoutPrediction, error) {
	product, err := e.product(ctx, productID)
	if err != nil {
		return nil, err
	}

	samples, err := e.store.StockHistory(ctx, productID, e.since(e.cfg.StockLookbackDays))
	if err != nil {
		return nil, fmt.Errorf("load stock history for product %d: %w", productID, err)
	}
	return e.stockout.Predict(*product, adapters.MapStockHistoryRowsToDomainSamples(samples))
}

func (e *engine) AllStockoutPredictions(ctx context.Context) ([]*domain.StockoutPrediction, error) {
	products, err := e.store.Products(ctx)
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}

	logger := zerolog.Ctx(ctx)
	since := e.since(e.cfg.StockLookbackDays)
	predictions := make([]*domain.StockoutPrediction, 0, len(products))
	for _, row := range products {
		samples, err := e.store.StockHistory(ctx, row.ID, since)
		if err != nil {
			logger.Warn().Err(err).Int("product_id", row.ID).Msg("skipping product: stock history unavailable")
			continue
		}
		prediction, err := e.stockout.Predict(adapters.MapProductRowToDomain(row), adapters.MapStockHistoryRowsToDomainSamples(samples))
		if err != nil {
			logger.Warn().Err(err).Int("product_id", row.ID).Msg("skipping product: prediction failed")
			continue
		}
		predictions = append(predictions, prediction)
	}
	return stockout.Rank(predictions), nil
}

func (e *engine) product(ctx context.Context, id int) (*domain.Product, error) {
	row, err := e.store.Product(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load product %d: %w", id, err)
	}
	if row == nil {
		return nil, &domain.NotFoundError{Resource: "product", ID: id}
	}
	product := adapters.MapProductRowToDomain(*row)
	return &product, nil
}

func (e *engine) since(days int) time.Time {
	return e.now().AddDate(0, 0, -days)
}
