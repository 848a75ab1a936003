package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/retail-tools/retail-atlas/pkg/models/api"
	"github.com/retail-tools/retail-atlas/pkg/models/domain"
)

type mockEngine struct {
	mock.Mock
}

func (m *mockEngine) RevenueForecast(ctx context.Context, days int) (*domain.RevenueForecast, error) {
	args := m.Called(ctx, days)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RevenueForecast), args.Error(1)
}

func (m *mockEngine) SeasonalTrends(ctx context.Context) (*domain.SeasonalReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SeasonalReport), args.Error(1)
}

func (m *mockEngine) CategoryPerformance(ctx context.Context) ([]domain.CategoryPerformance, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CategoryPerformance), args.Error(1)
}

func (m *mockEngine) ProfitMargin(ctx context.Context, productID int, costPrice decimal.Decimal) (*domain.ProfitMargin, error) {
	args := m.Called(ctx, productID, costPrice)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProfitMargin), args.Error(1)
}

func (m *mockEngine) DemandForecast(ctx context.Context, productID, days int) (*domain.DemandForecast, error) {
	args := m.Called(ctx, productID, days)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DemandForecast), args.Error(1)
}

func (m *mockEngine) PriceOptimization(ctx context.Context, productID int) (*domain.PriceSuggestion, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PriceSuggestion), args.Error(1)
}

func (m *mockEngine) Anomalies(ctx context.Context) ([]domain.Anomaly, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Anomaly), args.Error(1)
}

func (m *mockEngine) StockoutPrediction(ctx context.Context, productID int) (*domain.StockoutPrediction, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StockoutPrediction), args.Error(1)
}

func (m *mockEngine) AllStockoutPredictions(ctx context.Context) ([]*domain.StockoutPrediction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.StockoutPrediction), args.Error(1)
}

func TestWebAPI_Routing(t *testing.T) {
	logger := zerolog.New(zerolog.NewTestWriter(t))

	engine := new(mockEngine)
	engine.On("RevenueForecast", mock.Anything, 30).Return(
		&domain.RevenueForecast{HorizonDays: 30, Confidence: domain.ConfidenceMedium, Trend: domain.TrendDecreasing},
		nil,
	)
	engine.On("PriceOptimization", mock.Anything, 3).Return(
		&domain.PriceSuggestion{
			ProductID:      3,
			CurrentPrice:   decimal.NewFromInt(10),
			SuggestedPrice: decimal.NewFromInt(9),
			Reason:         "Low demand - price reduction may boost sales",
		},
		nil,
	)

	webAPI := NewWebAPI(logger, Config{
		Addr:         ":8080",
		Dependencies: Dependencies{Engine: engine},
	})

	t.Run("revenue forecast route", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/analytics/revenue-forecast", nil)
		rec := httptest.NewRecorder()
		webAPI.Router().ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var response api.RevenueForecast
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
		assert.Equal(t, 30, response.ForecastDays)
		assert.Equal(t, "medium", response.Confidence)
	})

	t.Run("price optimization route resolves product id", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/analytics/price-optimization/3", nil)
		rec := httptest.NewRecorder()
		webAPI.Router().ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var response api.PriceOptimization
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
		assert.Equal(t, 3, response.ProductID)
		assert.Equal(t, 9.0, response.SuggestedPrice)
	})

	t.Run("unknown route is a 404", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/analytics/nope", nil)
		rec := httptest.NewRecorder()
		webAPI.Router().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	engine.AssertExpectations(t)
}
