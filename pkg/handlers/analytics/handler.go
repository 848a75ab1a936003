package analytics

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/retail-tools/retail-atlas/pkg/adapters"
	"github.com/retail-tools/retail-atlas/pkg/models/api"
	"github.com/retail-tools/retail-atlas/pkg/models/domain"
	"github.com/retail-tools/retail-atlas/pkg/services/analytics"
)

const (
	defaultForecastDays = 30
	minForecastDays     = 7
	maxForecastDays     = 90
)

type Handler struct {
	engine analytics.Engine
}

func NewHandler(engine analytics.Engine) *Handler {
	return &Handler{engine: engine}
}

func (h *Handler) RevenueForecast(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	forecast, err := h.engine.RevenueForecast(ctx, forecastDays(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, adapters.MapRevenueForecastDomainToApi(forecast))
}

func (h *Handler) SeasonalTrends(w http.ResponseWriter, r *http.Request) {
	report, err := h.engine.SeasonalTrends(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, adapters.MapSeasonalReportDomainToApi(report))
}

func (h *Handler) CategoryPerformance(w http.ResponseWriter, r *http.Request) {
	perfs, err := h.engine.CategoryPerformance(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, adapters.MapCategoryPerformanceDomainToApi(perfs))
}

func (h *Handler) ProfitMargin(w http.ResponseWriter, r *http.Request) {
	productID, err := productIDParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	costPrice, err := decimal.NewFromString(r.URL.Query().Get("cost_price"))
	if err != nil {
		writeError(w, r, &domain.InvalidInputError{Field: "cost_price", Reason: "must be a number"})
		return
	}

	margin, err := h.engine.ProfitMargin(r.Context(), productID, costPrice)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, adapters.MapProfitMarginDomainToApi(margin))
}

func (h *Handler) DemandForecast(w http.ResponseWriter, r *http.Request) {
	productID, err := productIDParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	forecast, err := h.engine.DemandForecast(r.Context(), productID, forecastDays(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, adapters.MapDemandForecastDomainToApi(forecast))
}

func (h *Handler) PriceOptimization(w http.ResponseWriter, r *http.Request) {
	productID, err := productIDParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	suggestion, err := h.engine.PriceOptimization(r.Context(), productID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, adapters.MapPriceSuggestionDomainToApi(suggestion))
}

func (h *Handler) Anomalies(w http.ResponseWriter, r *http.Request) {
	anomalies, err := h.engine.Anomalies(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, adapters.MapAnomaliesDomainToApi(anomalies))
}

func (h *Handler) StockoutPrediction(w http.ResponseWriter, r *http.Request) {
	productID, err := productIDParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	prediction, err := h.engine.StockoutPrediction(r.Context(), productID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, adapters.MapStockoutPredictionDomainToApi(prediction))
}

func (h *Handler) AllStockoutPredictions(w http.ResponseWriter, r *http.Request) {
	predictions, err := h.engine.AllStockoutPredictions(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, adapters.MapStockoutPredictionsDomainToApi(predictions))
}

// forecastDays reads the `days` query parameter and clamps it to the
// supported horizon. Anything unparsable falls back to the default.
func forecastDays(r *http.Request) int {
	raw := r.URL.Query().Get("days")
	if raw == "" {
		return defaultForecastDays
	}
	days, err := strconv.Atoi(raw)
	if err != nil {
		return defaultForecastDays
	}
	if days < minForecastDays {
		return minForecastDays
	}
	if days > maxForecastDays {
		return maxForecastDays
	}
	return days
}

func productIDParam(r *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "productID"))
	if err != nil {
		return 0, &domain.InvalidInputError{Field: "productID", Reason: "must be an integer"}
	}
	return id, nil
}

func writeJSON(w http.ResponseWriter, r *http.Request, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to encode response")
	}
}

// writeError maps domain errors onto the wire contract. Too little data is
// an answerable question, not a failure, so it keeps a 200 status.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		insufficient *domain.InsufficientDataError
		notFound     *domain.NotFoundError
		invalid      *domain.InvalidInputError
	)

	w.Header().Set("Content-Type", "application/json")
	switch {
	case errors.As(err, &insufficient):
		writeJSON(w, r, api.Error{Error: "insufficient_data", Message: insufficient.Error()})
	case errors.As(err, &notFound):
		w.WriteHeader(http.StatusNotFound)
		writeJSON(w, r, api.Error{Error: "not_found", Message: notFound.Error()})
	case errors.As(err, &invalid):
		w.WriteHeader(http.StatusBadRequest)
		writeJSON(w, r, api.Error{Error: "invalid_input", Message: invalid.Error()})
	default:
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("analytics request failed")
		w.WriteHeader(http.StatusInternalServerError)
		writeJSON(w, r, api.Error{Error: "internal_error", Message: "internal server error"})
	}
}
