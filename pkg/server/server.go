package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	handlers "github.com/retail-tools/retail-atlas/pkg/handlers/analytics"
	retailmiddleware "github.com/retail-tools/retail-atlas/pkg/server/middleware"
	"github.com/retail-tools/retail-atlas/pkg/services/analytics"
)

type WebAPI struct {
	router *chi.Mux
	logger *zerolog.Logger
	server *http.Server
}

type Dependencies struct {
	Engine analytics.Engine
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

func NewWebAPI(logger zerolog.Logger, config Config) *WebAPI {
	handler := handlers.NewHandler(config.Dependencies.Engine)

	router := chi.NewRouter()

	router.Use(retailmiddleware.Logger(&logger))
	router.Use(middleware.Recoverer)

	router.Route("/api/v1/analytics", func(r chi.Router) {
		r.Get("/revenue-forecast", handler.RevenueForecast)
		r.Get("/seasonal-trends", handler.SeasonalTrends)
		r.Get("/category-performance", handler.CategoryPerformance)
		r.Get("/profit-margin/{productID}", handler.ProfitMargin)
		r.Get("/demand-forecast/{productID}", handler.DemandForecast)
		r.Get("/price-optimization/{productID}", handler.PriceOptimization)
		r.Get("/anomalies", handler.Anomalies)
		r.Get("/stockouts", handler.AllStockoutPredictions)
		r.Get("/stockout/{productID}", handler.StockoutPrediction)
	})

	return &WebAPI{
		router: router,
		logger: &logger,
		server: &http.Server{
			Addr:    config.Addr,
			Handler: router,
		},
	}
}

func (w *WebAPI) Router() http.Handler {
	return w.router
}

func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}
