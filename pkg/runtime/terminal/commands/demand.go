package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/retail-tools/retail-atlas/pkg/models/domain"
	"github.com/retail-tools/retail-atlas/pkg/services/analytics"
)

type DemandCmd struct {
	days     int
	engine   analytics.Engine
	reporter ReportHandler
}

func NewDemandCmd(engine analytics.Engine, reporter ReportHandler) *cobra.Command {
	dc := &DemandCmd{engine: engine, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "demand <product-id>",
		Short: "Forecast unit demand for a product",
		Args:  cobra.ExactArgs(1),
		RunE:  dc.run,
	}

	cmd.Flags().IntVar(&dc.days, "days", 30, "Forecast horizon in days")

	return cmd
}

func (dc *DemandCmd) run(cmd *cobra.Command, args []string) error {
	productID, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid product id %q", args[0])
	}

	forecast, err := dc.engine.DemandForecast(cmd.Context(), productID, dc.days)
	if err != nil {
		return fmt.Errorf("failed to forecast demand: %w", err)
	}

	details := make([]domain.ReportDetail, 0, len(forecast.Points))
	for _, p := range forecast.Points {
		details = append(details, domain.ReportDetail{
			Name:  p.Date.Format("2006-01-02"),
			Value: p.Quantity,
			Unit:  "units",
		})
	}

	report := &domain.Report{
		Title:  fmt.Sprintf("Demand Forecast for Product %d", forecast.ProductID),
		Period: forecastPeriod(forecast.HorizonDays),
		Sections: []domain.ReportSection{
			{
				Title: "Forecast",
				Summary: map[string]interface{}{
					"Total Predicted Demand":  forecast.TotalPredictedDemand,
					"Recommended Stock Level": forecast.RecommendedStockLevel,
				},
			},
			{
				Title:   "Daily Predictions",
				Details: details,
			},
		},
	}

	return dc.reporter.Handle(report)
}
