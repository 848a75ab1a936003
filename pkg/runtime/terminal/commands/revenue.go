package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/retail-tools/retail-atlas/pkg/models/domain"
	"github.com/retail-tools/retail-atlas/pkg/services/analytics"
)

type RevenueCmd struct {
	days     int
	engine   analytics.Engine
	reporter ReportHandler
}

func NewRevenueCmd(engine analytics.Engine, reporter ReportHandler) *cobra.Command {
	rc := &RevenueCmd{engine: engine, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "revenue",
		Short: "Forecast daily revenue over the coming days",
		RunE:  rc.run,
	}

	cmd.Flags().IntVar(&rc.days, "days", 30, "Forecast horizon in days")

	return cmd
}

func (rc *RevenueCmd) run(cmd *cobra.Command, args []string) error {
	forecast, err := rc.engine.RevenueForecast(cmd.Context(), rc.days)
	if err != nil {
		return fmt.Errorf("failed to forecast revenue: %w", err)
	}

	report := &domain.Report{
		Title:  "Revenue Forecast",
		Period: forecastPeriod(forecast.HorizonDays),
		Sections: []domain.ReportSection{{
			Title: "Forecast",
			Summary: map[string]interface{}{
				"Predicted Revenue": fmt.Sprintf("%.2f", forecast.PredictedRevenue),
				"Trend":             string(forecast.Trend),
				"Confidence":        string(forecast.Confidence),
				"Accuracy Score":    fmt.Sprintf("%.2f", forecast.FitQuality),
			},
		}},
	}

	details := make([]domain.ReportDetail, 0, len(forecast.Points))
	for _, p := range forecast.Points {
		details = append(details, domain.ReportDetail{
			Name:  p.Date.Format("2006-01-02"),
			Value: fmt.Sprintf("%.2f", p.Value),
			Unit:  "revenue",
		})
	}
	report.Sections = append(report.Sections, domain.ReportSection{
		Title:   "Daily Predictions",
		Details: details,
	})

	return rc.reporter.Handle(report)
}
