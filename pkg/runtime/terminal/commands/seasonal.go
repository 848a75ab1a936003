package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/retail-tools/retail-atlas/pkg/models/domain"
	"github.com/retail-tools/retail-atlas/pkg/services/analytics"
)

type SeasonalCmd struct {
	engine   analytics.Engine
	reporter ReportHandler
}

func NewSeasonalCmd(engine analytics.Engine, reporter ReportHandler) *cobra.Command {
	sc := &SeasonalCmd{engine: engine, reporter: reporter}
	return &cobra.Command{
		Use:   "seasonal",
		Short: "Show monthly and day-of-week sales patterns",
		RunE:  sc.run,
	}
}

func (sc *SeasonalCmd) run(cmd *cobra.Command, args []string) error {
	trends, err := sc.engine.SeasonalTrends(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to analyze seasonal trends: %w", err)
	}

	monthly := make([]domain.ReportDetail, 0, len(trends.MonthlyTrends))
	for _, m := range trends.MonthlyTrends {
		monthly = append(monthly, domain.ReportDetail{
			Name:        m.Month.String(),
			Value:       fmt.Sprintf("%.2f", m.Revenue),
			Unit:        "revenue",
			Description: fmt.Sprintf("%d sales, %.2f avg", m.SaleCount, m.AvgSaleValue),
		})
	}

	daily := make([]domain.ReportDetail, 0, len(trends.DailyTrends))
	for _, d := range trends.DailyTrends {
		daily = append(daily, domain.ReportDetail{
			Name:        d.DayOfWeek.String(),
			Value:       fmt.Sprintf("%.2f", d.Revenue),
			Unit:        "revenue",
			Description: fmt.Sprintf("%d sales, %.2f avg", d.SaleCount, d.AvgSaleValue),
		})
	}

	report := &domain.Report{
		Title:  "Seasonal Trends",
		Period: reportPeriod(365),
		Sections: []domain.ReportSection{
			{
				Title: "Insights",
				Summary: map[string]interface{}{
					"Peak Month":          trends.PeakMonth.String(),
					"Peak Day":            trends.PeakDay.String(),
					"Best Selling Period": trends.BestSellingPeriod(),
				},
			},
			{Title: "Monthly Trends", Details: monthly},
			{Title: "Day of Week Trends", Details: daily},
		},
	}

	return sc.reporter.Handle(report)
}
