package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/retail-tools/retail-atlas/pkg/models/domain"
	"github.com/retail-tools/retail-atlas/pkg/services/analytics"
)

type CategoriesCmd struct {
	engine   analytics.Engine
	reporter ReportHandler
}

func NewCategoriesCmd(engine analytics.Engine, reporter ReportHandler) *cobra.Command {
	cc := &CategoriesCmd{engine: engine, reporter: reporter}
	return &cobra.Command{
		Use:   "categories",
		Short: "Rank product categories by revenue share",
		RunE:  cc.run,
	}
}

func (cc *CategoriesCmd) run(cmd *cobra.Command, args []string) error {
	perfs, err := cc.engine.CategoryPerformance(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to analyze categories: %w", err)
	}

	details := make([]domain.ReportDetail, 0, len(perfs))
	for _, p := range perfs {
		details = append(details, domain.ReportDetail{
			Name:        p.Category,
			Value:       p.Revenue.StringFixed(2),
			Unit:        "revenue",
			Description: fmt.Sprintf("%.2f%% share, %d sales, %d units", p.RevenueShare, p.SalesCount, p.UnitsSold),
		})
	}

	report := &domain.Report{
		Title:  "Category Performance",
		Period: reportPeriod(365),
		Sections: []domain.ReportSection{{
			Title:   "Categories by Revenue",
			Details: details,
		}},
	}

	return cc.reporter.Handle(report)
}
