package commands

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/retail-tools/retail-atlas/pkg/models/domain"
	"github.com/retail-tools/retail-atlas/pkg/services/analytics"
)

type MarginCmd struct {
	costPrice string
	engine    analytics.Engine
	reporter  ReportHandler
}

func NewMarginCmd(engine analytics.Engine, reporter ReportHandler) *cobra.Command {
	mc := &MarginCmd{engine: engine, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "margin <product-id>",
		Short: "Analyze profit margin for a product at a given cost price",
		Args:  cobra.ExactArgs(1),
		RunE:  mc.run,
	}

	cmd.Flags().StringVar(&mc.costPrice, "cost", "", "Unit cost price")
	_ = cmd.MarkFlagRequired("cost")

	return cmd
}

func (mc *MarginCmd) run(cmd *cobra.Command, args []string) error {
	productID, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid product id %q", args[0])
	}

	costPrice, err := decimal.NewFromString(mc.costPrice)
	if err != nil {
		return fmt.Errorf("invalid cost price %q", mc.costPrice)
	}

	margin, err := mc.engine.ProfitMargin(cmd.Context(), productID, costPrice)
	if err != nil {
		return fmt.Errorf("failed to analyze margin: %w", err)
	}

	report := &domain.Report{
		Title:  fmt.Sprintf("Profit Margin for %s", margin.ProductName),
		Period: reportPeriod(30),
		Sections: []domain.ReportSection{{
			Title: "Margin",
			Summary: map[string]interface{}{
				"Recommendation": margin.Recommendation,
			},
			Details: []domain.ReportDetail{
				{Name: "Selling Price", Value: margin.SellingPrice.StringFixed(2)},
				{Name: "Cost Price", Value: margin.CostPrice.StringFixed(2)},
				{Name: "Profit Per Unit", Value: margin.ProfitPerUnit.StringFixed(2)},
				{Name: "Margin", Value: fmt.Sprintf("%.2f", margin.MarginPct), Unit: "%"},
				{Name: "Markup", Value: fmt.Sprintf("%.2f", margin.MarkupPct), Unit: "%"},
				{Name: "Units Sold", Value: margin.UnitsSold30Days, Unit: "units", Description: "last 30 days"},
				{Name: "Revenue", Value: margin.Revenue30Days.StringFixed(2), Description: "last 30 days"},
				{Name: "Total Profit", Value: margin.TotalProfit30.StringFixed(2), Description: "last 30 days"},
			},
		}},
	}

	return mc.reporter.Handle(report)
}
