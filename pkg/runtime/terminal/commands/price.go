package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/retail-tools/retail-atlas/pkg/models/domain"
	"github.com/retail-tools/retail-atlas/pkg/services/analytics"
)

type PriceCmd struct {
	engine   analytics.Engine
	reporter ReportHandler
}

func NewPriceCmd(engine analytics.Engine, reporter ReportHandler) *cobra.Command {
	pc := &PriceCmd{engine: engine, reporter: reporter}
	return &cobra.Command{
		Use:   "price <product-id>",
		Short: "Suggest a price adjustment based on sales velocity",
		Args:  cobra.ExactArgs(1),
		RunE:  pc.run,
	}
}

func (pc *PriceCmd) run(cmd *cobra.Command, args []string) error {
	productID, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid product id %q", args[0])
	}

	suggestion, err := pc.engine.PriceOptimization(cmd.Context(), productID)
	if err != nil {
		return fmt.Errorf("failed to optimize price: %w", err)
	}

	report := &domain.Report{
		Title:  fmt.Sprintf("Price Suggestion for %s", suggestion.ProductName),
		Period: reportPeriod(60),
		Sections: []domain.ReportSection{{
			Title: "Suggestion",
			Summary: map[string]interface{}{
				"Reason": suggestion.Reason,
			},
			Details: []domain.ReportDetail{
				{Name: "Current Price", Value: suggestion.CurrentPrice.StringFixed(2)},
				{Name: "Suggested Price", Value: suggestion.SuggestedPrice.StringFixed(2)},
				{Name: "Price Change", Value: fmt.Sprintf("%+.2f", suggestion.PriceChangePct), Unit: "%"},
				{Name: "Sales Velocity", Value: suggestion.SalesVelocity, Unit: "sales/day"},
				{Name: "Avg Quantity Per Sale", Value: suggestion.AvgQuantityPerSale, Unit: "units"},
			},
		}},
	}

	return pc.reporter.Handle(report)
}
