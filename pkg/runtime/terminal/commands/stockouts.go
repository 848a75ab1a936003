package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/retail-tools/retail-atlas/pkg/models/domain"
	"github.com/retail-tools/retail-atlas/pkg/services/analytics"
)

type StockoutsCmd struct {
	engine   analytics.Engine
	reporter ReportHandler
}

func NewStockoutsCmd(engine analytics.Engine, reporter ReportHandler) *cobra.Command {
	sc := &StockoutsCmd{engine: engine, reporter: reporter}
	return &cobra.Command{
		Use:   "stockouts [product-id]",
		Short: "Predict stockout dates, most urgent first",
		Args:  cobra.MaximumNArgs(1),
		RunE:  sc.run,
	}
}

func (sc *StockoutsCmd) run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	var predictions []*domain.StockoutPrediction
	if len(args) == 1 {
		productID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid product id %q", args[0])
		}
		prediction, err := sc.engine.StockoutPrediction(ctx, productID)
		if err != nil {
			return fmt.Errorf("failed to predict stockout: %w", err)
		}
		predictions = append(predictions, prediction)
	} else {
		all, err := sc.engine.AllStockoutPredictions(ctx)
		if err != nil {
			return fmt.Errorf("failed to predict stockouts: %w", err)
		}
		predictions = all
	}

	details := make([]domain.ReportDetail, 0, len(predictions))
	for _, p := range predictions {
		details = append(details, domain.ReportDetail{
			Name:        p.ProductName,
			Value:       stockoutValue(p),
			Unit:        "days",
			Description: stockoutDescription(p),
		})
	}

	report := &domain.Report{
		Title:  "Stockout Predictions",
		Period: reportPeriod(30),
		Sections: []domain.ReportSection{{
			Title:   "Products by Urgency",
			Details: details,
		}},
	}

	return sc.reporter.Handle(report)
}

func stockoutValue(p *domain.StockoutPrediction) interface{} {
	if p.DaysRemaining == nil {
		return "n/a"
	}
	return *p.DaysRemaining
}

func stockoutDescription(p *domain.StockoutPrediction) string {
	desc := fmt.Sprintf("stock %d, confidence %s", p.CurrentStock, p.Confidence)
	if p.ReorderRecommended {
		desc += ", reorder recommended"
	}
	if p.Message != "" {
		desc += ", " + p.Message
	}
	return desc
}
