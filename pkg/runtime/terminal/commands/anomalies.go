package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/retail-tools/retail-atlas/pkg/models/domain"
	"github.com/retail-tools/retail-atlas/pkg/services/analytics"
)

type AnomaliesCmd struct {
	engine   analytics.Engine
	reporter ReportHandler
}

func NewAnomaliesCmd(engine analytics.Engine, reporter ReportHandler) *cobra.Command {
	ac := &AnomaliesCmd{engine: engine, reporter: reporter}
	return &cobra.Command{
		Use:   "anomalies",
		Short: "Detect unusual sales days in the recent window",
		RunE:  ac.run,
	}
}

func (ac *AnomaliesCmd) run(cmd *cobra.Command, args []string) error {
	anomalies, err := ac.engine.Anomalies(cmd.Context())
	if err != nil {
		var insufficient *domain.InsufficientDataError
		if errors.As(err, &insufficient) {
			fmt.Fprintln(cmd.OutOrStdout(), insufficient.Error())
			return nil
		}
		return fmt.Errorf("failed to detect anomalies: %w", err)
	}

	details := make([]domain.ReportDetail, 0, len(anomalies))
	for _, a := range anomalies {
		details = append(details, domain.ReportDetail{
			Name:        a.Date.Format("2006-01-02"),
			Value:       fmt.Sprintf("%.2f", a.Revenue),
			Unit:        "revenue",
			Description: fmt.Sprintf("%s, severity %s, %+.2f%% vs mean", a.Direction, a.Severity, a.DeviationPct),
		})
	}

	report := &domain.Report{
		Title:  "Sales Anomalies",
		Period: reportPeriod(30),
		Sections: []domain.ReportSection{{
			Title: "Flagged Days",
			Summary: map[string]interface{}{
				"Anomalies Found": len(anomalies),
			},
			Details: details,
		}},
	}

	return ac.reporter.Handle(report)
}
