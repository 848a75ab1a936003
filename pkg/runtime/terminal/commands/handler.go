package commands

import (
	"time"

	"github.com/retail-tools/retail-atlas/pkg/models/domain"
)

// ReportHandler renders a finished report. Both console reporters satisfy it.
type ReportHandler interface {
	Handle(report *domain.Report) error
}

func reportPeriod(days int) domain.TimePeriod {
	end := time.Now()
	return domain.TimePeriod{
		Start:    end.AddDate(0, 0, -days),
		End:      end,
		Duration: days,
	}
}

// forecastPeriod runs forward from today instead of back.
func forecastPeriod(days int) domain.TimePeriod {
	start := time.Now()
	return domain.TimePeriod{
		Start:    start,
		End:      start.AddDate(0, 0, days),
		Duration: days,
	}
}
