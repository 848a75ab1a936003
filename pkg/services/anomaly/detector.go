// Package anomaly flags statistically unusual sales days using an isolation
// forest over (revenue, sale count) daily points.
package anomaly

import (
	"math"
	"math/rand"
	"sort"

	"github.com/retail-tools/retail-atlas/pkg/models/domain"
)

const (
	// MinPoints is the smallest daily window the detector accepts.
	MinPoints = 7

	// severityThresholdPct separates medium from high severity.
	severityThresholdPct = 50
)

type Config struct {
	Trees         int
	SampleSize    int
	Contamination float64
	Seed          int64
}

func DefaultConfig() Config {
	return Config{
		Trees:         100,
		SampleSize:    256,
		Contamination: 0.1,
		Seed:          42,
	}
}

type Detector struct {
	cfg Config
}

func New(cfg Config) *Detector {
	if cfg.Trees <= 0 {
		cfg = DefaultConfig()
	}
	return &Detector{cfg: cfg}
}

// Detect fits a fresh forest over the window and flags the expected
// contamination fraction of highest-scoring days. Results are sorted by date.
func (d *Detector) Detect(points []domain.DailyPoint) ([]domain.Anomaly, error) {
	if len(points) < MinPoints {
		return nil, &domain.InsufficientDataError{
			Subject:  "days of sales data",
			Required: MinPoints,
			Got:      len(points),
		}
	}

	data := make([][]float64, len(points))
	meanRevenue := 0.0
	for i, p := range points {
		revenue := p.Revenue.InexactFloat64()
		data[i] = []float64{revenue, float64(p.SaleCount)}
		meanRevenue += revenue
	}
	meanRevenue /= float64(len(points))

	rng := rand.New(rand.NewSource(d.cfg.Seed))
	forest := fitIsolationForest(data, d.cfg.Trees, d.cfg.SampleSize, rng)

	type scored struct {
		index int
		score float64
	}
	scores := make([]scored, len(points))
	for i := range points {
		scores[i] = scored{index: i, score: forest.score(data[i])}
	}
	// Highest score first; ties resolve to the earlier day for stable output.
	sort.SliceStable(scores, func(i, j int) bool {
		if scores[i].score != scores[j].score {
			return scores[i].score > scores[j].score
		}
		return scores[i].index < scores[j].index
	})

	flagged := int(math.Ceil(d.cfg.Contamination * float64(len(points))))
	if flagged > len(points) {
		flagged = len(points)
	}

	anomalies := make([]domain.Anomaly, 0, flagged)
	for _, s := range scores[:flagged] {
		p := points[s.index]
		revenue := p.Revenue.InexactFloat64()

		deviation := 0.0
		if meanRevenue != 0 {
			deviation = (revenue - meanRevenue) / meanRevenue * 100
		}
		deviation = math.Round(deviation*100) / 100

		direction := domain.AnomalyLow
		if deviation > 0 {
			direction = domain.AnomalyHigh
		}
		severity := domain.SeverityMedium
		if math.Abs(deviation) > severityThresholdPct {
			severity = domain.SeverityHigh
		}

		anomalies = append(anomalies, domain.Anomaly{
			Date:         p.Date,
			Revenue:      revenue,
			SaleCount:    p.SaleCount,
			DeviationPct: deviation,
			Direction:    direction,
			Severity:     severity,
		})
	}

	sort.Slice(anomalies, func(i, j int) bool {
		return anomalies[i].Date.Before(anomalies[j].Date)
	})
	return anomalies, nil
}
