// Package demand forecasts per-product demand with an ensemble of bagged
// regression trees over (day index, day of week) features. A single trend
// line cannot express weekly seasonality; the ensemble can.
package demand

import (
	"math"
	"math/rand"

	"github.com/retail-tools/retail-atlas/pkg/models/domain"
)

const (
	// MinPoints is the smallest per-product daily series worth fitting.
	MinPoints = 7

	// StockBufferFactor is the fixed 20% safety buffer applied to the
	// aggregate forecast when recommending a stock level.
	StockBufferFactor = 1.2
)

type Config struct {
	Trees    int
	MaxDepth int
	MinLeaf  int
	Seed     int64
}

func DefaultConfig() Config {
	return Config{
		Trees:    100,
		MaxDepth: 6,
		MinLeaf:  2,
		Seed:     42,
	}
}

type Forecaster struct {
	cfg Config
}

func New(cfg Config) *Forecaster {
	if cfg.Trees <= 0 {
		cfg = DefaultConfig()
	}
	return &Forecaster{cfg: cfg}
}

// Forecast trains a fresh ensemble on the product's daily quantity series and
// extrapolates horizon days past its end. The fixed seed makes repeated calls
// on identical input identical.
func (f *Forecaster) Forecast(productID int, points []domain.DailyPoint, horizon int) (*domain.DemandForecast, error) {
	if len(points) < MinPoints {
		return nil, &domain.InsufficientDataError{
			Subject:  "days of sales data",
			Required: MinPoints,
			Got:      len(points),
		}
	}

	features := make([][]float64, len(points))
	targets := make([]float64, len(points))
	for i, p := range points {
		features[i] = []float64{float64(i), float64(p.Date.Weekday())}
		targets[i] = float64(p.UnitCount)
	}

	forest := fitForest(features, targets, f.cfg)

	result := &domain.DemandForecast{
		ProductID:   productID,
		HorizonDays: horizon,
		Points:      make([]domain.DemandPoint, 0, horizon),
	}

	lastIndex := len(points) - 1
	lastDate := points[lastIndex].Date
	total := 0
	for i := 1; i <= horizon; i++ {
		futureDate := lastDate.AddDate(0, 0, i)
		predicted := forest.predict([]float64{float64(lastIndex + i), float64(futureDate.Weekday())})
		quantity := int(math.Round(predicted))
		if quantity < 0 {
			quantity = 0
		}
		total += quantity
		result.Points = append(result.Points, domain.DemandPoint{
			DayOffset: i,
			Date:      futureDate,
			Quantity:  quantity,
		})
	}

	result.TotalPredictedDemand = total
	result.RecommendedStockLevel = int(math.Ceil(StockBufferFactor * float64(total)))
	return result, nil
}

type forest struct {
	trees []*treeNode
}

func fitForest(features [][]float64, targets []float64, cfg Config) *forest {
	rng := rand.New(rand.NewSource(cfg.Seed))
	trees := make([]*treeNode, 0, cfg.Trees)

	for t := 0; t < cfg.Trees; t++ {
		indices := bootstrap(len(targets), rng)
		sampleF := make([][]float64, len(indices))
		sampleT := make([]float64, len(indices))
		for i, idx := range indices {
			sampleF[i] = features[idx]
			sampleT[i] = targets[idx]
		}
		trees = append(trees, buildTree(sampleF, sampleT, 0, cfg.MaxDepth, cfg.MinLeaf))
	}

	return &forest{trees: trees}
}

func (f *forest) predict(sample []float64) float64 {
	total := 0.0
	for _, t := range f.trees {
		total += t.predict(sample)
	}
	return total / float64(len(f.trees))
}
