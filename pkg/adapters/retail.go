package adapters

import (
	"github.com/retail-tools/retail-atlas/pkg/models/domain"
	"github.com/retail-tools/retail-atlas/pkg/models/store"
)

func MapDailySalesRowToDomainPoint(row store.DailySalesRow) domain.DailyPoint {
	return domain.DailyPoint{
		Date:      row.Date,
		Revenue:   row.Revenue,
		UnitCount: int(row.UnitsSold),
		SaleCount: int(row.SaleCount),
	}
}

func MapDailySalesRowsToDomainPoints(rows []store.DailySalesRow) []domain.DailyPoint {
	points := make([]domain.DailyPoint, 0, len(rows))
	for _, row := range rows {
		points = append(points, MapDailySalesRowToDomainPoint(row))
	}
	return points
}

func MapStockHistoryRowToDomainSample(row store.StockHistoryRow) domain.StockSample {
	return domain.StockSample{
		RecordedAt: row.RecordedAt,
		Level:      row.StockLevel,
		Action:     domain.StockAction(row.Action),
	}
}

func MapStockHistoryRowsToDomainSamples(rows []store.StockHistoryRow) []domain.StockSample {
	samples := make([]domain.StockSample, 0, len(rows))
	for _, row := range rows {
		samples = append(samples, MapStockHistoryRowToDomainSample(row))
	}
	return samples
}

func MapProductRowToDomain(row store.ProductRow) domain.Product {
	return domain.Product{
		ID:           row.ID,
		Name:         row.Name,
		Category:     row.Category,
		Price:        row.Price,
		Stock:        row.Stock,
		ReorderLevel: row.ReorderLevel,
	}
}
