package services

import (
	"Stocked/internal/repository"

	"github.com/shopspring/decimal"
)

type LowStockBox struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Quantity     int    `json:"quantity"`
	MinThreshold int    `json:"min_threshold"`
}

type ReorderSoonBox struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Quantity         int    `json:"quantity"`
	DaysUntilReorder int    `json:"days_until_reorder"`
}

type DashboardStats struct {
	TotalBoxTypes    int              `json:"total_box_types"`
	TotalInventory   int              `json:"total_inventory"`
	TotalValue       float64          `json:"total_value"`
	LowStockCount    int              `json:"low_stock_count"`
	LowStockBoxes    []LowStockBox    `json:"low_stock_boxes"`
	ReorderSoonBoxes []ReorderSoonBox `json:"reorder_soon_boxes"`
}

type StatsService interface {
	DashboardStats() (*DashboardStats, error)
}

func NewStatsService(boxRepo repository.BoxTypeRepository, predictionService PredictionService) StatsService {
	return &statsServiceImpl{boxRepo: boxRepo, predictionService: predictionService}
}

type statsServiceImpl struct {
	boxRepo           repository.BoxTypeRepository
	predictionService PredictionService
}

func (s *statsServiceImpl) DashboardStats() (*DashboardStats, error) {
	boxes, err := s.boxRepo.FindAll()
	if err != nil {
		return nil, err
	}
	predictions, err := s.predictionService.PredictAll(boxes)
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{
		TotalBoxTypes:    len(boxes),
		LowStockBoxes:    []LowStockBox{},
		ReorderSoonBoxes: []ReorderSoonBox{},
	}
	totalValue := decimal.Zero
	for _, box := range boxes {
		stats.TotalInventory += box.Quantity
		totalValue = totalValue.Add(box.Cost.Mul(decimal.NewFromInt(int64(box.Quantity))))

		if box.Quantity <= box.MinThreshold {
			stats.LowStockBoxes = append(stats.LowStockBoxes, LowStockBox{
				ID:           box.ID,
				Name:         box.Name,
				Quantity:     box.Quantity,
				MinThreshold: box.MinThreshold,
			})
			continue
		}
		// Boxes already at or below threshold count as low stock, not as
		// "reorder soon".
		p := predictions[box.ID]
		if p != nil && p.DaysUntilReorder != nil && *p.DaysUntilReorder > 0 && *p.DaysUntilReorder <= warningReorderDays {
			stats.ReorderSoonBoxes = append(stats.ReorderSoonBoxes, ReorderSoonBox{
				ID:               box.ID,
				Name:             box.Name,
				Quantity:         box.Quantity,
				DaysUntilReorder: *p.DaysUntilReorder,
			})
		}
	}
	stats.LowStockCount = len(stats.LowStockBoxes)
	stats.TotalValue, _ = totalValue.Round(2).Float64()
	return stats, nil
}
