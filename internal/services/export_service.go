package services

import (
	"math"
	"time"

	"Stocked/internal/repository"

	"github.com/xuri/excelize/v2"
)

const (
	stockStatusOut = "Out of Stock"
	stockStatusLow = "Low Stock"
	stockStatusIn  = "In Stock"
)

type ExportService interface {
	InventoryWorkbook() ([]byte, string, error)
}

func NewExportService(boxRepo repository.BoxTypeRepository, predictionService PredictionService) ExportService {
	return &exportServiceImpl{boxRepo: boxRepo, predictionService: predictionService}
}

type exportServiceImpl struct {
	boxRepo           repository.BoxTypeRepository
	predictionService PredictionService
}

// InventoryWorkbook renders the current inventory as an xlsx workbook and
// returns the file bytes plus a dated filename. Read-only projection.
func (s *exportServiceImpl) InventoryWorkbook() ([]byte, string, error) {
	boxes, err := s.boxRepo.FindAll()
	if err != nil {
		return nil, "", err
	}
	predictions, err := s.predictionService.PredictAll(boxes)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()
	const sheet = "Inventory"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{
		"Name", "Quantity", "Unit Cost", "Total Value", "Min Threshold",
		"Status", "Avg Daily Usage", "Days Until Empty", "Days Until Reorder",
	}
	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, "", err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, "", err
		}
	}

	for i, box := range boxes {
		cost, _ := box.Cost.Float64()
		totalValue, _ := box.TotalValue().Float64()
		p := predictions[box.ID]

		row := []interface{}{
			box.Name,
			box.Quantity,
			cost,
			totalValue,
			box.MinThreshold,
			stockStatus(box.Quantity, box.MinThreshold),
			roundTo2(p.AvgDailyUsage),
			horizonCell(p.DaysUntilEmpty),
			horizonCell(p.DaysUntilReorder),
		}
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, "", err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, "", err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}
	filename := "inventory-" + time.Now().UTC().Format(dateLayout) + ".xlsx"
	return buf.Bytes(), filename, nil
}

func stockStatus(quantity, minThreshold int) string {
	switch {
	case quantity == 0:
		return stockStatusOut
	case quantity <= minThreshold:
		return stockStatusLow
	default:
		return stockStatusIn
	}
}

// horizonCell leaves the cell empty when the horizon is unknown.
func horizonCell(days *int) interface{} {
	if days == nil {
		return ""
	}
	return *days
}

func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}
