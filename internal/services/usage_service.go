package services

import (
	"time"

	"Stocked/internal/models"
	"Stocked/internal/repository"
)

const dateLayout = "2006-01-02"

const (
	defaultUsageDays  = 30
	defaultTrendsDays = 14
	maxQueryDays      = 365
)

// DailyUsage is one entry of the zero-filled trends series.
type DailyUsage struct {
	Date      string `json:"date"`
	TotalUsed int    `json:"total_used"`
}

type UsageService interface {
	RecordUsage(boxTypeID string, quantityUsed int, date string) (*models.UsageRecord, error)
	ListUsage(days int) ([]models.UsageRecord, error)
	UsageTrends(days int) ([]DailyUsage, error)
}

func NewUsageService(boxRepo repository.BoxTypeRepository, usageRepo repository.UsageRepository) UsageService {
	return &usageServiceImpl{boxRepo: boxRepo, usageRepo: usageRepo}
}

type usageServiceImpl struct {
	boxRepo   repository.BoxTypeRepository
	usageRepo repository.UsageRepository
}

// RecordUsage is the single write path that consumes stock. The decrement is
// a conditional update at the store, so concurrent requests against the same
// box cannot jointly drive the quantity negative.
func (s *usageServiceImpl) RecordUsage(boxTypeID string, quantityUsed int, date string) (*models.UsageRecord, error) {
	if quantityUsed <= 0 {
		return nil, newValidationError("quantity_used must be positive")
	}
	if date == "" {
		date = time.Now().UTC().Format(dateLayout)
	} else if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, newValidationError("date must be formatted as YYYY-MM-DD")
	}

	box, err := s.boxRepo.FindByID(boxTypeID)
	if err != nil {
		return nil, err
	}
	if box == nil {
		return nil, ErrNotFound
	}

	ok, err := s.boxRepo.DecrementStock(boxTypeID, quantityUsed)
	if err != nil {
		return nil, err
	}
	if !ok {
		// The guard failed: either the box vanished or a concurrent
		// decrement left less stock than requested. Re-fetch to report
		// the current availability.
		current, err := s.boxRepo.FindByID(boxTypeID)
		if err != nil {
			return nil, err
		}
		if current == nil {
			return nil, ErrNotFound
		}
		return nil, &InsufficientStockError{Available: current.Quantity}
	}

	record := &models.UsageRecord{
		BoxTypeID:    boxTypeID,
		BoxName:      box.Name,
		QuantityUsed: quantityUsed,
		Date:         date,
	}
	if err := s.usageRepo.Create(record); err != nil {
		return nil, err
	}
	return record, nil
}

// ListUsage returns records created within the trailing days, newest first.
func (s *usageServiceImpl) ListUsage(days int) ([]models.UsageRecord, error) {
	days = clampDays(days, defaultUsageDays)
	cutoff := time.Now().UTC().AddDate(0, 0, -days)
	return s.usageRepo.FindCreatedSince(cutoff)
}

// UsageTrends returns one entry per trailing calendar day including today,
// oldest to newest. Days without records report zero.
func (s *usageServiceImpl) UsageTrends(days int) ([]DailyUsage, error) {
	days = clampDays(days, defaultTrendsDays)
	now := time.Now().UTC()
	cutoffDate := now.AddDate(0, 0, -(days - 1)).Format(dateLayout)

	records, err := s.usageRepo.FindByDateSince(cutoffDate)
	if err != nil {
		return nil, err
	}
	totals := make(map[string]int)
	for _, r := range records {
		totals[r.Date] += r.QuantityUsed
	}

	series := make([]DailyUsage, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i).Format(dateLayout)
		series = append(series, DailyUsage{Date: day, TotalUsed: totals[day]})
	}
	return series, nil
}

func clampDays(days, fallback int) int {
	if days <= 0 {
		return fallback
	}
	if days > maxQueryDays {
		return maxQueryDays
	}
	return days
}
