package repository

import (
	"time"

	"Stocked/internal/models"

	"gorm.io/gorm"
)

type UsageRepository interface {
	GenericRepository[models.UsageRecord]
	FindCreatedSince(cutoff time.Time) ([]models.UsageRecord, error)
	FindByDateSince(cutoffDate string) ([]models.UsageRecord, error)
	FindByBoxSince(boxTypeID, cutoffDate string) ([]models.UsageRecord, error)
}

type UsageRepositoryImpl struct {
	GenericRepository[models.UsageRecord]
	db *gorm.DB
}

func NewUsageRepository(db *gorm.DB) UsageRepository {
	return &UsageRepositoryImpl{
		GenericRepository: NewGenericRepository[models.UsageRecord](db),
		db:                db,
	}
}

// FindCreatedSince returns records created at or after cutoff, newest first.
func (r *UsageRepositoryImpl) FindCreatedSince(cutoff time.Time) ([]models.UsageRecord, error) {
	var records []models.UsageRecord
	err := r.db.Where("created_at >= ?", cutoff).
		Order("created_at DESC").
		Find(&records).Error
	return records, err
}

// FindByDateSince filters on the usage date (YYYY-MM-DD, compares
// lexicographically) rather than the record creation time.
func (r *UsageRepositoryImpl) FindByDateSince(cutoffDate string) ([]models.UsageRecord, error) {
	var records []models.UsageRecord
	err := r.db.Where("date >= ?", cutoffDate).Find(&records).Error
	return records, err
}

func (r *UsageRepositoryImpl) FindByBoxSince(boxTypeID, cutoffDate string) ([]models.UsageRecord, error) {
	var records []models.UsageRecord
	err := r.db.Where("box_type_id = ? AND date >= ?", boxTypeID, cutoffDate).
		Find(&records).Error
	return records, err
}
