package repository

import (
	"Stocked/internal/models"

	"gorm.io/gorm"
)

type BoxTypeRepository interface {
	GenericRepository[models.BoxType]
	DecrementStock(id string, quantity int) (bool, error)
	DeleteWithUsage(id string) (bool, error)
}

type BoxTypeRepositoryImpl struct {
	GenericRepository[models.BoxType]
	db *gorm.DB
}

func NewBoxTypeRepository(db *gorm.DB) BoxTypeRepository {
	return &BoxTypeRepositoryImpl{
		GenericRepository: NewGenericRepository[models.BoxType](db),
		db:                db,
	}
}

// DecrementStock subtracts quantity with a conditional update so that two
// concurrent decrements cannot both pass a stale sufficiency check and drive
// the stock negative. Returns false when the row is missing or the guard
// (quantity >= requested) fails.
func (r *BoxTypeRepositoryImpl) DecrementStock(id string, quantity int) (bool, error) {
	result := r.db.Model(&models.BoxType{}).
		Where("id = ? AND quantity >= ?", id, quantity).
		UpdateColumn("quantity", gorm.Expr("quantity - ?", quantity))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// DeleteWithUsage removes the box and all of its usage records in a single
// transaction. Returns false when the box did not exist.
func (r *BoxTypeRepositoryImpl) DeleteWithUsage(id string) (bool, error) {
	deleted := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.BoxType{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}
		deleted = true
		return tx.Delete(&models.UsageRecord{}, "box_type_id = ?", id).Error
	})
	return deleted, err
}
