package repository

import (
	"errors"

	"Stocked/internal/models"

	"gorm.io/gorm"
)

type UserRepository interface {
	GenericRepository[models.User]
	FindByUsername(username string) (*models.User, error)
}

type UserRepositoryImpl struct {
	GenericRepository[models.User]
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &UserRepositoryImpl{
		GenericRepository: NewGenericRepository[models.User](db),
		db:                db,
	}
}

// FindByUsername matches case-insensitively and returns (nil, nil) on no match.
func (r *UserRepositoryImpl) FindByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.db.Where("LOWER(username) = LOWER(?)", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}
