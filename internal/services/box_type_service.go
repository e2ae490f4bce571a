package services

import (
	"strings"

	"Stocked/internal/models"
	"Stocked/internal/repository"

	"github.com/shopspring/decimal"
)

const maxNameLength = 255

// BoxTypePatch carries a partial update. Nil fields are left untouched,
// so an absent field is distinguished from an explicit zero.
type BoxTypePatch struct {
	Name         *string
	Quantity     *int
	Cost         *decimal.Decimal
	MinThreshold *int
}

type BoxTypeService interface {
	CreateBoxType(name string, quantity int, cost decimal.Decimal, minThreshold int) (*models.BoxType, error)
	GetBoxTypes() ([]models.BoxType, error)
	GetBoxTypeByID(id string) (*models.BoxType, error)
	UpdateBoxType(id string, patch BoxTypePatch) (*models.BoxType, error)
	DeleteBoxType(id string) error
}

func NewBoxTypeService(boxRepo repository.BoxTypeRepository) BoxTypeService {
	return &boxTypeServiceImpl{boxRepo: boxRepo}
}

type boxTypeServiceImpl struct {
	boxRepo repository.BoxTypeRepository
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return newValidationError("name must not be empty")
	}
	if len(name) > maxNameLength {
		return newValidationError("name must be at most %d characters", maxNameLength)
	}
	return nil
}

func (s *boxTypeServiceImpl) CreateBoxType(name string, quantity int, cost decimal.Decimal, minThreshold int) (*models.BoxType, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if quantity < 0 {
		return nil, newValidationError("quantity must not be negative")
	}
	if cost.IsNegative() {
		return nil, newValidationError("cost must not be negative")
	}
	if minThreshold < 0 {
		return nil, newValidationError("min_threshold must not be negative")
	}
	box := &models.BoxType{
		Name:         name,
		Quantity:     quantity,
		Cost:         cost,
		MinThreshold: minThreshold,
	}
	if err := s.boxRepo.Create(box); err != nil {
		return nil, err
	}
	return box, nil
}

func (s *boxTypeServiceImpl) GetBoxTypes() ([]models.BoxType, error) {
	return s.boxRepo.FindAll()
}

func (s *boxTypeServiceImpl) GetBoxTypeByID(id string) (*models.BoxType, error) {
	box, err := s.boxRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if box == nil {
		return nil, ErrNotFound
	}
	return box, nil
}

func (s *boxTypeServiceImpl) UpdateBoxType(id string, patch BoxTypePatch) (*models.BoxType, error) {
	box, err := s.GetBoxTypeByID(id)
	if err != nil {
		return nil, err
	}
	if patch.Name != nil {
		if err := validateName(*patch.Name); err != nil {
			return nil, err
		}
		box.Name = *patch.Name
	}
	if patch.Quantity != nil {
		if *patch.Quantity < 0 {
			return nil, newValidationError("quantity must not be negative")
		}
		box.Quantity = *patch.Quantity
	}
	if patch.Cost != nil {
		if patch.Cost.IsNegative() {
			return nil, newValidationError("cost must not be negative")
		}
		box.Cost = *patch.Cost
	}
	if patch.MinThreshold != nil {
		if *patch.MinThreshold < 0 {
			return nil, newValidationError("min_threshold must not be negative")
		}
		box.MinThreshold = *patch.MinThreshold
	}
	if err := s.boxRepo.Update(box); err != nil {
		return nil, err
	}
	return box, nil
}

// DeleteBoxType removes the box and cascades deletion of its usage records.
func (s *boxTypeServiceImpl) DeleteBoxType(id string) error {
	deleted, err := s.boxRepo.DeleteWithUsage(id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}
