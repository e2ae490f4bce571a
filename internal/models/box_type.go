package models

import (
	"github.com/shopspring/decimal"
)

type BoxType struct {
	BaseModel
	Name         string          `gorm:"type:varchar(255);not null" json:"name"`
	Quantity     int             `gorm:"not null;default:0" json:"quantity"`
	Cost         decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"cost"`
	MinThreshold int             `gorm:"not null;default:10" json:"min_threshold"`
}

// TotalValue is quantity times unit cost, rounded to two decimals.
func (b *BoxType) TotalValue() decimal.Decimal {
	return b.Cost.Mul(decimal.NewFromInt(int64(b.Quantity))).Round(2)
}
