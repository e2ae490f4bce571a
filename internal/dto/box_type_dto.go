package dto

import (
	"Stocked/internal/models"
)

// BoxTypeGetDTO is a box annotated with its consumption prediction.
// AvgDailyUsage is rounded to two decimals for display; nil horizons mean
// no usage data was available.
type BoxTypeGetDTO struct {
	models.BoxType
	AvgDailyUsage    float64 `json:"avg_daily_usage"`
	DaysUntilEmpty   *int    `json:"days_until_empty"`
	DaysUntilReorder *int    `json:"days_until_reorder"`
	Status           string  `json:"status"`
}
