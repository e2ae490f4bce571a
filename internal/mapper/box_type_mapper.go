package mapper

import (
	"math"

	"Stocked/internal/dto"
	"Stocked/internal/models"
	"Stocked/internal/services"
)

func ToBoxTypeGetDTO(box *models.BoxType, prediction *services.Prediction) dto.BoxTypeGetDTO {
	annotated := dto.BoxTypeGetDTO{BoxType: *box}
	if prediction != nil {
		annotated.AvgDailyUsage = math.Round(prediction.AvgDailyUsage*100) / 100
		annotated.DaysUntilEmpty = prediction.DaysUntilEmpty
		annotated.DaysUntilReorder = prediction.DaysUntilReorder
		annotated.Status = prediction.Status
	}
	return annotated
}

func ToBoxTypeGetDTOs(boxes []models.BoxType, predictions map[string]*services.Prediction) []dto.BoxTypeGetDTO {
	annotated := make([]dto.BoxTypeGetDTO, 0, len(boxes))
	for i := range boxes {
		annotated = append(annotated, ToBoxTypeGetDTO(&boxes[i], predictions[boxes[i].ID]))
	}
	return annotated
}
