package services

import (
	"math"
	"time"

	"Stocked/internal/models"
	"Stocked/internal/repository"
)

const (
	predictionWindowDays = 30
	// minDaysForAverage smooths the average when usage data is sparse. A
	// single large usage on one day must not imply the stock is consumed
	// at that rate every day.
	minDaysForAverage = 7

	warningReorderDays = 7
	warningEmptyDays   = 14
)

const (
	StatusCritical = "critical"
	StatusWarning  = "warning"
	StatusSafe     = "safe"
)

// Prediction is the consumption estimate for one box. Nil horizons mean
// "no usage data", which is distinct from a horizon of zero days.
type Prediction struct {
	AvgDailyUsage    float64 `json:"avg_daily_usage"`
	DaysUntilEmpty   *int    `json:"days_until_empty"`
	DaysUntilReorder *int    `json:"days_until_reorder"`
	Status           string  `json:"status"`
}

type PredictionService interface {
	PredictBox(box *models.BoxType) (*Prediction, error)
	PredictAll(boxes []models.BoxType) (map[string]*Prediction, error)
}

func NewPredictionService(usageRepo repository.UsageRepository) PredictionService {
	return &predictionServiceImpl{usageRepo: usageRepo}
}

type predictionServiceImpl struct {
	usageRepo repository.UsageRepository
}

func (s *predictionServiceImpl) PredictBox(box *models.BoxType) (*Prediction, error) {
	records, err := s.usageRepo.FindByBoxSince(box.ID, windowCutoff())
	if err != nil {
		return nil, err
	}
	return predict(box, records), nil
}

// PredictAll computes predictions for every box with a single window query.
func (s *predictionServiceImpl) PredictAll(boxes []models.BoxType) (map[string]*Prediction, error) {
	records, err := s.usageRepo.FindByDateSince(windowCutoff())
	if err != nil {
		return nil, err
	}
	byBox := make(map[string][]models.UsageRecord)
	for _, r := range records {
		byBox[r.BoxTypeID] = append(byBox[r.BoxTypeID], r)
	}
	predictions := make(map[string]*Prediction, len(boxes))
	for i := range boxes {
		predictions[boxes[i].ID] = predict(&boxes[i], byBox[boxes[i].ID])
	}
	return predictions, nil
}

func windowCutoff() string {
	return time.Now().UTC().AddDate(0, 0, -predictionWindowDays).Format(dateLayout)
}

func predict(box *models.BoxType, records []models.UsageRecord) *Prediction {
	p := &Prediction{}

	if len(records) > 0 {
		totalUsed := 0
		distinctDays := make(map[string]struct{})
		for _, r := range records {
			totalUsed += r.QuantityUsed
			distinctDays[r.Date] = struct{}{}
		}
		daysForCalc := len(distinctDays)
		if daysForCalc < minDaysForAverage {
			daysForCalc = minDaysForAverage
		}
		p.AvgDailyUsage = float64(totalUsed) / float64(daysForCalc)
	}

	if p.AvgDailyUsage > 0 {
		empty := 0
		if box.Quantity > 0 {
			empty = int(math.Floor(float64(box.Quantity) / p.AvgDailyUsage))
		}
		reorder := 0
		if box.Quantity > box.MinThreshold {
			reorder = int(math.Floor(float64(box.Quantity-box.MinThreshold) / p.AvgDailyUsage))
		}
		p.DaysUntilEmpty = &empty
		p.DaysUntilReorder = &reorder
	}

	p.Status = classify(box, p)
	return p
}

// classify evaluates in priority order: already at or below the reorder
// threshold beats any projection; projected horizons only warn.
func classify(box *models.BoxType, p *Prediction) string {
	if box.Quantity <= box.MinThreshold {
		return StatusCritical
	}
	if p.DaysUntilReorder != nil && *p.DaysUntilReorder <= warningReorderDays {
		return StatusWarning
	}
	if p.DaysUntilEmpty != nil && *p.DaysUntilEmpty <= warningEmptyDays {
		return StatusWarning
	}
	return StatusSafe
}
