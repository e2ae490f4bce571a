package services

import (
	"sync"

	"Stocked/internal/config"
	"Stocked/internal/repository"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// ReorderMonitor periodically sweeps the inventory and logs every box that
// is at or below its reorder threshold or projected to need reordering
// within a week. Read-only; it never mutates stock.
type ReorderMonitor struct {
	boxRepo           repository.BoxTypeRepository
	predictionService PredictionService
	logService        LogService
	configuration     *config.Configuration
	cron              *cron.Cron
	sweeping          bool
	mutex             sync.Mutex
}

func NewReorderMonitor(
	boxRepo repository.BoxTypeRepository,
	predictionService PredictionService,
	logService LogService,
	configuration *config.Configuration,
) *ReorderMonitor {
	return &ReorderMonitor{
		boxRepo:           boxRepo,
		predictionService: predictionService,
		logService:        logService,
		configuration:     configuration,
		cron:              cron.New(),
	}
}

func (m *ReorderMonitor) StartSweepCycle() {
	if !m.configuration.Monitor.Enabled {
		return
	}
	schedule := m.configuration.Monitor.Schedule
	if _, err := m.cron.AddFunc(schedule, m.Sweep); err != nil {
		m.logService.Log.WithError(err).Errorf("invalid monitor schedule %q", schedule)
		return
	}
	m.cron.Start()
	m.logService.Log.Infof("reorder monitor scheduled: %s", schedule)
}

func (m *ReorderMonitor) Stop() {
	m.cron.Stop()
}

func (m *ReorderMonitor) Sweep() {
	m.mutex.Lock()
	if m.sweeping {
		m.mutex.Unlock()
		return
	}
	m.sweeping = true
	m.mutex.Unlock()
	defer func() {
		m.mutex.Lock()
		m.sweeping = false
		m.mutex.Unlock()
	}()

	boxes, err := m.boxRepo.FindAll()
	if err != nil {
		m.logService.Log.WithError(err).Error("reorder sweep: listing boxes failed")
		return
	}
	predictions, err := m.predictionService.PredictAll(boxes)
	if err != nil {
		m.logService.Log.WithError(err).Error("reorder sweep: prediction failed")
		return
	}

	for _, box := range boxes {
		p := predictions[box.ID]
		if p == nil || p.Status == StatusSafe {
			continue
		}
		fields := logrus.Fields{
			"box":       box.Name,
			"quantity":  box.Quantity,
			"threshold": box.MinThreshold,
			"status":    p.Status,
		}
		if p.DaysUntilReorder != nil {
			fields["days_until_reorder"] = *p.DaysUntilReorder
		}
		m.logService.Log.WithFields(fields).Warn("box needs attention")
	}
}
