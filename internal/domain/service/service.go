package service

import (
	"sync"

	"github.com/diegoclair/cleaning-rotation-bot/internal/domain/contract"
	"github.com/diegoclair/cleaning-rotation-bot/internal/domain/schedule"
	"github.com/diegoclair/cleaning-rotation-bot/internal/metrics"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Defaults seed the settings row on first start
type Defaults struct {
	CycleStartDate   string
	NotificationTime string
}

// Collaborators are the outbound dependencies of the duty service.
// Mirror may be nil when no shared store is configured.
type Collaborators struct {
	Notifier contract.Notifier
	Mirror   contract.RecordMirror
	Tips     contract.TipProvider
	Metrics  contract.MetricsCollector
}

type dutyService struct {
	dm        contract.DataManager
	gen       *schedule.Generator
	notifier  contract.Notifier
	mirror    contract.RecordMirror
	tips      contract.TipProvider
	metrics   contract.MetricsCollector
	tracker   *NotificationTracker
	defaults  Defaults
	validate  *validator.Validate
	log       *zap.Logger
	scheduler *scheduler

	// recordMu serializes the load, change and save of weekly records
	recordMu sync.Mutex
}

func newDuty(dm contract.DataManager, gen *schedule.Generator, collab Collaborators, defaults Defaults, log *zap.Logger) *dutyService {
	if collab.Metrics == nil {
		collab.Metrics = metrics.NewNop()
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &dutyService{
		dm:        dm,
		gen:       gen,
		notifier:  collab.Notifier,
		mirror:    collab.Mirror,
		tips:      collab.Tips,
		metrics:   collab.Metrics,
		tracker:   NewNotificationTracker(),
		defaults:  defaults,
		validate:  validator.New(),
		log:       log.Named("duty"),
		scheduler: nil, // set by NewInstance to avoid circular dependency
	}
}

func (s *dutyService) SetScheduler(scheduler *scheduler) {
	s.scheduler = scheduler
}

var _ contract.DutyService = (*dutyService)(nil)
