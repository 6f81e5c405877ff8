package service

import (
	"github.com/diegoclair/cleaning-rotation-bot/internal/domain/contract"
	"github.com/diegoclair/cleaning-rotation-bot/internal/domain/schedule"
	"go.uber.org/zap"
)

type Instance struct {
	Duty      *dutyService
	Scheduler *scheduler
}

func NewInstance(dm contract.DataManager, gen *schedule.Generator, collab Collaborators, defaults Defaults, log *zap.Logger) *Instance {
	dutyService := newDuty(dm, gen, collab, defaults, log)
	scheduler := newScheduler(dm, dutyService, gen.Location(), log)
	dutyService.SetScheduler(scheduler)

	return &Instance{
		Duty:      dutyService,
		Scheduler: scheduler,
	}
}
