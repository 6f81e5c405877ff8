package contract

import (
	"context"
	"time"

	"github.com/diegoclair/cleaning-rotation-bot/internal/domain/entity"
)

type DutyService interface {
	Bootstrap(ctx context.Context) error
	CurrentDuty(ctx context.Context) (*entity.Duty, error)
	Upcoming(ctx context.Context, from time.Time, weeks int) ([]entity.Assignment, error)
	History(ctx context.Context, weeks int) ([]*entity.WeekSummary, error)
	Week(ctx context.Context, weekKey string) (*entity.WeeklyRecord, error)
	SetTask(ctx context.Context, taskID string, done bool) (*entity.Duty, error)
	SetPlannedDay(ctx context.Context, day int) (*entity.Duty, error)
	SetNotes(ctx context.Context, notes string) (*entity.Duty, error)
	Settings(ctx context.Context) (*entity.Settings, error)
	UpdateSetting(ctx context.Context, field, value string) error
	ListUnits(ctx context.Context) ([]*entity.Unit, error)
	AddUnit(ctx context.Context, number, name string) (*entity.Unit, error)
	RemoveUnit(ctx context.Context, number string) error
	Tip(ctx context.Context) string
}
