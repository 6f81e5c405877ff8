package contract

import (
	"context"

	"github.com/diegoclair/cleaning-rotation-bot/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Settings() SettingsRepo
	Unit() UnitRepo
	Task() TaskRepo
	Record() WeeklyRecordRepo
}

// SettingsRepo defines the contract for the single settings row
type SettingsRepo interface {
	Get() (*entity.Settings, error)
	Save(settings *entity.Settings) error
}

// UnitRepo defines the contract for the rotation roster
type UnitRepo interface {
	Create(unit *entity.Unit) error
	List() ([]*entity.Unit, error)
	GetByNumber(number string) (*entity.Unit, error)
	Delete(id string) error
}

// TaskRepo defines the contract for the weekly checklist
type TaskRepo interface {
	Create(task *entity.Task) error
	List() ([]*entity.Task, error)
}

// WeeklyRecordRepo defines the contract for per-week state, keyed by week start date
type WeeklyRecordRepo interface {
	Get(weekKey string) (*entity.WeeklyRecord, error)
	GetMany(weekKeys []string) (map[string]*entity.WeeklyRecord, error)
	Upsert(record *entity.WeeklyRecord) error
}
