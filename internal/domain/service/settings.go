package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/diegoclair/cleaning-rotation-bot/internal/domain"
	"github.com/diegoclair/cleaning-rotation-bot/internal/domain/contract"
	"github.com/diegoclair/cleaning-rotation-bot/internal/domain/entity"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Setting fields accepted by UpdateSetting
const (
	SettingAnchor = "anchor"
	SettingMyUnit = "mine"
	SettingTime   = "time"
)

// Bootstrap seeds the settings, the default roster and the default checklist
// when they are missing. It is safe to call on every start.
func (s *dutyService) Bootstrap(ctx context.Context) error {
	return s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		if err := s.seedSettings(tx); err != nil {
			return err
		}
		if err := seedUnits(tx); err != nil {
			return err
		}
		return seedTasks(tx)
	})
}

func (s *dutyService) seedSettings(tx contract.DataManager) error {
	settings, err := tx.Settings().Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	if settings != nil {
		return nil
	}

	settings = &entity.Settings{
		CycleStartDate:   valueOr(s.defaults.CycleStartDate, domain.DefaultCycleStartDate),
		NotificationTime: valueOr(s.defaults.NotificationTime, domain.DefaultNotificationTime),
		CreatedAt:        s.gen.Now().UTC(),
	}
	if err := s.validate.Struct(settings); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidSetting, err)
	}

	if err := tx.Settings().Save(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	s.log.Info("seeded settings", zap.String("cycle_start_date", settings.CycleStartDate))
	return nil
}

func seedUnits(tx contract.DataManager) error {
	units, err := tx.Unit().List()
	if err != nil {
		return fmt.Errorf("failed to list units: %w", err)
	}
	if len(units) > 0 {
		return nil
	}

	for _, u := range domain.DefaultUnits {
		if err := tx.Unit().Create(&entity.Unit{ID: u.ID, Number: u.Number}); err != nil {
			return fmt.Errorf("failed to create unit %s: %w", u.Number, err)
		}
	}
	return nil
}

func seedTasks(tx contract.DataManager) error {
	tasks, err := tx.Task().List()
	if err != nil {
		return fmt.Errorf("failed to list tasks: %w", err)
	}
	if len(tasks) > 0 {
		return nil
	}

	for i, t := range domain.DefaultTasks {
		if err := tx.Task().Create(&entity.Task{ID: t.ID, Label: t.Label, Position: i}); err != nil {
			return fmt.Errorf("failed to create task %s: %w", t.ID, err)
		}
	}
	return nil
}

func (s *dutyService) Settings(ctx context.Context) (*entity.Settings, error) {
	settings, err := s.dm.Settings().Get()
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	if settings == nil {
		return nil, domain.NewConfigError("settings", "not initialized")
	}
	return settings, nil
}

// UpdateSetting changes one settings field: "anchor" (YYYY-MM-DD),
// "mine" (a unit number, or "none" to clear) or "time" (HH:MM).
func (s *dutyService) UpdateSetting(ctx context.Context, field, value string) error {
	settings, err := s.Settings(ctx)
	if err != nil {
		return err
	}

	value = strings.TrimSpace(value)
	switch strings.ToLower(field) {
	case SettingAnchor:
		anchor, err := s.gen.ParseAnchor(value)
		if err != nil {
			return err
		}
		settings.CycleStartDate = anchor.Format(domain.DateLayout)

	case SettingMyUnit:
		if value == "" || strings.EqualFold(value, "none") {
			settings.MyUnitID = ""
			break
		}
		unit, err := s.dm.Unit().GetByNumber(value)
		if err != nil {
			return fmt.Errorf("failed to get unit: %w", err)
		}
		if unit == nil {
			return fmt.Errorf("%w: %s", domain.ErrUnitNotFound, value)
		}
		settings.MyUnitID = unit.ID

	case SettingTime:
		at, err := time.Parse(domain.TimeLayout, value)
		if err != nil {
			return fmt.Errorf("%w: time must be HH:MM, got %q", domain.ErrInvalidSetting, value)
		}
		settings.NotificationTime = at.Format(domain.TimeLayout)

	default:
		return fmt.Errorf("%w: unknown field %q", domain.ErrInvalidSetting, field)
	}

	if err := s.validate.Struct(settings); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidSetting, err)
	}

	if err := s.dm.Settings().Save(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	s.log.Info("settings updated", zap.String("field", field), zap.String("value", value))

	if strings.EqualFold(field, SettingTime) && s.scheduler != nil {
		s.scheduler.NotifyConfigChange()
	}

	return nil
}

func (s *dutyService) ListUnits(ctx context.Context) ([]*entity.Unit, error) {
	units, err := s.dm.Unit().List()
	if err != nil {
		return nil, fmt.Errorf("failed to list units: %w", err)
	}
	return units, nil
}

// AddUnit appends a unit to the end of the rotation
func (s *dutyService) AddUnit(ctx context.Context, number, name string) (*entity.Unit, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return nil, fmt.Errorf("%w: unit number is required", domain.ErrInvalidSetting)
	}

	existing, err := s.dm.Unit().GetByNumber(number)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing unit: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnitExists, number)
	}

	unit := &entity.Unit{
		ID:     uuid.NewString(),
		Number: number,
		Name:   strings.TrimSpace(name),
	}
	if err := s.dm.Unit().Create(unit); err != nil {
		return nil, fmt.Errorf("failed to create unit: %w", err)
	}

	return unit, nil
}

// RemoveUnit drops a unit from the rotation. The last unit cannot be removed,
// and removing "my unit" clears that setting.
func (s *dutyService) RemoveUnit(ctx context.Context, number string) error {
	number = strings.TrimSpace(number)

	return s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		unit, err := tx.Unit().GetByNumber(number)
		if err != nil {
			return fmt.Errorf("failed to find unit: %w", err)
		}
		if unit == nil {
			return fmt.Errorf("%w: %s", domain.ErrUnitNotFound, number)
		}

		units, err := tx.Unit().List()
		if err != nil {
			return fmt.Errorf("failed to list units: %w", err)
		}
		if len(units) <= 1 {
			return domain.ErrLastUnit
		}

		if err := tx.Unit().Delete(unit.ID); err != nil {
			return fmt.Errorf("failed to delete unit: %w", err)
		}

		settings, err := tx.Settings().Get()
		if err != nil {
			return fmt.Errorf("failed to get settings: %w", err)
		}
		if settings != nil && settings.MyUnitID == unit.ID {
			settings.MyUnitID = ""
			if err := tx.Settings().Save(settings); err != nil {
				return fmt.Errorf("failed to save settings: %w", err)
			}
		}

		return nil
	})
}

func (s *dutyService) Tip(ctx context.Context) string {
	if s.tips == nil {
		return ""
	}
	return s.tips.Tip(ctx)
}

func valueOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
