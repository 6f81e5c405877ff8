package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/diegoclair/cleaning-rotation-bot/internal/domain/contract"
	"github.com/diegoclair/cleaning-rotation-bot/internal/domain/entity"
)

// settingsID is the primary key of the only settings row
const settingsID = 1

type settingsRepo struct {
	db dbConn
}

func newSettingsRepo(db dbConn) contract.SettingsRepo {
	return &settingsRepo{db: db}
}

func (r *settingsRepo) Get() (*entity.Settings, error) {
	settings := &entity.Settings{}
	query := `
		SELECT cycle_start_date, my_unit_id, notification_time, created_at, updated_at
		FROM settings
		WHERE id = ?
	`

	err := r.db.QueryRow(query, settingsID).Scan(
		&settings.CycleStartDate,
		&settings.MyUnitID,
		&settings.NotificationTime,
		&settings.CreatedAt,
		&settings.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	return settings, nil
}

func (r *settingsRepo) Save(settings *entity.Settings) error {
	query := `
		INSERT INTO settings (id, cycle_start_date, my_unit_id, notification_time, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			cycle_start_date = excluded.cycle_start_date,
			my_unit_id = excluded.my_unit_id,
			notification_time = excluded.notification_time,
			updated_at = excluded.updated_at
	`

	now := time.Now().UTC()
	_, err := r.db.Exec(query,
		settingsID,
		settings.CycleStartDate,
		settings.MyUnitID,
		settings.NotificationTime,
		now,
	)
	if err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	settings.UpdatedAt = now
	return nil
}
