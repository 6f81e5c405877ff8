package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/diegoclair/cleaning-rotation-bot/internal/domain/contract"
	"github.com/diegoclair/cleaning-rotation-bot/internal/domain/entity"
)

type weeklyRecordRepo struct {
	db dbConn
}

func newWeeklyRecordRepo(db dbConn) contract.WeeklyRecordRepo {
	return &weeklyRecordRepo{db: db}
}

const selectRecordColumns = `SELECT week_key, completed_tasks, planned_day, notes, updated_at FROM weekly_records`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRecord(row rowScanner) (*entity.WeeklyRecord, error) {
	record := &entity.WeeklyRecord{}
	var completedJSON string
	var plannedDay sql.NullInt64

	err := row.Scan(
		&record.WeekKey,
		&completedJSON,
		&plannedDay,
		&record.Notes,
		&record.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	// Convert JSON to completion map
	if err := json.Unmarshal([]byte(completedJSON), &record.Completed); err != nil {
		return nil, fmt.Errorf("failed to unmarshal completed tasks: %w", err)
	}
	if record.Completed == nil {
		record.Completed = map[string]bool{}
	}

	if plannedDay.Valid {
		day := int(plannedDay.Int64)
		record.PlannedDay = &day
	}

	return record, nil
}

func (r *weeklyRecordRepo) Get(weekKey string) (*entity.WeeklyRecord, error) {
	record, err := scanRecord(r.db.QueryRow(selectRecordColumns+` WHERE week_key = ?`, weekKey))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get weekly record: %w", err)
	}

	return record, nil
}

// GetMany returns the stored records among weekKeys; missing weeks are absent from the map
func (r *weeklyRecordRepo) GetMany(weekKeys []string) (map[string]*entity.WeeklyRecord, error) {
	records := make(map[string]*entity.WeeklyRecord, len(weekKeys))
	if len(weekKeys) == 0 {
		return records, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(weekKeys)), ",")
	args := make([]interface{}, 0, len(weekKeys))
	for _, key := range weekKeys {
		args = append(args, key)
	}

	rows, err := r.db.Query(selectRecordColumns+` WHERE week_key IN (`+placeholders+`)`, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get weekly records: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan weekly record: %w", err)
		}
		records[record.WeekKey] = record
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate weekly records: %w", err)
	}

	return records, nil
}

// Upsert stores the record. A zero UpdatedAt is set to the current time.
func (r *weeklyRecordRepo) Upsert(record *entity.WeeklyRecord) error {
	query := `
		INSERT INTO weekly_records (week_key, completed_tasks, planned_day, notes, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(week_key) DO UPDATE SET
			completed_tasks = excluded.completed_tasks,
			planned_day = excluded.planned_day,
			notes = excluded.notes,
			updated_at = excluded.updated_at
	`

	completed := record.Completed
	if completed == nil {
		completed = map[string]bool{}
	}

	// Convert completion map to JSON for storage
	completedJSON, err := json.Marshal(completed)
	if err != nil {
		return fmt.Errorf("failed to marshal completed tasks: %w", err)
	}

	var plannedDay sql.NullInt64
	if record.PlannedDay != nil {
		plannedDay = sql.NullInt64{Int64: int64(*record.PlannedDay), Valid: true}
	}

	if record.UpdatedAt.IsZero() {
		record.UpdatedAt = time.Now().UTC()
	}

	_, err = r.db.Exec(query,
		record.WeekKey,
		string(completedJSON),
		plannedDay,
		record.Notes,
		record.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert weekly record: %w", err)
	}

	return nil
}
