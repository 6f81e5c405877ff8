package database

import (
	"context"
	"fmt"

	"github.com/diegoclair/cleaning-rotation-bot/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db           *DB
	settingsRepo contract.SettingsRepo
	unitRepo     contract.UnitRepo
	taskRepo     contract.TaskRepo
	recordRepo   contract.WeeklyRecordRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	instance := &instance{
		db: db,
	}
	instance.repoInstances()
	return instance
}

// repoInstances initializes all repositories
func (i *instance) repoInstances() {
	i.settingsRepo = newSettingsRepo(i.db.conn)
	i.unitRepo = newUnitRepo(i.db.conn)
	i.taskRepo = newTaskRepo(i.db.conn)
	i.recordRepo = newWeeklyRecordRepo(i.db.conn)
}

// repoInstancesWithConn creates repository instances with custom dbConn
func repoInstancesWithConn(db dbConn) *instance {
	return &instance{
		settingsRepo: newSettingsRepo(db),
		unitRepo:     newUnitRepo(db),
		taskRepo:     newTaskRepo(db),
		recordRepo:   newWeeklyRecordRepo(db),
	}
}

// Settings returns the settings repository
func (i *instance) Settings() contract.SettingsRepo {
	return i.settingsRepo
}

// Unit returns the unit repository
func (i *instance) Unit() contract.UnitRepo {
	return i.unitRepo
}

// Task returns the task repository
func (i *instance) Task() contract.TaskRepo {
	return i.taskRepo
}

// Record returns the weekly record repository
func (i *instance) Record() contract.WeeklyRecordRepo {
	return i.recordRepo
}

// WithTransaction executes a function within a database transaction
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	tx, err := i.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txInstance := repoInstancesWithConn(tx)
	err = fn(txInstance)
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, err)
		}
		return err
	}

	return tx.Commit()
}
