package database

import (
	"fmt"

	"github.com/diegoclair/cleaning-rotation-bot/internal/domain/contract"
	"github.com/diegoclair/cleaning-rotation-bot/internal/domain/entity"
)

type taskRepo struct {
	db dbConn
}

func newTaskRepo(db dbConn) contract.TaskRepo {
	return &taskRepo{db: db}
}

func (r *taskRepo) Create(task *entity.Task) error {
	query := `INSERT INTO tasks (id, label, position) VALUES (?, ?, ?)`

	_, err := r.db.Exec(query, task.ID, task.Label, task.Position)
	if err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}

	return nil
}

func (r *taskRepo) List() ([]*entity.Task, error) {
	rows, err := r.db.Query(`SELECT id, label, position FROM tasks ORDER BY position ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*entity.Task
	for rows.Next() {
		task := &entity.Task{}
		if err := rows.Scan(&task.ID, &task.Label, &task.Position); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tasks: %w", err)
	}

	return tasks, nil
}
