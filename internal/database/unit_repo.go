package database

import (
	"database/sql"
	"fmt"

	"github.com/diegoclair/cleaning-rotation-bot/internal/domain/contract"
	"github.com/diegoclair/cleaning-rotation-bot/internal/domain/entity"
)

type unitRepo struct {
	db dbConn
}

func newUnitRepo(db dbConn) contract.UnitRepo {
	return &unitRepo{db: db}
}

// Create appends the unit to the end of the rotation and sets its Position
func (r *unitRepo) Create(unit *entity.Unit) error {
	query := `
		INSERT INTO units (id, number, name, position)
		VALUES (?, ?, ?, (SELECT COALESCE(MAX(position), -1) + 1 FROM units))
	`

	_, err := r.db.Exec(query,
		unit.ID,
		unit.Number,
		unit.Name,
	)
	if err != nil {
		return fmt.Errorf("failed to create unit: %w", err)
	}

	err = r.db.QueryRow(`SELECT position, created_at FROM units WHERE id = ?`, unit.ID).Scan(
		&unit.Position,
		&unit.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to read unit position: %w", err)
	}

	return nil
}

// List returns the roster in rotation order
func (r *unitRepo) List() ([]*entity.Unit, error) {
	query := `
		SELECT id, number, name, position, created_at
		FROM units
		ORDER BY position ASC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list units: %w", err)
	}
	defer rows.Close()

	var units []*entity.Unit
	for rows.Next() {
		unit := &entity.Unit{}
		err := rows.Scan(
			&unit.ID,
			&unit.Number,
			&unit.Name,
			&unit.Position,
			&unit.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan unit: %w", err)
		}
		units = append(units, unit)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate units: %w", err)
	}

	return units, nil
}

func (r *unitRepo) GetByNumber(number string) (*entity.Unit, error) {
	unit := &entity.Unit{}
	query := `
		SELECT id, number, name, position, created_at
		FROM units
		WHERE number = ?
	`

	err := r.db.QueryRow(query, number).Scan(
		&unit.ID,
		&unit.Number,
		&unit.Name,
		&unit.Position,
		&unit.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get unit: %w", err)
	}

	return unit, nil
}

func (r *unitRepo) Delete(id string) error {
	query := `DELETE FROM units WHERE id = ?`

	_, err := r.db.Exec(query, id)
	if err != nil {
		return fmt.Errorf("failed to delete unit: %w", err)
	}

	return nil
}
