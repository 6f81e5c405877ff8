// Package sqlite holds the embedded SQLite schema migrations.
package sqlite

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/GuiaBolso/darwin"
	"github.com/diegoclair/sqlmigrator"
)

const migrationsDir = "sql"

//go:embed sql/*.sql
var sqlFiles embed.FS

// Migrate applies every pending migration, in file name order
func Migrate(db *sql.DB) error {
	migrator := sqlmigrator.New(db, darwin.SqliteDialect{})

	if err := migrator.Migrate(sqlFiles, migrationsDir); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	return nil
}
