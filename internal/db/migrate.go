package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Statements are idempotent, so the
// full list is re-run on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS sprints (
		id         TEXT PRIMARY KEY,
		date       INTEGER NOT NULL UNIQUE,
		created_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS sprint_groups (
		id        TEXT PRIMARY KEY,
		sprint_id TEXT NOT NULL REFERENCES sprints(id) ON DELETE CASCADE,
		label     TEXT NOT NULL,
		points    INTEGER NOT NULL DEFAULT 0,
		days      INTEGER NOT NULL DEFAULT 0 CHECK(days >= 0)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_sprint_groups_sprint ON sprint_groups(sprint_id)`,
	`CREATE INDEX IF NOT EXISTS idx_sprints_date ON sprints(date)`,
}
