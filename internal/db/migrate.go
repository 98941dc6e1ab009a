package db

import (
	"database/sql"
	"fmt"
	"strings"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS saved_scenarios (
		id                TEXT PRIMARY KEY,
		scenario_name     TEXT NOT NULL,
		overview          TEXT NOT NULL DEFAULT '',
		saved_at          INTEGER NOT NULL,
		input_name        TEXT NOT NULL DEFAULT '',
		input_description TEXT NOT NULL DEFAULT '',
		input_region      TEXT NOT NULL DEFAULT '',
		input_context     TEXT NOT NULL DEFAULT '',
		input_event_count INTEGER NOT NULL DEFAULT 0,
		input_start_year  TEXT NOT NULL DEFAULT '',
		input_end_year    TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX IF NOT EXISTS idx_saved_scenarios_saved_at ON saved_scenarios(saved_at DESC)`,
	`CREATE TABLE IF NOT EXISTS scenario_events (
		scenario_id      TEXT NOT NULL REFERENCES saved_scenarios(id) ON DELETE CASCADE,
		position         INTEGER NOT NULL,
		event_id         TEXT NOT NULL,
		date_label       TEXT NOT NULL DEFAULT '',
		title            TEXT NOT NULL DEFAULT '',
		description      TEXT NOT NULL DEFAULT '',
		strategic_impact REAL NOT NULL DEFAULT 0,
		factions_json    TEXT NOT NULL DEFAULT '[]',
		location         TEXT NOT NULL DEFAULT '',
		latitude         REAL NOT NULL DEFAULT 0,
		longitude        REAL NOT NULL DEFAULT 0,
		PRIMARY KEY (scenario_id, position)
	)`,
	// Which generator produced the scenario; empty for imports.
	`ALTER TABLE saved_scenarios ADD COLUMN source TEXT NOT NULL DEFAULT ''`,
}

// Migrate runs all schema migrations. Every statement is safe to re-run.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
