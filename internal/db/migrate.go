package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// migrations are executed in order on every open. Statements use
// IF NOT EXISTS so the full list can be re-run against an existing
// database; ALTER TABLE duplicates are tolerated in Migrate.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS library_goals (
		id           TEXT PRIMARY KEY,
		title        TEXT NOT NULL,
		description  TEXT NOT NULL DEFAULT '',
		is_automatic INTEGER NOT NULL DEFAULT 0,
		has_timer    INTEGER NOT NULL DEFAULT 0,
		created_at   TEXT NOT NULL,
		updated_at   TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS daily_plans (
		date       TEXT PRIMARY KEY,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS plan_items (
		id              TEXT PRIMARY KEY,
		plan_date       TEXT NOT NULL REFERENCES daily_plans(date) ON DELETE CASCADE,
		kind            TEXT NOT NULL
		                CHECK(kind IN ('goal','automatic','habit','activity')),
		source_id       TEXT,
		title           TEXT NOT NULL,
		description     TEXT NOT NULL DEFAULT '',
		completed       INTEGER NOT NULL DEFAULT 0,
		scheduled_start TEXT,
		scheduled_end   TEXT,
		has_timer       INTEGER NOT NULL DEFAULT 0,
		position        INTEGER NOT NULL DEFAULT 0,
		created_at      TEXT NOT NULL,
		updated_at      TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_plan_items_date ON plan_items(plan_date)`,

	// One instance per automatic goal / habit per day. source_id is NULL for
	// ad-hoc goals, which SQLite treats as distinct, so manual items are
	// unconstrained.
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_plan_items_instance
		ON plan_items(plan_date, kind, source_id)
		WHERE source_id IS NOT NULL AND kind IN ('automatic','habit')`,

	`CREATE TABLE IF NOT EXISTS habits (
		id           TEXT PRIMARY KEY,
		title        TEXT NOT NULL,
		category     TEXT NOT NULL DEFAULT '',
		color        TEXT NOT NULL DEFAULT '',
		is_active    INTEGER NOT NULL DEFAULT 1,
		target_count INTEGER,
		unit         TEXT NOT NULL DEFAULT '',
		created_at   TEXT NOT NULL,
		updated_at   TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS habit_entries (
		habit_id   TEXT NOT NULL REFERENCES habits(id) ON DELETE CASCADE,
		entry_date TEXT NOT NULL,
		completed  INTEGER NOT NULL DEFAULT 0,
		count      INTEGER,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL,
		PRIMARY KEY (habit_id, entry_date)
	)`,

	`CREATE TABLE IF NOT EXISTS activities (
		id            TEXT PRIMARY KEY,
		name          TEXT NOT NULL,
		category      TEXT NOT NULL DEFAULT '',
		estimated_min INTEGER,
		is_active     INTEGER NOT NULL DEFAULT 1,
		created_at    TEXT NOT NULL,
		updated_at    TEXT NOT NULL
	)`,
}

// Migrate runs all schema migrations.
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
