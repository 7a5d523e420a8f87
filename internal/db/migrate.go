package db

import (
	"database/sql"
	"fmt"
)

// migrations are idempotent schema statements, executed in order on every
// open. New statements append; existing ones never change.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS people (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		role       TEXT NOT NULL,
		fte        REAL NOT NULL CHECK(fte > 0),
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS vacation_ranges (
		id         TEXT PRIMARY KEY,
		person_id  TEXT NOT NULL REFERENCES people(id) ON DELETE CASCADE,
		start_date TEXT NOT NULL,
		end_date   TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_vacation_ranges_person ON vacation_ranges(person_id)`,

	`CREATE TABLE IF NOT EXISTS projects (
		id                 TEXT PRIMARY KEY,
		name               TEXT NOT NULL,
		priority           INTEGER NOT NULL DEFAULT 0,
		status             TEXT NOT NULL
		                   CHECK(status IN ('not_started','in_progress','paused','done','archived')),
		explicit_start     TEXT,
		requested_delivery TEXT,
		created_at         TEXT NOT NULL,
		updated_at         TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS role_efforts (
		project_id        TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		role              TEXT NOT NULL,
		total_effort_days REAL NOT NULL CHECK(total_effort_days >= 0),
		percent_done      REAL NOT NULL DEFAULT 0 CHECK(percent_done BETWEEN 0 AND 100),
		PRIMARY KEY (project_id, role)
	)`,

	`CREATE TABLE IF NOT EXISTS role_dependencies (
		project_id TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		from_role  TEXT NOT NULL,
		to_role    TEXT NOT NULL,
		kind       TEXT NOT NULL CHECK(kind IN ('blocking','waiting','parallel')),
		PRIMARY KEY (project_id, from_role, to_role)
	)`,

	`CREATE TABLE IF NOT EXISTS role_statuses (
		project_id TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		role       TEXT NOT NULL,
		status     TEXT NOT NULL CHECK(status IN ('active','waiting','blocked')),
		PRIMARY KEY (project_id, role)
	)`,

	`CREATE TABLE IF NOT EXISTS assignments (
		id             TEXT PRIMARY KEY,
		person_id      TEXT NOT NULL REFERENCES people(id) ON DELETE CASCADE,
		project_id     TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		role           TEXT NOT NULL,
		allocation_fte REAL NOT NULL CHECK(allocation_fte > 0),
		created_at     TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_assignments_project ON assignments(project_id)`,
	`CREATE INDEX IF NOT EXISTS idx_assignments_person ON assignments(person_id)`,

	`CREATE TABLE IF NOT EXISTS settings (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
