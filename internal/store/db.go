// Package store persists optimization history to SQLite. Every optimized
// prompt becomes a prompt_sessions row with prompt_versions children, so
// reruns of the same request are browsable as versions.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS prompt_sessions (
		id TEXT PRIMARY KEY,
		domain TEXT NOT NULL,
		task_type TEXT NOT NULL,
		raw_prompt TEXT NOT NULL,
		quality_score INTEGER NOT NULL,
		created_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS prompt_versions (
		id TEXT PRIMARY KEY,
		session_id TEXT NOT NULL REFERENCES prompt_sessions(id) ON DELETE CASCADE,
		label TEXT NOT NULL,
		optimized_prompt TEXT NOT NULL,
		was_copied INTEGER NOT NULL DEFAULT 0,
		rating INTEGER,
		created_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_prompt_sessions_created_at ON prompt_sessions(created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_prompt_versions_session_id ON prompt_versions(session_id)`,
}

// OpenDB opens the SQLite database at path, creating parent directories as
// needed. ":memory:" is honored for tests. WAL mode and foreign keys are
// enabled and the schema is migrated before returning.
func OpenDB(path string) (*sql.DB, error) {
	if path != ":memory:" {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	if err := Migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return db, nil
}

// Migrate applies the schema. Statements are idempotent so the full list
// re-runs on every start.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
