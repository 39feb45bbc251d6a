package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pcadley/satchel/internal/config"
	_ "modernc.org/sqlite"
)

// CurrentSchemaVersion is the latest schema version.
// Bump this when adding migrations.
const CurrentSchemaVersion = 1

// Init initializes the SQLite database at baseDir/satchel.db.
// The baseDir parameter allows tests to use t.TempDir() instead of
// ~/.satchel.
func Init(baseDir string) (*sql.DB, error) {
	if err := os.MkdirAll(baseDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create base directory: %w", err)
	}
	_ = os.Chmod(baseDir, 0700)

	exportsDir := filepath.Join(baseDir, "exports")
	if err := os.MkdirAll(exportsDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create exports directory: %w", err)
	}
	_ = os.Chmod(exportsDir, 0700)

	// Pragmas go in the connection string so they apply to every connection.
	dbPath := filepath.Join(baseDir, "satchel.db")
	dsn := dbPath + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	database, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := verifyWALMode(database); err != nil {
		database.Close()
		return nil, err
	}

	if err := migrate(database); err != nil {
		database.Close()
		return nil, err
	}

	_ = os.Chmod(dbPath, 0600)

	return database, nil
}

// ConfigurePool applies connection pool settings from config. Only sets
// limits if explicitly configured (non-zero values).
func ConfigurePool(database *sql.DB, cfg *config.Config) {
	if cfg == nil {
		return
	}
	if cfg.DBMaxOpenConns > 0 {
		database.SetMaxOpenConns(cfg.DBMaxOpenConns)
	}
	if cfg.DBMaxIdleConns > 0 {
		database.SetMaxIdleConns(cfg.DBMaxIdleConns)
	}
}

// migrate applies schema migrations based on user_version.
func migrate(database *sql.DB) error {
	version, err := GetUserVersion(database)
	if err != nil {
		return err
	}

	// Migration 0 -> 1: initial schema.
	if version < 1 {
		schema := `
		CREATE TABLE IF NOT EXISTS sites (
		  position         INTEGER PRIMARY KEY,
		  location         TEXT NOT NULL DEFAULT '',
		  title            TEXT NOT NULL DEFAULT '',
		  custom_title     TEXT NOT NULL DEFAULT '',
		  tags_json        TEXT,
		  last_accessed    INTEGER,
		  visit_count      INTEGER NOT NULL DEFAULT 0,
		  folder_id        INTEGER NOT NULL DEFAULT 0,
		  parent_folder_id INTEGER NOT NULL DEFAULT 0,
		  partition_number INTEGER NOT NULL DEFAULT 0,
		  favicon          TEXT NOT NULL DEFAULT '',
		  theme_color      TEXT NOT NULL DEFAULT ''
		);

		CREATE INDEX IF NOT EXISTS idx_sites_parent
		ON sites(parent_folder_id);

		CREATE TABLE IF NOT EXISTS snapshots (
		  id         TEXT PRIMARY KEY,
		  label      TEXT NOT NULL DEFAULT '',
		  taken_at   INTEGER NOT NULL,
		  site_count INTEGER NOT NULL,
		  sites_json TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_snapshots_taken
		ON snapshots(taken_at DESC);
		`
		if _, err := database.Exec(schema); err != nil {
			return fmt.Errorf("migration 1 failed: %w", err)
		}
		if err := SetUserVersion(database, 1); err != nil {
			return err
		}
	}

	// Future migrations go here:
	// if version < 2 { ... }

	return nil
}

// verifyWALMode checks that WAL mode is active (set via connection string).
func verifyWALMode(database *sql.DB) error {
	var journalMode string
	if err := database.QueryRow("PRAGMA journal_mode;").Scan(&journalMode); err != nil {
		return fmt.Errorf("failed to verify journal mode: %w", err)
	}
	if journalMode != "wal" {
		return fmt.Errorf("expected WAL mode, got %s", journalMode)
	}
	return nil
}

// GetUserVersion returns the current schema version (user_version pragma).
func GetUserVersion(database *sql.DB) (int, error) {
	var version int
	if err := database.QueryRow("PRAGMA user_version;").Scan(&version); err != nil {
		return 0, fmt.Errorf("failed to get user_version: %w", err)
	}
	return version, nil
}

// SetUserVersion sets the schema version (user_version pragma).
func SetUserVersion(database *sql.DB, version int) error {
	_, err := database.Exec(fmt.Sprintf("PRAGMA user_version=%d", version))
	if err != nil {
		return fmt.Errorf("failed to set user_version: %w", err)
	}
	return nil
}
