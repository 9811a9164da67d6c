// Package store persists cruise tracks and ordering runs in SQLite.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

const schemaVersion = 2

var (
	// ErrNotFound is returned when no cruise has the requested name.
	ErrNotFound = errors.New("store: cruise not found")

	// ErrInputMismatch is returned when an ordering's input station list
	// and permutation differ in length.
	ErrInputMismatch = errors.New("store: input stations do not match permutation")
)

// Store is a SQLite-backed repository of cruises, their stations in track
// order, and the orderings computed for them.
type Store struct {
	db     *sql.DB
	dbPath string
	mu     sync.RWMutex
	log    *slog.Logger
}

// Open opens or creates the database at dbPath. A nil logger uses
// slog.Default().
func Open(dbPath string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}

	if dbPath != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o700); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	logger.Debug("opening sqlite database", slog.String("path", dbPath))

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// Each connection to :memory: would see its own database.
	if dbPath == MemoryPath {
		db.SetMaxOpenConns(1)
	}

	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	if dbPath != MemoryPath {
		pragmas = append(pragmas, "PRAGMA journal_mode = WAL", "PRAGMA synchronous = NORMAL")
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma %s: %w", pragma, err)
		}
	}

	s := &Store{db: db, dbPath: dbPath, log: logger}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return s, nil
}

// Path returns the database file path.
func (s *Store) Path() string { return s.dbPath }

func (s *Store) initSchema() error {
	var version int
	err := s.db.QueryRow("SELECT version FROM schema_version LIMIT 1").Scan(&version)
	if err != nil {
		return s.createSchema()
	}
	if version > schemaVersion {
		return fmt.Errorf("database schema version %d is newer than supported %d", version, schemaVersion)
	}
	if version < schemaVersion {
		return s.runMigrations(version)
	}

	return nil
}

func (s *Store) runMigrations(fromVersion int) error {
	if fromVersion < 2 {
		if _, err := s.db.Exec(`ALTER TABLE orderings ADD COLUMN input_stations TEXT NOT NULL DEFAULT '[]'`); err != nil {
			return fmt.Errorf("migrate to version 2: %w", err)
		}
	}

	if _, err := s.db.Exec("UPDATE schema_version SET version = ?", schemaVersion); err != nil {
		return fmt.Errorf("failed to update schema version: %w", err)
	}
	s.log.Debug("sqlite schema migrated", slog.Int("from", fromVersion), slog.Int("to", schemaVersion))

	return nil
}

func (s *Store) createSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS schema_version (
		version INTEGER PRIMARY KEY
	);
	INSERT INTO schema_version (version) VALUES (2);

	CREATE TABLE IF NOT EXISTS cruises (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);

	-- Stations in track order.
	CREATE TABLE IF NOT EXISTS stations (
		cruise_id INTEGER NOT NULL,
		seq INTEGER NOT NULL,
		name TEXT NOT NULL,
		lat REAL NOT NULL,
		lon REAL NOT NULL,
		observed_at TEXT,
		PRIMARY KEY (cruise_id, seq),
		FOREIGN KEY (cruise_id) REFERENCES cruises(id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS orderings (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		cruise_id INTEGER NOT NULL,
		orientation TEXT NOT NULL,
		degenerate INTEGER NOT NULL DEFAULT 0,
		cost REAL NOT NULL,
		length_km REAL NOT NULL,
		permutation TEXT NOT NULL,
		created_at TEXT NOT NULL,
		-- Station names before the run; permutation indexes this list.
		input_stations TEXT NOT NULL DEFAULT '[]',
		FOREIGN KEY (cruise_id) REFERENCES cruises(id) ON DELETE CASCADE
	);

	CREATE INDEX IF NOT EXISTS idx_orderings_cruise ON orderings(cruise_id, id DESC);
	`

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	s.log.Debug("sqlite schema initialized", slog.Int("version", schemaVersion))

	return nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	if s.dbPath != MemoryPath {
		_, _ = s.db.Exec("PRAGMA wal_checkpoint(TRUNCATE)")
	}

	return s.db.Close()
}

func (s *Store) cruiseID(ctx context.Context, q queryer, name string) (int64, error) {
	var id int64
	err := q.QueryRowContext(ctx, `SELECT id FROM cruises WHERE name = ?`, name).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("%q: %w", name, ErrNotFound)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to look up cruise: %w", err)
	}

	return id, nil
}

type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func now() string { return time.Now().UTC().Format(time.RFC3339Nano) }

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}
