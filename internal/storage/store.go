package storage

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Store wraps the sqlite handle backing both the persisted timer
// snapshot and the session history.
type Store struct {
	DB *sql.DB
}

// Open opens (creating if needed) the database at path and ensures the
// schema exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	s := &Store{DB: db}
	if err := s.createTables(); err != nil {
		db.Close()
		return nil, err
	}
	s.migrate()
	return s, nil
}

func (s *Store) Close() error {
	return s.DB.Close()
}

func (s *Store) createTables() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			started_at DATETIME NOT NULL,
			duration_seconds INTEGER NOT NULL,
			completed INTEGER DEFAULT 0,
			completed_at DATETIME
		);`,
	}
	for _, query := range queries {
		if _, err := s.DB.Exec(query); err != nil {
			return fmt.Errorf("creating table: %w: %s", err, query)
		}
	}
	return nil
}

// Migrations for databases created by earlier builds. Each statement is
// a no-op when the column already exists.
func (s *Store) migrate() {
	_, _ = s.DB.Exec("ALTER TABLE sessions ADD COLUMN completed INTEGER DEFAULT 0")
	_, _ = s.DB.Exec("ALTER TABLE sessions ADD COLUMN completed_at DATETIME")
}
