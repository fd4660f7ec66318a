package database

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

type DB struct {
	*sql.DB
}

type Config struct {
	Path string // sqlite database file; ":memory:" for tests
}

func NewConnection(config Config) (*DB, error) {
	path := config.Path
	if path == "" {
		path = ":memory:"
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// sqlite serializes writes; a single connection avoids SQLITE_BUSY
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{db}, nil
}

func (db *DB) Close() error {
	return db.DB.Close()
}

// EnsureSchema creates the key-value table backing the cart and bookmark
// stores. Idempotent; safe to run at every startup.
func (db *DB) EnsureSchema() error {
	query := `
		CREATE TABLE IF NOT EXISTS kv_store (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
	`
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to create kv_store table: %w", err)
	}
	return nil
}
