package repositories

import (
	"database/sql"
	"fmt"
)

// KVStore is the local persistence layer: string keys mapped to JSON-encoded
// values, mirroring the browser-local storage the cart and bookmarks lived in
// originally. There is no schema versioning; readers must tolerate legacy or
// malformed values.
type KVStore struct {
	db *sql.DB
}

// NewKVStore creates a key-value store over the given database
func NewKVStore(db *sql.DB) *KVStore {
	return &KVStore{db: db}
}

// Get returns the stored value for key, or "" when the key is absent. Absence
// is not an error.
func (s *KVStore) Get(key string) (string, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM kv_store WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read key %q: %w", key, err)
	}
	return value, nil
}

// Put stores value under key, replacing any previous value
func (s *KVStore) Put(key, value string) error {
	query := `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`
	if _, err := s.db.Exec(query, key, value); err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	return nil
}

// Delete removes key from the store; deleting an absent key is a no-op
func (s *KVStore) Delete(key string) error {
	if _, err := s.db.Exec("DELETE FROM kv_store WHERE key = ?", key); err != nil {
		return fmt.Errorf("failed to delete key %q: %w", key, err)
	}
	return nil
}
