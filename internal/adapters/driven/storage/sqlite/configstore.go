package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/cyberknet/reloadluf/internal/core/ports/driven"
	"github.com/cyberknet/reloadluf/internal/logger"
)

// configStore implements driven.ConfigStore over the custom_config table.
// Values are stored as JSON so typed getters survive a round trip.
type configStore struct {
	store *Store
}

var _ driven.ConfigStore = (*configStore)(nil)

// Get retrieves a configuration value by key. Only a missing row means
// absent; any other failure is logged as an error and also reads as absent.
func (s *configStore) Get(key string) (any, bool) {
	var raw string
	err := s.store.db.QueryRow(`SELECT value FROM custom_config WHERE key = ?`, key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false
	}
	if err != nil {
		logger.Error("reading config key %s: %v", key, err)
		return nil, false
	}

	var val any
	if err := json.Unmarshal([]byte(raw), &val); err != nil {
		logger.Error("decoding config key %s: %v", key, err)
		return nil, false
	}
	return val, true
}

// GetString retrieves a string configuration value.
func (s *configStore) GetString(key string) string {
	val, ok := s.Get(key)
	if !ok {
		return ""
	}
	str, ok := val.(string)
	if !ok {
		return ""
	}
	return str
}

// Set stores a configuration value, replacing any prior value.
func (s *configStore) Set(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshalling %s: %w", key, err)
	}

	_, err = s.store.db.Exec(`
		INSERT INTO custom_config (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`, key, string(data))
	if err != nil {
		return fmt.Errorf("saving %s: %w", key, err)
	}
	return nil
}

// Delete removes a key.
func (s *configStore) Delete(key string) error {
	if _, err := s.store.db.Exec(`DELETE FROM custom_config WHERE key = ?`, key); err != nil {
		return fmt.Errorf("deleting %s: %w", key, err)
	}
	return nil
}

// Save is a no-op; every Set is committed immediately.
func (s *configStore) Save() error {
	return nil
}

// Load checks the database is reachable.
func (s *configStore) Load() error {
	var n int
	err := s.store.db.QueryRow(`SELECT COUNT(*) FROM custom_config`).Scan(&n)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("reading custom_config: %w", err)
	}
	return nil
}

// Path returns the database file path.
func (s *configStore) Path() string {
	return s.store.path
}
