// Package store provides the durable key-value storage for pomod:
// the user settings record and the persisted phase state, kept in a
// sqlite database so they survive daemon restarts.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/pomod/pomod/internal/pomo"
)

// Storage keys. The phase state key may be absent, which is equivalent
// to an idle state.
const (
	KeySettings = "settings"
	KeyState    = "pomo_state"
)

// Store is a sqlite-backed key-value store with JSON values.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the store at the given path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS kv (
		key   TEXT PRIMARY KEY,
		value BLOB NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("init store schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// get unmarshals the value at key into v. Returns false if the key is absent.
func (s *Store) get(key string, v any) (bool, error) {
	var raw []byte
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

// put marshals v and writes it at key, replacing any prior value.
func (s *Store) put(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if _, err := s.db.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, raw,
	); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// remove deletes the value at key. Removing an absent key is not an error.
func (s *Store) remove(key string) error {
	if _, err := s.db.Exec(`DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("remove %s: %w", key, err)
	}
	return nil
}

// GetSettings reads the settings record. The second return is false if
// no settings have been written yet.
func (s *Store) GetSettings() (pomo.Settings, bool, error) {
	var settings pomo.Settings
	found, err := s.get(KeySettings, &settings)
	return settings, found, err
}

// PutSettings replaces the settings record (last writer wins).
func (s *Store) PutSettings(settings pomo.Settings) error {
	return s.put(KeySettings, settings)
}

// EnsureSettings writes the defaults if no settings record exists, and
// returns the effective settings. Existing user values are never
// overwritten.
func (s *Store) EnsureSettings() (pomo.Settings, error) {
	settings, found, err := s.GetSettings()
	if err != nil {
		return pomo.Settings{}, err
	}
	if found {
		return settings, nil
	}
	settings = pomo.DefaultSettings()
	if err := s.PutSettings(settings); err != nil {
		return pomo.Settings{}, err
	}
	return settings, nil
}

// GetState reads the persisted phase state. Returns nil if absent,
// which callers treat as idle.
func (s *Store) GetState() (*pomo.State, error) {
	var st pomo.State
	found, err := s.get(KeyState, &st)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &st, nil
}

// PutState persists the phase state.
func (s *Store) PutState(st pomo.State) error {
	return s.put(KeyState, st)
}

// DeleteState removes the persisted phase state (the stop command).
func (s *Store) DeleteState() error {
	return s.remove(KeyState)
}
