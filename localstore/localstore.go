// Package localstore provides the on-device durable key-value storage the
// store writes its settings and persisted state slice into. Values are JSON
// blobs in a single SQLite table, keyed under one namespace.
package localstore

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

const defaultNamespace = "wellvest"

const schema = `
CREATE TABLE IF NOT EXISTS kv (
	namespace TEXT NOT NULL,
	key       TEXT NOT NULL,
	value     TEXT NOT NULL,
	PRIMARY KEY (namespace, key)
);`

// Store is a SQLite-backed key-value namespace.
type Store struct {
	db        *sql.DB
	namespace string
}

// Open opens (or creates) the local database at path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("local storage path is required")
	}

	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_busy_timeout=5000"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open local storage: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init local storage schema: %w", err)
	}
	return &Store{db: db, namespace: defaultNamespace}, nil
}

// Namespace returns a view over the same database under a different
// namespace. Sessions for different users use separate namespaces so their
// persisted slices never collide.
func (s *Store) Namespace(ns string) *Store {
	return &Store{db: s.db, namespace: ns}
}

// Get loads the value stored under key into out. Returns false when the key
// is absent.
func (s *Store) Get(key string, out any) (bool, error) {
	var raw string
	err := s.db.QueryRow(
		`SELECT value FROM kv WHERE namespace = ? AND key = ?`,
		s.namespace, key,
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read %q: %w", key, err)
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return false, fmt.Errorf("decode %q: %w", key, err)
	}
	return true, nil
}

// Put stores value under key, replacing any previous value.
func (s *Store) Put(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}
	_, err = s.db.Exec(
		`INSERT INTO kv (namespace, key, value) VALUES (?, ?, ?)
		 ON CONFLICT (namespace, key) DO UPDATE SET value = excluded.value`,
		s.namespace, key, string(raw),
	)
	if err != nil {
		return fmt.Errorf("write %q: %w", key, err)
	}
	return nil
}

// Wipe deletes every key in the namespace.
func (s *Store) Wipe() error {
	if _, err := s.db.Exec(`DELETE FROM kv WHERE namespace = ?`, s.namespace); err != nil {
		return fmt.Errorf("wipe local storage: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
