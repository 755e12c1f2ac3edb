package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // SQLite driver
)

// DefaultKeyPrefix namespaces page schemas in the local store.
const DefaultKeyPrefix = "nokair:page-schema:"

const localSchema = `
CREATE TABLE IF NOT EXISTS kv (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL
)`

// LocalStore is a small key-value table in a SQLite file. It backs the
// admin's offline copy of page schemas.
type LocalStore struct {
	db     *sqlx.DB
	prefix string
}

// OpenLocalStore opens (creating if needed) the SQLite file at path. Use
// ":memory:" for a throwaway store.
func OpenLocalStore(path, prefix string) (*LocalStore, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			return nil, fmt.Errorf("create local store directory: %w", err)
		}
	}

	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open local store: %w", err)
	}
	// One connection keeps :memory: databases and SQLite locking simple.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(localSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init local store: %w", err)
	}

	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return &LocalStore{db: db, prefix: prefix}, nil
}

// Key returns the storage key for route.
func (s *LocalStore) Key(route string) string {
	return s.prefix + route
}

// Get returns the value stored for route, or ErrNotFound.
func (s *LocalStore) Get(ctx context.Context, route string) ([]byte, error) {
	var value string
	err := s.db.GetContext(ctx, &value, `SELECT value FROM kv WHERE key = ?`, s.Key(route))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("local store get %s: %w", route, err)
	}
	return []byte(value), nil
}

// Put stores value for route, replacing any previous value.
func (s *LocalStore) Put(ctx context.Context, route string, value []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, s.Key(route), string(value), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("local store put %s: %w", route, err)
	}
	return nil
}

// Delete removes route. Deleting a missing key is not an error.
func (s *LocalStore) Delete(ctx context.Context, route string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, s.Key(route)); err != nil {
		return fmt.Errorf("local store delete %s: %w", route, err)
	}
	return nil
}

// Routes lists the routes with a stored value, sorted.
func (s *LocalStore) Routes(ctx context.Context) ([]string, error) {
	var keys []string
	err := s.db.SelectContext(ctx, &keys,
		`SELECT key FROM kv WHERE substr(key, 1, ?) = ? ORDER BY key`, len(s.prefix), s.prefix)
	if err != nil {
		return nil, fmt.Errorf("local store list: %w", err)
	}
	routes := make([]string, len(keys))
	for i, k := range keys {
		routes[i] = k[len(s.prefix):]
	}
	return routes, nil
}

// Close closes the database file.
func (s *LocalStore) Close() error {
	return s.db.Close()
}

// Ping checks the database file is reachable.
func (s *LocalStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
