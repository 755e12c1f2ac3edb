// Package storage holds the persistence engines: the PostgreSQL layout
// table behind the backends, the SQLite key-value store used as the
// admin's local fallback, and the Redis read-through cache of the public
// API.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no document is stored under the key.
var ErrNotFound = errors.New("not found")

// LayoutReader reads raw layout documents by site slug.
type LayoutReader interface {
	Get(ctx context.Context, slug string) ([]byte, error)
}

// LayoutWriter stores raw layout documents by site slug.
type LayoutWriter interface {
	Upsert(ctx context.Context, slug string, data []byte) error
}

// LayoutStore is a LayoutReader and LayoutWriter.
type LayoutStore interface {
	LayoutReader
	LayoutWriter
}
