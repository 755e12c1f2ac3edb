package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// LayoutRepository stores site layouts in cms_site_layouts. Documents are
// kept as raw JSON; readers normalize.
type LayoutRepository struct {
	db *sqlx.DB
}

// NewLayoutRepository wraps db.
func NewLayoutRepository(db *sqlx.DB) *LayoutRepository {
	return &LayoutRepository{db: db}
}

// Get returns the stored document for slug, or ErrNotFound.
func (r *LayoutRepository) Get(ctx context.Context, slug string) ([]byte, error) {
	var data []byte
	query := `SELECT data FROM cms_site_layouts WHERE site_slug = $1`

	if err := r.db.GetContext(ctx, &data, query, slug); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get site layout %s: %w", slug, err)
	}

	return data, nil
}

// Upsert inserts or replaces the document for slug.
func (r *LayoutRepository) Upsert(ctx context.Context, slug string, data []byte) error {
	query := `
		INSERT INTO cms_site_layouts (site_slug, data, created_at, updated_at)
		VALUES ($1, $2::jsonb, $3, $3)
		ON CONFLICT (site_slug) DO UPDATE SET
			data = EXCLUDED.data,
			updated_at = EXCLUDED.updated_at
	`

	if _, err := r.db.ExecContext(ctx, query, slug, string(data), time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to upsert site layout %s: %w", slug, err)
	}

	return nil
}

// Ping checks the connection.
func (r *LayoutRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
