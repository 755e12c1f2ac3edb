package storage

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // PostgreSQL driver

	"github.com/punnatorn6420/Nokair-Platform/infrastructure/config"
	infracontext "github.com/punnatorn6420/Nokair-Platform/infrastructure/context"
	"github.com/punnatorn6420/Nokair-Platform/infrastructure/retry"
)

// NewPostgresConnection opens a pooled connection and verifies it. The
// first ping is retried on network errors so a service may start slightly
// ahead of its database.
func NewPostgresConnection(cfg config.DatabaseConfig) (*sqlx.DB, error) {
	db, err := sqlx.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxConnections)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if pingErr := pingWithRetry(context.Background(), db, retry.DefaultConfig()); pingErr != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", pingErr)
	}

	return db, nil
}

func pingWithRetry(ctx context.Context, db *sqlx.DB, cfg retry.Config) error {
	return retry.Do(ctx, cfg, func(ctx context.Context) error {
		pingCtx, cancel := infracontext.WithPingTimeout(ctx)
		defer cancel()
		return db.PingContext(pingCtx)
	})
}
