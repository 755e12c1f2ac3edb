package bootstrap

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	infralogger "github.com/punnatorn6420/Nokair-Platform/infrastructure/logger"
	"github.com/punnatorn6420/Nokair-Platform/internal/config"
	"github.com/punnatorn6420/Nokair-Platform/internal/storage"
)

// SetupDatabase creates a database connection.
func SetupDatabase(cfg *config.Config, log infralogger.Logger) (*sqlx.DB, error) {
	db, err := storage.NewPostgresConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("database connection: %w", err)
	}

	log.Info("Connected to database",
		infralogger.String("host", cfg.Database.Host),
		infralogger.String("database", cfg.Database.Database),
	)
	return db, nil
}

// SetupLocalStore opens the admin's SQLite fallback store.
func SetupLocalStore(cfg *config.Config, log infralogger.Logger) (*storage.LocalStore, error) {
	local, err := storage.OpenLocalStore(cfg.Local.Path, cfg.Service.KeyPrefix)
	if err != nil {
		return nil, fmt.Errorf("local store: %w", err)
	}

	log.Info("Opened local store", infralogger.String("path", cfg.Local.Path))
	return local, nil
}

func closeDatabase(db *sqlx.DB, log infralogger.Logger) {
	if closeErr := db.Close(); closeErr != nil {
		log.Error("Failed to close database", infralogger.Error(closeErr))
	}
}
