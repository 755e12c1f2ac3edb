// Package bootstrap handles application initialization and lifecycle
// management for the Nokair services. Each service binary picks a role and
// calls Start.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	infralogger "github.com/punnatorn6420/Nokair-Platform/infrastructure/logger"
	"github.com/punnatorn6420/Nokair-Platform/infrastructure/profiling"
	"github.com/punnatorn6420/Nokair-Platform/internal/config"
	"github.com/punnatorn6420/Nokair-Platform/internal/metrics"
)

const version = "dev"

// Start initializes and runs the service for role until it is signalled.
func Start(role config.Role) error {
	// Phase 1: Load config and create logger
	cfg, err := LoadConfig(role)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := CreateLogger(cfg, role, version)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	// Start profiling server (if enabled)
	profiling.StartPprofServer(log)

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	switch role {
	case config.RoleCMSBackend:
		return runCMSBackend(cfg, log, reg, m)
	case config.RoleWebBackend:
		return runWebBackend(cfg, log, reg, m)
	case config.RoleCMSAdmin:
		return runCMSAdmin(cfg, log, reg, m)
	case config.RoleWeb:
		return runWeb(cfg, log, reg, m)
	default:
		return fmt.Errorf("unknown service role %q", role)
	}
}

func runCMSBackend(cfg *config.Config, log infralogger.Logger, reg *prometheus.Registry, m *metrics.Metrics) error {
	// Phase 2: Setup database
	db, err := SetupDatabase(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer closeDatabase(db, log)

	// Phase 3: Setup cache and event publisher (optional)
	rdb := SetupRedis(cfg, log)
	defer closeRedis(rdb, log)
	publisher := SetupEventPublisher(rdb, log)

	// Phase 4: Setup and run HTTP server
	deps := backendDeps{
		db:        db,
		redis:     rdb,
		publisher: publisher,
		registry:  reg,
		metrics:   m,
		cacheTTL:  cfg.Redis.CacheTTL,
		log:       log,
	}
	server := SetupHTTPServer(cfg, config.RoleCMSBackend, log, cmsBackendRoutes(deps))
	return serve(cfg, server, log)
}

func runWebBackend(cfg *config.Config, log infralogger.Logger, reg *prometheus.Registry, m *metrics.Metrics) error {
	// Phase 2: Setup database
	db, err := SetupDatabase(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer closeDatabase(db, log)

	// Phase 3: Setup cache (optional)
	rdb := SetupRedis(cfg, log)
	defer closeRedis(rdb, log)

	// Phase 4: Setup and run HTTP server
	deps := backendDeps{
		db:       db,
		redis:    rdb,
		registry: reg,
		metrics:  m,
		cacheTTL: cfg.Redis.CacheTTL,
		log:      log,
	}
	server := SetupHTTPServer(cfg, config.RoleWebBackend, log, webBackendRoutes(deps))
	return serve(cfg, server, log)
}

func runCMSAdmin(cfg *config.Config, log infralogger.Logger, reg *prometheus.Registry, m *metrics.Metrics) error {
	// Phase 2: Open the local store
	local, err := SetupLocalStore(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to open local store: %w", err)
	}
	defer func() {
		if closeErr := local.Close(); closeErr != nil {
			log.Error("Failed to close local store", infralogger.Error(closeErr))
		}
	}()

	// Phase 3: Build the editor
	routes, err := cmsAdminRoutes(adminDeps{
		local:    local,
		api:      SetupAPIClient(cfg.API.CMSURL, cfg, log),
		slug:     cfg.Service.SiteSlug,
		registry: reg,
		metrics:  m,
		log:      log,
	})
	if err != nil {
		return fmt.Errorf("failed to set up admin ui: %w", err)
	}

	// Phase 4: Setup and run HTTP server
	server := SetupHTTPServer(cfg, config.RoleCMSAdmin, log, routes)
	return serve(cfg, server, log)
}

func runWeb(cfg *config.Config, log infralogger.Logger, reg *prometheus.Registry, m *metrics.Metrics) error {
	routes, err := webRoutes(webDeps{
		api:      SetupAPIClient(cfg.API.WebURL, cfg, log),
		slug:     cfg.Service.SiteSlug,
		registry: reg,
		metrics:  m,
		log:      log,
	})
	if err != nil {
		return fmt.Errorf("failed to set up site: %w", err)
	}

	server := SetupHTTPServer(cfg, config.RoleWeb, log, routes)
	return serve(cfg, server, log)
}

func serve(cfg *config.Config, server interface{ Run(context.Context) error }, log infralogger.Logger) error {
	log.Info("Starting HTTP server",
		infralogger.String("host", cfg.Server.Host),
		infralogger.Int("port", cfg.Server.Port),
	)

	if runErr := server.Run(context.Background()); runErr != nil {
		log.Error("Server error", infralogger.Error(runErr))
		return fmt.Errorf("server error: %w", runErr)
	}

	log.Info("Server exited")
	return nil
}
