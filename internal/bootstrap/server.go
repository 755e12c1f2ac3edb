package bootstrap

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"

	infragin "github.com/punnatorn6420/Nokair-Platform/infrastructure/gin"
	infrahttp "github.com/punnatorn6420/Nokair-Platform/infrastructure/http"
	infralogger "github.com/punnatorn6420/Nokair-Platform/infrastructure/logger"
	inframetrics "github.com/punnatorn6420/Nokair-Platform/infrastructure/metrics"
	"github.com/punnatorn6420/Nokair-Platform/internal/adminui"
	"github.com/punnatorn6420/Nokair-Platform/internal/api"
	"github.com/punnatorn6420/Nokair-Platform/internal/client"
	"github.com/punnatorn6420/Nokair-Platform/internal/config"
	"github.com/punnatorn6420/Nokair-Platform/internal/editor"
	"github.com/punnatorn6420/Nokair-Platform/internal/events"
	"github.com/punnatorn6420/Nokair-Platform/internal/metrics"
	"github.com/punnatorn6420/Nokair-Platform/internal/persistence"
	"github.com/punnatorn6420/Nokair-Platform/internal/render"
	"github.com/punnatorn6420/Nokair-Platform/internal/site"
	"github.com/punnatorn6420/Nokair-Platform/internal/storage"
)

// SetupHTTPServer creates and configures the HTTP server for role.
func SetupHTTPServer(
	cfg *config.Config,
	role config.Role,
	log infralogger.Logger,
	setupRoutes func(*gin.Engine),
) *infragin.Server {
	return infragin.NewServer(&infragin.Config{
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		Debug:        cfg.Debug,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		CORS: infragin.CORSConfig{
			Enabled:        true,
			AllowedOrigins: cfg.Server.CORSOrigins,
		},
		ServiceName:    ServiceName(role),
		ServiceVersion: version,
	}, log, setupRoutes)
}

// SetupAPIClient builds the client for a backend API. An empty baseURL
// yields an unconfigured client.
func SetupAPIClient(baseURL string, cfg *config.Config, log infralogger.Logger) *client.Client {
	if baseURL == "" {
		log.Warn("API URL not configured, using offline fallbacks")
	}
	httpClient := infrahttp.NewClient(&infrahttp.ClientConfig{
		Timeout: cfg.API.Timeout,
	})
	return client.New(baseURL, httpClient)
}

type backendDeps struct {
	db        *sqlx.DB
	redis     *redis.Client
	publisher *events.Publisher
	registry  *prometheus.Registry
	metrics   *metrics.Metrics
	cacheTTL  time.Duration
	log       infralogger.Logger
}

func (d backendDeps) healthChecks(repo *storage.LayoutRepository) map[string]infragin.HealthCheck {
	checks := map[string]infragin.HealthCheck{
		"database": {Ping: repo.Ping},
	}
	if d.redis != nil {
		checks["redis"] = infragin.HealthCheck{
			Ping:     func(ctx context.Context) error { return d.redis.Ping(ctx).Err() },
			Optional: true,
		}
	}
	return checks
}

// cmsBackendRoutes serves the admin layout API. Writes drop the public
// cache entry and announce the change on the event stream.
func cmsBackendRoutes(d backendDeps) func(*gin.Engine) {
	return func(router *gin.Engine) {
		service := ServiceName(config.RoleCMSBackend)
		inframetrics.Register(router, d.registry, service)

		repo := storage.NewLayoutRepository(d.db)
		opts := []api.HandlerOption{
			api.WithWriter(repo),
			api.WithMetrics(d.metrics),
			api.WithCacheInvalidator(func(ctx context.Context, slug string) error {
				return storage.Invalidate(ctx, d.redis, slug)
			}),
		}
		if d.publisher != nil {
			opts = append(opts, api.WithPublisher(d.publisher))
		}

		infragin.RegisterHealthRoutes(router, service, version, d.healthChecks(repo))
		api.RegisterAdminRoutes(router, api.NewLayoutHandler(repo, d.log, opts...))
	}
}

// webBackendRoutes serves the read-only public layout API.
func webBackendRoutes(d backendDeps) func(*gin.Engine) {
	return func(router *gin.Engine) {
		service := ServiceName(config.RoleWebBackend)
		inframetrics.Register(router, d.registry, service)

		repo := storage.NewLayoutRepository(d.db)
		var reader storage.LayoutReader = repo
		if d.redis != nil {
			reader = storage.NewCachedReader(repo, d.redis, d.cacheTTL, d.log, d.metrics)
		}

		infragin.RegisterHealthRoutes(router, service, version, d.healthChecks(repo))
		api.RegisterPublicRoutes(router, api.NewLayoutHandler(reader, d.log, api.WithMetrics(d.metrics)))
	}
}

type adminDeps struct {
	local    *storage.LocalStore
	api      *client.Client
	slug     string
	registry *prometheus.Registry
	metrics  *metrics.Metrics
	log      infralogger.Logger
}

// cmsAdminRoutes wires the page builder and layout editor.
func cmsAdminRoutes(d adminDeps) (func(*gin.Engine), error) {
	schemas := persistence.NewSchemaStore(d.api, d.local, d.log, d.metrics)
	layouts := persistence.NewAdminLayoutStore(d.api, d.slug, d.log)
	workspace := editor.NewWorkspace(schemas, layouts)

	renderer, err := newRenderer(d.log, d.metrics)
	if err != nil {
		return nil, err
	}
	ui, err := adminui.NewHandler(workspace, schemas, renderer, d.log)
	if err != nil {
		return nil, err
	}

	return func(router *gin.Engine) {
		service := ServiceName(config.RoleCMSAdmin)
		inframetrics.Register(router, d.registry, service)
		infragin.RegisterHealthRoutes(router, service, version, map[string]infragin.HealthCheck{
			"local_store": {Ping: d.local.Ping},
		})
		ui.RegisterRoutes(router)
	}, nil
}

type webDeps struct {
	api      *client.Client
	slug     string
	registry *prometheus.Registry
	metrics  *metrics.Metrics
	log      infralogger.Logger
}

// webRoutes wires the public marketing site.
func webRoutes(d webDeps) (func(*gin.Engine), error) {
	source := persistence.NewPublicSource(d.api, d.slug, d.log, d.metrics)

	renderer, err := newRenderer(d.log, d.metrics)
	if err != nil {
		return nil, err
	}
	handler := site.NewHandler(source, source, renderer, d.log)

	return func(router *gin.Engine) {
		service := ServiceName(config.RoleWeb)
		inframetrics.Register(router, d.registry, service)
		infragin.RegisterHealthRoutes(router, service, version, nil)
		handler.RegisterRoutes(router)
	}, nil
}

func newRenderer(log infralogger.Logger, m *metrics.Metrics) (*render.Renderer, error) {
	return render.New(render.WithLogger(log), render.WithSkipHook(m.RenderSkip))
}
