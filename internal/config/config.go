// Package config loads the configuration shared by the four Nokair
// services. Each service selects its defaults and validation with a Role.
package config

import (
	"errors"
	"fmt"
	"time"

	infraconfig "github.com/punnatorn6420/Nokair-Platform/infrastructure/config"
	"github.com/punnatorn6420/Nokair-Platform/internal/layout"
	"github.com/punnatorn6420/Nokair-Platform/internal/storage"
)

// Role identifies the service being configured.
type Role string

const (
	RoleCMSBackend Role = "cms-backend"
	RoleWebBackend Role = "web-backend"
	RoleCMSAdmin   Role = "cms-admin"
	RoleWeb        Role = "web"
)

const (
	defaultCMSBackendPort = 8080
	defaultWebBackendPort = 8081
	defaultCMSAdminPort   = 3001
	defaultWebPort        = 3000
	defaultServerTimeout  = 30 * time.Second
	defaultAPITimeout     = 10 * time.Second
	defaultLocalPath      = "data/nokair-local.db"
)

// Config is the root configuration.
type Config struct {
	Debug    bool                       `env:"APP_DEBUG" yaml:"debug"`
	Service  ServiceConfig              `yaml:"service"`
	Server   ServerConfig               `yaml:"server"`
	Database infraconfig.DatabaseConfig `yaml:"database"`
	Redis    infraconfig.RedisConfig    `yaml:"redis"`
	Logging  infraconfig.LoggingConfig  `yaml:"logging"`
	API      APIConfig                  `yaml:"api"`
	Local    LocalConfig                `yaml:"local"`
}

// ServiceConfig holds service identity settings.
type ServiceConfig struct {
	SiteSlug  string `env:"SITE_SLUG"        yaml:"site_slug"`
	KeyPrefix string `env:"LOCAL_KEY_PREFIX" yaml:"key_prefix"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Host         string        `env:"SERVER_HOST"  yaml:"host"`
	Port         int           `env:"SERVER_PORT"  yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	CORSOrigins  []string      `env:"CORS_ORIGINS" yaml:"cors_origins"`
}

// APIConfig locates the backend APIs. An empty URL means "not configured"
// and selects the offline fallbacks.
type APIConfig struct {
	CMSURL  string        `env:"CMS_API_URL" yaml:"cms_url"`
	WebURL  string        `env:"WEB_API_URL" yaml:"web_url"`
	Timeout time.Duration `env:"API_TIMEOUT" yaml:"timeout"`
}

// LocalConfig locates the admin's SQLite fallback store.
type LocalConfig struct {
	Path string `env:"LOCAL_STORE_PATH" yaml:"path"`
}

// Address returns host:port for the listener.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load reads the configuration at path for role.
func Load(path string, role Role) (*Config, error) {
	cfg, err := infraconfig.LoadWithDefaults(path, func(c *Config) { SetDefaults(c, role) })
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if err := cfg.Validate(role); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SetDefaults fills unset fields for role.
func SetDefaults(cfg *Config, role Role) {
	if cfg.Service.SiteSlug == "" {
		cfg.Service.SiteSlug = layout.SiteSlug
	}
	if cfg.Service.KeyPrefix == "" {
		cfg.Service.KeyPrefix = storage.DefaultKeyPrefix
	}

	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = defaultPort(role)
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = defaultServerTimeout
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = defaultServerTimeout
	}
	if len(cfg.Server.CORSOrigins) == 0 {
		cfg.Server.CORSOrigins = []string{"*"}
	}

	if cfg.API.Timeout == 0 {
		cfg.API.Timeout = defaultAPITimeout
	}
	if cfg.Local.Path == "" {
		cfg.Local.Path = defaultLocalPath
	}

	cfg.Database.SetDefaults()
	cfg.Redis.SetDefaults()
	cfg.Logging.SetDefaults()
	if cfg.Debug && cfg.Logging.Level == "info" {
		cfg.Logging.Level = "debug"
	}
}

func defaultPort(role Role) int {
	switch role {
	case RoleCMSBackend:
		return defaultCMSBackendPort
	case RoleWebBackend:
		return defaultWebBackendPort
	case RoleCMSAdmin:
		return defaultCMSAdminPort
	default:
		return defaultWebPort
	}
}

// Validate checks the fields role depends on.
func (c *Config) Validate(role Role) error {
	if c.Server.Port <= 0 {
		return errors.New("server.port must be positive")
	}
	if c.Service.SiteSlug == "" {
		return errors.New("service.site_slug is required")
	}

	switch role {
	case RoleCMSBackend, RoleWebBackend:
		if c.Database.Host == "" {
			return errors.New("database.host is required")
		}
		if c.Database.User == "" {
			return errors.New("database.user is required")
		}
		if c.Database.Database == "" {
			return errors.New("database.database is required")
		}
	case RoleCMSAdmin:
		if c.Local.Path == "" {
			return errors.New("local.path is required")
		}
	case RoleWeb:
	default:
		return fmt.Errorf("unknown service role %q", role)
	}

	return nil
}
