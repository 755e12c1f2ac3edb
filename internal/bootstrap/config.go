package bootstrap

import (
	"flag"
	"fmt"

	infraconfig "github.com/punnatorn6420/Nokair-Platform/infrastructure/config"
	infralogger "github.com/punnatorn6420/Nokair-Platform/infrastructure/logger"
	"github.com/punnatorn6420/Nokair-Platform/internal/config"
)

// LoadConfig loads configuration for role. Uses -config flag with
// infraconfig default.
func LoadConfig(role config.Role) (*config.Config, error) {
	configPath := flag.String("config", infraconfig.GetConfigPath("config.yml"), "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath, role)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// ServiceName is the name a role reports in logs, health and metrics.
func ServiceName(role config.Role) string {
	return "nokair-" + string(role)
}

// CreateLogger creates a logger instance from configuration.
func CreateLogger(cfg *config.Config, role config.Role, version string) (infralogger.Logger, error) {
	log, err := infralogger.New(infralogger.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Debug,
	})
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	return log.With(
		infralogger.String("service", ServiceName(role)),
		infralogger.String("version", version),
	), nil
}
