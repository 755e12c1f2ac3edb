package bootstrap

import (
	"github.com/redis/go-redis/v9"

	infralogger "github.com/punnatorn6420/Nokair-Platform/infrastructure/logger"
	infraredis "github.com/punnatorn6420/Nokair-Platform/infrastructure/redis"
	"github.com/punnatorn6420/Nokair-Platform/internal/config"
	"github.com/punnatorn6420/Nokair-Platform/internal/events"
)

// SetupRedis connects to Redis when it is enabled.
// Returns nil if Redis is disabled or unavailable.
func SetupRedis(cfg *config.Config, log infralogger.Logger) *redis.Client {
	if !cfg.Redis.Enabled {
		return nil
	}

	client, err := infraredis.NewClient(cfg.Redis)
	if err != nil {
		log.Warn("Redis not available, cache and events disabled",
			infralogger.Error(err),
		)
		return nil
	}

	log.Info("Connected to Redis",
		infralogger.String("redis_address", cfg.Redis.Address),
	)
	return client
}

// SetupEventPublisher creates an optional event publisher.
// Returns nil if client is nil.
func SetupEventPublisher(client *redis.Client, log infralogger.Logger) *events.Publisher {
	if client == nil {
		return nil
	}

	log.Info("Event publisher initialized")
	return events.NewPublisher(client, log)
}

func closeRedis(client *redis.Client, log infralogger.Logger) {
	if client == nil {
		return
	}
	if closeErr := client.Close(); closeErr != nil {
		log.Error("Failed to close Redis client", infralogger.Error(closeErr))
	}
}
