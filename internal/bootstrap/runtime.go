// Package bootstrap wires process-level dependencies before the HTTP server starts.
package bootstrap

import (
	"fmt"

	"helphub/internal/cache"
	"helphub/internal/config"
	"helphub/internal/database"
	"helphub/internal/middleware"
	"helphub/internal/observability"
	"helphub/internal/seed"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Options control runtime initialization behavior.
type Options struct {
	SeedDefaultTips bool
}

// InitRuntime connects to DB and Redis and optionally seeds the default tips.
func InitRuntime(cfg *config.Config, opts Options) (*gorm.DB, *redis.Client, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection failed: %w", err)
	}

	// Init Redis (may result in nil client if unreachable)
	cache.InitRedis(cfg.RedisURL)
	r := cache.GetClient()

	if opts.SeedDefaultTips {
		if err := seed.Tips(db); err != nil {
			return nil, nil, fmt.Errorf("failed to seed default tips: %w", err)
		}
		middleware.Logger.Info("default community tips ensured")
	}

	return db, r, nil
}

// TracingConfig maps application configuration onto tracer settings.
func TracingConfig(cfg *config.Config) observability.TracingConfig {
	return observability.TracingConfig{
		ServiceName:    observability.ServiceName,
		ServiceVersion: "1.0.0",
		Environment:    cfg.Env,
		Enabled:        cfg.TracingEnabled,
		Exporter:       cfg.TracingExporter,
		OTLPEndpoint:   cfg.OTLPEndpoint,
		SamplerRatio:   cfg.TracingSampleRatio,
	}
}
