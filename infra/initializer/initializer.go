package initializer

import (
	"context"
	"fmt"
	"os"

	"github.com/amirasaad/networth/infra"
	infra_cache "github.com/amirasaad/networth/infra/cache"
	infra_repository "github.com/amirasaad/networth/infra/repository"
	"github.com/amirasaad/networth/pkg/app"
	"github.com/amirasaad/networth/pkg/cache"
	"github.com/amirasaad/networth/pkg/config"
)

// InitializeDependencies initializes all the application dependencies:
// logger, database (migrated when DATABASE_AUTO_MIGRATE is set), unit of
// work and dashboard cache.
func InitializeDependencies(cfg *config.App) (
	deps *app.Deps,
	err error,
) {
	deps = &app.Deps{}
	logger := SetupLogger(cfg.Log, os.Stdout)
	deps.Logger = logger

	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		logger.Error("Failed to initialize database", "error", err)
		return nil, err
	}
	if cfg.DB.AutoMigrate {
		if err := infra.Migrate(db, cfg.DB, logger); err != nil {
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
	}
	deps.DB = infra.NewDBPinger(db)
	deps.Uow = infra_repository.NewUoW(db)

	var dashboards cache.DashboardCache = infra_cache.NoopDashboardCache{}
	if cfg.Redis.URL != "" {
		client, err := infra_cache.NewRedisClient(cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("failed to create Redis client: %w", err)
		}
		redisCache := infra_cache.NewRedisDashboardCache(client, cfg.Redis.KeyPrefix, logger)
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Redis.DialTimeout)
		defer cancel()
		if err := redisCache.Ping(ctx); err != nil {
			logger.Warn("Redis unreachable at startup; dashboard cache will retry per request", "error", err)
		}
		dashboards = redisCache
		logger.Info("Dashboard cache enabled", "ttl", cfg.Dashboard.CacheTTL)
	} else if cfg.Dashboard.MemoryCache {
		dashboards = infra_cache.NewMemoryDashboardCache()
		logger.Info("Dashboard cache in memory", "ttl", cfg.Dashboard.CacheTTL)
	} else {
		logger.Info("Dashboard cache disabled; REDIS_URL not set")
	}
	deps.DashboardCache = dashboards

	return deps, nil
}
