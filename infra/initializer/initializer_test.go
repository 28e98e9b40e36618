package initializer

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	infra_cache "github.com/amirasaad/networth/infra/cache"
	"github.com/amirasaad/networth/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.App {
	return &config.App{
		Env:    "test",
		Server: &config.Server{Port: 3000},
		Log:    &config.Log{Format: "text"},
		DB: &config.DB{
			Driver:          config.DriverSQLite,
			Url:             filepath.Join(t.TempDir(), "networth.db"),
			ConnMaxLifetime: time.Hour,
			AutoMigrate:     true,
		},
		Auth:      &config.Auth{Strategy: config.AuthStrategyDev},
		Redis:     &config.Redis{},
		RateLimit: &config.RateLimit{MaxRequests: 100, Window: time.Minute},
		Dashboard: &config.Dashboard{CacheTTL: time.Minute},
	}
}

func TestInitializeDependencies_SQLiteWithoutRedis(t *testing.T) {
	deps, err := InitializeDependencies(testConfig(t))
	require.NoError(t, err)
	require.NotNil(t, deps.Uow)
	require.NotNil(t, deps.Logger)
	assert.IsType(t, infra_cache.NoopDashboardCache{}, deps.DashboardCache)
	assert.NoError(t, deps.DB.Ping(context.Background()))

	users, err := deps.Uow.UserRepository()
	require.NoError(t, err)
	u, err := users.GetByEmail(context.Background(), "nobody@example.com")
	require.NoError(t, err, "schema should exist after auto-migration")
	assert.Nil(t, u)
}

func TestInitializeDependencies_MemoryDashboardCache(t *testing.T) {
	cfg := testConfig(t)
	cfg.Dashboard.MemoryCache = true
	deps, err := InitializeDependencies(cfg)
	require.NoError(t, err)
	assert.IsType(t, &infra_cache.MemoryDashboardCache{}, deps.DashboardCache)
}

func TestSetupLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := SetupLogger(&config.Log{Format: "json", Prefix: "[networth]"}, &buf)
	logger.Info("hello", "user_id", "42")

	out := buf.String()
	assert.Contains(t, out, `"msg":"hello"`)
	assert.Contains(t, out, `"user_id":"42"`)
	assert.Contains(t, out, `"prefix":"[networth]"`)
}
