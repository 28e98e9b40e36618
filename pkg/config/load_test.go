package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "secret")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, DriverPostgres, cfg.DB.Driver)
	assert.Equal(t, 25, cfg.DB.MaxOpenConns)
	assert.Equal(t, AuthStrategyJWT, cfg.Auth.Strategy)
	assert.Equal(t, 24*time.Hour, cfg.Auth.Jwt.Expiry)
	assert.Equal(t, "networth:", cfg.Redis.KeyPrefix)
	assert.Empty(t, cfg.Redis.URL)
	assert.Equal(t, 5*time.Minute, cfg.Dashboard.CacheTTL)
	assert.Equal(t, 3000, cfg.Server.Port)
}

func TestLoadFromEnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte(
		"AUTH_STRATEGY=dev\nDATABASE_DRIVER=sqlite\nDATABASE_URL=file:test.db\nDASHBOARD_CACHE_TTL=30s\n",
	), 0o600))
	t.Cleanup(func() {
		for _, k := range []string{"AUTH_STRATEGY", "DATABASE_DRIVER", "DATABASE_URL", "DASHBOARD_CACHE_TTL"} {
			os.Unsetenv(k) //nolint:errcheck
		}
	})

	cfg, err := Load(envFile)
	require.NoError(t, err)
	assert.Equal(t, AuthStrategyDev, cfg.Auth.Strategy)
	assert.Equal(t, DriverSQLite, cfg.DB.Driver)
	assert.Equal(t, "file:test.db", cfg.DB.Url)
	assert.Equal(t, 30*time.Second, cfg.Dashboard.CacheTTL)
}

func TestValidate(t *testing.T) {
	valid := func() *App {
		return &App{
			Env:  "development",
			DB:   &DB{Driver: DriverPostgres, Url: "postgres://x"},
			Auth: &Auth{Strategy: AuthStrategyJWT, Jwt: &Jwt{Secret: "s"}},
		}
	}
	require.NoError(t, valid().Validate())

	cfg := valid()
	cfg.Auth.Jwt.Secret = ""
	assert.ErrorContains(t, cfg.Validate(), "AUTH_JWT_SECRET")

	cfg = valid()
	cfg.Auth.Strategy = "basic"
	assert.ErrorContains(t, cfg.Validate(), "AUTH_STRATEGY")

	cfg = valid()
	cfg.Auth.Strategy = AuthStrategyDev
	cfg.Env = "production"
	assert.ErrorContains(t, cfg.Validate(), "production")

	cfg = valid()
	cfg.DB.Driver = "mysql"
	assert.ErrorContains(t, cfg.Validate(), "DATABASE_DRIVER")
}

func TestFindEnvTest(t *testing.T) {
	_, err := FindEnvTest("definitely-not-here.env")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestMaskValue(t *testing.T) {
	assert.Equal(t, "", maskValue(""))
	assert.Equal(t, "****", maskValue("short"))
	assert.Equal(t, "po****able", maskValue("postgres://user:pw@host/db?sslmode=disable"))
}
