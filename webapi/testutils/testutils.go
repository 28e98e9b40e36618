// Package testutils builds a fully wired API over a real database for
// handler and end-to-end tests.
package testutils

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/amirasaad/networth/infra"
	infra_cache "github.com/amirasaad/networth/infra/cache"
	infra_repository "github.com/amirasaad/networth/infra/repository"
	"github.com/amirasaad/networth/pkg/app"
	"github.com/amirasaad/networth/pkg/config"
	"github.com/amirasaad/networth/pkg/dto"
	"github.com/amirasaad/networth/webapi"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const jwtSecret = "test-secret"

// TestApp is a running API plus the services behind it.
type TestApp struct {
	App    *fiber.App
	Core   *app.App
	Config *config.App
}

// TestConfig returns a jwt-authenticated configuration for the given
// database.
func TestConfig(driver, url string) *config.App {
	return &config.App{
		Env:    "test",
		Server: &config.Server{Scheme: "http", Host: "localhost", Port: 3000},
		Log:    &config.Log{Format: "text"},
		DB: &config.DB{
			Driver:          driver,
			Url:             url,
			MaxOpenConns:    5,
			MaxIdleConns:    5,
			ConnMaxLifetime: time.Hour,
			AutoMigrate:     true,
		},
		Auth: &config.Auth{
			Strategy: config.AuthStrategyJWT,
			Jwt:      &config.Jwt{Secret: jwtSecret, Expiry: time.Hour},
		},
		Redis:     &config.Redis{},
		RateLimit: &config.RateLimit{MaxRequests: 10000, Window: time.Minute},
		Dashboard: &config.Dashboard{CacheTTL: time.Minute},
	}
}

// NewSQLiteApp builds the API over a fresh SQLite file owned by t.
func NewSQLiteApp(t *testing.T) *TestApp {
	t.Helper()
	url := filepath.Join(t.TempDir(), "networth.db")
	return NewApp(t, TestConfig(config.DriverSQLite, url))
}

// NewApp connects to the configured database, migrates it and wires the
// API the same way the server does, minus Redis.
func NewApp(t testing.TB, cfg *config.App) *TestApp {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	require.NoError(t, err)
	require.NoError(t, infra.Migrate(db, cfg.DB, logger))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	core, err := app.New(&app.Deps{
		Uow:            infra_repository.NewUoW(db),
		DashboardCache: infra_cache.NoopDashboardCache{},
		DB:             infra.NewDBPinger(db),
		Logger:         logger,
	}, cfg)
	require.NoError(t, err)
	return &TestApp{App: webapi.SetupApp(core), Core: core, Config: cfg}
}

// Request sends a request to the API. body is sent as JSON when set.
func (a *TestApp) Request(t testing.TB, method, path, body, token string) *http.Response {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := a.App.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// CreateUser stores a user with a random email and returns it with a
// bearer token for it.
func (a *TestApp) CreateUser(t testing.TB) (*dto.UserRead, string) {
	t.Helper()
	ctx := context.Background()
	email := fmt.Sprintf("test_%s@example.com", uuid.New().String()[:8])
	u, err := a.Core.UserService.UpsertByEmail(ctx, email, "Test User")
	require.NoError(t, err)
	token, err := a.Core.AuthService.GenerateToken(ctx, u)
	require.NoError(t, err)
	return u, token
}

// Decode reads a JSON response body into T.
func Decode[T any](t testing.TB, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close() //nolint:errcheck
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

// E2ETestSuite runs against a real Postgres started with Testcontainers.
type E2ETestSuite struct {
	suite.Suite
	*TestApp
	pgContainer *tcpostgres.PostgresContainer
}

func (s *E2ETestSuite) startPostgresContainer(ctx context.Context) (*tcpostgres.PostgresContainer, error) {
	return tcpostgres.Run(
		ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(30*time.Second),
		),
	)
}

// SetupSuite starts Postgres, applies the SQL migrations and builds the
// API. Without Docker the suite is skipped.
func (s *E2ETestSuite) SetupSuite() {
	if testing.Short() {
		s.T().Skip("skipping postgres e2e suite in short mode")
	}
	ctx := context.Background()
	pg, err := s.startPostgresContainer(ctx)
	if err != nil {
		s.T().Skipf("docker not available: %v", err)
	}
	s.pgContainer = pg

	dsn, err := pg.ConnectionString(ctx, "sslmode=disable")
	s.Require().NoError(err)
	s.TestApp = NewApp(s.T(), TestConfig(config.DriverPostgres, dsn))
}

// TearDownSuite stops the container.
func (s *E2ETestSuite) TearDownSuite() {
	if s.pgContainer != nil {
		_ = s.pgContainer.Terminate(context.Background())
	}
}

// CreateLineItem creates a category of the given type and one line item
// in it through the API and returns the line item.
func (a *TestApp) CreateLineItem(t testing.TB, token, typ, category, name string) *dto.LineItemRead {
	t.Helper()
	resp := a.Request(t, http.MethodPost, "/api/categories",
		fmt.Sprintf(`{"name":%q,"type":%q}`, category, typ), token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	cat := Decode[dto.CategoryRead](t, resp)

	resp = a.Request(t, http.MethodPost, "/api/line-items",
		fmt.Sprintf(`{"categoryId":%q,"name":%q}`, cat.ID, name), token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	item := Decode[dto.LineItemRead](t, resp)
	return &item
}
