package webapi_test

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/amirasaad/networth/pkg/config"
	"github.com/amirasaad/networth/pkg/currency"
	"github.com/amirasaad/networth/pkg/dto"
	"github.com/amirasaad/networth/webapi/common"
	"github.com/amirasaad/networth/webapi/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sqliteConfig(t *testing.T) *config.App {
	return testutils.TestConfig(config.DriverSQLite, filepath.Join(t.TempDir(), "networth.db"))
}

func TestHealth(t *testing.T) {
	api := testutils.NewSQLiteApp(t)

	resp := api.Request(t, http.MethodGet, "/", "", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = api.Request(t, http.MethodGet, "/healthz", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, testutils.Decode[common.SuccessResponse](t, resp).Success)
}

func TestCurrencies_ArePublic(t *testing.T) {
	api := testutils.NewSQLiteApp(t)

	resp := api.Request(t, http.MethodGet, "/api/currencies", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := testutils.Decode[[]currency.Meta](t, resp)
	require.NotEmpty(t, list)
	assert.Equal(t, currency.DefaultCurrency, list[0].Code)
}

func TestSession(t *testing.T) {
	api := testutils.NewSQLiteApp(t)
	u, token := api.CreateUser(t)

	resp := api.Request(t, http.MethodGet, "/api/auth/session", "", token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	s := testutils.Decode[dto.Session](t, resp)
	assert.Equal(t, u.ID, s.User.ID)
	assert.Equal(t, u.Email, s.User.Email)

	resp = api.Request(t, http.MethodGet, "/api/auth/session", "", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestSession_DevStrategy(t *testing.T) {
	cfg := sqliteConfig(t)
	cfg.Auth.Strategy = config.AuthStrategyDev
	api := testutils.NewApp(t, cfg)

	resp := api.Request(t, http.MethodGet, "/api/auth/session", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	first := testutils.Decode[dto.Session](t, resp)
	assert.Equal(t, "dev@localhost", first.User.Email)

	resp = api.Request(t, http.MethodGet, "/api/auth/session", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, first.User.ID, testutils.Decode[dto.Session](t, resp).User.ID)
}

func TestRateLimit(t *testing.T) {
	cfg := sqliteConfig(t)
	cfg.RateLimit.MaxRequests = 2
	api := testutils.NewApp(t, cfg)

	get := func(forwardedFor string) *http.Response {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Forwarded-For", forwardedFor)
		resp, err := api.App.Test(req, -1)
		require.NoError(t, err)
		return resp
	}

	assert.Equal(t, http.StatusOK, get("10.0.0.1").StatusCode)
	assert.Equal(t, http.StatusOK, get("10.0.0.1, 172.16.0.1").StatusCode)
	resp := get("10.0.0.1")
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "Too Many Requests", testutils.Decode[common.ErrorResponse](t, resp).Error)

	assert.Equal(t, http.StatusOK, get("10.0.0.2").StatusCode)
}
