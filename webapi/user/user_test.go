package user_test

import (
	"net/http"
	"testing"

	"github.com/amirasaad/networth/pkg/dto"
	"github.com/amirasaad/networth/webapi/common"
	"github.com/amirasaad/networth/webapi/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettings(t *testing.T) {
	api := testutils.NewSQLiteApp(t)
	_, token := api.CreateUser(t)

	resp := api.Request(t, http.MethodGet, "/api/settings", "", token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "INR", testutils.Decode[dto.Settings](t, resp).Currency)

	resp = api.Request(t, http.MethodPatch, "/api/settings", `{"currency":"USD"}`, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "USD", testutils.Decode[dto.Settings](t, resp).Currency)

	resp = api.Request(t, http.MethodGet, "/api/settings", "", token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "USD", testutils.Decode[dto.Settings](t, resp).Currency)
}

func TestUpdateSettings_RejectsUnknownCurrency(t *testing.T) {
	api := testutils.NewSQLiteApp(t)
	_, token := api.CreateUser(t)

	for _, body := range []string{`{"currency":"usd"}`, `{"currency":"XYZ"}`, `{}`} {
		resp := api.Request(t, http.MethodPatch, "/api/settings", body, token)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, body)
		assert.Equal(t, "Invalid currency", testutils.Decode[common.ErrorResponse](t, resp).Error, body)
	}
}
