package account_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/amirasaad/networth/webapi/common"
	"github.com/amirasaad/networth/webapi/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteAccount(t *testing.T) {
	api := testutils.NewSQLiteApp(t)
	_, token := api.CreateUser(t)
	_, otherToken := api.CreateUser(t)
	item := api.CreateLineItem(t, token, "ASSET", "Cash", "Checking")
	api.CreateLineItem(t, otherToken, "ASSET", "Cash", "Checking")
	resp := api.Request(t, http.MethodPost, "/api/snapshots",
		fmt.Sprintf(`{"items":[{"lineItemId":%q,"value":1}]}`, item.ID), token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = api.Request(t, http.MethodDelete, "/api/account", "", token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, testutils.Decode[common.SuccessResponse](t, resp).Success)

	// the token still verifies but no longer names a user
	resp = api.Request(t, http.MethodGet, "/api/snapshots", "", token)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = api.Request(t, http.MethodGet, "/api/categories", "", otherToken)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
