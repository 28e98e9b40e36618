package snapshot_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/amirasaad/networth/pkg/domain/snapshot"
	"github.com/amirasaad/networth/pkg/dto"
	"github.com/amirasaad/networth/webapi/common"
	"github.com/amirasaad/networth/webapi/testutils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotLifecycle(t *testing.T) {
	api := testutils.NewSQLiteApp(t)
	_, token := api.CreateUser(t)
	cash := api.CreateLineItem(t, token, "ASSET", "Cash", "Checking")
	loan := api.CreateLineItem(t, token, "LIABILITY", "Loans", "Mortgage")

	body := fmt.Sprintf(`{
		"label": "Q1",
		"date": "2026-03-31",
		"items": [
			{"lineItemId": %q, "value": 0.1},
			{"lineItemId": %q, "value": "0.2"},
			{"lineItemId": %q, "value": 5},
			{"lineItemId": %q, "value": 1000.005}
		]
	}`, cash.ID, cash.ID, cash.ID, loan.ID)
	resp := api.Request(t, http.MethodPost, "/api/snapshots", body, token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := testutils.Decode[dto.SnapshotRead](t, resp)

	assert.Equal(t, "5.3", created.TotalAssets.String())
	assert.Equal(t, "1000.01", created.TotalLiabs.String())
	assert.Equal(t, "-994.71", created.NetWorth.String())
	assert.True(t, created.Date.Equal(time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)))
	require.NotNil(t, created.Label)
	assert.Equal(t, "Q1", *created.Label)

	resp = api.Request(t, http.MethodGet, "/api/snapshots", "", token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := testutils.Decode[[]dto.SnapshotSummary](t, resp)
	require.Len(t, list, 1)
	assert.Equal(t, int64(4), list[0].Count.Items)

	path := "/api/snapshots/" + created.ID.String()
	resp = api.Request(t, http.MethodGet, path, "", token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	detail := testutils.Decode[dto.SnapshotDetail](t, resp)
	require.Len(t, detail.Items, 4)
	assert.Equal(t, "Checking", detail.Items[0].LineItem.Name)
	assert.Equal(t, "Cash", detail.Items[0].LineItem.Category.Name)

	resp = api.Request(t, http.MethodGet, path+"/breakdown", "", token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	groups := testutils.Decode[[]snapshot.CategoryTotal](t, resp)
	require.Len(t, groups, 2)
	assert.Equal(t, "Cash", groups[0].Name)
	assert.Equal(t, "5.3", groups[0].Total.String())
	assert.Equal(t, "Loans", groups[1].Name)
	assert.Equal(t, "1000.01", groups[1].Total.String())

	resp = api.Request(t, http.MethodDelete, path, "", token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, testutils.Decode[common.SuccessResponse](t, resp).Success)

	resp = api.Request(t, http.MethodGet, path, "", token)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreateSnapshot_Rejections(t *testing.T) {
	api := testutils.NewSQLiteApp(t)
	_, token := api.CreateUser(t)
	_, otherToken := api.CreateUser(t)
	mine := api.CreateLineItem(t, token, "ASSET", "Cash", "Checking")
	theirs := api.CreateLineItem(t, otherToken, "ASSET", "Cash", "Savings")

	tests := []struct {
		name    string
		body    string
		status  int
		message string
	}{
		{"malformed body", `{"items":`, http.StatusBadRequest, "Invalid request body"},
		{"no items", `{"items":[]}`, http.StatusBadRequest, "At least one item is required"},
		{"bad date", fmt.Sprintf(`{"date":"not-a-date","items":[{"lineItemId":%q,"value":1}]}`, mine.ID),
			http.StatusBadRequest, "Invalid date"},
		{"foreign line item", fmt.Sprintf(`{"items":[{"lineItemId":%q,"value":1},{"lineItemId":%q,"value":2}]}`, mine.ID, theirs.ID),
			http.StatusForbidden, "Invalid line items"},
		{"unknown line item", fmt.Sprintf(`{"items":[{"lineItemId":%q,"value":1}]}`, uuid.New()),
			http.StatusForbidden, "Invalid line items"},
		{"malformed line item id", `{"items":[{"lineItemId":"nope","value":1}]}`,
			http.StatusForbidden, "Invalid line items"},
		{"value beyond stored precision", fmt.Sprintf(`{"items":[{"lineItemId":%q,"value":1e30}]}`, mine.ID),
			http.StatusBadRequest, "Value out of range"},
		{"total beyond stored precision", fmt.Sprintf(`{"items":[{"lineItemId":%q,"value":"600000000000000000"},{"lineItemId":%q,"value":"600000000000000000"}]}`, mine.ID, mine.ID),
			http.StatusBadRequest, "Value out of range"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp := api.Request(t, http.MethodPost, "/api/snapshots", tc.body, token)
			assert.Equal(t, tc.status, resp.StatusCode)
			assert.Equal(t, tc.message, testutils.Decode[common.ErrorResponse](t, resp).Error)
		})
	}

	resp := api.Request(t, http.MethodGet, "/api/snapshots", "", token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, testutils.Decode[[]dto.SnapshotSummary](t, resp))
}

func TestSnapshots_AreScopedToTheirOwner(t *testing.T) {
	api := testutils.NewSQLiteApp(t)
	_, token := api.CreateUser(t)
	_, otherToken := api.CreateUser(t)
	item := api.CreateLineItem(t, token, "ASSET", "Cash", "Checking")

	resp := api.Request(t, http.MethodPost, "/api/snapshots",
		fmt.Sprintf(`{"items":[{"lineItemId":%q,"value":10}]}`, item.ID), token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := testutils.Decode[dto.SnapshotRead](t, resp)
	path := "/api/snapshots/" + created.ID.String()

	for _, req := range []struct{ method, path string }{
		{http.MethodGet, path},
		{http.MethodGet, path + "/breakdown"},
		{http.MethodDelete, path},
		{http.MethodGet, "/api/snapshots/not-a-uuid"},
	} {
		resp := api.Request(t, req.method, req.path, "", otherToken)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, "%s %s", req.method, req.path)
	}

	resp = api.Request(t, http.MethodGet, path, "", token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestSnapshots_RequireAuthentication(t *testing.T) {
	api := testutils.NewSQLiteApp(t)

	resp := api.Request(t, http.MethodGet, "/api/snapshots", "", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Unauthorized", testutils.Decode[common.ErrorResponse](t, resp).Error)

	resp = api.Request(t, http.MethodGet, "/api/snapshots", "", "garbage")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
