package lineitem_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/amirasaad/networth/pkg/dto"
	"github.com/amirasaad/networth/webapi/common"
	"github.com/amirasaad/networth/webapi/testutils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineItems(t *testing.T) {
	api := testutils.NewSQLiteApp(t)
	_, token := api.CreateUser(t)
	item := api.CreateLineItem(t, token, "ASSET", "Cash", "Checking")
	assert.Equal(t, "Checking", item.Name)

	resp := api.Request(t, http.MethodPut, "/api/line-items/"+item.ID.String(), `{"name":"Savings"}`, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	renamed := testutils.Decode[dto.LineItemRead](t, resp)
	assert.Equal(t, "Savings", renamed.Name)
	assert.Equal(t, item.CategoryID, renamed.CategoryID)

	resp = api.Request(t, http.MethodGet, "/api/categories", "", token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	cats := testutils.Decode[[]dto.CategoryRead](t, resp)
	require.Len(t, cats, 1)
	require.Len(t, cats[0].LineItems, 1)
	assert.Equal(t, "Savings", cats[0].LineItems[0].Name)
}

func TestCreateLineItem_Rejections(t *testing.T) {
	api := testutils.NewSQLiteApp(t)
	_, token := api.CreateUser(t)
	_, otherToken := api.CreateUser(t)
	theirs := api.CreateLineItem(t, otherToken, "ASSET", "Cash", "Checking")

	tests := []struct {
		name    string
		body    string
		status  int
		message string
	}{
		{"missing name", fmt.Sprintf(`{"categoryId":%q}`, theirs.CategoryID), http.StatusBadRequest, "categoryId and name are required"},
		{"missing category", `{"name":"Checking"}`, http.StatusBadRequest, "categoryId and name are required"},
		{"foreign category", fmt.Sprintf(`{"categoryId":%q,"name":"Mine"}`, theirs.CategoryID), http.StatusNotFound, "Category not found"},
		{"unknown category", fmt.Sprintf(`{"categoryId":%q,"name":"Mine"}`, uuid.New()), http.StatusNotFound, "Category not found"},
		{"malformed category", `{"categoryId":"nope","name":"Mine"}`, http.StatusNotFound, "Category not found"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp := api.Request(t, http.MethodPost, "/api/line-items", tc.body, token)
			assert.Equal(t, tc.status, resp.StatusCode)
			assert.Equal(t, tc.message, testutils.Decode[common.ErrorResponse](t, resp).Error)
		})
	}
}

func TestRenameLineItem_Rejections(t *testing.T) {
	api := testutils.NewSQLiteApp(t)
	_, token := api.CreateUser(t)
	_, otherToken := api.CreateUser(t)
	item := api.CreateLineItem(t, token, "ASSET", "Cash", "Checking")
	path := "/api/line-items/" + item.ID.String()

	resp := api.Request(t, http.MethodPut, path, `{"name":"Stolen"}`, otherToken)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = api.Request(t, http.MethodPut, path, `{"name":"  "}`, token)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Name is required", testutils.Decode[common.ErrorResponse](t, resp).Error)
}
