package export_test

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/amirasaad/networth/webapi/common"
	"github.com/amirasaad/networth/webapi/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func seed(t *testing.T, api *testutils.TestApp, token string) {
	t.Helper()
	cash := api.CreateLineItem(t, token, "ASSET", "Cash", "Checking, main")
	loan := api.CreateLineItem(t, token, "LIABILITY", "Loans", "Car")
	resp := api.Request(t, http.MethodPost, "/api/snapshots", fmt.Sprintf(`{
		"label": "Year \"end\"",
		"items": [{"lineItemId": %q, "value": 1500.5}, {"lineItemId": %q, "value": 200}]
	}`, cash.ID, loan.ID), token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestExportCSV(t *testing.T) {
	api := testutils.NewSQLiteApp(t)
	_, token := api.CreateUser(t)
	seed(t, api, token)

	resp := api.Request(t, http.MethodGet, "/api/export", "", token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/csv", resp.Header.Get("Content-Type"))
	assert.Regexp(t, `^attachment; filename="networth-export-\d{4}-\d{2}-\d{2}\.csv"$`,
		resp.Header.Get("Content-Disposition"))

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	lines := strings.Split(string(raw), "\n")
	require.GreaterOrEqual(t, len(lines), 7)
	assert.Equal(t, "Snapshot Date,Snapshot Label,Snapshot Note,Type,Category,Line Item,Value", lines[0])
	assert.Contains(t, lines[1], `,"Year ""end""",,ASSET,Cash,"Checking, main",1500.50`)
	assert.Contains(t, lines[2], `,LIABILITY,Loans,Car,200.00`)
	assert.True(t, strings.HasSuffix(lines[3], ",SUMMARY,Total Assets,,1500.50"))
	assert.True(t, strings.HasSuffix(lines[4], ",SUMMARY,Total Liabilities,,200.00"))
	assert.True(t, strings.HasSuffix(lines[5], ",SUMMARY,Net Worth,,1300.50"))
	assert.Equal(t, "", lines[6])
}

func TestExportXLSX(t *testing.T) {
	api := testutils.NewSQLiteApp(t)
	_, token := api.CreateUser(t)
	seed(t, api, token)

	resp := api.Request(t, http.MethodGet, "/api/export?format=xlsx", "", token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		resp.Header.Get("Content-Type"))

	f, err := excelize.OpenReader(resp.Body)
	require.NoError(t, err)
	defer f.Close() //nolint:errcheck
	rows, err := f.GetRows("Snapshots")
	require.NoError(t, err)
	require.NotEmpty(t, rows)
	assert.Equal(t, "Snapshot Date", rows[0][0])
	assert.Equal(t, "Line Item", rows[0][5])
	assert.Equal(t, "Checking, main", rows[1][5])
}

func TestExport_InvalidFormat(t *testing.T) {
	api := testutils.NewSQLiteApp(t)
	_, token := api.CreateUser(t)

	resp := api.Request(t, http.MethodGet, "/api/export?format=pdf", "", token)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid format", testutils.Decode[common.ErrorResponse](t, resp).Error)
}
