package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeImporter struct {
	imported int
	records  []map[string]any
	cleared  bool
}

func (f *fakeImporter) Import(_ context.Context, records []map[string]any) (int, error) {
	f.records = records
	return f.imported, nil
}

func (f *fakeImporter) Clear(context.Context) error {
	f.cleared = true
	return nil
}

func TestImportUsers_RejectsNonArrayBody(t *testing.T) {
	handler := NewUserHandler(&fakeImporter{})

	req := httptest.NewRequest(http.MethodPost, "/api/import-users", strings.NewReader(`{"name":"Alice"}`))
	rec := httptest.NewRecorder()
	handler.Import(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "JSON array")
}

func TestImportUsers_ReturnsCount(t *testing.T) {
	importer := &fakeImporter{imported: 3}
	handler := NewUserHandler(importer)

	body := `[{"email":"a@example.com"},{"email":"b@example.com"},{"email":"c@example.com"}]`
	req := httptest.NewRequest(http.MethodPost, "/api/import-users", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.Import(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, importer.records, 3)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Imported int `json:"imported"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 3, resp.Data.Imported)
}

func TestClearUsers(t *testing.T) {
	importer := &fakeImporter{}
	handler := NewUserHandler(importer)

	req := httptest.NewRequest(http.MethodPost, "/api/clear-users", nil)
	rec := httptest.NewRecorder()
	handler.Clear(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, importer.cleared)
}
