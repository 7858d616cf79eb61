package server

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enseco-data/wellstim/internal/entity"
	"github.com/enseco-data/wellstim/internal/repository"
)

func newTestHandler(t *testing.T, seed []map[string]any) http.Handler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store, err := repository.Open(context.Background(), repository.Config{InMemory: true}, logger)
	require.NoError(t, err)
	t.Cleanup(store.Close)
	require.NoError(t, store.Bootstrap(context.Background()))

	for _, w := range seed {
		_, err := store.UpsertDocument(context.Background(), w, nil, "seed.pdf")
		require.NoError(t, err)
	}
	return New(repository.NewWellRepository(store, logger), logger).Handler()
}

func TestHealthEndpoint(t *testing.T) {
	handler := newTestHandler(t, nil)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestListWellsEmptyIsJSONArray(t *testing.T) {
	handler := newTestHandler(t, nil)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/wells", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestListWells(t *testing.T) {
	handler := newTestHandler(t, []map[string]any{
		{"api": "42-123-00002", "operator": "Zenith Energy", "well_name": "Aspen 1H"},
		{"api": "42-123-00001", "operator": "Acme Operating Co", "well_name": "Bighorn 2H"},
	})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/wells", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var wells []entity.Well
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &wells))
	require.Len(t, wells, 2)
	assert.Equal(t, "42-123-00001", wells[0].API)
	assert.Equal(t, "42-123-00002", wells[1].API)
}

func TestGetWellByAPI(t *testing.T) {
	handler := newTestHandler(t, []map[string]any{
		{"api": "42-123-45678", "operator": "Acme Operating Co"},
	})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/wells/42-123-45678", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var well entity.Well
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &well))
	assert.Equal(t, "42-123-45678", well.API)
	require.NotNil(t, well.Operator)
	assert.Equal(t, "Acme Operating Co", *well.Operator)
}

func TestGetWellNotFound(t *testing.T) {
	handler := newTestHandler(t, nil)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/wells/00-000-00000", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "not found")
}

func TestRequestIDPropagation(t *testing.T) {
	handler := newTestHandler(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get(requestIDHeader))

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	assert.NotEmpty(t, rec.Header().Get(requestIDHeader))
}
