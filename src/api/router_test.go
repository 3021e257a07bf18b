package api_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fintrack-server/src/api"
	sql "fintrack-server/src/db/sql"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouterHealth(t *testing.T) {
	router := api.NewRouter(sql.New(nil, 0), nil, false)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestRouterUnknownRoute(t *testing.T) {
	router := api.NewRouter(sql.New(nil, 0), nil, false)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouterValidationWiredIn(t *testing.T) {
	// The missing-fields path never touches the store or the cache, so a
	// nil-handle store is safe here.
	router := api.NewRouter(sql.New(nil, 0), nil, false)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/budgets", strings.NewReader(`{"category": "Food"}`))
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error": "missing fields"}`, rec.Body.String())
}

func TestRouterReadOnlyMode(t *testing.T) {
	router := api.NewRouter(sql.New(nil, 0), nil, true)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/transactions", strings.NewReader(`{}`))
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
