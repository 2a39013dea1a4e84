package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toolscout/toolscout/internal/compare"
)

func TestCompareResolveMatch(t *testing.T) {
	router := newTestRouter(t, newMockStore(), &mockEvents{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/compare/apollo-vs-zoominfo", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var pair compare.Pair
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&pair))
	assert.Equal(t, "apollo-vs-zoominfo", pair.Canonical)
	assert.Contains(t, pair.Aliases, "zoominfo-vs-apollo")
}

func TestCompareResolveRedirect(t *testing.T) {
	ev := &mockEvents{}
	router := newTestRouter(t, newMockStore(), ev)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/compare/ZoomInfo-vs-Apollo", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusMovedPermanently, rec.Code)
	assert.Equal(t, "/api/v1/compare/apollo-vs-zoominfo", rec.Header().Get("Location"))

	var res compare.Resolution
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	assert.Equal(t, compare.OutcomeRedirect, res.Type)
	assert.Equal(t, "apollo-vs-zoominfo", res.Target)

	// Redirects are known comparisons; no miss event.
	assert.Empty(t, ev.published())
}

func TestCompareResolveUnknown(t *testing.T) {
	ev := &mockEvents{}
	router := newTestRouter(t, newMockStore(), ev)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/compare/apollo-vs-hubspot", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var res compare.Resolution
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	assert.Equal(t, compare.OutcomeUnknown, res.Type)
	assert.LessOrEqual(t, len(res.Suggestions), 5)
	assert.Contains(t, res.Suggestions, "apollo-vs-zoominfo")

	// Misses are published so editorial knows which pages to write.
	require.Len(t, ev.published(), 1)
	assert.Equal(t, "site.compare.miss", ev.published()[0])
}
