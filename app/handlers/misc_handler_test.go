package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nodirbekm/koreancosmetics/app/handlers"
)

func TestCSRFCookieEndpoint(t *testing.T) {
	h := handlers.CSRFCookie(newTestRender())

	req := httptest.NewRequest(http.MethodGet, "/api/csrf/", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"detail": "CSRF cookie set"}`, rec.Body.String())
}

func TestSPAFallbackServesIndex(t *testing.T) {
	dir := t.TempDir()
	indexPath := filepath.Join(dir, "index.html")
	require.NoError(t, os.WriteFile(indexPath, []byte("<!DOCTYPE html><div id=\"app\"></div>"), 0o644))

	h := handlers.SPAFallback(indexPath)

	// Any client-side route gets the same shell.
	for _, target := range []string{"/", "/catalog", "/product/42"} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `<div id="app">`)
	}
}
