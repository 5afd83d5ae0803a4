package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"github.com/nodirbekm/koreancosmetics/app/handlers"
	"github.com/nodirbekm/koreancosmetics/app/models"
	"github.com/nodirbekm/koreancosmetics/app/repositories"
)

func TestCategoryEndpoints(t *testing.T) {
	db := newTestDB(t)
	h := handlers.NewCategoryHandler(newTestRender(), repositories.NewCategoryRepository(db))

	router := mux.NewRouter()
	router.HandleFunc("/api/categories/", h.List).Methods("GET")
	router.HandleFunc("/api/categories/{slug}/", h.Detail).Methods("GET")

	require.NoError(t, db.Create(&models.Category{Name: "Уход за кожей", Slug: "skincare"}).Error)
	require.NoError(t, db.Create(&models.Category{Name: "Макияж", Slug: "makeup"}).Error)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/categories/", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 2)
	require.Equal(t, "skincare", list[0]["slug"])

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/categories/makeup/", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var detail map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	require.Equal(t, "Макияж", detail["name"])

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/categories/perfume/", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"detail": "Not found."}`, rec.Body.String())
}
