package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/nodirbekm/koreancosmetics/app/handlers"
	"github.com/nodirbekm/koreancosmetics/app/models"
	"github.com/nodirbekm/koreancosmetics/app/repositories"
)

func newNewsRouter(t *testing.T) (*gorm.DB, *mux.Router) {
	t.Helper()

	db := newTestDB(t)
	h := handlers.NewNewsHandler(newTestRender(), repositories.NewNewsRepository(db))

	router := mux.NewRouter()
	router.HandleFunc("/api/news/", h.List).Methods("GET")
	router.HandleFunc("/api/news/{id:[0-9]+}/", h.Detail).Methods("GET")
	return db, router
}

func TestNewsListFeaturedFirst(t *testing.T) {
	db, router := newNewsRouter(t)

	now := time.Now()
	older := &models.News{TitleRu: "Старая новость", IsFeatured: true, CreatedAt: now.Add(-48 * time.Hour)}
	newer := &models.News{TitleRu: "Свежая новость", CreatedAt: now}
	require.NoError(t, db.Create(older).Error)
	require.NoError(t, db.Create(newer).Error)

	req := httptest.NewRequest(http.MethodGet, "/api/news/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var out []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Len(t, out, 2)

	// Featured wins over recency.
	require.Equal(t, "Старая новость", out[0]["title"])
	require.Equal(t, true, out[0]["is_featured"])
	require.Equal(t, "Свежая новость", out[1]["title"])
}

func TestNewsLocalizationFallback(t *testing.T) {
	db, router := newNewsRouter(t)

	news := &models.News{
		TitleRu: "Новая коллекция",
		TitleUz: "Yangi kolleksiya",
		DescRu:  "Описание",
	}
	require.NoError(t, db.Create(news).Error)

	req := httptest.NewRequest(http.MethodGet, "/api/news/?lang=uz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var out []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Len(t, out, 1)
	require.Equal(t, "Yangi kolleksiya", out[0]["title"])
	// No Uzbek text, the description falls back to Russian.
	require.Equal(t, "Описание", out[0]["desc"])

	// English translation is missing entirely, both fall back.
	req = httptest.NewRequest(http.MethodGet, "/api/news/?lang=en", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Equal(t, "Новая коллекция", out[0]["title"])
}
