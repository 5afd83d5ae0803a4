package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/nodirbekm/koreancosmetics/app/handlers"
	"github.com/nodirbekm/koreancosmetics/app/helpers"
	"github.com/nodirbekm/koreancosmetics/app/middlewares"
	"github.com/nodirbekm/koreancosmetics/app/models"
	"github.com/nodirbekm/koreancosmetics/app/repositories"
)

var testJWTSecret = []byte("test-secret")

func newNotificationRouter(t *testing.T) (*gorm.DB, *mux.Router) {
	t.Helper()

	db := newTestDB(t)
	h := handlers.NewNotificationHandler(newTestRender(), repositories.NewNotificationRepository(db))

	router := mux.NewRouter()
	router.Use(middlewares.BearerAuthMiddleware(testJWTSecret))
	router.HandleFunc("/api/notifications/", middlewares.RequireAuth(h.List)).Methods("GET")
	router.HandleFunc("/api/notifications/{id}/read", middlewares.RequireAuth(h.MarkRead)).Methods("POST")
	return db, router
}

func seedOrderNotification(t *testing.T, db *gorm.DB, email string) (*models.User, *models.Notification) {
	t.Helper()

	user := &models.User{FirstName: "Test", Email: email, Password: "x"}
	require.NoError(t, db.Create(user).Error)

	order := &models.Order{
		UserID:        &user.ID,
		Items:         models.OrderItems{{Title: "Cleanser", Price: 50000, Quantity: 1}},
		PaymentMethod: models.PaymentCash,
	}
	require.NoError(t, db.Create(order).Error)

	notification := &models.Notification{NotifType: models.NotifTypeOrder, OrderID: order.ID, Message: "Новый заказ"}
	require.NoError(t, db.Create(notification).Error)
	return user, notification
}

func bearerRequest(t *testing.T, method, target string, user *models.User) *http.Request {
	t.Helper()

	req := httptest.NewRequest(method, target, nil)
	token, err := helpers.GenerateToken(testJWTSecret, user)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestNotificationListRequiresAuth(t *testing.T) {
	_, router := newNotificationRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/notifications/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.JSONEq(t, `{"detail": "Authentication credentials were not provided."}`, rec.Body.String())
}

func TestNotificationListReturnsOwnNotifications(t *testing.T) {
	db, router := newNotificationRouter(t)

	owner, notification := seedOrderNotification(t, db, "owner@example.com")
	seedOrderNotification(t, db, "stranger@example.com")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, bearerRequest(t, http.MethodGet, "/api/notifications/", owner))

	require.Equal(t, http.StatusOK, rec.Code)

	var out []struct {
		ID      uint   `json:"id"`
		Message string `json:"message"`
		IsRead  bool   `json:"is_read"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Len(t, out, 1)
	require.Equal(t, notification.ID, out[0].ID)
	require.Equal(t, "Новый заказ", out[0].Message)
	require.False(t, out[0].IsRead)
}

func TestMarkReadForeignNotificationIs404(t *testing.T) {
	db, router := newNotificationRouter(t)

	_, notification := seedOrderNotification(t, db, "owner@example.com")
	stranger, _ := seedOrderNotification(t, db, "stranger@example.com")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, bearerRequest(t, http.MethodPost, fmt.Sprintf("/api/notifications/%d/read", notification.ID), stranger))

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"error": "Not found"}`, rec.Body.String())

	// The foreign record stays untouched.
	var reloaded models.Notification
	require.NoError(t, db.First(&reloaded, notification.ID).Error)
	require.False(t, reloaded.IsRead)
}

func TestMarkReadOwnNotification(t *testing.T) {
	db, router := newNotificationRouter(t)

	owner, notification := seedOrderNotification(t, db, "owner@example.com")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, bearerRequest(t, http.MethodPost, fmt.Sprintf("/api/notifications/%d/read", notification.ID), owner))

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status": "ok"}`, rec.Body.String())

	var reloaded models.Notification
	require.NoError(t, db.First(&reloaded, notification.ID).Error)
	require.True(t, reloaded.IsRead)
}

func TestMarkReadUnknownIDIs404(t *testing.T) {
	db, router := newNotificationRouter(t)

	owner, _ := seedOrderNotification(t, db, "owner@example.com")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, bearerRequest(t, http.MethodPost, "/api/notifications/9999/read", owner))

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"error": "Not found"}`, rec.Body.String())
}
