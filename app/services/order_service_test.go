package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/nodirbekm/koreancosmetics/app/models"
	"github.com/nodirbekm/koreancosmetics/app/repositories"
	"github.com/nodirbekm/koreancosmetics/app/services"
)

func newOrderService(t *testing.T) (*gorm.DB, *services.OrderService) {
	t.Helper()

	db := newTestDB(t)
	svc := services.NewOrderService(
		db,
		repositories.NewOrderRepository(db),
		repositories.NewProfileRepository(db),
		repositories.NewUserRepository(db),
		repositories.NewNotificationRepository(db),
		nil,
		"",
	)
	return db, svc
}

func TestPlaceGuestOrderSynthesizesNotification(t *testing.T) {
	db, svc := newOrderService(t)
	ctx := context.Background()

	order, err := svc.Place(ctx, 0, services.OrderInput{
		Items: []models.OrderItem{
			{ID: 1, Title: "Cleanser", Price: 50000, Quantity: 2},
			{ID: 2, Title: "Toner", Price: 80000, Quantity: 1},
		},
		PaymentMethod: models.PaymentCash,
		CustomerPhone: "+998901234567",
	})
	require.NoError(t, err)
	require.NotZero(t, order.ID)
	require.Nil(t, order.UserID)

	var notifications []models.Notification
	require.NoError(t, db.Find(&notifications).Error)
	require.Len(t, notifications, 1)

	n := notifications[0]
	require.Equal(t, models.NotifTypeOrder, n.NotifType)
	require.Equal(t, order.ID, n.OrderID)
	require.False(t, n.IsRead)

	require.Contains(t, n.Message, fmt.Sprintf("Новый заказ #%d", order.ID))
	require.Contains(t, n.Message, "Пользователь: Guest")
	require.Contains(t, n.Message, "Оплата: Наличными")
	require.Contains(t, n.Message, "Всего товаров: 3")
	require.Contains(t, n.Message, "Cleanser × 2 — 100000 UZS")
	require.Contains(t, n.Message, "Toner × 1 — 80000 UZS")
}

func TestPlaceFillsMissingFieldsFromProfile(t *testing.T) {
	db, svc := newOrderService(t)
	ctx := context.Background()

	user := &models.User{FirstName: "Aziza", Email: "aziza@example.com", Password: "x"}
	require.NoError(t, db.Create(user).Error)
	profile := &models.Profile{
		UserID:  &user.ID,
		Name:    "Азиза",
		Surname: "Каримова",
		Phone:   "+998935550011",
		Address: "Ташкент, Чиланзар",
	}
	require.NoError(t, db.Create(profile).Error)

	order, err := svc.Place(ctx, user.ID, services.OrderInput{
		Items:         []models.OrderItem{{Title: "Cream", Price: 120000, Quantity: 1}},
		PaymentMethod: models.PaymentPayme,
		CustomerPhone: "+998000000000",
	})
	require.NoError(t, err)

	// Payload values win per field, the profile only fills the gaps.
	require.Equal(t, "Азиза", order.CustomerName)
	require.Equal(t, "Каримова", order.CustomerSurname)
	require.Equal(t, "+998000000000", order.CustomerPhone)
	require.Equal(t, "Ташкент, Чиланзар", order.CustomerAddress)

	var n models.Notification
	require.NoError(t, db.First(&n, "order_id = ?", order.ID).Error)
	require.Contains(t, n.Message, "Пользователь: Азиза Каримова")
}

func TestOrderSnapshotSurvivesProfileEdit(t *testing.T) {
	db, svc := newOrderService(t)
	ctx := context.Background()

	user := &models.User{FirstName: "Aziza", Email: "aziza@example.com", Password: "x"}
	require.NoError(t, db.Create(user).Error)
	profile := &models.Profile{UserID: &user.ID, Name: "Азиза", Phone: "+998935550011"}
	require.NoError(t, db.Create(profile).Error)

	order, err := svc.Place(ctx, user.ID, services.OrderInput{
		Items:         []models.OrderItem{{Title: "Cream", Price: 120000, Quantity: 1}},
		PaymentMethod: models.PaymentCash,
	})
	require.NoError(t, err)

	profile.Name = "Зарина"
	profile.Phone = "+998900000000"
	require.NoError(t, db.Save(profile).Error)

	var reloaded models.Order
	require.NoError(t, db.First(&reloaded, order.ID).Error)
	require.Equal(t, "Азиза", reloaded.CustomerName)
	require.Equal(t, "+998935550011", reloaded.CustomerPhone)
}

func TestPlaceStoresUnknownPaymentMethodVerbatim(t *testing.T) {
	db, svc := newOrderService(t)
	ctx := context.Background()

	order, err := svc.Place(ctx, 0, services.OrderInput{
		Items:         []models.OrderItem{{Title: "Mask", Price: 30000, Quantity: 1}},
		PaymentMethod: "crypto",
	})
	require.NoError(t, err)
	require.Equal(t, "crypto", order.PaymentMethod)

	var n models.Notification
	require.NoError(t, db.First(&n, "order_id = ?", order.ID).Error)
	require.Contains(t, n.Message, "Оплата: crypto")
}

func TestPlaceWithoutItems(t *testing.T) {
	db, svc := newOrderService(t)
	ctx := context.Background()

	order, err := svc.Place(ctx, 0, services.OrderInput{PaymentMethod: models.PaymentCash})
	require.NoError(t, err)
	require.NotZero(t, order.ID)

	var reloaded models.Order
	require.NoError(t, db.First(&reloaded, order.ID).Error)
	require.Zero(t, reloaded.TotalItems())
	require.Zero(t, reloaded.GrandTotal())

	var n models.Notification
	require.NoError(t, db.First(&n, "order_id = ?", order.ID).Error)
	require.Contains(t, n.Message, "Всего товаров: 0")
}

func TestPlaceUserWithoutProfileFallsBackToUserRecord(t *testing.T) {
	db, svc := newOrderService(t)
	ctx := context.Background()

	user := &models.User{FirstName: "Nodir", LastName: "Mirzaev", Email: "nodir@example.com", Phone: "+998971112233", Password: "x"}
	require.NoError(t, db.Create(user).Error)

	order, err := svc.Place(ctx, user.ID, services.OrderInput{
		Items:         []models.OrderItem{{Title: "Serum", Price: 150000, Quantity: 1}},
		PaymentMethod: models.PaymentClick,
	})
	require.NoError(t, err)

	// No profile: the order contact fields stay as submitted (empty here),
	// the notification falls back to the user record.
	require.Empty(t, order.CustomerName)

	var n models.Notification
	require.NoError(t, db.First(&n, "order_id = ?", order.ID).Error)
	require.Contains(t, n.Message, "Пользователь: Nodir Mirzaev")
	require.Contains(t, n.Message, "Email: nodir@example.com")
	require.Contains(t, n.Message, "Телефон: +998971112233")
}
