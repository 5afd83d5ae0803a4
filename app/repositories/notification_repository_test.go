package repositories_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/nodirbekm/koreancosmetics/app/models"
	"github.com/nodirbekm/koreancosmetics/app/repositories"
)

func seedUserWithOrderNotification(t *testing.T, db *gorm.DB, email string) (*models.User, *models.Notification) {
	t.Helper()

	user := &models.User{FirstName: "Test", Email: email, Password: "x"}
	require.NoError(t, db.Create(user).Error)

	order := &models.Order{
		UserID:        &user.ID,
		Items:         models.OrderItems{{Title: "Cleanser", Price: 50000, Quantity: 1}},
		PaymentMethod: models.PaymentCash,
	}
	require.NoError(t, db.Create(order).Error)

	notification := &models.Notification{
		NotifType: models.NotifTypeOrder,
		OrderID:   order.ID,
		Message:   "Новый заказ #1",
	}
	require.NoError(t, db.Create(notification).Error)
	return user, notification
}

func TestFindOwnedByIDEnforcesOwnership(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewNotificationRepository(db)
	ctx := context.Background()

	owner, notification := seedUserWithOrderNotification(t, db, "owner@example.com")
	stranger, _ := seedUserWithOrderNotification(t, db, "stranger@example.com")

	found, err := repo.FindOwnedByID(ctx, notification.ID, owner.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	require.Equal(t, notification.ID, found.ID)

	// A foreign notification and an unknown id both resolve to nothing.
	found, err = repo.FindOwnedByID(ctx, notification.ID, stranger.ID)
	require.NoError(t, err)
	require.Nil(t, found)

	found, err = repo.FindOwnedByID(ctx, 9999, owner.ID)
	require.NoError(t, err)
	require.Nil(t, found)
}

func TestFindByOrderOwnerListsOnlyOwnNotifications(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewNotificationRepository(db)
	ctx := context.Background()

	owner, notification := seedUserWithOrderNotification(t, db, "owner@example.com")
	seedUserWithOrderNotification(t, db, "stranger@example.com")

	notifications, err := repo.FindByOrderOwner(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	require.Equal(t, notification.ID, notifications[0].ID)
}

func TestMarkRead(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewNotificationRepository(db)
	ctx := context.Background()

	_, notification := seedUserWithOrderNotification(t, db, "owner@example.com")
	require.False(t, notification.IsRead)

	require.NoError(t, repo.MarkRead(ctx, notification.ID))

	var reloaded models.Notification
	require.NoError(t, db.First(&reloaded, notification.ID).Error)
	require.True(t, reloaded.IsRead)

	unread, err := repo.CountUnread(ctx)
	require.NoError(t, err)
	require.Zero(t, unread)
}
