package repositories

import (
	"context"
	"errors"

	"github.com/nodirbekm/koreancosmetics/app/models"
	"gorm.io/gorm"
)

type NotificationRepository interface {
	Create(ctx context.Context, notification *models.Notification) error
	// FindByOrderOwner lists every notification whose order belongs to the
	// given user, newest first.
	FindByOrderOwner(ctx context.Context, userID uint) ([]models.Notification, error)
	// FindOwnedByID resolves one notification only when its order belongs
	// to the given user; foreign and unknown ids both come back nil.
	FindOwnedByID(ctx context.Context, id, userID uint) (*models.Notification, error)
	MarkRead(ctx context.Context, id uint) error
	GetPaginated(ctx context.Context, limit, offset int) ([]models.Notification, int64, error)
	CountUnread(ctx context.Context) (int64, error)
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, notification *models.Notification) error {
	return r.db.WithContext(ctx).Create(notification).Error
}

func (r *notificationRepository) FindByOrderOwner(ctx context.Context, userID uint) ([]models.Notification, error) {
	var notifications []models.Notification
	err := r.db.WithContext(ctx).
		Joins("JOIN orders ON orders.id = notifications.order_id").
		Where("orders.user_id = ?", userID).
		Order("notifications.created_at DESC").
		Find(&notifications).Error
	return notifications, err
}

func (r *notificationRepository) FindOwnedByID(ctx context.Context, id, userID uint) (*models.Notification, error) {
	var notification models.Notification
	err := r.db.WithContext(ctx).
		Joins("JOIN orders ON orders.id = notifications.order_id").
		Where("notifications.id = ? AND orders.user_id = ?", id, userID).
		First(&notification).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &notification, nil
}

func (r *notificationRepository) MarkRead(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("id = ?", id).
		Update("is_read", true).Error
}

func (r *notificationRepository) GetPaginated(ctx context.Context, limit, offset int) ([]models.Notification, int64, error) {
	var notifications []models.Notification
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Notification{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Preload("Order").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&notifications).Error

	return notifications, total, err
}

func (r *notificationRepository) CountUnread(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("is_read = ?", false).
		Count(&count).Error
	return count, err
}
