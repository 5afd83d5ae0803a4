package repositories

import (
	"context"
	"errors"

	"github.com/nodirbekm/koreancosmetics/app/models"
	"gorm.io/gorm"
)

type NewsRepository interface {
	// GetAll lists news featured-first, then newest-first.
	GetAll(ctx context.Context) ([]models.News, error)
	GetByID(ctx context.Context, id uint) (*models.News, error)
	Create(ctx context.Context, news *models.News) error
	Update(ctx context.Context, news *models.News) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

type newsRepository struct {
	db *gorm.DB
}

func NewNewsRepository(db *gorm.DB) NewsRepository {
	return &newsRepository{db: db}
}

func (r *newsRepository) GetAll(ctx context.Context) ([]models.News, error) {
	var news []models.News
	err := r.db.WithContext(ctx).
		Order("is_featured DESC").
		Order("created_at DESC").
		Find(&news).Error
	return news, err
}

func (r *newsRepository) GetByID(ctx context.Context, id uint) (*models.News, error) {
	var news models.News
	err := r.db.WithContext(ctx).First(&news, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &news, nil
}

func (r *newsRepository) Create(ctx context.Context, news *models.News) error {
	return r.db.WithContext(ctx).Create(news).Error
}

func (r *newsRepository) Update(ctx context.Context, news *models.News) error {
	return r.db.WithContext(ctx).Save(news).Error
}

func (r *newsRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.News{}, "id = ?", id).Error
}

func (r *newsRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.News{}).Count(&count).Error
	return count, err
}
