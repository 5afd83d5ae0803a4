package migrations

import (
	"github.com/nodirbekm/koreancosmetics/app/models"
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.Profile{},
		&models.Order{},
		&models.Notification{},
		&models.News{},
	)
}
