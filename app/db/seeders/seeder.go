package seeders

import (
	"fmt"

	"github.com/nodirbekm/koreancosmetics/app/db/fakers"
	"gorm.io/gorm"
)

var categoryNames = []string{"Уход за кожей", "Уход за волосами", "Макияж", "Для тела"}

// DBSeed fills an empty database with an admin user, the base categories,
// demo products and a few news articles.
func DBSeed(db *gorm.DB) error {
	admin := fakers.AdminUserFaker()
	if err := db.FirstOrCreate(admin, "email = ?", admin.Email).Error; err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	for _, name := range categoryNames {
		category := fakers.CategoryFaker(name)
		if err := db.FirstOrCreate(category, "name = ?", category.Name).Error; err != nil {
			return fmt.Errorf("failed to seed category %q: %w", name, err)
		}

		for i := 0; i < 5; i++ {
			product := fakers.ProductFaker(category)
			if err := db.Create(product).Error; err != nil {
				return fmt.Errorf("failed to seed product: %w", err)
			}
		}
	}

	for i := 0; i < 4; i++ {
		news := fakers.NewsFaker(i == 0)
		if err := db.Create(news).Error; err != nil {
			return fmt.Errorf("failed to seed news: %w", err)
		}
	}

	return nil
}
