package models_test

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/nodirbekm/koreancosmetics/app/models"
	"github.com/nodirbekm/koreancosmetics/app/models/migrations"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, migrations.AutoMigrate(db))
	return db
}

func TestCategorySlugDerivedFromName(t *testing.T) {
	db := newTestDB(t)

	category := &models.Category{Name: "Уход за кожей"}
	require.NoError(t, db.Create(category).Error)

	require.NotEmpty(t, category.Slug)
	require.NotContains(t, category.Slug, " ")
	require.Regexp(t, `^[a-z0-9-]+$`, category.Slug)
}

func TestCategoryExplicitSlugKept(t *testing.T) {
	db := newTestDB(t)

	category := &models.Category{Name: "Макияж", Slug: "makeup"}
	require.NoError(t, db.Create(category).Error)
	require.Equal(t, "makeup", category.Slug)
}

func TestProductCategorySlugSyncedOnSave(t *testing.T) {
	db := newTestDB(t)

	category := &models.Category{Name: "Уход за волосами", Slug: "hair-care"}
	require.NoError(t, db.Create(category).Error)

	product := &models.Product{
		Title:      "Shampoo",
		Price:      45000,
		CategoryID: category.ID,
	}
	require.NoError(t, db.Create(product).Error)
	require.Equal(t, "hair-care", product.CategorySlug)

	category.Slug = "hair"
	require.NoError(t, db.Save(category).Error)

	require.NoError(t, db.Save(product).Error)
	require.Equal(t, "hair", product.CategorySlug)
}

func TestOrderTotals(t *testing.T) {
	order := models.Order{
		Items: models.OrderItems{
			{Title: "Cleanser", Price: 50000, Quantity: 2},
			{Title: "Toner", Price: 80000, Quantity: 1},
		},
	}

	require.Equal(t, 3, order.TotalItems())
	require.Equal(t, int64(180000), order.GrandTotal())
}

func TestPaymentMethodLabel(t *testing.T) {
	require.Equal(t, "Наличными", models.PaymentMethodLabel(models.PaymentCash))
	require.Equal(t, "Payme", models.PaymentMethodLabel(models.PaymentPayme))
	// Intake stores unknown methods verbatim, the label follows suit.
	require.Equal(t, "crypto", models.PaymentMethodLabel("crypto"))
}

func TestOrderItemsRoundTripThroughJSONColumn(t *testing.T) {
	db := newTestDB(t)

	order := &models.Order{
		Items: models.OrderItems{
			{ID: 4, Title: "Сыворотка", Price: 120000, Quantity: 1},
		},
		PaymentMethod: models.PaymentClick,
	}
	require.NoError(t, db.Create(order).Error)

	var reloaded models.Order
	require.NoError(t, db.First(&reloaded, order.ID).Error)
	require.Len(t, reloaded.Items, 1)
	require.Equal(t, "Сыворотка", reloaded.Items[0].Title)
	require.Equal(t, int64(120000), reloaded.Items[0].Price)
}

func TestNewsLocalizationFallsBackToRussian(t *testing.T) {
	news := models.News{
		TitleRu: "Новая коллекция",
		TitleUz: "Yangi kolleksiya",
		DescRu:  "Описание",
	}

	require.Equal(t, "Yangi kolleksiya", news.LocalizedTitle("uz"))
	require.Equal(t, "Новая коллекция", news.LocalizedTitle("en"))
	require.Equal(t, "Описание", news.LocalizedDesc("en"))
	require.Equal(t, "Новая коллекция", news.LocalizedTitle("ru"))
}

func TestProductDescriptions(t *testing.T) {
	product := models.Product{
		DescRu:     "Очищает",
		DescUz:     "Tozalaydi",
		DescEn:     "Cleans",
		DescFullRu: "Полное описание",
		DescFullUz: "To'liq tavsif",
	}

	desc := product.ShortDesc()
	require.Equal(t, "Очищает", desc["ru"])
	require.Equal(t, "Tozalaydi", desc["uz"])
	require.Equal(t, "Cleans", desc["en"])

	require.Equal(t, "To'liq tavsif", product.FullDesc("uz"))
	require.Equal(t, "Полное описание", product.FullDesc("ru"))
	require.Empty(t, product.FullDesc("en"))
}
