package fakers

import (
	"fmt"
	"math/rand"

	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/nodirbekm/koreancosmetics/app/helpers"
	"github.com/nodirbekm/koreancosmetics/app/models"
)

var brands = []string{"Perioe", "Missha", "The Saem", "Holika Holika", "Etude House", "Innisfree"}

func AdminUserFaker() *models.User {
	return &models.User{
		FirstName: "Admin",
		LastName:  "User",
		Email:     "admin@example.com",
		Password:  helpers.HashPassword("admin123"),
		Role:      models.RoleAdmin,
	}
}

func CategoryFaker(name string) *models.Category {
	// Slug left empty on purpose, the model hook derives it.
	return &models.Category{Name: name}
}

func ProductFaker(category *models.Category) *models.Product {
	title := faker.Word() + " " + faker.Word()

	return &models.Product{
		Title:      title,
		Price:      int64(rand.Intn(490)+10) * 1000,
		Brand:      brands[rand.Intn(len(brands))],
		CategoryID: category.ID,
		DescRu:     faker.Sentence(),
		DescUz:     faker.Sentence(),
		DescEn:     faker.Sentence(),
		DescFullRu: faker.Paragraph(),
		DescFullUz: faker.Paragraph(),
		DescFullEn: faker.Paragraph(),
		Img:        fmt.Sprintf("/media/products/%s.jpg", uuid.NewString()[:8]),
		BigImg:     fmt.Sprintf("/media/products/big/%s.jpg", uuid.NewString()[:8]),
		Available:  true,
	}
}

func NewsFaker(featured bool) *models.News {
	return &models.News{
		TitleRu:    faker.Sentence(),
		TitleEn:    faker.Sentence(),
		TitleUz:    faker.Sentence(),
		DescRu:     faker.Paragraph(),
		DescEn:     faker.Paragraph(),
		DescUz:     faker.Paragraph(),
		BannerBg:   fmt.Sprintf("/media/news/banners/%s.jpg", uuid.NewString()[:8]),
		LargeImg:   fmt.Sprintf("/media/news/large/%s.jpg", uuid.NewString()[:8]),
		Thumbnail:  fmt.Sprintf("/media/news/thumbs/%s.jpg", uuid.NewString()[:8]),
		IsFeatured: featured,
	}
}
