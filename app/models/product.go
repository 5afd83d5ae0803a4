package models

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID         uint     `gorm:"primaryKey"`
	Title      string   `gorm:"size:200;not null"`
	Price      int64    `gorm:"not null;check:price >= 0"`
	Brand      string   `gorm:"size:100"`
	CategoryID uint     `gorm:"not null;index"`
	Category   Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT"`

	// CategorySlug mirrors Category.Slug on every save so the public
	// listing can filter without a join.
	CategorySlug string `gorm:"size:60;index"`

	// Short descriptions, all three languages served together.
	DescRu string `gorm:"type:text"`
	DescUz string `gorm:"type:text"`
	DescEn string `gorm:"type:text"`

	// Full descriptions, served in the request language only.
	DescFullRu string `gorm:"type:text"`
	DescFullUz string `gorm:"type:text"`
	DescFullEn string `gorm:"type:text"`

	Img    string `gorm:"size:255"`
	BigImg string `gorm:"size:255"`

	Available bool `gorm:"default:true"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (p *Product) BeforeSave(tx *gorm.DB) error {
	if p.CategoryID != 0 {
		var category Category
		if err := tx.Select("slug").First(&category, p.CategoryID).Error; err != nil {
			return err
		}
		p.CategorySlug = category.Slug
	}
	return nil
}

// ShortDesc returns the short description in every supported language.
func (p *Product) ShortDesc() map[string]string {
	return map[string]string{
		"ru": p.DescRu,
		"uz": p.DescUz,
		"en": p.DescEn,
	}
}

// FullDesc returns the full description for the resolved request language.
func (p *Product) FullDesc(lang string) string {
	switch lang {
	case "uz":
		return p.DescFullUz
	case "en":
		return p.DescFullEn
	default:
		return p.DescFullRu
	}
}
