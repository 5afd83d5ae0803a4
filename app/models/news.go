package models

import (
	"time"
)

type News struct {
	ID uint `gorm:"primaryKey"`

	TitleRu string `gorm:"size:200"`
	TitleEn string `gorm:"size:200"`
	TitleUz string `gorm:"size:200"`

	DescRu string `gorm:"type:text"`
	DescEn string `gorm:"type:text"`
	DescUz string `gorm:"type:text"`

	BannerBg  string `gorm:"size:255"`
	LargeImg  string `gorm:"size:255"`
	Thumbnail string `gorm:"size:255"`

	IsFeatured bool `gorm:"default:false"`

	CreatedAt time.Time
}

// LocalizedTitle resolves the title for the request language, falling back
// to Russian when the translation is empty.
func (n *News) LocalizedTitle(lang string) string {
	switch lang {
	case "uz":
		if n.TitleUz != "" {
			return n.TitleUz
		}
	case "en":
		if n.TitleEn != "" {
			return n.TitleEn
		}
	}
	return n.TitleRu
}

func (n *News) LocalizedDesc(lang string) string {
	switch lang {
	case "uz":
		if n.DescUz != "" {
			return n.DescUz
		}
	case "en":
		if n.DescEn != "" {
			return n.DescEn
		}
	}
	return n.DescRu
}
