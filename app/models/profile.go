package models

import (
	"time"
)

const (
	GenderMale        = "M"
	GenderFemale      = "F"
	GenderUnspecified = "X"
)

// Profile holds customer contact and demographic data. It is owned either
// by an authenticated user (UserID set, one profile per user) or by an
// anonymous session that stores the profile id.
type Profile struct {
	ID     uint  `gorm:"primaryKey"`
	UserID *uint `gorm:"uniqueIndex"`
	User   *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`

	Name    string `gorm:"size:150"`
	Surname string `gorm:"size:150"`
	Email   string `gorm:"size:100"`
	Phone   string `gorm:"size:30"`
	Address string `gorm:"size:300"`

	BirthDay   *int
	BirthMonth *int
	BirthYear  *int

	Gender string `gorm:"size:1;default:'X'"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Anonymous reports whether the profile is session-bound rather than owned
// by an authenticated user.
func (p *Profile) Anonymous() bool {
	return p.UserID == nil
}
