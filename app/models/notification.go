package models

import (
	"time"
)

const NotifTypeOrder = "order"

// Notification is a generated text record describing one order. It is
// created exactly once when the order is persisted and is only ever mutated
// by the read-flag toggle; deleting the order cascades to it.
type Notification struct {
	ID        uint   `gorm:"primaryKey"`
	NotifType string `gorm:"size:20;default:'order'"`
	OrderID   uint   `gorm:"not null;index"`
	Order     *Order `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Message   string `gorm:"type:text"`
	IsRead    bool   `gorm:"default:false"`
	CreatedAt time.Time
}
