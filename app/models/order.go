package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

const (
	PaymentCash    = "cash"
	PaymentPayme   = "payme"
	PaymentClick   = "click"
	PaymentApelsin = "apelsin"
)

// PaymentMethodLabel maps a stored payment method to its human-readable
// label. Unknown methods render as the raw string, intake does not validate
// the enum.
func PaymentMethodLabel(method string) string {
	switch method {
	case PaymentCash:
		return "Наличными"
	case PaymentPayme:
		return "Payme"
	case PaymentClick:
		return "Click"
	case PaymentApelsin:
		return "Apelsin"
	default:
		return method
	}
}

type OrderItem struct {
	ID       uint   `json:"id"`
	Title    string `json:"title"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
}

// OrderItems is stored as a single JSON column.
type OrderItems []OrderItem

func (items OrderItems) Value() (driver.Value, error) {
	return json.Marshal(items)
}

func (items *OrderItems) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, items)
	case string:
		return json.Unmarshal([]byte(v), items)
	case nil:
		*items = nil
		return nil
	default:
		return fmt.Errorf("cannot scan order items from %T", src)
	}
}

// Order is an immutable-at-creation snapshot of a cart: the line items, the
// chosen payment method and the customer contact fields captured at order
// time. Later profile edits never touch a persisted order.
type Order struct {
	ID     uint  `gorm:"primaryKey"`
	UserID *uint `gorm:"index"`
	User   *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`

	Items         OrderItems `gorm:"type:json;not null"`
	PaymentMethod string     `gorm:"size:20"`

	CustomerName    string `gorm:"size:100"`
	CustomerSurname string `gorm:"size:100"`
	CustomerPhone   string `gorm:"size:32"`
	CustomerAddress string `gorm:"size:255"`

	CreatedAt time.Time
}

// TotalItems is the sum of per-line quantities.
func (o Order) TotalItems() int {
	total := 0
	for _, item := range o.Items {
		total += item.Quantity
	}
	return total
}

// GrandTotal is the sum of per-line price*quantity subtotals in UZS.
func (o Order) GrandTotal() int64 {
	var total int64
	for _, item := range o.Items {
		total += item.Price * int64(item.Quantity)
	}
	return total
}
