package models

import (
	"time"

	"github.com/google/uuid"
)

// OrderItem captures the snapshot of each item within an order. Name and
// unit price are copied at creation and never re-linked to the live product.
type OrderItem struct {
	ID             uuid.UUID  `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	OrderID        string     `gorm:"column:order_id;type:text;not null"`
	ProductID      *uuid.UUID `gorm:"column:product_id;type:uuid"`
	Name           string     `gorm:"column:name;not null"`
	Quantity       int        `gorm:"column:quantity;not null"`
	UnitPricePaisa int        `gorm:"column:unit_price_paisa;not null"`
	CreatedAt      time.Time  `gorm:"column:created_at;autoCreateTime"`
}
