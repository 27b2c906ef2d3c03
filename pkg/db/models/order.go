package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/kisanbazaar/kisanbazaar-backend/pkg/enums"
)

// Order is a buyer's checkout request pending admin-confirmed payment.
// The id is the human-scannable ORD- token, not a uuid. Status and
// PaymentStatus are two deliberately distinct axes: buyers render Status,
// the admin queue filters on PaymentStatus.
type Order struct {
	ID                string              `gorm:"column:id;type:text;primaryKey"`
	BuyerID           uuid.UUID           `gorm:"column:buyer_id;type:uuid;not null"`
	TotalPaisa        int                 `gorm:"column:total_paisa;not null"`
	Status            enums.OrderStatus   `gorm:"column:status;type:text;not null;default:'pending'"`
	PaymentStatus     enums.PaymentStatus `gorm:"column:payment_status;type:text;not null;default:'pending'"`
	PaymentScreenshot *string             `gorm:"column:payment_screenshot"`
	Items             []OrderItem         `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt         time.Time           `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt         time.Time           `gorm:"column:updated_at;autoUpdateTime"`
}
