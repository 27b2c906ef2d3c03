package models

import (
	"time"

	"github.com/google/uuid"
)

// Product represents a farmer's listing. FarmerName is snapshotted at
// creation so listings keep rendering after a profile rename.
type Product struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	FarmerID    uuid.UUID `gorm:"column:farmer_id;type:uuid;not null"`
	FarmerName  string    `gorm:"column:farmer_name;not null"`
	Name        string    `gorm:"column:name;not null"`
	Category    string    `gorm:"column:category;not null"`
	PricePaisa  int       `gorm:"column:price_paisa;not null"`
	Unit        string    `gorm:"column:unit;not null"`
	Image       *string   `gorm:"column:image"`
	Description *string   `gorm:"column:description"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
