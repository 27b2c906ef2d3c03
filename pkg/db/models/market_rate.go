package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kisanbazaar/kisanbazaar-backend/pkg/enums"
)

// MarketRate is a static reference row for wholesale produce pricing per
// district. Prices are rupees with two decimal places.
type MarketRate struct {
	ID            uuid.UUID          `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ProductName   string             `gorm:"column:product_name;not null"`
	ProductNameNe string             `gorm:"column:product_name_ne;not null"`
	Category      enums.RateCategory `gorm:"column:category;type:text;not null"`
	District      string             `gorm:"column:district;not null"`
	Province      string             `gorm:"column:province;not null"`
	MinPrice      decimal.Decimal    `gorm:"column:min_price;type:numeric(10,2);not null"`
	MaxPrice      decimal.Decimal    `gorm:"column:max_price;type:numeric(10,2);not null"`
	AvgPrice      decimal.Decimal    `gorm:"column:avg_price;type:numeric(10,2);not null"`
	Unit          string             `gorm:"column:unit;not null"`
	LastUpdated   time.Time          `gorm:"column:last_updated;autoUpdateTime"`
}
