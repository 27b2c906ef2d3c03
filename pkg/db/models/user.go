package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/kisanbazaar/kisanbazaar-backend/pkg/enums"
)

// User represents the canonical identity entity. IsVerified only carries
// meaning for farmer accounts.
type User struct {
	ID             uuid.UUID      `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name           string         `gorm:"column:name;not null"`
	Email          string         `gorm:"column:email;type:text;not null;uniqueIndex"`
	PasswordHash   string         `gorm:"column:password_hash;not null"`
	Role           enums.UserRole `gorm:"column:role;type:text;not null;default:'customer'"`
	Phone          *string        `gorm:"column:phone"`
	FarmLocation   *string        `gorm:"column:farm_location"`
	CitizenshipDoc *string        `gorm:"column:citizenship_doc"`
	PaymentQR      *string        `gorm:"column:payment_qr"`
	IsVerified     bool           `gorm:"column:is_verified;not null;default:false"`
	CreatedAt      time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}
