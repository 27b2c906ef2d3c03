package users

import (
	"time"

	"github.com/kisanbazaar/kisanbazaar-backend/pkg/db/models"
)

// Profile is the public representation of an account. Password hashes and
// other sensitive columns never leave the service layer.
type Profile struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Role           string    `json:"role"`
	Phone          *string   `json:"phone,omitempty"`
	FarmLocation   *string   `json:"farm_location,omitempty"`
	CitizenshipDoc *string   `json:"citizenship_doc,omitempty"`
	PaymentQR      *string   `json:"payment_qr,omitempty"`
	IsVerified     bool      `json:"is_verified"`
	CreatedAt      time.Time `json:"created_at"`
}

// UpdatePaymentQRRequest carries a farmer's new QR image reference.
type UpdatePaymentQRRequest struct {
	PaymentQR string `json:"payment_qr" validate:"required"`
}

// ResetPasswordRequest carries the admin-set replacement password.
type ResetPasswordRequest struct {
	NewPassword string `json:"new_password" validate:"required,min=6"`
}

func profileFromModel(user models.User) Profile {
	return Profile{
		ID:             user.ID.String(),
		Name:           user.Name,
		Email:          user.Email,
		Role:           string(user.Role),
		Phone:          user.Phone,
		FarmLocation:   user.FarmLocation,
		CitizenshipDoc: user.CitizenshipDoc,
		PaymentQR:      user.PaymentQR,
		IsVerified:     user.IsVerified,
		CreatedAt:      user.CreatedAt,
	}
}

func profilesFromModels(rows []models.User) []Profile {
	out := make([]Profile, 0, len(rows))
	for _, row := range rows {
		out = append(out, profileFromModel(row))
	}
	return out
}
