package users

import (
	"context"

	"github.com/google/uuid"

	"github.com/kisanbazaar/kisanbazaar-backend/pkg/db/models"
)

// Repository is the persistence surface for user accounts.
type Repository interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	UpdatePaymentQR(ctx context.Context, id uuid.UUID, paymentQR string) (int64, error)
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) (int64, error)
	MarkFarmerVerified(ctx context.Context, id uuid.UUID) (int64, error)
	ListUnverifiedFarmers(ctx context.Context, limit int) ([]models.User, error)
	ListAll(ctx context.Context, limit int) ([]models.User, error)
}
