package users

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kisanbazaar/kisanbazaar-backend/pkg/db/models"
	"github.com/kisanbazaar/kisanbazaar-backend/pkg/enums"
	"github.com/kisanbazaar/kisanbazaar-backend/pkg/pagination"
)

type Repo struct {
	db *gorm.DB
}

func NewRepo(db *gorm.DB) *Repo {
	return &Repo{db: db}
}

func (r *Repo) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// FindByEmail matches case-insensitively; emails are stored lowercased but
// legacy rows may predate that.
func (r *Repo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).
		Where("lower(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *Repo) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *Repo) UpdatePaymentQR(ctx context.Context, id uuid.UUID, paymentQR string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ? AND role = ?", id, enums.UserRoleFarmer).
		Update("payment_qr", paymentQR)
	return res.RowsAffected, res.Error
}

func (r *Repo) UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Update("password_hash", hash)
	return res.RowsAffected, res.Error
}

func (r *Repo) MarkFarmerVerified(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ? AND role = ?", id, enums.UserRoleFarmer).
		Update("is_verified", true)
	return res.RowsAffected, res.Error
}

func (r *Repo) ListUnverifiedFarmers(ctx context.Context, limit int) ([]models.User, error) {
	var out []models.User
	err := r.db.WithContext(ctx).
		Where("role = ? AND is_verified = ?", enums.UserRoleFarmer, false).
		Order("created_at ASC").
		Limit(pagination.NormalizeLimit(limit)).
		Find(&out).Error
	return out, err
}

func (r *Repo) ListAll(ctx context.Context, limit int) ([]models.User, error) {
	var out []models.User
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(pagination.NormalizeLimit(limit)).
		Find(&out).Error
	return out, err
}
