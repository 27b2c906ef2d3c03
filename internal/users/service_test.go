package users

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kisanbazaar/kisanbazaar-backend/pkg/config"
	"github.com/kisanbazaar/kisanbazaar-backend/pkg/db/models"
	"github.com/kisanbazaar/kisanbazaar-backend/pkg/enums"
	pkgerrors "github.com/kisanbazaar/kisanbazaar-backend/pkg/errors"
)

type stubRepo struct {
	createFn                func(ctx context.Context, user *models.User) error
	findByEmailFn           func(ctx context.Context, email string) (*models.User, error)
	findByIDFn              func(ctx context.Context, id uuid.UUID) (*models.User, error)
	updatePaymentQRFn       func(ctx context.Context, id uuid.UUID, paymentQR string) (int64, error)
	updatePasswordHashFn    func(ctx context.Context, id uuid.UUID, hash string) (int64, error)
	markFarmerVerifiedFn    func(ctx context.Context, id uuid.UUID) (int64, error)
	listUnverifiedFarmersFn func(ctx context.Context, limit int) ([]models.User, error)
	listAllFn               func(ctx context.Context, limit int) ([]models.User, error)
}

func (s *stubRepo) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}

func (s *stubRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.findByEmailFn(ctx, email)
}

func (s *stubRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return s.findByIDFn(ctx, id)
}

func (s *stubRepo) UpdatePaymentQR(ctx context.Context, id uuid.UUID, paymentQR string) (int64, error) {
	return s.updatePaymentQRFn(ctx, id, paymentQR)
}

func (s *stubRepo) UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) (int64, error) {
	return s.updatePasswordHashFn(ctx, id, hash)
}

func (s *stubRepo) MarkFarmerVerified(ctx context.Context, id uuid.UUID) (int64, error) {
	return s.markFarmerVerifiedFn(ctx, id)
}

func (s *stubRepo) ListUnverifiedFarmers(ctx context.Context, limit int) ([]models.User, error) {
	return s.listUnverifiedFarmersFn(ctx, limit)
}

func (s *stubRepo) ListAll(ctx context.Context, limit int) ([]models.User, error) {
	return s.listAllFn(ctx, limit)
}

func testPasswordConfig() config.PasswordConfig {
	return config.PasswordConfig{
		ArgonMemoryKB:    8,
		ArgonTime:        1,
		ArgonParallelism: 1,
		ArgonSaltLen:     8,
		ArgonKeyLen:      16,
	}
}

func TestGetProfileOmitsPasswordHash(t *testing.T) {
	userID := uuid.New()
	repo := &stubRepo{
		findByIDFn: func(_ context.Context, id uuid.UUID) (*models.User, error) {
			return &models.User{
				ID:           id,
				Name:         "Ram Bahadur",
				Email:        "ram@example.com",
				PasswordHash: "secret-hash",
				Role:         enums.UserRoleFarmer,
				IsVerified:   true,
			}, nil
		},
	}

	svc := NewService(repo, testPasswordConfig(), nil)

	profile, err := svc.GetProfile(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, "Ram Bahadur", profile.Name)
	assert.Equal(t, "farmer", profile.Role)
	assert.True(t, profile.IsVerified)
}

func TestGetProfileNotFound(t *testing.T) {
	repo := &stubRepo{
		findByIDFn: func(_ context.Context, _ uuid.UUID) (*models.User, error) {
			return nil, nil
		},
	}

	svc := NewService(repo, testPasswordConfig(), nil)

	_, err := svc.GetProfile(context.Background(), uuid.New())
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestUpdatePaymentQRRequiresFarmerRow(t *testing.T) {
	repo := &stubRepo{
		updatePaymentQRFn: func(_ context.Context, _ uuid.UUID, _ string) (int64, error) {
			return 0, nil
		},
	}

	svc := NewService(repo, testPasswordConfig(), nil)

	err := svc.UpdatePaymentQR(context.Background(), uuid.New(), UpdatePaymentQRRequest{PaymentQR: "uploads/qr.png"})
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestVerifyFarmer(t *testing.T) {
	farmerID := uuid.New()
	var gotID uuid.UUID
	repo := &stubRepo{
		markFarmerVerifiedFn: func(_ context.Context, id uuid.UUID) (int64, error) {
			gotID = id
			return 1, nil
		},
	}

	svc := NewService(repo, testPasswordConfig(), nil)

	require.NoError(t, svc.VerifyFarmer(context.Background(), farmerID))
	assert.Equal(t, farmerID, gotID)
}

func TestVerifyFarmerNotFound(t *testing.T) {
	repo := &stubRepo{
		markFarmerVerifiedFn: func(_ context.Context, _ uuid.UUID) (int64, error) {
			return 0, nil
		},
	}

	svc := NewService(repo, testPasswordConfig(), nil)

	err := svc.VerifyFarmer(context.Background(), uuid.New())
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestResetPasswordStoresNewHash(t *testing.T) {
	var storedHash string
	repo := &stubRepo{
		updatePasswordHashFn: func(_ context.Context, _ uuid.UUID, hash string) (int64, error) {
			storedHash = hash
			return 1, nil
		},
	}

	svc := NewService(repo, testPasswordConfig(), nil)

	err := svc.ResetPassword(context.Background(), uuid.New(), ResetPasswordRequest{NewPassword: "newsecret"})
	require.NoError(t, err)
	assert.NotEmpty(t, storedHash)
	assert.NotEqual(t, "newsecret", storedHash)
	assert.Contains(t, storedHash, "$argon2id$")
}
