package users

import (
	"context"

	"github.com/google/uuid"

	"github.com/kisanbazaar/kisanbazaar-backend/pkg/config"
	pkgerrors "github.com/kisanbazaar/kisanbazaar-backend/pkg/errors"
	"github.com/kisanbazaar/kisanbazaar-backend/pkg/logger"
	"github.com/kisanbazaar/kisanbazaar-backend/pkg/security"
)

// Service owns account operations outside of credential exchange: profile
// reads, farmer verification and the admin user surface.
type Service struct {
	repo  Repository
	pwCfg config.PasswordConfig
	logg  *logger.Logger
}

func NewService(repo Repository, pwCfg config.PasswordConfig, logg *logger.Logger) *Service {
	return &Service{repo: repo, pwCfg: pwCfg, logg: logg}
}

func (s *Service) GetProfile(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading user")
	}
	if user == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
	}
	profile := profileFromModel(*user)
	return &profile, nil
}

// UpdatePaymentQR stores a farmer's QR image reference. Only farmer rows
// match, so a customer calling this gets NOT_FOUND rather than a silent write.
func (s *Service) UpdatePaymentQR(ctx context.Context, userID uuid.UUID, req UpdatePaymentQRRequest) error {
	affected, err := s.repo.UpdatePaymentQR(ctx, userID, req.PaymentQR)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "updating payment qr")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "farmer not found")
	}
	if s.logg != nil {
		s.logg.Info(s.logg.WithUserID(ctx, userID.String()), "payment qr updated")
	}
	return nil
}

// VerifyFarmer flips is_verified for a farmer account. Verifying an already
// verified farmer is a no-op success; the row still matches the filter.
func (s *Service) VerifyFarmer(ctx context.Context, farmerID uuid.UUID) error {
	affected, err := s.repo.MarkFarmerVerified(ctx, farmerID)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "verifying farmer")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "farmer not found")
	}
	if s.logg != nil {
		s.logg.Info(s.logg.WithField(ctx, "farmer_id", farmerID.String()), "farmer verified")
	}
	return nil
}

func (s *Service) ListUnverifiedFarmers(ctx context.Context, limit int) ([]Profile, error) {
	rows, err := s.repo.ListUnverifiedFarmers(ctx, limit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing unverified farmers")
	}
	return profilesFromModels(rows), nil
}

func (s *Service) ListAllUsers(ctx context.Context, limit int) ([]Profile, error) {
	rows, err := s.repo.ListAll(ctx, limit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing users")
	}
	return profilesFromModels(rows), nil
}

// ResetPassword replaces a user's credential with an admin-chosen one. The
// hash is computed here so the repo stays dumb about argon parameters.
func (s *Service) ResetPassword(ctx context.Context, userID uuid.UUID, req ResetPasswordRequest) error {
	hash, err := security.HashPassword(req.NewPassword, s.pwCfg)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hashing password")
	}
	affected, err := s.repo.UpdatePasswordHash(ctx, userID, hash)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "resetting password")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
	}
	if s.logg != nil {
		s.logg.Info(s.logg.WithField(ctx, "target_user_id", userID.String()), "password reset by admin")
	}
	return nil
}
