package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kisanbazaar/kisanbazaar-backend/internal/users"
	pkgauth "github.com/kisanbazaar/kisanbazaar-backend/pkg/auth"
	"github.com/kisanbazaar/kisanbazaar-backend/pkg/config"
	"github.com/kisanbazaar/kisanbazaar-backend/pkg/db"
	"github.com/kisanbazaar/kisanbazaar-backend/pkg/db/models"
	"github.com/kisanbazaar/kisanbazaar-backend/pkg/enums"
	pkgerrors "github.com/kisanbazaar/kisanbazaar-backend/pkg/errors"
	"github.com/kisanbazaar/kisanbazaar-backend/pkg/logger"
	"github.com/kisanbazaar/kisanbazaar-backend/pkg/security"
)

// Service handles credential exchange. Admin accounts are provisioned out of
// band; public registration only issues customer and farmer roles, and
// farmers start unverified.
type Service struct {
	repo   users.Repository
	jwtCfg config.JWTConfig
	pwCfg  config.PasswordConfig
	logg   *logger.Logger
	now    func() time.Time
}

func NewService(repo users.Repository, jwtCfg config.JWTConfig, pwCfg config.PasswordConfig, logg *logger.Logger) *Service {
	return &Service{
		repo:   repo,
		jwtCfg: jwtCfg,
		pwCfg:  pwCfg,
		logg:   logg,
		now:    time.Now,
	}
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	role, err := enums.ParseUserRole(req.Role)
	if err != nil || role == enums.UserRoleAdmin {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "role must be customer or farmer")
	}

	hash, err := security.HashPassword(req.Password, s.pwCfg)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hashing password")
	}

	user := &models.User{
		ID:             uuid.New(),
		Name:           strings.TrimSpace(req.Name),
		Email:          strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash:   hash,
		Role:           role,
		Phone:          req.Phone,
		FarmLocation:   req.FarmLocation,
		CitizenshipDoc: req.CitizenshipDoc,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "email already registered")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "creating user")
	}

	if s.logg != nil {
		ctx = s.logg.WithFields(ctx, map[string]any{
			"user_id": user.ID.String(),
			"role":    string(user.Role),
		})
		s.logg.Info(ctx, "user registered")
	}

	return s.issueSession(user)
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	user, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading user")
	}
	if user == nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid email or password")
	}

	ok, err := security.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "verifying password")
	}
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid email or password")
	}

	if s.logg != nil {
		s.logg.Info(s.logg.WithUserID(ctx, user.ID.String()), "user logged in")
	}

	return s.issueSession(user)
}

// VerifyToken re-validates an existing token and returns a fresh view of the
// account. Claims may be stale; the response reflects the database.
func (s *Service) VerifyToken(ctx context.Context, token string) (*AuthResponse, error) {
	claims, err := pkgauth.ParseAccessToken(s.jwtCfg, token)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid token")
	}

	user, err := s.repo.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading user")
	}
	if user == nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "account no longer exists")
	}

	return &AuthResponse{
		Token: token,
		User:  sessionUserFromModel(user),
	}, nil
}

func (s *Service) issueSession(user *models.User) (*AuthResponse, error) {
	token, err := pkgauth.MintAccessToken(s.jwtCfg, s.now(), pkgauth.AccessTokenPayload{
		UserID: user.ID,
		Role:   user.Role,
		Name:   user.Name,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "minting token")
	}

	return &AuthResponse{
		Token: token,
		User:  sessionUserFromModel(user),
	}, nil
}

func sessionUserFromModel(user *models.User) SessionUser {
	return SessionUser{
		ID:         user.ID.String(),
		Name:       user.Name,
		Email:      user.Email,
		Role:       string(user.Role),
		IsVerified: user.IsVerified,
	}
}
