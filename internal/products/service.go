package products

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/kisanbazaar/kisanbazaar-backend/internal/users"
	"github.com/kisanbazaar/kisanbazaar-backend/pkg/db/models"
	"github.com/kisanbazaar/kisanbazaar-backend/pkg/enums"
	pkgerrors "github.com/kisanbazaar/kisanbazaar-backend/pkg/errors"
	"github.com/kisanbazaar/kisanbazaar-backend/pkg/logger"
)

// Service owns listing lifecycle. Only verified farmers can publish, and a
// farmer can only mutate their own rows.
type Service struct {
	repo  Repository
	users users.Repository
	logg  *logger.Logger
}

func NewService(repo Repository, userRepo users.Repository, logg *logger.Logger) *Service {
	return &Service{repo: repo, users: userRepo, logg: logg}
}

func (s *Service) Create(ctx context.Context, farmerID uuid.UUID, req CreateProductRequest) (*ProductResponse, error) {
	farmer, err := s.users.FindByID(ctx, farmerID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading farmer")
	}
	if farmer == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "farmer not found")
	}
	if farmer.Role != enums.UserRoleFarmer {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "only farmer accounts can publish listings")
	}
	if !farmer.IsVerified {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "farmer account is not verified yet")
	}

	product := &models.Product{
		ID:          uuid.New(),
		FarmerID:    farmerID,
		FarmerName:  farmer.Name,
		Name:        strings.TrimSpace(req.Name),
		Category:    strings.ToLower(strings.TrimSpace(req.Category)),
		PricePaisa:  req.PricePaisa,
		Unit:        strings.TrimSpace(req.Unit),
		Image:       req.Image,
		Description: req.Description,
	}

	if err := s.repo.Create(ctx, product); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "creating product")
	}

	if s.logg != nil {
		ctx = s.logg.WithFields(ctx, map[string]any{
			"product_id": product.ID.String(),
			"farmer_id":  farmerID.String(),
		})
		s.logg.Info(ctx, "product created")
	}

	resp := responseFromModel(*product, true)
	return &resp, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading product")
	}
	if product == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}

	verified := false
	if farmer, err := s.users.FindByID(ctx, product.FarmerID); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading farmer")
	} else if farmer != nil {
		verified = farmer.IsVerified
	}

	resp := responseFromModel(*product, verified)
	return &resp, nil
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]ProductResponse, error) {
	rows, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing products")
	}
	return responsesFromRows(rows), nil
}

func (s *Service) Update(ctx context.Context, id, farmerID uuid.UUID, req UpdateProductRequest) error {
	changes := map[string]any{}
	if req.Name != nil {
		changes["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Category != nil {
		changes["category"] = strings.ToLower(strings.TrimSpace(*req.Category))
	}
	if req.PricePaisa != nil {
		changes["price_paisa"] = *req.PricePaisa
	}
	if req.Unit != nil {
		changes["unit"] = strings.TrimSpace(*req.Unit)
	}
	if req.Image != nil {
		changes["image"] = *req.Image
	}
	if req.Description != nil {
		changes["description"] = *req.Description
	}
	if len(changes) == 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "no fields to update")
	}

	affected, err := s.repo.Update(ctx, id, farmerID, changes)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "updating product")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, id, farmerID uuid.UUID) error {
	affected, err := s.repo.Delete(ctx, id, farmerID)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "deleting product")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	if s.logg != nil {
		s.logg.Info(s.logg.WithField(ctx, "product_id", id.String()), "product deleted")
	}
	return nil
}
