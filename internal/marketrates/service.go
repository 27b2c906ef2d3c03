package marketrates

import (
	"context"

	"github.com/kisanbazaar/kisanbazaar-backend/pkg/enums"
	pkgerrors "github.com/kisanbazaar/kisanbazaar-backend/pkg/errors"
)

// Service exposes read-only market rate lookups.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]RateResponse, error) {
	if filter.Category != "" {
		if _, err := enums.ParseRateCategory(filter.Category); err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown category").
				WithDetails(map[string]any{"category": filter.Category})
		}
	}

	rows, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing market rates")
	}
	return responsesFromModels(rows), nil
}

func (s *Service) ListCategories(ctx context.Context) ([]string, error) {
	out, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing categories")
	}
	return out, nil
}

func (s *Service) ListDistricts(ctx context.Context) ([]string, error) {
	out, err := s.repo.ListDistricts(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing districts")
	}
	return out, nil
}
