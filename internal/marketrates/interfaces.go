package marketrates

import (
	"context"

	"github.com/kisanbazaar/kisanbazaar-backend/pkg/db/models"
)

// Repository is the read surface for the reference rate table. Rows are
// maintained by the seeding tool, not through the API.
type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]models.MarketRate, error)
	ListCategories(ctx context.Context) ([]string, error)
	ListDistricts(ctx context.Context) ([]string, error)
}

// ListFilter narrows the rate listing. Search matches both English and
// Nepali product names.
type ListFilter struct {
	Category string
	District string
	Province string
	Search   string
	Limit    int
}
