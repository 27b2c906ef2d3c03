package marketrates

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/kisanbazaar/kisanbazaar-backend/pkg/db/models"
	"github.com/kisanbazaar/kisanbazaar-backend/pkg/pagination"
)

type Repo struct {
	db *gorm.DB
}

func NewRepo(db *gorm.DB) *Repo {
	return &Repo{db: db}
}

func (r *Repo) List(ctx context.Context, filter ListFilter) ([]models.MarketRate, error) {
	query := r.db.WithContext(ctx).Model(&models.MarketRate{})

	if filter.Category != "" {
		query = query.Where("category = ?", strings.ToLower(strings.TrimSpace(filter.Category)))
	}
	if filter.District != "" {
		query = query.Where("lower(district) = ?", strings.ToLower(strings.TrimSpace(filter.District)))
	}
	if filter.Province != "" {
		query = query.Where("lower(province) = ?", strings.ToLower(strings.TrimSpace(filter.Province)))
	}
	if filter.Search != "" {
		needle := "%" + strings.ToLower(strings.TrimSpace(filter.Search)) + "%"
		query = query.Where("lower(product_name) LIKE ? OR product_name_ne LIKE ?", needle, "%"+strings.TrimSpace(filter.Search)+"%")
	}

	var out []models.MarketRate
	err := query.
		Order("product_name ASC, district ASC").
		Limit(pagination.NormalizeLimit(filter.Limit)).
		Find(&out).Error
	return out, err
}

func (r *Repo) ListCategories(ctx context.Context) ([]string, error) {
	var out []string
	err := r.db.WithContext(ctx).
		Model(&models.MarketRate{}).
		Distinct("category").
		Order("category ASC").
		Pluck("category", &out).Error
	return out, err
}

func (r *Repo) ListDistricts(ctx context.Context) ([]string, error) {
	var out []string
	err := r.db.WithContext(ctx).
		Model(&models.MarketRate{}).
		Distinct("district").
		Order("district ASC").
		Pluck("district", &out).Error
	return out, err
}
