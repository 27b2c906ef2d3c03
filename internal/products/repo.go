package products

import (
	"context"
	"errors"

	"github.com/google/uuid"
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

func (r *Repo) Create(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *Repo) FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *Repo) List(ctx context.Context, filter ListFilter) ([]ProductRow, error) {
	type row struct {
		models.Product
		FarmerVerified bool
	}

	query := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Select("products.*, users.is_verified AS farmer_verified").
		Joins("JOIN users ON users.id = products.farmer_id")

	if filter.FarmerID != nil {
		query = query.Where("products.farmer_id = ?", *filter.FarmerID)
	}
	if filter.Category != "" {
		query = query.Where("products.category = ?", filter.Category)
	}

	var joined []row
	err := query.
		Order("products.created_at DESC").
		Limit(pagination.NormalizeLimit(filter.Limit)).
		Find(&joined).Error
	if err != nil {
		return nil, err
	}

	out := make([]ProductRow, 0, len(joined))
	for _, j := range joined {
		out = append(out, ProductRow{Product: j.Product, FarmerVerified: j.FarmerVerified})
	}
	return out, nil
}

// Update applies changes only when the row belongs to farmerID. Ownership is
// part of the WHERE clause so a foreign update reports zero rows, not an error.
func (r *Repo) Update(ctx context.Context, id, farmerID uuid.UUID, changes map[string]any) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ? AND farmer_id = ?", id, farmerID).
		Updates(changes)
	return res.RowsAffected, res.Error
}

func (r *Repo) Delete(ctx context.Context, id, farmerID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND farmer_id = ?", id, farmerID).
		Delete(&models.Product{})
	return res.RowsAffected, res.Error
}
