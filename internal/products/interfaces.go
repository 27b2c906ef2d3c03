package products

import (
	"context"

	"github.com/google/uuid"

	"github.com/kisanbazaar/kisanbazaar-backend/pkg/db/models"
)

// Repository is the persistence surface for product listings.
type Repository interface {
	Create(ctx context.Context, product *models.Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	List(ctx context.Context, filter ListFilter) ([]ProductRow, error)
	Update(ctx context.Context, id, farmerID uuid.UUID, changes map[string]any) (int64, error)
	Delete(ctx context.Context, id, farmerID uuid.UUID) (int64, error)
}

// ProductRow pairs a listing with the seller's verification flag so buyers
// can tell verified farmers apart.
type ProductRow struct {
	Product        models.Product
	FarmerVerified bool
}

// ListFilter narrows the public product listing.
type ListFilter struct {
	FarmerID *uuid.UUID
	Category string
	Limit    int
}
