package products

import (
	"time"

	"github.com/kisanbazaar/kisanbazaar-backend/pkg/db/models"
)

// CreateProductRequest carries a new listing. Price is integer paisa.
type CreateProductRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=160"`
	Category    string  `json:"category" validate:"required,min=2,max=60"`
	PricePaisa  int     `json:"price_paisa" validate:"required,gt=0"`
	Unit        string  `json:"unit" validate:"required,min=1,max=30"`
	Image       *string `json:"image,omitempty"`
	Description *string `json:"description,omitempty"`
}

// UpdateProductRequest carries partial listing changes. Nil fields are left
// untouched.
type UpdateProductRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=2,max=160"`
	Category    *string `json:"category,omitempty" validate:"omitempty,min=2,max=60"`
	PricePaisa  *int    `json:"price_paisa,omitempty" validate:"omitempty,gt=0"`
	Unit        *string `json:"unit,omitempty" validate:"omitempty,min=1,max=30"`
	Image       *string `json:"image,omitempty"`
	Description *string `json:"description,omitempty"`
}

// ProductResponse is the public listing shape. IsVerified reflects the
// seller's current verification state, not a snapshot.
type ProductResponse struct {
	ID          string    `json:"id"`
	FarmerID    string    `json:"farmer_id"`
	FarmerName  string    `json:"farmer_name"`
	IsVerified  bool      `json:"is_verified"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	PricePaisa  int       `json:"price_paisa"`
	Unit        string    `json:"unit"`
	Image       *string   `json:"image,omitempty"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func responseFromModel(product models.Product, farmerVerified bool) ProductResponse {
	return ProductResponse{
		ID:          product.ID.String(),
		FarmerID:    product.FarmerID.String(),
		FarmerName:  product.FarmerName,
		IsVerified:  farmerVerified,
		Name:        product.Name,
		Category:    product.Category,
		PricePaisa:  product.PricePaisa,
		Unit:        product.Unit,
		Image:       product.Image,
		Description: product.Description,
		CreatedAt:   product.CreatedAt,
	}
}

func responsesFromRows(rows []ProductRow) []ProductResponse {
	out := make([]ProductResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, responseFromModel(row.Product, row.FarmerVerified))
	}
	return out
}
