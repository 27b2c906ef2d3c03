package orders

import (
	"context"

	"github.com/google/uuid"

	"github.com/kisanbazaar/kisanbazaar-backend/pkg/db/models"
	"github.com/kisanbazaar/kisanbazaar-backend/pkg/enums"
)

// Repository is the persistence surface for orders and their item snapshots.
type Repository interface {
	Create(ctx context.Context, order *models.Order) error
	FindByID(ctx context.Context, id string) (*models.Order, error)
	ListByBuyer(ctx context.Context, buyerID uuid.UUID, limit int) ([]models.Order, error)
	SubmitProof(ctx context.Context, orderID string, buyerID uuid.UUID, screenshot string) (int64, error)
	UpdateDecision(ctx context.Context, orderID string, payment enums.PaymentStatus, status enums.OrderStatus) (int64, error)
	ListPendingPayments(ctx context.Context, limit int) ([]PendingPaymentRow, error)
}

// ProductCatalog is the slice of the product store the order flow needs to
// snapshot item names and prices.
type ProductCatalog interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
}

// PendingPaymentRow is an order joined with its buyer for the admin queue.
type PendingPaymentRow struct {
	Order      models.Order
	BuyerName  string
	BuyerEmail string
}
