package orders

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kisanbazaar/kisanbazaar-backend/pkg/db/models"
	"github.com/kisanbazaar/kisanbazaar-backend/pkg/enums"
	"github.com/kisanbazaar/kisanbazaar-backend/pkg/pagination"
)

type Repo struct {
	db *gorm.DB
}

func NewRepo(db *gorm.DB) *Repo {
	return &Repo{db: db}
}

// Create inserts the order and its item snapshots in one transaction so a
// partial checkout never persists.
func (r *Repo) Create(ctx context.Context, order *models.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(order).Error
	})
}

func (r *Repo) FindByID(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", id).
		First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *Repo) ListByBuyer(ctx context.Context, buyerID uuid.UUID, limit int) ([]models.Order, error) {
	var out []models.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("buyer_id = ?", buyerID).
		Order("created_at DESC").
		Limit(pagination.NormalizeLimit(limit)).
		Find(&out).Error
	return out, err
}

// SubmitProof attaches a screenshot and resets the payment review. The buyer
// filter lives in the WHERE clause; a wrong buyer or missing order reports
// zero rows instead of touching another account's order.
func (r *Repo) SubmitProof(ctx context.Context, orderID string, buyerID uuid.UUID, screenshot string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ? AND buyer_id = ?", orderID, buyerID).
		Updates(map[string]any{
			"payment_screenshot": screenshot,
			"payment_status":     enums.PaymentStatusPending,
		})
	return res.RowsAffected, res.Error
}

func (r *Repo) UpdateDecision(ctx context.Context, orderID string, payment enums.PaymentStatus, status enums.OrderStatus) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", orderID).
		Updates(map[string]any{
			"payment_status": payment,
			"status":         status,
		})
	return res.RowsAffected, res.Error
}

// ListPendingPayments returns orders awaiting review, newest first, joined
// with the buyer so the admin can cross-check the transfer.
func (r *Repo) ListPendingPayments(ctx context.Context, limit int) ([]PendingPaymentRow, error) {
	type row struct {
		models.Order
		BuyerName  string
		BuyerEmail string
	}

	var joined []row
	err := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Select("orders.*, users.name AS buyer_name, users.email AS buyer_email").
		Joins("JOIN users ON users.id = orders.buyer_id").
		Where("orders.payment_status = ? AND orders.payment_screenshot IS NOT NULL", enums.PaymentStatusPending).
		Order("orders.created_at DESC").
		Limit(pagination.NormalizeLimit(limit)).
		Find(&joined).Error
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(joined))
	for _, j := range joined {
		ids = append(ids, j.Order.ID)
	}

	itemsByOrder := map[string][]models.OrderItem{}
	if len(ids) > 0 {
		var items []models.OrderItem
		if err := r.db.WithContext(ctx).Where("order_id IN ?", ids).Find(&items).Error; err != nil {
			return nil, err
		}
		for _, item := range items {
			itemsByOrder[item.OrderID] = append(itemsByOrder[item.OrderID], item)
		}
	}

	out := make([]PendingPaymentRow, 0, len(joined))
	for _, j := range joined {
		order := j.Order
		order.Items = itemsByOrder[order.ID]
		out = append(out, PendingPaymentRow{
			Order:      order,
			BuyerName:  j.BuyerName,
			BuyerEmail: j.BuyerEmail,
		})
	}
	return out, nil
}
