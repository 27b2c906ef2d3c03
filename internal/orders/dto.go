package orders

import (
	"time"

	"github.com/kisanbazaar/kisanbazaar-backend/pkg/db/models"
)

// OrderItemInput references a live product and a quantity at checkout.
type OrderItemInput struct {
	ProductID string `json:"product_id" validate:"required,uuid4"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

// CreateOrderRequest carries a checkout. TotalPaisa is what the client
// rendered; the server recomputes from current prices and rejects a mismatch
// so a stale cart cannot lock in an outdated total.
type CreateOrderRequest struct {
	Items      []OrderItemInput `json:"items" validate:"required,min=1,max=100,dive"`
	TotalPaisa int              `json:"total_paisa" validate:"required,gt=0"`
}

// SubmitProofRequest attaches a payment screenshot to an order.
type SubmitProofRequest struct {
	OrderID           string `json:"order_id" validate:"required"`
	PaymentScreenshot string `json:"payment_screenshot" validate:"required"`
}

// VerifyPaymentRequest carries the admin decision for an order's proof.
type VerifyPaymentRequest struct {
	Decision string `json:"decision" validate:"required,oneof=approved rejected"`
}

// OrderItemResponse is the snapshot line as stored at checkout.
type OrderItemResponse struct {
	ProductID      *string `json:"product_id,omitempty"`
	Name           string  `json:"name"`
	Quantity       int     `json:"quantity"`
	UnitPricePaisa int     `json:"unit_price_paisa"`
}

// OrderResponse is the buyer-facing order shape.
type OrderResponse struct {
	ID                string              `json:"id"`
	BuyerID           string              `json:"buyer_id"`
	TotalPaisa        int                 `json:"total_paisa"`
	Status            string              `json:"status"`
	PaymentStatus     string              `json:"payment_status"`
	PaymentScreenshot *string             `json:"payment_screenshot,omitempty"`
	Items             []OrderItemResponse `json:"items"`
	CreatedAt         time.Time           `json:"created_at"`
	UpdatedAt         time.Time           `json:"updated_at"`
}

// PendingPaymentResponse is an admin queue entry: the order plus who paid.
type PendingPaymentResponse struct {
	Order      OrderResponse `json:"order"`
	BuyerName  string        `json:"buyer_name"`
	BuyerEmail string        `json:"buyer_email"`
}

func itemResponseFromModel(item models.OrderItem) OrderItemResponse {
	resp := OrderItemResponse{
		Name:           item.Name,
		Quantity:       item.Quantity,
		UnitPricePaisa: item.UnitPricePaisa,
	}
	if item.ProductID != nil {
		id := item.ProductID.String()
		resp.ProductID = &id
	}
	return resp
}

func responseFromModel(order models.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, itemResponseFromModel(item))
	}
	return OrderResponse{
		ID:                order.ID,
		BuyerID:           order.BuyerID.String(),
		TotalPaisa:        order.TotalPaisa,
		Status:            string(order.Status),
		PaymentStatus:     string(order.PaymentStatus),
		PaymentScreenshot: order.PaymentScreenshot,
		Items:             items,
		CreatedAt:         order.CreatedAt,
		UpdatedAt:         order.UpdatedAt,
	}
}

func responsesFromModels(rows []models.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, responseFromModel(row))
	}
	return out
}
