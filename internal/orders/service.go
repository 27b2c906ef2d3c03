package orders

import (
	"context"

	"github.com/google/uuid"

	"github.com/kisanbazaar/kisanbazaar-backend/pkg/db/models"
	"github.com/kisanbazaar/kisanbazaar-backend/pkg/enums"
	pkgerrors "github.com/kisanbazaar/kisanbazaar-backend/pkg/errors"
	"github.com/kisanbazaar/kisanbazaar-backend/pkg/logger"
	"github.com/kisanbazaar/kisanbazaar-backend/pkg/ordertoken"
)

// Service owns the order lifecycle: checkout, proof submission and the admin
// payment decision. Both status axes move together only through Decide.
type Service struct {
	repo    Repository
	catalog ProductCatalog
	logg    *logger.Logger
	newID   func() (string, error)
}

func NewService(repo Repository, catalog ProductCatalog, logg *logger.Logger) *Service {
	return &Service{
		repo:    repo,
		catalog: catalog,
		logg:    logg,
		newID:   ordertoken.New,
	}
}

// Create validates every referenced product, snapshots names and prices, and
// recomputes the total server side. A client total that disagrees with
// current prices is rejected rather than silently corrected, so the buyer
// confirms the price they will actually pay.
func (s *Service) Create(ctx context.Context, buyerID uuid.UUID, req CreateOrderRequest) (*OrderResponse, error) {
	items := make([]models.OrderItem, 0, len(req.Items))
	computedTotal := 0

	for _, input := range req.Items {
		productID, err := uuid.Parse(input.ProductID)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid product id").
				WithDetails(map[string]any{"product_id": input.ProductID})
		}

		product, err := s.catalog.FindByID(ctx, productID)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading product")
		}
		if product == nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "product no longer available").
				WithDetails(map[string]any{"product_id": input.ProductID})
		}

		pid := product.ID
		items = append(items, models.OrderItem{
			ID:             uuid.New(),
			ProductID:      &pid,
			Name:           product.Name,
			Quantity:       input.Quantity,
			UnitPricePaisa: product.PricePaisa,
		})
		computedTotal += input.Quantity * product.PricePaisa
	}

	if computedTotal != req.TotalPaisa {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order total does not match current prices").
			WithDetails(map[string]any{
				"submitted_total_paisa": req.TotalPaisa,
				"computed_total_paisa":  computedTotal,
			})
	}

	orderID, err := s.newID()
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "generating order id")
	}

	order := &models.Order{
		ID:            orderID,
		BuyerID:       buyerID,
		TotalPaisa:    computedTotal,
		Status:        enums.OrderStatusPending,
		PaymentStatus: enums.PaymentStatusPending,
		Items:         items,
	}

	if err := s.repo.Create(ctx, order); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "creating order")
	}

	if s.logg != nil {
		ctx = s.logg.WithFields(ctx, map[string]any{
			"order_id":    order.ID,
			"buyer_id":    buyerID.String(),
			"total_paisa": computedTotal,
			"item_count":  len(items),
		})
		s.logg.Info(ctx, "order created")
	}

	resp := responseFromModel(*order)
	return &resp, nil
}

func (s *Service) ListBuyerOrders(ctx context.Context, buyerID uuid.UUID, limit int) ([]OrderResponse, error) {
	rows, err := s.repo.ListByBuyer(ctx, buyerID, limit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing orders")
	}
	return responsesFromModels(rows), nil
}

// SubmitProof attaches the transfer screenshot and re-queues the order for
// review. Resubmitting after a rejection resets payment_status to pending.
// An id the buyer does not own reports NOT_FOUND, never a write.
func (s *Service) SubmitProof(ctx context.Context, buyerID uuid.UUID, req SubmitProofRequest) error {
	if !ordertoken.Valid(req.OrderID) {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid order id").
			WithDetails(map[string]any{"order_id": req.OrderID})
	}

	affected, err := s.repo.SubmitProof(ctx, req.OrderID, buyerID, req.PaymentScreenshot)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "submitting payment proof")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
	}

	if s.logg != nil {
		ctx = s.logg.WithFields(ctx, map[string]any{
			"order_id": req.OrderID,
			"buyer_id": buyerID.String(),
		})
		s.logg.Info(ctx, "payment proof submitted")
	}
	return nil
}

// Decide records the admin outcome for an order's payment. Approve moves the
// order to paid, reject to payment_failed. A later call may overwrite an
// earlier decision; repeating the same decision is a no-op success.
func (s *Service) Decide(ctx context.Context, orderID string, decision enums.PaymentDecision) (*OrderResponse, error) {
	var payment enums.PaymentStatus
	var status enums.OrderStatus
	switch decision {
	case enums.PaymentDecisionApproved:
		payment = enums.PaymentStatusApproved
		status = enums.OrderStatusPaid
	case enums.PaymentDecisionRejected:
		payment = enums.PaymentStatusRejected
		status = enums.OrderStatusPaymentFailed
	default:
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "decision must be approved or rejected")
	}

	affected, err := s.repo.UpdateDecision(ctx, orderID, payment, status)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "recording payment decision")
	}
	if affected == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
	}

	order, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading order")
	}
	if order == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
	}

	if s.logg != nil {
		ctx = s.logg.WithFields(ctx, map[string]any{
			"order_id": orderID,
			"decision": string(decision),
		})
		s.logg.Info(ctx, "payment decision recorded")
	}

	resp := responseFromModel(*order)
	return &resp, nil
}

func (s *Service) ListPendingPayments(ctx context.Context, limit int) ([]PendingPaymentResponse, error) {
	rows, err := s.repo.ListPendingPayments(ctx, limit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing pending payments")
	}

	out := make([]PendingPaymentResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, PendingPaymentResponse{
			Order:      responseFromModel(row.Order),
			BuyerName:  row.BuyerName,
			BuyerEmail: row.BuyerEmail,
		})
	}
	return out, nil
}
