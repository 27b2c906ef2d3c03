package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kisanbazaar/kisanbazaar-backend/api/responses"
	"github.com/kisanbazaar/kisanbazaar-backend/api/validators"
	"github.com/kisanbazaar/kisanbazaar-backend/internal/orders"
	"github.com/kisanbazaar/kisanbazaar-backend/pkg/enums"
	"github.com/kisanbazaar/kisanbazaar-backend/pkg/logger"
	"github.com/kisanbazaar/kisanbazaar-backend/pkg/pagination"
)

// SubmitPaymentProof attaches a transfer screenshot to the buyer's order.
func SubmitPaymentProof(svc *orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		buyerID, err := actorID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var req orders.SubmitProofRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.SubmitProof(r.Context(), buyerID, req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{
			"order_id":       req.OrderID,
			"payment_status": string(enums.PaymentStatusPending),
		})
	}
}

// ListPendingPayments is the admin review queue.
func ListPendingPayments(svc *orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := validators.ParseQueryInt(r, "limit", pagination.DefaultLimit, 1, pagination.MaxLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		list, err := svc.ListPendingPayments(r.Context(), limit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}

// VerifyPayment records the admin decision for an order's payment proof.
func VerifyPayment(svc *orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID := chi.URLParam(r, "orderId")

		var req orders.VerifyPaymentRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, err := svc.Decide(r.Context(), orderID, enums.PaymentDecision(req.Decision))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, order)
	}
}
