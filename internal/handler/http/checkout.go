package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/shopmart/shopmart/internal/models"
	"github.com/shopmart/shopmart/internal/pricing"
	"github.com/shopmart/shopmart/internal/service"
)

type CheckoutService interface {
	// QuoteCart computes a price quote without creating anything
	QuoteCart(ctx context.Context, req service.CheckoutRequest) (pricing.Quote, error)
	// CreateOrder creates a pending order with frozen totals
	CreateOrder(ctx context.Context, req service.CheckoutRequest) (*models.Order, error)
}

// CheckoutHandler represents HTTP handler for storefront checkout requests
type CheckoutHandler struct {
	svc CheckoutService
}

// NewCheckoutHandler creates new CheckoutHandler instance
func NewCheckoutHandler(svc CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{svc: svc}
}

type checkoutRequest struct {
	StoreID        string            `json:"store_id"`
	CustomerID     string            `json:"customer_id"`
	Items          []models.CartItem `json:"items"`
	PaymentMode    string            `json:"payment_mode"`
	UsePoints      bool              `json:"use_points"`
	PointsToRedeem int64             `json:"points_to_redeem"`
}

func (req checkoutRequest) toService() (service.CheckoutRequest, error) {
	storeID, err := uuid.Parse(req.StoreID)
	if err != nil {
		return service.CheckoutRequest{}, err
	}
	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		return service.CheckoutRequest{}, err
	}

	return service.CheckoutRequest{
		StoreID:         storeID,
		CustomerID:      customerID,
		Items:           req.Items,
		PaymentMode:     req.PaymentMode,
		RequestedPoints: req.PointsToRedeem,
		UsePoints:       req.UsePoints,
	}, nil
}

type quoteResponse struct {
	Subtotal       float64 `json:"subtotal"`
	DeliveryFee    float64 `json:"delivery_fee"`
	PointsRedeemed int64   `json:"points_redeemed"`
	DiscountAmount float64 `json:"discount_amount"`
	TotalAmount    float64 `json:"total_amount"`
	PointsToAward  int64   `json:"points_to_award"`
}

func toQuoteResponse(q pricing.Quote) quoteResponse {
	return quoteResponse{
		Subtotal:       q.Subtotal,
		DeliveryFee:    q.DeliveryFee,
		PointsRedeemed: q.PointsRedeemed,
		DiscountAmount: q.DiscountAmount,
		TotalAmount:    q.TotalAmount,
		PointsToAward:  q.PointsToAward,
	}
}

// Quote returns a price preview for a cart
// 200 — quote computed
// 400 — empty or inconsistent cart
// 403 — banned customer
// 404 — unknown store or customer
// 500 — internal error
func (ch *CheckoutHandler) Quote() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req checkoutRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		svcReq, err := req.toService()
		if err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}

		quote, err := ch.svc.QuoteCart(r.Context(), svcReq)
		if err != nil {
			switch {
			case errors.Is(err, models.ErrInvalidCart):
				http.Error(w, "invalid cart", http.StatusBadRequest)
			case errors.Is(err, models.ErrRestrictedAccount):
				http.Error(w, "account is restricted", http.StatusForbidden)
			case errors.Is(err, models.ErrDataNotFound):
				http.Error(w, "not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		if err := json.NewEncoder(w).Encode(toQuoteResponse(quote)); err != nil {
			return
		}
	}
}

type checkoutResponse struct {
	OrderID string `json:"order_id"`
	quoteResponse
}

// Checkout creates a pending order from a cart
// 201 — order created
// 400 — empty cart or invalid payment mode
// 403 — banned customer
// 404 — unknown store or customer
// 422 — redemption exceeds balance
// 500 — internal error
func (ch *CheckoutHandler) Checkout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req checkoutRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		svcReq, err := req.toService()
		if err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}

		order, err := ch.svc.CreateOrder(r.Context(), svcReq)
		if err != nil {
			switch {
			case errors.Is(err, models.ErrInvalidCart), errors.Is(err, models.ErrValidation):
				http.Error(w, "invalid cart", http.StatusBadRequest)
			case errors.Is(err, models.ErrRestrictedAccount):
				http.Error(w, "account is restricted", http.StatusForbidden)
			case errors.Is(err, models.ErrDataNotFound):
				http.Error(w, "not found", http.StatusNotFound)
			case errors.Is(err, models.ErrInsufficientBalance):
				http.Error(w, "insufficient loyalty balance", http.StatusUnprocessableEntity)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		resp := checkoutResponse{
			OrderID: order.ID.String(),
			quoteResponse: quoteResponse{
				Subtotal:       order.Subtotal,
				DeliveryFee:    order.DeliveryFee,
				PointsRedeemed: order.PointsRedeemed,
				DiscountAmount: order.DiscountAmount,
				TotalAmount:    order.TotalAmount,
				PointsToAward:  order.PointsToAward,
			},
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)

		if err := json.NewEncoder(w).Encode(resp); err != nil {
			return
		}
	}
}
