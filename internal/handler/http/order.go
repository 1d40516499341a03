package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopmart/shopmart/internal/models"
)

type OrderService interface {
	// GetOrder returns one order
	GetOrder(ctx context.Context, orderID uuid.UUID) (*models.Order, error)
	// ListStoreOrders returns the store's orders
	ListStoreOrders(ctx context.Context, storeID uuid.UUID) ([]models.Order, error)
	// UpdateStatus advances an order one step forward
	UpdateStatus(ctx context.Context, storeID, orderID uuid.UUID, to models.OrderStatus, shipInfo *models.ShippingInfo) error
	// MarkDelivered completes a shipped order and awards points once
	MarkDelivered(ctx context.Context, storeID, orderID uuid.UUID) (int64, error)
	// Cancel cancels a non-terminal order
	Cancel(ctx context.Context, storeID, orderID uuid.UUID, reason string, note *string) (bool, error)
	// MarkPaid records payment received for an unpaid COD order
	MarkPaid(ctx context.Context, storeID, orderID uuid.UUID) error
}

// OrderHandler represents HTTP handler for order-related requests
type OrderHandler struct {
	svc OrderService
}

// NewOrderHandler creates new OrderHandler instance
func NewOrderHandler(svc OrderService) *OrderHandler {
	return &OrderHandler{svc: svc}
}

func orderIDParam(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "orderID"))
}

func writeTransitionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrValidation):
		http.Error(w, "missing or invalid field", http.StatusBadRequest)
	case errors.Is(err, models.ErrDataNotFound):
		http.Error(w, "order not found", http.StatusNotFound)
	case errors.Is(err, models.ErrInvalidTransition):
		http.Error(w, "transition is not allowed", http.StatusConflict)
	case errors.Is(err, models.ErrExternalService):
		http.Error(w, "shipping partner unavailable", http.StatusBadGateway)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

type orderResponse struct {
	ID                 string  `json:"id"`
	Status             string  `json:"status"`
	PaymentMode        string  `json:"payment_mode"`
	PaymentStatus      string  `json:"payment_status"`
	Subtotal           float64 `json:"subtotal"`
	DeliveryFee        float64 `json:"delivery_fee"`
	PointsRedeemed     int64   `json:"points_redeemed"`
	DiscountAmount     float64 `json:"discount_amount"`
	TotalAmount        float64 `json:"total_amount"`
	PointsToAward      int64   `json:"points_to_award"`
	CancellationReason *string `json:"cancellation_reason,omitempty"`
	ShippingPartner    *string `json:"shipping_partner,omitempty"`
	TrackingNumber     *string `json:"tracking_number,omitempty"`
	TrackingURL        *string `json:"tracking_url,omitempty"`
	CreatedAt          string  `json:"created_at"`
}

func toOrderResponse(order models.Order) orderResponse {
	return orderResponse{
		ID:                 order.ID.String(),
		Status:             order.Status.String(),
		PaymentMode:        order.PaymentMode,
		PaymentStatus:      order.PaymentStatus,
		Subtotal:           order.Subtotal,
		DeliveryFee:        order.DeliveryFee,
		PointsRedeemed:     order.PointsRedeemed,
		DiscountAmount:     order.DiscountAmount,
		TotalAmount:        order.TotalAmount,
		PointsToAward:      order.PointsToAward,
		CancellationReason: order.CancellationReason,
		ShippingPartner:    order.ShippingPartner,
		TrackingNumber:     order.TrackingNumber,
		TrackingURL:        order.TrackingURL,
		CreatedAt:          order.CreatedAt.Format(time.RFC3339),
	}
}

// GetOrder returns one order for the storefront tracking page
// 200 — order found
// 400 — malformed order id
// 404 — unknown order
// 500 — internal error
func (oh *OrderHandler) GetOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID, err := orderIDParam(r)
		if err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}

		order, err := oh.svc.GetOrder(r.Context(), orderID)
		if err != nil {
			switch {
			case errors.Is(err, models.ErrDataNotFound):
				http.Error(w, "order not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		if err := json.NewEncoder(w).Encode(toOrderResponse(*order)); err != nil {
			return
		}
	}
}

// ListStoreOrders lists the authenticated store's orders
// 200 — orders returned
// 204 — store has no orders
// 401 — not authenticated
// 500 — internal error
func (oh *OrderHandler) ListStoreOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, ok := getAuthPayload(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		orders, err := oh.svc.ListStoreOrders(r.Context(), payload.StoreID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		if len(orders) == 0 {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		resp := make([]orderResponse, 0, len(orders))
		for _, order := range orders {
			resp = append(resp, toOrderResponse(order))
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		if err := json.NewEncoder(w).Encode(resp); err != nil {
			return
		}
	}
}

type updateStatusRequest struct {
	Status            string  `json:"status"`
	ShippingPartner   string  `json:"shipping_partner"`
	TrackingNumber    string  `json:"tracking_number"`
	TrackingURL       string  `json:"tracking_url"`
	EstimatedDelivery *string `json:"estimated_delivery"`
}

// UpdateStatus advances an order one step (confirm, pack, ship)
// 200 — status updated
// 400 — bad status or missing tracking info on the ship path
// 401 — not authenticated
// 404 — order not found in this store
// 409 — transition not allowed
// 500 — internal error
func (oh *OrderHandler) UpdateStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, ok := getAuthPayload(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		orderID, err := orderIDParam(r)
		if err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}

		var req updateStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		var shipInfo *models.ShippingInfo
		if models.OrderStatus(req.Status) == models.OrderStatusShipped {
			info := models.ShippingInfo{
				Partner:        req.ShippingPartner,
				TrackingNumber: req.TrackingNumber,
				TrackingURL:    req.TrackingURL,
			}
			if req.EstimatedDelivery != nil {
				if est, err := time.Parse(time.RFC3339, *req.EstimatedDelivery); err == nil {
					info.EstimatedDelivery = &est
				}
			}
			shipInfo = &info
		}

		err = oh.svc.UpdateStatus(r.Context(), payload.StoreID, orderID, models.OrderStatus(req.Status), shipInfo)
		if err != nil {
			writeTransitionError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}

type deliveredResponse struct {
	Success       bool  `json:"success"`
	PointsAwarded int64 `json:"points_awarded"`
}

// MarkDelivered completes a shipped order
// 200 — delivered, points awarded exactly once
// 401 — not authenticated
// 404 — order not found in this store
// 409 — order is not in shipped status
// 500 — internal error
func (oh *OrderHandler) MarkDelivered() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, ok := getAuthPayload(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		orderID, err := orderIDParam(r)
		if err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}

		points, err := oh.svc.MarkDelivered(r.Context(), payload.StoreID, orderID)
		if err != nil {
			writeTransitionError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		if err := json.NewEncoder(w).Encode(deliveredResponse{Success: true, PointsAwarded: points}); err != nil {
			return
		}
	}
}

type cancelRequest struct {
	Reason string  `json:"reason"`
	Note   *string `json:"note"`
}

type cancelResponse struct {
	Success            bool `json:"success"`
	ShowRefundReminder bool `json:"show_refund_reminder"`
}

// Cancel cancels a non-terminal order
// 200 — cancelled
// 400 — missing or unknown cancellation reason
// 401 — not authenticated
// 404 — order not found in this store
// 409 — order is already terminal
// 500 — internal error
func (oh *OrderHandler) Cancel() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, ok := getAuthPayload(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		orderID, err := orderIDParam(r)
		if err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}

		var req cancelRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		showReminder, err := oh.svc.Cancel(r.Context(), payload.StoreID, orderID, req.Reason, req.Note)
		if err != nil {
			writeTransitionError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		if err := json.NewEncoder(w).Encode(cancelResponse{Success: true, ShowRefundReminder: showReminder}); err != nil {
			return
		}
	}
}

// MarkPaid records payment received for an unpaid COD order
// 200 — payment recorded
// 401 — not authenticated
// 404 — order not found in this store
// 409 — order is not an unpaid COD order
// 500 — internal error
func (oh *OrderHandler) MarkPaid() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, ok := getAuthPayload(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		orderID, err := orderIDParam(r)
		if err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}

		if err := oh.svc.MarkPaid(r.Context(), payload.StoreID, orderID); err != nil {
			writeTransitionError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}
