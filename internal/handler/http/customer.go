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
	"github.com/shopmart/shopmart/internal/service"
)

type CustomerService interface {
	// GetCustomer returns a customer with the derived tag
	GetCustomer(ctx context.Context, storeID, customerID uuid.UUID) (*service.CustomerWithTag, error)
	// ListCustomers returns all store customers with derived tags
	ListCustomers(ctx context.Context, storeID uuid.UUID) ([]service.CustomerWithTag, error)
	// AddLoyaltyTransaction applies a manual earn or redeem adjustment
	AddLoyaltyTransaction(ctx context.Context, storeID, customerID uuid.UUID, txType string, points int64, note *string) (int64, error)
	// GetLedger returns the customer's loyalty ledger
	GetLedger(ctx context.Context, storeID, customerID uuid.UUID) ([]models.LoyaltyTransaction, error)
	// SetBan bans or unbans a customer
	SetBan(ctx context.Context, storeID, customerID uuid.UUID, banned bool, reason *string) error
	// SetCODBlock blocks or unblocks cash on delivery
	SetCODBlock(ctx context.Context, storeID, customerID uuid.UUID, blocked bool, reason *string) error
}

// CustomerHandler represents HTTP handler for CRM requests
type CustomerHandler struct {
	svc CustomerService
}

// NewCustomerHandler creates new CustomerHandler instance
func NewCustomerHandler(svc CustomerService) *CustomerHandler {
	return &CustomerHandler{svc: svc}
}

func customerIDParam(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "customerID"))
}

func writeCustomerError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrValidation):
		http.Error(w, "missing or invalid field", http.StatusBadRequest)
	case errors.Is(err, models.ErrDataNotFound):
		http.Error(w, "customer not found", http.StatusNotFound)
	case errors.Is(err, models.ErrInsufficientBalance):
		http.Error(w, "insufficient loyalty balance", http.StatusUnprocessableEntity)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

type customerResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Phone          string  `json:"phone"`
	LoyaltyPoints  int64   `json:"loyalty_points"`
	Tag            string  `json:"tag"`
	IsBanned       bool    `json:"is_banned"`
	BanReason      *string `json:"ban_reason,omitempty"`
	CODBlocked     bool    `json:"cod_blocked"`
	CODBlockReason *string `json:"cod_block_reason,omitempty"`
	StarRating     int     `json:"star_rating"`
	OrderCount     int64   `json:"order_count"`
	TotalSpend     float64 `json:"total_spend"`
}

func toCustomerResponse(ct service.CustomerWithTag) customerResponse {
	return customerResponse{
		ID:             ct.Customer.ID.String(),
		Name:           ct.Customer.Name,
		Phone:          ct.Customer.Phone,
		LoyaltyPoints:  ct.Customer.LoyaltyPoints,
		Tag:            string(ct.Tag),
		IsBanned:       ct.Customer.IsBanned,
		BanReason:      ct.Customer.BanReason,
		CODBlocked:     ct.Customer.CODBlocked,
		CODBlockReason: ct.Customer.CODBlockReason,
		StarRating:     ct.Customer.StarRating,
		OrderCount:     ct.Customer.OrderCount,
		TotalSpend:     ct.Customer.TotalSpend,
	}
}

// GetCustomer returns one customer with derived tag and balance
// 200 — customer found
// 401 — not authenticated
// 404 — customer not found in this store
// 500 — internal error
func (ch *CustomerHandler) GetCustomer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, ok := getAuthPayload(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		customerID, err := customerIDParam(r)
		if err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}

		customer, err := ch.svc.GetCustomer(r.Context(), payload.StoreID, customerID)
		if err != nil {
			writeCustomerError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		if err := json.NewEncoder(w).Encode(toCustomerResponse(*customer)); err != nil {
			return
		}
	}
}

// ListCustomers returns all store customers
// 200 — customers returned
// 204 — store has no customers
// 401 — not authenticated
// 500 — internal error
func (ch *CustomerHandler) ListCustomers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, ok := getAuthPayload(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		customers, err := ch.svc.ListCustomers(r.Context(), payload.StoreID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		if len(customers) == 0 {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		resp := make([]customerResponse, 0, len(customers))
		for _, customer := range customers {
			resp = append(resp, toCustomerResponse(customer))
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		if err := json.NewEncoder(w).Encode(resp); err != nil {
			return
		}
	}
}

type loyaltyRequest struct {
	Type   string  `json:"type"`
	Points int64   `json:"points"`
	Note   *string `json:"note"`
}

type loyaltyResponse struct {
	Success    bool  `json:"success"`
	NewBalance int64 `json:"new_balance"`
}

// AddLoyaltyTransaction applies a manual points adjustment
// 200 — adjustment applied
// 400 — unknown type or non-positive points
// 401 — not authenticated
// 404 — customer not found in this store
// 422 — redeem would overdraw the balance
// 500 — internal error
func (ch *CustomerHandler) AddLoyaltyTransaction() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, ok := getAuthPayload(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		customerID, err := customerIDParam(r)
		if err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}

		var req loyaltyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		balance, err := ch.svc.AddLoyaltyTransaction(r.Context(), payload.StoreID, customerID, req.Type, req.Points, req.Note)
		if err != nil {
			writeCustomerError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		if err := json.NewEncoder(w).Encode(loyaltyResponse{Success: true, NewBalance: balance}); err != nil {
			return
		}
	}
}

type ledgerEntryResponse struct {
	Type      string  `json:"type"`
	Points    int64   `json:"points"`
	OrderID   *string `json:"order_id,omitempty"`
	Note      *string `json:"note,omitempty"`
	CreatedAt string  `json:"created_at"`
}

// GetLedger returns the customer's loyalty ledger
// 200 — ledger returned
// 204 — no ledger entries
// 401 — not authenticated
// 404 — customer not found in this store
// 500 — internal error
func (ch *CustomerHandler) GetLedger() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, ok := getAuthPayload(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		customerID, err := customerIDParam(r)
		if err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}

		entries, err := ch.svc.GetLedger(r.Context(), payload.StoreID, customerID)
		if err != nil {
			writeCustomerError(w, err)
			return
		}

		if len(entries) == 0 {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		resp := make([]ledgerEntryResponse, 0, len(entries))
		for _, entry := range entries {
			e := ledgerEntryResponse{
				Type:      entry.Type,
				Points:    entry.Points,
				Note:      entry.Note,
				CreatedAt: entry.CreatedAt.Format(time.RFC3339),
			}
			if entry.OrderID != nil {
				id := entry.OrderID.String()
				e.OrderID = &id
			}
			resp = append(resp, e)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		if err := json.NewEncoder(w).Encode(resp); err != nil {
			return
		}
	}
}

type banRequest struct {
	Banned bool    `json:"banned"`
	Reason *string `json:"reason"`
}

// SetBan bans or unbans a customer
// 200 — flag updated
// 400 — ban without reason
// 401 — not authenticated
// 404 — customer not found in this store
// 500 — internal error
func (ch *CustomerHandler) SetBan() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, ok := getAuthPayload(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		customerID, err := customerIDParam(r)
		if err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}

		var req banRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		if err := ch.svc.SetBan(r.Context(), payload.StoreID, customerID, req.Banned, req.Reason); err != nil {
			writeCustomerError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}

type codBlockRequest struct {
	Blocked bool    `json:"blocked"`
	Reason  *string `json:"reason"`
}

// SetCODBlock blocks or unblocks cash on delivery for a customer
// 200 — flag updated
// 400 — block without reason
// 401 — not authenticated
// 404 — customer not found in this store
// 500 — internal error
func (ch *CustomerHandler) SetCODBlock() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, ok := getAuthPayload(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		customerID, err := customerIDParam(r)
		if err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}

		var req codBlockRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		if err := ch.svc.SetCODBlock(r.Context(), payload.StoreID, customerID, req.Blocked, req.Reason); err != nil {
			writeCustomerError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}
