package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopmart/shopmart/internal/models"
	"github.com/shopmart/shopmart/internal/pricing"
)

// SettingsGetter returns per-store checkout settings, possibly from cache.
type SettingsGetter interface {
	GetSettings(ctx context.Context, storeID uuid.UUID) (models.StoreSettings, error)
}

// CheckoutRequest is one storefront checkout submission.
type CheckoutRequest struct {
	StoreID         uuid.UUID
	CustomerID      uuid.UUID
	Items           []models.CartItem
	PaymentMode     string
	RequestedPoints int64
	UsePoints       bool
}

// CheckoutService materializes carts into pending orders
type CheckoutService struct {
	orders    OrderRepository
	customers CustomerRepository
	settings  SettingsGetter
}

// NewCheckoutService creates new CheckoutService instance
func NewCheckoutService(orders OrderRepository, customers CustomerRepository, settings SettingsGetter) *CheckoutService {
	return &CheckoutService{
		orders:    orders,
		customers: customers,
		settings:  settings,
	}
}

// storefront lookup scoped to the requested store, a customer of another
// store is indistinguishable from a missing one
func (cs *CheckoutService) getStoreCustomer(ctx context.Context, storeID, customerID uuid.UUID) (*models.Customer, error) {
	customer, err := cs.customers.GetCustomerByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer.StoreID != storeID {
		return nil, models.ErrDataNotFound
	}
	return customer, nil
}

// QuoteCart computes a price quote without creating anything.
func (cs *CheckoutService) QuoteCart(ctx context.Context, req CheckoutRequest) (pricing.Quote, error) {
	customer, err := cs.getStoreCustomer(ctx, req.StoreID, req.CustomerID)
	if err != nil {
		return pricing.Quote{}, err
	}

	if customer.IsBanned {
		return pricing.Quote{}, models.ErrRestrictedAccount
	}

	settings, err := cs.settings.GetSettings(ctx, req.StoreID)
	if err != nil {
		return pricing.Quote{}, err
	}

	return pricing.Calculate(req.Items, customer.LoyaltyPoints, req.RequestedPoints, req.UsePoints, settings.DeliveryFee)
}

// CreateOrder validates the shopper and the cart, computes the quote and
// creates the order in pending status with all monetary fields frozen.
// Redeemed points are debited at creation time; the delivery award happens
// later, on the delivered transition.
func (cs *CheckoutService) CreateOrder(ctx context.Context, req CheckoutRequest) (*models.Order, error) {
	if req.PaymentMode != models.PaymentModeCOD && req.PaymentMode != models.PaymentModeOnline {
		return nil, models.ErrValidation
	}

	customer, err := cs.getStoreCustomer(ctx, req.StoreID, req.CustomerID)
	if err != nil {
		return nil, err
	}

	if customer.IsBanned {
		return nil, models.ErrRestrictedAccount
	}

	// COD block is a policy override, not an error: the order goes through
	// on the online path.
	paymentMode := req.PaymentMode
	if paymentMode == models.PaymentModeCOD && customer.CODBlocked {
		paymentMode = models.PaymentModeOnline
	}

	settings, err := cs.settings.GetSettings(ctx, req.StoreID)
	if err != nil {
		return nil, err
	}

	quote, err := pricing.Calculate(req.Items, customer.LoyaltyPoints, req.RequestedPoints, req.UsePoints, settings.DeliveryFee)
	if err != nil {
		return nil, err
	}

	order := &models.Order{
		ID:             uuid.New(),
		StoreID:        req.StoreID,
		CustomerID:     req.CustomerID,
		Status:         models.OrderStatusPending,
		PaymentMode:    paymentMode,
		PaymentStatus:  models.PaymentStatusPending,
		Subtotal:       quote.Subtotal,
		DeliveryFee:    quote.DeliveryFee,
		PointsRedeemed: quote.PointsRedeemed,
		DiscountAmount: quote.DiscountAmount,
		TotalAmount:    quote.TotalAmount,
		PointsToAward:  quote.PointsToAward,
	}

	return cs.orders.CreateOrder(ctx, order)
}
