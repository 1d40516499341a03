package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopmart/shopmart/internal/lifecycle"
	"github.com/shopmart/shopmart/internal/models"
	"github.com/shopmart/shopmart/internal/shipping"
	"go.uber.org/zap"
)

// OrderRepository is interface for interacting with order-related data
type OrderRepository interface {
	// CreateOrder inserts new order with its redemption side effects
	CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error)
	// GetOrderByID returns order by id
	GetOrderByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	// GetOrdersByStoreID gets store orders
	GetOrdersByStoreID(ctx context.Context, storeID uuid.UUID) ([]models.Order, error)
	// UpdateOrderStatus moves order between statuses, conditional on the current one
	UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, from, to models.OrderStatus) error
	// ShipOrder moves a packed order to shipped with tracking fields
	ShipOrder(ctx context.Context, orderID uuid.UUID, info models.ShippingInfo) error
	// DeliverOrder moves a shipped order to delivered and awards points once
	DeliverOrder(ctx context.Context, orderID uuid.UUID) (int64, error)
	// CancelOrder cancels a non-terminal order
	CancelOrder(ctx context.Context, orderID uuid.UUID, reason string, note *string) (paymentMode, paymentStatus string, err error)
	// MarkOrderPaid flips payment status of an unpaid COD order
	MarkOrderPaid(ctx context.Context, orderID uuid.UUID) error
	// GetShippedOrders returns shipped orders with tracking numbers
	GetShippedOrders(ctx context.Context) ([]models.Order, error)
}

// TrackingClient reports delivery status from the shipping partner.
type TrackingClient interface {
	GetTrackingStatus(ctx context.Context, trackingNumber string) (*shipping.TrackingStatus, error)
}

// OrderService drives orders through the lifecycle state machine
type OrderService struct {
	repo    OrderRepository
	tracker TrackingClient
	logger  *zap.Logger
}

// NewOrderService creates new OrderService instance
func NewOrderService(repo OrderRepository, tracker TrackingClient, logger *zap.Logger) *OrderService {
	return &OrderService{
		repo:    repo,
		tracker: tracker,
		logger:  logger,
	}
}

// GetOrder returns one order. Used by the storefront tracking page.
func (os *OrderService) GetOrder(ctx context.Context, orderID uuid.UUID) (*models.Order, error) {
	return os.repo.GetOrderByID(ctx, orderID)
}

// ListStoreOrders returns the store's orders, newest first.
func (os *OrderService) ListStoreOrders(ctx context.Context, storeID uuid.UUID) ([]models.Order, error) {
	return os.repo.GetOrdersByStoreID(ctx, storeID)
}

// UpdateStatus advances an order one step forward (confirm, pack, ship).
// Shipping requires tracking info. Cancellation and delivery have their own
// entry points. The repository re-checks the current status in the update
// itself, so a double submission is rejected even after this validation.
func (os *OrderService) UpdateStatus(ctx context.Context, storeID, orderID uuid.UUID, to models.OrderStatus, shipInfo *models.ShippingInfo) error {
	if !lifecycle.IsValid(to) || to == models.OrderStatusCancelled || to == models.OrderStatusDelivered {
		return models.ErrValidation
	}

	order, err := os.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order.StoreID != storeID {
		return models.ErrDataNotFound
	}

	if !lifecycle.CanTransition(order.Status, to) {
		return models.ErrInvalidTransition
	}

	if to == models.OrderStatusShipped {
		if shipInfo == nil {
			return models.ErrValidation
		}
		if err := lifecycle.ShipGuard(*shipInfo); err != nil {
			return err
		}
		return os.repo.ShipOrder(ctx, orderID, *shipInfo)
	}

	return os.repo.UpdateOrderStatus(ctx, orderID, order.Status, to)
}

// MarkDelivered completes a shipped order. COD payment flips to paid and the
// frozen point award is credited exactly once; a repeated call returns
// ErrInvalidTransition and awards nothing.
func (os *OrderService) MarkDelivered(ctx context.Context, storeID, orderID uuid.UUID) (int64, error) {
	order, err := os.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		return 0, err
	}
	if order.StoreID != storeID {
		return 0, models.ErrDataNotFound
	}

	if !lifecycle.CanTransition(order.Status, models.OrderStatusDelivered) {
		return 0, models.ErrInvalidTransition
	}

	return os.repo.DeliverOrder(ctx, orderID)
}

// Cancel cancels a non-terminal order. A reason from the fixed set is
// required; "Other" admits a free-text note. Returns whether the UI should
// surface a refund reminder (online order already paid; the refund itself is
// handled manually in the gateway).
func (os *OrderService) Cancel(ctx context.Context, storeID, orderID uuid.UUID, reason string, note *string) (bool, error) {
	if !lifecycle.ValidReason(reason) {
		return false, models.ErrValidation
	}

	order, err := os.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		return false, err
	}
	if order.StoreID != storeID {
		return false, models.ErrDataNotFound
	}

	if !lifecycle.CanCancel(order.Status) {
		return false, models.ErrInvalidTransition
	}

	paymentMode, paymentStatus, err := os.repo.CancelOrder(ctx, orderID, reason, note)
	if err != nil {
		return false, err
	}

	showRefundReminder := paymentMode == models.PaymentModeOnline && paymentStatus == models.PaymentStatusPaid

	return showRefundReminder, nil
}

// MarkPaid records payment received for an unpaid COD order. The order
// status itself does not change.
func (os *OrderService) MarkPaid(ctx context.Context, storeID, orderID uuid.UUID) error {
	order, err := os.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order.StoreID != storeID {
		return models.ErrDataNotFound
	}

	if order.PaymentMode != models.PaymentModeCOD || order.PaymentStatus == models.PaymentStatusPaid ||
		order.Status == models.OrderStatusCancelled {
		return models.ErrInvalidTransition
	}

	return os.repo.MarkOrderPaid(ctx, orderID)
}

// TrackShipments consumes shipped orders from orderCh and confirms delivery
// for the ones the shipping partner reports as delivered. It goes through
// the same guarded delivery path as the dashboard, so a race with a manual
// "mark delivered" cannot double-award points.
func (os *OrderService) TrackShipments(ctx context.Context, orderCh <-chan models.Order) {
	for {
		var errTooManyReq shipping.TooManyRequestsError
		select {
		case <-ctx.Done():
			os.logger.Debug("shipment tracking is done")
			return
		case order, ok := <-orderCh:
			if !ok {
				return
			}

			if order.TrackingNumber == nil {
				continue
			}

			status, err := os.tracker.GetTrackingStatus(ctx, *order.TrackingNumber)
			if err != nil {
				switch {
				case errors.As(err, &errTooManyReq):
					os.logger.Debug("shipping partner throttled", zap.Duration("retry-after", errTooManyReq.RetryAfter))
					time.Sleep(errTooManyReq.RetryAfter)
					continue
				}
				os.logger.Error("tracking request error", zap.Error(err))
				continue
			}

			if status.Status != shipping.TrackingStatusDelivered {
				continue
			}

			points, err := os.repo.DeliverOrder(ctx, order.ID)
			if err != nil {
				if errors.Is(err, models.ErrInvalidTransition) {
					// already delivered or cancelled meanwhile
					continue
				}
				os.logger.Error("confirm delivery", zap.String("order", order.ID.String()), zap.Error(err))
				continue
			}

			os.logger.Info("order delivered by partner",
				zap.String("order", order.ID.String()),
				zap.Int64("points_awarded", points))
		}
	}
}

// GetShipmentsForTracking writes shipped orders to channel for tracking
func (os *OrderService) GetShipmentsForTracking(ctx context.Context, orderCh chan<- models.Order) error {
	orders, err := os.repo.GetShippedOrders(ctx)
	if err != nil {
		return err
	}

	for _, order := range orders {
		orderCh <- order
	}

	return nil
}
