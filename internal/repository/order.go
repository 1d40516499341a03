package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopmart/shopmart/internal/models"
	"github.com/shopmart/shopmart/internal/repository/postgres"
)

const pgErrUniqueViolationCode = "23505"

const orderColumns = `id, store_id, customer_id, status, payment_mode, payment_status,
						subtotal, delivery_fee, points_redeemed, discount_amount, total_amount,
						points_to_award, cancellation_reason, cancellation_note, cancelled_at,
						shipping_partner, tracking_number, tracking_url, estimated_delivery,
						created_at, updated_at`

const (
	insertOrderQuery = `
						INSERT INTO orders (id, store_id, customer_id, status, payment_mode, payment_status,
							subtotal, delivery_fee, points_redeemed, discount_amount, total_amount, points_to_award)
						VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
						RETURNING created_at, updated_at
`
	debitPointsQuery = `
						UPDATE customers
						SET loyalty_points = loyalty_points - $1
						WHERE id = $2 AND loyalty_points - $1 >= 0
`
	bumpCustomerAggregatesQuery = `
						UPDATE customers
						SET order_count = order_count + 1, total_spend = total_spend + $1, last_order_at = now()
						WHERE id = $2
`
	insertLedgerQuery = `
						INSERT INTO loyalty_transactions (id, store_id, customer_id, order_id, type, points, note)
						VALUES ($1, $2, $3, $4, $5, $6, $7)
`
	selectOrderByIDQuery = `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

	selectOrdersByStoreQuery = `SELECT ` + orderColumns + ` FROM orders WHERE store_id = $1 ORDER BY created_at DESC`

	updateOrderStatusQuery = `
						UPDATE orders
						SET status = $1, updated_at = now()
						WHERE id = $2 AND status = $3
`
	shipOrderQuery = `
						UPDATE orders
						SET status = $1, shipping_partner = $2, tracking_number = $3,
							tracking_url = $4, estimated_delivery = $5, updated_at = now()
						WHERE id = $6 AND status = $7
`
	deliverOrderQuery = `
						UPDATE orders
						SET status = 'delivered',
							payment_status = CASE WHEN payment_mode = 'cod' THEN 'paid' ELSE payment_status END,
							updated_at = now()
						WHERE id = $1 AND status = 'shipped'
						RETURNING store_id, customer_id, points_to_award
`
	awardPointsQuery = `
						UPDATE customers
						SET loyalty_points = loyalty_points + $1
						WHERE id = $2
`
	cancelOrderQuery = `
						UPDATE orders
						SET status = 'cancelled', cancellation_reason = $1, cancellation_note = $2,
							cancelled_at = now(), updated_at = now()
						WHERE id = $3 AND status IN ('pending', 'confirmed', 'packed', 'shipped')
						RETURNING payment_mode, payment_status
`
	markOrderPaidQuery = `
						UPDATE orders
						SET payment_status = 'paid', updated_at = now()
						WHERE id = $1 AND payment_mode = 'cod' AND payment_status = 'pending'
							AND status <> 'cancelled'
`
	selectShippedOrdersQuery = `
						SELECT ` + orderColumns + ` FROM orders
						WHERE status = 'shipped' AND tracking_number IS NOT NULL
`
)

// OrderRepository implements order persistence over postgres
type OrderRepository struct {
	db *postgres.DB
}

// NewOrderRepository creates new OrderRepository instance
func NewOrderRepository(db *postgres.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func scanOrder(row pgx.Row, order *models.Order) error {
	return row.Scan(&order.ID, &order.StoreID, &order.CustomerID, &order.Status,
		&order.PaymentMode, &order.PaymentStatus, &order.Subtotal, &order.DeliveryFee,
		&order.PointsRedeemed, &order.DiscountAmount, &order.TotalAmount, &order.PointsToAward,
		&order.CancellationReason, &order.CancellationNote, &order.CancelledAt,
		&order.ShippingPartner, &order.TrackingNumber, &order.TrackingURL, &order.EstimatedDelivery,
		&order.CreatedAt, &order.UpdatedAt)
}

// CreateOrder inserts the order and, in the same transaction, debits redeemed
// points from the customer balance, appends the redemption ledger entry and
// bumps the customer order aggregates.
func (or *OrderRepository) CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error) {
	tx, err := or.db.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, insertOrderQuery,
		order.ID, order.StoreID, order.CustomerID, order.Status, order.PaymentMode, order.PaymentStatus,
		order.Subtotal, order.DeliveryFee, order.PointsRedeemed, order.DiscountAmount,
		order.TotalAmount, order.PointsToAward,
	).Scan(&order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		if errCode := or.db.ErrorCode(err); errCode == pgErrUniqueViolationCode {
			return nil, models.ErrConflictData
		}
		return nil, err
	}

	if order.PointsRedeemed > 0 {
		cmd, err := tx.Exec(ctx, debitPointsQuery, order.PointsRedeemed, order.CustomerID)
		if err != nil {
			return nil, err
		}
		if cmd.RowsAffected() == 0 {
			return nil, models.ErrInsufficientBalance
		}

		_, err = tx.Exec(ctx, insertLedgerQuery,
			uuid.New(), order.StoreID, order.CustomerID, order.ID,
			models.LoyaltyTxRedeemed, order.PointsRedeemed, nil)
		if err != nil {
			return nil, err
		}
	}

	if _, err := tx.Exec(ctx, bumpCustomerAggregatesQuery, order.TotalAmount, order.CustomerID); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return order, nil
}

// GetOrderByID returns order by id
func (or *OrderRepository) GetOrderByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	order := models.Order{}
	err := scanOrder(or.db.QueryRow(ctx, selectOrderByIDQuery, id), &order)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrDataNotFound
		}
		return nil, err
	}

	return &order, nil
}

// GetOrdersByStoreID gets store orders, newest first
func (or *OrderRepository) GetOrdersByStoreID(ctx context.Context, storeID uuid.UUID) ([]models.Order, error) {
	rows, err := or.db.Query(ctx, selectOrdersByStoreQuery, storeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []models.Order{}

	for rows.Next() {
		order := models.Order{}
		if err := scanOrder(rows, &order); err != nil {
			continue
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// UpdateOrderStatus moves the order from one status to another. The update is
// conditional on the current status, so a stale or repeated submission
// affects zero rows and is reported as an invalid transition.
func (or *OrderRepository) UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, from, to models.OrderStatus) error {
	cmd, err := or.db.Exec(ctx, updateOrderStatusQuery, to, orderID, from)
	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return models.ErrInvalidTransition
	}

	return nil
}

// ShipOrder moves a packed order to shipped and persists the tracking fields.
func (or *OrderRepository) ShipOrder(ctx context.Context, orderID uuid.UUID, info models.ShippingInfo) error {
	var trackingURL *string
	if info.TrackingURL != "" {
		trackingURL = &info.TrackingURL
	}

	cmd, err := or.db.Exec(ctx, shipOrderQuery,
		models.OrderStatusShipped, info.Partner, info.TrackingNumber, trackingURL,
		info.EstimatedDelivery, orderID, models.OrderStatusPacked)
	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return models.ErrInvalidTransition
	}

	return nil
}

// DeliverOrder moves a shipped order to delivered, flips COD payment to paid
// and awards the frozen points to the customer with an earned ledger entry.
// The conditional update makes a repeated call a no-op with zero rows, so
// points are awarded exactly once. Returns the number of points awarded.
func (or *OrderRepository) DeliverOrder(ctx context.Context, orderID uuid.UUID) (int64, error) {
	tx, err := or.db.BeginTx(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	var (
		storeID    uuid.UUID
		customerID uuid.UUID
		points     int64
	)

	err = tx.QueryRow(ctx, deliverOrderQuery, orderID).Scan(&storeID, &customerID, &points)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, models.ErrInvalidTransition
		}
		return 0, err
	}

	if points > 0 {
		if _, err := tx.Exec(ctx, awardPointsQuery, points, customerID); err != nil {
			return 0, err
		}

		note := "order delivered"
		_, err = tx.Exec(ctx, insertLedgerQuery,
			uuid.New(), storeID, customerID, orderID,
			models.LoyaltyTxEarned, points, &note)
		if err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}

	return points, nil
}

// CancelOrder cancels a non-terminal order and records the reason. Returns
// payment mode and status at cancellation time for the refund reminder.
func (or *OrderRepository) CancelOrder(ctx context.Context, orderID uuid.UUID, reason string, note *string) (paymentMode, paymentStatus string, err error) {
	err = or.db.QueryRow(ctx, cancelOrderQuery, reason, note, orderID).Scan(&paymentMode, &paymentStatus)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", "", models.ErrInvalidTransition
		}
		return "", "", err
	}

	return paymentMode, paymentStatus, nil
}

// MarkOrderPaid flips payment status of an unpaid COD order.
func (or *OrderRepository) MarkOrderPaid(ctx context.Context, orderID uuid.UUID) error {
	cmd, err := or.db.Exec(ctx, markOrderPaidQuery, orderID)
	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return models.ErrInvalidTransition
	}

	return nil
}

// GetShippedOrders returns shipped orders that carry a tracking number.
func (or *OrderRepository) GetShippedOrders(ctx context.Context) ([]models.Order, error) {
	rows, err := or.db.Query(ctx, selectShippedOrdersQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []models.Order{}

	for rows.Next() {
		order := models.Order{}
		if err := scanOrder(rows, &order); err != nil {
			continue
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
