package models

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusPacked    OrderStatus = "packed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

func (s OrderStatus) String() string {
	return string(s)
}

// payment mode
const (
	PaymentModeCOD    = "cod"
	PaymentModeOnline = "online"
)

// payment status
const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
)

// Order is order entity. Monetary fields are frozen at creation time
// and never recomputed afterwards.
type Order struct {
	ID                 uuid.UUID
	StoreID            uuid.UUID
	CustomerID         uuid.UUID
	Status             OrderStatus
	PaymentMode        string
	PaymentStatus      string
	Subtotal           float64
	DeliveryFee        float64
	PointsRedeemed     int64
	DiscountAmount     float64
	TotalAmount        float64
	PointsToAward      int64
	CancellationReason *string
	CancellationNote   *string
	CancelledAt        *time.Time
	ShippingPartner    *string
	TrackingNumber     *string
	TrackingURL        *string
	EstimatedDelivery  *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// ShippingInfo carries the tracking data required to move an order to shipped.
type ShippingInfo struct {
	Partner           string
	TrackingNumber    string
	TrackingURL       string
	EstimatedDelivery *time.Time
}
