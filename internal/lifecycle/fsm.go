// Package lifecycle is the single authority on legal order status
// transitions. Both the dashboard handlers and the tracking worker go
// through it; nothing else may decide what a status string can become.
package lifecycle

import (
	"github.com/shopmart/shopmart/internal/models"
)

// stepIndex orders the forward statuses. Cancelled sits outside the
// sequence and is handled separately.
var stepIndex = map[models.OrderStatus]int{
	models.OrderStatusPending:   0,
	models.OrderStatusConfirmed: 1,
	models.OrderStatusPacked:    2,
	models.OrderStatusShipped:   3,
	models.OrderStatusDelivered: 4,
}

// transitions is the authoritative table of forward moves.
var transitions = map[models.OrderStatus]models.OrderStatus{
	models.OrderStatusPending:   models.OrderStatusConfirmed,
	models.OrderStatusConfirmed: models.OrderStatusPacked,
	models.OrderStatusPacked:    models.OrderStatusShipped,
	models.OrderStatusShipped:   models.OrderStatusDelivered,
}

// CancellationReasons is the fixed set offered to the shopkeeper. "Other"
// admits a free-text note.
var CancellationReasons = []string{
	"Out of stock",
	"Customer requested",
	"Address not serviceable",
	"Payment not received",
	"Duplicate order",
	"Other",
}

// IsValid reports whether s is a known order status.
func IsValid(s models.OrderStatus) bool {
	if s == models.OrderStatusCancelled {
		return true
	}
	_, ok := stepIndex[s]
	return ok
}

// IsTerminal reports whether no further mutation is permitted.
func IsTerminal(s models.OrderStatus) bool {
	return s == models.OrderStatusDelivered || s == models.OrderStatusCancelled
}

// Next returns the forward successor of s, if any.
func Next(s models.OrderStatus) (models.OrderStatus, bool) {
	next, ok := transitions[s]
	return next, ok
}

// CanTransition reports whether moving from one status directly to another
// is legal. Forward moves advance exactly one step; the only jump allowed
// is the cancel branch.
func CanTransition(from, to models.OrderStatus) bool {
	if to == models.OrderStatusCancelled {
		return CanCancel(from)
	}
	next, ok := transitions[from]
	return ok && next == to
}

// CanCancel reports whether an order may be cancelled from its current
// status. Delivered and cancelled orders may not.
func CanCancel(from models.OrderStatus) bool {
	return !IsTerminal(from) && IsValid(from)
}

// ValidReason reports whether reason is from the fixed cancellation set.
func ValidReason(reason string) bool {
	for _, r := range CancellationReasons {
		if r == reason {
			return true
		}
	}
	return false
}

// ShipGuard validates the tracking data required for the manual ship path.
func ShipGuard(info models.ShippingInfo) error {
	if info.Partner == "" || info.TrackingNumber == "" {
		return models.ErrValidation
	}
	return nil
}
