package pricing

import (
	"math"

	"github.com/shopmart/shopmart/internal/models"
)

const (
	// PointsPerUnit is how many points equal one currency unit of discount.
	PointsPerUnit = 10
	// RedemptionCapRatio bounds how much of the subtotal may be offset by
	// points on a single order.
	RedemptionCapRatio = 0.5
	// awardDivisor: 1 point per 10 currency units of the final paid total.
	awardDivisor = 10
)

// Quote is the deterministic price breakdown of a cart. All six numbers are
// frozen onto the order at creation time.
type Quote struct {
	Subtotal       float64
	DeliveryFee    float64
	PointsRedeemed int64
	DiscountAmount float64
	TotalAmount    float64
	PointsToAward  int64
}

// MaxRedeemablePoints returns the largest number of points that may be
// applied against a subtotal given the customer's current balance.
func MaxRedeemablePoints(subtotal float64, availablePoints int64) int64 {
	cap := int64(math.Floor(subtotal * RedemptionCapRatio * PointsPerUnit))
	if availablePoints < cap {
		return availablePoints
	}
	return cap
}

// Calculate produces a price quote for a cart. requestedPoints is ignored
// unless usePoints is set. Returns ErrInvalidCart for an empty cart or a
// line with a negative price or non-positive quantity.
func Calculate(items []models.CartItem, availablePoints, requestedPoints int64, usePoints bool, deliveryFee float64) (Quote, error) {
	if len(items) == 0 {
		return Quote{}, models.ErrInvalidCart
	}

	var subtotal float64
	for _, item := range items {
		if item.UnitPrice < 0 || item.Quantity < 1 {
			return Quote{}, models.ErrInvalidCart
		}
		subtotal += item.UnitPrice * float64(item.Quantity)
	}

	var used int64
	if usePoints && requestedPoints > 0 {
		used = requestedPoints
		if max := MaxRedeemablePoints(subtotal, availablePoints); used > max {
			used = max
		}
	}

	discount := float64(used) / PointsPerUnit
	total := subtotal + deliveryFee - discount
	if total < 0 {
		total = 0
	}

	return Quote{
		Subtotal:       subtotal,
		DeliveryFee:    deliveryFee,
		PointsRedeemed: used,
		DiscountAmount: discount,
		TotalAmount:    total,
		PointsToAward:  int64(math.Floor(total / awardDivisor)),
	}, nil
}
