package models

import (
	"time"

	"github.com/google/uuid"
)

// CustomerTag is derived classification of a customer. It is computed on
// read and never stored.
type CustomerTag string

const (
	TagNew      CustomerTag = "New"
	TagRegular  CustomerTag = "Regular"
	TagVIP      CustomerTag = "VIP"
	TagAtRisk   CustomerTag = "At Risk"
	TagInactive CustomerTag = "Inactive"
	TagBanned   CustomerTag = "Banned"
)

// tag derivation thresholds
const (
	vipOrderCount   = 10
	vipTotalSpend   = 10000
	atRiskAfterDays = 30
	inactiveDays    = 90
)

// Customer is a shopper identity scoped to one store.
type Customer struct {
	ID             uuid.UUID
	StoreID        uuid.UUID
	Name           string
	Phone          string
	LoyaltyPoints  int64
	IsBanned       bool
	BanReason      *string
	CODBlocked     bool
	CODBlockReason *string
	StarRating     int
	OrderCount     int64
	TotalSpend     float64
	LastOrderAt    *time.Time
	CreatedAt      time.Time
}

// DeriveTag classifies a customer from order history aggregates. Banned wins
// over everything, recency over volume.
func DeriveTag(c Customer, now time.Time) CustomerTag {
	if c.IsBanned {
		return TagBanned
	}
	if c.OrderCount <= 1 {
		return TagNew
	}
	if c.LastOrderAt != nil {
		days := int(now.Sub(*c.LastOrderAt).Hours() / 24)
		if days > inactiveDays {
			return TagInactive
		}
		if days > atRiskAfterDays {
			return TagAtRisk
		}
	}
	if c.OrderCount >= vipOrderCount || c.TotalSpend >= vipTotalSpend {
		return TagVIP
	}
	return TagRegular
}
