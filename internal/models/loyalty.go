package models

import (
	"time"

	"github.com/google/uuid"
)

// loyalty transaction type
const (
	LoyaltyTxEarned   = "earned"
	LoyaltyTxRedeemed = "redeemed"
)

// LoyaltyTransaction is an immutable ledger entry. The balance on the
// customer row is the aggregate of these entries.
type LoyaltyTransaction struct {
	ID         uuid.UUID
	StoreID    uuid.UUID
	CustomerID uuid.UUID
	OrderID    *uuid.UUID
	Type       string
	Points     int64
	Note       *string
	CreatedAt  time.Time
}
