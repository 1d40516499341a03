package models

import (
	"time"

	"github.com/google/uuid"
)

// Store is a shopkeeper tenant.
type Store struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
}

// StoreSettings is per-store checkout configuration.
type StoreSettings struct {
	StoreID     uuid.UUID `json:"store_id"`
	DeliveryFee float64   `json:"delivery_fee"`
}
