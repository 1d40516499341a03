package models

import (
	"time"

	"github.com/google/uuid"
)

// User is a shopkeeper account.
type User struct {
	ID           uuid.UUID
	StoreID      uuid.UUID
	Login        string
	PasswordHash string
	CreatedAt    time.Time
}

// TokenPayload is the authenticated identity carried by the auth token.
type TokenPayload struct {
	UserID  uuid.UUID
	StoreID uuid.UUID
}
