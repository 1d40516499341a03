package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/shopmart/shopmart/internal/models"
)

const tokenTTL = 24 * time.Hour

// AuthToken creates and verifies HMAC-signed tokens carrying the
// shopkeeper identity.
type AuthToken struct {
	key []byte
}

// NewAuthToken creates new AuthToken instance
func NewAuthToken(key []byte) *AuthToken {
	return &AuthToken{key: key}
}

type claims struct {
	jwt.RegisteredClaims
	UserID  string `json:"uid"`
	StoreID string `json:"sid"`
}

// CreateToken issues a signed token for user
func (at *AuthToken) CreateToken(user *models.User) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
		UserID:  user.ID.String(),
		StoreID: user.StoreID.String(),
	})

	return token.SignedString(at.key)
}

// VerifyToken parses and validates tokenString and returns its payload
func (at *AuthToken) VerifyToken(tokenString string) (*models.TokenPayload, error) {
	var c claims

	token, err := jwt.ParseWithClaims(tokenString, &c, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return at.key, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, models.ErrInvalidCredentials
	}

	userID, err := uuid.Parse(c.UserID)
	if err != nil {
		return nil, err
	}
	storeID, err := uuid.Parse(c.StoreID)
	if err != nil {
		return nil, err
	}

	return &models.TokenPayload{UserID: userID, StoreID: storeID}, nil
}
