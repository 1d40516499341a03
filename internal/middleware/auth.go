package middleware

import (
	"context"
	"net/http"

	"github.com/shopmart/shopmart/internal/models"
)

type contextKey string

const (
	// AuthPayloadKey is the request context key holding *models.TokenPayload.
	AuthPayloadKey contextKey = "auth_payload"
)

type TokenService interface {
	VerifyToken(tokenString string) (*models.TokenPayload, error)
}

// Auth gets the token from the cookie and passes its payload to the context
func Auth(ts TokenService) func(handler http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie("auth_token")
			if err != nil {
				http.Error(w, "can not get cookie", http.StatusUnauthorized)
				return
			}

			payload, err := ts.VerifyToken(cookie.Value)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), AuthPayloadKey, payload)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
