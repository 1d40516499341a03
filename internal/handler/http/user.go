package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopmart/shopmart/internal/models"
)

type UserService interface {
	// Register creates a store and its first shopkeeper account
	Register(ctx context.Context, login, password, storeName string) (*models.User, error)
}

type AuthService interface {
	// Login verifies credentials and returns a signed auth token
	Login(ctx context.Context, login, password string) (string, error)
}

// UserHandler represents HTTP handler for shopkeeper registration
type UserHandler struct {
	svc   UserService
	token TokenCreator
}

// TokenCreator issues auth tokens for freshly registered users.
type TokenCreator interface {
	CreateToken(user *models.User) (string, error)
}

// NewUserHandler creates new UserHandler instance
func NewUserHandler(svc UserService, token TokenCreator) *UserHandler {
	return &UserHandler{svc: svc, token: token}
}

type registerRequest struct {
	Login     string `json:"login"`
	Password  string `json:"password"`
	StoreName string `json:"store_name"`
}

func setAuthCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     "auth_token",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
	})
}

// RegisterUser registers a shopkeeper with a new store
// 200 — registered and authenticated
// 400 — malformed request or missing field
// 409 — login already taken
// 500 — internal error
func (uh *UserHandler) RegisterUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		user, err := uh.svc.Register(r.Context(), req.Login, req.Password, req.StoreName)
		if err != nil {
			switch {
			case errors.Is(err, models.ErrValidation):
				http.Error(w, "missing required field", http.StatusBadRequest)
			case errors.Is(err, models.ErrConflictData):
				http.Error(w, "login already taken", http.StatusConflict)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		token, err := uh.token.CreateToken(user)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		setAuthCookie(w, token)
		w.WriteHeader(http.StatusOK)
	}
}

// AuthHandler represents HTTP handler for shopkeeper login
type AuthHandler struct {
	svc AuthService
}

// NewAuthHandler creates new AuthHandler instance
func NewAuthHandler(svc AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

type loginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// LoginUser authenticates a shopkeeper
// 200 — authenticated
// 400 — malformed request
// 401 — invalid login or password
// 500 — internal error
func (ah *AuthHandler) LoginUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		token, err := ah.svc.Login(r.Context(), req.Login, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, models.ErrInvalidCredentials):
				http.Error(w, "invalid login or password", http.StatusUnauthorized)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		setAuthCookie(w, token)
		w.WriteHeader(http.StatusOK)
	}
}
