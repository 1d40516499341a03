package service

import (
	"context"
	"errors"

	"github.com/shopmart/shopmart/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// AuthService implements shopkeeper login
type AuthService struct {
	users UserRepository
	token TokenService
}

// NewAuthService creates new AuthService instance
func NewAuthService(users UserRepository, token TokenService) *AuthService {
	return &AuthService{
		users: users,
		token: token,
	}
}

// Login verifies credentials and returns a signed auth token.
func (as *AuthService) Login(ctx context.Context, login, password string) (string, error) {
	user, err := as.users.GetUserByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, models.ErrDataNotFound) {
			return "", models.ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", models.ErrInvalidCredentials
	}

	return as.token.CreateToken(user)
}
