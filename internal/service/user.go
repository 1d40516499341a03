package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopmart/shopmart/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// UserRepository is interface for interacting with shopkeeper accounts
type UserRepository interface {
	// CreateUserWithStore inserts the store and its first account atomically
	CreateUserWithStore(ctx context.Context, user *models.User, store *models.Store) (*models.User, error)
	// GetUserByLogin returns account by login
	GetUserByLogin(ctx context.Context, login string) (*models.User, error)
}

// UserService implements shopkeeper registration
type UserService struct {
	users UserRepository
}

// NewUserService creates new UserService instance
func NewUserService(users UserRepository) *UserService {
	return &UserService{
		users: users,
	}
}

// Register creates a store and its first shopkeeper account. Both rows are
// written in one transaction; a taken login creates nothing.
func (us *UserService) Register(ctx context.Context, login, password, storeName string) (*models.User, error) {
	if login == "" || password == "" || storeName == "" {
		return nil, models.ErrValidation
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	store := &models.Store{
		ID:   uuid.New(),
		Name: storeName,
	}

	return us.users.CreateUserWithStore(ctx, &models.User{
		ID:           uuid.New(),
		StoreID:      store.ID,
		Login:        login,
		PasswordHash: string(hash),
	}, store)
}
