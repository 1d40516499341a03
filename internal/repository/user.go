package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/shopmart/shopmart/internal/models"
	"github.com/shopmart/shopmart/internal/repository/postgres"
)

const (
	insertUserQuery = `
						INSERT INTO users (id, store_id, login, password_hash)
						VALUES ($1, $2, $3, $4)
						RETURNING created_at
`
	selectUserByLoginQuery = `
						SELECT id, store_id, login, password_hash, created_at FROM users
						WHERE login = $1
`
)

// UserRepository implements shopkeeper account persistence over postgres
type UserRepository struct {
	db *postgres.DB
}

// NewUserRepository creates new UserRepository instance
func NewUserRepository(db *postgres.DB) *UserRepository {
	return &UserRepository{db: db}
}

// CreateUser inserts new shopkeeper account
func (ur *UserRepository) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	err := ur.db.QueryRow(ctx, insertUserQuery,
		user.ID, user.StoreID, user.Login, user.PasswordHash,
	).Scan(&user.CreatedAt)
	if err != nil {
		if errCode := ur.db.ErrorCode(err); errCode == pgErrUniqueViolationCode {
			return nil, models.ErrConflictData
		}
		return nil, err
	}

	return user, nil
}

// CreateUserWithStore inserts the store and its first shopkeeper account in
// one transaction, so a taken login leaves no orphaned store row behind.
func (ur *UserRepository) CreateUserWithStore(ctx context.Context, user *models.User, store *models.Store) (*models.User, error) {
	tx, err := ur.db.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if err := tx.QueryRow(ctx, insertStoreQuery, store.ID, store.Name).Scan(&store.CreatedAt); err != nil {
		return nil, err
	}

	err = tx.QueryRow(ctx, insertUserQuery,
		user.ID, user.StoreID, user.Login, user.PasswordHash,
	).Scan(&user.CreatedAt)
	if err != nil {
		if errCode := ur.db.ErrorCode(err); errCode == pgErrUniqueViolationCode {
			return nil, models.ErrConflictData
		}
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return user, nil
}

// GetUserByLogin returns account by login
func (ur *UserRepository) GetUserByLogin(ctx context.Context, login string) (*models.User, error) {
	user := models.User{}
	err := ur.db.QueryRow(ctx, selectUserByLoginQuery, login).Scan(
		&user.ID, &user.StoreID, &user.Login, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrDataNotFound
		}
		return nil, err
	}

	return &user, nil
}
