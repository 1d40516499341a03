package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopmart/shopmart/internal/models"
	"github.com/shopmart/shopmart/internal/repository/postgres"
)

const (
	customerColumns = `id, store_id, name, phone, loyalty_points, is_banned, ban_reason,
						cod_blocked, cod_block_reason, star_rating, order_count, total_spend,
						last_order_at, created_at`

	insertCustomerQuery = `
						INSERT INTO customers (id, store_id, name, phone)
						VALUES ($1, $2, $3, $4)
						RETURNING created_at
`
	selectCustomerByIDQuery = `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`

	selectCustomersByStoreQuery = `SELECT ` + customerColumns + ` FROM customers WHERE store_id = $1 ORDER BY created_at DESC`

	setBannedQuery = `
						UPDATE customers
						SET is_banned = $1, ban_reason = $2
						WHERE id = $3
`
	setCODBlockedQuery = `
						UPDATE customers
						SET cod_blocked = $1, cod_block_reason = $2
						WHERE id = $3
`
	setStarRatingQuery = `
						UPDATE customers
						SET star_rating = $1
						WHERE id = $2
`
)

// CustomerRepository implements customer persistence over postgres
type CustomerRepository struct {
	db *postgres.DB
}

// NewCustomerRepository creates new CustomerRepository instance
func NewCustomerRepository(db *postgres.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func scanCustomer(row pgx.Row, c *models.Customer) error {
	return row.Scan(&c.ID, &c.StoreID, &c.Name, &c.Phone, &c.LoyaltyPoints,
		&c.IsBanned, &c.BanReason, &c.CODBlocked, &c.CODBlockReason,
		&c.StarRating, &c.OrderCount, &c.TotalSpend, &c.LastOrderAt, &c.CreatedAt)
}

// CreateCustomer inserts new customer
func (cr *CustomerRepository) CreateCustomer(ctx context.Context, customer *models.Customer) (*models.Customer, error) {
	err := cr.db.QueryRow(ctx, insertCustomerQuery,
		customer.ID, customer.StoreID, customer.Name, customer.Phone,
	).Scan(&customer.CreatedAt)
	if err != nil {
		if errCode := cr.db.ErrorCode(err); errCode == pgErrUniqueViolationCode {
			return nil, models.ErrConflictData
		}
		return nil, err
	}

	return customer, nil
}

// GetCustomerByID returns customer by id
func (cr *CustomerRepository) GetCustomerByID(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	customer := models.Customer{}
	err := scanCustomer(cr.db.QueryRow(ctx, selectCustomerByIDQuery, id), &customer)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrDataNotFound
		}
		return nil, err
	}

	return &customer, nil
}

// GetCustomersByStoreID lists store customers, newest first
func (cr *CustomerRepository) GetCustomersByStoreID(ctx context.Context, storeID uuid.UUID) ([]models.Customer, error) {
	rows, err := cr.db.Query(ctx, selectCustomersByStoreQuery, storeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := []models.Customer{}

	for rows.Next() {
		customer := models.Customer{}
		if err := scanCustomer(rows, &customer); err != nil {
			continue
		}
		customers = append(customers, customer)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return customers, nil
}

// SetBanned sets or clears the ban flag
func (cr *CustomerRepository) SetBanned(ctx context.Context, id uuid.UUID, banned bool, reason *string) error {
	cmd, err := cr.db.Exec(ctx, setBannedQuery, banned, reason, id)
	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return models.ErrDataNotFound
	}

	return nil
}

// SetCODBlocked sets or clears the COD block flag
func (cr *CustomerRepository) SetCODBlocked(ctx context.Context, id uuid.UUID, blocked bool, reason *string) error {
	cmd, err := cr.db.Exec(ctx, setCODBlockedQuery, blocked, reason, id)
	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return models.ErrDataNotFound
	}

	return nil
}

// SetStarRating sets the shopkeeper's star rating for a customer
func (cr *CustomerRepository) SetStarRating(ctx context.Context, id uuid.UUID, rating int) error {
	cmd, err := cr.db.Exec(ctx, setStarRatingQuery, rating, id)
	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return models.ErrDataNotFound
	}

	return nil
}
