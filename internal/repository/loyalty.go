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
	adjustPointsQuery = `
						UPDATE customers
						SET loyalty_points = loyalty_points + $1
						WHERE id = $2 AND loyalty_points + $1 >= 0
						RETURNING loyalty_points
`
	insertLoyaltyTxQuery = `
						INSERT INTO loyalty_transactions (id, store_id, customer_id, order_id, type, points, note)
						VALUES ($1, $2, $3, $4, $5, $6, $7)
						RETURNING created_at
`
	selectLoyaltyTxByCustomerQuery = `
						SELECT id, store_id, customer_id, order_id, type, points, note, created_at
						FROM loyalty_transactions
						WHERE customer_id = $1
						ORDER BY created_at DESC
`
)

// LoyaltyRepository implements the append-only loyalty ledger over postgres
type LoyaltyRepository struct {
	db *postgres.DB
}

// NewLoyaltyRepository creates new LoyaltyRepository instance
func NewLoyaltyRepository(db *postgres.DB) *LoyaltyRepository {
	return &LoyaltyRepository{db: db}
}

// AddTransaction appends a ledger entry and applies it to the customer
// balance in one transaction. The balance update is conditional on not going
// negative; an overdraw affects zero rows and nothing is written. Returns the
// new balance.
func (lr *LoyaltyRepository) AddTransaction(ctx context.Context, ltx *models.LoyaltyTransaction) (int64, error) {
	delta := ltx.Points
	if ltx.Type == models.LoyaltyTxRedeemed {
		delta = -ltx.Points
	}

	tx, err := lr.db.BeginTx(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	var balance int64
	if err := tx.QueryRow(ctx, adjustPointsQuery, delta, ltx.CustomerID).Scan(&balance); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, models.ErrInsufficientBalance
		}
		return 0, err
	}

	if ltx.ID == uuid.Nil {
		ltx.ID = uuid.New()
	}

	err = tx.QueryRow(ctx, insertLoyaltyTxQuery,
		ltx.ID, ltx.StoreID, ltx.CustomerID, ltx.OrderID, ltx.Type, ltx.Points, ltx.Note,
	).Scan(&ltx.CreatedAt)
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}

	return balance, nil
}

// GetTransactionsByCustomerID returns the customer ledger, newest first
func (lr *LoyaltyRepository) GetTransactionsByCustomerID(ctx context.Context, customerID uuid.UUID) ([]models.LoyaltyTransaction, error) {
	rows, err := lr.db.Query(ctx, selectLoyaltyTxByCustomerQuery, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	txs := []models.LoyaltyTransaction{}

	for rows.Next() {
		ltx := models.LoyaltyTransaction{}
		err = rows.Scan(&ltx.ID, &ltx.StoreID, &ltx.CustomerID, &ltx.OrderID,
			&ltx.Type, &ltx.Points, &ltx.Note, &ltx.CreatedAt)
		if err != nil {
			continue
		}
		txs = append(txs, ltx)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return txs, nil
}
