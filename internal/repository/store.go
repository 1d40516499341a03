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
	insertStoreQuery = `
						INSERT INTO stores (id, name)
						VALUES ($1, $2)
						RETURNING created_at
`
	selectStoreSettingsQuery = `
						SELECT id, delivery_fee FROM stores WHERE id = $1
`
	updateDeliveryFeeQuery = `
						UPDATE stores SET delivery_fee = $1 WHERE id = $2
`
)

// StoreRepository implements store persistence over postgres
type StoreRepository struct {
	db *postgres.DB
}

// NewStoreRepository creates new StoreRepository instance
func NewStoreRepository(db *postgres.DB) *StoreRepository {
	return &StoreRepository{db: db}
}

// CreateStore inserts new store
func (sr *StoreRepository) CreateStore(ctx context.Context, store *models.Store) (*models.Store, error) {
	err := sr.db.QueryRow(ctx, insertStoreQuery, store.ID, store.Name).Scan(&store.CreatedAt)
	if err != nil {
		return nil, err
	}

	return store, nil
}

// GetSettings returns per-store checkout settings
func (sr *StoreRepository) GetSettings(ctx context.Context, storeID uuid.UUID) (models.StoreSettings, error) {
	settings := models.StoreSettings{}
	err := sr.db.QueryRow(ctx, selectStoreSettingsQuery, storeID).Scan(&settings.StoreID, &settings.DeliveryFee)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.StoreSettings{}, models.ErrDataNotFound
		}
		return models.StoreSettings{}, err
	}

	return settings, nil
}

// UpdateDeliveryFee sets the store's flat delivery fee
func (sr *StoreRepository) UpdateDeliveryFee(ctx context.Context, storeID uuid.UUID, fee float64) error {
	cmd, err := sr.db.Exec(ctx, updateDeliveryFeeQuery, fee, storeID)
	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return models.ErrDataNotFound
	}

	return nil
}
