package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopmart/shopmart/internal/models"
)

// CustomerRepository is interface for interacting with customer-related data
type CustomerRepository interface {
	// CreateCustomer inserts new customer
	CreateCustomer(ctx context.Context, customer *models.Customer) (*models.Customer, error)
	// GetCustomerByID returns customer by id
	GetCustomerByID(ctx context.Context, id uuid.UUID) (*models.Customer, error)
	// GetCustomersByStoreID lists store customers
	GetCustomersByStoreID(ctx context.Context, storeID uuid.UUID) ([]models.Customer, error)
	// SetBanned sets or clears the ban flag
	SetBanned(ctx context.Context, id uuid.UUID, banned bool, reason *string) error
	// SetCODBlocked sets or clears the COD block flag
	SetCODBlocked(ctx context.Context, id uuid.UUID, blocked bool, reason *string) error
	// SetStarRating sets the star rating
	SetStarRating(ctx context.Context, id uuid.UUID, rating int) error
}

// LoyaltyRepository is interface for the loyalty ledger
type LoyaltyRepository interface {
	// AddTransaction appends a ledger entry and applies it to the balance
	AddTransaction(ctx context.Context, ltx *models.LoyaltyTransaction) (int64, error)
	// GetTransactionsByCustomerID returns the customer ledger
	GetTransactionsByCustomerID(ctx context.Context, customerID uuid.UUID) ([]models.LoyaltyTransaction, error)
}

// CustomerWithTag is a customer together with the derived classification.
type CustomerWithTag struct {
	Customer models.Customer
	Tag      models.CustomerTag
}

// CustomerService implements CRM operations on customers
type CustomerService struct {
	repo    CustomerRepository
	loyalty LoyaltyRepository
}

// NewCustomerService creates new CustomerService instance
func NewCustomerService(repo CustomerRepository, loyalty LoyaltyRepository) *CustomerService {
	return &CustomerService{
		repo:    repo,
		loyalty: loyalty,
	}
}

// tenant-scoped lookup, missing and foreign rows are indistinguishable
func (cs *CustomerService) getStoreCustomer(ctx context.Context, storeID, customerID uuid.UUID) (*models.Customer, error) {
	customer, err := cs.repo.GetCustomerByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer.StoreID != storeID {
		return nil, models.ErrDataNotFound
	}
	return customer, nil
}

// GetCustomer returns a customer with the tag derived at read time.
func (cs *CustomerService) GetCustomer(ctx context.Context, storeID, customerID uuid.UUID) (*CustomerWithTag, error) {
	customer, err := cs.getStoreCustomer(ctx, storeID, customerID)
	if err != nil {
		return nil, err
	}

	return &CustomerWithTag{
		Customer: *customer,
		Tag:      models.DeriveTag(*customer, time.Now()),
	}, nil
}

// ListCustomers returns all store customers with derived tags.
func (cs *CustomerService) ListCustomers(ctx context.Context, storeID uuid.UUID) ([]CustomerWithTag, error) {
	customers, err := cs.repo.GetCustomersByStoreID(ctx, storeID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	result := make([]CustomerWithTag, 0, len(customers))
	for _, customer := range customers {
		result = append(result, CustomerWithTag{
			Customer: customer,
			Tag:      models.DeriveTag(customer, now),
		})
	}

	return result, nil
}

// AddLoyaltyTransaction applies a manual earn or redeem adjustment and
// returns the new balance. A redeem that would overdraw the balance is
// rejected without writing anything.
func (cs *CustomerService) AddLoyaltyTransaction(ctx context.Context, storeID, customerID uuid.UUID, txType string, points int64, note *string) (int64, error) {
	if txType != models.LoyaltyTxEarned && txType != models.LoyaltyTxRedeemed {
		return 0, models.ErrValidation
	}
	if points <= 0 {
		return 0, models.ErrValidation
	}

	if _, err := cs.getStoreCustomer(ctx, storeID, customerID); err != nil {
		return 0, err
	}

	return cs.loyalty.AddTransaction(ctx, &models.LoyaltyTransaction{
		StoreID:    storeID,
		CustomerID: customerID,
		Type:       txType,
		Points:     points,
		Note:       note,
	})
}

// GetLedger returns the customer's loyalty ledger, newest first.
func (cs *CustomerService) GetLedger(ctx context.Context, storeID, customerID uuid.UUID) ([]models.LoyaltyTransaction, error) {
	if _, err := cs.getStoreCustomer(ctx, storeID, customerID); err != nil {
		return nil, err
	}

	return cs.loyalty.GetTransactionsByCustomerID(ctx, customerID)
}

// SetBan bans or unbans a customer. Banning requires a reason.
func (cs *CustomerService) SetBan(ctx context.Context, storeID, customerID uuid.UUID, banned bool, reason *string) error {
	if banned && (reason == nil || *reason == "") {
		return models.ErrValidation
	}
	if !banned {
		reason = nil
	}

	if _, err := cs.getStoreCustomer(ctx, storeID, customerID); err != nil {
		return err
	}

	return cs.repo.SetBanned(ctx, customerID, banned, reason)
}

// SetCODBlock blocks or unblocks cash on delivery for a customer. Blocking
// requires a reason.
func (cs *CustomerService) SetCODBlock(ctx context.Context, storeID, customerID uuid.UUID, blocked bool, reason *string) error {
	if blocked && (reason == nil || *reason == "") {
		return models.ErrValidation
	}
	if !blocked {
		reason = nil
	}

	if _, err := cs.getStoreCustomer(ctx, storeID, customerID); err != nil {
		return err
	}

	return cs.repo.SetCODBlocked(ctx, customerID, blocked, reason)
}
