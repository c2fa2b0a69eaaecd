package repository

import (
	"context"

	"registry/internal/domain/entity"
)

// AccountRepository defines the persistence operations for the funds ledger.
// Addresses that were never credited are reported with a zero balance.
type AccountRepository interface {
	// Find retrieves the account of an address.
	Find(ctx context.Context, address string) (*entity.Account, error)

	// FindForUpdate retrieves the account of an address and locks it until the transaction ends.
	FindForUpdate(ctx context.Context, address string) (*entity.Account, error)

	// Save creates or updates an account balance.
	Save(ctx context.Context, account *entity.Account) error
}
