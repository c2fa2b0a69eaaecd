package usecase

import (
	"context"

	"registry/internal/domain/entity"
)

// AccountUsecase defines the operations on the funds ledger.
type AccountUsecase interface {
	GetAccount(ctx context.Context, address string) (*entity.Account, error)
	// Airdrop credits an account from the development faucet.
	Airdrop(ctx context.Context, address string, amount uint64) (*entity.Account, error)
}
