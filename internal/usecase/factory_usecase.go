// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"registry/internal/domain/entity"
)

// FactoryUsecase defines the admin operations on a registry's factory state and fee vault.
type FactoryUsecase interface {
	Initialize(ctx context.Context, kind entity.RegistryKind, admin string, fee uint64) (*entity.FactoryState, error)
	GetFactoryState(ctx context.Context, kind entity.RegistryKind) (*entity.FactoryState, error)
	SetRegistrationFee(ctx context.Context, kind entity.RegistryKind, caller string, fee uint64) (*entity.FactoryState, error)
	WithdrawFees(ctx context.Context, kind entity.RegistryKind, caller string, input *WithdrawFeesInput) (*entity.FactoryState, error)
	PauseRegistration(ctx context.Context, kind entity.RegistryKind, caller string, paused bool) (*entity.FactoryState, error)
}

// --- Input DTOs ---

// WithdrawFeesInput defines the data required to move fees out of the vault.
type WithdrawFeesInput struct {
	Amount      uint64 `json:"amount"`
	Destination string `json:"destination"`
}
