// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"registry/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for factory persistence.
var (
	// ErrFactoryNotFound is returned when the registry has no factory state yet.
	ErrFactoryNotFound = errors.New("factory state not found")
	// ErrDuplicateFactory is returned when a factory state already exists for the kind.
	ErrDuplicateFactory = errors.New("factory state already exists")
)

// FactoryRepository defines the persistence operations for factory states.
type FactoryRepository interface {
	// FindByKind retrieves the factory state of a registry.
	FindByKind(ctx context.Context, kind entity.RegistryKind) (*entity.FactoryState, error)

	// FindByKindForUpdate retrieves the factory state and locks it until the transaction ends.
	// Every operation that changes the vault, the fee, the pause gate or the set of names takes this lock.
	FindByKindForUpdate(ctx context.Context, kind entity.RegistryKind) (*entity.FactoryState, error)

	// Create persists a new factory state.
	Create(ctx context.Context, state *entity.FactoryState) error

	// Update stores the mutable fields of a factory state.
	Update(ctx context.Context, state *entity.FactoryState) error
}
