package repository

import (
	"context"

	"registry/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for the name registry.
var (
	// ErrNameRecordNotFound is returned when no profile holds the name.
	ErrNameRecordNotFound = errors.New("name record not found")
	// ErrDuplicateName is returned when the name is already registered.
	ErrDuplicateName = errors.New("name already registered")
)

// NameRegistryRepository maps unique names to profiles.
type NameRegistryRepository interface {
	// Find retrieves the record holding a name.
	Find(ctx context.Context, kind entity.RegistryKind, name string) (*entity.NameRecord, error)

	// Exists reports whether a name is held.
	Exists(ctx context.Context, kind entity.RegistryKind, name string) (bool, error)

	// Create inserts a record. The (kind, name) key is unique.
	Create(ctx context.Context, record *entity.NameRecord) error

	// Delete removes the record holding a name.
	Delete(ctx context.Context, kind entity.RegistryKind, name string) error
}
