package repository

import (
	"context"

	"registry/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for profile persistence.
var (
	// ErrProfileNotFound is returned when a profile is not found.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrDuplicateProfile is returned when a profile already exists at the derived address.
	ErrDuplicateProfile = errors.New("profile already exists")
)

// ProfileRepository defines the persistence operations for user and vendor profiles.
// Profiles are returned with their products loaded.
type ProfileRepository interface {
	// FindByID retrieves a profile by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)

	// FindByName retrieves a profile through the name registry.
	FindByName(ctx context.Context, kind entity.RegistryKind, name string) (*entity.Profile, error)

	// FindByNameForUpdate retrieves a profile through the name registry and locks its row.
	FindByNameForUpdate(ctx context.Context, kind entity.RegistryKind, name string) (*entity.Profile, error)

	// FindByAddress retrieves a profile by its derived address.
	FindByAddress(ctx context.Context, address string) (*entity.Profile, error)

	// List returns profiles of a registry ordered by creation time, plus the total count.
	List(ctx context.Context, kind entity.RegistryKind, offset, limit int) ([]*entity.Profile, int64, error)

	// Create persists a new profile without its products.
	Create(ctx context.Context, profile *entity.Profile) error

	// Update stores the name, owner and bio of a profile.
	Update(ctx context.Context, profile *entity.Profile) error
}
