package postgres

import (
	"context"

	"registry/internal/domain/entity"
	"registry/internal/domain/repository"
	"registry/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// profileRepository implements the domain.ProfileRepository interface using GORM.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

// withProducts preloads products in the order they were added.
func withProducts(db *gorm.DB) *gorm.DB {
	return db.Preload("Products", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("seq ASC")
	})
}

func (repo *profileRepository) first(db *gorm.DB) (*entity.Profile, error) {
	var profileM model.ProfileModel
	if err := withProducts(db).First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	return toProfileDomain(&profileM), nil
}

// FindByID retrieves a single profile by its unique ID.
func (repo *profileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	return repo.first(repo.db.WithContext(ctx).Where("profiles.id = ?", id))
}

// FindByName retrieves a profile through the name registry.
func (repo *profileRepository) FindByName(ctx context.Context, kind entity.RegistryKind, name string) (*entity.Profile, error) {
	return repo.first(repo.byName(repo.db.WithContext(ctx), kind, name))
}

// FindByNameForUpdate retrieves a profile through the name registry and locks the profile row.
func (repo *profileRepository) FindByNameForUpdate(ctx context.Context, kind entity.RegistryKind, name string) (*entity.Profile, error) {
	db := repo.db.WithContext(ctx).Clauses(clause.Locking{
		Strength: "UPDATE",
		Table:    clause.Table{Name: "profiles"},
	})

	return repo.first(repo.byName(db, kind, name))
}

func (repo *profileRepository) byName(db *gorm.DB, kind entity.RegistryKind, name string) *gorm.DB {
	return db.
		Joins("JOIN name_records ON name_records.profile_id = profiles.id").
		Where("name_records.kind = ? AND name_records.name = ?", kind.String(), name)
}

// FindByAddress retrieves a profile by its derived address.
func (repo *profileRepository) FindByAddress(ctx context.Context, address string) (*entity.Profile, error) {
	return repo.first(repo.db.WithContext(ctx).Where("profiles.address = ?", address))
}

// List returns a page of profiles of one registry in registration order.
func (repo *profileRepository) List(ctx context.Context, kind entity.RegistryKind, offset, limit int) ([]*entity.Profile, int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("kind = ?", kind.String()).
		Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count profiles")
	}

	var profileMs []*model.ProfileModel
	if err := withProducts(repo.db.WithContext(ctx)).
		Where("kind = ?", kind.String()).
		Order("created_at ASC, id ASC").
		Offset(offset).
		Limit(limit).
		Find(&profileMs).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list profiles")
	}

	profiles := make([]*entity.Profile, 0, len(profileMs))
	for _, profileM := range profileMs {
		profiles = append(profiles, toProfileDomain(profileM))
	}

	return profiles, total, nil
}

// Create persists a new profile. Products are added separately.
func (repo *profileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	profileM := fromProfileDomain(profile)
	if err := repo.db.WithContext(ctx).Omit("Products").Create(profileM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateProfile
		}

		return errors.Wrap(err, "failed to create profile")
	}

	return nil
}

// Update stores the name, owner and bio of a profile.
func (repo *profileRepository) Update(ctx context.Context, profile *entity.Profile) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("id = ?", profile.ID).
		Updates(map[string]any{
			"name":       profile.Name,
			"owner":      profile.Owner,
			"bio":        profile.Bio,
			"updated_at": profile.UpdatedAt,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update profile")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toProfileDomain(data *model.ProfileModel) *entity.Profile {
	profile := &entity.Profile{
		ID:        data.ID,
		Kind:      entity.RegistryKind(data.Kind),
		Address:   data.Address,
		Owner:     data.Owner,
		Name:      data.Name,
		Bio:       data.Bio,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}

	if len(data.Products) > 0 {
		profile.Products = make([]*entity.Product, 0, len(data.Products))
		for _, productM := range data.Products {
			profile.Products = append(profile.Products, toProductDomain(productM))
		}
	}

	return profile
}

func fromProfileDomain(data *entity.Profile) *model.ProfileModel {
	return &model.ProfileModel{
		ID:        data.ID,
		Kind:      data.Kind.String(),
		Address:   data.Address,
		Owner:     data.Owner,
		Name:      data.Name,
		Bio:       data.Bio,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
