package postgres

import (
	"context"

	"registry/internal/domain/entity"
	"registry/internal/domain/repository"
	"registry/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// nameRegistryRepository implements the domain.NameRegistryRepository interface using GORM.
type nameRegistryRepository struct {
	db *gorm.DB
}

// NewNameRegistryRepository is the constructor for nameRegistryRepository.
func NewNameRegistryRepository(db *gorm.DB) repository.NameRegistryRepository {
	return &nameRegistryRepository{db: db}
}

// Find retrieves the record holding a name.
func (repo *nameRegistryRepository) Find(ctx context.Context, kind entity.RegistryKind, name string) (*entity.NameRecord, error) {
	var recordM model.NameRecordModel
	err := repo.db.WithContext(ctx).
		Where("kind = ? AND name = ?", kind.String(), name).
		First(&recordM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNameRecordNotFound
		}

		return nil, errors.Wrap(err, "failed to find name record")
	}

	return &entity.NameRecord{
		Kind:      entity.RegistryKind(recordM.Kind),
		Name:      recordM.Name,
		ProfileID: recordM.ProfileID,
		CreatedAt: recordM.CreatedAt,
	}, nil
}

// Exists reports whether a name is held.
func (repo *nameRegistryRepository) Exists(ctx context.Context, kind entity.RegistryKind, name string) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.NameRecordModel{}).
		Where("kind = ? AND name = ?", kind.String(), name).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check name record")
	}

	return count > 0, nil
}

// Create inserts a record. The (kind, name) primary key rejects duplicates.
func (repo *nameRegistryRepository) Create(ctx context.Context, record *entity.NameRecord) error {
	recordM := &model.NameRecordModel{
		Kind:      record.Kind.String(),
		Name:      record.Name,
		ProfileID: record.ProfileID,
		CreatedAt: record.CreatedAt,
	}
	if err := repo.db.WithContext(ctx).Create(recordM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateName
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProfileNotFound
		}

		return errors.Wrap(err, "failed to create name record")
	}

	return nil
}

// Delete removes the record holding a name.
func (repo *nameRegistryRepository) Delete(ctx context.Context, kind entity.RegistryKind, name string) error {
	result := repo.db.WithContext(ctx).
		Where("kind = ? AND name = ?", kind.String(), name).
		Delete(&model.NameRecordModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete name record")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNameRecordNotFound
	}

	return nil
}
