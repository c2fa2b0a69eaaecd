package postgres

import (
	"context"

	"registry/internal/domain/entity"
	"registry/internal/domain/repository"
	"registry/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// factoryRepository implements the domain.FactoryRepository interface using GORM.
type factoryRepository struct {
	db *gorm.DB
}

// NewFactoryRepository is the constructor for factoryRepository.
func NewFactoryRepository(db *gorm.DB) repository.FactoryRepository {
	return &factoryRepository{db: db}
}

// FindByKind retrieves the factory state of a registry.
func (repo *factoryRepository) FindByKind(ctx context.Context, kind entity.RegistryKind) (*entity.FactoryState, error) {
	return repo.find(repo.db.WithContext(ctx), kind)
}

// FindByKindForUpdate retrieves the factory state with SELECT ... FOR UPDATE.
func (repo *factoryRepository) FindByKindForUpdate(ctx context.Context, kind entity.RegistryKind) (*entity.FactoryState, error) {
	return repo.find(repo.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), kind)
}

func (repo *factoryRepository) find(db *gorm.DB, kind entity.RegistryKind) (*entity.FactoryState, error) {
	var stateM model.FactoryStateModel
	if err := db.Where("kind = ?", kind.String()).First(&stateM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFactoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find factory state")
	}

	return toFactoryDomain(&stateM), nil
}

// Create persists a new factory state.
func (repo *factoryRepository) Create(ctx context.Context, state *entity.FactoryState) error {
	stateM := fromFactoryDomain(state)
	if err := repo.db.WithContext(ctx).Create(stateM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateFactory
		}

		return errors.Wrap(err, "failed to create factory state")
	}

	state.CreatedAt = stateM.CreatedAt
	state.UpdatedAt = stateM.UpdatedAt

	return nil
}

// Update stores the mutable fields of a factory state.
func (repo *factoryRepository) Update(ctx context.Context, state *entity.FactoryState) error {
	result := repo.db.WithContext(ctx).
		Model(&model.FactoryStateModel{}).
		Where("kind = ?", state.Kind.String()).
		Updates(map[string]any{
			"registration_fee":     int64(state.RegistrationFee),
			"total_fees_collected": int64(state.TotalFeesCollected),
			"entity_count":         int64(state.EntityCount),
			"paused":               state.Paused,
			"updated_at":           state.UpdatedAt,
		})
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return errors.Wrap(result.Error, "factory state violates a check constraint")
		}

		return errors.Wrap(result.Error, "failed to update factory state")
	}
	if result.RowsAffected == 0 {
		return repository.ErrFactoryNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toFactoryDomain(data *model.FactoryStateModel) *entity.FactoryState {
	return &entity.FactoryState{
		Kind:               entity.RegistryKind(data.Kind),
		Admin:              data.Admin,
		RegistrationFee:    uint64(data.RegistrationFee),
		TotalFeesCollected: uint64(data.TotalFeesCollected),
		EntityCount:        uint64(data.EntityCount),
		Paused:             data.Paused,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

func fromFactoryDomain(data *entity.FactoryState) *model.FactoryStateModel {
	return &model.FactoryStateModel{
		Kind:               data.Kind.String(),
		Admin:              data.Admin,
		RegistrationFee:    int64(data.RegistrationFee),
		TotalFeesCollected: int64(data.TotalFeesCollected),
		EntityCount:        int64(data.EntityCount),
		Paused:             data.Paused,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}
