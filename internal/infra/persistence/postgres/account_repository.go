package postgres

import (
	"context"
	"time"

	"registry/internal/domain/entity"
	"registry/internal/domain/repository"
	"registry/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// accountRepository implements the domain.AccountRepository interface using GORM.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// Find retrieves the balance of an address. Unknown addresses hold zero.
func (repo *accountRepository) Find(ctx context.Context, address string) (*entity.Account, error) {
	return repo.find(repo.db.WithContext(ctx), address)
}

// FindForUpdate locks the account row, creating an empty one first so that
// concurrent credits to a new address also serialize on the row lock.
func (repo *accountRepository) FindForUpdate(ctx context.Context, address string) (*entity.Account, error) {
	empty := &model.AccountModel{Address: address, UpdatedAt: time.Now()}
	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(empty).Error; err != nil {
		return nil, errors.Wrap(err, "failed to ensure account")
	}

	return repo.find(repo.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), address)
}

func (repo *accountRepository) find(db *gorm.DB, address string) (*entity.Account, error) {
	var accountM model.AccountModel
	if err := db.Where("address = ?", address).First(&accountM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &entity.Account{Address: address}, nil
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	return &entity.Account{
		Address:   accountM.Address,
		Balance:   uint64(accountM.Balance),
		UpdatedAt: accountM.UpdatedAt,
	}, nil
}

// Save creates or updates an account balance.
func (repo *accountRepository) Save(ctx context.Context, account *entity.Account) error {
	accountM := &model.AccountModel{
		Address:   account.Address,
		Balance:   int64(account.Balance),
		UpdatedAt: account.UpdatedAt,
	}
	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "address"}},
			DoUpdates: clause.AssignmentColumns([]string{"balance", "updated_at"}),
		}).
		Create(accountM).Error
	if err != nil {
		if isCheckConstraintViolation(err) {
			return errors.Wrap(err, "account balance violates a check constraint")
		}

		return errors.Wrap(err, "failed to save account")
	}

	return nil
}
