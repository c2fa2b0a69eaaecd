package impl

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"registry/config"
	deliverycontext "registry/internal/delivery/context"
	"registry/internal/domain/entity"
	domainerrors "registry/internal/domain/errors"
	"registry/internal/domain/repository"
	"registry/internal/domain/service"
	"registry/internal/usecase"
	"registry/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager repository.TransactionManager
	identity  service.IdentityService
	faucet    config.FaucetConfig
	logger    *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Identity  service.IdentityService
	Config    *config.Config
	Logger    *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	var faucet config.FaucetConfig
	if params.Config != nil && params.Config.Faucet != nil {
		faucet = *params.Config.Faucet
	}

	return &accountService{
		txManager: params.TxManager,
		identity:  params.Identity,
		faucet:    faucet,
		logger:    params.Logger,
	}
}

// GetAccount returns the balance of an address. Unknown addresses hold zero.
func (srv *accountService) GetAccount(ctx context.Context, address string) (*entity.Account, error) {
	if err := srv.identity.ValidateAddress(address); err != nil {
		return nil, errors.Wrap(err, "invalid account address")
	}

	var account *entity.Account
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.AccountRepo().Find(ctx, address)
		if err != nil {
			return errors.Wrap(err, "failed to find account")
		}
		account = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get account")
	}

	return account, nil
}

// Airdrop credits amount to an address when the faucet is enabled.
func (srv *accountService) Airdrop(ctx context.Context, address string, amount uint64) (*entity.Account, error) {
	if !srv.faucet.Enabled {
		return nil, domainerrors.ErrFaucetDisabled
	}
	if err := srv.identity.ValidateAddress(address); err != nil {
		return nil, errors.Wrap(err, "invalid account address")
	}
	if amount == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("airdrop amount must be positive")
	}
	if srv.faucet.MaxAmount > 0 && amount > srv.faucet.MaxAmount {
		return nil, domainerrors.ErrAmountOutOfRange.WithDetails("faucet limit is " + strconv.FormatUint(srv.faucet.MaxAmount, 10))
	}
	if err := checkAmount(amount); err != nil {
		return nil, err
	}

	var account *entity.Account
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		found, err := accountRepo.FindForUpdate(ctx, address)
		if err != nil {
			return errors.Wrap(err, "failed to find account")
		}
		balance, err := addAmount(found.Balance, amount)
		if err != nil {
			return err
		}
		found.Balance = balance
		found.UpdatedAt = time.Now().UTC()
		if err := accountRepo.Save(ctx, found); err != nil {
			return errors.Wrap(err, "failed to credit account")
		}
		account = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to airdrop")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Faucet airdrop",
		slog.String("address", address),
		slog.String("amount", util.FormatLamports(amount)),
	)

	return account, nil
}
