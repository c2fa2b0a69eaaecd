package impl

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	deliverycontext "registry/internal/delivery/context"
	"registry/internal/domain/entity"
	domainerrors "registry/internal/domain/errors"
	"registry/internal/domain/repository"
	"registry/internal/domain/service"
	"registry/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// factoryService implements the FactoryUsecase interface.
type factoryService struct {
	txManager repository.TransactionManager
	identity  service.IdentityService
	events    *eventRecorder
	logger    *slog.Logger
}

// FactoryServiceParams holds dependencies for FactoryService, injected by Fx.
type FactoryServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Identity  service.IdentityService
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewFactoryService is the constructor for factoryService.
func NewFactoryService(params FactoryServiceParams) usecase.FactoryUsecase {
	return &factoryService{
		txManager: params.TxManager,
		identity:  params.Identity,
		events:    &eventRecorder{publisher: params.Publisher, logger: params.Logger},
		logger:    params.Logger,
	}
}

func (srv *factoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Initialize creates the factory state of a registry with the caller as admin.
func (srv *factoryService) Initialize(ctx context.Context, kind entity.RegistryKind, admin string, fee uint64) (*entity.FactoryState, error) {
	if err := validateKind(kind); err != nil {
		return nil, err
	}
	if err := srv.identity.ValidateAddress(admin); err != nil {
		return nil, errors.Wrap(err, "invalid admin address")
	}
	if err := checkAmount(fee); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Initializing factory", slog.String("kind", kind.String()), slog.String("admin", admin))

	var (
		state *entity.FactoryState
		event *entity.Event
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		factoryRepo := repoFactory.FactoryRepo()

		_, err := factoryRepo.FindByKind(ctx, kind)
		if err == nil {
			return domainerrors.ErrFactoryAlreadyInitialized.WithDetails(kind.String())
		}
		if !errors.Is(err, repository.ErrFactoryNotFound) {
			return errors.Wrap(err, "failed to find factory state")
		}

		now := time.Now().UTC()
		state = &entity.FactoryState{
			Kind:            kind,
			Admin:           admin,
			RegistrationFee: fee,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		if err := factoryRepo.Create(ctx, state); err != nil {
			if errors.Is(err, repository.ErrDuplicateFactory) {
				return domainerrors.ErrFactoryAlreadyInitialized.WithDetails(kind.String())
			}

			return errors.Wrap(err, "failed to create factory state")
		}

		event = newEvent(ctx, entity.EventFactoryInitialized, kind, admin)
		event.Amount = fee

		return srv.events.stage(ctx, repoFactory, event)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize factory")
	}

	srv.events.publish(ctx, event)

	return state, nil
}

// GetFactoryState returns the current factory state of a registry.
func (srv *factoryService) GetFactoryState(ctx context.Context, kind entity.RegistryKind) (*entity.FactoryState, error) {
	if err := validateKind(kind); err != nil {
		return nil, err
	}

	var state *entity.FactoryState
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := loadFactory(ctx, repoFactory.FactoryRepo(), kind, false)
		if err != nil {
			return err
		}
		state = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get factory state")
	}

	return state, nil
}

// SetRegistrationFee changes the fee charged to subsequent registrations.
func (srv *factoryService) SetRegistrationFee(ctx context.Context, kind entity.RegistryKind, caller string, fee uint64) (*entity.FactoryState, error) {
	if err := validateKind(kind); err != nil {
		return nil, err
	}
	if err := checkAmount(fee); err != nil {
		return nil, err
	}

	var event *entity.Event
	state, err := srv.mutateAsAdmin(ctx, kind, caller, func(state *entity.FactoryState) error {
		event = newEvent(ctx, entity.EventFactoryFeeUpdated, kind, caller)
		event.Amount = fee
		event.OldValue = strconv.FormatUint(state.RegistrationFee, 10)
		event.NewValue = strconv.FormatUint(fee, 10)

		state.RegistrationFee = fee

		return nil
	}, func(repoFactory repository.RepositoryFactory) error {
		return srv.events.stage(ctx, repoFactory, event)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to set registration fee")
	}

	srv.log(ctx).Info("Registration fee updated",
		slog.String("kind", kind.String()),
		slog.String("old_fee", event.OldValue),
		slog.String("new_fee", event.NewValue),
	)
	srv.events.publish(ctx, event)

	return state, nil
}

// WithdrawFees moves amount from the vault to the destination account.
func (srv *factoryService) WithdrawFees(ctx context.Context, kind entity.RegistryKind, caller string, input *usecase.WithdrawFeesInput) (*entity.FactoryState, error) {
	if err := validateKind(kind); err != nil {
		return nil, err
	}
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("withdrawal is required")
	}
	if err := srv.identity.ValidateAddress(input.Destination); err != nil {
		return nil, errors.Wrap(err, "invalid destination address")
	}
	if err := checkAmount(input.Amount); err != nil {
		return nil, err
	}
	if input.Amount == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("amount must be greater than zero")
	}

	var event *entity.Event
	state, err := srv.mutateAsAdmin(ctx, kind, caller, func(state *entity.FactoryState) error {
		// Only the vendor vault has a distinct empty state; an empty user vault is a plain shortfall.
		if kind == entity.RegistryKindVendor && state.TotalFeesCollected == 0 {
			return domainerrors.ErrNoFeesToWithdraw.WithDetails(kind.String())
		}
		insufficient := domainerrors.ErrInsufficientBalance.WithDetails(
			"requested " + strconv.FormatUint(input.Amount, 10) + ", vault holds " + strconv.FormatUint(state.TotalFeesCollected, 10),
		)
		remaining, err := subAmount(state.TotalFeesCollected, input.Amount, insufficient)
		if err != nil {
			return err
		}
		state.TotalFeesCollected = remaining

		return nil
	}, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		account, err := accountRepo.FindForUpdate(ctx, input.Destination)
		if err != nil {
			return errors.Wrap(err, "failed to find destination account")
		}
		balance, err := addAmount(account.Balance, input.Amount)
		if err != nil {
			return err
		}
		account.Balance = balance
		account.UpdatedAt = time.Now().UTC()
		if err := accountRepo.Save(ctx, account); err != nil {
			return errors.Wrap(err, "failed to credit destination account")
		}

		event = newEvent(ctx, entity.EventFactoryFeesWithdrawn, kind, caller)
		event.Amount = input.Amount
		event.NewValue = input.Destination

		return srv.events.stage(ctx, repoFactory, event)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to withdraw fees")
	}

	srv.log(ctx).Info("Fees withdrawn",
		slog.String("kind", kind.String()),
		slog.Uint64("amount", input.Amount),
		slog.String("destination", input.Destination),
	)
	srv.events.publish(ctx, event)

	return state, nil
}

// PauseRegistration opens or closes the vendor registration gate.
func (srv *factoryService) PauseRegistration(ctx context.Context, kind entity.RegistryKind, caller string, paused bool) (*entity.FactoryState, error) {
	if err := validateKind(kind); err != nil {
		return nil, err
	}
	if kind != entity.RegistryKindVendor {
		return nil, domainerrors.ErrValidationFailed.WithDetails("only the vendor registry can be paused")
	}

	var event *entity.Event
	state, err := srv.mutateAsAdmin(ctx, kind, caller, func(state *entity.FactoryState) error {
		event = newEvent(ctx, entity.EventFactoryRegistrationPaused, kind, caller)
		event.OldValue = strconv.FormatBool(state.Paused)
		event.NewValue = strconv.FormatBool(paused)

		state.Paused = paused

		return nil
	}, func(repoFactory repository.RepositoryFactory) error {
		return srv.events.stage(ctx, repoFactory, event)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to pause registration")
	}

	srv.log(ctx).Info("Registration gate changed", slog.String("kind", kind.String()), slog.Bool("paused", paused))
	srv.events.publish(ctx, event)

	return state, nil
}

// mutateAsAdmin locks the factory, checks the caller is its admin, applies
// mutate, stores the state and then runs after in the same transaction.
func (srv *factoryService) mutateAsAdmin(
	ctx context.Context,
	kind entity.RegistryKind,
	caller string,
	mutate func(state *entity.FactoryState) error,
	after func(repoFactory repository.RepositoryFactory) error,
) (*entity.FactoryState, error) {
	var updated *entity.FactoryState
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		factoryRepo := repoFactory.FactoryRepo()

		state, err := loadFactory(ctx, factoryRepo, kind, true)
		if err != nil {
			return err
		}
		if !state.IsAdmin(caller) {
			srv.log(ctx).Warn("Rejected admin operation", slog.String("kind", kind.String()), slog.String("caller", caller))

			return domainerrors.ErrUnauthorized.WithDetails("caller is not the factory admin")
		}

		if err := mutate(state); err != nil {
			return err
		}
		state.UpdatedAt = time.Now().UTC()
		if err := factoryRepo.Update(ctx, state); err != nil {
			return errors.Wrap(err, "failed to update factory state")
		}
		if err := after(repoFactory); err != nil {
			return err
		}
		updated = state

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}
