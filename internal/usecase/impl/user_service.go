package impl

import (
	"context"
	"log/slog"
	"time"

	"registry/config"
	"registry/internal/domain/entity"
	domainerrors "registry/internal/domain/errors"
	"registry/internal/domain/repository"
	"registry/internal/domain/service"
	"registry/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	*profileRegistry
}

// RegistryServiceParams holds dependencies for the user and vendor services, injected by Fx.
type RegistryServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Identity  service.IdentityService
	Publisher service.EventPublisher
	QRCode    service.QRCodeService `optional:"true"`
	Config    *config.Config
	Logger    *slog.Logger
}

func newProfileRegistry(kind entity.RegistryKind, params RegistryServiceParams) *profileRegistry {
	maxPageLimit := 0
	if params.Config != nil && params.Config.Registry != nil {
		maxPageLimit = params.Config.Registry.MaxPageLimit
	}
	if maxPageLimit <= 0 {
		maxPageLimit = defaultMaxPageLimit
	}

	return &profileRegistry{
		kind:         kind,
		txManager:    params.TxManager,
		identity:     params.Identity,
		events:       &eventRecorder{publisher: params.Publisher, logger: params.Logger},
		maxPageLimit: maxPageLimit,
		logger:       params.Logger,
	}
}

const defaultMaxPageLimit = 50

// NewUserService is the constructor for userService.
func NewUserService(params RegistryServiceParams) usecase.UserUsecase {
	return &userService{profileRegistry: newProfileRegistry(entity.RegistryKindUser, params)}
}

// RegisterUser pays the registration fee and claims a username. Each registrant holds at most one profile.
func (srv *userService) RegisterUser(ctx context.Context, caller string, input *usecase.RegisterUserInput) (*entity.Profile, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("registration is required")
	}

	return srv.register(ctx, &registrationConfig{
		Caller:    caller,
		Name:      input.Username,
		Bio:       input.Bio,
		EventType: entity.EventUserRegistered,
	})
}

// CheckUsername reports true when the username is free.
func (srv *userService) CheckUsername(ctx context.Context, name string) (bool, error) {
	return srv.available(ctx, name)
}

// GetUser returns the profile holding the username.
func (srv *userService) GetUser(ctx context.Context, name string) (*entity.Profile, error) {
	return srv.get(ctx, name)
}

// ListUsers returns registered users in registration order.
func (srv *userService) ListUsers(ctx context.Context, offset, limit int) (*usecase.ProfilePage, error) {
	return srv.list(ctx, offset, limit)
}

// UpdateBio replaces the bio of a user profile.
func (srv *userService) UpdateBio(ctx context.Context, caller, name, bio string) (*entity.Profile, error) {
	return srv.updateBio(ctx, caller, name, bio, entity.EventUserBioUpdated)
}

// ChangeUsername moves a profile to a new username. The old name is released
// and the new one claimed in the same transaction as the profile update.
func (srv *userService) ChangeUsername(ctx context.Context, caller, name, newName string) (*entity.Profile, error) {
	if err := validateName(newName); err != nil {
		return nil, err
	}

	return srv.mutateAsOwner(ctx, caller, name, true, func(repoFactory repository.RepositoryFactory, profile *entity.Profile) (*entity.Event, error) {
		if newName == profile.Name {
			return nil, nil
		}

		nameRepo := repoFactory.NameRegistryRepo()
		taken, err := nameRepo.Exists(ctx, srv.kind, newName)
		if err != nil {
			return nil, errors.Wrap(err, "failed to check name")
		}
		if taken {
			return nil, domainerrors.ErrNameAlreadyTaken.WithDetails(newName)
		}

		if err := nameRepo.Delete(ctx, srv.kind, profile.Name); err != nil {
			return nil, errors.Wrap(err, "failed to release old name")
		}
		if err := nameRepo.Create(ctx, &entity.NameRecord{
			Kind:      srv.kind,
			Name:      newName,
			ProfileID: profile.ID,
			CreatedAt: time.Now().UTC(),
		}); err != nil {
			if errors.Is(err, repository.ErrDuplicateName) {
				return nil, domainerrors.ErrNameAlreadyTaken.WithDetails(newName)
			}

			return nil, errors.Wrap(err, "failed to claim new name")
		}

		event := newProfileEvent(ctx, entity.EventUserUsernameChanged, profile, caller)
		event.OldValue = profile.Name
		event.NewValue = newName
		event.ProfileName = newName

		profile.Name = newName

		return event, nil
	})
}

// TransferOwnership hands control of a user profile to another address.
func (srv *userService) TransferOwnership(ctx context.Context, caller, name, newOwner string) (*entity.Profile, error) {
	return srv.transferOwnership(ctx, caller, name, newOwner)
}
