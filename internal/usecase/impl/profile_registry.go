package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "registry/internal/delivery/context"
	"registry/internal/domain/entity"
	domainerrors "registry/internal/domain/errors"
	"registry/internal/domain/repository"
	"registry/internal/domain/service"
	"registry/internal/usecase"
	"registry/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// profileRegistry holds the operations shared by the user and vendor registries.
type profileRegistry struct {
	kind         entity.RegistryKind
	txManager    repository.TransactionManager
	identity     service.IdentityService
	events       *eventRecorder
	maxPageLimit int
	logger       *slog.Logger
}

type registrationConfig struct {
	Caller    string
	Name      string
	Bio       string
	EventType entity.EventType
	// CheckGate runs against the locked factory state before any other check.
	CheckGate func(state *entity.FactoryState) error
}

// ownerMutation changes a locked profile and returns the event describing the
// change. A nil event means nothing changed and nothing is written.
type ownerMutation func(repoFactory repository.RepositoryFactory, profile *entity.Profile) (*entity.Event, error)

func (r *profileRegistry) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, r.logger)
}

// register charges the registration fee and creates the profile and its name record atomically.
func (r *profileRegistry) register(ctx context.Context, cfg *registrationConfig) (*entity.Profile, error) {
	if err := r.identity.ValidateAddress(cfg.Caller); err != nil {
		return nil, errors.Wrap(err, "invalid registrant address")
	}

	r.log(ctx).Info("Starting registration", slog.String("kind", r.kind.String()), slog.String("name", cfg.Name))

	var (
		profile *entity.Profile
		event   *entity.Event
	)
	err := r.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		factoryRepo := repoFactory.FactoryRepo()
		nameRepo := repoFactory.NameRegistryRepo()
		profileRepo := repoFactory.ProfileRepo()
		accountRepo := repoFactory.AccountRepo()

		// 1. Lock the factory so registrations and renames serialize
		state, err := loadFactory(ctx, factoryRepo, r.kind, true)
		if err != nil {
			return err
		}
		if cfg.CheckGate != nil {
			if err := cfg.CheckGate(state); err != nil {
				return err
			}
		}

		// 2. Validate and check the name is free
		if err := validateName(cfg.Name); err != nil {
			return err
		}
		if err := validateBio(r.kind, cfg.Bio); err != nil {
			return err
		}
		taken, err := nameRepo.Exists(ctx, r.kind, cfg.Name)
		if err != nil {
			return errors.Wrap(err, "failed to check name")
		}
		if taken {
			return domainerrors.ErrNameAlreadyTaken.WithDetails(cfg.Name)
		}

		// 3. The derived address must not hold a profile yet
		address, err := r.identity.ProfileAddress(r.kind, cfg.Caller, cfg.Name)
		if err != nil {
			return errors.Wrap(err, "failed to derive profile address")
		}
		if _, err := profileRepo.FindByAddress(ctx, address); err == nil {
			return domainerrors.ErrProfileAlreadyExists.WithDetails(address)
		} else if !errors.Is(err, repository.ErrProfileNotFound) {
			return errors.Wrap(err, "failed to find profile by address")
		}

		// 4. Check every amount before touching the ledger
		fee := state.RegistrationFee
		totalFees, err := addAmount(state.TotalFeesCollected, fee)
		if err != nil {
			return err
		}
		entityCount, err := addAmount(state.EntityCount, 1)
		if err != nil {
			return err
		}
		account, err := accountRepo.FindForUpdate(ctx, cfg.Caller)
		if err != nil {
			return errors.Wrap(err, "failed to find registrant account")
		}
		balance, err := subAmount(account.Balance, fee, domainerrors.ErrInsufficientFunds.WithDetails(
			"registration fee is "+util.FormatLamports(fee),
		))
		if err != nil {
			return err
		}

		// 5. Debit the registrant and credit the vault
		now := time.Now().UTC()
		account.Balance = balance
		account.UpdatedAt = now
		if err := accountRepo.Save(ctx, account); err != nil {
			return errors.Wrap(err, "failed to debit registrant account")
		}
		state.TotalFeesCollected = totalFees
		state.EntityCount = entityCount
		state.UpdatedAt = now
		if err := factoryRepo.Update(ctx, state); err != nil {
			return errors.Wrap(err, "failed to update factory state")
		}

		// 6. Create the profile and claim its name
		profile = &entity.Profile{
			ID:        uuid.Must(uuid.NewV7()),
			Kind:      r.kind,
			Address:   address,
			Owner:     cfg.Caller,
			Name:      cfg.Name,
			Bio:       cfg.Bio,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := profileRepo.Create(ctx, profile); err != nil {
			if errors.Is(err, repository.ErrDuplicateProfile) {
				return domainerrors.ErrProfileAlreadyExists.WithDetails(address)
			}

			return errors.Wrap(err, "failed to create profile")
		}
		if err := nameRepo.Create(ctx, &entity.NameRecord{
			Kind:      r.kind,
			Name:      cfg.Name,
			ProfileID: profile.ID,
			CreatedAt: now,
		}); err != nil {
			if errors.Is(err, repository.ErrDuplicateName) {
				return domainerrors.ErrNameAlreadyTaken.WithDetails(cfg.Name)
			}

			return errors.Wrap(err, "failed to create name record")
		}

		event = newProfileEvent(ctx, cfg.EventType, profile, cfg.Caller)
		event.Amount = fee

		return r.events.stage(ctx, repoFactory, event)
	})
	if err != nil {
		r.log(ctx).Warn("Registration failed", slog.String("kind", r.kind.String()), slog.String("name", cfg.Name), slog.Any("error", err))

		return nil, errors.Wrapf(err, "failed to register %s", r.kind)
	}

	r.log(ctx).Info("Registration completed",
		slog.String("kind", r.kind.String()),
		slog.String("name", profile.Name),
		slog.String("address", profile.Address),
		slog.String("fee", util.FormatLamports(event.Amount)),
	)
	r.events.publish(ctx, event)

	return profile, nil
}

// available reports whether a name can still be registered.
func (r *profileRegistry) available(ctx context.Context, name string) (bool, error) {
	if err := validateName(name); err != nil {
		return false, err
	}

	var taken bool
	err := r.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		exists, err := repoFactory.NameRegistryRepo().Exists(ctx, r.kind, name)
		if err != nil {
			return errors.Wrap(err, "failed to check name")
		}
		taken = exists

		return nil
	})
	if err != nil {
		return false, errors.Wrap(err, "failed to check name availability")
	}

	return !taken, nil
}

func (r *profileRegistry) get(ctx context.Context, name string) (*entity.Profile, error) {
	var profile *entity.Profile
	err := r.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := findProfile(ctx, repoFactory.ProfileRepo(), r.kind, name, false)
		if err != nil {
			return err
		}
		profile = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get %s", r.kind)
	}

	return profile, nil
}

func (r *profileRegistry) list(ctx context.Context, offset, limit int) (*usecase.ProfilePage, error) {
	offset, limit, err := clampPage(offset, limit, r.maxPageLimit)
	if err != nil {
		return nil, err
	}

	page := &usecase.ProfilePage{Offset: offset, Limit: limit}
	err = r.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profiles, total, err := repoFactory.ProfileRepo().List(ctx, r.kind, offset, limit)
		if err != nil {
			return errors.Wrap(err, "failed to list profiles")
		}
		page.Items = profiles
		page.Total = total

		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list %s profiles", r.kind)
	}

	return page, nil
}

func (r *profileRegistry) updateBio(ctx context.Context, caller, name, bio string, eventType entity.EventType) (*entity.Profile, error) {
	if err := validateBio(r.kind, bio); err != nil {
		return nil, err
	}

	return r.mutateAsOwner(ctx, caller, name, false, func(_ repository.RepositoryFactory, profile *entity.Profile) (*entity.Event, error) {
		event := newProfileEvent(ctx, eventType, profile, caller)
		event.OldValue = profile.Bio
		event.NewValue = bio

		profile.Bio = bio

		return event, nil
	})
}

func (r *profileRegistry) transferOwnership(ctx context.Context, caller, name, newOwner string) (*entity.Profile, error) {
	if err := r.identity.ValidateAddress(newOwner); err != nil {
		return nil, errors.Wrap(err, "invalid new owner address")
	}

	return r.mutateAsOwner(ctx, caller, name, false, func(_ repository.RepositoryFactory, profile *entity.Profile) (*entity.Event, error) {
		event := newProfileEvent(ctx, entity.EventProfileOwnershipTransferred, profile, caller)
		event.OldValue = profile.Owner
		event.NewValue = newOwner

		profile.Owner = newOwner

		return event, nil
	})
}

// mutateAsOwner locks the profile, checks the caller owns it and stores the
// change made by mutate together with its event. lockFactory additionally
// serializes the mutation against registrations.
func (r *profileRegistry) mutateAsOwner(ctx context.Context, caller, name string, lockFactory bool, mutate ownerMutation) (*entity.Profile, error) {
	var (
		profile *entity.Profile
		event   *entity.Event
	)
	err := r.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if lockFactory {
			if _, err := loadFactory(ctx, repoFactory.FactoryRepo(), r.kind, true); err != nil {
				return err
			}
		}

		profileRepo := repoFactory.ProfileRepo()
		found, err := findProfile(ctx, profileRepo, r.kind, name, true)
		if err != nil {
			return err
		}
		if !found.IsOwner(caller) {
			r.log(ctx).Warn("Rejected owner operation", slog.String("kind", r.kind.String()), slog.String("name", name), slog.String("caller", caller))

			return domainerrors.ErrUnauthorized.WithDetails("caller does not own the profile")
		}

		event, err = mutate(repoFactory, found)
		if err != nil {
			return err
		}
		profile = found
		if event == nil {
			return nil
		}

		profile.UpdatedAt = time.Now().UTC()
		if err := profileRepo.Update(ctx, profile); err != nil {
			return errors.Wrap(err, "failed to update profile")
		}

		return r.events.stage(ctx, repoFactory, event)
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update %s", r.kind)
	}

	if event != nil {
		r.log(ctx).Info("Profile updated",
			slog.String("kind", r.kind.String()),
			slog.String("name", profile.Name),
			slog.String("event_type", event.Type.String()),
		)
		r.events.publish(ctx, event)
	}

	return profile, nil
}

func findProfile(
	ctx context.Context,
	profileRepo repository.ProfileRepository,
	kind entity.RegistryKind,
	name string,
	forUpdate bool,
) (*entity.Profile, error) {
	var (
		profile *entity.Profile
		err     error
	)
	if forUpdate {
		profile, err = profileRepo.FindByNameForUpdate(ctx, kind, name)
	} else {
		profile, err = profileRepo.FindByName(ctx, kind, name)
	}
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound.WithDetails(name)
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	return profile, nil
}
