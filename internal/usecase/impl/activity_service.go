package impl

import (
	"context"
	"log/slog"

	"registry/config"
	deliverycontext "registry/internal/delivery/context"
	"registry/internal/domain/entity"
	domainerrors "registry/internal/domain/errors"
	"registry/internal/domain/repository"
	"registry/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// activityService implements the ActivityUsecase interface.
type activityService struct {
	txManager    repository.TransactionManager
	maxPageLimit int
	logger       *slog.Logger
}

// ActivityServiceParams holds dependencies for ActivityService, injected by Fx.
type ActivityServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Config    *config.Config
	Logger    *slog.Logger
}

// NewActivityService is the constructor for activityService.
func NewActivityService(params ActivityServiceParams) usecase.ActivityUsecase {
	maxPageLimit := defaultMaxPageLimit
	if params.Config != nil && params.Config.Registry != nil && params.Config.Registry.MaxPageLimit > 0 {
		maxPageLimit = params.Config.Registry.MaxPageLimit
	}

	return &activityService{
		txManager:    params.TxManager,
		maxPageLimit: maxPageLimit,
		logger:       params.Logger,
	}
}

// Record stores a delivered event. Redelivery of a stored event is acknowledged without error.
func (srv *activityService) Record(ctx context.Context, event *entity.Event) (bool, error) {
	if event == nil || event.ID == uuid.Nil {
		return false, domainerrors.ErrValidationFailed.WithDetails("event id is required")
	}
	if err := validateKind(event.Kind); err != nil {
		return false, err
	}
	if event.Type == "" {
		return false, domainerrors.ErrValidationFailed.WithDetails("event type is required")
	}
	if len(event.RequestID) > entity.MaxRequestIDLength {
		return false, domainerrors.ErrValidationFailed.WithDetails("request id is too long")
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.EventRepo().Create(ctx, event)
	})
	if errors.Is(err, repository.ErrDuplicateEvent) {
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Debug("Event already recorded",
			slog.String("event_id", event.ID.String()),
		)

		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "failed to record event")
	}

	return true, nil
}

// ListEvents returns the feed newest first. An empty kind lists both registries.
func (srv *activityService) ListEvents(ctx context.Context, kind entity.RegistryKind, offset, limit int) (*usecase.EventPage, error) {
	if kind != "" {
		if err := validateKind(kind); err != nil {
			return nil, err
		}
	}
	offset, limit, err := clampPage(offset, limit, srv.maxPageLimit)
	if err != nil {
		return nil, err
	}

	page := &usecase.EventPage{Offset: offset, Limit: limit}
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		events, total, err := repoFactory.EventRepo().List(ctx, kind, offset, limit)
		if err != nil {
			return errors.Wrap(err, "failed to list events")
		}
		page.Items = events
		page.Total = total

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list events")
	}

	return page, nil
}
