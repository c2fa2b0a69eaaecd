package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "registry/internal/delivery/context"
	"registry/internal/domain/entity"
	"registry/internal/domain/repository"
	"registry/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// eventRecorder writes events into the feed with the mutation they describe
// and publishes them once the transaction has committed.
type eventRecorder struct {
	publisher service.EventPublisher
	logger    *slog.Logger
}

func newEvent(ctx context.Context, eventType entity.EventType, kind entity.RegistryKind, actor string) *entity.Event {
	return &entity.Event{
		ID:         uuid.Must(uuid.NewV7()),
		Type:       eventType,
		Kind:       kind,
		Actor:      actor,
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		OccurredAt: time.Now().UTC(),
	}
}

func newProfileEvent(ctx context.Context, eventType entity.EventType, profile *entity.Profile, actor string) *entity.Event {
	event := newEvent(ctx, eventType, profile.Kind, actor)
	event.ProfileName = profile.Name
	event.ProfileAddress = profile.Address

	return event
}

// stage records the event inside the running transaction.
func (r *eventRecorder) stage(ctx context.Context, repoFactory repository.RepositoryFactory, event *entity.Event) error {
	if err := repoFactory.EventRepo().Create(ctx, event); err != nil {
		return errors.Wrap(err, "failed to record event")
	}

	return nil
}

// publish must only be called after commit. A failed publish never undoes the ledger.
func (r *eventRecorder) publish(ctx context.Context, events ...*entity.Event) {
	if r.publisher == nil {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, r.logger)
	for _, event := range events {
		if event == nil {
			continue
		}
		if err := r.publisher.PublishRegistryEvent(ctx, event); err != nil {
			logger.Error("Failed to publish registry event",
				slog.String("event_id", event.ID.String()),
				slog.String("event_type", event.Type.String()),
				slog.Any("error", err),
			)
		}
	}
}
