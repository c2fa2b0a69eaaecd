package usecase

import (
	"context"

	"registry/internal/domain/entity"
)

// ActivityUsecase maintains the event feed.
type ActivityUsecase interface {
	// Record stores an event once. Replays of a recorded event report false and no error.
	Record(ctx context.Context, event *entity.Event) (bool, error)
	ListEvents(ctx context.Context, kind entity.RegistryKind, offset, limit int) (*EventPage, error)
}
