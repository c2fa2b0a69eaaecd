package repository

import (
	"context"

	"registry/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrDuplicateEvent is returned when an event with the same ID was already recorded.
var ErrDuplicateEvent = errors.New("event already recorded")

// EventRepository stores the activity feed.
type EventRepository interface {
	// Create records an event.
	Create(ctx context.Context, event *entity.Event) error

	// List returns events newest first, plus the total count. An empty kind lists every registry.
	List(ctx context.Context, kind entity.RegistryKind, offset, limit int) ([]*entity.Event, int64, error)
}
