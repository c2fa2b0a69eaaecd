package postgres

import (
	"context"

	"registry/internal/domain/entity"
	"registry/internal/domain/repository"
	"registry/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// eventRepository implements the domain.EventRepository interface using GORM.
type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository is the constructor for eventRepository.
func NewEventRepository(db *gorm.DB) repository.EventRepository {
	return &eventRepository{db: db}
}

// Create records an event. The primary key makes recording idempotent.
func (repo *eventRepository) Create(ctx context.Context, event *entity.Event) error {
	eventM := &model.EventModel{
		ID:             event.ID,
		Type:           event.Type.String(),
		Kind:           event.Kind.String(),
		Actor:          event.Actor,
		ProfileName:    event.ProfileName,
		ProfileAddress: event.ProfileAddress,
		Amount:         int64(event.Amount),
		OldValue:       event.OldValue,
		NewValue:       event.NewValue,
		RequestID:      event.RequestID,
		OccurredAt:     event.OccurredAt,
	}
	if err := repo.db.WithContext(ctx).Create(eventM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateEvent
		}

		return errors.Wrap(err, "failed to record event")
	}

	return nil
}

// List returns events newest first. An empty kind lists every registry.
func (repo *eventRepository) List(ctx context.Context, kind entity.RegistryKind, offset, limit int) ([]*entity.Event, int64, error) {
	scoped := func() *gorm.DB {
		query := repo.db.WithContext(ctx).Model(&model.EventModel{})
		if kind != "" {
			query = query.Where("kind = ?", kind.String())
		}

		return query
	}

	var total int64
	if err := scoped().Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count events")
	}

	var eventMs []*model.EventModel
	if err := scoped().
		Order("occurred_at DESC, recorded_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&eventMs).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list events")
	}

	events := make([]*entity.Event, 0, len(eventMs))
	for _, eventM := range eventMs {
		events = append(events, toEventDomain(eventM))
	}

	return events, total, nil
}

// --- Mapper Functions ---

func toEventDomain(data *model.EventModel) *entity.Event {
	return &entity.Event{
		ID:             data.ID,
		Type:           entity.EventType(data.Type),
		Kind:           entity.RegistryKind(data.Kind),
		Actor:          data.Actor,
		ProfileName:    data.ProfileName,
		ProfileAddress: data.ProfileAddress,
		Amount:         uint64(data.Amount),
		OldValue:       data.OldValue,
		NewValue:       data.NewValue,
		RequestID:      data.RequestID,
		OccurredAt:     data.OccurredAt,
	}
}
