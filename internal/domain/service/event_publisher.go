package service

import (
	"context"

	"registry/internal/domain/entity"
)

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishRegistryEvent publishes a committed registry mutation
	PublishRegistryEvent(ctx context.Context, event *entity.Event) error

	// Close releases any resources held by the publisher
	Close() error
}
