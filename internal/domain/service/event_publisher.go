package service

import (
	"context"

	"afrimart/internal/domain/entity"
)

// LocationUpdatedEvent is published after a user's location record was written.
type LocationUpdatedEvent struct {
	RequestID  string            `json:"request_id,omitempty"` // For distributed tracing
	EventID    string            `json:"event_id"`
	Type       string            `json:"type"`
	UserID     string            `json:"user_id"`
	Coordinate entity.Coordinate `json:"coordinate"`
	Address    *entity.Address   `json:"address,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishLocationUpdated publishes a location event for async processing
	PublishLocationUpdated(ctx context.Context, event *LocationUpdatedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
