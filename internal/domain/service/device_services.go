package service

import (
	"context"

	"afrimart/internal/domain/entity"
)

// PermissionService is the operating system's location permission API.
type PermissionService interface {
	// Check returns the current permission without prompting the user.
	Check(ctx context.Context) (entity.PermissionState, error)

	// Request shows the consent prompt when the user has not decided yet and returns the result.
	Request(ctx context.Context) (entity.PermissionState, error)

	// OpenSettings hands control to the system settings surface.
	OpenSettings(ctx context.Context) error
}

// CoordinateProvider produces a single coordinate fix from the device.
type CoordinateProvider interface {
	CurrentPosition(ctx context.Context, accuracy entity.Accuracy) (*entity.Coordinate, error)
}

// ForegroundNotifier delivers "app returned to the foreground" events.
type ForegroundNotifier interface {
	// Subscribe registers fn; the returned Subscription must be closed to stop delivery.
	Subscribe(fn func()) Subscription
}

// Subscription is the teardown handle of a listener registration.
type Subscription interface {
	Close()
}

// FlagStore is the on-device key-value store.
type FlagStore interface {
	GetBool(ctx context.Context, key string) (bool, error)
	SetBool(ctx context.Context, key string, value bool) error
	Delete(ctx context.Context, key string) error
}
