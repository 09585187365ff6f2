// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"afrimart/internal/domain/entity"
	"afrimart/internal/errors"
)

// Domain-specific errors for user location persistence.
var (
	// ErrUserLocationNotFound is returned when a user has never saved a location.
	ErrUserLocationNotFound = errors.New("user location not found")
	// ErrStaleLocation is returned when a conditional write finds a newer location on the record.
	ErrStaleLocation = errors.New("user location changed since event")
)

// UserLocationRepository stores the single last-known location record of each user.
type UserLocationRepository interface {
	// MergeLocation merge-writes lastLocation, lastAddress and a store-assigned updatedAt
	// into the user's record, creating it if needed. Unrelated fields are preserved.
	MergeLocation(ctx context.Context, userID string, update *entity.LocationUpdate) (*entity.UserLocationRecord, error)

	// FindByUserID is a point read of the user's record.
	// Returns ErrUserLocationNotFound when the user has no record.
	FindByUserID(ctx context.Context, userID string) (*entity.UserLocationRecord, error)

	// UpdateAddress sets lastAddress only if the stored lastLocation still has the given timestamp.
	// Returns ErrStaleLocation when the location moved on in the meantime.
	UpdateAddress(ctx context.Context, userID string, locationTimestamp int64, address *entity.Address) error
}
