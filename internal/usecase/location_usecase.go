package usecase

import (
	"context"

	"afrimart/internal/domain/entity"
)

// LocationUsecase defines the location persistence and labeling use cases.
type LocationUsecase interface {
	// SaveLocation validates, reverse geocodes (best effort) and merge-writes the user's location.
	SaveLocation(ctx context.Context, userID string, coord entity.Coordinate) (*entity.SavedLocation, error)

	// GetLocation returns the user's persisted location record.
	GetLocation(ctx context.Context, userID string) (*entity.UserLocationRecord, error)

	// DeriveDisplay picks the status and label to show for a saved address.
	DeriveDisplay(address *entity.Address, previous *entity.LocationDisplay) entity.LocationDisplay

	// RecordDisplay derives the display from the user's persisted record.
	RecordDisplay(ctx context.Context, userID string) entity.LocationDisplay

	// BackfillAddress retries reverse geocoding for a record saved without an address.
	BackfillAddress(ctx context.Context, userID string, coord entity.Coordinate) (*entity.Address, error)
}
