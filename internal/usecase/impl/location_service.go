package impl

import (
	"context"
	"log/slog"

	deliverycontext "afrimart/internal/delivery/context"
	"afrimart/internal/domain/constants"
	"afrimart/internal/domain/entity"
	domainerrors "afrimart/internal/domain/errors"
	"afrimart/internal/domain/repository"
	"afrimart/internal/domain/service"
	"afrimart/internal/errors"
	"afrimart/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// LocationServiceParams holds dependencies for the location service, injected by Fx.
type LocationServiceParams struct {
	fx.In

	LocationRepo repository.UserLocationRepository
	Geocoder     service.ReverseGeocoder
	Publisher    service.EventPublisher `optional:"true"`
	Logger       *slog.Logger
}

type locationService struct {
	locationRepo repository.UserLocationRepository
	geocoder     service.ReverseGeocoder
	publisher    service.EventPublisher
	logger       *slog.Logger
}

// NewLocationService creates a new location service instance
func NewLocationService(params LocationServiceParams) usecase.LocationUsecase {
	return &locationService{
		locationRepo: params.LocationRepo,
		geocoder:     params.Geocoder,
		publisher:    params.Publisher,
		logger:       params.Logger,
	}
}

func (s *locationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// SaveLocation runs validate -> reverse geocode -> merge-write and returns the
// saved pair so the caller can show a label without reading the record back.
func (s *locationService) SaveLocation(ctx context.Context, userID string, coord entity.Coordinate) (*entity.SavedLocation, error) {
	if userID == "" {
		return nil, domainerrors.ErrMissingUserIdentity
	}

	if !entity.IsValidCoords(&coord) {
		return nil, domainerrors.ErrInvalidCoordinate
	}

	address := s.reverseGeocode(ctx, coord)

	update := &entity.LocationUpdate{
		LastLocation: coord,
		LastAddress:  address,
	}
	if _, err := s.locationRepo.MergeLocation(ctx, userID, update); err != nil {
		s.log(ctx).Warn("Failed to persist user location",
			slog.String("user_id", userID),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(domainerrors.ErrPersistenceFailure, err.Error())
	}

	s.publishUpdated(ctx, userID, coord, address)

	return &entity.SavedLocation{
		Coordinate: coord,
		Address:    address,
	}, nil
}

// reverseGeocode never fails the pipeline: any error degrades to "no address".
func (s *locationService) reverseGeocode(ctx context.Context, coord entity.Coordinate) *entity.Address {
	if s.geocoder == nil {
		return nil
	}

	address, err := s.geocoder.Reverse(ctx, coord)
	if err != nil {
		s.log(ctx).Warn("Reverse geocoding failed, saving without address",
			slog.String("code", domainerrors.ErrGeocodeFailure.ErrorCode()),
			slog.Float64("latitude", coord.Latitude),
			slog.Float64("longitude", coord.Longitude),
			slog.Any("error", err),
		)

		return nil
	}

	return address
}

func (s *locationService) publishUpdated(ctx context.Context, userID string, coord entity.Coordinate, address *entity.Address) {
	if s.publisher == nil {
		return
	}

	event := &service.LocationUpdatedEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EventID:    uuid.New().String(),
		Type:       constants.EventTypeLocationUpdated,
		UserID:     userID,
		Coordinate: coord,
		Address:    address,
	}
	if err := s.publisher.PublishLocationUpdated(ctx, event); err != nil {
		s.log(ctx).Warn("Failed to publish location event",
			slog.String("user_id", userID),
			slog.Any("error", err),
		)
	}
}

// GetLocation retrieves the user's persisted location record
func (s *locationService) GetLocation(ctx context.Context, userID string) (*entity.UserLocationRecord, error) {
	if userID == "" {
		return nil, domainerrors.ErrMissingUserIdentity
	}

	record, err := s.locationRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserLocationNotFound) {
			return nil, domainerrors.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find user location")
	}

	return record, nil
}

// DeriveDisplay picks the label for a freshly saved address.
func (s *locationService) DeriveDisplay(address *entity.Address, previous *entity.LocationDisplay) entity.LocationDisplay {
	// A previous label only decides between "Location saved" and "No location".
	switch {
	case address.HasLabel():
		return entity.LocationDisplay{Status: entity.GateStepGranted, Label: address.Formatted}
	case address != nil:
		return entity.LocationDisplay{Status: entity.GateStepGranted, Label: entity.LabelLocationSaved}
	case previous != nil && previous.Label != "" && previous.Label != entity.LabelNoLocation:
		return entity.LocationDisplay{Status: entity.GateStepGranted, Label: entity.LabelLocationSaved}
	default:
		return entity.NoLocationDisplay()
	}
}

// RecordDisplay is the server half of the startup path: one point read, then
// the stored label or the "no location" fallback.
func (s *locationService) RecordDisplay(ctx context.Context, userID string) entity.LocationDisplay {
	if userID == "" {
		return entity.NoLocationDisplay()
	}

	record, err := s.locationRepo.FindByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, repository.ErrUserLocationNotFound) {
			s.log(ctx).Warn("Failed to read user location",
				slog.String("user_id", userID),
				slog.Any("error", err),
			)
		}

		return entity.NoLocationDisplay()
	}

	if record.LastAddress.HasLabel() {
		return entity.LocationDisplay{Status: entity.GateStepGranted, Label: record.LastAddress.Formatted}
	}

	return entity.NoLocationDisplay()
}

// BackfillAddress resolves an address for a location that was stored without one.
// The write is skipped with repository.ErrStaleLocation when a newer location was saved since.
func (s *locationService) BackfillAddress(ctx context.Context, userID string, coord entity.Coordinate) (*entity.Address, error) {
	if userID == "" {
		return nil, domainerrors.ErrMissingUserIdentity
	}
	if !entity.IsValidCoords(&coord) {
		return nil, domainerrors.ErrInvalidCoordinate
	}
	if s.geocoder == nil {
		return nil, nil
	}

	address, err := s.geocoder.Reverse(ctx, coord)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrGeocodeFailure, err.Error())
	}
	if address == nil {
		return nil, nil
	}

	if err := s.locationRepo.UpdateAddress(ctx, userID, coord.Timestamp, address); err != nil {
		return nil, errors.WithStack(err)
	}

	return address, nil
}
