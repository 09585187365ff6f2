package firebase

import (
	"context"
	"time"

	"afrimart/config"
	"afrimart/internal/domain/entity"
	domainerrors "afrimart/internal/domain/errors"
	"afrimart/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const defaultUsersCollection = "users"

// Firestore field names of the user document.
const (
	fieldLastLocation = "lastLocation"
	fieldLastAddress  = "lastAddress"
	fieldUpdatedAt    = "updatedAt"
)

type coordinateDocument struct {
	Latitude  float64  `firestore:"latitude"`
	Longitude float64  `firestore:"longitude"`
	Accuracy  *float64 `firestore:"accuracy"`
	Timestamp int64    `firestore:"timestamp"`
}

type addressDocument struct {
	Formatted  string  `firestore:"formatted"`
	Street     *string `firestore:"street,omitempty"`
	City       *string `firestore:"city,omitempty"`
	Region     *string `firestore:"region,omitempty"`
	PostalCode *string `firestore:"postalCode,omitempty"`
	Country    *string `firestore:"country,omitempty"`
}

// userDocument is the part of users/{uid} this repository reads. Other fields
// on the document belong to other features and are never written here.
type userDocument struct {
	LastLocation *coordinateDocument `firestore:"lastLocation"`
	LastAddress  *addressDocument    `firestore:"lastAddress"`
	UpdatedAt    time.Time           `firestore:"updatedAt"`
}

// userLocationRepository implements the domain.UserLocationRepository interface on Firestore.
type userLocationRepository struct {
	client *firestore.Client
	users  *firestore.CollectionRef
}

// NewUserLocationRepository is the constructor for userLocationRepository.
func NewUserLocationRepository(client *firestore.Client, cfg *config.Config) repository.UserLocationRepository {
	collection := defaultUsersCollection
	if cfg.Firebase != nil && cfg.Firebase.UsersCollection != "" {
		collection = cfg.Firebase.UsersCollection
	}

	return &userLocationRepository{
		client: client,
		users:  client.Collection(collection),
	}
}

// MergeLocation merge-writes lastLocation, lastAddress and a server-assigned updatedAt.
func (repo *userLocationRepository) MergeLocation(ctx context.Context, userID string, update *entity.LocationUpdate) (*entity.UserLocationRecord, error) {
	result, err := repo.users.Doc(userID).Set(ctx, mergePayload(update), firestore.MergeAll)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to merge user location")
	}

	return &entity.UserLocationRecord{
		UserID:       userID,
		LastLocation: update.LastLocation,
		LastAddress:  update.LastAddress,
		UpdatedAt:    result.UpdateTime,
	}, nil
}

// mergePayload holds the only top-level fields a location save writes.
func mergePayload(update *entity.LocationUpdate) map[string]any {
	return map[string]any{
		fieldLastLocation: fromCoordinateDomain(update.LastLocation),
		fieldLastAddress:  fromAddressDomain(update.LastAddress),
		fieldUpdatedAt:    firestore.ServerTimestamp,
	}
}

// FindByUserID reads users/{uid}; a document without lastLocation counts as not found.
func (repo *userLocationRepository) FindByUserID(ctx context.Context, userID string) (*entity.UserLocationRecord, error) {
	snap, err := repo.users.Doc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrUserLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to get user document")
	}

	var doc userDocument
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode user document")
	}

	if doc.LastLocation == nil {
		return nil, repository.ErrUserLocationNotFound
	}

	return toLocationDomain(userID, &doc), nil
}

// UpdateAddress sets lastAddress in a transaction, only while lastLocation still
// carries locationTimestamp.
func (repo *userLocationRepository) UpdateAddress(ctx context.Context, userID string, locationTimestamp int64, address *entity.Address) error {
	ref := repo.users.Doc(userID)

	err := repo.client.RunTransaction(ctx, func(_ context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return repository.ErrStaleLocation
			}

			return errors.Wrap(err, "failed to get user document")
		}

		var doc userDocument
		if err := snap.DataTo(&doc); err != nil {
			return errors.Wrap(err, "failed to decode user document")
		}

		if doc.LastLocation == nil || doc.LastLocation.Timestamp != locationTimestamp {
			return repository.ErrStaleLocation
		}

		return tx.Update(ref, []firestore.Update{
			{Path: fieldLastAddress, Value: fromAddressDomain(address)},
			{Path: fieldUpdatedAt, Value: firestore.ServerTimestamp},
		})
	})
	if err != nil {
		if errors.Is(err, repository.ErrStaleLocation) {
			return repository.ErrStaleLocation
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update user address")
	}

	return nil
}

func toLocationDomain(userID string, doc *userDocument) *entity.UserLocationRecord {
	record := &entity.UserLocationRecord{
		UserID:      userID,
		LastAddress: toAddressDomain(doc.LastAddress),
		UpdatedAt:   doc.UpdatedAt,
	}
	if doc.LastLocation != nil {
		record.LastLocation = entity.Coordinate{
			Latitude:  doc.LastLocation.Latitude,
			Longitude: doc.LastLocation.Longitude,
			Accuracy:  doc.LastLocation.Accuracy,
			Timestamp: doc.LastLocation.Timestamp,
		}
	}

	return record
}

func fromCoordinateDomain(c entity.Coordinate) *coordinateDocument {
	return &coordinateDocument{
		Latitude:  c.Latitude,
		Longitude: c.Longitude,
		Accuracy:  c.Accuracy,
		Timestamp: c.Timestamp,
	}
}

func toAddressDomain(doc *addressDocument) *entity.Address {
	if doc == nil {
		return nil
	}

	return &entity.Address{
		Formatted:  doc.Formatted,
		Street:     doc.Street,
		City:       doc.City,
		Region:     doc.Region,
		PostalCode: doc.PostalCode,
		Country:    doc.Country,
	}
}

func fromAddressDomain(a *entity.Address) *addressDocument {
	if a == nil {
		return nil
	}

	return &addressDocument{
		Formatted:  a.Formatted,
		Street:     a.Street,
		City:       a.City,
		Region:     a.Region,
		PostalCode: a.PostalCode,
		Country:    a.Country,
	}
}
