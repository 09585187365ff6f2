// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"afrimart/internal/domain/entity"
	domainerrors "afrimart/internal/domain/errors"
	"afrimart/internal/domain/repository"
	"afrimart/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Columns rewritten by a location save. created_at is left alone so the
// upsert behaves as a merge on an existing row.
var locationColumns = []string{
	"latitude",
	"longitude",
	"accuracy_meters",
	"captured_at",
	"address",
	"updated_at",
}

// userLocationRepository implements the domain.UserLocationRepository interface.
type userLocationRepository struct {
	db *gorm.DB
}

// NewUserLocationRepository is the constructor for userLocationRepository.
func NewUserLocationRepository(db *gorm.DB) repository.UserLocationRepository {
	return &userLocationRepository{db: db}
}

// MergeLocation upserts the user's last location and address.
func (repo *userLocationRepository) MergeLocation(ctx context.Context, userID string, update *entity.LocationUpdate) (*entity.UserLocationRecord, error) {
	locationM := fromLocationUpdate(userID, update)

	if err := upsertLocation(repo.db.WithContext(ctx), locationM).Error; err != nil {
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return nil, domainerrors.ErrInvalidCoordinate.WrapMessage("location rejected by database constraint")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to upsert user location")
	}

	return toLocationDomain(locationM), nil
}

func upsertLocation(db *gorm.DB, locationM *model.UserLocationModel) *gorm.DB {
	return db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns(locationColumns),
		}).
		Create(locationM)
}

// FindByUserID retrieves the user's location record.
func (repo *userLocationRepository) FindByUserID(ctx context.Context, userID string) (*entity.UserLocationRecord, error) {
	var locationM model.UserLocationModel

	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&locationM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find user location")
	}

	return toLocationDomain(&locationM), nil
}

// UpdateAddress sets the address only while the row still holds the location
// captured at locationTimestamp. No matching row yields repository.ErrStaleLocation.
func (repo *userLocationRepository) UpdateAddress(ctx context.Context, userID string, locationTimestamp int64, address *entity.Address) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserLocationModel{}).
		Where("user_id = ? AND captured_at = ?", userID, locationTimestamp).
		Select("address", "updated_at").
		Updates(&model.UserLocationModel{
			Address:   fromAddressDomain(address),
			UpdatedAt: time.Now(),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user location address")
	}

	if result.RowsAffected == 0 {
		return repository.ErrStaleLocation
	}

	return nil
}

func toLocationDomain(data *model.UserLocationModel) *entity.UserLocationRecord {
	if data == nil {
		return nil
	}

	return &entity.UserLocationRecord{
		UserID: data.UserID,
		LastLocation: entity.Coordinate{
			Latitude:  data.Latitude,
			Longitude: data.Longitude,
			Accuracy:  data.AccuracyMeters,
			Timestamp: data.CapturedAt,
		},
		LastAddress: toAddressDomain(data.Address),
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromLocationUpdate(userID string, update *entity.LocationUpdate) *model.UserLocationModel {
	return &model.UserLocationModel{
		UserID:         userID,
		Latitude:       update.LastLocation.Latitude,
		Longitude:      update.LastLocation.Longitude,
		AccuracyMeters: update.LastLocation.Accuracy,
		CapturedAt:     update.LastLocation.Timestamp,
		Address:        fromAddressDomain(update.LastAddress),
	}
}

func toAddressDomain(data *model.AddressData) *entity.Address {
	if data == nil {
		return nil
	}

	return &entity.Address{
		Formatted:  data.Formatted,
		Street:     data.Street,
		City:       data.City,
		Region:     data.Region,
		PostalCode: data.PostalCode,
		Country:    data.Country,
	}
}

func fromAddressDomain(data *entity.Address) *model.AddressData {
	if data == nil {
		return nil
	}

	return &model.AddressData{
		Formatted:  data.Formatted,
		Street:     data.Street,
		City:       data.City,
		Region:     data.Region,
		PostalCode: data.PostalCode,
		Country:    data.Country,
	}
}
