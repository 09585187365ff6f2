package postgres

import (
	"fmt"
	"strings"
	"testing"

	"afrimart/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestLocationModelConversion(t *testing.T) {
	accuracy := 8.5
	city := "Montréal"
	update := &entity.LocationUpdate{
		LastLocation: entity.Coordinate{Latitude: 45.5017, Longitude: -73.5673, Accuracy: &accuracy, Timestamp: 1700000000000},
		LastAddress:  &entity.Address{Formatted: "123 Rue X, Montréal", City: &city},
	}

	locationM := fromLocationUpdate("user-1", update)
	require.NotNil(t, locationM.Address)
	assert.Equal(t, "user-1", locationM.UserID)
	assert.Equal(t, int64(1700000000000), locationM.CapturedAt)

	record := toLocationDomain(locationM)
	assert.Equal(t, "user-1", record.UserID)
	assert.Equal(t, update.LastLocation, record.LastLocation)
	assert.Equal(t, update.LastAddress, record.LastAddress)
}

func TestLocationModelConversion_NoAddress(t *testing.T) {
	locationM := fromLocationUpdate("user-1", &entity.LocationUpdate{
		LastLocation: entity.Coordinate{Latitude: 0, Longitude: 0, Timestamp: 1},
	})

	assert.Nil(t, locationM.Address)
	assert.Nil(t, toLocationDomain(locationM).LastAddress)
	assert.Nil(t, toLocationDomain(nil))
}

func newDryRunDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=afrimart dbname=afrimart sslmode=disable",
	}), &gorm.Config{
		DryRun:                 true,
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	return db
}

func TestUpsertLocation_UpdatesLocationColumnsOnly(t *testing.T) {
	db := newDryRunDB(t)
	locationM := fromLocationUpdate("user-1", &entity.LocationUpdate{
		LastLocation: entity.Coordinate{Latitude: 6.45, Longitude: 3.39, Timestamp: 1700000000000},
		LastAddress:  &entity.Address{Formatted: "12 Broad St, Lagos"},
	})

	stmt := upsertLocation(db, locationM).Statement
	sql := stmt.SQL.String()

	idx := strings.Index(sql, "DO UPDATE SET ")
	require.NotEqual(t, -1, idx, sql)
	assert.Contains(t, sql, `ON CONFLICT ("user_id")`)

	setList := strings.TrimPrefix(sql[idx:], "DO UPDATE SET ")
	if end := strings.Index(setList, " RETURNING"); end != -1 {
		setList = setList[:end]
	}

	assignments := make([]string, 0, len(locationColumns))
	for _, column := range locationColumns {
		assignments = append(assignments, fmt.Sprintf(`"%s"="excluded"."%s"`, column, column))
	}
	assert.Equal(t, strings.Join(assignments, ","), setList)
	assert.NotContains(t, setList, "created_at")
	assert.NotContains(t, setList, "user_id")
}
