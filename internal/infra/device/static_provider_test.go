package device

import (
	"context"
	"testing"
	"time"

	"afrimart/config"
	"afrimart/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticCoordinateProvider(t *testing.T) {
	p := NewStaticCoordinateProvider(&config.Config{Device: &config.DeviceConfig{
		StaticLatitude:  -1.2921,
		StaticLongitude: 36.8219,
	}}).(*StaticCoordinateProvider)
	p.now = func() time.Time { return time.UnixMilli(1700000000000) }

	coord, err := p.CurrentPosition(context.Background(), entity.AccuracyBalanced)
	require.NoError(t, err)
	assert.Equal(t, entity.Coordinate{Latitude: -1.2921, Longitude: 36.8219, Timestamp: 1700000000000}, *coord)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = p.CurrentPosition(ctx, entity.AccuracyBalanced)
	require.ErrorIs(t, err, context.Canceled)
}
