package geocode

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"afrimart/internal/domain/entity"
	mockSvc "afrimart/internal/mocks/service"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*miniredis.Miniredis, *CachedGeocoder, *mockSvc.MockReverseGeocoder) {
	t.Helper()

	server := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	next := mockSvc.NewMockReverseGeocoder(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return server, NewCachedGeocoder(next, client, time.Hour, logger), next
}

func TestCachedGeocoder_HitsCacheOnSecondLookup(t *testing.T) {
	_, g, next := newTestCache(t)
	ctx := context.Background()
	coord := entity.Coordinate{Latitude: 6.524401, Longitude: 3.379202}
	address := &entity.Address{Formatted: "Broad Street, Lagos"}

	next.EXPECT().Reverse(ctx, coord).Return(address, nil).Once()

	first, err := g.Reverse(ctx, coord)
	require.NoError(t, err)
	second, err := g.Reverse(ctx, entity.Coordinate{Latitude: 6.524404, Longitude: 3.379199})
	require.NoError(t, err)

	assert.Equal(t, address, first)
	assert.Equal(t, address, second)
}

func TestCachedGeocoder_DoesNotCacheMisses(t *testing.T) {
	server, g, next := newTestCache(t)
	ctx := context.Background()
	coord := entity.Coordinate{Latitude: -60, Longitude: 10}

	next.EXPECT().Reverse(ctx, coord).Return(nil, nil).Twice()

	for range 2 {
		address, err := g.Reverse(ctx, coord)
		require.NoError(t, err)
		assert.Nil(t, address)
	}
	assert.Empty(t, server.Keys())
}

func TestCachedGeocoder_RedisDownFallsThrough(t *testing.T) {
	server, g, next := newTestCache(t)
	ctx := context.Background()
	coord := entity.Coordinate{Latitude: 5.6037, Longitude: -0.187}

	server.Close()
	next.EXPECT().Reverse(ctx, coord).Return(&entity.Address{Formatted: "Accra"}, nil).Once()

	address, err := g.Reverse(ctx, coord)
	require.NoError(t, err)
	assert.Equal(t, "Accra", address.Formatted)
}

func TestCachedGeocoder_PropagatesGeocoderError(t *testing.T) {
	_, g, next := newTestCache(t)
	ctx := context.Background()
	coord := entity.Coordinate{Latitude: 1, Longitude: 1}

	next.EXPECT().Reverse(ctx, coord).Return(nil, errors.New("upstream 503")).Once()

	_, err := g.Reverse(ctx, coord)
	require.Error(t, err)
}
