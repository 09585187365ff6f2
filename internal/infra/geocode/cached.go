package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "afrimart/internal/delivery/context"
	"afrimart/internal/domain/entity"
	"afrimart/internal/domain/service"

	"github.com/pkg/errors"
	goredis "github.com/redis/go-redis/v9"
)

const cacheKeyPrefix = "geocode:"

// CachedGeocoder memoizes resolved addresses in Redis. Coordinates are rounded
// to five decimals (about one meter) to form the key. Redis errors are logged
// and the lookup falls through to the wrapped geocoder.
type CachedGeocoder struct {
	next   service.ReverseGeocoder
	rdb    goredis.Cmdable
	ttl    time.Duration
	logger *slog.Logger
}

// NewCachedGeocoder wraps next with a Redis cache.
func NewCachedGeocoder(next service.ReverseGeocoder, rdb goredis.Cmdable, ttl time.Duration, logger *slog.Logger) *CachedGeocoder {
	return &CachedGeocoder{
		next:   next,
		rdb:    rdb,
		ttl:    ttl,
		logger: logger,
	}
}

func cacheKey(coord entity.Coordinate) string {
	return fmt.Sprintf("%s%.5f:%.5f", cacheKeyPrefix, coord.Latitude, coord.Longitude)
}

func (g *CachedGeocoder) Reverse(ctx context.Context, coord entity.Coordinate) (*entity.Address, error) {
	key := cacheKey(coord)

	if address, ok := g.lookup(ctx, key); ok {
		return address, nil
	}

	address, err := g.next.Reverse(ctx, coord)
	if err != nil || address == nil {
		return address, err
	}

	g.store(ctx, key, address)

	return address, nil
}

func (g *CachedGeocoder) lookup(ctx context.Context, key string) (*entity.Address, bool) {
	raw, err := g.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, goredis.Nil) {
			g.log(ctx).Warn("Geocode cache read failed", slog.String("key", key), slog.Any("error", err))
		}

		return nil, false
	}

	var address entity.Address
	if err := json.Unmarshal(raw, &address); err != nil {
		g.log(ctx).Warn("Geocode cache entry is corrupt", slog.String("key", key), slog.Any("error", err))

		return nil, false
	}

	return &address, true
}

func (g *CachedGeocoder) store(ctx context.Context, key string, address *entity.Address) {
	raw, err := json.Marshal(address)
	if err != nil {
		return
	}

	if err := g.rdb.Set(ctx, key, raw, g.ttl).Err(); err != nil {
		g.log(ctx).Warn("Geocode cache write failed", slog.String("key", key), slog.Any("error", err))
	}
}

func (g *CachedGeocoder) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, g.logger)
}
