package device

import (
	"context"
	"time"

	"afrimart/config"
	"afrimart/internal/domain/entity"
	"afrimart/internal/domain/service"
)

// StaticCoordinateProvider reports a configured position, for kiosks and
// market stalls that never move.
type StaticCoordinateProvider struct {
	latitude  float64
	longitude float64
	now       func() time.Time
}

// NewStaticCoordinateProvider creates a provider for cfg.Device's static position.
func NewStaticCoordinateProvider(cfg *config.Config) service.CoordinateProvider {
	p := &StaticCoordinateProvider{now: time.Now}
	if cfg.Device != nil {
		p.latitude = cfg.Device.StaticLatitude
		p.longitude = cfg.Device.StaticLongitude
	}

	return p
}

func (p *StaticCoordinateProvider) CurrentPosition(ctx context.Context, _ entity.Accuracy) (*entity.Coordinate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return &entity.Coordinate{
		Latitude:  p.latitude,
		Longitude: p.longitude,
		Timestamp: p.now().UnixMilli(),
	}, nil
}
