// Package geoip approximates the device position from its public IP with a
// MaxMind GeoLite2/GeoIP2 City database.
package geoip

import (
	"context"
	"net"
	"time"

	"afrimart/config"
	"afrimart/internal/domain/entity"
	domainerrors "afrimart/internal/domain/errors"
	"afrimart/internal/domain/service"

	"github.com/oschwald/geoip2-golang"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type cityReader interface {
	City(ip net.IP) (*geoip2.City, error)
}

// CoordinateProvider resolves the configured device IP to a coordinate.
// Accuracy comes from the database's accuracy radius.
type CoordinateProvider struct {
	reader cityReader
	ip     net.IP
	now    func() time.Time
}

// NewCoordinateProvider opens cfg.GeoIP.CityDBPath and closes it on shutdown.
func NewCoordinateProvider(lc fx.Lifecycle, cfg *config.Config) (service.CoordinateProvider, error) {
	if cfg.GeoIP == nil || cfg.GeoIP.CityDBPath == "" {
		return nil, errors.New("geoip.cityDBPath is required for the geoip provider")
	}

	ip := net.ParseIP(cfg.GeoIP.IP)
	if ip == nil {
		return nil, errors.Errorf("invalid geoip.ip: %q", cfg.GeoIP.IP)
	}

	reader, err := geoip2.Open(cfg.GeoIP.CityDBPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open GeoIP city database")
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return reader.Close()
		},
	})

	return newCoordinateProvider(reader, ip), nil
}

func newCoordinateProvider(reader cityReader, ip net.IP) *CoordinateProvider {
	return &CoordinateProvider{reader: reader, ip: ip, now: time.Now}
}

// CurrentPosition looks the IP up. Every accuracy tier gets the same answer.
func (p *CoordinateProvider) CurrentPosition(ctx context.Context, _ entity.Accuracy) (*entity.Coordinate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	record, err := p.reader.City(p.ip)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrFetchFailure, err.Error())
	}

	// Records without a location decode as 0,0 with no radius.
	if record.Location.AccuracyRadius == 0 && record.Location.Latitude == 0 && record.Location.Longitude == 0 {
		return nil, domainerrors.ErrFetchFailure.WrapMessage("no location for " + p.ip.String())
	}

	accuracy := float64(record.Location.AccuracyRadius) * 1000

	return &entity.Coordinate{
		Latitude:  record.Location.Latitude,
		Longitude: record.Location.Longitude,
		Accuracy:  &accuracy,
		Timestamp: p.now().UnixMilli(),
	}, nil
}
