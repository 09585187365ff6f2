package geocode

import (
	"log/slog"

	"afrimart/config"
	"afrimart/internal/domain/constants"
	"afrimart/internal/domain/service"

	"github.com/pkg/errors"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// ProviderParams defines dependencies for the reverse geocoder provider.
type ProviderParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Redis  goredis.Cmdable `optional:"true"`
}

// NewReverseGeocoder selects the configured geocoder and adds the Redis cache
// when a cache TTL is set and Redis is available.
func NewReverseGeocoder(params ProviderParams) (service.ReverseGeocoder, error) {
	provider := constants.GeocoderProviderNominatim
	if params.Config.Geocoder != nil && params.Config.Geocoder.Provider != "" {
		provider = params.Config.Geocoder.Provider
	}

	var (
		geocoder service.ReverseGeocoder
		err      error
	)
	switch provider {
	case constants.GeocoderProviderNominatim:
		geocoder = NewNominatimGeocoder(params.Config)
	case constants.GeocoderProviderGeoJSON:
		geocoder, err = NewPlacesGeocoder(params.Config, params.Logger)
		if err != nil {
			return nil, err
		}
	default:
		return nil, errors.Errorf("unsupported geocoder provider: %s", provider)
	}

	params.Logger.Info("Reverse geocoder initialized", slog.String("provider", provider))

	if params.Redis != nil && params.Config.Geocoder != nil && params.Config.Geocoder.CacheTTL > 0 {
		return NewCachedGeocoder(geocoder, params.Redis, params.Config.Geocoder.CacheTTL, params.Logger), nil
	}

	return geocoder, nil
}
