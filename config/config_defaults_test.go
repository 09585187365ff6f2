package config

import (
	"testing"
	"time"

	"afrimart/internal/domain/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults_EmptyConfig(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, constants.AuthProviderJWT, cfg.Auth.Provider)
	require.NotNil(t, cfg.Store)
	assert.Equal(t, constants.StoreBackendPostgres, cfg.Store.Backend)
	require.NotNil(t, cfg.Geocoder)
	assert.Equal(t, constants.GeocoderProviderNominatim, cfg.Geocoder.Provider)
	assert.Equal(t, defaultNominatimEndpoint, cfg.Geocoder.Endpoint)
	assert.Equal(t, defaultGeocoderTimeout, cfg.Geocoder.Timeout)
	require.NotNil(t, cfg.Compare)
	assert.Equal(t, 4, cfg.Compare.MaxItems)
	require.NotNil(t, cfg.Device)
	assert.Equal(t, constants.CoordinateProviderGeoIP, cfg.Device.Provider)
	assert.Equal(t, defaultDeviceFetchTimeout, cfg.Device.FetchTimeout)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Geocoder: &GeocoderConfig{
			Provider: constants.GeocoderProviderGeoJSON,
			Endpoint: "http://nominatim.internal",
			Timeout:  time.Second,
		},
		Compare:  &CompareConfig{MaxItems: 6, TTL: time.Hour},
		Firebase: &FirebaseConfig{ProjectID: "afrimart-dev"},
	}

	applyDefaults(cfg)

	assert.Equal(t, constants.GeocoderProviderGeoJSON, cfg.Geocoder.Provider)
	assert.Equal(t, "http://nominatim.internal", cfg.Geocoder.Endpoint)
	assert.Equal(t, time.Second, cfg.Geocoder.Timeout)
	assert.Equal(t, 6, cfg.Compare.MaxItems)
	assert.Equal(t, time.Hour, cfg.Compare.TTL)
	assert.Equal(t, "users", cfg.Firebase.UsersCollection)
}
