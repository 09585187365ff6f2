package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"afrimart/internal/domain/constants"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"

	defaultCompareMaxItems     = 4
	defaultCompareTTL          = 30 * 24 * time.Hour
	defaultGeocoderTimeout     = 5 * time.Second
	defaultNominatimEndpoint   = "https://nominatim.openstreetmap.org"
	defaultUsersCollection     = "users"
	defaultDeviceFetchTimeout  = 15 * time.Second
	defaultGeoJSONMaxDistanceM = 2000
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	// Auth selects how bearer tokens are verified
	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Firebase configuration for Firestore and Firebase Auth
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// Store selects the backend holding user location records
	Store *StoreConfig `json:"store" yaml:"store"`

	// Redis configuration for the geocode cache and compare selections
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	// Geocoder configuration for reverse geocoding
	Geocoder *GeocoderConfig `json:"geocoder" yaml:"geocoder"`

	// GeoIP configuration for the device coordinate provider
	GeoIP *GeoIPConfig `json:"geoip" yaml:"geoip"`

	// Device configuration for the gate runner
	Device *DeviceConfig `json:"device" yaml:"device"`

	// Compare configuration for product comparison selections
	Compare *CompareConfig `json:"compare" yaml:"compare"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	// Provider is "jwt" (HS256 with secretKey.access) or "firebase" (Firebase ID tokens)
	Provider string `json:"provider" yaml:"provider"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
	Output string `json:"output" yaml:"output"` // stdout (default) or stderr
}

// FirebaseConfig defines Firebase project access
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
	// Collection holding one document per user
	UsersCollection string `json:"usersCollection" yaml:"usersCollection"`
}

// StoreConfig selects the user location record backend
type StoreConfig struct {
	// Backend is "postgres" or "firestore"
	Backend string `json:"backend" yaml:"backend"`

	// Create the user_locations table on start (postgres backend)
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`

	// Queries slower than this are logged at warn level (postgres backend)
	SlowQueryThreshold time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`
}

// RedisConfig defines the Redis connection
type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
}

// GeocoderConfig defines reverse geocoding configuration
type GeocoderConfig struct {
	// Provider is "nominatim" or "geojson"
	Provider string `json:"provider" yaml:"provider"`

	// Nominatim-compatible endpoint base URL
	Endpoint string `json:"endpoint" yaml:"endpoint"`

	// User-Agent sent to the geocoding service (required by the Nominatim usage policy)
	UserAgent string `json:"userAgent" yaml:"userAgent"`

	// Preferred response language, e.g. "en" or "fr"
	Language string `json:"language" yaml:"language"`

	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// GeoJSON FeatureCollection of named places (geojson provider)
	PlacesPath string `json:"placesPath" yaml:"placesPath"`

	// Maximum distance in meters to accept the nearest place (geojson provider)
	MaxDistanceMeters float64 `json:"maxDistanceMeters" yaml:"maxDistanceMeters"`

	// Cache lifetime for resolved addresses; zero disables the Redis cache
	CacheTTL time.Duration `json:"cacheTTL" yaml:"cacheTTL"`
}

// GeoIPConfig defines the MaxMind database used to approximate the device position
type GeoIPConfig struct {
	CityDBPath string `json:"cityDBPath" yaml:"cityDBPath"`
	// Public IP of the device
	IP string `json:"ip" yaml:"ip"`
}

// DeviceConfig defines the device-side gate runner configuration
type DeviceConfig struct {
	// Directory holding the on-device state file
	StateDir string `json:"stateDir" yaml:"stateDir"`

	// Coordinate provider: "geoip" or "static"
	Provider string `json:"provider" yaml:"provider"`

	// Fixed position used by the static provider
	StaticLatitude  float64 `json:"staticLatitude" yaml:"staticLatitude"`
	StaticLongitude float64 `json:"staticLongitude" yaml:"staticLongitude"`

	// Signed-in user the gate saves locations for; empty means signed out
	UserID string `json:"userId" yaml:"userId"`

	// Upper bound for one coordinate fix
	FetchTimeout time.Duration `json:"fetchTimeout" yaml:"fetchTimeout"`
}

// CompareConfig defines product comparison limits
type CompareConfig struct {
	MaxItems int           `json:"maxItems" yaml:"maxItems"`
	TTL      time.Duration `json:"ttl" yaml:"ttl"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// Expected audience of push OIDC tokens (worker)
	PushAudience string `json:"pushAudience" yaml:"pushAudience"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{Provider: constants.AuthProviderJWT}
	}

	if cfg.Store == nil {
		cfg.Store = &StoreConfig{Backend: constants.StoreBackendPostgres}
	}

	if cfg.Firebase != nil && cfg.Firebase.UsersCollection == "" {
		cfg.Firebase.UsersCollection = defaultUsersCollection
	}

	if cfg.Geocoder == nil {
		cfg.Geocoder = &GeocoderConfig{Provider: constants.GeocoderProviderNominatim}
	}
	if cfg.Geocoder.Endpoint == "" {
		cfg.Geocoder.Endpoint = defaultNominatimEndpoint
	}
	if cfg.Geocoder.Timeout <= 0 {
		cfg.Geocoder.Timeout = defaultGeocoderTimeout
	}
	if cfg.Geocoder.MaxDistanceMeters <= 0 {
		cfg.Geocoder.MaxDistanceMeters = defaultGeoJSONMaxDistanceM
	}

	if cfg.Compare == nil {
		cfg.Compare = &CompareConfig{}
	}
	if cfg.Compare.MaxItems <= 0 {
		cfg.Compare.MaxItems = defaultCompareMaxItems
	}
	if cfg.Compare.TTL <= 0 {
		cfg.Compare.TTL = defaultCompareTTL
	}

	if cfg.Device == nil {
		cfg.Device = &DeviceConfig{Provider: constants.CoordinateProviderGeoIP}
	}
	if cfg.Device.FetchTimeout <= 0 {
		cfg.Device.FetchTimeout = defaultDeviceFetchTimeout
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
