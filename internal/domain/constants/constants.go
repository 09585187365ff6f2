// Package constants holds configuration values shared across layers.
package constants

const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Location record store backends
const (
	StoreBackendPostgres  = "postgres"
	StoreBackendFirestore = "firestore"
)

// Token verification providers
const (
	AuthProviderJWT      = "jwt"
	AuthProviderFirebase = "firebase"
)

// Reverse geocoder providers
const (
	GeocoderProviderNominatim = "nominatim"
	GeocoderProviderGeoJSON   = "geojson"
)

// Device coordinate providers
const (
	CoordinateProviderGeoIP  = "geoip"
	CoordinateProviderStatic = "static"
)

// Event types published on the location topic
const (
	EventTypeLocationUpdated = "location.updated"
)

// Roles carried in bearer tokens
const (
	RoleSupport = "support"
)
