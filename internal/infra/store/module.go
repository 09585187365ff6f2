// Package store wires the backend that holds user location records.
package store

import (
	"afrimart/config"
	"afrimart/internal/domain/constants"
	"afrimart/internal/infra/firebase"
	"afrimart/internal/infra/persistence/postgres"

	"go.uber.org/fx"
)

// Backend returns the configured store backend, postgres when unset.
func Backend(cfg *config.Config) string {
	if cfg.Store == nil || cfg.Store.Backend == "" {
		return constants.StoreBackendPostgres
	}

	return cfg.Store.Backend
}

// UsesFirebase reports whether any component needs the Firebase app.
func UsesFirebase(cfg *config.Config) bool {
	return Backend(cfg) == constants.StoreBackendFirestore ||
		(cfg.Auth != nil && cfg.Auth.Provider == constants.AuthProviderFirebase)
}

// Module provides repository.UserLocationRepository for the configured backend,
// plus the Firebase app when the store or the token verifier needs it.
// The choice is made before the graph is built because fx constructs every
// provider an optional dependency points at.
func Module(cfg *config.Config) fx.Option {
	opts := []fx.Option{}
	if UsesFirebase(cfg) {
		opts = append(opts, fx.Provide(firebase.NewApp))
	}

	switch Backend(cfg) {
	case constants.StoreBackendFirestore:
		opts = append(opts, fx.Provide(
			firebase.NewFirestoreClient,
			firebase.NewUserLocationRepository,
		))
	default:
		opts = append(opts, fx.Provide(
			postgres.New,
			postgres.NewUserLocationRepository,
		))
	}

	return fx.Options(opts...)
}
