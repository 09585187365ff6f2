package auth

import (
	"context"
	"log/slog"

	"afrimart/config"
	"afrimart/internal/domain/constants"
	"afrimart/internal/domain/service"
	infrafirebase "afrimart/internal/infra/firebase"

	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// VerifierParams defines dependencies for the token verifier provider.
type VerifierParams struct {
	fx.In

	Config      *config.Config
	Logger      *slog.Logger
	FirebaseApp *firebase.App `optional:"true"`
}

// NewTokenVerifier selects the verifier for auth.provider.
func NewTokenVerifier(params VerifierParams) (service.TokenVerifier, error) {
	provider := constants.AuthProviderJWT
	if params.Config.Auth != nil && params.Config.Auth.Provider != "" {
		provider = params.Config.Auth.Provider
	}

	params.Logger.Info("Token verifier initialized", slog.String("provider", provider))

	switch provider {
	case constants.AuthProviderJWT:
		return NewJWTService(params.Config)
	case constants.AuthProviderFirebase:
		if params.FirebaseApp == nil {
			return nil, errors.New("firebase app is required for the firebase auth provider")
		}

		return infrafirebase.NewTokenVerifier(context.Background(), params.FirebaseApp)
	default:
		return nil, errors.Errorf("unsupported auth provider: %s", provider)
	}
}
