package auth

import (
	"io"
	"log/slog"
	"testing"

	"afrimart/config"
	"afrimart/internal/domain/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTokenVerifier(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("jwt by default", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"

		verifier, err := NewTokenVerifier(VerifierParams{Config: cfg, Logger: logger})
		require.NoError(t, err)
		assert.IsType(t, &JWTService{}, verifier)
	})

	t.Run("firebase requires the app", func(t *testing.T) {
		cfg := &config.Config{Auth: &config.AuthConfig{Provider: constants.AuthProviderFirebase}}

		_, err := NewTokenVerifier(VerifierParams{Config: cfg, Logger: logger})
		require.Error(t, err)
	})

	t.Run("unknown provider", func(t *testing.T) {
		cfg := &config.Config{Auth: &config.AuthConfig{Provider: "ldap"}}

		_, err := NewTokenVerifier(VerifierParams{Config: cfg, Logger: logger})
		require.ErrorContains(t, err, "unsupported auth provider")
	})
}
