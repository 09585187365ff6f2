package firebase

import (
	"context"
	"errors"
	"testing"

	domainerrors "afrimart/internal/domain/errors"

	"firebase.google.com/go/v4/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubIDTokenVerifier struct {
	token *auth.Token
	err   error
}

func (s stubIDTokenVerifier) VerifyIDToken(_ context.Context, _ string) (*auth.Token, error) {
	return s.token, s.err
}

func TestTokenVerifier_Verify(t *testing.T) {
	t.Run("uid becomes the user id", func(t *testing.T) {
		v := &tokenVerifier{client: stubIDTokenVerifier{token: &auth.Token{
			UID:    "firebase-uid-1",
			Claims: map[string]any{"role": "buyer"},
		}}}

		identity, err := v.Verify(context.Background(), "id-token")
		require.NoError(t, err)
		assert.Equal(t, "firebase-uid-1", identity.UserID)
		assert.Equal(t, []string{"buyer"}, identity.Roles)
	})

	t.Run("invalid token is unauthorized", func(t *testing.T) {
		v := &tokenVerifier{client: stubIDTokenVerifier{err: errors.New("token has expired")}}

		_, err := v.Verify(context.Background(), "id-token")
		require.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})
}
