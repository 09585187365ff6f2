package firebase

import (
	"context"

	domainerrors "afrimart/internal/domain/errors"
	"afrimart/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
)

// idTokenVerifier abstracts the single auth.Client method in use.
type idTokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

type tokenVerifier struct {
	client idTokenVerifier
}

// NewTokenVerifier creates a TokenVerifier backed by Firebase Auth.
func NewTokenVerifier(ctx context.Context, app *firebase.App) (service.TokenVerifier, error) {
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firebase Auth client")
	}

	return &tokenVerifier{client: client}, nil
}

// Verify checks a Firebase ID token; the Firebase UID becomes the user identity.
func (v *tokenVerifier) Verify(ctx context.Context, token string) (*service.Identity, error) {
	decoded, err := v.client.VerifyIDToken(ctx, token)
	if err != nil {
		return nil, domainerrors.ErrUnauthorized.WrapMessage(err.Error())
	}

	identity := &service.Identity{UserID: decoded.UID}
	if role, ok := decoded.Claims["role"].(string); ok && role != "" {
		identity.Roles = []string{role}
	}

	return identity, nil
}
