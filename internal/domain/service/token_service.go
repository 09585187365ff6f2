package service

import (
	"context"
)

// Identity is the authenticated caller extracted from a bearer token.
type Identity struct {
	UserID string
	Roles  []string
}

// TokenVerifier validates bearer tokens issued by the identity provider.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*Identity, error)
}
