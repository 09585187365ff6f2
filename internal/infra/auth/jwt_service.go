// Package auth provides the bearer token verifiers.
package auth

import (
	"context"
	"time"

	"afrimart/config"
	domainerrors "afrimart/internal/domain/errors"
	"afrimart/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

const tokenTypeAccess = "access"

// accessClaims are the claims of an HS256 access token.
type accessClaims struct {
	Roles []string `json:"roles,omitempty"`
	Type  string   `json:"type"`
	jwt.RegisteredClaims
}

// JWTService verifies, and for development issues, HS256 access tokens
// signed with secretKey.access.
type JWTService struct {
	secret []byte
}

// NewJWTService is the constructor for JWTService.
func NewJWTService(cfg *config.Config) (*JWTService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	return &JWTService{secret: []byte(cfg.SecretKey.Access)}, nil
}

// Verify parses the token, checks signature, expiry and token type.
func (s *JWTService) Verify(_ context.Context, tokenString string) (*service.Identity, error) {
	claims := &accessClaims{}

	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, domainerrors.ErrUnauthorized.WrapMessage(err.Error())
	}

	if claims.Type != tokenTypeAccess {
		return nil, domainerrors.ErrUnauthorized.WrapMessage("not an access token")
	}
	if claims.Subject == "" {
		return nil, domainerrors.ErrUnauthorized.WrapMessage("token has no subject")
	}

	return &service.Identity{
		UserID: claims.Subject,
		Roles:  claims.Roles,
	}, nil
}

// Issue signs an access token for userID.
func (s *JWTService) Issue(userID string, roles []string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := accessClaims{
		Roles: roles,
		Type:  tokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign access token")
	}

	return signed, nil
}
