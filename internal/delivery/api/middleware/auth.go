package middleware

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"afrimart/internal/delivery/api/response"
	deliverycontext "afrimart/internal/delivery/context"
	"afrimart/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware authenticates bearer tokens with the configured TokenVerifier.
type AuthMiddleware struct {
	verifier service.TokenVerifier
	logger   *slog.Logger
}

func NewAuthMiddleware(verifier service.TokenVerifier, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier, logger: logger}
}

// Authenticate rejects the request with 401 unless it carries a valid bearer token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if header == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		token, found := strings.CutPrefix(header, bearerPrefix)
		if !found || token == "" {
			return response.Unauthorized(c, "INVALID_TOKEN_FORMAT", "Invalid token format, must be Bearer token")
		}

		ctx := c.Request().Context()
		identity, err := m.verifier.Verify(ctx, token)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, m.logger).Debug("Bearer token rejected", slog.Any("error", err))

			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		deliverycontext.SetIdentity(c, identity)

		return next(c)
	}
}

// RequireRole must run after Authenticate.
func (m *AuthMiddleware) RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := deliverycontext.GetIdentity(c)
			if !ok || !slices.Contains(identity.Roles, role) {
				return response.Error(c, http.StatusForbidden, "FORBIDDEN", "Permission denied: require '"+role+"' role", nil)
			}

			return next(c)
		}
	}
}
