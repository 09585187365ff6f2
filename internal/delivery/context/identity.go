package context

import (
	"afrimart/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// KeyIdentity is the echo.Context key for the authenticated caller.
const KeyIdentity ContextKey = "identity"

// SetIdentity stores the authenticated caller in echo.Context.
func SetIdentity(c echo.Context, identity *service.Identity) {
	c.Set(string(KeyIdentity), identity)
}

// GetIdentity returns the authenticated caller, or false when the route is public.
func GetIdentity(c echo.Context) (*service.Identity, bool) {
	identity, ok := c.Get(string(KeyIdentity)).(*service.Identity)
	if !ok || identity == nil || identity.UserID == "" {
		return nil, false
	}

	return identity, true
}

// GetUserID returns the authenticated user ID.
func GetUserID(c echo.Context) (string, bool) {
	identity, ok := GetIdentity(c)
	if !ok {
		return "", false
	}

	return identity.UserID, true
}
