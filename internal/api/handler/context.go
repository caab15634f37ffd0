package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shoplite/storefront/internal/core/domain"
)

// SessionCookie is the cookie carrying the opaque session token.
const SessionCookie = "storefront_session"

// ctxIdentity extracts the identity injected by the Session middleware and
// fast-fails before any service call: a missing user_id or role means the
// middleware did not run or the session payload is unusable.
func ctxIdentity(c echo.Context) (userID string, role domain.Role, err error) {
	userID, _ = c.Get("user_id").(string)
	roleStr, _ := c.Get("role").(string)
	if userID == "" || roleStr == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing session identity")
	}
	return userID, domain.Role(roleStr), nil
}
