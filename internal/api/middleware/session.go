package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shoplite/storefront/internal/core/domain"
	"github.com/shoplite/storefront/internal/core/ports"
)

// Session resolves the session cookie and injects the identity into context.
// Requests without a valid session are rejected with 401 before the handler
// runs; role checks are a separate concern (see RequireRole).
func Session(store ports.SessionStore, cookieName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			sess, err := store.Resolve(c.Request().Context(), cookie.Value)
			if err != nil {
				if errors.Is(err, domain.ErrSessionNotFound) {
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired session")
				}
				return err
			}

			c.Set("user_id", sess.UserID)
			c.Set("role", string(sess.Role))
			c.Set("session_token", cookie.Value)

			return next(c)
		}
	}
}
