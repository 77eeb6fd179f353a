package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	model "neighbortask.com/neighbortask/internal/models"
	"neighbortask.com/neighbortask/internal/services"
)

const userContextKey = "session_user"

// RequireSession admits requests carrying a valid bearer token whose subject
// matches the live session. Logging out deletes the snapshot, so tokens stop
// working immediately even before they expire.
func RequireSession(auth *services.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			subject, err := auth.ValidateToken(token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			user, state := auth.CurrentUser()
			if state != services.StateAuthenticated || user == nil || user.ID != subject {
				return echo.NewHTTPError(http.StatusUnauthorized, "session expired")
			}

			c.Set(userContextKey, user)
			return next(c)
		}
	}
}

// SessionUser returns the user placed on the context by RequireSession.
func SessionUser(c echo.Context) *model.User {
	user, _ := c.Get(userContextKey).(*model.User)
	return user
}
