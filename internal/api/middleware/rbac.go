package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tourkart/booking-gateway/internal/core/domain"
	"github.com/tourkart/booking-gateway/internal/core/ports"
)

// RequireRole gates a route group on the session holding the given role.
// The check goes through the gate rather than trusting token claims, so a
// role revoked by logout/login cycles is never honoured from a stale token.
func RequireRole(gate ports.SessionGate, role domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sessionID, _ := c.Get("session_id").(string)
			if !gate.IsAuthorized(sessionID, &role) {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
