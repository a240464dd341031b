package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tourkart/booking-gateway/internal/core/domain"
)

// ctxSession extracts the session claims injected by the Auth middleware and
// performs a fast-fail check before any service call: a missing session ID
// means the middleware did not run for this route.
func ctxSession(c echo.Context) (sessionID string, role domain.Role, err error) {
	sessionID, _ = c.Get("session_id").(string)
	if sessionID == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing session")
	}

	rawRole, _ := c.Get("role").(string)
	return sessionID, domain.Role(rawRole), nil
}
