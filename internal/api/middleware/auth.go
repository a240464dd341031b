package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/tourkart/booking-gateway/internal/core/ports"
)

// redirectResponse is the payload for guard denials: the host shell maps the
// redirect field to a navigation to the public entry view.
type redirectResponse struct {
	Error    string `json:"error"`
	Redirect string `json:"redirect"`
}

func denied(c echo.Context, decision ports.GuardDecision) error {
	return c.JSON(http.StatusUnauthorized, redirectResponse{
		Error:    "authentication required",
		Redirect: decision.RedirectTo,
	})
}

// Auth validates the session token and consults the gate. A token whose
// session was logged out is rejected even while the signature is still
// valid, so logout takes effect immediately.
func Auth(jwtSecret string, gate ports.SessionGate) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return denied(c, ports.GuardDecision{RedirectTo: ports.LoginPath})
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return denied(c, ports.GuardDecision{RedirectTo: ports.LoginPath})
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return denied(c, ports.GuardDecision{RedirectTo: ports.LoginPath})
			}

			sessionID, _ := claims["sid"].(string)
			if decision := gate.Guard(sessionID, nil); !decision.Allowed {
				return denied(c, decision)
			}

			session, ok := gate.Resolve(sessionID)
			if !ok {
				return denied(c, ports.GuardDecision{RedirectTo: ports.LoginPath})
			}

			c.Set("session_id", session.ID)
			c.Set("identity", session.Identity)
			c.Set("role", string(session.Role))

			return next(c)
		}
	}
}
