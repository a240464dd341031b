package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/tourkart/booking-gateway/internal/core/domain"
	"github.com/tourkart/booking-gateway/internal/core/service"
)

func TestRequireRole(t *testing.T) {
	gate := service.NewSessionGate(testSecret, "owner.com", time.Hour, zerolog.Nop())

	adminToken, adminSession, _ := gate.Login("owner.com")
	travelerToken, _, _ := gate.Login("bob@example.com")

	e := echo.New()
	e.GET("/admin/stats", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, Auth(testSecret, gate), RequireRole(gate, domain.RoleAdmin))

	check := func(token string, want int, label string) {
		t.Helper()
		req := httptest.NewRequest(http.MethodGet, "/admin/stats", nil)
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		if rec.Code != want {
			t.Fatalf("%s: expected %d, got %d", label, want, rec.Code)
		}
	}

	check(adminToken, http.StatusOK, "admin")
	check(travelerToken, http.StatusForbidden, "traveler")
	check("", http.StatusUnauthorized, "anonymous")

	// Role is re-checked against the live session, not the token claim.
	gate.Logout(adminSession.ID)
	check(adminToken, http.StatusUnauthorized, "logged-out admin")
}
