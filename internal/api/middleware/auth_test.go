package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/tourkart/booking-gateway/internal/core/domain"
	"github.com/tourkart/booking-gateway/internal/core/ports"
	"github.com/tourkart/booking-gateway/internal/core/service"
)

const testSecret = "test-secret"

func newAuthFixture(t *testing.T) (*echo.Echo, *service.SessionGate) {
	t.Helper()
	gate := service.NewSessionGate(testSecret, "owner.com", time.Hour, zerolog.Nop())

	e := echo.New()
	e.GET("/protected", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"identity": c.Get("identity"),
			"role":     c.Get("role"),
		})
	}, Auth(testSecret, gate))

	return e, gate
}

func doRequest(e *echo.Echo, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestAuth_ValidSession(t *testing.T) {
	e, gate := newAuthFixture(t)

	token, _, err := gate.Login("alice@example.com")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	rec := doRequest(e, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["identity"] != "alice@example.com" {
		t.Fatalf("identity not propagated: %q", body["identity"])
	}
	if body["role"] != string(domain.RoleTraveler) {
		t.Fatalf("role not propagated: %q", body["role"])
	}
}

func TestAuth_MissingOrMalformedHeader(t *testing.T) {
	e, _ := newAuthFixture(t)

	rec := doRequest(e, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("missing header: expected 401, got %d", rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Basic abc123")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("wrong scheme: expected 401, got %d", rec.Code)
	}
}

func TestAuth_TamperedToken(t *testing.T) {
	e, gate := newAuthFixture(t)

	token, _, _ := gate.Login("alice@example.com")
	rec := doRequest(e, token+"x")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("tampered token: expected 401, got %d", rec.Code)
	}
}

func TestAuth_LogoutRejectsLiveToken(t *testing.T) {
	e, gate := newAuthFixture(t)

	token, session, _ := gate.Login("alice@example.com")
	if rec := doRequest(e, token); rec.Code != http.StatusOK {
		t.Fatalf("pre-logout: expected 200, got %d", rec.Code)
	}

	gate.Logout(session.ID)

	rec := doRequest(e, token)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("post-logout: expected 401, got %d", rec.Code)
	}

	var body redirectResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Redirect != ports.LoginPath {
		t.Fatalf("denial must redirect to %q, got %q", ports.LoginPath, body.Redirect)
	}
}
