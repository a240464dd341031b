package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/tourkart/booking-gateway/internal/core/domain"
	"github.com/tourkart/booking-gateway/internal/core/ports"
	"github.com/tourkart/booking-gateway/internal/core/service"
)

type stubVerifier struct {
	identity string
	err      error
	regErr   error
}

func (v *stubVerifier) Verify(ctx context.Context, email, password string) (string, error) {
	if v.err != nil {
		return "", v.err
	}
	if v.identity != "" {
		return v.identity, nil
	}
	return email, nil
}

func (v *stubVerifier) Register(ctx context.Context, in ports.RegisterInput) error {
	return v.regErr
}

func newAuthRig(verifier ports.CredentialVerifier) (*echo.Echo, *service.SessionGate) {
	gate := service.NewSessionGate("test-secret", "owner.com", time.Hour, zerolog.Nop())
	h := NewAuthHandler(verifier, gate)

	e := echo.New()
	e.Validator = NewValidator()
	e.POST("/auth/login", h.Login)
	e.POST("/auth/register", h.Register)
	return e, gate
}

func postJSON(e *echo.Echo, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestAuthHandler_LoginOpensSession(t *testing.T) {
	e, _ := newAuthRig(&stubVerifier{})

	rec := postJSON(e, "/auth/login", `{"email":"owner.com","password":"secret"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Token    string `json:"token"`
		Identity string `json:"identity"`
		Role     string `json:"role"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Token == "" {
		t.Fatalf("expected a token in the login response")
	}
	if body.Role != string(domain.RoleAdmin) {
		t.Fatalf("owner.com must log in as admin, got %q", body.Role)
	}
	if body.Identity != "owner.com" {
		t.Fatalf("identity not echoed back: %q", body.Identity)
	}
}

func TestAuthHandler_LoginBadCredentials(t *testing.T) {
	e, _ := newAuthRig(&stubVerifier{err: domain.ErrInvalidCredentials})

	rec := postJSON(e, "/auth/login", `{"email":"alice@example.com","password":"wrong"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthHandler_LoginMissingFields(t *testing.T) {
	e, _ := newAuthRig(&stubVerifier{})

	rec := postJSON(e, "/auth/login", `{"email":"alice@example.com"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing password, got %d", rec.Code)
	}
}

func TestAuthHandler_Register(t *testing.T) {
	e, _ := newAuthRig(&stubVerifier{})

	rec := postJSON(e, "/auth/register", `{"name":"Alice","email":"alice@example.com","password":"secret1"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = postJSON(e, "/auth/register", `{"name":"Alice","email":"not-an-email","password":"secret1"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad email, got %d", rec.Code)
	}
}
