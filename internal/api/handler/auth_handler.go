package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tourkart/booking-gateway/internal/core/domain"
	"github.com/tourkart/booking-gateway/internal/core/ports"
)

// AuthHandler fronts the credential collaborator and the session gate.
type AuthHandler struct {
	verifier ports.CredentialVerifier
	gate     ports.SessionGate
}

func NewAuthHandler(verifier ports.CredentialVerifier, gate ports.SessionGate) *AuthHandler {
	return &AuthHandler{verifier: verifier, gate: gate}
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type registerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginResponse struct {
	Token    string `json:"token"`
	Identity string `json:"identity"`
	Role     string `json:"role"`
}

// Login verifies credentials with the external collaborator and opens a
// session. The gate records whatever identity the collaborator returns.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	identity, err := h.verifier.Verify(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
		}
		return err
	}

	token, session, err := h.gate.Login(identity)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, loginResponse{
		Token:    token,
		Identity: session.Identity,
		Role:     string(session.Role),
	})
}

// Register forwards a new account to the credential collaborator.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	if err := h.verifier.Register(c.Request().Context(), ports.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	}); err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "registration rejected"})
		}
		return err
	}

	return c.JSON(http.StatusCreated, map[string]string{"message": "registered"})
}

// Logout closes the session; its token stops passing guard checks
// immediately. The client is expected to navigate to the public entry view.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	sessionID, _, err := ctxSession(c)
	if err != nil {
		return err
	}

	h.gate.Logout(sessionID)
	return c.JSON(http.StatusOK, map[string]string{"redirect": ports.LoginPath})
}
