package upstream

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/tourkart/booking-gateway/internal/core/domain"
	"github.com/tourkart/booking-gateway/internal/core/ports"
)

// CredentialVerifier checks credentials against the marketplace auth API.
type CredentialVerifier struct {
	client
}

func NewCredentialVerifier(baseURL string, timeout time.Duration, log zerolog.Logger) *CredentialVerifier {
	return &CredentialVerifier{client: newClient(baseURL, timeout, log)}
}

// Verify posts the credentials and returns the identity string to record on
// the session. When the backend omits an identity in its response, the
// submitted email is the identity.
func (v *CredentialVerifier) Verify(ctx context.Context, email, password string) (string, error) {
	resp, err := v.postJSON(ctx, "/api/login", map[string]string{
		"email":    email,
		"password": password,
	}, nil)
	if err != nil {
		return "", fmt.Errorf("verify credentials: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode <= 299:
		var body struct {
			Email string `json:"email"`
		}
		if decodeErr := decodeInto(resp, &body); decodeErr == nil && body.Email != "" {
			return body.Email, nil
		}
		return email, nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusNotFound:
		return "", domain.ErrInvalidCredentials
	default:
		return "", fmt.Errorf("%w: login returned %d", domain.ErrUpstreamUnavailable, resp.StatusCode)
	}
}

// Register forwards a new account registration.
func (v *CredentialVerifier) Register(ctx context.Context, in ports.RegisterInput) error {
	resp, err := v.postJSON(ctx, "/api/register", map[string]string{
		"name":     in.Name,
		"email":    in.Email,
		"password": in.Password,
	}, nil)
	if err != nil {
		return fmt.Errorf("register: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if resp.StatusCode == http.StatusConflict || resp.StatusCode == http.StatusBadRequest {
			return domain.ErrInvalidCredentials
		}
		return fmt.Errorf("%w: register returned %d", domain.ErrUpstreamUnavailable, resp.StatusCode)
	}
	return nil
}
