package ports

import (
	"context"

	"github.com/tourkart/booking-gateway/internal/core/domain"
)

// CatalogClient reads the tour catalog owned by the marketplace backend.
type CatalogClient interface {
	ListTours(ctx context.Context) ([]domain.TourReference, error)
	GetTour(ctx context.Context, id string) (*domain.TourReference, error)
}

// BookingSubmitter delivers one booking request to the submission
// collaborator. The attempt ID is forwarded as an idempotency key. On
// success it returns the collaborator's confirmation message; a rejection
// with a message is reported as *domain.SubmissionRejectedError.
type BookingSubmitter interface {
	Submit(ctx context.Context, attemptID string, req domain.BookingRequest) (string, error)
}

// RegisterInput carries a new account registration to the credential
// collaborator.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// CredentialVerifier checks user-supplied credentials with the external
// identity service. Verify returns the identity string recorded on the
// session; credential correctness is entirely its concern.
type CredentialVerifier interface {
	Verify(ctx context.Context, email, password string) (identity string, err error)
	Register(ctx context.Context, in RegisterInput) error
}
