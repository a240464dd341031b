package upstream

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tourkart/booking-gateway/internal/core/domain"
)

// bookingPayload is the submission API's request shape. The computed total is
// deliberately not sent; the backend recomputes it from its own price data.
type bookingPayload struct {
	Name           string `json:"name"`
	Age            int    `json:"age"`
	Mobile         string `json:"mobile"`
	Email          string `json:"email"`
	NumberOfPeople int    `json:"numberOfPeople"`
	TourID         string `json:"tourId"`
	TourName       string `json:"tourName"`
	PaymentMethod  string `json:"paymentMethod"`
}

// BookingSubmitter posts booking requests to the marketplace booking API.
type BookingSubmitter struct {
	client
}

func NewBookingSubmitter(baseURL string, timeout time.Duration, log zerolog.Logger) *BookingSubmitter {
	return &BookingSubmitter{client: newClient(baseURL, timeout, log)}
}

// Submit sends one booking request, tagging it with the attempt ID as an
// idempotency key. A 2xx response yields the confirmation message; a non-2xx
// response becomes a *domain.SubmissionRejectedError carrying the backend's
// message when it sent one.
func (s *BookingSubmitter) Submit(ctx context.Context, attemptID string, req domain.BookingRequest) (string, error) {
	payload := bookingPayload{
		Name:           req.FullName,
		Age:            req.Age,
		Mobile:         req.MobileNumber,
		Email:          req.Email,
		NumberOfPeople: req.PartySize,
		TourID:         req.TourID,
		TourName:       req.TourName,
		PaymentMethod:  string(req.PaymentMethod),
	}

	resp, err := s.postJSON(ctx, "/api/book-tour", payload, map[string]string{
		"Idempotency-Key": attemptID,
	})
	if err != nil {
		return "", fmt.Errorf("submit booking: %w", err)
	}
	defer resp.Body.Close()

	message := decodeMessage(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		s.log.Debug().Int("status", resp.StatusCode).Str("attempt_id", attemptID).Msg("booking submission rejected by backend")
		return "", &domain.SubmissionRejectedError{Message: message}
	}
	return message, nil
}
