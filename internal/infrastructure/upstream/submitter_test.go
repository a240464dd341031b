package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tourkart/booking-gateway/internal/core/domain"
)

func testRequest() domain.BookingRequest {
	return domain.BookingRequest{
		FullName:      "Priya Sharma",
		Age:           29,
		MobileNumber:  "+91 98765 43210",
		Email:         "priya@example.com",
		PartySize:     2,
		TourID:        "tour-1",
		TourName:      "Backwater Cruise",
		PaymentMethod: domain.PaymentUPI,
		TotalAmount:   10000,
	}
}

func TestSubmitter_Success(t *testing.T) {
	var gotPayload bookingPayload
	var gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/book-tour" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		gotKey = r.Header.Get("Idempotency-Key")
		if err := json.NewDecoder(r.Body).Decode(&gotPayload); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "ref=123"})
	}))
	defer srv.Close()

	s := NewBookingSubmitter(srv.URL, time.Second, zerolog.Nop())
	message, err := s.Submit(context.Background(), "attempt-1", testRequest())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if message != "ref=123" {
		t.Fatalf("expected confirmation message, got %q", message)
	}
	if gotKey != "attempt-1" {
		t.Fatalf("idempotency key not forwarded, got %q", gotKey)
	}
	if gotPayload.NumberOfPeople != 2 || gotPayload.TourID != "tour-1" || gotPayload.PaymentMethod != "UPI Apps" {
		t.Fatalf("unexpected payload: %+v", gotPayload)
	}
}

func TestSubmitter_RejectionWithMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Tour sold out"})
	}))
	defer srv.Close()

	s := NewBookingSubmitter(srv.URL, time.Second, zerolog.Nop())
	_, err := s.Submit(context.Background(), "attempt-1", testRequest())

	var rejected *domain.SubmissionRejectedError
	if !errors.As(err, &rejected) {
		t.Fatalf("expected SubmissionRejectedError, got %v", err)
	}
	if rejected.Message != "Tour sold out" {
		t.Fatalf("backend message lost: %q", rejected.Message)
	}
}

func TestSubmitter_RejectionWithoutMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	s := NewBookingSubmitter(srv.URL, time.Second, zerolog.Nop())
	_, err := s.Submit(context.Background(), "attempt-1", testRequest())

	var rejected *domain.SubmissionRejectedError
	if !errors.As(err, &rejected) {
		t.Fatalf("expected SubmissionRejectedError, got %v", err)
	}
	if rejected.Message != "" {
		t.Fatalf("expected empty message, got %q", rejected.Message)
	}
}

func TestSubmitter_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused

	s := NewBookingSubmitter(srv.URL, time.Second, zerolog.Nop())
	_, err := s.Submit(context.Background(), "attempt-1", testRequest())
	if !errors.Is(err, domain.ErrUpstreamUnavailable) {
		t.Fatalf("expected ErrUpstreamUnavailable, got %v", err)
	}
}
