package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/tourkart/booking-gateway/internal/core/domain"
	"github.com/tourkart/booking-gateway/internal/core/ports"
)

// stubFlows returns a fixed view from every operation.
type stubFlows struct {
	view *ports.FlowView
	err  error
}

func (s *stubFlows) Start(ctx context.Context, sessionID, tourID string) (*ports.FlowView, error) {
	return s.view, s.err
}
func (s *stubFlows) View(ctx context.Context, sessionID, tourID string) (*ports.FlowView, error) {
	return s.view, s.err
}
func (s *stubFlows) UpdateDraft(ctx context.Context, sessionID, tourID string, update ports.DraftUpdate) (*ports.FlowView, error) {
	return s.view, s.err
}
func (s *stubFlows) SubmitDetails(ctx context.Context, sessionID, tourID string) (*ports.FlowView, error) {
	return s.view, s.err
}
func (s *stubFlows) ChoosePayment(ctx context.Context, sessionID, tourID, method string) (*ports.FlowView, error) {
	return s.view, s.err
}
func (s *stubFlows) Cancel(ctx context.Context, sessionID, tourID string) (*ports.FlowView, error) {
	return s.view, s.err
}

func bookingRig(flows ports.BookingFlowService) *echo.Echo {
	h := NewBookingHandler(flows)
	e := echo.New()
	e.Validator = NewValidator()

	// Simulates the Auth middleware having populated the session claims.
	withSession := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("session_id", "sess-1")
			c.Set("role", string(domain.RoleTraveler))
			return next(c)
		}
	}

	g := e.Group("/v1", withSession)
	g.POST("/tours/:id/booking", h.Start)
	g.GET("/tours/:id/booking", h.View)
	return e
}

func getFlow(t *testing.T, e *echo.Echo) flowResponse {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/v1/tours/t1/booking", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var body flowResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return body
}

func TestBookingHandler_ReviewingExposesTotalAndMethods(t *testing.T) {
	e := bookingRig(&stubFlows{view: &ports.FlowView{
		State: domain.FlowReviewing,
		Tour:  domain.TourReference{ID: "t1", Name: "Backwater Cruise", UnitPrice: 5000},
		Draft: domain.BookingDraft{FullName: "Priya Sharma", PartySize: 3},
		Total: 15000,
	}})

	body := getFlow(t, e)
	if body.TotalAmount == nil || *body.TotalAmount != 15000 {
		t.Fatalf("reviewing view must carry the total, got %v", body.TotalAmount)
	}
	want := []string{"Net Banking", "Credit Card", "UPI Apps"}
	if len(body.PaymentMethods) != len(want) {
		t.Fatalf("expected %d payment methods, got %v", len(want), body.PaymentMethods)
	}
	for i, m := range want {
		if body.PaymentMethods[i] != m {
			t.Fatalf("payment labels mismatch: %v", body.PaymentMethods)
		}
	}
	if body.Message != "" {
		t.Fatalf("non-terminal view must carry no message, got %q", body.Message)
	}
}

func TestBookingHandler_EditingHidesTotal(t *testing.T) {
	e := bookingRig(&stubFlows{view: &ports.FlowView{
		State: domain.FlowEditing,
		Tour:  domain.TourReference{ID: "t1", Name: "Backwater Cruise", UnitPrice: 5000},
	}})

	body := getFlow(t, e)
	if body.TotalAmount != nil {
		t.Fatalf("editing view must not quote a total, got %d", *body.TotalAmount)
	}
	if len(body.PaymentMethods) != 0 {
		t.Fatalf("editing view must not offer payment methods: %v", body.PaymentMethods)
	}
}

func TestBookingHandler_ConfirmedCarriesMessage(t *testing.T) {
	e := bookingRig(&stubFlows{view: &ports.FlowView{
		State:          domain.FlowConfirmed,
		Tour:           domain.TourReference{ID: "t1"},
		OutcomeMessage: "Booking Confirmed! ref=123",
	}})

	body := getFlow(t, e)
	if body.Message != "Booking Confirmed! ref=123" {
		t.Fatalf("terminal view must carry the outcome message, got %q", body.Message)
	}
	if body.TotalAmount != nil {
		t.Fatalf("terminal view must not quote a total")
	}
}

func TestBookingHandler_MissingSession(t *testing.T) {
	h := NewBookingHandler(&stubFlows{})
	e := echo.New()
	e.GET("/v1/tours/:id/booking", h.View) // no session middleware

	req := httptest.NewRequest(http.MethodGet, "/v1/tours/t1/booking", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without session claims, got %d", rec.Code)
	}
}
