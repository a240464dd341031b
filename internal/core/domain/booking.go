package domain

import "errors"

// FlowState represents the lifecycle state of a booking flow.
type FlowState string

const (
	FlowIdle       FlowState = "idle"
	FlowEditing    FlowState = "editing"
	FlowReviewing  FlowState = "reviewing"
	FlowSubmitting FlowState = "submitting"
	FlowConfirmed  FlowState = "confirmed"
	FlowFailed     FlowState = "failed"
)

// validTransitions defines the allowed state machine transitions.
var validTransitions = map[FlowState][]FlowState{
	FlowIdle:       {FlowEditing},
	FlowEditing:    {FlowReviewing, FlowIdle},
	FlowReviewing:  {FlowSubmitting, FlowIdle},
	FlowSubmitting: {FlowConfirmed, FlowFailed},
	FlowConfirmed:  {FlowEditing},
	FlowFailed:     {FlowEditing},
}

var ErrInvalidTransition = errors.New("invalid flow transition")
var ErrFlowNotFound = errors.New("booking flow not found")
var ErrTourNotFound = errors.New("tour not found")
var ErrDraftIncomplete = errors.New("booking draft incomplete")
var ErrUnknownPaymentMethod = errors.New("unknown payment method")
var ErrDuplicateAttempt = errors.New("submission attempt already processed")
var ErrSubmitTimeout = errors.New("submission timed out")
var ErrUpstreamUnavailable = errors.New("upstream service unavailable")

// CanTransitionTo reports whether a transition from the current state to next is valid.
func (s FlowState) CanTransitionTo(next FlowState) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Terminal reports whether the flow has reached an outcome.
func (s FlowState) Terminal() bool {
	return s == FlowConfirmed || s == FlowFailed
}

// PaymentMethod is one of the closed set of payment labels offered at review.
// The labels are presentational only; no payment credentials are processed.
type PaymentMethod string

const (
	PaymentNetBanking PaymentMethod = "Net Banking"
	PaymentCreditCard PaymentMethod = "Credit Card"
	PaymentUPI        PaymentMethod = "UPI Apps"
)

// PaymentMethods lists every accepted payment label.
func PaymentMethods() []PaymentMethod {
	return []PaymentMethod{PaymentNetBanking, PaymentCreditCard, PaymentUPI}
}

// ParsePaymentMethod validates a raw label against the closed set.
func ParsePaymentMethod(raw string) (PaymentMethod, error) {
	for _, m := range PaymentMethods() {
		if string(m) == raw {
			return m, nil
		}
	}
	return "", ErrUnknownPaymentMethod
}

// Outcome messages shown to the traveler after a submission attempt.
const (
	ConfirmedPrefix        = "Booking Confirmed! "
	FallbackFailureMessage = "Booking failed."
)

// BookingDraft is the in-progress, traveler-editable form data. Fields are
// assigned one at a time while the flow is in FlowEditing.
type BookingDraft struct {
	FullName     string `json:"full_name"`
	Age          int    `json:"age"`
	MobileNumber string `json:"mobile_number"`
	Email        string `json:"email"`
	PartySize    int    `json:"party_size"`
}

// Validate reports whether the draft is submittable: every field populated,
// age positive and party size of at least one.
func (d BookingDraft) Validate() error {
	switch {
	case d.FullName == "":
		return errors.New("full_name is required")
	case d.Age < 1:
		return errors.New("age must be a positive integer")
	case d.MobileNumber == "":
		return errors.New("mobile_number is required")
	case d.Email == "":
		return errors.New("email is required")
	case d.PartySize < 1:
		return errors.New("party_size must be at least 1")
	}
	return nil
}

// TourReference is the immutable catalog view a flow is anchored to.
// UnitPrice is an integer currency amount (whole rupees).
type TourReference struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	UnitPrice   int64  `json:"unit_price"`
	Duration    string `json:"duration,omitempty"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
}

// Total computes the quoted amount for a party of the given size. The value
// is always derived from the live inputs, never cached on the flow.
func (t TourReference) Total(partySize int) int64 {
	return t.UnitPrice * int64(partySize)
}

// BookingRequest is the immutable snapshot sent to the submission collaborator.
// Built exactly once per attempt; the attempt ID distinguishes generations so
// late responses for superseded attempts can be discarded.
type BookingRequest struct {
	FullName      string
	Age           int
	MobileNumber  string
	Email         string
	PartySize     int
	TourID        string
	TourName      string
	PaymentMethod PaymentMethod
	TotalAmount   int64
}

// SubmissionRejectedError carries the collaborator-supplied rejection message,
// when one was present in the response body.
type SubmissionRejectedError struct {
	Message string
}

func (e *SubmissionRejectedError) Error() string {
	if e.Message == "" {
		return "booking submission rejected"
	}
	return "booking submission rejected: " + e.Message
}
