package ports

import (
	"context"

	"github.com/tourkart/booking-gateway/internal/core/domain"
)

// DraftUpdate carries a partial field assignment into the draft. Nil fields
// are left untouched, mirroring field-by-field form editing.
type DraftUpdate struct {
	FullName     *string
	Age          *int
	MobileNumber *string
	Email        *string
	PartySize    *int
}

// FlowView is the read model of a booking flow returned to the transport
// layer after every operation.
type FlowView struct {
	State          domain.FlowState
	Tour           domain.TourReference
	Draft          domain.BookingDraft
	Total          int64 // unit price × party size; populated from FlowReviewing onward
	OutcomeMessage string
}

// BookingFlowService drives one tour's booking from idle display through data
// collection, price quotation, payment choice and submission to a terminal
// outcome. Instances are isolated per session and tour.
type BookingFlowService interface {
	// Start loads the tour reference (when not already held) and begins a
	// fresh draft, clearing any previous outcome message.
	Start(ctx context.Context, sessionID, tourID string) (*FlowView, error)
	// View returns the current flow state without transitioning.
	View(ctx context.Context, sessionID, tourID string) (*FlowView, error)
	// UpdateDraft assigns fields into the draft. Only legal while editing.
	UpdateDraft(ctx context.Context, sessionID, tourID string, update DraftUpdate) (*FlowView, error)
	// SubmitDetails moves the flow to review when the draft is submittable,
	// exposing the quoted total. An incomplete draft keeps the flow editing
	// and surfaces domain.ErrDraftIncomplete.
	SubmitDetails(ctx context.Context, sessionID, tourID string) (*FlowView, error)
	// ChoosePayment consumes the reviewing state, issues exactly one
	// submission request for this attempt and waits for the outcome within
	// the configured bound.
	ChoosePayment(ctx context.Context, sessionID, tourID, method string) (*FlowView, error)
	// Cancel discards the draft and any pending quote, returning to idle.
	Cancel(ctx context.Context, sessionID, tourID string) (*FlowView, error)
}

// SubmissionResult is the reply delivered for a queued submission job.
type SubmissionResult struct {
	Message string
	Err     error
}

// SubmissionJob is one booking submission attempt handed to the queue. Reply
// receives exactly one result; it must be buffered by the producer.
type SubmissionJob struct {
	FlowKey   string
	AttemptID string
	Request   domain.BookingRequest
	Reply     chan SubmissionResult
}

// SubmissionQueue decouples payment selection from the outbound request so
// attempts for the same flow are processed in order.
type SubmissionQueue interface {
	Enqueue(job SubmissionJob)
}

// SubmissionService processes a single queued submission attempt.
type SubmissionService interface {
	Process(ctx context.Context, job SubmissionJob)
}
