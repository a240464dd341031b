package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tourkart/booking-gateway/internal/api/metrics"
	"github.com/tourkart/booking-gateway/internal/core/domain"
	"github.com/tourkart/booking-gateway/internal/core/ports"
)

const defaultSubmitTimeout = 15 * time.Second

// flow is one per-session, per-tour booking flow instance. Every instance is
// fully isolated: its own lock, draft and attempt generation.
type flow struct {
	mu         sync.Mutex
	key        string
	tour       domain.TourReference
	state      domain.FlowState
	draft      domain.BookingDraft
	outcomeMsg string
	// attemptID tags the in-flight submission generation. Responses carrying
	// a different ID are discarded rather than overwriting a newer attempt.
	attemptID string
}

// BookingFlowService drives booking flows. Flow instances live in memory for
// the lifetime of the process; there is no cross-restart persistence.
type BookingFlowService struct {
	catalog       ports.CatalogClient
	queue         ports.SubmissionQueue
	submitTimeout time.Duration
	log           zerolog.Logger

	mu    sync.RWMutex
	flows map[string]*flow
}

// NewBookingFlowService wires the flow engine to the catalog collaborator and
// the submission queue. submitTimeout bounds the wait for an outcome; zero or
// negative selects the default.
func NewBookingFlowService(catalog ports.CatalogClient, queue ports.SubmissionQueue, submitTimeout time.Duration, log zerolog.Logger) *BookingFlowService {
	if submitTimeout <= 0 {
		submitTimeout = defaultSubmitTimeout
	}
	return &BookingFlowService{
		catalog:       catalog,
		queue:         queue,
		submitTimeout: submitTimeout,
		log:           log,
		flows:         make(map[string]*flow),
	}
}

func flowKey(sessionID, tourID string) string {
	return sessionID + "/" + tourID
}

// Start begins (or restarts) the flow for one tour view. The tour reference
// must be loadable before the flow becomes enterable; once held it is
// immutable for the instance's lifetime. Any previous outcome message is
// cleared and a fresh draft begins.
func (s *BookingFlowService) Start(ctx context.Context, sessionID, tourID string) (*ports.FlowView, error) {
	key := flowKey(sessionID, tourID)

	s.mu.Lock()
	existing, ok := s.flows[key]
	if ok {
		existing.mu.Lock()
		submitting := existing.state == domain.FlowSubmitting
		existing.mu.Unlock()
		if submitting {
			// Detach the instance: the in-flight attempt completes against
			// the orphan and its late result is discarded as stale.
			delete(s.flows, key)
			ok = false
			s.log.Debug().Str("flow", key).Msg("flow restarted while submitting, previous attempt orphaned")
		}
	}
	if !ok {
		s.mu.Unlock()

		tour, err := s.catalog.GetTour(ctx, tourID)
		if err != nil {
			s.log.Error().Err(err).Str("tour_id", tourID).Msg("failed to load tour reference")
			return nil, err
		}

		f := &flow{key: key, tour: *tour, state: domain.FlowIdle}

		s.mu.Lock()
		s.flows[key] = f
		s.mu.Unlock()

		f.mu.Lock()
		defer f.mu.Unlock()
		if err := s.transition(f, domain.FlowEditing); err != nil {
			return nil, err
		}
		return s.view(f), nil
	}
	s.mu.Unlock()

	existing.mu.Lock()
	defer existing.mu.Unlock()

	// Re-entering an active flow first discards the draft (the cancel edge),
	// then begins editing again. Terminal flows restart directly.
	if existing.state == domain.FlowEditing || existing.state == domain.FlowReviewing {
		if err := s.transition(existing, domain.FlowIdle); err != nil {
			return nil, err
		}
	}
	if err := s.transition(existing, domain.FlowEditing); err != nil {
		return nil, err
	}
	existing.draft = domain.BookingDraft{}
	existing.outcomeMsg = ""
	existing.attemptID = ""
	return s.view(existing), nil
}

// View returns the current state without transitioning.
func (s *BookingFlowService) View(ctx context.Context, sessionID, tourID string) (*ports.FlowView, error) {
	f, err := s.get(sessionID, tourID)
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return s.view(f), nil
}

// UpdateDraft assigns the supplied fields into the draft. Pure assignment, no
// validation beyond what the transport's numeric binding already enforced.
func (s *BookingFlowService) UpdateDraft(ctx context.Context, sessionID, tourID string, update ports.DraftUpdate) (*ports.FlowView, error) {
	f, err := s.get(sessionID, tourID)
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != domain.FlowEditing {
		return nil, fmt.Errorf("%w: draft edits require %s, flow is %s", domain.ErrInvalidTransition, domain.FlowEditing, f.state)
	}

	if update.FullName != nil {
		f.draft.FullName = *update.FullName
	}
	if update.Age != nil {
		f.draft.Age = *update.Age
	}
	if update.MobileNumber != nil {
		f.draft.MobileNumber = *update.MobileNumber
	}
	if update.Email != nil {
		f.draft.Email = *update.Email
	}
	if update.PartySize != nil {
		f.draft.PartySize = *update.PartySize
	}

	return s.view(f), nil
}

// SubmitDetails moves the flow to review when the draft is submittable. An
// incomplete draft keeps the flow editing with the draft intact.
func (s *BookingFlowService) SubmitDetails(ctx context.Context, sessionID, tourID string) (*ports.FlowView, error) {
	f, err := s.get(sessionID, tourID)
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != domain.FlowEditing {
		return nil, fmt.Errorf("%w: review requires %s, flow is %s", domain.ErrInvalidTransition, domain.FlowEditing, f.state)
	}
	if err := f.draft.Validate(); err != nil {
		metrics.DraftRejectionsTotal.Inc()
		return nil, fmt.Errorf("%w: %s", domain.ErrDraftIncomplete, err.Error())
	}
	if err := s.transition(f, domain.FlowReviewing); err != nil {
		return nil, err
	}
	return s.view(f), nil
}

// Cancel discards the draft and any pending quote. Legal from editing and
// reviewing only; an issued submission cannot be cancelled.
func (s *BookingFlowService) Cancel(ctx context.Context, sessionID, tourID string) (*ports.FlowView, error) {
	f, err := s.get(sessionID, tourID)
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if err := s.transition(f, domain.FlowIdle); err != nil {
		return nil, err
	}
	f.draft = domain.BookingDraft{}
	return s.view(f), nil
}

// ChoosePayment consumes the reviewing state immediately, so repeated clicks
// can never issue a second request for the same review cycle. The snapshot is
// built once, queued, and the outcome applied to this attempt generation even
// if the caller goes away; the call itself waits no longer than the
// configured bound.
func (s *BookingFlowService) ChoosePayment(ctx context.Context, sessionID, tourID, method string) (*ports.FlowView, error) {
	f, err := s.get(sessionID, tourID)
	if err != nil {
		return nil, err
	}

	paymentMethod, err := domain.ParsePaymentMethod(method)
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	if f.state != domain.FlowReviewing {
		state := f.state
		f.mu.Unlock()
		return nil, fmt.Errorf("%w: payment requires %s, flow is %s", domain.ErrInvalidTransition, domain.FlowReviewing, state)
	}

	attemptID := uuid.NewString()
	request := domain.BookingRequest{
		FullName:      f.draft.FullName,
		Age:           f.draft.Age,
		MobileNumber:  f.draft.MobileNumber,
		Email:         f.draft.Email,
		PartySize:     f.draft.PartySize,
		TourID:        f.tour.ID,
		TourName:      f.tour.Name,
		PaymentMethod: paymentMethod,
		TotalAmount:   f.tour.Total(f.draft.PartySize),
	}

	if err := s.transition(f, domain.FlowSubmitting); err != nil {
		f.mu.Unlock()
		return nil, err
	}
	f.attemptID = attemptID
	f.mu.Unlock()

	reply := make(chan ports.SubmissionResult, 1)
	s.queue.Enqueue(ports.SubmissionJob{
		FlowKey:   f.key,
		AttemptID: attemptID,
		Request:   request,
		Reply:     reply,
	})

	// The waiter applies the outcome regardless of the caller: a dropped
	// client connection must not leave the flow submitting forever.
	applied := make(chan *ports.FlowView, 1)
	go func() {
		var result ports.SubmissionResult
		timer := time.NewTimer(s.submitTimeout)
		defer timer.Stop()
		select {
		case result = <-reply:
		case <-timer.C:
			result = ports.SubmissionResult{Err: domain.ErrSubmitTimeout}
		}
		applied <- s.applyOutcome(f, attemptID, paymentMethod, result)
	}()

	select {
	case view := <-applied:
		return view, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// applyOutcome records the terminal outcome for one attempt generation. A
// result whose attempt no longer matches the flow's current generation is
// discarded with no visible effect.
func (s *BookingFlowService) applyOutcome(f *flow, attemptID string, method domain.PaymentMethod, result ports.SubmissionResult) *ports.FlowView {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != domain.FlowSubmitting || f.attemptID != attemptID {
		metrics.StaleOutcomesTotal.Inc()
		s.log.Debug().Str("flow", f.key).Str("attempt_id", attemptID).Msg("stale submission outcome discarded")
		return s.view(f)
	}

	if result.Err == nil {
		_ = s.transition(f, domain.FlowConfirmed)
		f.outcomeMsg = domain.ConfirmedPrefix + result.Message
		metrics.SubmissionsTotal.WithLabelValues(string(method), "confirmed").Inc()
	} else {
		_ = s.transition(f, domain.FlowFailed)
		f.outcomeMsg = failureMessage(result.Err)
		outcome := "failed"
		if errors.Is(result.Err, domain.ErrSubmitTimeout) {
			outcome = "timeout"
		}
		metrics.SubmissionsTotal.WithLabelValues(string(method), outcome).Inc()
		s.log.Warn().Err(result.Err).Str("flow", f.key).Msg("booking submission failed")
	}

	f.attemptID = ""
	f.draft = domain.BookingDraft{}
	return s.view(f)
}

// failureMessage surfaces the collaborator's rejection text verbatim when
// present, else the generic fallback.
func failureMessage(err error) string {
	var rejected *domain.SubmissionRejectedError
	if errors.As(err, &rejected) && rejected.Message != "" {
		return rejected.Message
	}
	return domain.FallbackFailureMessage
}

func (s *BookingFlowService) get(sessionID, tourID string) (*flow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	f, ok := s.flows[flowKey(sessionID, tourID)]
	if !ok {
		return nil, domain.ErrFlowNotFound
	}
	return f, nil
}

// transition applies one state machine edge. Callers hold f.mu.
func (s *BookingFlowService) transition(f *flow, to domain.FlowState) error {
	if !f.state.CanTransitionTo(to) {
		return fmt.Errorf("%w: %s to %s", domain.ErrInvalidTransition, f.state, to)
	}
	metrics.FlowTransitionsTotal.WithLabelValues(string(f.state), string(to)).Inc()
	s.log.Debug().Str("flow", f.key).Str("from", string(f.state)).Str("to", string(to)).Msg("flow transition")
	f.state = to
	return nil
}

// view builds the read model. The total is always recomputed from the live
// unit price and party size, never cached. Callers hold f.mu.
func (s *BookingFlowService) view(f *flow) *ports.FlowView {
	v := &ports.FlowView{
		State: f.state,
		Tour:  f.tour,
		Draft: f.draft,
	}
	if f.state == domain.FlowReviewing || f.state == domain.FlowSubmitting {
		v.Total = f.tour.Total(f.draft.PartySize)
	}
	if f.state.Terminal() {
		v.OutcomeMessage = f.outcomeMsg
	}
	return v
}
