package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tourkart/booking-gateway/internal/api/metrics"
	"github.com/tourkart/booking-gateway/internal/core/domain"
	"github.com/tourkart/booking-gateway/internal/core/ports"
)

// DedupChecker abstracts the attempt idempotency store (Redis).
type DedupChecker interface {
	IsDuplicate(ctx context.Context, attemptID string) (bool, error)
	Mark(ctx context.Context, attemptID string) error
}

type submissionService struct {
	submitter ports.BookingSubmitter
	dedup     DedupChecker
	log       zerolog.Logger
}

// NewSubmissionService returns a SubmissionService that sends one booking
// request per attempt generation, guarded by the dedup store so a replayed
// job can never reach the collaborator twice.
func NewSubmissionService(submitter ports.BookingSubmitter, dedup DedupChecker, log zerolog.Logger) ports.SubmissionService {
	return &submissionService{submitter: submitter, dedup: dedup, log: log}
}

// Process delivers exactly one submission request for the job's attempt and
// replies with the outcome. Reply is buffered by the producer, so the single
// send never blocks a worker.
func (s *submissionService) Process(ctx context.Context, job ports.SubmissionJob) {
	start := time.Now()

	// Replayed attempts are never re-sent.
	isDup, err := s.dedup.IsDuplicate(ctx, job.AttemptID)
	if err != nil {
		s.log.Warn().Err(err).Str("attempt_id", job.AttemptID).Msg("dedup check failed, processing anyway")
	} else if isDup {
		metrics.DedupTotal.WithLabelValues("hit").Inc()
		s.log.Debug().Str("attempt_id", job.AttemptID).Msg("duplicate submission attempt skipped")
		job.Reply <- ports.SubmissionResult{Err: domain.ErrDuplicateAttempt}
		return
	}
	metrics.DedupTotal.WithLabelValues("miss").Inc()

	// Mark before sending: a retried job after a crash must not re-submit.
	if markErr := s.dedup.Mark(ctx, job.AttemptID); markErr != nil {
		s.log.Warn().Err(markErr).Str("attempt_id", job.AttemptID).Msg("failed to set dedup key")
	}

	message, err := s.submitter.Submit(ctx, job.AttemptID, job.Request)
	if err != nil {
		metrics.SubmissionDuration.WithLabelValues("error").Observe(time.Since(start).Seconds())
		s.log.Warn().Err(err).
			Str("flow", job.FlowKey).
			Str("attempt_id", job.AttemptID).
			Msg("booking submission rejected or unreachable")
		job.Reply <- ports.SubmissionResult{Err: err}
		return
	}

	metrics.SubmissionDuration.WithLabelValues("confirmed").Observe(time.Since(start).Seconds())
	s.log.Info().
		Str("flow", job.FlowKey).
		Str("attempt_id", job.AttemptID).
		Str("tour_id", job.Request.TourID).
		Str("payment_method", string(job.Request.PaymentMethod)).
		Msg("booking submitted")

	job.Reply <- ports.SubmissionResult{Message: message}
}
