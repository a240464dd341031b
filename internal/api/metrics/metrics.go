// Package metrics defines and registers all custom Prometheus metrics for the
// booking gateway. It is the single source of truth for metric names, labels,
// and help strings. Metrics register with the default registry at import time
// via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "booking"

// ── Flow metrics ──────────────────────────────────────────────────────────────

// FlowTransitionsTotal counts state machine transitions that were applied.
// Labels:
//   - from: the state the flow left (e.g. "editing")
//   - to:   the state the flow entered (e.g. "reviewing")
var FlowTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "flow_transitions_total",
		Help:      "Total number of booking flow state transitions applied.",
	},
	[]string{"from", "to"},
)

// DraftRejectionsTotal counts submit-details attempts blocked by an
// incomplete draft.
var DraftRejectionsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "draft_rejections_total",
		Help:      "Total number of review attempts rejected by draft validation.",
	},
)

// ── Submission metrics ────────────────────────────────────────────────────────

// SubmissionsTotal counts completed submission attempts.
// Labels:
//   - method: the payment label chosen (e.g. "UPI Apps")
//   - result: "confirmed", "failed" or "timeout"
var SubmissionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "submissions_total",
		Help:      "Total number of booking submission attempts, by payment method and result.",
	},
	[]string{"method", "result"},
)

// SubmissionDuration measures how long one submission attempt takes from
// enqueue to collaborator response.
// Label:
//   - result: "confirmed", "failed" or "error"
var SubmissionDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "submission_duration_seconds",
		Help:      "Duration of a booking submission from dequeue to response.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"result"},
)

// DedupTotal counts attempt deduplication decisions.
// Label:
//   - result: "hit" (replayed attempt, skipped) or "miss" (fresh attempt)
var DedupTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "submission_dedup_total",
		Help:      "Total number of attempt deduplication checks, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// StaleOutcomesTotal counts submission responses discarded because a newer
// attempt generation superseded them.
var StaleOutcomesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "stale_outcomes_total",
		Help:      "Total number of late submission responses discarded as stale.",
	},
)

// QueueDepth tracks the number of jobs waiting in each submission worker
// channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var QueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "submission_queue_depth",
		Help:      "Current number of submission jobs pending in each worker channel.",
	},
	[]string{"worker_id"},
)

// ── Gate metrics ──────────────────────────────────────────────────────────────

// GuardDenialsTotal counts guard checks resolved into a redirect.
// Label:
//   - reason: "unauthenticated" or "role"
var GuardDenialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_denials_total",
		Help:      "Total number of route guard denials, by reason.",
	},
	[]string{"reason"},
)
