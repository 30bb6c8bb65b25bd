// Package metrics defines all custom Prometheus metrics for the platform API.
// It is the single source of truth for metric names, labels, and help strings.
// Metrics register with the default registry at import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "eduplatform"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts successful registrations by role.
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of successful user registrations, by role.",
	},
	[]string{"role"},
)

// TokenVerificationsTotal counts bearer token verifications.
// Label:
//   - result: "valid", "expired", or "invalid"
var TokenVerificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_verifications_total",
		Help:      "Total number of bearer token verifications, by result.",
	},
	[]string{"result"},
)

// PolicyDenialsTotal counts requests rejected by the authorization policy.
// Label:
//   - reason: "unauthorized" (no caller) or "forbidden" (role/ownership)
var PolicyDenialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "policy_denials_total",
		Help:      "Total number of requests denied by the authorization policy.",
	},
	[]string{"reason"},
)

// ── AI generation metrics ─────────────────────────────────────────────────────

// AIGenerationsTotal counts content-generation requests.
// Labels:
//   - kind: "lesson_plan", "quiz", "performance_analysis", "feedback"
//   - result: "success", "cache_hit", or "error"
var AIGenerationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ai_generations_total",
		Help:      "Total number of AI content generations, by kind and result.",
	},
	[]string{"kind", "result"},
)

// AIGenerationDuration measures end-to-end generation latency.
var AIGenerationDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "ai_generation_duration_seconds",
		Help:      "Duration of AI content generation requests.",
		Buckets:   []float64{.1, .25, .5, 1, 2.5, 5, 10, 30, 60},
	},
	[]string{"kind"},
)

// ── Audit metrics ─────────────────────────────────────────────────────────────

// AuditQueueDepth tracks entries waiting in each audit worker channel.
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of audit entries pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
