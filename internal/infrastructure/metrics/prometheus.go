package metrics

import (
	"andar_membership/internal/usecase/interfaces"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics implements interfaces.IMetrics using Prometheus.
type Metrics struct {
	checkoutSessionsTotal *prometheus.CounterVec
	webhookEventsTotal    *prometheus.CounterVec
	emailAttemptsTotal    *prometheus.CounterVec
	emailAttemptDuration  *prometheus.HistogramVec
	notificationsTotal    *prometheus.CounterVec
}

var _ interfaces.IMetrics = (*Metrics)(nil)

func NewMetrics(reg prometheus.Registerer, namespace string) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		checkoutSessionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "membership",
			Name:      "checkout_sessions_total",
			Help:      "Checkout session requests by tier and outcome.",
		}, []string{"tier", "outcome"}),

		webhookEventsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "membership",
			Name:      "webhook_events_total",
			Help:      "Payment processor webhook deliveries by event type and outcome.",
		}, []string{"event_type", "outcome"}),

		emailAttemptsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "membership",
			Name:      "email_attempts_total",
			Help:      "Individual email provider calls by outcome.",
		}, []string{"outcome"}),

		emailAttemptDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "membership",
			Name:      "email_attempt_duration_seconds",
			Help:      "Duration of individual email provider calls in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"outcome"}),

		notificationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "membership",
			Name:      "notifications_total",
			Help:      "Confirmation emails by final status and number of attempts used.",
		}, []string{"status", "attempts"}),
	}
}

func (m *Metrics) RecordCheckoutSession(tier, outcome string) {
	m.checkoutSessionsTotal.WithLabelValues(tier, outcome).Inc()
}

func (m *Metrics) RecordWebhookEvent(eventType, outcome string) {
	m.webhookEventsTotal.WithLabelValues(eventType, outcome).Inc()
}

func (m *Metrics) RecordEmailAttempt(outcome string, duration time.Duration) {
	m.emailAttemptsTotal.WithLabelValues(outcome).Inc()
	m.emailAttemptDuration.WithLabelValues(outcome).Observe(duration.Seconds())
}

func (m *Metrics) RecordNotification(status string, attempts int) {
	m.notificationsTotal.WithLabelValues(status, strconv.Itoa(attempts)).Inc()
}

// Noop discards everything.
type Noop struct{}

var _ interfaces.IMetrics = Noop{}

func (Noop) RecordCheckoutSession(string, string)     {}
func (Noop) RecordWebhookEvent(string, string)        {}
func (Noop) RecordEmailAttempt(string, time.Duration) {}
func (Noop) RecordNotification(string, int)           {}
