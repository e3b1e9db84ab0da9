package interfaces

import "time"

// IMetrics records business counters. Implementations must be safe for concurrent use.
type IMetrics interface {
	RecordCheckoutSession(tier string, outcome string)
	RecordWebhookEvent(eventType string, outcome string)
	RecordEmailAttempt(outcome string, duration time.Duration)
	RecordNotification(status string, attempts int)
}
