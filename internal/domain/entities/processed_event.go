package entities

import "time"

// ProcessedEvent marks a webhook delivery that has already been handled.
type ProcessedEvent struct {
	EventID     string
	EventType   string
	ProcessedAt time.Time
	ExpiresAt   time.Time
}
