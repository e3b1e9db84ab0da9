package entities

import "time"

type NotificationStatus string

const (
	NotificationStatusSent   NotificationStatus = "sent"
	NotificationStatusFailed NotificationStatus = "failed"
)

// Notification records the outcome of one confirmation email, including all retries.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (recipient-index): recipient
type Notification struct {
	ID                string             `json:"id"`
	EventID           string             `json:"event_id,omitempty"`
	SessionID         string             `json:"session_id,omitempty"`
	Recipient         string             `json:"recipient"`
	Name              string             `json:"name"`
	Tier              MembershipTier     `json:"tier"`
	Status            NotificationStatus `json:"status"`
	Attempts          int                `json:"attempts"`
	ProviderMessageID string             `json:"provider_message_id,omitempty"`
	Error             string             `json:"error,omitempty"`
	CreatedAt         time.Time          `json:"created_at"`
}

// SendResult is the outcome of the bounded retry loop.
type SendResult struct {
	MessageID string
	Attempts  int
	SentAt    time.Time
}
