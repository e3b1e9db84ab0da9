package response

import (
	"andar_membership/internal/domain/entities"
	"time"
)

type NotificationResponse struct {
	ID                string    `json:"id"`
	EventID           string    `json:"event_id,omitempty"`
	SessionID         string    `json:"session_id,omitempty"`
	Recipient         string    `json:"recipient"`
	Name              string    `json:"name"`
	MembershipType    string    `json:"membership_type"`
	Status            string    `json:"status"`
	Attempts          int       `json:"attempts"`
	ProviderMessageID string    `json:"provider_message_id,omitempty"`
	Error             string    `json:"error,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

func FromNotification(n entities.Notification) NotificationResponse {
	return NotificationResponse{
		ID:                n.ID,
		EventID:           n.EventID,
		SessionID:         n.SessionID,
		Recipient:         n.Recipient,
		Name:              n.Name,
		MembershipType:    string(n.Tier),
		Status:            string(n.Status),
		Attempts:          n.Attempts,
		ProviderMessageID: n.ProviderMessageID,
		Error:             n.Error,
		CreatedAt:         n.CreatedAt,
	}
}

func FromNotifications(list []entities.Notification) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(list))
	for _, n := range list {
		out = append(out, FromNotification(n))
	}
	return out
}
