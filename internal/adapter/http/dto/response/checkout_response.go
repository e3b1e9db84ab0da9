package response

import "andar_membership/internal/domain/entities"

type CheckoutSessionResponse struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

func FromCheckoutSession(s entities.CheckoutSession) CheckoutSessionResponse {
	return CheckoutSessionResponse{ID: s.ID, URL: s.URL}
}

// WebhookAckResponse is returned for every authenticated delivery.
type WebhookAckResponse struct {
	Received bool `json:"received"`
}
