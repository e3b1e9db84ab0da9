package interfaces

import (
	"andar_membership/internal/domain/entities"
	"errors"
)

var (
	ErrSignatureVerification = errors.New("webhook signature verification failed")
	ErrMalformedEvent        = errors.New("malformed webhook event")
)

// IWebhookVerifier authenticates processor notifications over the exact raw body.
type IWebhookVerifier interface {
	Verify(payload []byte, signatureHeader string) (entities.PaymentEvent, error)
	// ParseUnverified is only used under the local signature bypass.
	ParseUnverified(payload []byte) (entities.PaymentEvent, error)
}
