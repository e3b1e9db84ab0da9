package payments

import (
	"andar_membership/internal/domain/entities"
	"andar_membership/internal/usecase/interfaces"
	"encoding/json"
	"fmt"
	"time"

	"github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/webhook"
)

// StripeWebhookVerifier checks the Stripe-Signature header and maps the event
// envelope to a PaymentEvent. API version mismatches are tolerated.
type StripeWebhookVerifier struct {
	secret    string
	tolerance time.Duration
}

var _ interfaces.IWebhookVerifier = (*StripeWebhookVerifier)(nil)

func NewStripeWebhookVerifier(secret string) *StripeWebhookVerifier {
	return &StripeWebhookVerifier{secret: secret, tolerance: webhook.DefaultTolerance}
}

func (v *StripeWebhookVerifier) Verify(payload []byte, signatureHeader string) (entities.PaymentEvent, error) {
	if v.secret == "" {
		return entities.PaymentEvent{}, fmt.Errorf("%w: webhook secret not configured", interfaces.ErrSignatureVerification)
	}
	if err := webhook.ValidatePayloadWithTolerance(payload, signatureHeader, v.secret, v.tolerance); err != nil {
		return entities.PaymentEvent{}, fmt.Errorf("%w: %w", interfaces.ErrSignatureVerification, err)
	}
	return parseEvent(payload)
}

func (v *StripeWebhookVerifier) ParseUnverified(payload []byte) (entities.PaymentEvent, error) {
	return parseEvent(payload)
}

func parseEvent(payload []byte) (entities.PaymentEvent, error) {
	var event stripe.Event
	if err := json.Unmarshal(payload, &event); err != nil {
		return entities.PaymentEvent{}, fmt.Errorf("%w: %w", interfaces.ErrMalformedEvent, err)
	}
	if event.ID == "" || event.Type == "" {
		return entities.PaymentEvent{}, fmt.Errorf("%w: missing id or type", interfaces.ErrMalformedEvent)
	}

	out := entities.PaymentEvent{
		ID:      event.ID,
		Type:    string(event.Type),
		Created: time.Unix(event.Created, 0).UTC(),
	}
	if out.Type != entities.EventTypeCheckoutSessionCompleted {
		return out, nil
	}

	if event.Data == nil || len(event.Data.Raw) == 0 {
		return entities.PaymentEvent{}, fmt.Errorf("%w: missing data.object", interfaces.ErrMalformedEvent)
	}
	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		return entities.PaymentEvent{}, fmt.Errorf("%w: checkout session: %w", interfaces.ErrMalformedEvent, err)
	}
	out.Session = toSessionSnapshot(&session)
	return out, nil
}

func toSessionSnapshot(s *stripe.CheckoutSession) entities.SessionSnapshot {
	snap := entities.SessionSnapshot{
		ID:            s.ID,
		CustomerEmail: s.CustomerEmail,
		Metadata:      s.Metadata,
		AmountTotal:   s.AmountTotal,
		Currency:      string(s.Currency),
	}
	if s.CustomerDetails != nil {
		snap.CustomerDetailsEmail = s.CustomerDetails.Email
		snap.CustomerDetailsName = s.CustomerDetails.Name
	}
	if s.Customer != nil {
		snap.CustomerID = s.Customer.ID
		snap.CustomerObjectEmail = s.Customer.Email
	}
	if s.PaymentIntent != nil {
		snap.PaymentIntentReceiptEmail = s.PaymentIntent.ReceiptEmail
	}
	if snap.Metadata == nil {
		snap.Metadata = map[string]string{}
	}
	return snap
}
