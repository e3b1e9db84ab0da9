package payments

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"andar_membership/internal/domain/entities"
	"andar_membership/internal/usecase/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testWebhookSecret = "whsec_test_secret"

func signPayload(t *testing.T, payload []byte, secret string, ts time.Time) string {
	t.Helper()
	mac := hmac.New(sha256.New, []byte(secret))
	_, _ = fmt.Fprintf(mac, "%d.%s", ts.Unix(), payload)
	return fmt.Sprintf("t=%d,v1=%s", ts.Unix(), hex.EncodeToString(mac.Sum(nil)))
}

const completedSessionPayload = `{
  "id": "evt_1",
  "object": "event",
  "api_version": "2020-08-27",
  "created": 1767225600,
  "type": "checkout.session.completed",
  "data": {
    "object": {
      "id": "cs_test_1",
      "object": "checkout.session",
      "amount_total": 500,
      "currency": "eur",
      "customer": "cus_1",
      "customer_email": "checkout@x.com",
      "customer_details": {"email": "a@x.com", "name": "Alice"},
      "payment_intent": {"id": "pi_1", "object": "payment_intent", "receipt_email": "receipt@x.com"},
      "metadata": {"membershipType": "digital", "name": "Alice M."}
    }
  }
}`

func TestStripeWebhookVerifier_Verify(t *testing.T) {
	v := NewStripeWebhookVerifier(testWebhookSecret)
	payload := []byte(completedSessionPayload)

	t.Run("valid signature", func(t *testing.T) {
		event, err := v.Verify(payload, signPayload(t, payload, testWebhookSecret, time.Now()))
		require.NoError(t, err)

		assert.Equal(t, "evt_1", event.ID)
		assert.Equal(t, entities.EventTypeCheckoutSessionCompleted, event.Type)
		assert.False(t, event.Unverified)
		assert.Equal(t, entities.SessionSnapshot{
			ID:                        "cs_test_1",
			CustomerDetailsEmail:      "a@x.com",
			CustomerDetailsName:       "Alice",
			CustomerEmail:             "checkout@x.com",
			CustomerID:                "cus_1",
			PaymentIntentReceiptEmail: "receipt@x.com",
			Metadata:                  map[string]string{"membershipType": "digital", "name": "Alice M."},
			AmountTotal:               500,
			Currency:                  "eur",
		}, event.Session)
	})

	t.Run("tampered body", func(t *testing.T) {
		header := signPayload(t, payload, testWebhookSecret, time.Now())
		tampered := []byte(completedSessionPayload[:len(completedSessionPayload)-2] + " }")

		_, err := v.Verify(tampered, header)
		require.ErrorIs(t, err, interfaces.ErrSignatureVerification)
	})

	t.Run("wrong secret", func(t *testing.T) {
		_, err := v.Verify(payload, signPayload(t, payload, "whsec_other", time.Now()))
		require.ErrorIs(t, err, interfaces.ErrSignatureVerification)
	})

	t.Run("expired timestamp", func(t *testing.T) {
		_, err := v.Verify(payload, signPayload(t, payload, testWebhookSecret, time.Now().Add(-time.Hour)))
		require.ErrorIs(t, err, interfaces.ErrSignatureVerification)
	})

	t.Run("garbage header", func(t *testing.T) {
		_, err := v.Verify(payload, "not-a-signature")
		require.ErrorIs(t, err, interfaces.ErrSignatureVerification)
	})

	t.Run("signed but not json", func(t *testing.T) {
		body := []byte("not json")
		_, err := v.Verify(body, signPayload(t, body, testWebhookSecret, time.Now()))
		require.ErrorIs(t, err, interfaces.ErrMalformedEvent)
	})

	t.Run("missing secret", func(t *testing.T) {
		_, err := NewStripeWebhookVerifier("").Verify(payload, signPayload(t, payload, "", time.Now()))
		require.ErrorIs(t, err, interfaces.ErrSignatureVerification)
	})
}

func TestStripeWebhookVerifier_ParseUnverified(t *testing.T) {
	v := NewStripeWebhookVerifier(testWebhookSecret)

	event, err := v.ParseUnverified([]byte(`{"id":"evt_2","type":"invoice.paid","data":{"object":{}}}`))
	require.NoError(t, err)
	assert.Equal(t, "invoice.paid", event.Type)
	assert.Empty(t, event.Session.ID)

	expanded := `{"id":"evt_3","type":"checkout.session.completed","data":{"object":{"id":"cs_3","customer":{"id":"cus_3","object":"customer","email":"c@x.com"}}}}`
	event, err = v.ParseUnverified([]byte(expanded))
	require.NoError(t, err)
	assert.Equal(t, "cus_3", event.Session.CustomerID)
	assert.Equal(t, "c@x.com", event.Session.CustomerObjectEmail)
	assert.NotNil(t, event.Session.Metadata)

	_, err = v.ParseUnverified([]byte(`{"type":"checkout.session.completed"}`))
	require.ErrorIs(t, err, interfaces.ErrMalformedEvent)

	_, err = v.ParseUnverified([]byte(`{"id":"evt_4","type":"checkout.session.completed"}`))
	require.ErrorIs(t, err, interfaces.ErrMalformedEvent)
}
