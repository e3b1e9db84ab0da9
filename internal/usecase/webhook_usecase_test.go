package usecase

import (
	"context"
	"errors"
	"testing"

	"andar_membership/internal/domain/entities"
	"andar_membership/internal/usecase/interfaces"
	mock_interfaces "andar_membership/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type webhookMocks struct {
	verifier *mock_interfaces.MockIWebhookVerifier
	events   *mock_interfaces.MockIProcessedEventRepository
	gateway  *mock_interfaces.MockIPaymentGateway
	sender   *mock_interfaces.MockIEmailSender
}

func newTestWebhookUseCase(t *testing.T, allowBypass bool) (*WebhookUseCase, webhookMocks) {
	ctrl := gomock.NewController(t)
	m := webhookMocks{
		verifier: mock_interfaces.NewMockIWebhookVerifier(ctrl),
		events:   mock_interfaces.NewMockIProcessedEventRepository(ctrl),
		gateway:  mock_interfaces.NewMockIPaymentGateway(ctrl),
		sender:   mock_interfaces.NewMockIEmailSender(ctrl),
	}
	notifications, _ := newTestNotificationUseCase(m.sender, nil)
	uc := NewWebhookUseCase(
		m.verifier,
		m.events,
		NewCustomerExtractor(m.gateway, nil),
		notifications,
		nil,
		WebhookUseCaseOptions{AllowUnsignedEvents: allowBypass},
		nil,
	)
	return uc, m
}

func completedEvent(id string, session entities.SessionSnapshot) entities.PaymentEvent {
	return entities.PaymentEvent{ID: id, Type: entities.EventTypeCheckoutSessionCompleted, Session: session}
}

func TestWebhookUseCase_Authentication(t *testing.T) {
	payload := []byte(`{"id":"evt_1"}`)

	t.Run("missing signature without bypass", func(t *testing.T) {
		uc, _ := newTestWebhookUseCase(t, false)

		_, err := uc.HandleStripeEvent(context.Background(), payload, "")
		require.ErrorIs(t, err, ErrMissingSignature)
	})

	t.Run("invalid signature", func(t *testing.T) {
		uc, m := newTestWebhookUseCase(t, false)
		m.verifier.EXPECT().Verify(payload, "t=1,v1=bad").Return(entities.PaymentEvent{}, interfaces.ErrSignatureVerification)

		_, err := uc.HandleStripeEvent(context.Background(), payload, "t=1,v1=bad")
		require.ErrorIs(t, err, ErrInvalidSignature)
	})

	t.Run("malformed envelope", func(t *testing.T) {
		uc, m := newTestWebhookUseCase(t, false)
		m.verifier.EXPECT().Verify(payload, "t=1,v1=ok").Return(entities.PaymentEvent{}, interfaces.ErrMalformedEvent)

		_, err := uc.HandleStripeEvent(context.Background(), payload, "t=1,v1=ok")
		require.ErrorIs(t, err, ErrInvalidEventPayload)
	})

	t.Run("bypass parses unsigned events", func(t *testing.T) {
		uc, m := newTestWebhookUseCase(t, true)
		m.verifier.EXPECT().ParseUnverified(payload).Return(entities.PaymentEvent{ID: "evt_1", Type: "invoice.paid"}, nil)

		out, err := uc.HandleStripeEvent(context.Background(), payload, "")
		require.NoError(t, err)
		assert.Equal(t, WebhookStatusIgnored, out.Status)
	})

	t.Run("bypass does not skip verification of signed events", func(t *testing.T) {
		uc, m := newTestWebhookUseCase(t, true)
		m.verifier.EXPECT().Verify(payload, "t=1,v1=bad").Return(entities.PaymentEvent{}, interfaces.ErrSignatureVerification)

		_, err := uc.HandleStripeEvent(context.Background(), payload, "t=1,v1=bad")
		require.ErrorIs(t, err, ErrInvalidSignature)
	})
}

func TestWebhookUseCase_CheckoutCompleted(t *testing.T) {
	payload := []byte(`{}`)
	sig := "t=1,v1=ok"

	t.Run("digital purchase sends one confirmation", func(t *testing.T) {
		uc, m := newTestWebhookUseCase(t, false)
		event := completedEvent("evt_a", entities.SessionSnapshot{
			ID:                   "cs_a",
			CustomerDetailsEmail: "a@x.com",
			Metadata:             map[string]string{"membershipType": "digital"},
			AmountTotal:          500,
		})
		m.verifier.EXPECT().Verify(payload, sig).Return(event, nil)
		m.events.EXPECT().Claim(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.ProcessedEvent) error {
				assert.Equal(t, "evt_a", e.EventID)
				assert.True(t, e.ExpiresAt.After(e.ProcessedAt))
				return nil
			})
		m.sender.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, email entities.TransactionalEmail) (string, error) {
				assert.Equal(t, "a@x.com", email.RecipientEmail)
				assert.Equal(t, "digital", email.Params.MembershipType)
				assert.Equal(t, "5€", email.Params.MembershipDetails.Price)
				return "<msg@brevo>", nil
			}).Times(1)

		out, err := uc.HandleStripeEvent(context.Background(), payload, sig)
		require.NoError(t, err)
		assert.Equal(t, WebhookOutcome{EventID: "evt_a", EventType: entities.EventTypeCheckoutSessionCompleted, Status: WebhookStatusProcessed}, out)
	})

	t.Run("metadata email is used when nothing else is present", func(t *testing.T) {
		uc, m := newTestWebhookUseCase(t, false)
		event := completedEvent("evt_c", entities.SessionSnapshot{
			ID:          "cs_c",
			Metadata:    map[string]string{"email": "b@y.com", "membershipType": "classic"},
			AmountTotal: 3200,
		})
		m.verifier.EXPECT().Verify(payload, sig).Return(event, nil)
		m.events.EXPECT().Claim(gomock.Any(), gomock.Any()).Return(nil)
		m.sender.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, email entities.TransactionalEmail) (string, error) {
				assert.Equal(t, "b@y.com", email.RecipientEmail)
				assert.Equal(t, "32€", email.Params.MembershipDetails.Price)
				return "<msg@brevo>", nil
			})

		out, err := uc.HandleStripeEvent(context.Background(), payload, sig)
		require.NoError(t, err)
		assert.Equal(t, WebhookStatusProcessed, out.Status)
	})

	t.Run("duplicate delivery sends nothing", func(t *testing.T) {
		uc, m := newTestWebhookUseCase(t, false)
		event := completedEvent("evt_dup", entities.SessionSnapshot{ID: "cs_dup", CustomerDetailsEmail: "a@x.com"})
		m.verifier.EXPECT().Verify(payload, sig).Return(event, nil).Times(2)
		gomock.InOrder(
			m.events.EXPECT().Claim(gomock.Any(), gomock.Any()).Return(nil),
			m.events.EXPECT().Claim(gomock.Any(), gomock.Any()).Return(interfaces.ErrEventAlreadyProcessed),
		)
		m.sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return("<msg@brevo>", nil).Times(1)

		first, err := uc.HandleStripeEvent(context.Background(), payload, sig)
		require.NoError(t, err)
		assert.Equal(t, WebhookStatusProcessed, first.Status)

		second, err := uc.HandleStripeEvent(context.Background(), payload, sig)
		require.NoError(t, err)
		assert.Equal(t, WebhookStatusDuplicate, second.Status)
	})

	t.Run("ledger outage fails open", func(t *testing.T) {
		uc, m := newTestWebhookUseCase(t, false)
		event := completedEvent("evt_o", entities.SessionSnapshot{ID: "cs_o", CustomerEmail: "a@x.com"})
		m.verifier.EXPECT().Verify(payload, sig).Return(event, nil)
		m.events.EXPECT().Claim(gomock.Any(), gomock.Any()).Return(errors.New("redis: connection refused"))
		m.sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return("<msg@brevo>", nil)

		out, err := uc.HandleStripeEvent(context.Background(), payload, sig)
		require.NoError(t, err)
		assert.Equal(t, WebhookStatusProcessed, out.Status)
	})

	t.Run("no email is acknowledged", func(t *testing.T) {
		uc, m := newTestWebhookUseCase(t, false)
		event := completedEvent("evt_n", entities.SessionSnapshot{ID: "cs_n", AmountTotal: 500})
		m.verifier.EXPECT().Verify(payload, sig).Return(event, nil)
		m.events.EXPECT().Claim(gomock.Any(), gomock.Any()).Return(nil)

		out, err := uc.HandleStripeEvent(context.Background(), payload, sig)
		require.NoError(t, err)
		assert.Equal(t, WebhookStatusNoEmail, out.Status)
	})

	t.Run("notification failure is acknowledged", func(t *testing.T) {
		uc, m := newTestWebhookUseCase(t, false)
		event := completedEvent("evt_f", entities.SessionSnapshot{ID: "cs_f", CustomerEmail: "a@x.com"})
		m.verifier.EXPECT().Verify(payload, sig).Return(event, nil)
		m.events.EXPECT().Claim(gomock.Any(), gomock.Any()).Return(nil)
		m.sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return("", errors.New("brevo: status 503")).Times(3)

		out, err := uc.HandleStripeEvent(context.Background(), payload, sig)
		require.NoError(t, err)
		assert.Equal(t, WebhookStatusNotificationFailed, out.Status)
	})

	t.Run("other event types are ignored", func(t *testing.T) {
		uc, m := newTestWebhookUseCase(t, false)
		m.verifier.EXPECT().Verify(payload, sig).Return(entities.PaymentEvent{ID: "evt_i", Type: "payment_intent.succeeded"}, nil)

		out, err := uc.HandleStripeEvent(context.Background(), payload, sig)
		require.NoError(t, err)
		assert.Equal(t, WebhookStatusIgnored, out.Status)
	})
}
