package usecase

import (
	"andar_membership/internal/domain/entities"
	"andar_membership/internal/usecase/interfaces"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

var (
	ErrMissingSignature    = errors.New("missing webhook signature")
	ErrInvalidSignature    = errors.New("invalid webhook signature")
	ErrInvalidEventPayload = errors.New("invalid webhook event payload")
)

// WebhookStatus describes what happened to an accepted delivery.
type WebhookStatus string

const (
	WebhookStatusProcessed          WebhookStatus = "processed"
	WebhookStatusIgnored            WebhookStatus = "ignored"
	WebhookStatusDuplicate          WebhookStatus = "duplicate"
	WebhookStatusNoEmail            WebhookStatus = "no_email"
	WebhookStatusNotificationFailed WebhookStatus = "notification_failed"
)

type WebhookOutcome struct {
	EventID   string
	EventType string
	Status    WebhookStatus
}

// IWebhookUseCase handles one processor notification.
//
// An error is returned only when the delivery cannot be authenticated or
// parsed. Every other outcome, failures included, is reported in WebhookOutcome
// and must be acknowledged to the processor.
type IWebhookUseCase interface {
	HandleStripeEvent(ctx context.Context, payload []byte, signatureHeader string) (WebhookOutcome, error)
}

type WebhookUseCase struct {
	verifier      interfaces.IWebhookVerifier
	events        interfaces.IProcessedEventRepository
	extractor     ICustomerExtractor
	notifications INotificationUseCase
	metrics       interfaces.IMetrics
	allowBypass   bool
	eventTTL      time.Duration
	log           *zap.Logger
	now           func() time.Time
}

var _ IWebhookUseCase = (*WebhookUseCase)(nil)

type WebhookUseCaseOptions struct {
	// AllowUnsignedEvents must only be set outside production.
	AllowUnsignedEvents bool
	ProcessedEventTTL   time.Duration
}

func NewWebhookUseCase(
	verifier interfaces.IWebhookVerifier,
	events interfaces.IProcessedEventRepository,
	extractor ICustomerExtractor,
	notifications INotificationUseCase,
	metrics interfaces.IMetrics,
	opts WebhookUseCaseOptions,
	log *zap.Logger,
) *WebhookUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.ProcessedEventTTL <= 0 {
		opts.ProcessedEventTTL = 72 * time.Hour
	}
	return &WebhookUseCase{
		verifier:      verifier,
		events:        events,
		extractor:     extractor,
		notifications: notifications,
		metrics:       metrics,
		allowBypass:   opts.AllowUnsignedEvents,
		eventTTL:      opts.ProcessedEventTTL,
		log:           log,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

func (u *WebhookUseCase) HandleStripeEvent(ctx context.Context, payload []byte, signatureHeader string) (WebhookOutcome, error) {
	event, err := u.authenticate(payload, signatureHeader)
	if err != nil {
		u.record("unknown", "rejected")
		return WebhookOutcome{}, err
	}

	outcome := WebhookOutcome{EventID: event.ID, EventType: event.Type}
	log := u.log.With(zap.String("event_id", event.ID), zap.String("event_type", event.Type))

	if event.Type != entities.EventTypeCheckoutSessionCompleted {
		log.Info("[webhook][usecase] event type ignored")
		outcome.Status = WebhookStatusIgnored
		u.record(event.Type, string(outcome.Status))
		return outcome, nil
	}

	if duplicate := u.claim(ctx, event, log); duplicate {
		outcome.Status = WebhookStatusDuplicate
		u.record(event.Type, string(outcome.Status))
		return outcome, nil
	}

	log = log.With(zap.String("session_id", event.Session.ID))
	customer, err := u.extractor.Extract(ctx, event.Session)
	if err != nil {
		log.Warn("[webhook][usecase] no recipient for confirmation email", zap.Error(err))
		outcome.Status = WebhookStatusNoEmail
		u.record(event.Type, string(outcome.Status))
		return outcome, nil
	}

	ref := NotificationRef{EventID: event.ID, SessionID: event.Session.ID}
	if _, err := u.notifications.SendMembershipConfirmation(ctx, customer, ref); err != nil {
		log.Error("[webhook][usecase] confirmation email failed",
			zap.String("tier", string(customer.Tier)),
			zap.Error(err),
		)
		outcome.Status = WebhookStatusNotificationFailed
		u.record(event.Type, string(outcome.Status))
		return outcome, nil
	}

	log.Info("[webhook][usecase] membership confirmed", zap.String("tier", string(customer.Tier)))
	outcome.Status = WebhookStatusProcessed
	u.record(event.Type, string(outcome.Status))
	return outcome, nil
}

func (u *WebhookUseCase) authenticate(payload []byte, signatureHeader string) (entities.PaymentEvent, error) {
	if u.verifier == nil {
		return entities.PaymentEvent{}, fmt.Errorf("%w: verifier not configured", ErrInvalidSignature)
	}

	if strings.TrimSpace(signatureHeader) == "" {
		if !u.allowBypass {
			u.log.Warn("[webhook][usecase] missing signature header")
			return entities.PaymentEvent{}, ErrMissingSignature
		}
		u.log.Warn("[webhook][usecase] signature bypass: accepting unsigned event")
		event, err := u.verifier.ParseUnverified(payload)
		if err != nil {
			return entities.PaymentEvent{}, fmt.Errorf("%w: %w", ErrInvalidEventPayload, err)
		}
		event.Unverified = true
		return event, nil
	}

	event, err := u.verifier.Verify(payload, signatureHeader)
	if err != nil {
		if errors.Is(err, interfaces.ErrMalformedEvent) {
			u.log.Warn("[webhook][usecase] malformed event", zap.Error(err))
			return entities.PaymentEvent{}, fmt.Errorf("%w: %w", ErrInvalidEventPayload, err)
		}
		u.log.Warn("[webhook][usecase] signature verification failed", zap.Error(err))
		return entities.PaymentEvent{}, fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}
	return event, nil
}

// claim reports whether the event was already handled. Ledger outages are
// logged and the event is processed anyway.
func (u *WebhookUseCase) claim(ctx context.Context, event entities.PaymentEvent, log *zap.Logger) bool {
	if u.events == nil || event.ID == "" {
		return false
	}
	now := u.now()
	err := u.events.Claim(ctx, entities.ProcessedEvent{
		EventID:     event.ID,
		EventType:   event.Type,
		ProcessedAt: now,
		ExpiresAt:   now.Add(u.eventTTL),
	})
	switch {
	case err == nil:
		return false
	case errors.Is(err, interfaces.ErrEventAlreadyProcessed):
		log.Info("[webhook][usecase] duplicate delivery acknowledged")
		return true
	default:
		log.Warn("[webhook][usecase] processed event ledger unavailable", zap.Error(err))
		return false
	}
}

func (u *WebhookUseCase) record(eventType, outcome string) {
	if u.metrics != nil {
		u.metrics.RecordWebhookEvent(eventType, outcome)
	}
}
