package usecase

import (
	"andar_membership/internal/domain/entities"
	"andar_membership/internal/usecase/interfaces"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrNotificationFailed  = errors.New("confirmation email not delivered")
	ErrInvalidRecipient    = errors.New("invalid recipient email")
	ErrNotificationLogDown = errors.New("notification log not configured")
)

// RetryPolicy bounds delivery of one confirmation email.
type RetryPolicy struct {
	MaxAttempts    int
	BackoffBase    time.Duration
	AttemptTimeout time.Duration
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxAttempts: 3, BackoffBase: 500 * time.Millisecond, AttemptTimeout: 5 * time.Second}
}

// Backoff returns the pause before the attempt following attempt n (1-based).
func (p RetryPolicy) Backoff(n int) time.Duration {
	return p.BackoffBase * time.Duration(1<<uint(n))
}

// NotificationRef links an email to the webhook delivery that triggered it.
type NotificationRef struct {
	EventID   string
	SessionID string
}

// INotificationUseCase delivers membership confirmation emails and exposes their log.
type INotificationUseCase interface {
	SendMembershipConfirmation(ctx context.Context, customer entities.ResolvedCustomer, ref NotificationRef) (entities.Notification, error)
	SendTest(ctx context.Context, customer entities.ResolvedCustomer) (entities.Notification, error)
	ListByRecipient(ctx context.Context, email string) ([]entities.Notification, error)
}

type NotificationUseCase struct {
	sender     interfaces.IEmailSender
	repo       interfaces.INotificationRepository
	metrics    interfaces.IMetrics
	templateID int64
	policy     RetryPolicy
	log        *zap.Logger

	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

var _ INotificationUseCase = (*NotificationUseCase)(nil)

func NewNotificationUseCase(
	sender interfaces.IEmailSender,
	repo interfaces.INotificationRepository,
	metrics interfaces.IMetrics,
	templateID int64,
	policy RetryPolicy,
	log *zap.Logger,
) *NotificationUseCase {
	def := DefaultRetryPolicy()
	if policy.MaxAttempts <= 0 {
		policy.MaxAttempts = def.MaxAttempts
	}
	if policy.BackoffBase <= 0 {
		policy.BackoffBase = def.BackoffBase
	}
	if policy.AttemptTimeout <= 0 {
		policy.AttemptTimeout = def.AttemptTimeout
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &NotificationUseCase{
		sender:     sender,
		repo:       repo,
		metrics:    metrics,
		templateID: templateID,
		policy:     policy,
		log:        log,
		now:        func() time.Time { return time.Now().UTC() },
		sleep:      sleepContext,
	}
}

func (u *NotificationUseCase) SendMembershipConfirmation(ctx context.Context, customer entities.ResolvedCustomer, ref NotificationRef) (entities.Notification, error) {
	customer.Email = strings.TrimSpace(customer.Email)
	if customer.Email == "" {
		return entities.Notification{}, ErrInvalidRecipient
	}
	if customer.Name == "" {
		customer.Name = DefaultMemberName
	}

	email := entities.TransactionalEmail{
		RecipientEmail: customer.Email,
		RecipientName:  customer.Name,
		TemplateID:     u.templateID,
		Params:         entities.NewConfirmationParams(customer, u.now()),
	}

	n := entities.Notification{
		ID:        uuid.NewString(),
		EventID:   ref.EventID,
		SessionID: ref.SessionID,
		Recipient: customer.Email,
		Name:      customer.Name,
		Tier:      customer.Tier,
		CreatedAt: u.now(),
	}

	result, sendErr := u.sendWithRetry(ctx, email)
	n.Attempts = result.Attempts
	if sendErr != nil {
		n.Status = entities.NotificationStatusFailed
		n.Error = sendErr.Error()
	} else {
		n.Status = entities.NotificationStatusSent
		n.ProviderMessageID = result.MessageID
	}
	if u.metrics != nil {
		u.metrics.RecordNotification(string(n.Status), n.Attempts)
	}

	u.persist(ctx, n)

	if sendErr != nil {
		u.log.Error("[notification][usecase] confirmation not delivered",
			zap.String("event_id", ref.EventID),
			zap.String("session_id", ref.SessionID),
			zap.Int("attempts", n.Attempts),
			zap.Error(sendErr),
		)
		return n, fmt.Errorf("%w: %w", ErrNotificationFailed, sendErr)
	}

	u.log.Info("[notification][usecase] confirmation delivered",
		zap.String("event_id", ref.EventID),
		zap.String("session_id", ref.SessionID),
		zap.String("message_id", n.ProviderMessageID),
		zap.Int("attempts", n.Attempts),
	)
	return n, nil
}

// SendTest delivers the confirmation template to an arbitrary address.
func (u *NotificationUseCase) SendTest(ctx context.Context, customer entities.ResolvedCustomer) (entities.Notification, error) {
	customer.Email = strings.TrimSpace(customer.Email)
	if customer.Email == "" || !isValidEmail(customer.Email) {
		return entities.Notification{}, ErrInvalidRecipient
	}
	if _, known := entities.ParseMembershipTier(string(customer.Tier)); !known {
		customer.Tier = entities.MembershipTierDigital
	}
	return u.SendMembershipConfirmation(ctx, customer, NotificationRef{EventID: "test"})
}

func (u *NotificationUseCase) ListByRecipient(ctx context.Context, email string) ([]entities.Notification, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, ErrInvalidRecipient
	}
	if u.repo == nil {
		return nil, ErrNotificationLogDown
	}
	return u.repo.ListByRecipient(ctx, email)
}

// sendWithRetry makes at most policy.MaxAttempts calls to the provider.
// A permanent rejection or a cancelled parent context ends the loop early.
func (u *NotificationUseCase) sendWithRetry(ctx context.Context, email entities.TransactionalEmail) (entities.SendResult, error) {
	if u.sender == nil {
		return entities.SendResult{}, errors.New("email sender not configured")
	}

	var lastErr error
	for attempt := 1; attempt <= u.policy.MaxAttempts; attempt++ {
		attemptCtx, cancel := context.WithTimeout(ctx, u.policy.AttemptTimeout)
		started := time.Now()
		messageID, err := u.sender.Send(attemptCtx, email)
		cancel()

		if err == nil {
			u.recordAttempt("success", started)
			return entities.SendResult{MessageID: messageID, Attempts: attempt, SentAt: u.now()}, nil
		}
		lastErr = err

		if errors.Is(err, interfaces.ErrPermanentDelivery) {
			u.recordAttempt("permanent_error", started)
			u.log.Warn("[notification][usecase] permanent provider error",
				zap.Int("attempt", attempt),
				zap.Error(err),
			)
			return entities.SendResult{Attempts: attempt}, err
		}
		u.recordAttempt("transient_error", started)
		u.log.Warn("[notification][usecase] attempt failed",
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", u.policy.MaxAttempts),
			zap.Error(err),
		)

		if attempt == u.policy.MaxAttempts {
			return entities.SendResult{Attempts: attempt}, lastErr
		}
		if err := u.sleep(ctx, u.policy.Backoff(attempt)); err != nil {
			return entities.SendResult{Attempts: attempt}, fmt.Errorf("%w (last error: %v)", err, lastErr)
		}
	}
	return entities.SendResult{Attempts: u.policy.MaxAttempts}, lastErr
}

func (u *NotificationUseCase) persist(ctx context.Context, n entities.Notification) {
	if u.repo == nil {
		return
	}
	// Written even when the request context expired during retries.
	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if _, err := u.repo.Create(writeCtx, n); err != nil {
		u.log.Warn("[notification][usecase] notification log write failed",
			zap.String("notification_id", n.ID),
			zap.Error(err),
		)
	}
}

func (u *NotificationUseCase) recordAttempt(outcome string, started time.Time) {
	if u.metrics != nil {
		u.metrics.RecordEmailAttempt(outcome, time.Since(started))
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
