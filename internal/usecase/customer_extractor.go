package usecase

import (
	"andar_membership/internal/domain/entities"
	"andar_membership/internal/usecase/interfaces"
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
)

var ErrNoEmailFound = errors.New("no email found for checkout session")

// DefaultMemberName is used when the session carries no usable name.
const DefaultMemberName = "Adhérent"

// ICustomerExtractor turns a completed checkout session into an email recipient.
type ICustomerExtractor interface {
	Extract(ctx context.Context, session entities.SessionSnapshot) (entities.ResolvedCustomer, error)
}

type CustomerExtractor struct {
	gateway interfaces.IPaymentGateway
	log     *zap.Logger
}

var _ ICustomerExtractor = (*CustomerExtractor)(nil)

func NewCustomerExtractor(gateway interfaces.IPaymentGateway, log *zap.Logger) *CustomerExtractor {
	if log == nil {
		log = zap.NewNop()
	}
	return &CustomerExtractor{gateway: gateway, log: log}
}

type emailSource struct {
	name string
	get  func(s entities.SessionSnapshot) string
}

// Order matters: the first non-empty value wins.
var emailSources = []emailSource{
	{"customer_details.email", func(s entities.SessionSnapshot) string { return s.CustomerDetailsEmail }},
	{"customer_email", func(s entities.SessionSnapshot) string { return s.CustomerEmail }},
	{"customer.email", func(s entities.SessionSnapshot) string { return s.CustomerObjectEmail }},
	{"payment_intent.receipt_email", func(s entities.SessionSnapshot) string { return s.PaymentIntentReceiptEmail }},
	{"metadata.email", func(s entities.SessionSnapshot) string { return s.Metadata["email"] }},
}

func (e *CustomerExtractor) Extract(ctx context.Context, session entities.SessionSnapshot) (entities.ResolvedCustomer, error) {
	email, err := e.ResolveEmail(ctx, session)
	if err != nil {
		return entities.ResolvedCustomer{}, err
	}
	return entities.ResolvedCustomer{
		Email: email,
		Name:  ResolveName(session),
		Tier:  e.ClassifyTier(session),
	}, nil
}

// ResolveEmail walks the session fields and, as a last resort, asks the
// processor for the customer record. The lookup happens at most once.
func (e *CustomerExtractor) ResolveEmail(ctx context.Context, session entities.SessionSnapshot) (string, error) {
	for _, src := range emailSources {
		if v := strings.TrimSpace(src.get(session)); v != "" {
			e.log.Debug("[extractor] email resolved",
				zap.String("session_id", session.ID),
				zap.String("source", src.name),
			)
			return v, nil
		}
	}

	customerID := strings.TrimSpace(session.CustomerID)
	if customerID == "" || e.gateway == nil {
		e.log.Warn("[extractor] no email on session and no customer to look up", zap.String("session_id", session.ID))
		return "", ErrNoEmailFound
	}

	email, err := e.gateway.LookupCustomerEmail(ctx, customerID)
	if err != nil {
		e.log.Warn("[extractor] customer lookup failed",
			zap.String("session_id", session.ID),
			zap.String("customer_id", customerID),
			zap.Error(err),
		)
		return "", ErrNoEmailFound
	}
	email = strings.TrimSpace(email)
	if email == "" {
		e.log.Warn("[extractor] customer has no email",
			zap.String("session_id", session.ID),
			zap.String("customer_id", customerID),
		)
		return "", ErrNoEmailFound
	}

	e.log.Debug("[extractor] email resolved",
		zap.String("session_id", session.ID),
		zap.String("source", "customer_lookup"),
	)
	return email, nil
}

func ResolveName(session entities.SessionSnapshot) string {
	if v := strings.TrimSpace(session.CustomerDetailsName); v != "" {
		return v
	}
	if v := strings.TrimSpace(session.Metadata["name"]); v != "" {
		return v
	}
	return DefaultMemberName
}

// ClassifyTier prefers the tier recorded in metadata at checkout. Sessions
// created before metadata existed are classified by amount.
func (e *CustomerExtractor) ClassifyTier(session entities.SessionSnapshot) entities.MembershipTier {
	if raw, ok := session.Metadata["membershipType"]; ok && strings.TrimSpace(raw) != "" {
		tier, known := entities.ParseMembershipTier(raw)
		if !known {
			e.log.Warn("[extractor] unrecognised membership type in metadata",
				zap.String("session_id", session.ID),
				zap.String("membership_type", raw),
			)
		}
		return tier
	}

	tier := tierFromAmount(session.AmountTotal)
	e.log.Info("[extractor] membership type inferred from amount",
		zap.String("session_id", session.ID),
		zap.Int64("amount_total", session.AmountTotal),
		zap.String("tier", string(tier)),
	)
	return tier
}

func tierFromAmount(amount int64) entities.MembershipTier {
	switch {
	case amount == entities.DigitalPriceCents:
		return entities.MembershipTierDigital
	case amount == entities.ClassicPriceCents:
		return entities.MembershipTierClassic
	case amount >= entities.PremiumPriceCents:
		return entities.MembershipTierPremium
	default:
		return entities.MembershipTierDigital
	}
}
