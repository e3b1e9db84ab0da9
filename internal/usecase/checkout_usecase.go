package usecase

import (
	"andar_membership/internal/domain/entities"
	"andar_membership/internal/usecase/interfaces"
	"context"
	"errors"
	"fmt"
	"net/mail"
	"net/url"
	"strings"

	"go.uber.org/zap"
)

var (
	ErrInvalidMembershipType = errors.New("invalid membership type")
	ErrMissingEmail          = errors.New("email is required")
	ErrInvalidEmail          = errors.New("invalid email")
	ErrInvalidRedirectURL    = errors.New("success and cancel urls are required")
	ErrPaymentProvider       = errors.New("payment provider error")
)

const (
	metadataMembershipType = "membershipType"
	metadataName           = "name"
	metadataSource         = "source"
	metadataEnvironment    = "environment"

	paymentLinkSource = "andar_website"
)

// ICheckoutUseCase starts a hosted checkout for one of the purchasable tiers.
type ICheckoutUseCase interface {
	// CreateCheckoutSession builds redirect URLs from the caller origin.
	CreateCheckoutSession(ctx context.Context, req entities.CheckoutRequest, origin string) (entities.CheckoutSession, error)
	// CreatePaymentLink uses caller-provided redirect URLs; email is optional.
	CreatePaymentLink(ctx context.Context, req entities.CheckoutRequest) (entities.CheckoutSession, error)
}

type CheckoutUseCase struct {
	gateway    interfaces.IPaymentGateway
	metrics    interfaces.IMetrics
	siteURL    string
	production bool
	log        *zap.Logger
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(gateway interfaces.IPaymentGateway, metrics interfaces.IMetrics, siteURL string, production bool, log *zap.Logger) *CheckoutUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &CheckoutUseCase{
		gateway:    gateway,
		metrics:    metrics,
		siteURL:    strings.TrimRight(siteURL, "/"),
		production: production,
		log:        log,
	}
}

func (u *CheckoutUseCase) CreateCheckoutSession(ctx context.Context, req entities.CheckoutRequest, origin string) (entities.CheckoutSession, error) {
	req.Email = strings.TrimSpace(req.Email)
	req.Name = strings.TrimSpace(req.Name)
	if !req.Tier.IsPurchasable() {
		u.log.Info("[checkout][usecase] invalid membership type", zap.String("tier", string(req.Tier)))
		u.record(req.Tier, "invalid")
		return entities.CheckoutSession{}, ErrInvalidMembershipType
	}
	if req.Email == "" {
		u.record(req.Tier, "invalid")
		return entities.CheckoutSession{}, ErrMissingEmail
	}
	if !isValidEmail(req.Email) {
		u.record(req.Tier, "invalid")
		return entities.CheckoutSession{}, ErrInvalidEmail
	}

	base := u.resolveOrigin(origin)
	in := interfaces.CheckoutSessionInput{
		Tier:          req.Tier,
		CustomerEmail: req.Email,
		SuccessURL:    fmt.Sprintf("%s/merci-adhesion?type=%s&session_id={CHECKOUT_SESSION_ID}", base, req.Tier),
		CancelURL:     base + "/",
		Metadata: map[string]string{
			metadataMembershipType: string(req.Tier),
			metadataName:           req.Name,
		},
	}
	return u.create(ctx, in)
}

func (u *CheckoutUseCase) CreatePaymentLink(ctx context.Context, req entities.CheckoutRequest) (entities.CheckoutSession, error) {
	req.Email = strings.TrimSpace(req.Email)
	req.Name = strings.TrimSpace(req.Name)
	if !req.Tier.IsPurchasable() {
		u.record(req.Tier, "invalid")
		return entities.CheckoutSession{}, ErrInvalidMembershipType
	}
	if !isAbsoluteURL(req.SuccessURL) || !isAbsoluteURL(req.CancelURL) {
		u.record(req.Tier, "invalid")
		return entities.CheckoutSession{}, ErrInvalidRedirectURL
	}
	if req.Email != "" && !isValidEmail(req.Email) {
		u.record(req.Tier, "invalid")
		return entities.CheckoutSession{}, ErrInvalidEmail
	}

	env := "test"
	if u.production {
		env = "production"
	}
	metadata := map[string]string{
		metadataMembershipType: string(req.Tier),
		metadataSource:         paymentLinkSource,
		metadataEnvironment:    env,
	}
	if req.Name != "" {
		metadata[metadataName] = req.Name
	}

	in := interfaces.CheckoutSessionInput{
		Tier:                  req.Tier,
		CustomerEmail:         req.Email,
		SuccessURL:            strings.TrimSpace(req.SuccessURL),
		CancelURL:             strings.TrimSpace(req.CancelURL),
		Metadata:              metadata,
		RequireBillingAddress: true,
	}
	return u.create(ctx, in)
}

func (u *CheckoutUseCase) create(ctx context.Context, in interfaces.CheckoutSessionInput) (entities.CheckoutSession, error) {
	if u.gateway == nil {
		u.log.Error("[checkout][usecase] gateway not configured")
		u.record(in.Tier, "error")
		return entities.CheckoutSession{}, fmt.Errorf("%w: %w", ErrPaymentProvider, interfaces.ErrPaymentGatewayNotConfigured)
	}

	session, err := u.gateway.CreateCheckoutSession(ctx, in)
	if err != nil {
		u.log.Error("[checkout][usecase] create session failed", zap.String("tier", string(in.Tier)), zap.Error(err))
		u.record(in.Tier, "error")
		return entities.CheckoutSession{}, fmt.Errorf("%w: %w", ErrPaymentProvider, err)
	}
	if session.Tier == "" {
		session.Tier = in.Tier
	}

	u.log.Info("[checkout][usecase] session created",
		zap.String("session_id", session.ID),
		zap.String("tier", string(in.Tier)),
	)
	u.record(in.Tier, "created")
	return session, nil
}

func (u *CheckoutUseCase) resolveOrigin(origin string) string {
	origin = strings.TrimRight(strings.TrimSpace(origin), "/")
	if isAbsoluteURL(origin) {
		return origin
	}
	return u.siteURL
}

func (u *CheckoutUseCase) record(tier entities.MembershipTier, outcome string) {
	if u.metrics != nil {
		u.metrics.RecordCheckoutSession(string(tier), outcome)
	}
}

func isValidEmail(v string) bool {
	addr, err := mail.ParseAddress(v)
	return err == nil && addr.Address == v
}

func isAbsoluteURL(v string) bool {
	parsed, err := url.Parse(strings.TrimSpace(v))
	if err != nil {
		return false
	}
	return (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}
