package payments

import (
	"andar_membership/internal/domain/entities"
	"andar_membership/internal/usecase/interfaces"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/client"
	"go.uber.org/zap"
)

var ErrMissingStripeSecretKey = errors.New("missing STRIPE_SECRET_KEY")

// StripeGateway creates hosted checkout sessions and reads customers through the Stripe API.
type StripeGateway struct {
	api      *client.API
	mockMode bool
	log      *zap.Logger
}

var _ interfaces.IPaymentGateway = (*StripeGateway)(nil)

type StripeGatewayOptions struct {
	SecretKey string
	MockMode  bool
	// BaseURL overrides https://api.stripe.com (stripe-mock, tests).
	BaseURL string
}

func NewStripeGateway(opts StripeGatewayOptions, log *zap.Logger) (*StripeGateway, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.MockMode {
		log.Info("[payment][gateway] mock mode enabled")
		return &StripeGateway{mockMode: true, log: log}, nil
	}
	if strings.TrimSpace(opts.SecretKey) == "" {
		log.Warn("[payment][gateway] missing stripe secret key")
		return nil, ErrMissingStripeSecretKey
	}

	var backends *stripe.Backends
	if opts.BaseURL != "" {
		cfg := &stripe.BackendConfig{
			URL:               stripe.String(strings.TrimRight(opts.BaseURL, "/")),
			MaxNetworkRetries: stripe.Int64(0),
		}
		backends = &stripe.Backends{
			API:     stripe.GetBackendWithConfig(stripe.APIBackend, cfg),
			Connect: stripe.GetBackendWithConfig(stripe.ConnectBackend, cfg),
			Uploads: stripe.GetBackendWithConfig(stripe.UploadsBackend, cfg),
		}
	}

	api := &client.API{}
	api.Init(opts.SecretKey, backends)
	log.Info("[payment][gateway] Stripe client initialized", zap.Bool("live", strings.HasPrefix(opts.SecretKey, "sk_live_")))

	return &StripeGateway{api: api, log: log}, nil
}

func (g *StripeGateway) CreateCheckoutSession(ctx context.Context, in interfaces.CheckoutSessionInput) (entities.CheckoutSession, error) {
	if g != nil && g.mockMode {
		id := fmt.Sprintf("cs_mock_%d", time.Now().UTC().UnixNano())
		url := strings.ReplaceAll(in.SuccessURL, "{CHECKOUT_SESSION_ID}", id)
		g.log.Info("[payment][gateway] mock session created", zap.String("session_id", id))
		return entities.CheckoutSession{ID: id, URL: url, Tier: in.Tier, Metadata: in.Metadata}, nil
	}
	if g == nil || g.api == nil {
		return entities.CheckoutSession{}, interfaces.ErrPaymentGatewayNotConfigured
	}

	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(entities.MembershipCurrency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(in.Tier.ProductName()),
					},
					UnitAmount: stripe.Int64(in.Tier.PriceCents()),
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(in.SuccessURL),
		CancelURL:  stripe.String(in.CancelURL),
	}
	if in.CustomerEmail != "" {
		params.CustomerEmail = stripe.String(in.CustomerEmail)
	}
	if in.RequireBillingAddress {
		params.BillingAddressCollection = stripe.String(string(stripe.CheckoutSessionBillingAddressCollectionRequired))
	}
	for k, v := range in.Metadata {
		params.AddMetadata(k, v)
	}
	params.Context = ctx

	s, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		g.log.Error("[payment][gateway] create session failed", zap.String("tier", string(in.Tier)), zap.Error(err))
		return entities.CheckoutSession{}, err
	}
	g.log.Info("[payment][gateway] session created", zap.String("session_id", s.ID), zap.String("tier", string(in.Tier)))

	return entities.CheckoutSession{ID: s.ID, URL: s.URL, Tier: in.Tier, Metadata: s.Metadata}, nil
}

func (g *StripeGateway) LookupCustomerEmail(ctx context.Context, customerID string) (string, error) {
	if g != nil && g.mockMode {
		return "", nil
	}
	if g == nil || g.api == nil {
		return "", interfaces.ErrPaymentGatewayNotConfigured
	}

	params := &stripe.CustomerParams{}
	params.Context = ctx
	c, err := g.api.Customers.Get(customerID, params)
	if err != nil {
		return "", err
	}
	if c.Deleted {
		return "", nil
	}
	return c.Email, nil
}
