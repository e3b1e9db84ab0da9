package interfaces

import (
	"andar_membership/internal/domain/entities"
	"context"
	"errors"
)

// ErrPaymentGatewayNotConfigured is returned when no processor credentials were provided.
var ErrPaymentGatewayNotConfigured = errors.New("payment gateway not configured")

// CheckoutSessionInput is everything the processor needs to host a checkout page.
type CheckoutSessionInput struct {
	Tier                  entities.MembershipTier
	CustomerEmail         string
	SuccessURL            string
	CancelURL             string
	Metadata              map[string]string
	RequireBillingAddress bool
}

// IPaymentGateway abstracts the payment processor (Stripe).
//
// It creates hosted checkout sessions and resolves customer records the
// webhook payload only references by id.
type IPaymentGateway interface {
	CreateCheckoutSession(ctx context.Context, in CheckoutSessionInput) (entities.CheckoutSession, error)
	// LookupCustomerEmail returns "" with a nil error for deleted or emailless customers.
	LookupCustomerEmail(ctx context.Context, customerID string) (string, error)
}
