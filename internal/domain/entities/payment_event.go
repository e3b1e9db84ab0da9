package entities

import "time"

const EventTypeCheckoutSessionCompleted = "checkout.session.completed"

// PaymentEvent is a verified processor notification.
type PaymentEvent struct {
	ID      string
	Type    string
	Created time.Time
	Session SessionSnapshot

	// Unverified is set when the event was accepted under the local signature bypass.
	Unverified bool
}

// SessionSnapshot keeps the checkout session fields the extractor looks at.
// Any of them may be empty.
type SessionSnapshot struct {
	ID                        string
	CustomerDetailsEmail      string
	CustomerDetailsName       string
	CustomerEmail             string
	CustomerID                string
	CustomerObjectEmail       string
	PaymentIntentReceiptEmail string
	Metadata                  map[string]string
	AmountTotal               int64
	Currency                  string
}

// ResolvedCustomer is what a confirmation email is addressed to.
type ResolvedCustomer struct {
	Email string
	Name  string
	Tier  MembershipTier
}

// TransactionalEmail is one templated message handed to the email provider.
type TransactionalEmail struct {
	RecipientEmail string
	RecipientName  string
	TemplateID     int64
	Params         ConfirmationParams
}

// ConfirmationParams are the variables of the membership confirmation template.
type ConfirmationParams struct {
	Name              string      `json:"name"`
	MembershipType    string      `json:"membershipType"`
	Date              string      `json:"date"`
	MembershipDetails TierDetails `json:"membershipDetails"`
}

const ConfirmationDateLayout = "02/01/2006"

// NewConfirmationParams renders the template variables for a customer at a given instant.
func NewConfirmationParams(customer ResolvedCustomer, at time.Time) ConfirmationParams {
	return ConfirmationParams{
		Name:              customer.Name,
		MembershipType:    string(customer.Tier),
		Date:              at.Format(ConfirmationDateLayout),
		MembershipDetails: customer.Tier.Details(),
	}
}
