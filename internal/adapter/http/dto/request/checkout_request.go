package request

import (
	"andar_membership/internal/domain/entities"
	"strings"
)

// CheckoutSessionRequest is the body sent by the membership page.
type CheckoutSessionRequest struct {
	MembershipType string `json:"membershipType" binding:"required"`
	Email          string `json:"email"`
	Name           string `json:"name"`
}

func (r CheckoutSessionRequest) ToDomain() entities.CheckoutRequest {
	return entities.CheckoutRequest{
		Tier:  normalizeTier(r.MembershipType),
		Email: strings.TrimSpace(r.Email),
		Name:  strings.TrimSpace(r.Name),
	}
}

// PaymentLinkRequest lets the caller choose where Stripe redirects afterwards.
type PaymentLinkRequest struct {
	MembershipType string `json:"membershipType" binding:"required"`
	SuccessURL     string `json:"successUrl"`
	CancelURL      string `json:"cancelUrl"`
	CustomerEmail  string `json:"customerEmail"`
	CustomerName   string `json:"customerName"`
}

func (r PaymentLinkRequest) ToDomain() entities.CheckoutRequest {
	return entities.CheckoutRequest{
		Tier:       normalizeTier(r.MembershipType),
		Email:      strings.TrimSpace(r.CustomerEmail),
		Name:       strings.TrimSpace(r.CustomerName),
		SuccessURL: strings.TrimSpace(r.SuccessURL),
		CancelURL:  strings.TrimSpace(r.CancelURL),
	}
}

func normalizeTier(raw string) entities.MembershipTier {
	return entities.MembershipTier(strings.ToLower(strings.TrimSpace(raw)))
}
