package request

import (
	"andar_membership/internal/domain/entities"
	"strings"
)

// TestNotificationRequest sends the confirmation template to an arbitrary inbox.
type TestNotificationRequest struct {
	Email          string `json:"email" binding:"required"`
	Name           string `json:"name"`
	MembershipType string `json:"membershipType"`
}

func (r TestNotificationRequest) ToDomain() entities.ResolvedCustomer {
	tier := normalizeTier(r.MembershipType)
	if tier == "" {
		tier = entities.MembershipTierDigital
	}
	return entities.ResolvedCustomer{
		Email: strings.TrimSpace(r.Email),
		Name:  strings.TrimSpace(r.Name),
		Tier:  tier,
	}
}
