package entities

import "strings"

// MembershipTier is the membership product bought on the website.
//
// Only digital and classic can be purchased. premium and unknown exist so that
// confirmation emails can still be rendered for legacy or unrecognised payments.
type MembershipTier string

const (
	MembershipTierDigital MembershipTier = "digital"
	MembershipTierClassic MembershipTier = "classic"
	MembershipTierPremium MembershipTier = "premium"
	MembershipTierUnknown MembershipTier = "unknown"
)

// Prices in euro cents.
const (
	DigitalPriceCents int64 = 500
	ClassicPriceCents int64 = 3200
	PremiumPriceCents int64 = 5000
)

const MembershipCurrency = "eur"

func (t MembershipTier) IsPurchasable() bool {
	return t == MembershipTierDigital || t == MembershipTierClassic
}

// ParseMembershipTier normalises a tier label. ok is false for anything outside
// the known tiers.
func ParseMembershipTier(raw string) (MembershipTier, bool) {
	switch MembershipTier(strings.ToLower(strings.TrimSpace(raw))) {
	case MembershipTierDigital:
		return MembershipTierDigital, true
	case MembershipTierClassic:
		return MembershipTierClassic, true
	case MembershipTierPremium:
		return MembershipTierPremium, true
	case MembershipTierUnknown:
		return MembershipTierUnknown, true
	}
	return MembershipTierUnknown, false
}

// PriceCents returns the checkout amount; zero for tiers that cannot be bought.
func (t MembershipTier) PriceCents() int64 {
	switch t {
	case MembershipTierDigital:
		return DigitalPriceCents
	case MembershipTierClassic:
		return ClassicPriceCents
	}
	return 0
}

// TierDetails is the human-readable description injected into the email template.
type TierDetails struct {
	Name        string `json:"name"`
	Price       string `json:"price"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
}

var tierDetails = map[MembershipTier]TierDetails{
	MembershipTierDigital: {
		Name:        "Adhésion Numérique",
		Price:       "5€",
		Description: "Accès à tous les services numériques ANDAR",
		Duration:    "1 an",
	},
	MembershipTierClassic: {
		Name:        "Adhésion Classique",
		Price:       "32€",
		Description: "Adhésion complète à ANDAR avec tous les avantages",
		Duration:    "1 an",
	},
	MembershipTierPremium: {
		Name:        "Adhésion Premium",
		Price:       "50€",
		Description: "Adhésion premium à ANDAR avec tous les avantages",
		Duration:    "1 an",
	},
	MembershipTierUnknown: {
		Name:        "Adhésion ANDAR",
		Price:       "Variable",
		Description: "Merci pour votre adhésion à ANDAR",
		Duration:    "1 an",
	},
}

// Details never fails: tiers outside the table get the generic entry.
func (t MembershipTier) Details() TierDetails {
	if d, ok := tierDetails[t]; ok {
		return d
	}
	return tierDetails[MembershipTierUnknown]
}

// ProductName is the line item label shown on the hosted checkout page.
func (t MembershipTier) ProductName() string {
	return t.Details().Name
}

// CheckoutRequest is the validated input of the checkout session initiator.
type CheckoutRequest struct {
	Tier  MembershipTier
	Email string
	Name  string

	// Only for payment links; sessions derive both URLs from the caller origin.
	SuccessURL string
	CancelURL  string
}

// CheckoutSession is the processor-hosted session returned to the browser.
// It is never persisted.
type CheckoutSession struct {
	ID       string            `json:"id"`
	URL      string            `json:"url"`
	Tier     MembershipTier    `json:"tier"`
	Metadata map[string]string `json:"metadata,omitempty"`
}
