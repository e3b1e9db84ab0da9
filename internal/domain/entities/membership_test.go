package entities

import (
	"testing"
	"time"
)

func TestParseMembershipTier(t *testing.T) {
	cases := []struct {
		raw  string
		want MembershipTier
		ok   bool
	}{
		{"digital", MembershipTierDigital, true},
		{" Classic ", MembershipTierClassic, true},
		{"premium", MembershipTierPremium, true},
		{"gold", MembershipTierUnknown, false},
		{"", MembershipTierUnknown, false},
	}
	for _, tc := range cases {
		got, ok := ParseMembershipTier(tc.raw)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("ParseMembershipTier(%q) = %s,%v want %s,%v", tc.raw, got, ok, tc.want, tc.ok)
		}
	}
}

func TestMembershipTier_Pricing(t *testing.T) {
	if MembershipTierDigital.PriceCents() != 500 || MembershipTierClassic.PriceCents() != 3200 {
		t.Fatalf("unexpected purchasable prices")
	}
	if MembershipTierPremium.IsPurchasable() || MembershipTierPremium.PriceCents() != 0 {
		t.Fatalf("premium must not be purchasable")
	}
	if MembershipTier("gold").Details().Name != "Adhésion ANDAR" {
		t.Fatalf("unknown tiers must fall back to the generic details")
	}
}

func TestNewConfirmationParams(t *testing.T) {
	at := time.Date(2026, time.March, 4, 10, 0, 0, 0, time.UTC)
	p := NewConfirmationParams(ResolvedCustomer{Email: "a@x.com", Name: "Alice", Tier: MembershipTierDigital}, at)

	if p.Date != "04/03/2026" {
		t.Fatalf("unexpected date %q", p.Date)
	}
	if p.MembershipType != "digital" || p.MembershipDetails.Price != "5€" || p.MembershipDetails.Duration != "1 an" {
		t.Fatalf("unexpected params %+v", p)
	}
}
