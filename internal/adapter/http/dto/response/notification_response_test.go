package response

import (
	"testing"
	"time"

	"andar_membership/internal/domain/entities"
)

func TestFromNotifications(t *testing.T) {
	now := time.Now().UTC()
	list := []entities.Notification{
		{ID: "n-1", Recipient: "a@x.com", Tier: entities.MembershipTierClassic, Status: entities.NotificationStatusSent, Attempts: 1, ProviderMessageID: "<m@brevo>", CreatedAt: now},
		{ID: "n-2", Recipient: "a@x.com", Tier: entities.MembershipTierDigital, Status: entities.NotificationStatusFailed, Attempts: 3, Error: "brevo: status 500", CreatedAt: now},
	}

	res := FromNotifications(list)
	if len(res) != 2 {
		t.Fatalf("expected 2 items, got %d", len(res))
	}
	if res[0].MembershipType != "classic" || res[0].Status != "sent" || res[0].ProviderMessageID != "<m@brevo>" {
		t.Fatalf("unexpected first item: %+v", res[0])
	}
	if res[1].Attempts != 3 || res[1].Error == "" || !res[1].CreatedAt.Equal(now) {
		t.Fatalf("unexpected second item: %+v", res[1])
	}

	if got := FromNotifications(nil); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestFromCheckoutSession(t *testing.T) {
	res := FromCheckoutSession(entities.CheckoutSession{ID: "cs_1", URL: "https://checkout.stripe.com/c/cs_1", Tier: entities.MembershipTierDigital})
	if res.ID != "cs_1" || res.URL != "https://checkout.stripe.com/c/cs_1" {
		t.Fatalf("unexpected response: %+v", res)
	}
}
