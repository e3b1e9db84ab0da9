package payments

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"andar_membership/internal/domain/entities"
	"andar_membership/internal/usecase/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStripeTestServer(t *testing.T, handler http.HandlerFunc) *StripeGateway {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	g, err := NewStripeGateway(StripeGatewayOptions{SecretKey: "sk_test_123", BaseURL: srv.URL}, nil)
	require.NoError(t, err)
	return g
}

func TestNewStripeGateway(t *testing.T) {
	_, err := NewStripeGateway(StripeGatewayOptions{}, nil)
	require.ErrorIs(t, err, ErrMissingStripeSecretKey)

	g, err := NewStripeGateway(StripeGatewayOptions{MockMode: true}, nil)
	require.NoError(t, err)
	assert.True(t, g.mockMode)
}

func TestStripeGateway_CreateCheckoutSession(t *testing.T) {
	g := newStripeTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/checkout/sessions", r.URL.Path)
		assert.Equal(t, "Bearer sk_test_123", r.Header.Get("Authorization"))
		assert.NoError(t, r.ParseForm())

		assert.Equal(t, "payment", r.PostForm.Get("mode"))
		assert.Equal(t, "card", r.PostForm.Get("payment_method_types[0]"))
		assert.Equal(t, "eur", r.PostForm.Get("line_items[0][price_data][currency]"))
		assert.Equal(t, "3200", r.PostForm.Get("line_items[0][price_data][unit_amount]"))
		assert.Equal(t, "Adhésion Classique", r.PostForm.Get("line_items[0][price_data][product_data][name]"))
		assert.Equal(t, "1", r.PostForm.Get("line_items[0][quantity]"))
		assert.Equal(t, "a@x.com", r.PostForm.Get("customer_email"))
		assert.Equal(t, "classic", r.PostForm.Get("metadata[membershipType]"))
		assert.Equal(t, "required", r.PostForm.Get("billing_address_collection"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"cs_test_1","object":"checkout.session","url":"https://checkout.stripe.com/c/pay/cs_test_1","metadata":{"membershipType":"classic"}}`))
	})

	session, err := g.CreateCheckoutSession(context.Background(), interfaces.CheckoutSessionInput{
		Tier:                  entities.MembershipTierClassic,
		CustomerEmail:         "a@x.com",
		SuccessURL:            "https://andar.fr/merci-adhesion?type=classic&session_id={CHECKOUT_SESSION_ID}",
		CancelURL:             "https://andar.fr/",
		Metadata:              map[string]string{"membershipType": "classic"},
		RequireBillingAddress: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "cs_test_1", session.ID)
	assert.Equal(t, "https://checkout.stripe.com/c/pay/cs_test_1", session.URL)
	assert.Equal(t, entities.MembershipTierClassic, session.Tier)
}

func TestStripeGateway_CreateCheckoutSession_ProviderError(t *testing.T) {
	g := newStripeTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"type":"invalid_request_error","message":"Invalid email"}}`))
	})

	_, err := g.CreateCheckoutSession(context.Background(), interfaces.CheckoutSessionInput{
		Tier:       entities.MembershipTierDigital,
		SuccessURL: "https://andar.fr/ok",
		CancelURL:  "https://andar.fr/",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid email")
}

func TestStripeGateway_LookupCustomerEmail(t *testing.T) {
	g := newStripeTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch strings.TrimPrefix(r.URL.Path, "/v1/customers/") {
		case "cus_1":
			_, _ = w.Write([]byte(`{"id":"cus_1","object":"customer","email":"c@x.com"}`))
		case "cus_deleted":
			_, _ = w.Write([]byte(`{"id":"cus_deleted","object":"customer","deleted":true}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":{"type":"invalid_request_error","message":"No such customer"}}`))
		}
	})

	email, err := g.LookupCustomerEmail(context.Background(), "cus_1")
	require.NoError(t, err)
	assert.Equal(t, "c@x.com", email)

	email, err = g.LookupCustomerEmail(context.Background(), "cus_deleted")
	require.NoError(t, err)
	assert.Empty(t, email)

	_, err = g.LookupCustomerEmail(context.Background(), "cus_missing")
	require.Error(t, err)
}

func TestStripeGateway_MockMode(t *testing.T) {
	g, err := NewStripeGateway(StripeGatewayOptions{MockMode: true}, nil)
	require.NoError(t, err)

	session, err := g.CreateCheckoutSession(context.Background(), interfaces.CheckoutSessionInput{
		Tier:       entities.MembershipTierDigital,
		SuccessURL: "https://andar.fr/merci-adhesion?type=digital&session_id={CHECKOUT_SESSION_ID}",
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(session.ID, "cs_mock_"))
	assert.Equal(t, "https://andar.fr/merci-adhesion?type=digital&session_id="+session.ID, session.URL)

	email, err := g.LookupCustomerEmail(context.Background(), "cus_1")
	require.NoError(t, err)
	assert.Empty(t, email)

	var nilGateway *StripeGateway
	_, err = nilGateway.CreateCheckoutSession(context.Background(), interfaces.CheckoutSessionInput{})
	require.ErrorIs(t, err, interfaces.ErrPaymentGatewayNotConfigured)
}
