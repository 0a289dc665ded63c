package payment

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/webhook"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estately/estately/internal/domain/subscription"
	vo "github.com/estately/estately/internal/domain/subscription/valueobjects"
	"github.com/estately/estately/internal/shared/errors"
	sharedConfig "github.com/estately/estately/internal/shared/config"
	"github.com/estately/estately/internal/shared/logger"
)

const testSecret = "whsec_test"

const updatedEvent = `{
  "id": "evt_1",
  "object": "event",
  "api_version": "2024-06-20",
  "type": "customer.subscription.updated",
  "data": {
    "object": {
      "id": "sub_1",
      "object": "subscription",
      "customer": "cus_1",
      "status": "past_due",
      "current_period_start": 1700000000,
      "current_period_end": 1702592000,
      "items": {
        "object": "list",
        "data": [{"id": "si_1", "object": "subscription_item", "price": {"id": "price_plus", "object": "price"}}]
      }
    }
  }
}`

func newGateway(t *testing.T, backends *stripe.Backends) *StripeGateway {
	t.Helper()
	cfg := sharedConfig.StripeConfig{
		SecretKey:     "sk_test_123",
		WebhookSecret: testSecret,
		SuccessURL:    "https://app.estately.test/billing/success",
		CancelURL:     "https://app.estately.test/billing/cancel",
	}
	return NewStripeGatewayWithBackends(cfg, backends, logger.NewNopLogger())
}

func sign(payload string) *webhook.SignedPayload {
	return webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   []byte(payload),
		Secret:    testSecret,
		Timestamp: time.Now(),
	})
}

func TestParseWebhook_SubscriptionUpdated(t *testing.T) {
	g := newGateway(t, nil)
	signed := sign(updatedEvent)

	event, err := g.ParseWebhook(signed.Payload, signed.Header)
	require.NoError(t, err)

	assert.Equal(t, subscription.EventSubscriptionUpdated, event.Type)
	assert.Equal(t, "cus_1", event.CustomerID)
	assert.Equal(t, "sub_1", event.State.SubscriptionID)
	assert.Equal(t, "si_1", event.State.ItemID)
	assert.Equal(t, "price_plus", event.State.PriceID)
	assert.Equal(t, vo.StatusPastDue, event.State.Status)
	assert.Equal(t, int64(1702592000), event.State.EndAt.Unix())
}

func TestParseWebhook_BadSignature(t *testing.T) {
	g := newGateway(t, nil)
	signed := sign(updatedEvent)

	_, err := g.ParseWebhook(signed.Payload, "t=1,v1=deadbeef")
	require.Error(t, err)
	assert.True(t, errors.IsBadRequestError(err))

	tampered := append([]byte{}, signed.Payload...)
	tampered[len(tampered)-2] = ' '
	_, err = g.ParseWebhook(tampered, signed.Header)
	assert.True(t, errors.IsBadRequestError(err))
}

func TestParseWebhook_OtherEventType(t *testing.T) {
	g := newGateway(t, nil)
	signed := sign(`{"id":"evt_2","object":"event","type":"invoice.paid","data":{"object":{"id":"in_1","object":"invoice"}}}`)

	event, err := g.ParseWebhook(signed.Payload, signed.Header)
	require.NoError(t, err)
	assert.Equal(t, subscription.EventType("invoice.paid"), event.Type)
	assert.Empty(t, event.CustomerID)
}

func TestCreateCustomer(t *testing.T) {
	var form url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		form, _ = url.ParseQuery(string(body))
		assert.Equal(t, "/v1/customers", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"cus_new","object":"customer"}`))
	}))
	defer srv.Close()

	backend := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		URL:               stripe.String(srv.URL),
		MaxNetworkRetries: stripe.Int64(0),
	})
	g := newGateway(t, &stripe.Backends{API: backend, Connect: backend, Uploads: backend})

	id, err := g.CreateCustomer(context.Background(), "jane@example.com", "Jane", 7)
	require.NoError(t, err)
	assert.Equal(t, "cus_new", id)
	assert.Equal(t, "jane@example.com", form.Get("email"))
	assert.Equal(t, "7", form.Get("metadata[user_id]"))
}

func TestCreateCustomer_ProcessorError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusPaymentRequired)
		_, _ = w.Write([]byte(`{"error":{"type":"card_error","message":"declined"}}`))
	}))
	defer srv.Close()

	backend := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		URL:               stripe.String(srv.URL),
		MaxNetworkRetries: stripe.Int64(0),
	})
	g := newGateway(t, &stripe.Backends{API: backend, Connect: backend, Uploads: backend})

	_, err := g.CreateCustomer(context.Background(), "jane@example.com", "Jane", 7)
	assert.Error(t, err)
}
