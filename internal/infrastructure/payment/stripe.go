package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
	"github.com/stripe/stripe-go/v79/webhook"

	"github.com/estately/estately/internal/domain/subscription"
	vo "github.com/estately/estately/internal/domain/subscription/valueobjects"
	"github.com/estately/estately/internal/shared/biztime"
	sharedConfig "github.com/estately/estately/internal/shared/config"
	"github.com/estately/estately/internal/shared/logger"
)

// StripeGateway talks to Stripe for customers, hosted sessions, catalog
// mirroring and webhook verification.
type StripeGateway struct {
	api       *client.API
	cfg       sharedConfig.StripeConfig
	tolerance time.Duration
	logger    logger.Interface
}

func NewStripeGateway(cfg sharedConfig.StripeConfig, log logger.Interface) *StripeGateway {
	return NewStripeGatewayWithBackends(cfg, nil, log)
}

// NewStripeGatewayWithBackends lets tests point the client at a fake API.
func NewStripeGatewayWithBackends(cfg sharedConfig.StripeConfig, backends *stripe.Backends, log logger.Interface) *StripeGateway {
	tolerance := webhook.DefaultTolerance
	if cfg.WebhookToleranceS > 0 {
		tolerance = time.Duration(cfg.WebhookToleranceS) * time.Second
	}
	return &StripeGateway{
		api:       client.New(cfg.SecretKey, backends),
		cfg:       cfg,
		tolerance: tolerance,
		logger:    log,
	}
}

func (g *StripeGateway) CreateCustomer(ctx context.Context, email, name string, userID uint) (string, error) {
	params := &stripe.CustomerParams{
		Email: stripe.String(email),
		Name:  stripe.String(name),
	}
	params.Context = ctx
	params.AddMetadata("user_id", strconv.FormatUint(uint64(userID), 10))

	c, err := g.api.Customers.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create customer: %w", err)
	}
	g.logger.Infow("stripe customer created", "user_id", userID, "customer_id", c.ID)
	return c.ID, nil
}

func (g *StripeGateway) CreateCheckoutSession(ctx context.Context, customerID, priceID string, userID uint) (string, error) {
	params := &stripe.CheckoutSessionParams{
		Customer:          stripe.String(customerID),
		Mode:              stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		SuccessURL:        stripe.String(g.cfg.SuccessURL),
		CancelURL:         stripe.String(g.cfg.CancelURL),
		ClientReferenceID: stripe.String(strconv.FormatUint(uint64(userID), 10)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{Price: stripe.String(priceID), Quantity: stripe.Int64(1)},
		},
	}
	params.Context = ctx

	s, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create checkout session: %w", err)
	}
	return s.URL, nil
}

func (g *StripeGateway) CreatePortalSession(ctx context.Context, customerID string) (string, error) {
	params := &stripe.BillingPortalSessionParams{
		Customer:  stripe.String(customerID),
		ReturnURL: stripe.String(g.cfg.PortalReturnURL),
	}
	params.Context = ctx

	s, err := g.api.BillingPortalSessions.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create portal session: %w", err)
	}
	return s.URL, nil
}

func (g *StripeGateway) UpdateSubscriptionItemPrice(ctx context.Context, itemID, priceID string) error {
	params := &stripe.SubscriptionItemParams{
		Price:             stripe.String(priceID),
		ProrationBehavior: stripe.String("create_prorations"),
	}
	params.Context = ctx

	if _, err := g.api.SubscriptionItems.Update(itemID, params); err != nil {
		return fmt.Errorf("failed to update subscription item %s: %w", itemID, err)
	}
	return nil
}

// CreateProductPrice mirrors a catalog entry as a Stripe product with one
// recurring price.
func (g *StripeGateway) CreateProductPrice(ctx context.Context, name string, amount int64, currency string, interval vo.BillingInterval) (string, string, error) {
	productParams := &stripe.ProductParams{Name: stripe.String(name)}
	productParams.Context = ctx
	product, err := g.api.Products.New(productParams)
	if err != nil {
		return "", "", fmt.Errorf("failed to create product: %w", err)
	}

	priceParams := &stripe.PriceParams{
		Product:    stripe.String(product.ID),
		UnitAmount: stripe.Int64(amount),
		Currency:   stripe.String(currency),
		Recurring: &stripe.PriceRecurringParams{
			Interval: stripe.String(interval.String()),
		},
	}
	priceParams.Context = ctx
	price, err := g.api.Prices.New(priceParams)
	if err != nil {
		return "", "", fmt.Errorf("failed to create price: %w", err)
	}
	return product.ID, price.ID, nil
}

// ParseWebhook verifies the Stripe-Signature header and decodes subscription
// events. Other event types come back with only ID and Type set.
func (g *StripeGateway) ParseWebhook(payload []byte, signature string) (*subscription.ProcessorEvent, error) {
	event, err := webhook.ConstructEventWithOptions(payload, signature, g.cfg.WebhookSecret, webhook.ConstructEventOptions{
		Tolerance:                g.tolerance,
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", subscription.ErrInvalidSignature, err)
	}

	out := &subscription.ProcessorEvent{
		ID:   event.ID,
		Type: subscription.EventType(event.Type),
	}
	switch out.Type {
	case subscription.EventSubscriptionCreated, subscription.EventSubscriptionUpdated, subscription.EventSubscriptionDeleted:
	default:
		return out, nil
	}

	var sub stripe.Subscription
	if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
		return nil, fmt.Errorf("failed to decode subscription payload: %w", err)
	}
	if sub.Customer != nil {
		out.CustomerID = sub.Customer.ID
	}
	out.State = subscription.ProcessorState{
		SubscriptionID: sub.ID,
		Status:         vo.ParseStatus(string(sub.Status)),
		StartAt:        biztime.FromUnix(sub.CurrentPeriodStart),
		EndAt:          biztime.FromUnix(sub.CurrentPeriodEnd),
	}
	if sub.Items != nil && len(sub.Items.Data) > 0 {
		item := sub.Items.Data[0]
		out.State.ItemID = item.ID
		if item.Price != nil {
			out.State.PriceID = item.Price.ID
		}
	}
	return out, nil
}
