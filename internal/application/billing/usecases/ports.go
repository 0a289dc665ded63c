package usecases

import (
	"context"

	"github.com/estately/estately/internal/domain/subscription"
	vo "github.com/estately/estately/internal/domain/subscription/valueobjects"
)

// PaymentGateway is the payment processor as seen by billing.
type PaymentGateway interface {
	CreateCustomer(ctx context.Context, email, name string, userID uint) (string, error)
	CreateCheckoutSession(ctx context.Context, customerID, priceID string, userID uint) (string, error)
	CreatePortalSession(ctx context.Context, customerID string) (string, error)
	UpdateSubscriptionItemPrice(ctx context.Context, itemID, priceID string) error
	CreateProductPrice(ctx context.Context, name string, amount int64, currency string, interval vo.BillingInterval) (productID string, priceID string, err error)
	ParseWebhook(payload []byte, signature string) (*subscription.ProcessorEvent, error)
}

// StoreStatusSyncer recomputes the status of a user's store from their
// current subscription.
type StoreStatusSyncer interface {
	SyncForUser(ctx context.Context, userID uint) error
}
