package testutil

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/estately/estately/internal/domain/subscription"
	subvo "github.com/estately/estately/internal/domain/subscription/valueobjects"
)

// MockEmailService satisfies every email port of the application layer.
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendVerificationEmail(to, token string) error {
	return m.Called(to, token).Error(0)
}

func (m *MockEmailService) SendPasswordResetEmail(to, token string) error {
	return m.Called(to, token).Error(0)
}

func (m *MockEmailService) SendPasswordChangedEmail(to string) error {
	return m.Called(to).Error(0)
}

type MockDNSProvisioner struct {
	mock.Mock
}

func (m *MockDNSProvisioner) CreateRecord(ctx context.Context, host string) error {
	return m.Called(ctx, host).Error(0)
}

func (m *MockDNSProvisioner) RecordExists(ctx context.Context, host string) (bool, error) {
	args := m.Called(ctx, host)
	return args.Bool(0), args.Error(1)
}

type MockThrottle struct {
	mock.Mock
}

func (m *MockThrottle) Allow(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

type MockObjectStorage struct {
	mock.Mock
}

func (m *MockObjectStorage) Put(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error) {
	args := m.Called(ctx, key, contentType, body, size)
	return args.String(0), args.Error(1)
}

func (m *MockObjectStorage) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

type MockPaymentGateway struct {
	mock.Mock
}

func (m *MockPaymentGateway) CreateCustomer(ctx context.Context, email, name string, userID uint) (string, error) {
	args := m.Called(ctx, email, name, userID)
	return args.String(0), args.Error(1)
}

func (m *MockPaymentGateway) CreateCheckoutSession(ctx context.Context, customerID, priceID string, userID uint) (string, error) {
	args := m.Called(ctx, customerID, priceID, userID)
	return args.String(0), args.Error(1)
}

func (m *MockPaymentGateway) CreatePortalSession(ctx context.Context, customerID string) (string, error) {
	args := m.Called(ctx, customerID)
	return args.String(0), args.Error(1)
}

func (m *MockPaymentGateway) UpdateSubscriptionItemPrice(ctx context.Context, itemID, priceID string) error {
	return m.Called(ctx, itemID, priceID).Error(0)
}

func (m *MockPaymentGateway) CreateProductPrice(ctx context.Context, name string, amount int64, currency string, interval subvo.BillingInterval) (string, string, error) {
	args := m.Called(ctx, name, amount, currency, interval)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockPaymentGateway) ParseWebhook(payload []byte, signature string) (*subscription.ProcessorEvent, error) {
	args := m.Called(payload, signature)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*subscription.ProcessorEvent), args.Error(1)
}
