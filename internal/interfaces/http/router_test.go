package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/estately/estately/internal/domain/subscription"
	subvo "github.com/estately/estately/internal/domain/subscription/valueobjects"
	"github.com/estately/estately/internal/domain/user"
	vo "github.com/estately/estately/internal/domain/user/valueobjects"
	"github.com/estately/estately/internal/infrastructure/auth"
	"github.com/estately/estately/internal/infrastructure/config"
	"github.com/estately/estately/internal/infrastructure/email"
	"github.com/estately/estately/internal/infrastructure/persistence/testdb"
	"github.com/estately/estately/internal/infrastructure/repository"
	"github.com/estately/estately/internal/shared/authorization"
	"github.com/estately/estately/internal/shared/constants"
	"github.com/estately/estately/internal/shared/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// =====================================================================
// Fakes for the third-party integrations
// =====================================================================

type fakeStorage struct {
	mu   sync.Mutex
	keys []string
}

func (s *fakeStorage) Put(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.keys = append(s.keys, key)
	return "https://cdn.estately.test/" + key, nil
}

func (s *fakeStorage) Delete(ctx context.Context, key string) error { return nil }

type fakeDNS struct {
	mu    sync.Mutex
	hosts map[string]bool
}

func (d *fakeDNS) CreateRecord(ctx context.Context, host string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.hosts[host] = true
	return nil
}

func (d *fakeDNS) RecordExists(ctx context.Context, host string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.hosts[host], nil
}

type fakeMailer struct {
	mu       sync.Mutex
	verify   []string
	contacts []email.ContactNotification
}

func (m *fakeMailer) SendVerificationEmail(to, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.verify = append(m.verify, to)
	return nil
}

func (m *fakeMailer) SendPasswordResetEmail(to, token string) error { return nil }
func (m *fakeMailer) SendPasswordChangedEmail(to string) error      { return nil }

func (m *fakeMailer) SendContactNotification(to string, n email.ContactNotification) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.contacts = append(m.contacts, n)
	return nil
}

func (m *fakeMailer) SendAdminContactNotification(n email.AdminContactNotification) error {
	return nil
}

// fakeGateway accepts webhook payloads signed "valid" and encoded as
// webhookPayload.
type fakeGateway struct {
	mu        sync.Mutex
	customers int
	prices    int
}

type webhookPayload struct {
	ID             string `json:"id"`
	Type           string `json:"type"`
	CustomerID     string `json:"customer_id"`
	SubscriptionID string `json:"subscription_id"`
	PriceID        string `json:"price_id"`
	Status         string `json:"status"`
}

func (g *fakeGateway) CreateCustomer(ctx context.Context, email, name string, userID uint) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.customers++
	return fmt.Sprintf("cus_%d", g.customers), nil
}

func (g *fakeGateway) CreateCheckoutSession(ctx context.Context, customerID, priceID string, userID uint) (string, error) {
	return "https://checkout.stripe.test/" + customerID, nil
}

func (g *fakeGateway) CreatePortalSession(ctx context.Context, customerID string) (string, error) {
	return "https://billing.stripe.test/" + customerID, nil
}

func (g *fakeGateway) UpdateSubscriptionItemPrice(ctx context.Context, itemID, priceID string) error {
	return nil
}

func (g *fakeGateway) CreateProductPrice(ctx context.Context, name string, amount int64, currency string, interval subvo.BillingInterval) (string, string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.prices++
	return fmt.Sprintf("prod_%d", g.prices), fmt.Sprintf("price_%d", g.prices), nil
}

func (g *fakeGateway) ParseWebhook(payload []byte, signature string) (*subscription.ProcessorEvent, error) {
	if signature != "valid" {
		return nil, subscription.ErrInvalidSignature
	}
	var p webhookPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return &subscription.ProcessorEvent{
		ID:         p.ID,
		Type:       subscription.EventType(p.Type),
		CustomerID: p.CustomerID,
		State: subscription.ProcessorState{
			SubscriptionID: p.SubscriptionID,
			ItemID:         "si_" + p.SubscriptionID,
			PriceID:        p.PriceID,
			Status:         subvo.SubscriptionStatus(p.Status),
			StartAt:        now,
			EndAt:          now.Add(30 * 24 * time.Hour),
		},
	}, nil
}

// =====================================================================
// Harness
// =====================================================================

type testServer struct {
	t       *testing.T
	db      *gorm.DB
	cfg     *config.Config
	router  *Router
	mailer  *fakeMailer
	gateway *fakeGateway
	redis   *miniredis.Miniredis
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Server.AllowedOrigins = []string{"http://localhost:3000"}
	cfg.Auth.Password.BcryptCost = 4
	cfg.Auth.JWT.Secret = "test-secret"
	cfg.Auth.JWT.AccessExpMinutes = 15
	cfg.Auth.JWT.RefreshExpDays = 7
	cfg.Service.Name = "Estately"
	cfg.Service.Domain = "estately.test"
	cfg.Storage.MaxUploadMB = 1
	cfg.RateLimit.Enabled = true
	cfg.RateLimit.RequestsPerMinute = 1000
	cfg.RateLimit.AuthRequestsPerHour = 100
	return cfg
}

func newTestServer(t *testing.T, mutate ...func(*config.Config)) *testServer {
	t.Helper()

	cfg := testConfig()
	for _, fn := range mutate {
		fn(cfg)
	}

	mr := miniredis.RunT(t)
	ext := &Externals{
		Storage: &fakeStorage{},
		Gateway: &fakeGateway{},
		DNS:     &fakeDNS{hosts: map[string]bool{}},
		Mailer:  &fakeMailer{},
		Redis:   redis.NewClient(&redis.Options{Addr: mr.Addr()}),
	}

	gdb := testdb.New(t)
	router, err := NewRouterWithExternals(gdb, cfg, ext, logger.NewNopLogger())
	require.NoError(t, err)
	router.SetupRoutes()
	t.Cleanup(func() { _ = router.Shutdown() })

	return &testServer{
		t:       t,
		db:      gdb,
		cfg:     cfg,
		router:  router,
		mailer:  ext.Mailer.(*fakeMailer),
		gateway: ext.Gateway.(*fakeGateway),
		redis:   mr,
	}
}

type apiResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

func (s *testServer) do(method, path string, body any, token string, headers ...string) (*httptest.ResponseRecorder, apiResponse) {
	s.t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case []byte:
		reader = bytes.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(s.t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	w := httptest.NewRecorder()
	s.router.GetEngine().ServeHTTP(w, req)

	var resp apiResponse
	if w.Body.Len() > 0 {
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
	}
	return w, resp
}

func (s *testServer) decode(resp apiResponse, target any) {
	s.t.Helper()
	require.NoError(s.t, json.Unmarshal(resp.Data, target))
}

type registered struct {
	token    string
	hostname string
}

// signUp registers and logs in an owner, returning their bearer token.
func (s *testServer) signUp(emailAddr string) registered {
	s.t.Helper()

	w, resp := s.do(http.MethodPost, "/api/v1/auth/register", map[string]string{
		"email": emailAddr, "name": "Owner", "password": "passw0rd!",
	}, "")
	require.Equal(s.t, http.StatusCreated, w.Code, w.Body.String())
	var reg struct {
		Store struct {
			Hostname string `json:"hostname"`
		} `json:"store"`
	}
	s.decode(resp, &reg)

	w, resp = s.do(http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email": emailAddr, "password": "passw0rd!",
	}, "")
	require.Equal(s.t, http.StatusOK, w.Code, w.Body.String())
	var tokens struct {
		AccessToken string `json:"access_token"`
	}
	s.decode(resp, &tokens)

	return registered{token: tokens.AccessToken, hostname: reg.Store.Hostname}
}

// adminToken persists an admin and signs a token for them directly.
func (s *testServer) adminToken() string {
	s.t.Helper()

	addr, err := vo.NewEmail("admin@estately.test")
	require.NoError(s.t, err)
	admin, err := user.NewUser(addr, "Admin")
	require.NoError(s.t, err)
	admin.SetRole(authorization.RoleAdmin)
	require.NoError(s.t, repository.NewUserRepository(s.db, logger.NewNopLogger()).Create(context.Background(), admin))

	jwtSvc := auth.NewJWTService(s.cfg.Auth.JWT.Secret, s.cfg.Auth.JWT.AccessExpMinutes, s.cfg.Auth.JWT.RefreshExpDays)
	pair, err := jwtSvc.Generate(admin.UUID(), authorization.RoleAdmin)
	require.NoError(s.t, err)
	return pair.AccessToken
}

func (s *testServer) createProduct(adminToken string) (uint, string) {
	s.t.Helper()
	w, resp := s.do(http.MethodPost, "/api/v1/admin/products", map[string]any{
		"name": "Pro", "tier": "pro", "amount": 4900, "currency": "usd", "interval": "month",
	}, adminToken)
	require.Equal(s.t, http.StatusCreated, w.Code, w.Body.String())
	var p struct {
		ID      uint   `json:"id"`
		PriceID string `json:"price_id"`
	}
	s.decode(resp, &p)
	return p.ID, p.PriceID
}

// subscribe runs checkout and delivers the created webhook for it.
func (s *testServer) subscribe(owner registered, productID uint, priceID, subID string) []byte {
	s.t.Helper()

	w, _ := s.do(http.MethodPost, "/api/v1/billings/checkout", map[string]uint{"product_id": productID}, owner.token)
	require.Equal(s.t, http.StatusOK, w.Code, w.Body.String())

	payload, err := json.Marshal(webhookPayload{
		ID:             "evt_" + subID,
		Type:           string(subscription.EventSubscriptionCreated),
		CustomerID:     fmt.Sprintf("cus_%d", s.gateway.customers),
		SubscriptionID: subID,
		PriceID:        priceID,
		Status:         string(subvo.StatusActive),
	})
	require.NoError(s.t, err)

	w, _ = s.do(http.MethodPost, "/api/v1/billings/webhook", payload, "", constants.HeaderStripeSig, "valid")
	require.Equal(s.t, http.StatusOK, w.Code, w.Body.String())
	return payload
}

// =====================================================================
// Tests
// =====================================================================

func TestRouter_Health(t *testing.T) {
	s := newTestServer(t)
	w, _ := s.do(http.MethodGet, "/health", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_SubscriptionActivatesStore(t *testing.T) {
	s := newTestServer(t)
	admin := s.adminToken()
	productID, priceID := s.createProduct(admin)

	owner := s.signUp("owner@example.com")
	assert.Contains(t, s.mailer.verify, "owner@example.com")

	// no subscription yet
	w, _ := s.do(http.MethodGet, "/api/v1/items", nil, owner.token)
	assert.Equal(t, http.StatusConflict, w.Code)

	// the owner can still reach their store and billing
	w, _ = s.do(http.MethodGet, "/api/v1/stores/me", nil, owner.token)
	assert.Equal(t, http.StatusOK, w.Code)

	payload := s.subscribe(owner, productID, priceID, "sub_1")

	w, resp := s.do(http.MethodGet, "/api/v1/subscription", nil, owner.token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var sub struct {
		Current struct {
			Status string `json:"status"`
			Tier   string `json:"tier"`
		} `json:"current"`
	}
	s.decode(resp, &sub)
	assert.Equal(t, "active", sub.Current.Status)
	assert.Equal(t, "pro", sub.Current.Tier)

	w, _ = s.do(http.MethodGet, "/api/v1/items", nil, owner.token)
	assert.Equal(t, http.StatusOK, w.Code)

	// replaying the same delivery is harmless
	w, _ = s.do(http.MethodPost, "/api/v1/billings/webhook", payload, "", constants.HeaderStripeSig, "valid")
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = s.do(http.MethodPost, "/api/v1/billings/webhook", payload, "", constants.HeaderStripeSig, "forged")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRouter_ListingsAreTenantScoped(t *testing.T) {
	s := newTestServer(t)
	admin := s.adminToken()
	productID, priceID := s.createProduct(admin)

	alice := s.signUp("alice@example.com")
	s.subscribe(alice, productID, priceID, "sub_alice")
	bob := s.signUp("bob@example.com")
	s.subscribe(bob, productID, priceID, "sub_bob")

	w, resp := s.do(http.MethodPost, "/api/v1/items", map[string]any{
		"title": "Loft on Main", "stage": "active", "listing_type": "sale", "bedrooms": 2,
	}, alice.token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var item struct {
		ID uint `json:"id"`
	}
	s.decode(resp, &item)
	itemPath := fmt.Sprintf("/api/v1/items/%d", item.ID)

	w, _ = s.do(http.MethodGet, itemPath, nil, bob.token)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, _ = s.do(http.MethodDelete, itemPath, nil, bob.token)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, _ = s.do(http.MethodPost, "/api/v1/rates", map[string]any{
		"item_id": item.ID, "name": "Nightly", "amount": 100, "period": "night",
	}, bob.token)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// storefront reads by hostname
	w, resp = s.do(http.MethodGet, "/api/v1/public/items?hostname="+alice.hostname, nil, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var page struct {
		Total int64 `json:"total"`
	}
	s.decode(resp, &page)
	assert.EqualValues(t, 1, page.Total)

	w, _ = s.do(http.MethodGet, fmt.Sprintf("/api/v1/public/items/%d", item.ID), nil, "", constants.HeaderStoreHostname, bob.hostname)
	assert.NotEqual(t, http.StatusOK, w.Code)

	w, _ = s.do(http.MethodGet, "/api/v1/public/store?hostname="+alice.hostname, nil, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = s.do(http.MethodPost, "/api/v1/public/contact_requests?hostname="+alice.hostname, map[string]any{
		"item_id": item.ID, "name": "Buyer", "email": "buyer@example.com", "message": "Is it available?",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	require.Len(t, s.mailer.contacts, 1)
	assert.Equal(t, "Loft on Main", s.mailer.contacts[0].ItemTitle)

	// delete cascades out of the storefront
	w, _ = s.do(http.MethodDelete, itemPath, nil, alice.token)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w, _ = s.do(http.MethodGet, itemPath, nil, alice.token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_AdminRoutesRequireAdminRole(t *testing.T) {
	s := newTestServer(t)
	owner := s.signUp("owner@example.com")

	w, _ := s.do(http.MethodGet, "/api/v1/admin/users", nil, owner.token)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, _ = s.do(http.MethodGet, "/api/v1/admin/users", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = s.do(http.MethodGet, "/api/v1/admin/users", nil, s.adminToken())
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_RateLimit(t *testing.T) {
	t.Run("auth endpoints are throttled", func(t *testing.T) {
		s := newTestServer(t, func(cfg *config.Config) { cfg.RateLimit.AuthRequestsPerHour = 2 })
		body := map[string]string{"email": "nobody@example.com", "password": "wrong-pass"}

		for i := 0; i < 2; i++ {
			w, _ := s.do(http.MethodPost, "/api/v1/auth/login", body, "")
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		}
		w, _ := s.do(http.MethodPost, "/api/v1/auth/login", body, "")
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
	})

	t.Run("fails open without redis", func(t *testing.T) {
		s := newTestServer(t, func(cfg *config.Config) { cfg.RateLimit.AuthRequestsPerHour = 1 })
		s.redis.Close()
		body := map[string]string{"email": "nobody@example.com", "password": "wrong-pass"}

		for i := 0; i < 3; i++ {
			w, _ := s.do(http.MethodPost, "/api/v1/auth/login", body, "")
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		}
	})
}
