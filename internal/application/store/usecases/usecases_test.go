package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/estately/estately/internal/application/testutil"
	"github.com/estately/estately/internal/domain/media"
	"github.com/estately/estately/internal/domain/store"
	"github.com/estately/estately/internal/domain/subscription"
	subvo "github.com/estately/estately/internal/domain/subscription/valueobjects"
	apperrors "github.com/estately/estately/internal/shared/errors"
	"github.com/estately/estately/internal/shared/logger"
)

func newResolver(r *testutil.Repos) *Resolver {
	return NewResolver(r.Stores, r.Users, logger.NewNopLogger())
}

func setStatus(t *testing.T, r *testutil.Repos, s *store.Store, status store.Status) {
	t.Helper()
	_, err := s.SetStatus(status)
	require.NoError(t, err)
	require.NoError(t, r.Stores.Update(context.Background(), s))
}

func TestResolve_PublicByHostname(t *testing.T) {
	r := testutil.NewRepos(t)
	tenant := r.NewTenant(t, "jane@example.com")

	s, err := newResolver(r).Resolve(context.Background(), ResolveInput{Hostname: "  " + tenant.Store.Hostname()})
	require.NoError(t, err)
	assert.Equal(t, tenant.Store.ID(), s.ID())
}

func TestResolve_HostnameErrors(t *testing.T) {
	r := testutil.NewRepos(t)
	res := newResolver(r)

	_, err := res.Resolve(context.Background(), ResolveInput{})
	assert.True(t, apperrors.IsBadRequestError(err))

	_, err = res.Resolve(context.Background(), ResolveInput{Hostname: "not a host"})
	assert.True(t, apperrors.IsBadRequestError(err))

	_, err = res.Resolve(context.Background(), ResolveInput{Hostname: "missing.estately.test"})
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestResolve_Ownership(t *testing.T) {
	r := testutil.NewRepos(t)
	tenant := r.NewTenant(t, "jane@example.com")
	admin := r.NewAdmin(t, "admin@example.com")
	res := newResolver(r)

	s, err := res.Resolve(context.Background(), ResolveInput{UserID: tenant.User.ID(), RequireOwnership: true})
	require.NoError(t, err)
	assert.Equal(t, tenant.Store.ID(), s.ID())

	_, err = res.Resolve(context.Background(), ResolveInput{UserID: admin.ID(), RequireOwnership: true})
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestResolve_BlockedOwner(t *testing.T) {
	r := testutil.NewRepos(t)
	tenant := r.NewTenant(t, "jane@example.com")
	tenant.User.SetBlocked(true)
	require.NoError(t, r.Users.Update(context.Background(), tenant.User))
	res := newResolver(r)

	_, err := res.Resolve(context.Background(), ResolveInput{Hostname: tenant.Store.Hostname()})
	assert.True(t, apperrors.IsForbiddenError(err))

	tenant.Store.SetProtected(true)
	require.NoError(t, r.Stores.Update(context.Background(), tenant.Store))
	_, err = res.Resolve(context.Background(), ResolveInput{Hostname: tenant.Store.Hostname()})
	assert.NoError(t, err)
}

func TestResolve_InactiveStore(t *testing.T) {
	r := testutil.NewRepos(t)
	tenant := r.NewTenant(t, "jane@example.com")
	setStatus(t, r, tenant.Store, store.StatusInactive)

	_, err := newResolver(r).Resolve(context.Background(), ResolveInput{Hostname: tenant.Store.Hostname()})
	assert.True(t, apperrors.IsConflictError(err))
}

func attachSubscription(t *testing.T, r *testutil.Repos, userID uint, status subvo.SubscriptionStatus, end time.Time) {
	t.Helper()
	sub, err := subscription.NewSubscription(userID, "cus_test", "price_test", subvo.TierStarter)
	require.NoError(t, err)
	sub.Attach(subscription.ProcessorState{
		SubscriptionID: "sub_test",
		ItemID:         "si_test",
		PriceID:        "price_test",
		Status:         status,
		StartAt:        time.Now().Add(-time.Hour),
		EndAt:          end,
	})
	require.NoError(t, r.Subscriptions.Create(context.Background(), sub))
}

func TestStatusSyncer_SyncForUser(t *testing.T) {
	r := testutil.NewRepos(t)
	syncer := NewStatusSyncer(r.Stores, r.Subscriptions, logger.NewNopLogger())

	active := r.NewTenant(t, "active@example.com")
	setStatus(t, r, active.Store, store.StatusInactive)
	attachSubscription(t, r, active.User.ID(), subvo.StatusActive, time.Now().Add(24*time.Hour))

	expired := r.NewTenant(t, "expired@example.com")
	attachSubscription(t, r, expired.User.ID(), subvo.StatusActive, time.Now().Add(-time.Minute))

	none := r.NewTenant(t, "none@example.com")

	for _, u := range []uint{active.User.ID(), expired.User.ID(), none.User.ID()} {
		require.NoError(t, syncer.SyncForUser(context.Background(), u))
	}

	get := func(id uint) store.Status {
		s, err := r.Stores.GetByID(context.Background(), id)
		require.NoError(t, err)
		return s.Status()
	}
	assert.Equal(t, store.StatusActive, get(active.Store.ID()))
	assert.Equal(t, store.StatusInactive, get(expired.Store.ID()))
	assert.Equal(t, store.StatusInactive, get(none.Store.ID()))

	admin := r.NewAdmin(t, "admin@example.com")
	assert.NoError(t, syncer.SyncForUser(context.Background(), admin.ID()))
}

func TestSyncStoreStatuses(t *testing.T) {
	r := testutil.NewRepos(t)
	syncer := NewStatusSyncer(r.Stores, r.Subscriptions, logger.NewNopLogger())
	job := NewSyncStoreStatusesUseCase(r.Stores, syncer, logger.NewNopLogger())

	trialing := r.NewTenant(t, "trial@example.com")
	setStatus(t, r, trialing.Store, store.StatusInactive)
	attachSubscription(t, r, trialing.User.ID(), subvo.StatusTrialing, time.Now().Add(time.Hour))
	r.NewTenant(t, "lapsed@example.com")
	r.NewTenant(t, "lapsed2@example.com")

	changed, err := job.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, changed)

	changed, err = job.Execute(context.Background())
	require.NoError(t, err)
	assert.Zero(t, changed)
}

func TestUpdateMyStore(t *testing.T) {
	r := testutil.NewRepos(t)
	tenant := r.NewTenant(t, "jane@example.com")
	other := r.NewTenant(t, "bob@example.com")
	uc := NewUpdateMyStoreUseCase(r.Stores, r.Files, r.Tx, logger.NewNopLogger())

	newFile := func(storeID, uploader uint) uint {
		f, err := media.NewFile(storeID, uploader, "k", "https://cdn/k", "logo.png", "image/png", media.KindImage, 10)
		require.NoError(t, err)
		require.NoError(t, r.Files.Create(context.Background(), f))
		return f.ID()
	}
	own := newFile(tenant.Store.ID(), tenant.User.ID())
	foreign := newFile(other.Store.ID(), other.User.ID())
	missing := uint(9999)

	s, err := uc.Execute(context.Background(), UpdateMyStoreCommand{
		UserID: tenant.User.ID(), Name: "Sunny Homes", LogoFileID: &own, PrimaryColor: "#112233",
	})
	require.NoError(t, err)
	assert.Equal(t, "Sunny Homes", s.Branding().Name)
	assert.Equal(t, tenant.Store.Hostname(), s.Hostname())

	_, err = uc.Execute(context.Background(), UpdateMyStoreCommand{UserID: tenant.User.ID(), Name: "x", CoverFileID: &foreign})
	assert.True(t, apperrors.IsForbiddenError(err))

	_, err = uc.Execute(context.Background(), UpdateMyStoreCommand{UserID: tenant.User.ID(), Name: "x", LogoFileID: &missing})
	assert.True(t, apperrors.IsNotFoundError(err))

	_, err = uc.Execute(context.Background(), UpdateMyStoreCommand{UserID: tenant.User.ID(), Name: "x", PrimaryColor: "red"})
	assert.True(t, apperrors.IsBadRequestError(err))

	got, err := NewGetMyStoreUseCase(r.Stores, logger.NewNopLogger()).Execute(context.Background(), tenant.User.ID())
	require.NoError(t, err)
	assert.Equal(t, "Sunny Homes", got.Branding().Name)
}

func TestAdminStores(t *testing.T) {
	r := testutil.NewRepos(t)
	a := r.NewTenant(t, "a@example.com")
	b := r.NewTenant(t, "b@example.com")
	setStatus(t, r, b.Store, store.StatusInactive)

	list := NewListStoresUseCase(r.Stores, logger.NewNopLogger())
	res, err := list.Execute(context.Background(), ListStoresQuery{Status: "inactive"})
	require.NoError(t, err)
	require.Equal(t, int64(1), res.Total)
	assert.Equal(t, b.Store.ID(), res.Stores[0].ID())

	_, err = list.Execute(context.Background(), ListStoresQuery{Status: "paused"})
	assert.True(t, apperrors.IsBadRequestError(err))

	update := NewAdminUpdateStoreUseCase(r.Stores, logger.NewNopLogger())
	protected := true
	status := "inactive"
	s, err := update.Execute(context.Background(), AdminUpdateStoreCommand{StoreID: a.Store.ID(), Protected: &protected, Status: &status})
	require.NoError(t, err)
	assert.True(t, s.IsProtected())
	assert.False(t, s.IsActive())

	_, err = update.Execute(context.Background(), AdminUpdateStoreCommand{StoreID: 424242})
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestCheckStoreDNS(t *testing.T) {
	r := testutil.NewRepos(t)
	tenant := r.NewTenant(t, "jane@example.com")
	host := tenant.Store.Hostname()

	dns := new(testutil.MockDNSProvisioner)
	dns.On("RecordExists", mock.Anything, host).Return(false, nil)
	dns.On("CreateRecord", mock.Anything, host).Return(nil)
	uc := NewCheckStoreDNSUseCase(r.Stores, dns, logger.NewNopLogger())

	res, err := uc.Execute(context.Background(), tenant.Store.ID(), false)
	require.NoError(t, err)
	assert.False(t, res.Exists)
	dns.AssertNotCalled(t, "CreateRecord", mock.Anything, mock.Anything)

	res, err = uc.Execute(context.Background(), tenant.Store.ID(), true)
	require.NoError(t, err)
	assert.True(t, res.Repaired)
	dns.AssertCalled(t, "CreateRecord", mock.Anything, host)
}

func TestCheckStoreDNS_ProviderFailure(t *testing.T) {
	r := testutil.NewRepos(t)
	tenant := r.NewTenant(t, "jane@example.com")
	dns := new(testutil.MockDNSProvisioner)
	dns.On("RecordExists", mock.Anything, mock.Anything).Return(false, errors.New("throttled"))

	_, err := NewCheckStoreDNSUseCase(r.Stores, dns, logger.NewNopLogger()).Execute(context.Background(), tenant.Store.ID(), true)
	assert.True(t, apperrors.IsConflictError(err))
}
