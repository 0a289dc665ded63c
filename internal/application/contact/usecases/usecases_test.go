package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/estately/estately/internal/application/testutil"
	"github.com/estately/estately/internal/domain/contact"
	"github.com/estately/estately/internal/domain/listing"
	apperrors "github.com/estately/estately/internal/shared/errors"
	"github.com/estately/estately/internal/shared/logger"
	"github.com/estately/estately/internal/shared/services/markdown"
)

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) NotifyStoreOwner(to string, n StoreNotification) error {
	return m.Called(to, n).Error(0)
}

func (m *mockNotifier) NotifyAdmin(n AdminNotification) error {
	return m.Called(n).Error(0)
}

func newItem(t *testing.T, r *testutil.Repos, storeID uint, stage listing.Stage) *listing.Item {
	t.Helper()
	item, err := listing.NewItem(storeID, listing.ItemDetails{Title: "Loft", Stage: stage})
	require.NoError(t, err)
	require.NoError(t, r.Items.Create(context.Background(), item))
	return item
}

func inquiry() contact.Inquiry {
	return contact.Inquiry{Name: "Visitor <b>V</b>", Email: "visitor@example.com", Message: "Is it available?"}
}

func TestCreateContactRequest_NotifiesOwner(t *testing.T) {
	r := testutil.NewRepos(t)
	tenant := r.NewTenant(t, "owner@example.com")
	item := newItem(t, r, tenant.Store.ID(), listing.StageActive)
	itemID := item.ID()

	notifier := new(mockNotifier)
	notifier.On("NotifyStoreOwner", "owner@example.com", mock.MatchedBy(func(n StoreNotification) bool {
		return n.ItemTitle == "Loft" && n.Name == "Visitor V"
	})).Return(nil)

	uc := NewCreateContactRequestUseCase(r.Contacts, r.Items, r.Users, notifier, markdown.NewService(), logger.NewNopLogger())
	req, err := uc.Execute(context.Background(), CreateContactRequestCommand{Store: tenant.Store, ItemID: &itemID, Inquiry: inquiry()})
	require.NoError(t, err)
	assert.Equal(t, contact.StatusCreated, req.Status())
	notifier.AssertExpectations(t)
}

func TestCreateContactRequest_NotifyFailureIsLogged(t *testing.T) {
	r := testutil.NewRepos(t)
	tenant := r.NewTenant(t, "owner@example.com")
	notifier := new(mockNotifier)
	notifier.On("NotifyStoreOwner", mock.Anything, mock.Anything).Return(errors.New("smtp down"))

	uc := NewCreateContactRequestUseCase(r.Contacts, r.Items, r.Users, notifier, markdown.NewService(), logger.NewNopLogger())
	req, err := uc.Execute(context.Background(), CreateContactRequestCommand{Store: tenant.Store, Inquiry: inquiry()})
	require.NoError(t, err)
	assert.NotZero(t, req.ID())
}

func TestCreateContactRequest_ItemMustBelongToStore(t *testing.T) {
	r := testutil.NewRepos(t)
	alice := r.NewTenant(t, "alice@example.com")
	bob := r.NewTenant(t, "bob@example.com")
	foreign := newItem(t, r, bob.Store.ID(), listing.StageActive).ID()
	draft := newItem(t, r, alice.Store.ID(), listing.StageDraft).ID()

	uc := NewCreateContactRequestUseCase(r.Contacts, r.Items, r.Users, new(mockNotifier), markdown.NewService(), logger.NewNopLogger())
	for _, id := range []uint{foreign, draft} {
		itemID := id
		_, err := uc.Execute(context.Background(), CreateContactRequestCommand{Store: alice.Store, ItemID: &itemID, Inquiry: inquiry()})
		assert.True(t, apperrors.IsNotFoundError(err))
	}
}

func TestContactRequests_StatusGuardAndTenancy(t *testing.T) {
	r := testutil.NewRepos(t)
	alice := r.NewTenant(t, "alice@example.com")
	bob := r.NewTenant(t, "bob@example.com")
	req, err := contact.NewRequest(alice.Store.ID(), nil, inquiry())
	require.NoError(t, err)
	require.NoError(t, r.Contacts.Create(context.Background(), req))

	uc := NewContactRequestsUseCase(r.Contacts, logger.NewNopLogger())
	ctx := context.Background()

	_, err = uc.UpdateStatus(ctx, bob.Store.ID(), req.ID(), "pending")
	assert.True(t, apperrors.IsForbiddenError(err))

	_, err = uc.UpdateStatus(ctx, alice.Store.ID(), req.ID(), "pending")
	require.NoError(t, err)
	_, err = uc.UpdateStatus(ctx, alice.Store.ID(), req.ID(), "processed")
	require.NoError(t, err)

	_, err = uc.UpdateStatus(ctx, alice.Store.ID(), req.ID(), "created")
	assert.ErrorIs(t, err, contact.ErrCannotReturnToCreated)

	_, err = uc.UpdateStatus(ctx, alice.Store.ID(), req.ID(), "archived")
	assert.True(t, apperrors.IsBadRequestError(err))

	require.NoError(t, uc.Delete(ctx, alice.Store.ID(), req.ID()))
	list, total, err := uc.List(ctx, ListContactRequestsQuery{StoreID: alice.Store.ID()})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, list)
	_, err = uc.Get(ctx, alice.Store.ID(), req.ID())
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestAdminContactRequest_NotifyFailureRollsBack(t *testing.T) {
	r := testutil.NewRepos(t)
	notifier := new(mockNotifier)
	notifier.On("NotifyAdmin", mock.Anything).Return(errors.New("smtp down")).Once()
	notifier.On("NotifyAdmin", mock.Anything).Return(nil)

	uc := NewAdminContactRequestsUseCase(r.AdminContacts, notifier, markdown.NewService(), r.Tx, logger.NewNopLogger())
	ctx := context.Background()

	_, err := uc.Create(ctx, inquiry(), "Acme Realty")
	assert.True(t, apperrors.IsConflictError(err))
	_, total, err := uc.List(ctx, "", 1, 20)
	require.NoError(t, err)
	assert.Zero(t, total)

	req, err := uc.Create(ctx, inquiry(), "Acme Realty")
	require.NoError(t, err)
	assert.Equal(t, "Acme Realty", req.Company())

	updated, err := uc.UpdateStatus(ctx, req.ID(), "rejected")
	require.NoError(t, err)
	assert.Equal(t, contact.StatusRejected, updated.Status())

	_, err = uc.UpdateStatus(ctx, req.ID(), "created")
	assert.ErrorIs(t, err, contact.ErrCannotReturnToCreated)
}
