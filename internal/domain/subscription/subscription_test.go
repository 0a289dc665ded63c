package subscription

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/estately/estately/internal/domain/subscription/valueobjects"
	"github.com/estately/estately/internal/shared/biztime"
)

func newTestSubscription(t *testing.T) *Subscription {
	t.Helper()
	s, err := NewSubscription(7, "cus_123", "price_starter", vo.TierStarter)
	require.NoError(t, err)
	return s
}

func activeState() ProcessorState {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	return ProcessorState{
		SubscriptionID: "sub_1",
		ItemID:         "si_1",
		PriceID:        "price_starter",
		Status:         vo.StatusActive,
		StartAt:        start,
		EndAt:          start.AddDate(0, 1, 0),
		Tier:           vo.TierStarter,
	}
}

func TestNewSubscription(t *testing.T) {
	s := newTestSubscription(t)
	assert.True(t, s.IsCurrent())
	assert.False(t, s.IsAttached())
	assert.Equal(t, vo.StatusIncomplete, s.Status())
	assert.True(t, biztime.IsEpoch(s.EndAt()))

	_, err := NewSubscription(0, "cus", "", "")
	assert.Error(t, err)
	_, err = NewSubscription(1, "", "", "")
	assert.Error(t, err)
}

func TestSubscription_AttachOnlyOnce(t *testing.T) {
	s := newTestSubscription(t)
	require.True(t, s.Attach(activeState()))
	assert.Equal(t, "sub_1", s.SubscriptionID())
	assert.Equal(t, vo.StatusActive, s.Status())

	other := activeState()
	other.SubscriptionID = "sub_2"
	assert.False(t, s.Attach(other))
	assert.Equal(t, "sub_1", s.SubscriptionID())
}

func TestSubscription_Attach_UnknownTierKeepsTier(t *testing.T) {
	s := newTestSubscription(t)
	state := activeState()
	state.Tier = ""
	state.PriceID = "price_unknown"
	s.Attach(state)
	assert.Equal(t, vo.TierStarter, s.Tier())
}

func TestSubscription_Sync(t *testing.T) {
	s := newTestSubscription(t)
	s.Attach(activeState())

	state := activeState()
	state.Status = vo.StatusPastDue
	state.PriceID = "price_pro"
	state.Tier = vo.TierPro

	changed, unexpected := s.Sync(state)
	assert.True(t, changed)
	assert.False(t, unexpected)
	assert.Equal(t, vo.TierPro, s.Tier())
	assert.Equal(t, vo.StatusPastDue, s.Status())

	v := s.Version()
	changed, _ = s.Sync(state)
	assert.False(t, changed, "replay must be a no-op")
	assert.Equal(t, v, s.Version())
}

func TestSubscription_Sync_OutOfMachineStillApplied(t *testing.T) {
	s := newTestSubscription(t)
	s.Attach(activeState())
	state := activeState()
	state.Status = vo.StatusCanceled
	s.Sync(state)

	state.Status = vo.StatusActive
	changed, unexpected := s.Sync(state)
	assert.True(t, changed)
	assert.True(t, unexpected)
	assert.Equal(t, vo.StatusActive, s.Status())
}

func TestSubscription_Detach(t *testing.T) {
	s := newTestSubscription(t)
	s.Attach(activeState())

	require.True(t, s.Detach())
	assert.Empty(t, s.SubscriptionID())
	assert.Empty(t, s.ItemID())
	assert.True(t, biztime.IsEpoch(s.StartAt()))
	assert.True(t, biztime.IsEpoch(s.EndAt()))
	assert.Equal(t, vo.StatusCanceled, s.Status())
	assert.True(t, s.IsCurrent())

	assert.False(t, s.Detach())
}

func TestSubscription_GrantsAccess(t *testing.T) {
	s := newTestSubscription(t)
	s.Attach(activeState())
	assert.True(t, s.GrantsAccess(time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)))
	assert.False(t, s.GrantsAccess(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)))
}

func TestSubscription_RequestPriceChange(t *testing.T) {
	s := newTestSubscription(t)
	assert.ErrorIs(t, s.RequestPriceChange("price_pro"), ErrNoSubscriptionItem)

	s.Attach(activeState())
	require.NoError(t, s.RequestPriceChange("price_pro"))
	assert.True(t, s.NeedsPriceSync())

	state := activeState()
	state.PriceID = "price_pro"
	s.Sync(state)
	assert.False(t, s.NeedsPriceSync())
}

func TestSubscription_SyncAdoptsProcessorPrice(t *testing.T) {
	s := newTestSubscription(t)
	s.Attach(activeState())
	base := s.PriceID()

	state := activeState()
	state.PriceID = "price_portal"
	changed, _ := s.Sync(state)
	assert.True(t, changed)
	assert.Equal(t, "price_portal", s.PriceID())
	assert.Equal(t, "price_portal", s.DesiredPriceID())
	assert.False(t, s.NeedsPriceSync())

	// a pending local change survives an update carrying another price
	require.NoError(t, s.RequestPriceChange("price_pro"))
	state.PriceID = base
	s.Sync(state)
	assert.Equal(t, "price_pro", s.DesiredPriceID())
	assert.True(t, s.NeedsPriceSync())
}

func TestNewProduct(t *testing.T) {
	p, err := NewProduct("Plus", vo.TierPlus, 4900, "USD", vo.IntervalMonth)
	require.NoError(t, err)
	assert.Equal(t, "usd", p.Currency())
	assert.True(t, p.IsActive())

	_, err = NewProduct("Plus", "gold", 4900, "usd", vo.IntervalMonth)
	assert.Error(t, err)
	_, err = NewProduct("Plus", vo.TierPlus, 0, "usd", vo.IntervalMonth)
	assert.Error(t, err)
	_, err = NewProduct("Plus", vo.TierPlus, 100, "usd", "week")
	assert.Error(t, err)

	assert.Error(t, p.AttachExternal("", "price"))
	require.NoError(t, p.AttachExternal("prod_1", "price_1"))
	assert.Equal(t, "price_1", p.ExternalPriceID())
}
