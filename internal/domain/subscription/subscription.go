package subscription

import (
	"fmt"
	"time"

	vo "github.com/estately/estately/internal/domain/subscription/valueobjects"
	"github.com/estately/estately/internal/shared/biztime"
)

// Subscription is the local mirror of a processor subscription. The processor
// is the system of record; this row only follows it.
type Subscription struct {
	id             uint
	userID         uint
	customerID     string
	subscriptionID string
	itemID         string
	priceID        string
	desiredPriceID string
	status         vo.SubscriptionStatus
	tier           vo.Tier
	startAt        time.Time
	endAt          time.Time
	isCurrent      bool
	version        int
	createdAt      time.Time
	updatedAt      time.Time
}

// ProcessorState is the subscription snapshot carried by a webhook event.
// Tier is empty when the price did not match a known product.
type ProcessorState struct {
	SubscriptionID string
	ItemID         string
	PriceID        string
	Status         vo.SubscriptionStatus
	StartAt        time.Time
	EndAt          time.Time
	Tier           vo.Tier
}

// NewSubscription creates the current, not yet attached row opened by a
// checkout.
func NewSubscription(userID uint, customerID, priceID string, tier vo.Tier) (*Subscription, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user is required")
	}
	if customerID == "" {
		return nil, fmt.Errorf("customer id is required")
	}
	if tier != "" && !tier.IsValid() {
		return nil, fmt.Errorf("invalid tier: %s", tier)
	}

	now := biztime.NowUTC()
	return &Subscription{
		userID:         userID,
		customerID:     customerID,
		priceID:        priceID,
		desiredPriceID: priceID,
		status:         vo.StatusIncomplete,
		tier:           tier,
		startAt:        biztime.Epoch,
		endAt:          biztime.Epoch,
		isCurrent:      true,
		version:        1,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func ReconstructSubscription(
	id, userID uint,
	customerID, subscriptionID, itemID, priceID, desiredPriceID string,
	status vo.SubscriptionStatus,
	tier vo.Tier,
	startAt, endAt time.Time,
	isCurrent bool,
	version int,
	createdAt, updatedAt time.Time,
) *Subscription {
	return &Subscription{
		id:             id,
		userID:         userID,
		customerID:     customerID,
		subscriptionID: subscriptionID,
		itemID:         itemID,
		priceID:        priceID,
		desiredPriceID: desiredPriceID,
		status:         status,
		tier:           tier,
		startAt:        startAt,
		endAt:          endAt,
		isCurrent:      isCurrent,
		version:        version,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

func (s *Subscription) ID() uint                      { return s.id }
func (s *Subscription) UserID() uint                  { return s.userID }
func (s *Subscription) CustomerID() string            { return s.customerID }
func (s *Subscription) SubscriptionID() string        { return s.subscriptionID }
func (s *Subscription) ItemID() string                { return s.itemID }
func (s *Subscription) PriceID() string               { return s.priceID }
func (s *Subscription) DesiredPriceID() string        { return s.desiredPriceID }
func (s *Subscription) Status() vo.SubscriptionStatus { return s.status }
func (s *Subscription) Tier() vo.Tier                 { return s.tier }
func (s *Subscription) StartAt() time.Time            { return s.startAt }
func (s *Subscription) EndAt() time.Time              { return s.endAt }
func (s *Subscription) IsCurrent() bool               { return s.isCurrent }
func (s *Subscription) Version() int                  { return s.version }
func (s *Subscription) CreatedAt() time.Time          { return s.createdAt }
func (s *Subscription) UpdatedAt() time.Time          { return s.updatedAt }

func (s *Subscription) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("subscription ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("subscription ID cannot be zero")
	}
	s.id = id
	return nil
}

func (s *Subscription) touch() {
	s.updatedAt = biztime.NowUTC()
	s.version++
}

// IsAttached reports whether a processor subscription is linked.
func (s *Subscription) IsAttached() bool {
	return s.subscriptionID != ""
}

// GrantsAccess is true for an active or trialing subscription whose period
// has not ended.
func (s *Subscription) GrantsAccess(now time.Time) bool {
	return s.status.GrantsAccess() && s.endAt.After(now)
}

// Attach links the processor subscription announced by a created event.
// It returns false when a subscription is already attached.
func (s *Subscription) Attach(state ProcessorState) bool {
	if s.IsAttached() {
		return false
	}
	s.subscriptionID = state.SubscriptionID
	s.itemID = state.ItemID
	s.priceID = state.PriceID
	s.desiredPriceID = state.PriceID
	s.startAt = state.StartAt
	s.endAt = state.EndAt
	s.status = state.Status
	if state.Tier != "" {
		s.tier = state.Tier
	}
	s.touch()
	return true
}

// Sync overwrites the row with an updated event's snapshot. It returns
// whether anything changed, and whether the status move falls outside the
// known state machine. Out-of-machine moves are still applied.
func (s *Subscription) Sync(state ProcessorState) (changed bool, unexpected bool) {
	if state.Status != s.status {
		unexpected = !s.status.CanTransitionTo(state.Status)
	}

	tier := s.tier
	if state.Tier != "" {
		tier = state.Tier
	}

	if s.status == state.Status &&
		s.priceID == state.PriceID &&
		s.itemID == state.ItemID &&
		s.tier == tier &&
		s.startAt.Equal(state.StartAt) &&
		s.endAt.Equal(state.EndAt) &&
		(state.SubscriptionID == "" || s.subscriptionID == state.SubscriptionID) {
		return false, unexpected
	}

	// no local change pending: a price picked in the processor portal wins
	if !s.HasPendingPriceChange() {
		s.desiredPriceID = state.PriceID
	}
	if state.SubscriptionID != "" {
		s.subscriptionID = state.SubscriptionID
	}
	s.status = state.Status
	s.priceID = state.PriceID
	s.itemID = state.ItemID
	s.tier = tier
	s.startAt = state.StartAt
	s.endAt = state.EndAt
	s.touch()
	return true, unexpected
}

// HasPendingPriceChange reports whether a ChangePlan is waiting for the
// processor to confirm the desired price.
func (s *Subscription) HasPendingPriceChange() bool {
	return s.desiredPriceID != "" && s.desiredPriceID != s.priceID
}

// NeedsPriceSync reports whether a plan change requested locally has not yet
// reached the processor.
func (s *Subscription) NeedsPriceSync() bool {
	return s.IsAttached() && s.HasPendingPriceChange()
}

// Detach handles a deleted event: ids are cleared and the period collapses
// to the epoch sentinel. The row itself is kept for history.
func (s *Subscription) Detach() bool {
	if !s.IsAttached() && s.status == vo.StatusCanceled && biztime.IsEpoch(s.endAt) {
		return false
	}
	s.subscriptionID = ""
	s.itemID = ""
	s.startAt = biztime.Epoch
	s.endAt = biztime.Epoch
	s.status = vo.StatusCanceled
	s.touch()
	return true
}

// RequestPriceChange records the price a plan change is moving to.
func (s *Subscription) RequestPriceChange(priceID string) error {
	if !s.IsAttached() || s.itemID == "" {
		return ErrNoSubscriptionItem
	}
	if priceID == "" {
		return fmt.Errorf("price id is required")
	}
	s.desiredPriceID = priceID
	s.touch()
	return nil
}

// SetPendingPrice updates the price a not yet attached checkout targets.
func (s *Subscription) SetPendingPrice(priceID string, tier vo.Tier) {
	s.priceID = priceID
	s.desiredPriceID = priceID
	s.tier = tier
	s.touch()
}

// Retire clears the current flag when a new row replaces this one.
func (s *Subscription) Retire() {
	if !s.isCurrent {
		return
	}
	s.isCurrent = false
	s.touch()
}
