package valueobjects

import "fmt"

// Tier is the product level a subscription grants.
type Tier string

const (
	TierStarter Tier = "starter"
	TierPlus    Tier = "plus"
	TierPro     Tier = "pro"
)

func (t Tier) IsValid() bool {
	return t == TierStarter || t == TierPlus || t == TierPro
}

func (t Tier) String() string {
	return string(t)
}

func NewTier(s string) (Tier, error) {
	t := Tier(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid tier: %s, must be 'starter', 'plus', or 'pro'", s)
	}
	return t, nil
}

// BillingInterval is the recurring period of a product price.
type BillingInterval string

const (
	IntervalMonth BillingInterval = "month"
	IntervalYear  BillingInterval = "year"
)

func (i BillingInterval) IsValid() bool {
	return i == IntervalMonth || i == IntervalYear
}

func (i BillingInterval) String() string {
	return string(i)
}
