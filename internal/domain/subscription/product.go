package subscription

import (
	"fmt"
	"strings"
	"time"

	vo "github.com/estately/estately/internal/domain/subscription/valueobjects"
	"github.com/estately/estately/internal/shared/biztime"
)

// Product is a sellable plan mirrored from the payment processor.
type Product struct {
	id                uint
	name              string
	tier              vo.Tier
	externalProductID string
	externalPriceID   string
	amount            int64
	currency          string
	interval          vo.BillingInterval
	active            bool
	createdAt         time.Time
	updatedAt         time.Time
}

func NewProduct(name string, tier vo.Tier, amount int64, currency string, interval vo.BillingInterval) (*Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("product name is required")
	}
	if !tier.IsValid() {
		return nil, fmt.Errorf("invalid tier: %s", tier)
	}
	if amount <= 0 {
		return nil, fmt.Errorf("amount must be positive")
	}
	currency = strings.ToLower(strings.TrimSpace(currency))
	if len(currency) != 3 {
		return nil, fmt.Errorf("currency must be a 3-letter ISO code")
	}
	if !interval.IsValid() {
		return nil, fmt.Errorf("invalid billing interval: %s", interval)
	}

	now := biztime.NowUTC()
	return &Product{
		name:      name,
		tier:      tier,
		amount:    amount,
		currency:  currency,
		interval:  interval,
		active:    true,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructProduct(
	id uint,
	name string,
	tier vo.Tier,
	externalProductID, externalPriceID string,
	amount int64,
	currency string,
	interval vo.BillingInterval,
	active bool,
	createdAt, updatedAt time.Time,
) *Product {
	return &Product{
		id:                id,
		name:              name,
		tier:              tier,
		externalProductID: externalProductID,
		externalPriceID:   externalPriceID,
		amount:            amount,
		currency:          currency,
		interval:          interval,
		active:            active,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}
}

func (p *Product) ID() uint                     { return p.id }
func (p *Product) Name() string                 { return p.name }
func (p *Product) Tier() vo.Tier                { return p.tier }
func (p *Product) ExternalProductID() string    { return p.externalProductID }
func (p *Product) ExternalPriceID() string      { return p.externalPriceID }
func (p *Product) Amount() int64                { return p.amount }
func (p *Product) Currency() string             { return p.currency }
func (p *Product) Interval() vo.BillingInterval { return p.interval }
func (p *Product) IsActive() bool               { return p.active }
func (p *Product) CreatedAt() time.Time         { return p.createdAt }
func (p *Product) UpdatedAt() time.Time         { return p.updatedAt }

func (p *Product) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("product ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("product ID cannot be zero")
	}
	p.id = id
	return nil
}

// AttachExternal stores the processor ids created for this product.
func (p *Product) AttachExternal(productID, priceID string) error {
	if productID == "" || priceID == "" {
		return fmt.Errorf("external product and price ids are required")
	}
	p.externalProductID = productID
	p.externalPriceID = priceID
	p.updatedAt = biztime.NowUTC()
	return nil
}

func (p *Product) SetActive(active bool) {
	p.active = active
	p.updatedAt = biztime.NowUTC()
}
