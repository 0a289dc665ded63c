package cache

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/estately/estately/internal/domain/subscription"
	"github.com/estately/estately/internal/shared/logger"
)

const (
	productCacheSize = 256
	productCacheTTL  = 5 * time.Minute
)

// ChangePublisher tells other instances that a product changed.
type ChangePublisher interface {
	PublishProductChanged(ctx context.Context, productID uint, priceID string) error
}

// CachedProductRepository memoizes price id lookups, which every webhook
// delivery performs. Writes purge the whole cache and, with a publisher
// set, the caches of the other instances.
type CachedProductRepository struct {
	subscription.ProductRepository
	byPrice   *expirable.LRU[string, *subscription.Product]
	publisher ChangePublisher
	logger    logger.Interface
}

func NewCachedProductRepository(inner subscription.ProductRepository, log logger.Interface) *CachedProductRepository {
	return NewCachedProductRepositoryWithTTL(inner, productCacheTTL, log)
}

func NewCachedProductRepositoryWithTTL(inner subscription.ProductRepository, ttl time.Duration, log logger.Interface) *CachedProductRepository {
	return &CachedProductRepository{
		ProductRepository: inner,
		byPrice:           expirable.NewLRU[string, *subscription.Product](productCacheSize, nil, ttl),
		logger:            log,
	}
}

func (r *CachedProductRepository) SetPublisher(p ChangePublisher) {
	r.publisher = p
}

// Purge drops every cached lookup.
func (r *CachedProductRepository) Purge() {
	r.byPrice.Purge()
}

func (r *CachedProductRepository) GetByPriceID(ctx context.Context, priceID string) (*subscription.Product, error) {
	if p, ok := r.byPrice.Get(priceID); ok {
		return p, nil
	}

	p, err := r.ProductRepository.GetByPriceID(ctx, priceID)
	if err != nil {
		return nil, err
	}
	// misses are not cached so a product created right after is found
	if p != nil {
		r.byPrice.Add(priceID, p)
	}
	return p, nil
}

func (r *CachedProductRepository) Create(ctx context.Context, p *subscription.Product) error {
	if err := r.ProductRepository.Create(ctx, p); err != nil {
		return err
	}
	r.changed(ctx, p)
	return nil
}

func (r *CachedProductRepository) Update(ctx context.Context, p *subscription.Product) error {
	if err := r.ProductRepository.Update(ctx, p); err != nil {
		return err
	}
	r.changed(ctx, p)
	return nil
}

func (r *CachedProductRepository) changed(ctx context.Context, p *subscription.Product) {
	r.byPrice.Purge()
	r.logger.Debugw("product cache purged", "product_id", p.ID())
	if r.publisher == nil {
		return
	}
	// peers fall back to the TTL when the broadcast is lost
	if err := r.publisher.PublishProductChanged(ctx, p.ID(), p.ExternalPriceID()); err != nil {
		r.logger.Warnw("failed to broadcast product change", "product_id", p.ID(), "error", err)
	}
}
