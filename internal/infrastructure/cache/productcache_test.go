package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estately/estately/internal/domain/subscription"
	vo "github.com/estately/estately/internal/domain/subscription/valueobjects"
	"github.com/estately/estately/internal/shared/logger"
)

type countingProductRepo struct {
	subscription.ProductRepository
	products map[string]*subscription.Product
	lookups  int
}

func (r *countingProductRepo) GetByPriceID(_ context.Context, priceID string) (*subscription.Product, error) {
	r.lookups++
	return r.products[priceID], nil
}

func (r *countingProductRepo) Update(context.Context, *subscription.Product) error { return nil }

func TestCachedProductRepository(t *testing.T) {
	p, err := subscription.NewProduct("Plus", vo.TierPlus, 2900, "usd", vo.IntervalMonth)
	require.NoError(t, err)
	require.NoError(t, p.AttachExternal("prod_1", "price_plus"))

	inner := &countingProductRepo{products: map[string]*subscription.Product{"price_plus": p}}
	repo := NewCachedProductRepository(inner, logger.NewNopLogger())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		got, err := repo.GetByPriceID(ctx, "price_plus")
		require.NoError(t, err)
		assert.Equal(t, vo.TierPlus, got.Tier())
	}
	assert.Equal(t, 1, inner.lookups)

	missing, err := repo.GetByPriceID(ctx, "price_unknown")
	require.NoError(t, err)
	assert.Nil(t, missing)
	_, _ = repo.GetByPriceID(ctx, "price_unknown")
	assert.Equal(t, 3, inner.lookups)

	require.NoError(t, repo.Update(ctx, p))
	_, _ = repo.GetByPriceID(ctx, "price_plus")
	assert.Equal(t, 4, inner.lookups)
}

type recordingPublisher struct {
	products []uint
}

func (p *recordingPublisher) PublishProductChanged(_ context.Context, productID uint, _ string) error {
	p.products = append(p.products, productID)
	return nil
}

func TestCachedProductRepository_BroadcastsWrites(t *testing.T) {
	p, err := subscription.NewProduct("Pro", vo.TierPro, 4900, "usd", vo.IntervalMonth)
	require.NoError(t, err)
	require.NoError(t, p.AttachExternal("prod_2", "price_pro"))

	inner := &countingProductRepo{products: map[string]*subscription.Product{"price_pro": p}}
	repo := NewCachedProductRepository(inner, logger.NewNopLogger())
	pub := &recordingPublisher{}
	repo.SetPublisher(pub)
	ctx := context.Background()

	_, _ = repo.GetByPriceID(ctx, "price_pro")
	require.NoError(t, repo.Update(ctx, p))
	assert.Len(t, pub.products, 1)

	// a purge from a peer forces a reload
	_, _ = repo.GetByPriceID(ctx, "price_pro")
	repo.Purge()
	_, _ = repo.GetByPriceID(ctx, "price_pro")
	assert.Equal(t, 3, inner.lookups)
}
