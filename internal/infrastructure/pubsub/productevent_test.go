package pubsub

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estately/estately/internal/shared/logger"
)

func TestRedisProductEventBus_RoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	bus := NewRedisProductEventBus(client, logger.NewNopLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	received := make(chan ProductChangeEvent, 1)
	done := make(chan error, 1)
	go func() {
		done <- bus.Subscribe(ctx, func(_ context.Context, e ProductChangeEvent) {
			select {
			case received <- e:
			default:
			}
		})
	}()

	// publish until the subscriber is attached
	require.Eventually(t, func() bool {
		if bus.PublishProductChanged(context.Background(), 7, "price_7") != nil {
			return false
		}
		select {
		case e := <-received:
			return e.ProductID == 7 && e.PriceID == "price_7"
		case <-time.After(20 * time.Millisecond):
			return false
		}
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("subscriber did not stop")
	}
}
