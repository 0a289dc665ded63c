// Package pubsub distributes change notifications between API instances
// over Redis Pub/Sub.
package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/estately/estately/internal/shared/logger"
)

const productChangeChannel = "estately:product:change"

// ProductChangeEvent announces that a product row was created or modified.
type ProductChangeEvent struct {
	ProductID uint   `json:"product_id"`
	PriceID   string `json:"price_id"`
	Timestamp int64  `json:"timestamp"`
}

// ProductEventHandler is called for every received event.
type ProductEventHandler func(ctx context.Context, event ProductChangeEvent)

// RedisProductEventBus publishes and receives product change events.
type RedisProductEventBus struct {
	client *redis.Client
	logger logger.Interface
}

func NewRedisProductEventBus(client *redis.Client, logger logger.Interface) *RedisProductEventBus {
	return &RedisProductEventBus{
		client: client,
		logger: logger,
	}
}

func (b *RedisProductEventBus) PublishProductChanged(ctx context.Context, productID uint, priceID string) error {
	data, err := json.Marshal(ProductChangeEvent{
		ProductID: productID,
		PriceID:   priceID,
		Timestamp: time.Now().Unix(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err := b.client.Publish(ctx, productChangeChannel, data).Err(); err != nil {
		b.logger.Errorw("failed to publish product change event",
			"product_id", productID,
			"error", err,
		)
		return fmt.Errorf("failed to publish event: %w", err)
	}

	b.logger.Debugw("product change event published", "product_id", productID)
	return nil
}

// Subscribe blocks, calling handler for each event until ctx is done.
func (b *RedisProductEventBus) Subscribe(ctx context.Context, handler ProductEventHandler) error {
	sub := b.client.Subscribe(ctx, productChangeChannel)
	defer sub.Close()

	// Wait for subscription confirmation
	if _, err := sub.Receive(ctx); err != nil {
		return fmt.Errorf("failed to subscribe to channel: %w", err)
	}

	b.logger.Infow("subscribed to product change events", "channel", productChangeChannel)

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			b.logger.Infow("product event subscriber stopped", "reason", ctx.Err())
			return ctx.Err()

		case msg, ok := <-ch:
			if !ok {
				b.logger.Warnw("product event channel closed")
				return nil
			}

			var event ProductChangeEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				b.logger.Warnw("failed to unmarshal product event",
					"payload", msg.Payload,
					"error", err,
				)
				continue
			}
			handler(ctx, event)
		}
	}
}
