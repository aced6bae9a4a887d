package broadcast

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"
)

// RedisBroadcaster fans messages out across process boundaries via Redis
// Pub/Sub, so realtime pushes reach users connected to any instance.
// Messages are JSON-encoded; T must round-trip through encoding/json.
type RedisBroadcaster[T any] struct {
	client     redis.UniversalClient
	channel    string
	bufferSize int
	closed     bool
	mu         sync.Mutex
	cancels    []context.CancelFunc
}

// NewRedisBroadcaster creates a broadcaster publishing to the given Redis
// Pub/Sub channel.
func NewRedisBroadcaster[T any](client redis.UniversalClient, channel string, bufferSize int) *RedisBroadcaster[T] {
	return &RedisBroadcaster[T]{
		client:     client,
		channel:    channel,
		bufferSize: max(bufferSize, 1),
	}
}

// Subscribe opens a Redis subscription on the broadcaster's channel and
// decodes incoming payloads into typed messages. Cancelling ctx or closing
// the broadcaster ends the subscription.
func (b *RedisBroadcaster[T]) Subscribe(ctx context.Context) Subscriber[T] {
	sub := newChanSubscriber[T](b.bufferSize)

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		_ = sub.Close()
		return sub
	}

	subCtx, cancel := context.WithCancel(ctx)
	b.cancels = append(b.cancels, cancel)

	pubsub := b.client.Subscribe(subCtx, b.channel)
	go func() {
		defer func() {
			_ = pubsub.Close()
			_ = sub.Close()
		}()
		ch := pubsub.Channel()
		for {
			select {
			case <-subCtx.Done():
				return
			case m, ok := <-ch:
				if !ok {
					return
				}
				var data T
				if err := json.Unmarshal([]byte(m.Payload), &data); err != nil {
					// Undecodable payloads are skipped; a mixed-version
					// deploy must not kill the subscription.
					continue
				}
				sub.send(Message[T]{Data: data})
			}
		}
	}()

	return sub
}

// Broadcast publishes msg to the Redis channel. Delivery to subscribers on
// other instances is at-most-once, matching the fire-and-forget contract.
func (b *RedisBroadcaster[T]) Broadcast(ctx context.Context, msg Message[T]) error {
	payload, err := json.Marshal(msg.Data)
	if err != nil {
		return fmt.Errorf("broadcast: encode message: %w", err)
	}
	if err := b.client.Publish(ctx, b.channel, payload).Err(); err != nil {
		return errors.Join(ErrPublishFailed, err)
	}
	return nil
}

// Close cancels all subscriptions. The Redis client is owned by the
// caller and stays open.
func (b *RedisBroadcaster[T]) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true

	for _, cancel := range b.cancels {
		cancel()
	}
	b.cancels = nil
	return nil
}
