package broadcast

import (
	"context"
	"sync"
)

// MemoryBroadcaster fans messages out to in-process subscribers. Slow
// consumers get messages dropped rather than blocking the broadcast. All
// methods are safe for concurrent use.
type MemoryBroadcaster[T any] struct {
	subscribers map[*chanSubscriber[T]]struct{}
	bufferSize  int
	closed      bool
	done        chan struct{}
	mu          sync.RWMutex
	cleanupWg   sync.WaitGroup
}

// NewMemoryBroadcaster creates an in-memory broadcaster whose subscribers
// buffer up to bufferSize messages each. A minimum of 1 is enforced; a
// zero buffer would make every send blocking.
func NewMemoryBroadcaster[T any](bufferSize int) *MemoryBroadcaster[T] {
	return &MemoryBroadcaster[T]{
		subscribers: make(map[*chanSubscriber[T]]struct{}),
		bufferSize:  max(bufferSize, 1),
		done:        make(chan struct{}),
	}
}

// Subscribe registers a subscriber for all subsequent messages. The
// subscription is cleaned up when ctx is cancelled. On a closed
// broadcaster the returned subscriber is already closed.
func (b *MemoryBroadcaster[T]) Subscribe(ctx context.Context) Subscriber[T] {
	b.mu.Lock()
	defer b.mu.Unlock()

	sub := newChanSubscriber[T](b.bufferSize)
	if b.closed {
		_ = sub.Close()
		return sub
	}
	b.subscribers[sub] = struct{}{}

	if ctx.Done() != nil {
		b.cleanupWg.Add(1)
		go func() {
			defer b.cleanupWg.Done()
			select {
			case <-ctx.Done():
				b.unsubscribe(sub)
			case <-b.done:
			}
		}()
	}

	return sub
}

// Broadcast sends msg to every active subscriber without blocking.
// Subscribers whose buffer is full miss the message and are detached.
func (b *MemoryBroadcaster[T]) Broadcast(ctx context.Context, msg Message[T]) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return nil
	}

	for sub := range b.subscribers {
		if !sub.send(msg) {
			// Detach asynchronously; taking the write lock here would
			// stall the broadcast path.
			go b.unsubscribe(sub)
		}
	}

	return nil
}

// Close shuts the broadcaster down and closes all subscribers. Safe to
// call multiple times.
func (b *MemoryBroadcaster[T]) Close() error {
	b.mu.Lock()

	if b.closed {
		b.mu.Unlock()
		return nil
	}
	b.closed = true
	close(b.done)

	for sub := range b.subscribers {
		_ = sub.Close()
	}
	clear(b.subscribers)
	b.mu.Unlock()

	// Wait out pending context-cancellation cleanups so Close and async
	// unsubscribes cannot race.
	b.cleanupWg.Wait()

	return nil
}

// Len reports the current number of subscribers.
func (b *MemoryBroadcaster[T]) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}

func (b *MemoryBroadcaster[T]) unsubscribe(sub *chanSubscriber[T]) {
	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.subscribers, sub)
	_ = sub.Close()
}
