package broadcast

import (
	"context"
	"sync"
)

// Message wraps data of type T for type-safe broadcasting.
type Message[T any] struct {
	Data T
}

// Event is a named realtime event with an arbitrary payload. It is the
// message type the notification engine pushes to per-user channels.
type Event struct {
	Name    string `json:"name"`
	Payload any    `json:"payload"`
}

// Subscriber receives messages from a Broadcaster. Implementations must
// be safe for concurrent use.
type Subscriber[T any] interface {
	// Receive returns the channel delivering broadcast messages. The
	// context lets adapters with blocking reads (Redis) respect
	// cancellation; the in-memory implementation ignores it.
	Receive(ctx context.Context) <-chan Message[T]

	// Close closes the subscriber and releases its resources. After
	// Close the receive channel is closed. Idempotent.
	Close() error
}

// Broadcaster sends messages to multiple subscribers. Implementations
// must handle slow consumers by dropping rather than blocking.
type Broadcaster[T any] interface {
	// Subscribe creates a subscriber receiving all subsequent messages.
	// Cancelling the context tears the subscription down.
	Subscribe(ctx context.Context) Subscriber[T]

	// Broadcast sends a message to all active subscribers. Messages may
	// be dropped for slow consumers.
	Broadcast(ctx context.Context, msg Message[T]) error

	// Close shuts the broadcaster down and closes all subscribers.
	Close() error
}

// chanSubscriber is the channel-backed subscriber shared by the in-memory
// and Redis broadcasters.
type chanSubscriber[T any] struct {
	ch     chan Message[T]
	closed bool
	mu     sync.RWMutex
}

func newChanSubscriber[T any](bufferSize int) *chanSubscriber[T] {
	return &chanSubscriber[T]{
		ch: make(chan Message[T], bufferSize),
	}
}

func (s *chanSubscriber[T]) Receive(ctx context.Context) <-chan Message[T] {
	return s.ch
}

func (s *chanSubscriber[T]) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.closed {
		close(s.ch)
		s.closed = true
	}
	return nil
}

// send delivers non-blocking; a full buffer or closed subscriber drops
// the message and reports false.
func (s *chanSubscriber[T]) send(msg Message[T]) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return false
	}

	select {
	case s.ch <- msg:
		return true
	default:
		return false
	}
}
