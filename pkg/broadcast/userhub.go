package broadcast

import (
	"context"
	"log/slog"
	"sync"

	"github.com/solara-ai/notify/pkg/cache"
	"github.com/solara-ai/notify/pkg/logger"
)

// UserHub keys broadcasters by user, giving each user a logical realtime
// channel. Publishing to a user nobody is listening to is a silent drop:
// the hub only allocates a broadcaster when someone subscribes, matching
// the fire-and-forget contract of the realtime notification channel.
//
// Broadcasters for the least recently active users are evicted (and
// closed) once maxUsers is exceeded.
type UserHub[T any] struct {
	broadcasters *cache.LRU[string, Broadcaster[T]]
	factory      func(userID string) Broadcaster[T]
	bufferSize   int
	maxUsers     int
	logger       *slog.Logger
	closed       bool
	mu           sync.Mutex
}

// UserHubOption configures a UserHub.
type UserHubOption[T any] func(*UserHub[T])

// WithHubLogger sets the logger for the UserHub.
func WithHubLogger[T any](log *slog.Logger) UserHubOption[T] {
	return func(h *UserHub[T]) {
		h.logger = log
	}
}

// WithMaxUsers caps how many per-user broadcasters are kept live before
// the least recently used one is evicted. Default 10000.
func WithMaxUsers[T any](limit int) UserHubOption[T] {
	return func(h *UserHub[T]) {
		if limit > 0 {
			h.maxUsers = limit
		}
	}
}

// WithFactory overrides how per-user broadcasters are built. Use this to
// back user channels with Redis Pub/Sub for multi-instance fan-out:
//
//	broadcast.WithFactory[broadcast.Event](func(userID string) broadcast.Broadcaster[broadcast.Event] {
//	    return broadcast.NewRedisBroadcaster[broadcast.Event](client, "user_"+userID, 64)
//	})
func WithFactory[T any](factory func(userID string) Broadcaster[T]) UserHubOption[T] {
	return func(h *UserHub[T]) {
		h.factory = factory
	}
}

// NewUserHub creates a hub whose per-user broadcasters buffer bufferSize
// messages per subscriber.
func NewUserHub[T any](bufferSize int, opts ...UserHubOption[T]) *UserHub[T] {
	h := &UserHub[T]{
		bufferSize: max(bufferSize, 1),
		maxUsers:   10000,
		logger:     slog.Default(),
	}
	h.factory = func(string) Broadcaster[T] {
		return NewMemoryBroadcaster[T](h.bufferSize)
	}

	for _, opt := range opts {
		opt(h)
	}

	h.broadcasters = cache.NewLRU(h.maxUsers, func(userID string, b Broadcaster[T]) {
		if err := b.Close(); err != nil {
			h.logger.LogAttrs(context.Background(), slog.LevelError, "Failed to close evicted broadcaster",
				logger.UserID(userID),
				logger.Error(err),
			)
		}
	})

	return h
}

// Publish sends msg to the user's channel. No active subscriber means the
// message is dropped and Publish still succeeds.
func (h *UserHub[T]) Publish(ctx context.Context, userID string, msg T) error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return ErrHubClosed
	}
	b, ok := h.broadcasters.Get(userID)
	h.mu.Unlock()

	if !ok {
		return nil
	}
	return b.Broadcast(ctx, Message[T]{Data: msg})
}

// Subscribe attaches to the user's channel, allocating it on first use.
// Transport layers (SSE, WebSocket handlers) call this per connection.
func (h *UserHub[T]) Subscribe(ctx context.Context, userID string) Subscriber[T] {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		sub := newChanSubscriber[T](h.bufferSize)
		_ = sub.Close()
		return sub
	}

	b, ok := h.broadcasters.Get(userID)
	if !ok {
		b = h.factory(userID)
		h.broadcasters.Put(userID, b)
	}
	return b.Subscribe(ctx)
}

// Listeners reports whether the user currently has an allocated channel.
func (h *UserHub[T]) Listeners(userID string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	_, ok := h.broadcasters.Peek(userID)
	return ok
}

// Close closes every per-user broadcaster.
func (h *UserHub[T]) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil
	}
	h.closed = true
	h.broadcasters.Clear()
	return nil
}
