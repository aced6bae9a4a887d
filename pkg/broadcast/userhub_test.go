package broadcast_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solara-ai/notify/pkg/broadcast"
)

func TestUserHub(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("publish without a listener is a silent drop", func(t *testing.T) {
		t.Parallel()

		hub := broadcast.NewUserHub[string](8)
		t.Cleanup(func() { _ = hub.Close() })

		require.NoError(t, hub.Publish(ctx, "user-1", "nobody home"))
		assert.False(t, hub.Listeners("user-1"), "publish must not allocate a channel")
	})

	t.Run("subscriber receives only its own user's messages", func(t *testing.T) {
		t.Parallel()

		hub := broadcast.NewUserHub[string](8)
		t.Cleanup(func() { _ = hub.Close() })

		sub1 := hub.Subscribe(ctx, "user-1")
		sub2 := hub.Subscribe(ctx, "user-2")

		require.NoError(t, hub.Publish(ctx, "user-1", "for one"))
		require.NoError(t, hub.Publish(ctx, "user-2", "for two"))

		assert.Equal(t, "for one", receiveOne(t, sub1).Data)
		assert.Equal(t, "for two", receiveOne(t, sub2).Data)

		select {
		case msg := <-sub1.Receive(ctx):
			t.Fatalf("unexpected cross-user message: %v", msg.Data)
		default:
		}
	})

	t.Run("multiple connections for one user share the channel", func(t *testing.T) {
		t.Parallel()

		hub := broadcast.NewUserHub[string](8)
		t.Cleanup(func() { _ = hub.Close() })

		tab1 := hub.Subscribe(ctx, "user-1")
		tab2 := hub.Subscribe(ctx, "user-1")

		require.NoError(t, hub.Publish(ctx, "user-1", "both tabs"))

		assert.Equal(t, "both tabs", receiveOne(t, tab1).Data)
		assert.Equal(t, "both tabs", receiveOne(t, tab2).Data)
	})

	t.Run("least recently used channel is evicted at capacity", func(t *testing.T) {
		t.Parallel()

		hub := broadcast.NewUserHub(8, broadcast.WithMaxUsers[string](2))
		t.Cleanup(func() { _ = hub.Close() })

		hub.Subscribe(ctx, "user-1")
		hub.Subscribe(ctx, "user-2")
		hub.Subscribe(ctx, "user-3")

		assert.False(t, hub.Listeners("user-1"))
		assert.True(t, hub.Listeners("user-2"))
		assert.True(t, hub.Listeners("user-3"))
	})

	t.Run("closed hub rejects publishes", func(t *testing.T) {
		t.Parallel()

		hub := broadcast.NewUserHub[string](8)
		require.NoError(t, hub.Close())

		err := hub.Publish(ctx, "user-1", "too late")
		assert.ErrorIs(t, err, broadcast.ErrHubClosed)

		// Subscribing after close yields an already-closed subscriber.
		sub := hub.Subscribe(ctx, "user-1")
		_, ok := <-sub.Receive(ctx)
		assert.False(t, ok)
	})

	t.Run("custom factory builds the per-user broadcaster", func(t *testing.T) {
		t.Parallel()

		var gotUser string
		hub := broadcast.NewUserHub(8, broadcast.WithFactory[string](func(userID string) broadcast.Broadcaster[string] {
			gotUser = userID
			return broadcast.NewMemoryBroadcaster[string](8)
		}))
		t.Cleanup(func() { _ = hub.Close() })

		sub := hub.Subscribe(ctx, "user-42")
		require.NoError(t, hub.Publish(ctx, "user-42", "custom"))

		assert.Equal(t, "user-42", gotUser)
		assert.Equal(t, "custom", receiveOne(t, sub).Data)
	})
}
