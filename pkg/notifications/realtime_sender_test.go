package notifications_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solara-ai/notify/pkg/broadcast"
	"github.com/solara-ai/notify/pkg/notifications"
)

// capturePublisher records published events.
type capturePublisher struct {
	userID  string
	event   string
	payload any
	err     error
}

func (p *capturePublisher) Publish(ctx context.Context, userID, event string, payload any) error {
	if p.err != nil {
		return p.err
	}
	p.userID = userID
	p.event = event
	p.payload = payload
	return nil
}

func TestRealtimeSender(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	base := notifications.Notification{
		ID:      "ntf-1",
		UserID:  "user-1",
		Type:    notifications.TypeCampaignCompleted,
		Title:   "🎉 Campaign Complete!",
		Message: "Ready to go.",
		Data:    map[string]any{"campaign_id": "camp-1"},
		Status:  notifications.StatusPending,
	}

	t.Run("website channel publishes a feed event", func(t *testing.T) {
		t.Parallel()

		pub := &capturePublisher{}
		sender := notifications.NewRealtimeSender(pub)

		notif := base
		notif.Channel = notifications.ChannelWebsite
		require.NoError(t, sender.Send(ctx, notif))

		assert.Equal(t, "user-1", pub.userID)
		assert.Equal(t, notifications.EventNotification, pub.event)

		payload, ok := pub.payload.(notifications.WebsitePayload)
		require.True(t, ok)
		assert.Equal(t, "ntf-1", payload.ID)
		assert.Equal(t, notifications.TypeCampaignCompleted, payload.Type)
		assert.Equal(t, "🎉 Campaign Complete!", payload.Title)
	})

	t.Run("browser channel publishes a toast event with a dedup tag", func(t *testing.T) {
		t.Parallel()

		pub := &capturePublisher{}
		sender := notifications.NewRealtimeSender(pub, notifications.WithIcon("/logo.png"))

		notif := base
		notif.Channel = notifications.ChannelBrowser
		require.NoError(t, sender.Send(ctx, notif))

		assert.Equal(t, notifications.EventBrowserNotification, pub.event)

		payload, ok := pub.payload.(notifications.BrowserPayload)
		require.True(t, ok)
		assert.Equal(t, "campaign_camp-1", payload.Tag)
		assert.Equal(t, "/logo.png", payload.Icon)
		assert.Equal(t, "/logo.png", payload.Badge)
	})

	t.Run("tag falls back to the event type without a campaign", func(t *testing.T) {
		t.Parallel()

		pub := &capturePublisher{}
		sender := notifications.NewRealtimeSender(pub)

		notif := base
		notif.Channel = notifications.ChannelBrowser
		notif.Type = notifications.TypeUsageLimitWarning
		notif.Data = map[string]any{"percentage": 85}
		require.NoError(t, sender.Send(ctx, notif))

		payload, ok := pub.payload.(notifications.BrowserPayload)
		require.True(t, ok)
		assert.Equal(t, string(notifications.TypeUsageLimitWarning), payload.Tag)
	})

	t.Run("email channel is not deliverable here", func(t *testing.T) {
		t.Parallel()

		sender := notifications.NewRealtimeSender(&capturePublisher{})

		notif := base
		notif.Channel = notifications.ChannelEmail

		var devErr *notifications.DeliveryError
		require.ErrorAs(t, sender.Send(ctx, notif), &devErr)
		assert.ErrorIs(t, devErr, notifications.ErrUnknownChannel)
	})

	t.Run("publisher failure is a delivery error", func(t *testing.T) {
		t.Parallel()

		sender := notifications.NewRealtimeSender(&capturePublisher{err: errors.New("hub closed")})

		notif := base
		notif.Channel = notifications.ChannelWebsite

		var devErr *notifications.DeliveryError
		require.ErrorAs(t, sender.Send(ctx, notif), &devErr)
		assert.Equal(t, notifications.ChannelWebsite, devErr.Channel)
	})
}

func TestHubPublisher(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("no subscriber means a silent drop", func(t *testing.T) {
		t.Parallel()

		hub := broadcast.NewUserHub[broadcast.Event](8)
		t.Cleanup(func() { _ = hub.Close() })

		pub := notifications.NewHubPublisher(hub)
		require.NoError(t, pub.Publish(ctx, "user-1", notifications.EventNotification, "payload"))
	})

	t.Run("subscriber receives the wrapped event", func(t *testing.T) {
		t.Parallel()

		hub := broadcast.NewUserHub[broadcast.Event](8)
		t.Cleanup(func() { _ = hub.Close() })

		sub := hub.Subscribe(ctx, "user-1")
		t.Cleanup(func() { _ = sub.Close() })

		pub := notifications.NewHubPublisher(hub)
		require.NoError(t, pub.Publish(ctx, "user-1", notifications.EventNotification, "payload"))

		msg := <-sub.Receive(ctx)
		assert.Equal(t, notifications.EventNotification, msg.Data.Name)
		assert.Equal(t, "payload", msg.Data.Payload)
	})
}
