package notifications_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solara-ai/notify/pkg/notifications"
)

func newWebsiteNotification(userID string) notifications.Notification {
	return notifications.Notification{
		ID:      uuid.New().String(),
		UserID:  userID,
		Type:    notifications.TypeCampaignCompleted,
		Channel: notifications.ChannelWebsite,
		Title:   "done",
		Message: "done",
		Status:  notifications.StatusPending,
	}
}

func TestMemoryStorageLifecycle(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("pending to sent stamps sentAt", func(t *testing.T) {
		t.Parallel()

		s := notifications.NewMemoryStorage()
		n := newWebsiteNotification("user-1")
		require.NoError(t, s.Create(ctx, n))

		at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		require.NoError(t, s.MarkSent(ctx, n.ID, at))

		got, err := s.Get(ctx, "user-1", n.ID)
		require.NoError(t, err)
		assert.Equal(t, notifications.StatusSent, got.Status)
		require.NotNil(t, got.SentAt)
		assert.Equal(t, at, *got.SentAt)
	})

	t.Run("sent record cannot fail", func(t *testing.T) {
		t.Parallel()

		s := notifications.NewMemoryStorage()
		n := newWebsiteNotification("user-1")
		require.NoError(t, s.Create(ctx, n))
		require.NoError(t, s.MarkSent(ctx, n.ID, time.Now()))

		err := s.MarkFailed(ctx, n.ID, "late failure")
		require.Error(t, err)
		assert.ErrorIs(t, err, notifications.ErrInvalidTransition)
	})

	t.Run("failed is terminal", func(t *testing.T) {
		t.Parallel()

		s := notifications.NewMemoryStorage()
		n := newWebsiteNotification("user-1")
		require.NoError(t, s.Create(ctx, n))
		require.NoError(t, s.MarkFailed(ctx, n.ID, "smtp down"))

		err := s.MarkSent(ctx, n.ID, time.Now())
		assert.ErrorIs(t, err, notifications.ErrInvalidTransition)

		got, err := s.Get(ctx, "user-1", n.ID)
		require.NoError(t, err)
		assert.Equal(t, "smtp down", got.ErrorMessage)
	})

	t.Run("unknown id", func(t *testing.T) {
		t.Parallel()

		s := notifications.NewMemoryStorage()
		assert.ErrorIs(t, s.MarkSent(ctx, "nope", time.Now()), notifications.ErrNotificationNotFound)
		assert.ErrorIs(t, s.MarkFailed(ctx, "nope", "x"), notifications.ErrNotificationNotFound)
	})

	t.Run("duplicate id rejected", func(t *testing.T) {
		t.Parallel()

		s := notifications.NewMemoryStorage()
		n := newWebsiteNotification("user-1")
		require.NoError(t, s.Create(ctx, n))
		assert.Error(t, s.Create(ctx, n))
	})
}

func TestMemoryStorageMarkRead(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	seedSent := func(t *testing.T, s *notifications.MemoryStorage, userID string) notifications.Notification {
		t.Helper()
		n := newWebsiteNotification(userID)
		require.NoError(t, s.Create(ctx, n))
		require.NoError(t, s.MarkSent(ctx, n.ID, time.Now()))
		return n
	}

	t.Run("repeated mark read keeps the original stamp", func(t *testing.T) {
		t.Parallel()

		s := notifications.NewMemoryStorage()
		n := seedSent(t, s, "user-1")

		require.NoError(t, s.MarkRead(ctx, "user-1", n.ID))
		first, err := s.Get(ctx, "user-1", n.ID)
		require.NoError(t, err)
		require.NotNil(t, first.ReadAt)

		time.Sleep(5 * time.Millisecond)
		require.NoError(t, s.MarkRead(ctx, "user-1", n.ID))

		second, err := s.Get(ctx, "user-1", n.ID)
		require.NoError(t, err)
		assert.Equal(t, *first.ReadAt, *second.ReadAt)
	})

	t.Run("foreign user cannot read or probe", func(t *testing.T) {
		t.Parallel()

		s := notifications.NewMemoryStorage()
		n := seedSent(t, s, "user-1")

		require.NoError(t, s.MarkRead(ctx, "user-2", n.ID))

		got, err := s.Get(ctx, "user-1", n.ID)
		require.NoError(t, err)
		assert.Equal(t, notifications.StatusSent, got.Status)

		_, err = s.Get(ctx, "user-2", n.ID)
		assert.ErrorIs(t, err, notifications.ErrNotificationNotFound)
	})

	t.Run("non-website records are not readable", func(t *testing.T) {
		t.Parallel()

		s := notifications.NewMemoryStorage()
		n := newWebsiteNotification("user-1")
		n.Channel = notifications.ChannelEmail
		require.NoError(t, s.Create(ctx, n))
		require.NoError(t, s.MarkSent(ctx, n.ID, time.Now()))

		require.NoError(t, s.MarkRead(ctx, "user-1", n.ID))

		got, err := s.Get(ctx, "user-1", n.ID)
		require.NoError(t, err)
		assert.Equal(t, notifications.StatusSent, got.Status)
	})

	t.Run("mark all read skips failed and pending records", func(t *testing.T) {
		t.Parallel()

		s := notifications.NewMemoryStorage()
		seedSent(t, s, "user-1")
		seedSent(t, s, "user-1")

		pending := newWebsiteNotification("user-1")
		require.NoError(t, s.Create(ctx, pending))

		failed := newWebsiteNotification("user-1")
		require.NoError(t, s.Create(ctx, failed))
		require.NoError(t, s.MarkFailed(ctx, failed.ID, "x"))

		count, err := s.MarkAllRead(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, 2, count)

		unread, err := s.CountUnread(ctx, "user-1")
		require.NoError(t, err)
		assert.Zero(t, unread)
	})
}

func TestMemoryStorageList(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("newest first with limit", func(t *testing.T) {
		t.Parallel()

		s := notifications.NewMemoryStorage()
		for i := range 5 {
			n := newWebsiteNotification("user-1")
			n.Title = fmt.Sprintf("n%d", i)
			require.NoError(t, s.Create(ctx, n))
		}

		got, err := s.List(ctx, "user-1", 3)
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, "n4", got[0].Title)
		assert.Equal(t, "n3", got[1].Title)
		assert.Equal(t, "n2", got[2].Title)
	})

	t.Run("excludes non-website channels", func(t *testing.T) {
		t.Parallel()

		s := notifications.NewMemoryStorage()
		web := newWebsiteNotification("user-1")
		require.NoError(t, s.Create(ctx, web))

		mail := newWebsiteNotification("user-1")
		mail.Channel = notifications.ChannelEmail
		require.NoError(t, s.Create(ctx, mail))

		browser := newWebsiteNotification("user-1")
		browser.Channel = notifications.ChannelBrowser
		require.NoError(t, s.Create(ctx, browser))

		got, err := s.List(ctx, "user-1", 10)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, web.ID, got[0].ID)
	})

	t.Run("empty inbox", func(t *testing.T) {
		t.Parallel()

		s := notifications.NewMemoryStorage()
		got, err := s.List(ctx, "user-1", 10)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
