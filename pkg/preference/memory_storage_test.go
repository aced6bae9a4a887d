package preference_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solara-ai/notify/pkg/notifications"
	"github.com/solara-ai/notify/pkg/preference"
)

func TestMemoryStorageReplaceAll(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	row := func(id string, enabled bool) preference.Preference {
		return preference.Preference{
			ID:      id,
			UserID:  "user-1",
			Type:    notifications.TypeMarketing,
			Channel: notifications.ChannelEmail,
			Enabled: enabled,
		}
	}

	t.Run("swaps the full set", func(t *testing.T) {
		t.Parallel()

		s := preference.NewMemoryStorage()
		require.NoError(t, s.ReplaceAll(ctx, "user-1", []preference.Preference{row("a", true)}))
		require.NoError(t, s.ReplaceAll(ctx, "user-1", []preference.Preference{row("b", false), row("c", true)}))

		rows, err := s.ListByUser(ctx, "user-1")
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "b", rows[0].ID)
	})

	t.Run("empty set clears the user", func(t *testing.T) {
		t.Parallel()

		s := preference.NewMemoryStorage()
		require.NoError(t, s.ReplaceAll(ctx, "user-1", []preference.Preference{row("a", true)}))
		require.NoError(t, s.ReplaceAll(ctx, "user-1", nil))

		count, err := s.CountByUser(ctx, "user-1")
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("users are isolated", func(t *testing.T) {
		t.Parallel()

		s := preference.NewMemoryStorage()
		require.NoError(t, s.ReplaceAll(ctx, "user-1", []preference.Preference{row("a", true)}))

		count, err := s.CountByUser(ctx, "user-2")
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("listed rows are copies", func(t *testing.T) {
		t.Parallel()

		s := preference.NewMemoryStorage()
		require.NoError(t, s.ReplaceAll(ctx, "user-1", []preference.Preference{row("a", true)}))

		rows, err := s.ListByUser(ctx, "user-1")
		require.NoError(t, err)
		rows[0].Enabled = false

		again, err := s.ListByUser(ctx, "user-1")
		require.NoError(t, err)
		assert.True(t, again[0].Enabled)
	})
}
