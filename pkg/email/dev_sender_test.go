package email_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solara-ai/notify/pkg/email"
)

func TestDevSender(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("writes html and metadata files", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		sender := email.NewDevSender(dir)

		err := sender.SendEmail(ctx, email.SendEmailParams{
			SendTo:   "jo@example.com",
			Subject:  "Campaign Ready",
			BodyHTML: "<h1>Done</h1>",
			BodyText: "Done",
			Tag:      "campaign_completed",
		})
		require.NoError(t, err)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 2)

		var htmlFile, jsonFile string
		for _, e := range entries {
			switch filepath.Ext(e.Name()) {
			case ".html":
				htmlFile = filepath.Join(dir, e.Name())
			case ".json":
				jsonFile = filepath.Join(dir, e.Name())
			}
			assert.Contains(t, e.Name(), "campaign_completed")
		}
		require.NotEmpty(t, htmlFile)
		require.NotEmpty(t, jsonFile)

		body, err := os.ReadFile(htmlFile)
		require.NoError(t, err)
		assert.Equal(t, "<h1>Done</h1>", string(body))

		raw, err := os.ReadFile(jsonFile)
		require.NoError(t, err)
		var meta map[string]any
		require.NoError(t, json.Unmarshal(raw, &meta))
		assert.Equal(t, "jo@example.com", meta["send_to"])
		assert.Equal(t, "Campaign Ready", meta["subject"])
		assert.Equal(t, "Done", meta["body_text"])
	})

	t.Run("falls back to the subject for the filename", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		sender := email.NewDevSender(dir)

		err := sender.SendEmail(ctx, email.SendEmailParams{
			SendTo:   "jo@example.com",
			Subject:  "Weird / Subject!",
			BodyHTML: "<p>x</p>",
		})
		require.NoError(t, err)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.NotEmpty(t, entries)
		for _, e := range entries {
			name := strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
			assert.Contains(t, name, "weird__subject")
			assert.NotContains(t, name, "/")
			assert.NotContains(t, name, "!")
		}
	})

	t.Run("rejects invalid params before touching disk", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "never-created")
		sender := email.NewDevSender(dir)

		err := sender.SendEmail(ctx, email.SendEmailParams{SendTo: "nope"})
		require.ErrorIs(t, err, email.ErrInvalidParams)

		_, statErr := os.Stat(dir)
		assert.True(t, os.IsNotExist(statErr))
	})
}
