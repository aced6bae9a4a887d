package logger_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solara-ai/notify/pkg/logger"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("json format with static attrs", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(
			logger.WithOutput(&buf),
			logger.WithAttr(logger.Component("dispatcher")),
		)

		log.Info("delivered", logger.UserID("user-1"))

		var record map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
		assert.Equal(t, "delivered", record["msg"])
		assert.Equal(t, "user-1", record["user_id"])
		assert.Equal(t, "dispatcher", record["component"])
	})

	t.Run("level filters lower records", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(
			logger.WithOutput(&buf),
			logger.WithLevel(slog.LevelWarn),
		)

		log.Info("hidden")
		assert.Zero(t, buf.Len())

		log.Warn("visible")
		assert.Contains(t, buf.String(), "visible")
	})

	t.Run("text format", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(
			logger.WithOutput(&buf),
			logger.WithFormat(logger.FormatText),
		)

		log.Info("hello")
		assert.Contains(t, buf.String(), "msg=hello")
	})

	t.Run("invalid format panics", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() {
			logger.New(logger.WithFormat(logger.Format("xml")))
		})
	})
}
