package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solara-ai/notify/pkg/config"
)

type testConfig struct {
	Host    string `env:"TEST_CFG_HOST" envDefault:"localhost"`
	Port    int    `env:"TEST_CFG_PORT" envDefault:"8080"`
	Secret  string `env:"TEST_CFG_SECRET,required"`
	Verbose bool   `env:"TEST_CFG_VERBOSE" envDefault:"false"`
}

func TestLoad(t *testing.T) {
	t.Run("reads env with defaults", func(t *testing.T) {
		t.Setenv("TEST_CFG_SECRET", "s3cret")
		t.Setenv("TEST_CFG_PORT", "9090")

		var cfg testConfig
		require.NoError(t, config.Load(&cfg))

		assert.Equal(t, "localhost", cfg.Host)
		assert.Equal(t, 9090, cfg.Port)
		assert.Equal(t, "s3cret", cfg.Secret)
		assert.False(t, cfg.Verbose)
	})

	t.Run("missing required variable", func(t *testing.T) {
		var cfg testConfig
		err := config.Load(&cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("nil pointer", func(t *testing.T) {
		var cfg *testConfig
		assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
	})

	t.Run("must load panics on failure", func(t *testing.T) {
		assert.Panics(t, func() {
			var cfg testConfig
			config.MustLoad(&cfg)
		})
	})
}
