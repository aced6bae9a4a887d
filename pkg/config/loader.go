package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var loadDotEnv sync.Once

// Load parses environment variables into the provided configuration
// struct based on `env` field tags. The default .env file is loaded once
// per process before the first parse; a missing .env file is not an
// error.
//
// Example:
//
//	type PGConfig struct {
//		ConnURL string `env:"PG_CONN_URL,required"`
//		MaxConn int    `env:"PG_MAX_OPEN_CONNS" envDefault:"10"`
//	}
//
//	var cfg PGConfig
//	if err := config.Load(&cfg); err != nil {
//		// handle error
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	loadDotEnv.Do(func() {
		_ = godotenv.Load()
	})

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics on failure, for configuration the
// service cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}
