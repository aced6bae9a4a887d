package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// Migrate applies schema migrations with goose. The pgx pool is bridged
// to database/sql since goose does not speak pgx natively.
func Migrate(ctx context.Context, pool *pgxpool.Pool, cfg Config, log logger) error {
	if cfg.MigrationsPath == "" {
		return errors.Join(ErrFailedToApplyMigrations, ErrMigrationPathNotProvided)
	}

	if _, err := os.Stat(cfg.MigrationsPath); err != nil {
		if os.IsNotExist(err) {
			return errors.Join(ErrMigrationsDirNotFound, err)
		}
		return errors.Join(ErrFailedToApplyMigrations, err)
	}

	db := stdlib.OpenDBFromPool(pool)
	defer func(db *sql.DB) {
		if err := db.Close(); err != nil {
			log.ErrorContext(ctx, "Failed to close database connection", "error", err)
		}
	}(db)

	// Route goose output through the application logger instead of stdout.
	goose.SetLogger(newGooseLogger(log))
	goose.SetTableName(cfg.MigrationsTable)

	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Join(ErrFailedToApplyMigrations, err)
	}

	if err := goose.UpContext(ctx, db, cfg.MigrationsPath); err != nil {
		return errors.Join(ErrFailedToApplyMigrations, err)
	}

	return nil
}

// gooseLogger bridges goose's Printf-style logging to structured logging.
type gooseLogger struct {
	log logger
}

func newGooseLogger(log logger) goose.Logger {
	return &gooseLogger{log: log}
}

func (g *gooseLogger) Fatalf(format string, v ...any) {
	g.log.ErrorContext(context.Background(), fmt.Sprintf(format, v...))
}

func (g *gooseLogger) Printf(format string, v ...any) {
	g.log.InfoContext(context.Background(), fmt.Sprintf(format, v...))
}
