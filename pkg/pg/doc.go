// Package pg provides the PostgreSQL plumbing shared by the pgx-backed
// storages: pooled connections with retry, goose migrations, health
// checks and error classification helpers.
package pg
