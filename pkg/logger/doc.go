// Package logger provides the slog factory and the typed attribute
// helpers used across the notification engine, keeping log keys
// consistent for aggregation.
package logger
