package notifications

import (
	"context"
	"time"
)

// Storage handles notification persistence. The dispatcher is the only
// writer; the inbox read side may only move website records from sent to
// read. Implementations must enforce the status lifecycle.
type Storage interface {
	// Create stores a new notification. The record must already carry an
	// ID, user, type, channel and the pending status.
	Create(ctx context.Context, notif Notification) error

	// MarkSent transitions a pending record to sent and stamps sentAt.
	MarkSent(ctx context.Context, id string, at time.Time) error

	// MarkFailed transitions a pending record to failed and records the
	// human-readable delivery failure cause.
	MarkFailed(ctx context.Context, id string, cause string) error

	// MarkRead transitions one of the user's sent website records to read.
	// Unknown IDs and records owned by other users are a silent no-op so
	// that existence is never leaked across users. Repeated calls on the
	// same record are idempotent.
	MarkRead(ctx context.Context, userID, id string) error

	// MarkAllRead transitions all of the user's sent website records to
	// read and returns how many records changed.
	MarkAllRead(ctx context.Context, userID string) (int, error)

	// List returns the user's most recent website records, newest first,
	// capped at limit.
	List(ctx context.Context, userID string, limit int) ([]Notification, error)

	// CountUnread counts the user's website records still in sent status.
	CountUnread(ctx context.Context, userID string) (int, error)

	// Get retrieves a single record scoped to its owner.
	Get(ctx context.Context, userID, id string) (*Notification, error)
}
