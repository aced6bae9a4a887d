package preference

import "context"

// Storage persists preference rows. Rows are exclusively owned by the
// Store; nothing else writes them.
type Storage interface {
	// ListByUser returns all stored rows for a user.
	ListByUser(ctx context.Context, userID string) ([]Preference, error)

	// ReplaceAll atomically discards every stored row for the user and
	// inserts the given set. Concurrent readers must never observe the
	// transient empty state mid-replace. An empty set is valid.
	ReplaceAll(ctx context.Context, userID string, prefs []Preference) error

	// CountByUser returns how many rows the user has stored.
	CountByUser(ctx context.Context, userID string) (int, error)
}
