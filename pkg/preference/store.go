package preference

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/solara-ai/notify/pkg/logger"
	"github.com/solara-ai/notify/pkg/notifications"
)

// Store resolves effective per-user channel enablement and persists user
// overrides. It implements notifications.PreferenceSource.
type Store struct {
	storage Storage
	logger  *slog.Logger
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithLogger sets the logger for the Store.
func WithLogger(log *slog.Logger) StoreOption {
	return func(s *Store) {
		s.logger = log
	}
}

// NewStore creates a preference store over the given storage.
func NewStore(storage Storage, opts ...StoreOption) *Store {
	s := &Store{
		storage: storage,
		logger:  slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Effective returns the resolved preference matrix for a user: stored rows
// win over the compiled-in defaults, and the result always enumerates the
// full type x channel cross product regardless of how many rows exist.
func (s *Store) Effective(ctx context.Context, userID string) (Matrix, error) {
	rows, err := s.storage.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load preferences: %w", err)
	}

	matrix := DefaultMatrix()
	for _, row := range rows {
		if !row.Type.Valid() || !row.Channel.Valid() {
			// Rows for retired types/channels are ignored on read; the
			// next Replace drops them.
			continue
		}
		matrix[row.Type][row.Channel] = row.Enabled
	}

	return matrix, nil
}

// Replace atomically swaps all of the user's stored rows for the given
// entries. Pairs absent from the new set revert to defaults on the next
// read; an empty set reverts everything.
func (s *Store) Replace(ctx context.Context, userID string, entries []Entry) error {
	now := time.Now()
	rows := make([]Preference, 0, len(entries))
	for _, e := range entries {
		if !e.Type.Valid() {
			return fmt.Errorf("%w: %q", notifications.ErrUnknownType, e.Type)
		}
		if !e.Channel.Valid() {
			return fmt.Errorf("%w: %q", notifications.ErrUnknownChannel, e.Channel)
		}
		rows = append(rows, Preference{
			ID:        uuid.New().String(),
			UserID:    userID,
			Type:      e.Type,
			Channel:   e.Channel,
			Enabled:   e.Enabled,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	if err := s.storage.ReplaceAll(ctx, userID, rows); err != nil {
		return fmt.Errorf("failed to replace preferences: %w", err)
	}

	s.logger.LogAttrs(ctx, slog.LevelInfo, "Replaced notification preferences",
		logger.UserID(userID),
		slog.Int("rows", len(rows)),
	)
	return nil
}

// EnsureDefaults materializes one row per (type, channel) pair from the
// default matrix for a user with no stored rows. No-op when any rows
// already exist. Reads do not require this: Effective already falls back
// to defaults for missing rows.
func (s *Store) EnsureDefaults(ctx context.Context, userID string) error {
	count, err := s.storage.CountByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to count preferences: %w", err)
	}
	if count > 0 {
		return nil
	}

	now := time.Now()
	var rows []Preference
	for _, t := range notifications.Types() {
		for _, c := range notifications.Channels() {
			rows = append(rows, Preference{
				ID:        uuid.New().String(),
				UserID:    userID,
				Type:      t,
				Channel:   c,
				Enabled:   DefaultEnabled(t, c),
				CreatedAt: now,
				UpdatedAt: now,
			})
		}
	}

	if err := s.storage.ReplaceAll(ctx, userID, rows); err != nil {
		return fmt.Errorf("failed to initialize default preferences: %w", err)
	}

	s.logger.LogAttrs(ctx, slog.LevelInfo, "Initialized default notification preferences",
		logger.UserID(userID),
	)
	return nil
}

// EnabledChannels filters candidates down to the channels the user has
// enabled for the given type, preserving candidate order.
func (s *Store) EnabledChannels(ctx context.Context, userID string, t notifications.Type, candidates []notifications.Channel) ([]notifications.Channel, error) {
	matrix, err := s.Effective(ctx, userID)
	if err != nil {
		return nil, err
	}

	enabled := make([]notifications.Channel, 0, len(candidates))
	for _, c := range candidates {
		if matrix.Enabled(t, c) {
			enabled = append(enabled, c)
		}
	}
	return enabled, nil
}
