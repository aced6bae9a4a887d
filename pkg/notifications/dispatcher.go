package notifications

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/solara-ai/notify/pkg/logger"
)

// PreferenceSource resolves per-user channel enablement. Implemented by
// preference.Store.
type PreferenceSource interface {
	// EnsureDefaults materializes the default preference matrix for a
	// user that has no stored rows yet. Idempotent.
	EnsureDefaults(ctx context.Context, userID string) error

	// EnabledChannels filters candidates down to the channels the user
	// has enabled for the given type, preserving candidate order.
	EnabledChannels(ctx context.Context, userID string, t Type, candidates []Channel) ([]Channel, error)
}

// Dispatch describes one logical "notify this user of this event" call.
// Channels, when non-empty, overrides the compiled-in candidate channel
// list for the type.
type Dispatch struct {
	UserID   string
	Type     Type
	Title    string
	Message  string
	Data     map[string]any
	Channels []Channel
}

// Dispatcher fans a domain event out across delivery channels with
// per-channel tracking and failure isolation. It owns all notification
// record writes; the inbox read side is exposed on the same type.
type Dispatcher struct {
	storage Storage
	prefs   PreferenceSource
	senders map[Channel]Sender
	logger  *slog.Logger
	now     func() time.Time
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithLogger sets the logger for the Dispatcher.
func WithLogger(log *slog.Logger) DispatcherOption {
	return func(d *Dispatcher) {
		d.logger = log
	}
}

// WithSender registers the delivery mechanism for one channel.
func WithSender(channel Channel, sender Sender) DispatcherOption {
	return func(d *Dispatcher) {
		d.senders[channel] = sender
	}
}

// WithClock overrides the time source, used by tests for deterministic
// sentAt stamps.
func WithClock(now func() time.Time) DispatcherOption {
	return func(d *Dispatcher) {
		d.now = now
	}
}

// NewDispatcher creates a dispatcher over the given storage and preference
// source. Channels without a registered sender fail delivery with
// ErrUnknownChannel rather than being skipped, so a wiring mistake shows up
// as failed records instead of silence.
func NewDispatcher(storage Storage, prefs PreferenceSource, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		storage: storage,
		prefs:   prefs,
		senders: make(map[Channel]Sender),
		logger:  slog.Default(),
		now:     time.Now,
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Send resolves the channel set for the event, persists one pending record
// per enabled channel, invokes the matching sender and tracks the outcome
// on that record. Sender failures are contained: one channel's outage never
// blocks or fails the others, and Send itself only returns an error for
// structural problems (unknown type, preference resolution failure, or the
// initial pending write).
func (d *Dispatcher) Send(ctx context.Context, dispatch Dispatch) error {
	if !dispatch.Type.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownType, dispatch.Type)
	}

	if err := d.prefs.EnsureDefaults(ctx, dispatch.UserID); err != nil {
		return fmt.Errorf("failed to initialize preferences: %w", err)
	}

	candidates := dispatch.Channels
	if len(candidates) == 0 {
		candidates = CandidateChannels(dispatch.Type)
	}

	enabled, err := d.prefs.EnabledChannels(ctx, dispatch.UserID, dispatch.Type, candidates)
	if err != nil {
		return fmt.Errorf("failed to resolve preferences: %w", err)
	}

	// Channels run sequentially so record ordering in storage stays
	// deterministic within one dispatch.
	for _, channel := range enabled {
		notif := Notification{
			ID:        uuid.New().String(),
			UserID:    dispatch.UserID,
			Type:      dispatch.Type,
			Channel:   channel,
			Title:     dispatch.Title,
			Message:   dispatch.Message,
			Data:      dispatch.Data,
			Status:    StatusPending,
			CreatedAt: d.now(),
		}

		// The pending write must be durable before the sender runs: a
		// crash between send and status update leaves a recoverable
		// pending row instead of losing the attempt.
		if err := d.storage.Create(ctx, notif); err != nil {
			return fmt.Errorf("failed to store notification: %w", err)
		}

		if err := d.deliver(ctx, notif); err != nil {
			d.logger.LogAttrs(ctx, slog.LevelError, "Notification delivery failed",
				logger.NotificationID(notif.ID),
				logger.UserID(notif.UserID),
				logger.NotificationChannel(string(channel)),
				logger.Error(err),
			)
			if err := d.storage.MarkFailed(ctx, notif.ID, err.Error()); err != nil {
				d.logger.LogAttrs(ctx, slog.LevelError, "Failed to record delivery failure",
					logger.NotificationID(notif.ID),
					logger.Error(err),
				)
			}
			continue
		}

		if err := d.storage.MarkSent(ctx, notif.ID, d.now()); err != nil {
			d.logger.LogAttrs(ctx, slog.LevelError, "Failed to record delivery success",
				logger.NotificationID(notif.ID),
				logger.Error(err),
			)
			continue
		}

		d.logger.LogAttrs(ctx, slog.LevelDebug, "Notification delivered",
			logger.NotificationID(notif.ID),
			logger.UserID(notif.UserID),
			logger.NotificationChannel(string(channel)),
		)
	}

	return nil
}

func (d *Dispatcher) deliver(ctx context.Context, notif Notification) error {
	sender, ok := d.senders[notif.Channel]
	if !ok {
		return NewDeliveryError(notif.Channel, ErrUnknownChannel)
	}
	return sender.Send(ctx, notif)
}

// List returns the user's in-app feed, newest first. A non-positive limit
// falls back to 20 entries.
func (d *Dispatcher) List(ctx context.Context, userID string, limit int) ([]Notification, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	return d.storage.List(ctx, userID, limit)
}

// CountUnread returns the number of in-app notifications the user has not
// acknowledged yet.
func (d *Dispatcher) CountUnread(ctx context.Context, userID string) (int, error) {
	return d.storage.CountUnread(ctx, userID)
}

// MarkRead acknowledges one in-app notification. Unknown or foreign IDs
// are a silent no-op.
func (d *Dispatcher) MarkRead(ctx context.Context, userID, id string) error {
	return d.storage.MarkRead(ctx, userID, id)
}

// MarkAllRead acknowledges all of the user's unread in-app notifications.
func (d *Dispatcher) MarkAllRead(ctx context.Context, userID string) error {
	_, err := d.storage.MarkAllRead(ctx, userID)
	return err
}

// DefaultListLimit caps inbox listings when the caller does not specify one.
const DefaultListLimit = 20
