package notifications

import "errors"

var (
	// ErrUnknownType is returned when dispatch is asked to deliver an
	// event outside the closed type set. This is a structural error and
	// propagates to the caller.
	ErrUnknownType = errors.New("notifications.errors.unknown_type")

	// ErrUnknownChannel is returned when a record references a channel
	// no sender is registered for.
	ErrUnknownChannel = errors.New("notifications.errors.unknown_channel")

	// ErrNotificationNotFound is returned by storage lookups.
	ErrNotificationNotFound = errors.New("notifications.errors.not_found")

	// ErrInvalidTransition is returned when a status update would violate
	// the delivery lifecycle.
	ErrInvalidTransition = errors.New("notifications.errors.invalid_status_transition")
)
