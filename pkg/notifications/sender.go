package notifications

import (
	"context"
	"fmt"
)

// Sender delivers one already-persisted notification over one channel.
// Senders do not decide whether to send; the dispatcher only invokes them
// for channels the user has enabled.
type Sender interface {
	Send(ctx context.Context, notif Notification) error
}

// DeliveryError is a channel-specific transport failure. The dispatcher
// records it as a failed status on that channel's record and never
// propagates it to the caller.
type DeliveryError struct {
	Channel Channel
	Cause   error
}

// NewDeliveryError wraps a transport failure for the given channel.
func NewDeliveryError(channel Channel, cause error) *DeliveryError {
	return &DeliveryError{Channel: channel, Cause: cause}
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("delivery via %s failed: %v", e.Channel, e.Cause)
}

func (e *DeliveryError) Unwrap() error {
	return e.Cause
}
