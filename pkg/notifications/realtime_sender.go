package notifications

import (
	"context"
	"fmt"
	"time"
)

// RealtimePublisher pushes a structured event to a per-user logical
// channel. Fire-and-forget: when the user has no active connection the
// event is dropped and the publish still succeeds. Implemented by
// broadcast.UserHub.
type RealtimePublisher interface {
	Publish(ctx context.Context, userID, event string, payload any) error
}

// Realtime event names consumed by the frontend socket client.
const (
	EventNotification        = "notification"
	EventBrowserNotification = "browser_notification"
)

// WebsitePayload is the event body for in-app feed updates.
type WebsitePayload struct {
	ID        string         `json:"id"`
	Type      Type           `json:"type"`
	Title     string         `json:"title"`
	Message   string         `json:"message"`
	Data      map[string]any `json:"data,omitempty"`
	Status    Status         `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
}

// BrowserPayload is the richer event body for native OS push/toast
// rendering. Tag de-duplicates toasts for the same campaign on the client.
type BrowserPayload struct {
	Title              string         `json:"title"`
	Message            string         `json:"message"`
	Icon               string         `json:"icon"`
	Badge              string         `json:"badge"`
	Tag                string         `json:"tag"`
	RequireInteraction bool           `json:"require_interaction"`
	Data               map[string]any `json:"data,omitempty"`
}

// RealtimeSender delivers website and browser channel notifications over
// the live-push transport. Both channels share one transport; only the
// event shape differs.
type RealtimeSender struct {
	publisher RealtimePublisher
	icon      string
}

// RealtimeSenderOption configures a RealtimeSender.
type RealtimeSenderOption func(*RealtimeSender)

// WithIcon overrides the icon path attached to browser notifications.
func WithIcon(path string) RealtimeSenderOption {
	return func(s *RealtimeSender) {
		s.icon = path
	}
}

// NewRealtimeSender creates the realtime channel sender.
func NewRealtimeSender(publisher RealtimePublisher, opts ...RealtimeSenderOption) *RealtimeSender {
	s := &RealtimeSender{
		publisher: publisher,
		icon:      "/favicon.ico",
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *RealtimeSender) Send(ctx context.Context, notif Notification) error {
	switch notif.Channel {
	case ChannelWebsite:
		payload := WebsitePayload{
			ID:        notif.ID,
			Type:      notif.Type,
			Title:     notif.Title,
			Message:   notif.Message,
			Data:      notif.Data,
			Status:    notif.Status,
			CreatedAt: notif.CreatedAt,
		}
		if err := s.publisher.Publish(ctx, notif.UserID, EventNotification, payload); err != nil {
			return NewDeliveryError(ChannelWebsite, err)
		}
		return nil

	case ChannelBrowser:
		payload := BrowserPayload{
			Title:   notif.Title,
			Message: notif.Message,
			Icon:    s.icon,
			Badge:   s.icon,
			Tag:     browserTag(notif),
			Data:    notif.Data,
		}
		if err := s.publisher.Publish(ctx, notif.UserID, EventBrowserNotification, payload); err != nil {
			return NewDeliveryError(ChannelBrowser, err)
		}
		return nil

	default:
		return NewDeliveryError(notif.Channel, fmt.Errorf("%w: realtime sender cannot deliver %q", ErrUnknownChannel, notif.Channel))
	}
}

// browserTag derives the client-side dedup tag: toasts for the same
// campaign collapse, everything else collapses per event type.
func browserTag(notif Notification) string {
	if id := notif.CampaignID(); id != "" {
		return "campaign_" + id
	}
	return string(notif.Type)
}
