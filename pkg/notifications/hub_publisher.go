package notifications

import (
	"context"

	"github.com/solara-ai/notify/pkg/broadcast"
)

// HubPublisher adapts a broadcast.UserHub of events to the
// RealtimePublisher interface used by RealtimeSender.
type HubPublisher struct {
	hub *broadcast.UserHub[broadcast.Event]
}

// NewHubPublisher wraps hub as a realtime publisher.
func NewHubPublisher(hub *broadcast.UserHub[broadcast.Event]) *HubPublisher {
	return &HubPublisher{hub: hub}
}

func (p *HubPublisher) Publish(ctx context.Context, userID, event string, payload any) error {
	return p.hub.Publish(ctx, userID, broadcast.Event{
		Name:    event,
		Payload: payload,
	})
}
