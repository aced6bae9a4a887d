package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// UserID records the user identifier under the key "user_id".
// If id is nil, it returns an empty Attr.
func UserID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("user_id", id)
}

// NotificationID records the notification identifier under the key
// "notification_id".
func NotificationID(id string) slog.Attr {
	return slog.String("notification_id", id)
}

// NotificationChannel records the delivery channel under the key "channel".
func NotificationChannel(channel string) slog.Attr {
	return slog.String("channel", channel)
}

// EventType records the event type under the key "event_type".
func EventType(eventType string) slog.Attr {
	return slog.String("event_type", eventType)
}

// CampaignID records the campaign identifier under the key "campaign_id".
func CampaignID(id string) slog.Attr {
	return slog.String("campaign_id", id)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
