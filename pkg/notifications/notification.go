package notifications

import (
	"time"
)

// Type identifies the domain event a notification describes.
// The set is closed: adding a type requires extending the default
// preference matrix in pkg/preference as well.
type Type string

const (
	TypeCampaignStarted    Type = "campaign_started"
	TypeCampaignCompleted  Type = "campaign_completed"
	TypeCampaignFailed     Type = "campaign_failed"
	TypeSystemMaintenance  Type = "system_maintenance"
	TypeSubscriptionExpiry Type = "subscription_expiry"
	TypeUsageLimitWarning  Type = "usage_limit_warning"
	TypeUsageLimitReached  Type = "usage_limit_reached"
	TypeNewFeatures        Type = "new_features"
	TypeMarketing          Type = "marketing"
)

// Types returns all known notification types in a stable order.
func Types() []Type {
	return []Type{
		TypeCampaignStarted,
		TypeCampaignCompleted,
		TypeCampaignFailed,
		TypeSystemMaintenance,
		TypeSubscriptionExpiry,
		TypeUsageLimitWarning,
		TypeUsageLimitReached,
		TypeNewFeatures,
		TypeMarketing,
	}
}

// Valid reports whether t is a member of the closed type set.
func (t Type) Valid() bool {
	switch t {
	case TypeCampaignStarted, TypeCampaignCompleted, TypeCampaignFailed,
		TypeSystemMaintenance, TypeSubscriptionExpiry,
		TypeUsageLimitWarning, TypeUsageLimitReached,
		TypeNewFeatures, TypeMarketing:
		return true
	}
	return false
}

// Channel is a delivery mechanism. Website and browser are both pushed
// over the realtime transport; only the downstream presentation differs.
type Channel string

const (
	ChannelEmail   Channel = "email"
	ChannelWebsite Channel = "website"
	ChannelBrowser Channel = "browser"
)

// Channels returns all delivery channels in a stable order.
func Channels() []Channel {
	return []Channel{ChannelEmail, ChannelWebsite, ChannelBrowser}
}

// Valid reports whether c is a known delivery channel.
func (c Channel) Valid() bool {
	switch c {
	case ChannelEmail, ChannelWebsite, ChannelBrowser:
		return true
	}
	return false
}

// Status is the delivery lifecycle state of a single notification record.
type Status string

const (
	StatusPending Status = "pending"
	StatusSent    Status = "sent"
	StatusFailed  Status = "failed"
	StatusRead    Status = "read"
)

// statusTransitions is the full lifecycle: pending is the only initial
// state, failed is terminal, and read is reachable only from sent.
var statusTransitions = map[Status]map[Status]bool{
	StatusPending: {StatusSent: true, StatusFailed: true},
	StatusSent:    {StatusRead: true},
	StatusFailed:  {},
	StatusRead:    {},
}

// CanTransition reports whether the lifecycle permits moving from s to next.
func (s Status) CanTransition(next Status) bool {
	return statusTransitions[s][next]
}

// Notification is one persisted delivery attempt, scoped to exactly one
// channel. A single dispatch fans out into at most one record per enabled
// channel.
type Notification struct {
	ID           string         `json:"id"`
	UserID       string         `json:"user_id"`
	Type         Type           `json:"type"`
	Channel      Channel        `json:"channel"`
	Title        string         `json:"title"`
	Message      string         `json:"message"`
	Data         map[string]any `json:"data,omitempty"`
	Status       Status         `json:"status"`
	ErrorMessage string         `json:"error_message,omitempty"`
	SentAt       *time.Time     `json:"sent_at,omitempty"`
	ReadAt       *time.Time     `json:"read_at,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// IsRead reports whether the user has acknowledged the notification.
func (n *Notification) IsRead() bool {
	return n.Status == StatusRead
}

// CampaignID extracts the campaign identifier from the payload, if any.
func (n *Notification) CampaignID() string {
	if n.Data == nil {
		return ""
	}
	if id, ok := n.Data["campaign_id"].(string); ok {
		return id
	}
	return ""
}
