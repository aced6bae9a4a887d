package preference

import "github.com/solara-ai/notify/pkg/notifications"

// TypeInfo is descriptive metadata about one notification type, consumed
// by settings UIs. Purely presentational; not subject to the preference
// data model invariants.
type TypeInfo struct {
	Type        notifications.Type `json:"type"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Category    string             `json:"category"`
}

// ChannelInfo is descriptive metadata about one delivery channel.
type ChannelInfo struct {
	Channel     notifications.Channel `json:"channel"`
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Icon        string                `json:"icon"`
}

// Catalog describes every known type and channel with human labels.
type Catalog struct {
	Types    []TypeInfo    `json:"types"`
	Channels []ChannelInfo `json:"channels"`
}

// NewCatalog returns the static settings catalog.
func NewCatalog() Catalog {
	return Catalog{
		Types: []TypeInfo{
			{
				Type:        notifications.TypeCampaignCompleted,
				Title:       "Campaign Completed",
				Description: "When your AI-generated campaign is ready",
				Category:    "Campaign Updates",
			},
			{
				Type:        notifications.TypeCampaignFailed,
				Title:       "Campaign Failed",
				Description: "When campaign generation encounters an error",
				Category:    "Campaign Updates",
			},
			{
				Type:        notifications.TypeCampaignStarted,
				Title:       "Campaign Started",
				Description: "When your campaign generation begins",
				Category:    "Campaign Updates",
			},
			{
				Type:        notifications.TypeUsageLimitWarning,
				Title:       "Usage Limit Warning",
				Description: "When approaching your monthly campaign limit",
				Category:    "Account & Billing",
			},
			{
				Type:        notifications.TypeUsageLimitReached,
				Title:       "Usage Limit Reached",
				Description: "When you've reached your monthly campaign limit",
				Category:    "Account & Billing",
			},
			{
				Type:        notifications.TypeSubscriptionExpiry,
				Title:       "Subscription Expiry",
				Description: "When your subscription is about to expire",
				Category:    "Account & Billing",
			},
			{
				Type:        notifications.TypeSystemMaintenance,
				Title:       "System Maintenance",
				Description: "Important system updates and maintenance notices",
				Category:    "System",
			},
			{
				Type:        notifications.TypeNewFeatures,
				Title:       "New Features",
				Description: "Announcements about new features and improvements",
				Category:    "Product Updates",
			},
			{
				Type:        notifications.TypeMarketing,
				Title:       "Marketing & Promotions",
				Description: "Special offers, tips, and promotional content",
				Category:    "Marketing",
			},
		},
		Channels: []ChannelInfo{
			{
				Channel:     notifications.ChannelEmail,
				Title:       "Email",
				Description: "Receive notifications via email",
				Icon:        "mail",
			},
			{
				Channel:     notifications.ChannelWebsite,
				Title:       "Website",
				Description: "Show notifications in the app",
				Icon:        "globe",
			},
			{
				Channel:     notifications.ChannelBrowser,
				Title:       "Browser",
				Description: "Send browser push notifications",
				Icon:        "bell",
			},
		},
	}
}
