package notifications

// CandidateChannels returns the channels even considered for a given
// notification type, before per-user enablement filtering. This is product
// policy distinct from the enablement defaults in pkg/preference: marketing
// style events are only ever offered over email, usage alerts are realtime
// only, and completion/failure events fan out everywhere.
func CandidateChannels(t Type) []Channel {
	switch t {
	case TypeCampaignCompleted, TypeCampaignFailed:
		return []Channel{ChannelWebsite, ChannelEmail, ChannelBrowser}
	case TypeSystemMaintenance, TypeSubscriptionExpiry:
		return []Channel{ChannelEmail, ChannelWebsite}
	case TypeUsageLimitWarning, TypeUsageLimitReached:
		return []Channel{ChannelWebsite, ChannelBrowser}
	case TypeNewFeatures, TypeMarketing:
		return []Channel{ChannelEmail}
	default:
		return []Channel{ChannelWebsite}
	}
}
