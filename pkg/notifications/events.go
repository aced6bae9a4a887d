package notifications

import (
	"context"
	"fmt"
)

// User is the narrow contract event sources must provide. The dispatcher
// must not depend on any other user fields.
type User struct {
	ID               string
	SubscriptionTier string
}

// CampaignStarted notifies the user that campaign generation began.
func (d *Dispatcher) CampaignStarted(ctx context.Context, user User, campaignID, campaignTitle string) error {
	return d.Send(ctx, Dispatch{
		UserID:  user.ID,
		Type:    TypeCampaignStarted,
		Title:   "🚀 Campaign Started",
		Message: fmt.Sprintf("Your campaign %q is being generated. We'll let you know when it's ready.", campaignTitle),
		Data:    map[string]any{"campaign_id": campaignID, "campaign_title": campaignTitle},
	})
}

// CampaignCompleted notifies the user that their campaign is ready.
func (d *Dispatcher) CampaignCompleted(ctx context.Context, user User, campaignID, campaignTitle string) error {
	return d.Send(ctx, Dispatch{
		UserID:  user.ID,
		Type:    TypeCampaignCompleted,
		Title:   "🎉 Campaign Complete!",
		Message: fmt.Sprintf("Your campaign %q has been successfully generated and is ready for use.", campaignTitle),
		Data:    map[string]any{"campaign_id": campaignID, "campaign_title": campaignTitle},
	})
}

// CampaignFailed notifies the user that campaign generation failed.
func (d *Dispatcher) CampaignFailed(ctx context.Context, user User, campaignID, cause string) error {
	return d.Send(ctx, Dispatch{
		UserID:  user.ID,
		Type:    TypeCampaignFailed,
		Title:   "❌ Campaign Failed",
		Message: fmt.Sprintf("Your campaign generation failed: %s. Please try again or contact support.", cause),
		Data:    map[string]any{"campaign_id": campaignID, "error": cause},
	})
}

// UsageLimit notifies the user about monthly quota consumption. Crossing
// into [80,100) triggers a warning, [100,∞) triggers the reached event,
// below 80 nothing is sent. Repeated calls at the same percentage are not
// de-duplicated here; callers that need a notify-once-per-band guarantee
// must track the last notified band themselves.
func (d *Dispatcher) UsageLimit(ctx context.Context, user User, percentage int) error {
	data := map[string]any{
		"percentage":        percentage,
		"subscription_tier": user.SubscriptionTier,
	}

	switch {
	case percentage >= 100:
		return d.Send(ctx, Dispatch{
			UserID:  user.ID,
			Type:    TypeUsageLimitReached,
			Title:   "🚨 Monthly Limit Reached",
			Message: fmt.Sprintf("You've reached your monthly campaign limit for the %s plan. Upgrade to continue creating campaigns.", user.SubscriptionTier),
			Data:    data,
		})
	case percentage >= 80:
		return d.Send(ctx, Dispatch{
			UserID:  user.ID,
			Type:    TypeUsageLimitWarning,
			Title:   "⚠️ Approaching Monthly Limit",
			Message: fmt.Sprintf("You've used %d%% of your monthly campaign limit. Consider upgrading to avoid interruptions.", percentage),
			Data:    data,
		})
	}

	return nil
}
