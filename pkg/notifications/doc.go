// Package notifications implements the multi-channel notification fan-out
// engine: it takes a domain event (campaign lifecycle, usage limits) and,
// per user preference, dispatches it across independent delivery channels
// with per-channel tracking and failure isolation.
//
// # Architecture
//
//   - Storage: persists one record per (dispatch, channel) with a
//     pending/sent/failed/read lifecycle
//   - Sender: one delivery mechanism per channel (email, realtime push)
//   - Dispatcher: orchestrates preference resolution, persistence and
//     delivery, and exposes the inbox read side
//
// # Basic Usage
//
//	storage := notifications.NewMemoryStorage()
//	prefs := preference.NewStore(preference.NewMemoryStorage())
//	hub := broadcast.NewUserHub[broadcast.Event](64)
//
//	dispatcher := notifications.NewDispatcher(storage, prefs,
//	    notifications.WithSender(notifications.ChannelEmail,
//	        notifications.NewEmailSender(mailer, users)),
//	    notifications.WithSender(notifications.ChannelWebsite, realtime),
//	    notifications.WithSender(notifications.ChannelBrowser, realtime),
//	)
//
//	err := dispatcher.CampaignCompleted(ctx, notifications.User{
//	    ID:               "u1",
//	    SubscriptionTier: "premium",
//	}, campaignID, campaignTitle)
//
// # Failure isolation
//
// A sender failure marks that channel's record failed and processing
// continues with the remaining channels; Send only returns an error for
// structural problems (unknown type, storage unavailable for the pending
// write). Callers therefore never need to guard their main flow against
// notification side effects.
package notifications
