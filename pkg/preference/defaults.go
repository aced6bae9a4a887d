package preference

import (
	"fmt"

	"github.com/solara-ai/notify/pkg/notifications"
)

// defaultMatrix is the compiled-in product policy for brand-new users:
// completion and failure events everywhere, low-priority events email-only
// or off, "started" events in-app only. It is read-only configuration and
// must be total over the type x channel cross product; init verifies that.
var defaultMatrix = map[notifications.Type]map[notifications.Channel]bool{
	notifications.TypeCampaignStarted: {
		notifications.ChannelEmail:   false,
		notifications.ChannelWebsite: true,
		notifications.ChannelBrowser: false,
	},
	notifications.TypeCampaignCompleted: {
		notifications.ChannelEmail:   true,
		notifications.ChannelWebsite: true,
		notifications.ChannelBrowser: true,
	},
	notifications.TypeCampaignFailed: {
		notifications.ChannelEmail:   true,
		notifications.ChannelWebsite: true,
		notifications.ChannelBrowser: true,
	},
	notifications.TypeSystemMaintenance: {
		notifications.ChannelEmail:   true,
		notifications.ChannelWebsite: true,
		notifications.ChannelBrowser: false,
	},
	notifications.TypeSubscriptionExpiry: {
		notifications.ChannelEmail:   true,
		notifications.ChannelWebsite: true,
		notifications.ChannelBrowser: false,
	},
	notifications.TypeUsageLimitWarning: {
		notifications.ChannelEmail:   false,
		notifications.ChannelWebsite: true,
		notifications.ChannelBrowser: true,
	},
	notifications.TypeUsageLimitReached: {
		notifications.ChannelEmail:   true,
		notifications.ChannelWebsite: true,
		notifications.ChannelBrowser: true,
	},
	notifications.TypeNewFeatures: {
		notifications.ChannelEmail:   true,
		notifications.ChannelWebsite: false,
		notifications.ChannelBrowser: false,
	},
	notifications.TypeMarketing: {
		notifications.ChannelEmail:   false,
		notifications.ChannelWebsite: false,
		notifications.ChannelBrowser: false,
	},
}

func init() {
	// A hole in the matrix is a defect, not a valid "unset" state. Fail
	// at process start rather than silently treating it as false.
	for _, t := range notifications.Types() {
		row, ok := defaultMatrix[t]
		if !ok {
			panic(fmt.Sprintf("preference: default matrix is missing type %q", t))
		}
		for _, c := range notifications.Channels() {
			if _, ok := row[c]; !ok {
				panic(fmt.Sprintf("preference: default matrix is missing (%q, %q)", t, c))
			}
		}
	}
}

// DefaultEnabled returns the compiled-in default for a (type, channel)
// pair. Panics on pairs outside the closed sets; init guarantees every
// valid pair is present.
func DefaultEnabled(t notifications.Type, c notifications.Channel) bool {
	row, ok := defaultMatrix[t]
	if !ok {
		panic(fmt.Sprintf("preference: no default for type %q", t))
	}
	enabled, ok := row[c]
	if !ok {
		panic(fmt.Sprintf("preference: no default for (%q, %q)", t, c))
	}
	return enabled
}

// DefaultMatrix returns a copy of the full compiled-in default matrix.
func DefaultMatrix() Matrix {
	m := make(Matrix, len(defaultMatrix))
	for t, row := range defaultMatrix {
		m[t] = make(map[notifications.Channel]bool, len(row))
		for c, enabled := range row {
			m[t][c] = enabled
		}
	}
	return m
}
