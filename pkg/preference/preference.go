package preference

import (
	"time"

	"github.com/solara-ai/notify/pkg/notifications"
)

// Preference is one stored per-user override: whether a notification type
// is enabled on one channel. Unique per (user, type, channel). A missing
// row means "use the compiled-in default", never "disabled".
type Preference struct {
	ID        string                `json:"id"`
	UserID    string                `json:"user_id"`
	Type      notifications.Type    `json:"type"`
	Channel   notifications.Channel `json:"channel"`
	Enabled   bool                  `json:"enabled"`
	CreatedAt time.Time             `json:"created_at"`
	UpdatedAt time.Time             `json:"updated_at"`
}

// Entry is the write-side shape for Replace: a bare (type, channel,
// enabled) triple without storage bookkeeping.
type Entry struct {
	Type    notifications.Type    `json:"type"`
	Channel notifications.Channel `json:"channel"`
	Enabled bool                  `json:"enabled"`
}

// Matrix is a resolved preference set covering the full type x channel
// cross product. Consumers never see gaps.
type Matrix map[notifications.Type]map[notifications.Channel]bool

// Enabled reports the resolved value for one (type, channel) pair.
func (m Matrix) Enabled(t notifications.Type, c notifications.Channel) bool {
	return m[t][c]
}
