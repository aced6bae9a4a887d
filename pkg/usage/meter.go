package usage

import (
	"context"
	"log/slog"

	"github.com/solara-ai/notify/pkg/logger"
	"github.com/solara-ai/notify/pkg/notifications"
)

// UsageInfo is one quota reading. Percent is -1 for unlimited plans,
// otherwise 0-100 (consumption past the cap is clamped).
type UsageInfo struct {
	Current int64 `json:"current"`
	Limit   int64 `json:"limit"`
	Percent int   `json:"percent"`
}

// Notifier receives quota-band events. Implemented by
// notifications.Dispatcher.
type Notifier interface {
	UsageLimit(ctx context.Context, user notifications.User, percentage int) error
}

// Meter turns raw monthly campaign counts into quota readings and fires
// the warning/reached notifications when consumption crosses a band.
type Meter struct {
	plans    Registry
	notifier Notifier
	logger   *slog.Logger
}

// MeterOption configures a Meter.
type MeterOption func(*Meter)

// WithRegistry overrides the built-in tier quotas.
func WithRegistry(r Registry) MeterOption {
	return func(m *Meter) {
		if r != nil {
			m.plans = r
		}
	}
}

// WithMeterLogger sets the logger for the Meter.
func WithMeterLogger(log *slog.Logger) MeterOption {
	return func(m *Meter) {
		m.logger = log
	}
}

// NewMeter creates a quota meter that reports bands to notifier.
func NewMeter(notifier Notifier, opts ...MeterOption) *Meter {
	m := &Meter{
		plans:    DefaultRegistry(),
		notifier: notifier,
		logger:   slog.Default(),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Check computes the user's quota consumption and notifies the band it
// falls into: below 80 percent nothing, 80-99 a warning, 100 and above the
// reached event. The notifier decides delivery; a notification failure is
// logged but never fails the reading. Repeated calls in the same band
// notify again; callers needing once-per-band must track the last band.
func (m *Meter) Check(ctx context.Context, user notifications.User, used int64) (UsageInfo, error) {
	plan, ok := m.plans.Plan(user.SubscriptionTier)
	if !ok {
		return UsageInfo{}, ErrPlanNotFound
	}

	if plan.IsUnlimited() {
		return UsageInfo{Current: used, Limit: Unlimited, Percent: -1}, nil
	}

	info := UsageInfo{
		Current: used,
		Limit:   plan.CampaignLimit,
		Percent: percent(used, plan.CampaignLimit),
	}

	if info.Percent >= 80 && m.notifier != nil {
		if err := m.notifier.UsageLimit(ctx, user, info.Percent); err != nil {
			m.logger.LogAttrs(ctx, slog.LevelError, "Failed to send usage limit notification",
				logger.UserID(user.ID),
				logger.Error(err),
			)
		}
	}

	return info, nil
}

// CanCreate reports whether the user may start another campaign this
// month. Unknown tiers are rejected rather than treated as unlimited.
func (m *Meter) CanCreate(ctx context.Context, user notifications.User, used int64) error {
	plan, ok := m.plans.Plan(user.SubscriptionTier)
	if !ok {
		return ErrPlanNotFound
	}

	if plan.IsUnlimited() {
		return nil
	}

	if used >= plan.CampaignLimit {
		return ErrLimitExceeded
	}

	return nil
}

func percent(used, limit int64) int {
	if limit <= 0 {
		return 100
	}
	return min(int((used*100)/limit), 100)
}
