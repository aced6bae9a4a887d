package usage

// Unlimited marks a plan with no monthly campaign cap.
const Unlimited int64 = -1

// Plan describes a subscription tier and its monthly campaign quota.
type Plan struct {
	Tier          string
	Name          string
	CampaignLimit int64
}

// IsUnlimited reports whether the plan has no campaign cap.
func (p Plan) IsUnlimited() bool {
	return p.CampaignLimit == Unlimited
}

// Registry maps a subscription tier to its plan. Treated as immutable
// after startup; thread-safety depends on that.
type Registry map[string]Plan

// DefaultRegistry returns the built-in tier quotas.
func DefaultRegistry() Registry {
	return Registry{
		"free":       {Tier: "free", Name: "Free", CampaignLimit: 5},
		"premium":    {Tier: "premium", Name: "Premium", CampaignLimit: 50},
		"business":   {Tier: "business", Name: "Business", CampaignLimit: 200},
		"enterprise": {Tier: "enterprise", Name: "Enterprise", CampaignLimit: Unlimited},
	}
}

// Plan looks up the plan for a subscription tier.
func (r Registry) Plan(tier string) (Plan, bool) {
	p, ok := r[tier]
	return p, ok
}
