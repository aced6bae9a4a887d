package usage

import "errors"

var (
	// ErrPlanNotFound is returned for subscription tiers outside the
	// registry.
	ErrPlanNotFound = errors.New("usage.errors.plan_not_found")

	// ErrLimitExceeded is returned by CanCreate once the monthly quota is
	// fully consumed.
	ErrLimitExceeded = errors.New("usage.errors.limit_exceeded")
)
