// Package usage enforces per-tier monthly campaign quotas and feeds the
// quota-band notifications.
//
// Each subscription tier maps to a Plan with a monthly campaign cap
// (Unlimited disables the cap). A Meter converts the raw count of
// campaigns created this month into a UsageInfo reading and, when
// consumption reaches 80 or 100 percent of the cap, asks its Notifier
// (the notifications dispatcher) to alert the user.
//
// Basic usage:
//
//	meter := usage.NewMeter(dispatcher)
//
//	// Before creating a campaign:
//	if err := meter.CanCreate(ctx, user, usedThisMonth); err != nil {
//	    // quota exhausted
//	}
//
//	// After creating one, report the new count:
//	info, err := meter.Check(ctx, user, usedThisMonth+1)
//
// Check fires the band notification itself; callers only supply the
// current count.
package usage
