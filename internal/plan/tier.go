// Package plan classifies accounts into entitlement tiers and maps tiers to
// their enforced limits. The tier is recomputed from the stored account row
// on every request and never cached.
package plan

import "strings"

// Tier enumerates entitlement tiers.
type Tier string

const (
	TierFree    Tier = "free"
	TierPremium Tier = "premium"
)

// TierSignal carries the heterogeneous subscription fields a tier is derived
// from. The legacy column names stay in the repo layer; this is the only
// shape the rest of the code sees.
type TierSignal struct {
	IsPremium           *bool
	SubscriptionStatus  string
	ActivePlan          string
	SubcontractorPlan   string
	SubcontractorStatus string
}

// Status values treated as premium, matched case-insensitively.
var premiumStatuses = map[string]struct{}{
	"active":   {},
	"trialing": {},
}

// Plan names treated as premium, matched case-insensitively.
var premiumPlans = map[string]struct{}{
	"pro":     {},
	"premium": {},
}

// TierFor derives the entitlement tier from a signal. A true IsPremium flag
// wins outright; otherwise any premium-like status or plan value in any of
// the legacy fields yields premium. Every call site (discovery, quotas,
// availability) goes through this one function so different endpoints can
// never disagree about the same account.
func TierFor(sig TierSignal) Tier {
	if sig.IsPremium != nil && *sig.IsPremium {
		return TierPremium
	}
	if isPremiumStatus(sig.SubscriptionStatus) || isPremiumStatus(sig.SubcontractorStatus) {
		return TierPremium
	}
	if isPremiumPlan(sig.ActivePlan) || isPremiumPlan(sig.SubcontractorPlan) {
		return TierPremium
	}
	return TierFree
}

func isPremiumStatus(s string) bool {
	_, ok := premiumStatuses[strings.ToLower(strings.TrimSpace(s))]
	return ok
}

func isPremiumPlan(s string) bool {
	_, ok := premiumPlans[strings.ToLower(strings.TrimSpace(s))]
	return ok
}
