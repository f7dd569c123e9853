package plan

// Unlimited marks a quota with no cap.
const Unlimited = 0

// Limits holds the enforced entitlements for a tier. Quota fields use
// Unlimited (zero) for "no cap". These values are the server-side source of
// truth; marketing copy advertising larger numbers is display-only and not
// represented here.
type Limits struct {
	RadiusKm         float64
	AvailabilityDays int
	TendersPerMonth  int
	QuotesPerTender  int
}

// TendersUnlimited reports whether tender creation is uncapped.
func (l Limits) TendersUnlimited() bool { return l.TendersPerMonth == Unlimited }

// QuotesUnlimited reports whether quote submission is uncapped.
func (l Limits) QuotesUnlimited() bool { return l.QuotesPerTender == Unlimited }

var limitsByTier = map[Tier]Limits{
	TierFree: {
		RadiusKm:         20,
		AvailabilityDays: 30,
		TendersPerMonth:  1,
		QuotesPerTender:  3,
	},
	TierPremium: {
		RadiusKm:         100,
		AvailabilityDays: 90,
		TendersPerMonth:  Unlimited,
		QuotesPerTender:  Unlimited,
	},
}

// LimitsFor returns the limits for a tier, defaulting to free for unknown
// tiers. The result is a copy; callers cannot mutate the table.
func LimitsFor(tier Tier) Limits {
	if l, ok := limitsByTier[tier]; ok {
		return l
	}
	return limitsByTier[TierFree]
}
