// Package quota enforces tender and quote quotas server-side, from the
// stored account row only; a client-supplied tier claim is never trusted.
package quota

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/jessebruzzese-sudo/TradeHub-sub002/internal/domain"
)

// Window is the rolling quota window. Counting slides back from the moment
// of submission; this is not a calendar-month boundary.
const Window = 30 * 24 * time.Hour

const (
	tenderLimitMessage = "Free plan includes 1 active tender per month."
	quoteLimitMessage  = "Free plan allows up to 3 quotes per tender. Upgrade for unlimited."
)

// Decision is the outcome of a quota check.
type Decision struct {
	Allowed bool
	Count   int
	Message string
}

func allowed(count int) Decision { return Decision{Allowed: true, Count: count} }

// Enforcer runs quota checks against the tender and quote stores.
type Enforcer struct {
	tenders domain.TenderRepository
	quotes  domain.QuoteRepository
	logger  zerolog.Logger
	now     func() time.Time
}

// NewEnforcer creates an Enforcer. now is the clock; pass nil for time.Now.
func NewEnforcer(tenders domain.TenderRepository, quotes domain.QuoteRepository, logger zerolog.Logger, now func() time.Time) *Enforcer {
	if now == nil {
		now = time.Now
	}
	return &Enforcer{tenders: tenders, quotes: quotes, logger: logger, now: now}
}

// CheckTenderCreation decides whether the owner may create another tender.
// Admins bypass the check; unlimited tiers are always allowed. Otherwise the
// owner's tenders in quota-relevant states within the trailing window are
// counted. A count-query failure fails open and is logged; the check never
// blocks on a store error.
func (e *Enforcer) CheckTenderCreation(ctx context.Context, owner *domain.User) Decision {
	if owner.IsAdmin() {
		return allowed(0)
	}
	limits := owner.Limits()
	if limits.TendersUnlimited() {
		return allowed(0)
	}

	since := e.now().Add(-Window)
	count, err := e.tenders.CountQuotaSince(ctx, owner.ID, since)
	if err != nil {
		e.logger.Error().Err(err).Str("user_id", owner.ID).Msg("tender quota count failed, allowing")
		return allowed(0)
	}
	if count >= limits.TendersPerMonth {
		return Decision{Allowed: false, Count: count, Message: tenderLimitMessage}
	}
	return allowed(count)
}

// CheckQuoteSubmission decides whether the user may submit another quote on
// the tender. Admins bypass; unlimited tiers are always allowed. On a count
// error the comparison is skipped and the submission goes through.
func (e *Enforcer) CheckQuoteSubmission(ctx context.Context, user *domain.User, tenderID string) Decision {
	if user.IsAdmin() {
		return allowed(0)
	}
	limits := user.Limits()
	if limits.QuotesUnlimited() {
		return allowed(0)
	}

	count, err := e.quotes.CountByTenderAndUser(ctx, tenderID, user.ID)
	if err != nil {
		e.logger.Error().Err(err).Str("user_id", user.ID).Str("tender_id", tenderID).Msg("quote quota count failed, allowing")
		return allowed(0)
	}
	if count >= limits.QuotesPerTender {
		return Decision{Allowed: false, Count: count, Message: quoteLimitMessage}
	}
	return allowed(count)
}

// CheckAvailabilityDate rejects availability days beyond the tier's horizon.
// Admins are exempt.
func (e *Enforcer) CheckAvailabilityDate(user *domain.User, day time.Time) Decision {
	if user.IsAdmin() {
		return allowed(0)
	}
	horizon := e.now().AddDate(0, 0, user.Limits().AvailabilityDays)
	if day.After(horizon) {
		return Decision{Allowed: false, Message: "Date is beyond your plan's availability horizon."}
	}
	return allowed(0)
}
