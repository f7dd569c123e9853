package domain

import (
	"context"
	"time"

	"github.com/jessebruzzese-sudo/TradeHub-sub002/internal/geo"
)

// UserRepository defines access methods for users.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*User, error)
}

// ProfileRepository loads directory-eligible candidates. CandidatesInBox is
// the bounding-box prefilter: it returns every public profile whose current
// or base coordinates fall inside the box, excluding the viewer. The result
// over-selects; callers apply the exact distance cut.
type ProfileRepository interface {
	CandidatesInBox(ctx context.Context, box geo.BoundingBox, excludeUserID string) ([]CandidateProfile, error)
}

// TenderRepository persists tenders and answers quota counting queries.
type TenderRepository interface {
	Create(ctx context.Context, t *Tender) error
	// CountQuotaSince counts the owner's tenders in quota-relevant states
	// created at or after the given instant, including soft-deleted rows.
	CountQuotaSince(ctx context.Context, ownerID string, since time.Time) (int, error)
	GetByID(ctx context.Context, id string) (*Tender, error)
}

// QuoteRepository persists quotes and counts submissions per tender.
type QuoteRepository interface {
	Create(ctx context.Context, q *Quote) error
	CountByTenderAndUser(ctx context.Context, tenderID, userID string) (int, error)
}

// AvailabilityRepository persists advertised availability days.
type AvailabilityRepository interface {
	Create(ctx context.Context, a *Availability) error
}
