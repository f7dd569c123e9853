// Package discovery implements subcontractor discovery: viewer-center
// resolution, radius-bounded candidate matching, priority ranking, and the
// trades-near-you aggregation.
package discovery

import (
	"errors"

	"github.com/jessebruzzese-sudo/TradeHub-sub002/internal/domain"
	"github.com/jessebruzzese-sudo/TradeHub-sub002/internal/geo"
	"github.com/jessebruzzese-sudo/TradeHub-sub002/internal/plan"
)

// ErrNoViewerLocation means the viewer has no usable coordinate at any
// priority level. It is an expected empty state, not a failure: the HTTP
// layer answers 200 with a guidance message.
var ErrNoViewerLocation = errors.New("viewer has no usable location")

// ViewerCenter resolves the point discovery searches from. Priority: the
// premium-only search-from override, then current location, then base.
// Free tier never uses the override even when one is stored; that is the
// entitlement gate, not a data-availability fallback.
func ViewerCenter(u *domain.User) *geo.Point {
	if u == nil {
		return nil
	}
	if u.Tier() == plan.TierPremium && u.SearchFrom != nil {
		return u.SearchFrom
	}
	if u.Location != nil {
		return u.Location
	}
	return u.Base
}

// RadiusKm returns the discovery radius enforced for the viewer's tier.
func RadiusKm(u *domain.User) float64 {
	return u.Limits().RadiusKm
}
