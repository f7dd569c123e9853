package domain

import "github.com/jessebruzzese-sudo/TradeHub-sub002/internal/geo"

// CandidateProfile is a directory-eligible account as loaded by the bounding
// box prefilter. Trade fields are raw stored values; the discovery engine
// merges and normalizes them.
type CandidateProfile struct {
	ID           string
	Name         string
	BusinessName string
	DisplayName  string
	FullName     string
	Suburb       string
	AvatarURL    string
	Verified     bool

	// PrimaryTrade plus the two legacy multi-trade columns, each of which may
	// be a comma-separated string.
	PrimaryTrade     string
	AdditionalTrades string
	Trades           string

	// Location is the current position, Base the home address. A candidate is
	// found at where it is, never at its search-from override.
	Location *geo.Point
	Base     *geo.Point

	// PremiumRanking marks accounts entitled to priority placement.
	PremiumRanking bool
}

// Coords resolves the point a candidate is matched at: current location
// first, then base. Nil means the candidate is excluded from all results.
func (c *CandidateProfile) Coords() *geo.Point {
	if c.Location != nil {
		return c.Location
	}
	return c.Base
}
