package discovery

import (
	"context"
	"fmt"
	"net/url"
	"sort"

	"github.com/rs/zerolog"

	"github.com/jessebruzzese-sudo/TradeHub-sub002/internal/domain"
	"github.com/jessebruzzese-sudo/TradeHub-sub002/internal/geo"
)

// fallbackDisplayName is shown when a profile has no usable name field.
const fallbackDisplayName = "Trades Professional"

// topTradesLimit caps the trades-near-you aggregation.
const topTradesLimit = 8

// ProfileCard is the shaped discovery result for one candidate.
type ProfileCard struct {
	ID              string   `json:"id"`
	DisplayName     string   `json:"display_name"`
	BusinessName    string   `json:"business_name"`
	Suburb          string   `json:"suburb"`
	TradeCategories []string `json:"trade_categories"`
	IsVerified      bool     `json:"is_verified"`
	AvatarURL       *string  `json:"avatar_url"`
	IsPremium       bool     `json:"isPremium"`
}

// TradeCount is one aggregated trade in the trades-near-you summary.
type TradeCount struct {
	Trade string `json:"trade"`
	Count int    `json:"count"`
}

// TradesSummary is the trades-near-you result.
type TradesSummary struct {
	TotalAccountsRounded string       `json:"totalAccountsRounded"`
	TotalAccountsExact   int          `json:"totalAccountsExact"`
	Trades               []TradeCount `json:"trades"`
}

// Engine runs radius-bounded discovery queries for a viewer.
type Engine struct {
	profiles domain.ProfileRepository
	logger   zerolog.Logger
}

// NewEngine creates a discovery engine over the given profile source.
func NewEngine(profiles domain.ProfileRepository, logger zerolog.Logger) *Engine {
	return &Engine{profiles: profiles, logger: logger}
}

// survivor is a candidate that passed the exact distance cut.
type survivor struct {
	profile  domain.CandidateProfile
	distance float64
}

// FindByTrade returns the profile cards for candidates within the viewer's
// tier radius whose trade list contains the trade. Premium candidates rank
// first; within each partition nearest first. That ordering is the paid
// tier's priority placement and is part of the product contract.
func (e *Engine) FindByTrade(ctx context.Context, viewer *domain.User, trade string) ([]ProfileCard, error) {
	survivors, err := e.survivors(ctx, viewer, trade)
	if err != nil {
		return nil, err
	}

	rank(survivors)

	cards := make([]ProfileCard, 0, len(survivors))
	for _, s := range survivors {
		cards = append(cards, shapeCard(&s.profile))
	}
	return cards, nil
}

// TradesNearYou aggregates trade counts over every candidate within the
// viewer's radius. A candidate with three trades contributes to three
// counts; the account total counts candidates, not trades.
func (e *Engine) TradesNearYou(ctx context.Context, viewer *domain.User) (*TradesSummary, error) {
	survivors, err := e.survivors(ctx, viewer, "")
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, s := range survivors {
		for _, trade := range TradeList(&s.profile) {
			counts[trade]++
		}
	}

	trades := make([]TradeCount, 0, len(counts))
	for trade, count := range counts {
		trades = append(trades, TradeCount{Trade: DisplayTrade(trade), Count: count})
	}
	sort.Slice(trades, func(i, j int) bool {
		if trades[i].Count != trades[j].Count {
			return trades[i].Count > trades[j].Count
		}
		return trades[i].Trade < trades[j].Trade
	})
	if len(trades) > topTradesLimit {
		trades = trades[:topTradesLimit]
	}

	return &TradesSummary{
		TotalAccountsRounded: RoundCount(len(survivors)),
		TotalAccountsExact:   len(survivors),
		Trades:               trades,
	}, nil
}

// survivors runs the shared pipeline: center and radius resolution, bounding
// box prefilter, optional trade filter, exact haversine cut.
func (e *Engine) survivors(ctx context.Context, viewer *domain.User, trade string) ([]survivor, error) {
	center := ViewerCenter(viewer)
	if center == nil {
		return nil, ErrNoViewerLocation
	}
	radius := RadiusKm(viewer)

	box := geo.BBoxForRadiusKm(center.Lat, center.Lng, radius)
	candidates, err := e.profiles.CandidatesInBox(ctx, box, viewer.ID)
	if err != nil {
		return nil, fmt.Errorf("discovery prefilter: %w", err)
	}
	e.logger.Debug().Int("candidates", len(candidates)).Float64("radius_km", radius).Msg("discovery prefilter")

	var out []survivor
	for i := range candidates {
		c := &candidates[i]
		if trade != "" && !HasTrade(c, trade) {
			continue
		}
		coords := c.Coords()
		if coords == nil {
			continue
		}
		// The box over-selects; this is the exact cut. Candidates at exactly
		// the radius are in.
		d := geo.HaversineKm(center.Lat, center.Lng, coords.Lat, coords.Lng)
		if d > radius {
			continue
		}
		out = append(out, survivor{profile: candidates[i], distance: d})
	}
	return out, nil
}

// rank orders survivors premium-first (stable), then by ascending distance
// within each partition.
func rank(survivors []survivor) {
	sort.SliceStable(survivors, func(i, j int) bool {
		pi, pj := survivors[i].profile.PremiumRanking, survivors[j].profile.PremiumRanking
		if pi != pj {
			return pi
		}
		return survivors[i].distance < survivors[j].distance
	})
}

func shapeCard(c *domain.CandidateProfile) ProfileCard {
	return ProfileCard{
		ID:              c.ID,
		DisplayName:     displayName(c),
		BusinessName:    c.BusinessName,
		Suburb:          c.Suburb,
		TradeCategories: TradeList(c),
		IsVerified:      c.Verified,
		AvatarURL:       safeAvatarURL(c.AvatarURL),
		IsPremium:       c.PremiumRanking,
	}
}

// displayName walks the fallback chain; it never returns an empty name.
func displayName(c *domain.CandidateProfile) string {
	for _, candidate := range []string{c.Name, c.BusinessName, c.DisplayName, c.FullName} {
		if candidate != "" {
			return candidate
		}
	}
	return fallbackDisplayName
}

// safeAvatarURL passes through absolute http(s) URLs only. Bare storage
// paths are nulled out rather than leaked as unusable links.
func safeAvatarURL(raw string) *string {
	if raw == "" {
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return nil
	}
	return &raw
}
