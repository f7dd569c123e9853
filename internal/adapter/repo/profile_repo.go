package repo

import (
	"context"
	"fmt"

	"github.com/jessebruzzese-sudo/TradeHub-sub002/internal/domain"
	"github.com/jessebruzzese-sudo/TradeHub-sub002/internal/geo"
	"github.com/jessebruzzese-sudo/TradeHub-sub002/internal/infra"
	"github.com/jessebruzzese-sudo/TradeHub-sub002/internal/sqlinline"
)

// ProfileRepositoryPG implements domain.ProfileRepository backed by
// PostgreSQL.
type ProfileRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewProfileRepository creates a new ProfileRepositoryPG.
func NewProfileRepository(sql infra.SQLExecutor) *ProfileRepositoryPG {
	return &ProfileRepositoryPG{sql: sql}
}

// CandidatesInBox runs the bounding-box prefilter. A box that wrapped across
// the antimeridian (MinLng > MaxLng) widens to the full longitude range;
// the prefilter may over-select, never under-select, and the engine's
// haversine cut trims the rest. A missing profiles table or column yields an
// empty result, not an error.
func (r *ProfileRepositoryPG) CandidatesInBox(ctx context.Context, box geo.BoundingBox, excludeUserID string) ([]domain.CandidateProfile, error) {
	minLng, maxLng := box.MinLng, box.MaxLng
	if minLng > maxLng {
		minLng, maxLng = -180, 180
	}

	rows, err := r.sql.Query(ctx, sqlinline.QCandidatesInBox, excludeUserID, box.MinLat, box.MaxLat, minLng, maxLng)
	if err != nil {
		if schemaMissing(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query candidates: %w", err)
	}
	defer rows.Close()

	var out []domain.CandidateProfile
	for rows.Next() {
		var (
			c                                domain.CandidateProfile
			locLat, locLng, baseLat, baseLng *float64
		)
		if err := rows.Scan(
			&c.ID,
			&c.Name,
			&c.BusinessName,
			&c.DisplayName,
			&c.FullName,
			&c.Suburb,
			&c.AvatarURL,
			&c.Verified,
			&c.PrimaryTrade,
			&c.AdditionalTrades,
			&c.Trades,
			&locLat, &locLng,
			&baseLat, &baseLng,
			&c.PremiumRanking,
		); err != nil {
			return nil, fmt.Errorf("scan candidate: %w", err)
		}
		c.Location = pointFrom(locLat, locLng)
		c.Base = pointFrom(baseLat, baseLng)
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		if schemaMissing(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("iterate candidates: %w", err)
	}
	return out, nil
}
