// Package repo implements the domain repositories over PostgreSQL. The
// legacy column names (is_premium, subscription_status, search_lat, ...)
// stop here; everything above this layer works with the domain shapes.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jessebruzzese-sudo/TradeHub-sub002/internal/domain"
	"github.com/jessebruzzese-sudo/TradeHub-sub002/internal/geo"
	"github.com/jessebruzzese-sudo/TradeHub-sub002/internal/infra"
	"github.com/jessebruzzese-sudo/TradeHub-sub002/internal/sqlinline"
)

// UserRepositoryPG implements domain.UserRepository backed by PostgreSQL.
type UserRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewUserRepository creates a new UserRepositoryPG.
func NewUserRepository(sql infra.SQLExecutor) *UserRepositoryPG {
	return &UserRepositoryPG{sql: sql}
}

// GetByID fetches the account row and translates the legacy subscription
// and coordinate columns into the domain shape.
func (r *UserRepositoryPG) GetByID(ctx context.Context, id string) (*domain.User, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QSelectUserByID, id)

	var (
		u                                domain.User
		role                             string
		locLat, locLng, baseLat, baseLng *float64
		searchLat, searchLng             *float64
	)
	err := row.Scan(
		&u.ID,
		&u.Email,
		&u.Name,
		&u.BusinessName,
		&u.DisplayName,
		&u.FullName,
		&u.Suburb,
		&role,
		&u.TierSignal.IsPremium,
		&u.TierSignal.SubscriptionStatus,
		&u.TierSignal.ActivePlan,
		&u.TierSignal.SubcontractorPlan,
		&u.TierSignal.SubcontractorStatus,
		&locLat, &locLng,
		&baseLat, &baseLng,
		&searchLat, &searchLng,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select user: %w", err)
	}

	u.Role = domain.UserRole(role)
	u.Location = pointFrom(locLat, locLng)
	u.Base = pointFrom(baseLat, baseLng)
	u.SearchFrom = pointFrom(searchLat, searchLng)
	return &u, nil
}

// pointFrom builds a Point only when both coordinates are present. Longitude
// is clamped so stale rows outside (-180, 180] stay usable in distance math.
func pointFrom(lat, lng *float64) *geo.Point {
	if lat == nil || lng == nil {
		return nil
	}
	return &geo.Point{Lat: *lat, Lng: geo.ClampLng(*lng)}
}
