package domain

import (
	"time"

	"github.com/jessebruzzese-sudo/TradeHub-sub002/internal/geo"
	"github.com/jessebruzzese-sudo/TradeHub-sub002/internal/plan"
)

// UserRole enumerates supported roles.
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

// User represents an authenticated account within the platform. Coordinate
// fields are nil when the account has never stored that location.
type User struct {
	ID           string
	Email        string
	Name         string
	BusinessName string
	DisplayName  string
	FullName     string
	Suburb       string
	Role         UserRole
	TierSignal   plan.TierSignal

	// Location is where the account currently is; Base is its home/registered
	// address; SearchFrom is the premium-only override for where discovery
	// searches from.
	Location   *geo.Point
	Base       *geo.Point
	SearchFrom *geo.Point

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAdmin reports whether the user carries the admin role marker.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == UserRoleAdmin
}

// Tier derives the entitlement tier for this user. A nil user is free.
func (u *User) Tier() plan.Tier {
	if u == nil {
		return plan.TierFree
	}
	return plan.TierFor(u.TierSignal)
}

// Limits returns the enforced plan limits for this user's tier.
func (u *User) Limits() plan.Limits {
	return plan.LimitsFor(u.Tier())
}
