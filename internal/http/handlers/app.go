// Package handlers carries the HTTP endpoints: discovery, tenders, quotes,
// availability, the viewer profile, and the suggestion proxy.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/jessebruzzese-sudo/TradeHub-sub002/internal/discovery"
	"github.com/jessebruzzese-sudo/TradeHub-sub002/internal/domain"
	"github.com/jessebruzzese-sudo/TradeHub-sub002/internal/infra/geoip"
	"github.com/jessebruzzese-sudo/TradeHub-sub002/internal/middleware"
	"github.com/jessebruzzese-sudo/TradeHub-sub002/internal/providers/suggest"
	"github.com/jessebruzzese-sudo/TradeHub-sub002/internal/quota"
)

type App struct {
	Logger         zerolog.Logger
	Users          domain.UserRepository
	Tenders        domain.TenderRepository
	Quotes         domain.QuoteRepository
	Availability   domain.AvailabilityRepository
	Engine         *discovery.Engine
	Enforcer       *quota.Enforcer
	GeoIP          geoip.LocationResolver
	Suggester      suggest.Suggester
	SuggestLimiter *middleware.SuggestLimiter
	Validate       *validator.Validate
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, errCode, message string) {
	a.json(w, code, map[string]string{"error": errCode, "message": message})
}

func (a *App) currentUserID(r *http.Request) string {
	return middleware.UserIDFromContext(r.Context())
}

// currentUser loads the authenticated account row. A missing context or a
// user row that no longer exists both read as unauthenticated.
func (a *App) currentUser(r *http.Request) (*domain.User, bool) {
	userID := a.currentUserID(r)
	if userID == "" {
		return nil, false
	}
	user, err := a.Users.GetByID(r.Context(), userID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			a.Logger.Error().Err(err).Str("user_id", userID).Msg("load user failed")
		}
		return nil, false
	}
	return user, true
}

func (a *App) validate(v any) error {
	if a.Validate == nil {
		return nil
	}
	return a.Validate.Struct(v)
}
