package handlers

import (
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jessebruzzese-sudo/TradeHub-sub002/internal/discovery"
)

const noLocationMessage = "Add your location to see trades professionals near you."

type discoverByTradeResponse struct {
	Profiles []discovery.ProfileCard `json:"profiles"`
	Count    int                     `json:"count"`
	Message  string                  `json:"message,omitempty"`
}

func (a *App) DiscoverByTrade(w http.ResponseWriter, r *http.Request) {
	viewer, ok := a.currentUser(r)
	if !ok {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing user context")
		return
	}
	trade := discovery.NormalizeTrade(chi.URLParam(r, "trade"))
	if trade == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "trade required")
		return
	}
	cards, err := a.Engine.FindByTrade(r.Context(), viewer, trade)
	if err != nil {
		if errors.Is(err, discovery.ErrNoViewerLocation) {
			// No stored location is an empty result, not an error state.
			a.json(w, http.StatusOK, discoverByTradeResponse{
				Profiles: []discovery.ProfileCard{},
				Message:  a.locationGuidance(r),
			})
			return
		}
		a.Logger.Error().Err(err).Str("trade", trade).Msg("discovery query failed")
		a.error(w, http.StatusInternalServerError, "internal", "discovery failed")
		return
	}
	if cards == nil {
		cards = []discovery.ProfileCard{}
	}
	a.json(w, http.StatusOK, discoverByTradeResponse{Profiles: cards, Count: len(cards)})
}

type tradesNearYouResponse struct {
	discovery.TradesSummary
	Message string `json:"message,omitempty"`
}

func (a *App) TradesNearYou(w http.ResponseWriter, r *http.Request) {
	viewer, ok := a.currentUser(r)
	if !ok {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing user context")
		return
	}
	summary, err := a.Engine.TradesNearYou(r.Context(), viewer)
	if err != nil {
		if errors.Is(err, discovery.ErrNoViewerLocation) {
			a.json(w, http.StatusOK, tradesNearYouResponse{
				TradesSummary: discovery.TradesSummary{
					TotalAccountsRounded: discovery.RoundCount(0),
					Trades:               []discovery.TradeCount{},
				},
				Message: a.locationGuidance(r),
			})
			return
		}
		a.Logger.Error().Err(err).Msg("trades near you failed")
		a.error(w, http.StatusInternalServerError, "internal", "discovery failed")
		return
	}
	if summary.Trades == nil {
		summary.Trades = []discovery.TradeCount{}
	}
	a.json(w, http.StatusOK, tradesNearYouResponse{TradesSummary: *summary})
}

// locationGuidance personalizes the no-location message with a GeoIP city
// when a resolver is configured. The hint is cosmetic; discovery never
// searches from it.
func (a *App) locationGuidance(r *http.Request) string {
	if a.GeoIP == nil {
		return noLocationMessage
	}
	ip := r.RemoteAddr
	if host, _, err := net.SplitHostPort(ip); err == nil {
		ip = host
	}
	hint, err := a.GeoIP.Locate(ip)
	if err != nil || hint == nil || hint.City == "" {
		return noLocationMessage
	}
	return fmt.Sprintf("Add your location to see trades professionals near %s.", hint.City)
}
