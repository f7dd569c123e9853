package handlers

import (
	"encoding/json"
	"math"
	"net/http"
	"strconv"

	"github.com/jessebruzzese-sudo/TradeHub-sub002/internal/providers/suggest"
)

type suggestRequest struct {
	Kind   string `json:"kind" validate:"required,oneof=tender_description quote_message profile_bio"`
	Trade  string `json:"trade" validate:"max=60"`
	Suburb string `json:"suburb" validate:"max=120"`
	Input  string `json:"input" validate:"max=2000"`
}

type suggestResponse struct {
	Text     string `json:"text"`
	Provider string `json:"provider"`
}

// Suggest proxies a draft through the text suggester. Calls are rate limited
// per user; the limiter state is in-process only.
func (a *App) Suggest(w http.ResponseWriter, r *http.Request) {
	user, ok := a.currentUser(r)
	if !ok {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing user context")
		return
	}
	var req suggestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if err := a.validate(req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	if a.SuggestLimiter != nil {
		if allowed, wait := a.SuggestLimiter.Allow(user.ID); !allowed {
			seconds := int(math.Ceil(wait.Seconds()))
			w.Header().Set("Retry-After", strconv.Itoa(seconds))
			a.error(w, http.StatusTooManyRequests, "rate_limited", "suggestion limit reached, try again later")
			return
		}
	}

	res, err := a.Suggester.Suggest(r.Context(), suggest.Request{
		Kind:   suggest.Kind(req.Kind),
		Trade:  req.Trade,
		Suburb: req.Suburb,
		Input:  req.Input,
	})
	if err != nil || res == nil {
		a.Logger.Error().Err(err).Str("user_id", user.ID).Msg("suggest failed")
		a.error(w, http.StatusInternalServerError, "internal", "suggestion failed")
		return
	}
	a.json(w, http.StatusOK, suggestResponse{Text: res.Text, Provider: res.Provider})
}
