package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/jessebruzzese-sudo/TradeHub-sub002/internal/domain"
)

type createAvailabilityRequest struct {
	Day  string `json:"day" validate:"required"`
	Note string `json:"note" validate:"max=500"`
}

// AvailabilityCreate records a day the user advertises as open for work.
// The day must fall within the tier's forward horizon.
func (a *App) AvailabilityCreate(w http.ResponseWriter, r *http.Request) {
	user, ok := a.currentUser(r)
	if !ok {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing user context")
		return
	}
	var req createAvailabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if err := a.validate(req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}
	day, err := time.Parse("2006-01-02", req.Day)
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "day must be YYYY-MM-DD")
		return
	}

	decision := a.Enforcer.CheckAvailabilityDate(user, day)
	if !decision.Allowed {
		a.error(w, http.StatusForbidden, "horizon_exceeded", decision.Message)
		return
	}

	availability := &domain.Availability{
		ID:     uuid.NewString(),
		UserID: user.ID,
		Day:    day,
		Note:   req.Note,
	}
	if err := a.Availability.Create(r.Context(), availability); err != nil {
		a.Logger.Error().Err(err).Str("user_id", user.ID).Msg("create availability failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to save availability")
		return
	}
	a.json(w, http.StatusCreated, map[string]any{
		"id":         availability.ID,
		"day":        day.Format("2006-01-02"),
		"note":       availability.Note,
		"created_at": availability.CreatedAt,
	})
}
