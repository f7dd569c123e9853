package handlers

import (
	"net/http"
)

type limitsDTO struct {
	RadiusKm         float64 `json:"radius_km"`
	AvailabilityDays int     `json:"availability_days"`
	TendersPerMonth  int     `json:"tenders_per_month"`
	QuotesPerTender  int     `json:"quotes_per_tender"`
	TendersUnlimited bool    `json:"tenders_unlimited"`
	QuotesUnlimited  bool    `json:"quotes_unlimited"`
}

type meResponse struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	BusinessName string    `json:"business_name"`
	Suburb       string    `json:"suburb"`
	Role         string    `json:"role"`
	Tier         string    `json:"tier"`
	Limits       limitsDTO `json:"limits"`
	HasLocation  bool      `json:"has_location"`
}

// Me reports the viewer's account with the tier and limits the server will
// actually enforce. Clients render entitlements from this, never from local
// assumptions.
func (a *App) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := a.currentUser(r)
	if !ok {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing user context")
		return
	}
	limits := user.Limits()
	a.json(w, http.StatusOK, meResponse{
		ID:           user.ID,
		Email:        user.Email,
		Name:         user.Name,
		BusinessName: user.BusinessName,
		Suburb:       user.Suburb,
		Role:         string(user.Role),
		Tier:         string(user.Tier()),
		Limits: limitsDTO{
			RadiusKm:         limits.RadiusKm,
			AvailabilityDays: limits.AvailabilityDays,
			TendersPerMonth:  limits.TendersPerMonth,
			QuotesPerTender:  limits.QuotesPerTender,
			TendersUnlimited: limits.TendersUnlimited(),
			QuotesUnlimited:  limits.QuotesUnlimited(),
		},
		HasLocation: user.Location != nil || user.Base != nil,
	})
}
