package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/jessebruzzese-sudo/TradeHub-sub002/internal/discovery"
	"github.com/jessebruzzese-sudo/TradeHub-sub002/internal/domain"
)

type createTenderRequest struct {
	Title       string `json:"title" validate:"required,min=3,max=120"`
	Description string `json:"description" validate:"max=4000"`
	Trade       string `json:"trade" validate:"required,min=2,max=60"`
	Suburb      string `json:"suburb" validate:"max=120"`
}

type tenderDTO struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Trade       string    `json:"trade"`
	Suburb      string    `json:"suburb"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func tenderToDTO(t *domain.Tender) tenderDTO {
	return tenderDTO{
		ID:          t.ID,
		OwnerID:     t.OwnerID,
		Title:       t.Title,
		Description: t.Description,
		Trade:       t.Trade,
		Suburb:      t.Suburb,
		Status:      string(t.Status),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// TenderCreate publishes a new tender. The quota check runs against the
// stored account row; the tier on the token is never consulted.
func (a *App) TenderCreate(w http.ResponseWriter, r *http.Request) {
	owner, ok := a.currentUser(r)
	if !ok {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing user context")
		return
	}
	var req createTenderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if err := a.validate(req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	decision := a.Enforcer.CheckTenderCreation(r.Context(), owner)
	if !decision.Allowed {
		a.error(w, http.StatusForbidden, "quota_exceeded", decision.Message)
		return
	}

	tender := &domain.Tender{
		ID:          uuid.NewString(),
		OwnerID:     owner.ID,
		Title:       req.Title,
		Description: req.Description,
		Trade:       discovery.NormalizeTrade(req.Trade),
		Suburb:      req.Suburb,
		Status:      domain.TenderStatusPublished,
	}
	if err := a.Tenders.Create(r.Context(), tender); err != nil {
		a.Logger.Error().Err(err).Str("user_id", owner.ID).Msg("create tender failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to create tender")
		return
	}
	a.json(w, http.StatusCreated, tenderToDTO(tender))
}
